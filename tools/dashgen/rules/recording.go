package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "aliexpress-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "aliexpress-recording",
					Rules: []Rule{
						{
							Record: "aliexpress:api_calls:rate5m",
							Expr:   `sum(rate(aliexpress_api_calls_total[5m]))`,
						},
						{
							Record: "aliexpress:api_failures:rate5m",
							Expr:   `sum(rate(aliexpress_api_calls_total{result!="ok"}[5m]))`,
						},
						{
							Record: "aliexpress:api_network_failures:rate5m",
							Expr:   `sum(rate(aliexpress_api_calls_total{result=~"network|http"}[5m]))`,
						},
						{
							Record: "aliexpress:platform_errors:rate5m",
							Expr:   `sum by (code) (rate(aliexpress_api_platform_errors_total[5m]))`,
						},
						{
							Record: "aliexpress:api_call_duration:p95_5m",
							Expr:   `histogram_quantile(0.95, sum(rate(aliexpress_api_call_duration_seconds_bucket[5m])) by (le))`,
						},
					},
				},
			},
		},
	}
}
