package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// services calling the AliExpress Open Platform.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "aliexpress-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "aliexpress-alerts",
					Rules: []Rule{
						{
							Alert: "AliExpressHighFailureRate",
							Expr:  `aliexpress:api_failures:rate5m / aliexpress:api_calls:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High AliExpress API failure rate",
								"description": "More than 5% of AliExpress API calls have failed over the last 5 minutes.",
							},
						},
						{
							Alert: "AliExpressUnreachable",
							Expr:  `aliexpress:api_network_failures:rate5m / aliexpress:api_calls:rate5m > 0.5`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "AliExpress gateway unreachable",
								"description": "Most calls fail at the transport or HTTP level; the gateway is down or blocked.",
							},
						},
						{
							Alert: "AliExpressSignatureRejected",
							Expr:  `sum(aliexpress:platform_errors:rate5m{code=~"IncompleteSignature|InvalidSignature"}) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "AliExpress rejects request signatures",
								"description": "The platform reports signature errors; the app secret or clock is likely wrong.",
							},
						},
						{
							Alert: "AliExpressSessionExpired",
							Expr:  `sum(aliexpress:platform_errors:rate5m{code=~"IllegalAccessToken|InvalidSession"}) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "AliExpress session rejected",
								"description": "The platform reports an invalid or expired access token; refresh the session.",
							},
						},
						{
							Alert: "AliExpressSlowCalls",
							Expr:  `aliexpress:api_call_duration:p95_5m > 5`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "AliExpress API calls are slow",
								"description": "The p95 round trip has been above 5 seconds for 10 minutes.",
							},
						},
					},
				},
			},
		},
	}
}
