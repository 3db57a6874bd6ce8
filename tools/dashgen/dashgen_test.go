package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/aliexpress/tools/dashgen/dashboards"
	"github.com/donaldgifford/aliexpress/tools/dashgen/rules"
	"github.com/donaldgifford/aliexpress/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "aliexpress-client", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "AliExpress Client", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 4)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 9, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "aliexpress-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "aliexpress-recording", group.Name)
	require.Len(t, group.Rules, 5)

	expectedRecords := []string{
		"aliexpress:api_calls:rate5m",
		"aliexpress:api_failures:rate5m",
		"aliexpress:api_network_failures:rate5m",
		"aliexpress:platform_errors:rate5m",
		"aliexpress:api_call_duration:p95_5m",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.NotEmpty(t, rule.Expr)
		assert.True(t, KnownMetrics[rule.Record], "%s not in KnownMetrics", rule.Record)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "aliexpress-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "aliexpress-alerts", group.Name)
	require.Len(t, group.Rules, 5)

	expectedAlerts := []string{
		"AliExpressHighFailureRate",
		"AliExpressUnreachable",
		"AliExpressSignatureRejected",
		"AliExpressSessionExpired",
		"AliExpressSlowCalls",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Expr)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestRuleFile(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	data, err := yaml.Marshal(cr.File())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "apiVersion")
	assert.Contains(t, string(data), "AliExpressUnreachable")
}

func TestValidateExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		wantErr string
	}{
		{name: "known metric", expr: `sum(rate(aliexpress_api_calls_total[5m]))`},
		{name: "recording rule", expr: `aliexpress:api_failures:rate5m / aliexpress:api_calls:rate5m`},
		{name: "syntax error", expr: `sum(rate(aliexpress_api_calls_total[5m])`, wantErr: "invalid PromQL"},
		{name: "unknown metric", expr: `rate(http_requests_total[5m])`, wantErr: `unknown metric "http_requests_total"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := validate.Expr("test", tt.expr, KnownMetrics)
			if tt.wantErr == "" {
				assert.True(t, res.Ok(), "unexpected errors: %v", res.Errors)
				return
			}
			require.False(t, res.Ok())
			assert.Contains(t, res.Errors[0], tt.wantErr)
		})
	}
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.OutputDir = t.TempDir()
	require.NoError(t, run(cfg, false))

	dashPath := filepath.Join(cfg.OutputDir, "grafana", "data", "aliexpress-client.json")
	data, err := os.ReadFile(dashPath)
	require.NoError(t, err)

	var dash map[string]any
	require.NoError(t, json.Unmarshal(data, &dash))
	assert.Equal(t, "aliexpress-client", dash["uid"])

	for _, name := range []string{"aliexpress-recording-rules.yaml", "aliexpress-alerts.yaml"} {
		data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "prometheus", name))
		require.NoError(t, err, name)
		assert.True(t, len(data) > len(generatedHeader))
		assert.Equal(t, generatedHeader, string(data[:len(generatedHeader)]))

		var cr rules.PrometheusRule
		require.NoError(t, yaml.Unmarshal(data, &cr), name)
		assert.Equal(t, "PrometheusRule", cr.Kind)
	}
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.OutputDir = t.TempDir()
	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_RulesOnly(t *testing.T) {
	t.Parallel()

	cfg := Config{OutputDir: t.TempDir(), RulesEnabled: true}
	require.NoError(t, run(cfg, false))

	_, err := os.Stat(filepath.Join(cfg.OutputDir, "grafana"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(cfg.OutputDir, "prometheus", "aliexpress-alerts.yaml"))
	assert.NoError(t, err)
}
