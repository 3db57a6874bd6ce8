package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// SuccessRatio returns a stat panel showing the share of calls that
// returned a usable body.
func SuccessRatio() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Success %").
		Description("Calls returning a usable body as percentage of all calls (5m)").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`(1 - aliexpress:api_failures:rate5m / aliexpress:api_calls:rate5m) * 100`,
			"", "A",
		)).
		Unit("percent").
		Thresholds(Thresholds("red", Step{95, "yellow"}, Step{99, "green"})).
		ColorScheme(ColorBy(ByThresholds)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// CallsToday returns a stat panel showing the calls made in the last 24h.
func CallsToday() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Calls (24h)").
		Description("AliExpress API calls in the last 24 hours").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`sum(increase(aliexpress_api_calls_total[24h]))`, "", "A")).
		Unit("short").
		Thresholds(Thresholds("green")).
		ColorScheme(ColorBy(ByThresholds)).
		GraphMode(common.BigValueGraphModeNone)
}

// LatencyP95 returns a stat panel showing the p95 round trip.
func LatencyP95() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("p95 Latency").
		Description("95th percentile round trip across all operations (5m)").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(quantile(0.95, ""), "", "A")).
		Unit("s").
		Thresholds(Thresholds("green", Step{2, "yellow"}, Step{5, "red"})).
		ColorScheme(ColorBy(ByThresholds)).
		GraphMode(common.BigValueGraphModeArea)
}

// PlatformErrorsToday returns a stat panel showing the error_response
// envelopes received in the last 24h.
func PlatformErrorsToday() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Platform Errors (24h)").
		Description("error_response envelopes returned by the platform in the last 24 hours").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`sum(increase(aliexpress_api_platform_errors_total[24h]))`, "", "A")).
		Unit("short").
		Thresholds(Thresholds("green", Step{1, "yellow"}, Step{50, "red"})).
		ColorScheme(ColorBy(ByThresholds)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}
