package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// quantile returns a histogram_quantile expression over the call duration
// histogram, grouped by the given extra label when non-empty.
func quantile(q float64, by string) string {
	group := "le"
	if by != "" {
		group = by + ", le"
	}
	return fmt.Sprintf(
		`histogram_quantile(%g, sum(rate(aliexpress_api_call_duration_seconds_bucket[5m])) by (%s))`,
		q, group,
	)
}

// LatencyPercentiles returns a timeseries panel showing p50, p95, and p99
// round trip latencies.
func LatencyPercentiles() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Latency Percentiles").
		Description("AliExpress API round trip percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(quantile(0.50, ""), "p50", "A")).
		WithTarget(PromQuery(quantile(0.95, ""), "p95", "B")).
		WithTarget(PromQuery(quantile(0.99, ""), "p99", "C")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(LegendTable("mean", "max")).
		Tooltip(TooltipAllDesc()).
		Thresholds(Thresholds("green")).
		ColorScheme(ColorBy(ByPalette)).
		DrawStyle(common.GraphDrawStyleLine)
}

// LatencyByMethod returns a timeseries panel showing the p95 round trip of
// each operation.
func LatencyByMethod() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("p95 by Operation").
		Description("95th percentile round trip per operation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(quantile(0.95, "method"), "{{method}}", "A")).
		Unit("s").
		FillOpacity(0).
		LineWidth(2).
		Legend(LegendTable("mean", "max")).
		Tooltip(TooltipAllDesc()).
		Thresholds(Thresholds("green")).
		ColorScheme(ColorBy(ByPalette)).
		DrawStyle(common.GraphDrawStyleLine)
}
