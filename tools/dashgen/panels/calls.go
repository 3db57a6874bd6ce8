package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CallRate returns a timeseries panel showing calls per second by operation.
func CallRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Call Rate").
		Description("AliExpress API calls per second by operation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum by (method) (rate(aliexpress_api_calls_total[5m]))`,
			"{{method}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(LegendTable("mean", "max")).
		Tooltip(TooltipAllDesc()).
		Thresholds(Thresholds("green")).
		ColorScheme(ColorBy(ByPalette)).
		DrawStyle(common.GraphDrawStyleLine)
}

// FailuresByKind returns a timeseries panel showing failed calls per second
// split by failure kind (validation, network, http, decode, platform).
func FailuresByKind() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Failures by Kind").
		Description("Failed calls per second by failure kind").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum by (result) (rate(aliexpress_api_calls_total{result!="ok"}[5m]))`,
			"{{result}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(LegendTable("mean", "max")).
		Tooltip(TooltipAllDesc()).
		Thresholds(Thresholds("green")).
		ColorScheme(ColorBy(ByPalette)).
		DrawStyle(common.GraphDrawStyleBars)
}
