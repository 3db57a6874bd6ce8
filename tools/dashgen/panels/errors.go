package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// PlatformErrorsByCode returns a timeseries panel showing error_response
// envelopes per second by platform error code.
func PlatformErrorsByCode() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Platform Errors by Code").
		Description("error_response envelopes per second by platform error code").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			`sum by (code) (rate(aliexpress_api_platform_errors_total[5m]))`,
			"{{code}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(LegendTable("mean", "max", "lastNotNull")).
		Tooltip(TooltipAllDesc()).
		Thresholds(Thresholds("green")).
		ColorScheme(ColorBy(ByPalette)).
		DrawStyle(common.GraphDrawStyleBars)
}
