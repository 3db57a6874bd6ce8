// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/aliexpress/tools/dashgen/panels"
)

// BuildOverview constructs the AliExpress client dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("AliExpress Client").
		Uid("aliexpress-client").
		Tags([]string{"aliexpress"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.SuccessRatio()).
		WithPanel(panels.CallsToday()).
		WithPanel(panels.LatencyP95()).
		WithPanel(panels.PlatformErrorsToday()))

	// Row 2: Calls.
	b.WithRow(dashboard.NewRowBuilder("Calls").
		WithPanel(panels.CallRate()).
		WithPanel(panels.FailuresByKind()))

	// Row 3: Latency.
	b.WithRow(dashboard.NewRowBuilder("Latency").
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.LatencyByMethod()))

	// Row 4: Platform errors.
	b.WithRow(dashboard.NewRowBuilder("Platform Errors").
		WithPanel(panels.PlatformErrorsByCode()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
