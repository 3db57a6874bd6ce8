// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and may only reference known metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/aliexpress/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// are reported but do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether there are no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// Expr parses a PromQL expression and checks its metric names against known.
func Expr(where, expr string, known map[string]bool) Result {
	var res Result

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: invalid PromQL %q: %v", where, expr, err))
		return res
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[vs.Name] {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: unknown metric %q", where, vs.Name))
		}
		return nil
	})

	return res
}

// Dashboard validates every query target of a built dashboard. Panels
// without a description are reported as warnings.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("encoding dashboard: %v", err))
		return res
	}
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decoding dashboard: %v", err))
		return res
	}

	walkPanels(tree, func(panel map[string]any) {
		title, _ := panel["title"].(string)
		targets, _ := panel["targets"].([]any)
		if len(targets) == 0 {
			return
		}
		if d, _ := panel["description"].(string); d == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no description", title))
		}
		for _, t := range targets {
			target, _ := t.(map[string]any)
			expr, _ := target["expr"].(string)
			if expr == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("panel %q: target without expr", title))
				continue
			}
			res.merge(Expr(fmt.Sprintf("panel %q", title), expr, known))
		}
	})

	return res
}

// Rules validates every expression of a PrometheusRule.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	exprs := cr.Exprs()
	names := make([]string, 0, len(exprs))
	for name := range exprs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		res.merge(Expr(fmt.Sprintf("%s rule %q", cr.Metadata.Name, name), exprs[name], known))
	}
	return res
}

// walkPanels calls fn for every object inside a "panels" list, rows included.
func walkPanels(node any, fn func(map[string]any)) {
	switch v := node.(type) {
	case map[string]any:
		if panels, ok := v["panels"].([]any); ok {
			for _, p := range panels {
				if pm, ok := p.(map[string]any); ok {
					fn(pm)
					walkPanels(pm, fn)
				}
			}
		}
	case []any:
		for _, e := range v {
			walkPanels(e, fn)
		}
	}
}
