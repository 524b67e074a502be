package core

import (
	"slices"

	"github.com/huangsam/treehealth/schema"
)

// Chart styling shared by both dashboard charts.
const (
	paperBackground = "rgb(231, 240, 187)"
	plotBackground  = "rgb(247, 215, 195)"
	barOpacity      = 0.9
	scatterOpacity  = 0.7
	markerSize      = 15
)

// Axis titles.
const (
	HealthAxisTitle      = "Health of Tree Species"
	ProportionAxisTitle  = "Proportion of Trees in Borough"
	StewardAxisTitle     = "Steward"
	HealthIndexAxisTitle = "Overall Health Index"
)

func baseLayout(x, y schema.Axis) schema.Layout {
	return schema.Layout{
		XAxis:        x,
		YAxis:        y,
		Margin:       schema.Margin{L: 40, B: 40, T: 10, R: 10},
		Legend:       schema.Legend{X: -0.1, Y: 1.2},
		PaperBGColor: paperBackground,
		PlotBGColor:  plotBackground,
		HoverMode:    "closest",
	}
}

// RenderProportionChart renders the grouped bar chart of health proportions
// for one species: a trace per borough, health categories on the x-axis and
// the ratio on the y-axis. A species with no rows renders an empty chart.
func RenderProportionChart(snap *Snapshot, species string) schema.ChartSpec {
	rows := snap.ProportionsFor(species)
	slices.SortStableFunc(rows, func(a, b schema.SpeciesProportion) int {
		return schema.HealthRank(a.Health) - schema.HealthRank(b.Health)
	})

	traces := make([]schema.Trace, 0, len(schema.BoroughCodes))
	for _, code := range boroughOrder(rows, func(p schema.SpeciesProportion) int { return p.BoroughCode }) {
		trace := schema.Trace{
			Type:    "bar",
			Name:    schema.BoroughNameOrCode(code),
			X:       []any{},
			Y:       []float64{},
			Opacity: barOpacity,
		}
		for _, p := range rows {
			if p.BoroughCode != code {
				continue
			}
			trace.X = append(trace.X, string(p.Health))
			trace.Y = append(trace.Y, p.Ratio)
		}
		traces = append(traces, trace)
	}

	layout := baseLayout(
		schema.Axis{Title: schema.AxisTitle{Text: HealthAxisTitle}},
		schema.Axis{Title: schema.AxisTitle{Text: ProportionAxisTitle}, Range: []float64{0, 1}},
	)
	layout.BarMode = "group"
	return schema.ChartSpec{Data: traces, Layout: layout}
}

// RenderStewardChart renders the scatter chart of overall health index
// against steward level for one species, with a trace per borough. A species
// with no rows renders an empty chart.
func RenderStewardChart(snap *Snapshot, species string) schema.ChartSpec {
	rows := snap.HealthIndexFor(species)

	traces := make([]schema.Trace, 0, len(schema.BoroughCodes))
	for _, code := range boroughOrder(rows, func(h schema.OverallHealthIndex) int { return h.BoroughCode }) {
		trace := schema.Trace{
			Type:    "scatter",
			Name:    schema.BoroughNameOrCode(code),
			X:       []any{},
			Y:       []float64{},
			Mode:    "markers",
			Opacity: scatterOpacity,
			Marker: &schema.Marker{
				Size: markerSize,
				Line: &schema.MarkerLine{Width: 0.5, Color: "white"},
			},
		}
		for _, h := range rows {
			if h.BoroughCode != code {
				continue
			}
			trace.X = append(trace.X, h.StewardLevel)
			trace.Y = append(trace.Y, h.HealthIndex)
		}
		traces = append(traces, trace)
	}

	tickVals := make([]any, 0, len(schema.AllStewardBuckets))
	tickText := make([]string, 0, len(schema.AllStewardBuckets))
	for i, bucket := range schema.AllStewardBuckets {
		tickVals = append(tickVals, i+1)
		tickText = append(tickText, string(bucket))
	}

	layout := baseLayout(
		schema.Axis{Title: schema.AxisTitle{Text: StewardAxisTitle}, TickVals: tickVals, TickText: tickText},
		schema.Axis{Title: schema.AxisTitle{Text: HealthIndexAxisTitle}},
	)
	return schema.ChartSpec{Data: traces, Layout: layout}
}

// boroughOrder returns the borough codes present in rows in ascending order.
func boroughOrder[R any](rows []R, code func(R) int) []int {
	seen := make([]int, 0, len(schema.BoroughCodes))
	for _, r := range rows {
		if c := code(r); !slices.Contains(seen, c) {
			seen = append(seen, c)
		}
	}
	slices.Sort(seen)
	return seen
}
