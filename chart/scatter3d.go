// Package chart builds the 3D scatter artifact relating education level,
// income, and a selectable categorical dimension.
package chart

import (
	"fmt"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/censusviz/censusviz/types"
)

// DefaultHeight is the rendered chart height in pixels.
const DefaultHeight = 700

// Params configures one chart build. Dimension is the third axis and color
// channel; x and y are fixed to education.num and income_numeric.
type Params struct {
	Dimension types.Dimension
	Title     string
	Height    int
}

// New builds the 3D scatter for t. One series is emitted per distinct
// dimension value so the color channel tracks the chosen column; records
// with an absent dimension value are not plotted. The table must be
// non-empty; the caller branches to the no-data notice before calling.
func New(t *types.Table, p Params) (*charts.Scatter3D, error) {
	if !p.Dimension.Valid() {
		return nil, fmt.Errorf("invalid dimension %q", p.Dimension)
	}
	if t.Len() == 0 {
		return nil, fmt.Errorf("cannot chart an empty table")
	}
	if p.Height <= 0 {
		p.Height = DefaultHeight
	}
	if p.Title == "" {
		p.Title = fmt.Sprintf("Education, income and %s in 3D", p.Dimension)
	}

	categories := t.DistinctDimensionValues(p.Dimension)
	points := make(map[string][]opts.Chart3DData, len(categories))
	for _, r := range t.Records() {
		cat, ok := r.DimensionValue(p.Dimension)
		if !ok {
			continue
		}
		points[cat] = append(points[cat], opts.Chart3DData{
			Name:  hoverText(&r),
			Value: []interface{}{r.EducationNum, r.IncomeNumeric, cat},
		})
	}

	sc := charts.NewScatter3D()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: p.Title}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:     "100%",
			Height:    fmt.Sprintf("%dpx", p.Height),
			PageTitle: p.Title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Formatter: "{a}<br/>{b}"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: types.ColEducationNum, Type: "value"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "income (>50K=1, <=50K=0)", Type: "value"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: p.Dimension.String(), Type: "category", Data: categories}),
	)

	for _, cat := range categories {
		sc.AddSeries(cat, points[cat])
	}
	return sc, nil
}

// hoverText lists the supplementary fields shown on mouse-over, matching
// the dashboard's hover block.
func hoverText(r *types.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "age %d", r.Age)
	b.WriteString(" / " + orAbsent(r.Workclass))
	b.WriteString(" / " + r.Education)
	b.WriteString(" / " + orAbsent(r.MaritalStatus))
	b.WriteString(" / " + orAbsent(r.Occupation))
	fmt.Fprintf(&b, " / %dh per week", r.HoursPerWeek)
	b.WriteString(" / " + orAbsent(r.NativeCountry))
	return b.String()
}

func orAbsent(p *string) string {
	if p == nil {
		return "n/a"
	}
	return *p
}
