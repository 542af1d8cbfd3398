package viewmodel

import (
	"math"
	"strconv"
	"strings"
)

// Chart geometry in SVG user units. Templates scale the viewBox to the container.
const (
	ChartWidth   = 640
	ChartHeight  = 240
	chartPadTop  = 16
	chartPadSide = 40
	chartPadBase = 32
	barGapRatio  = 0.25
)

// ChartPoint is one plotted value.
type ChartPoint struct {
	X, Y   float64
	Label  string
	Value  string
	Height float64
	Width  float64
}

// Chart is a precomputed SVG chart. Bar charts fill Points with rectangles;
// line charts also provide Polyline.
type Chart struct {
	Title    string
	Kind     string
	Width    int
	Height   int
	BaseY    float64
	MaxLabel string
	Points   []ChartPoint
	Polyline string
	Empty    bool
}

// ChartOptions controls labels and value formatting.
type ChartOptions struct {
	Title  string
	Format func(float64) string
}

func (o ChartOptions) format(v float64) string {
	if o.Format != nil {
		return o.Format(v)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// NewBarChart lays out one bar per value. Labels beyond len(values) are ignored
// and missing labels render blank.
func NewBarChart(labels []string, values []float64, opts ChartOptions) Chart {
	c := newChart("bar", opts, values)
	if c.Empty {
		return c
	}

	maxV := maxValue(values)
	plotW := float64(ChartWidth - 2*chartPadSide)
	slot := plotW / float64(len(values))
	barW := slot * (1 - barGapRatio)

	for i, v := range values {
		h := scale(v, maxV)
		c.Points = append(c.Points, ChartPoint{
			X:      round2(chartPadSide + float64(i)*slot + (slot-barW)/2),
			Y:      round2(c.BaseY - h),
			Width:  round2(barW),
			Height: round2(h),
			Label:  labelAt(labels, i),
			Value:  opts.format(v),
		})
	}
	return c
}

// NewLineChart lays out a polyline through the values, evenly spaced.
func NewLineChart(labels []string, values []float64, opts ChartOptions) Chart {
	c := newChart("line", opts, values)
	if c.Empty {
		return c
	}

	maxV := maxValue(values)
	plotW := float64(ChartWidth - 2*chartPadSide)
	step := 0.0
	if len(values) > 1 {
		step = plotW / float64(len(values)-1)
	}

	coords := make([]string, 0, len(values))
	for i, v := range values {
		x := chartPadSide + float64(i)*step
		if len(values) == 1 {
			x = chartPadSide + plotW/2
		}
		y := c.BaseY - scale(v, maxV)
		p := ChartPoint{X: round2(x), Y: round2(y), Label: labelAt(labels, i), Value: opts.format(v)}
		c.Points = append(c.Points, p)
		coords = append(coords, strconv.FormatFloat(p.X, 'f', -1, 64)+","+strconv.FormatFloat(p.Y, 'f', -1, 64))
	}
	c.Polyline = strings.Join(coords, " ")
	return c
}

func newChart(kind string, opts ChartOptions, values []float64) Chart {
	c := Chart{
		Title:  opts.Title,
		Kind:   kind,
		Width:  ChartWidth,
		Height: ChartHeight,
		BaseY:  float64(ChartHeight - chartPadBase),
		Empty:  len(values) == 0,
	}
	if !c.Empty {
		c.MaxLabel = opts.format(maxValue(values))
	}
	return c
}

// scale maps v onto the plot height. Negative values sit on the baseline.
func scale(v, maxV float64) float64 {
	if maxV <= 0 || v <= 0 {
		return 0
	}
	plotH := float64(ChartHeight - chartPadTop - chartPadBase)
	return v / maxV * plotH
}

func maxValue(values []float64) float64 {
	m := 0.0
	for _, v := range values {
		m = math.Max(m, v)
	}
	return m
}

func labelAt(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return ""
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
