package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	styles "github.com/charmbracelet/lipgloss"
	plot "github.com/chriskim06/drawille-go"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/keilerkonzept/worldcup-dashboard/internal/worldcup"
)

const mapTitle = "FIFA World Cup Wins by Country"

// colorScale is a continuous two-stop scale, blended in Lab space.
type colorScale struct {
	low, high colorful.Color
}

func newColorScale(lowHex, highHex string) (colorScale, error) {
	low, err := colorful.Hex(lowHex)
	if err != nil {
		return colorScale{}, fmt.Errorf("scale low colour: %w", err)
	}
	high, err := colorful.Hex(highHex)
	if err != nil {
		return colorScale{}, fmt.Errorf("scale high colour: %w", err)
	}
	return colorScale{low: low, high: high}, nil
}

// at maps v onto the scale over domain, clamping out-of-range values.
func (s colorScale) at(v float64, domain [2]float64) colorful.Color {
	span := domain[1] - domain[0]
	t := 0.0
	if span > 0 {
		t = (v - domain[0]) / span
	}
	t = math.Max(0, math.Min(1, t))
	return s.low.BlendLab(s.high, t).Clamped()
}

func (s colorScale) style(v float64, domain [2]float64) styles.Style {
	return styles.NewStyle().Foreground(styles.Color(s.at(v, domain).Hex()))
}

func formatIntensity(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// renderChoropleth draws one shaded row per country, followed by a legend
// spanning the colour domain.
func renderChoropleth(v worldcup.MapView, scale colorScale, selected string, width int) string {
	if len(v.Entries) == 0 {
		return borderFg.Render("no winners")
	}
	nameWidth := 0
	for _, e := range v.Entries {
		nameWidth = max(nameWidth, len(e.Country))
	}
	const valueWidth = 4
	swatchWidth := max(1, width-nameWidth-valueWidth-3)

	rows := make([]string, 0, len(v.Entries)+2)
	for _, e := range v.Entries {
		swatch := scale.style(e.Intensity, v.Domain).Render(strings.Repeat("█", swatchWidth))
		name := fmt.Sprintf("%-*s", nameWidth, e.Country)
		if e.Country == selected {
			name = selectedFg.Render(name)
		}
		value := fmt.Sprintf("%*s", valueWidth, formatIntensity(e.Intensity))
		rows = append(rows, name+" "+swatch+" "+value)
	}
	rows = append(rows, "", renderLegend(v.Domain, scale, width))
	return strings.Join(rows, "\n")
}

func renderLegend(domain [2]float64, scale colorScale, width int) string {
	low, high := formatIntensity(domain[0]), formatIntensity(domain[1])
	barWidth := max(1, width-len(low)-len(high)-2)
	var sb strings.Builder
	for i := range barWidth {
		t := 0.0
		if barWidth > 1 {
			t = float64(i) / float64(barWidth-1)
		}
		v := domain[0] + t*(domain[1]-domain[0])
		sb.WriteString(scale.style(v, domain).Render("▀"))
	}
	return borderFg.Render(low) + " " + sb.String() + " " + borderFg.Render(high)
}

// intensitySeries returns the map intensities in entry order, optionally
// log-scaled, for the braille plot.
func intensitySeries(v worldcup.MapView, logScale bool) []float64 {
	series := make([]float64, len(v.Entries))
	for i, e := range v.Entries {
		value := e.Intensity
		if logScale {
			value = math.Log1p(value)
		}
		series[i] = value
	}
	return series
}

func newIntensityPlot(w, h, points int) *plot.Canvas {
	p := plot.NewCanvas(max(1, w), max(1, h))
	p.NumDataPoints = max(2, points)
	p.ShowAxis = false
	p.LineColors = make([]plot.Color, 2)
	return &p
}

// fillIntensityPlot draws the title counts as a dim reference line and the
// current intensities on top of it.
func fillIntensityPlot(p *plot.Canvas, wins *worldcup.WinTable, v worldcup.MapView, logScale bool) {
	var highlight, dim plot.Color
	if styles.DefaultRenderer().HasDarkBackground() {
		highlight, dim = plot.Red, plot.DimGray
	} else {
		highlight, dim = plot.Black, plot.LightGray
	}
	reference := intensitySeries(worldcup.DeriveMapData(wins, worldcup.All), logScale)
	current := intensitySeries(v, logScale)
	if len(current) == 0 {
		return
	}
	if len(current) == 1 {
		reference = append(reference, reference[0])
		current = append(current, current[0])
	}
	p.LineColors = []plot.Color{dim, highlight}
	p.Fill([][]float64{reference, current})
}
