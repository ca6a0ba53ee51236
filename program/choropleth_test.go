package main

import (
	"math"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keilerkonzept/worldcup-dashboard/internal/worldcup"
)

func TestColorScaleEndpoints(t *testing.T) {
	scale, err := newColorScale("#f7fbff", "#08306b")
	require.NoError(t, err)
	low, _ := colorful.Hex("#f7fbff")
	high, _ := colorful.Hex("#08306b")
	domain := [2]float64{0, 5}

	assert.Less(t, scale.at(0, domain).DistanceRgb(low), 1e-3)
	assert.Less(t, scale.at(5, domain).DistanceRgb(high), 1e-3)
	assert.Less(t, scale.at(-3, domain).DistanceRgb(low), 1e-3)
	assert.Less(t, scale.at(9, domain).DistanceRgb(high), 1e-3)
	assert.Less(t, scale.at(1, [2]float64{0, 0}).DistanceRgb(low), 1e-3)

	mid := scale.at(2.5, domain)
	assert.Greater(t, mid.DistanceRgb(low), 0.1)
	assert.Greater(t, mid.DistanceRgb(high), 0.1)
}

func TestNewColorScaleRejectsBadHex(t *testing.T) {
	_, err := newColorScale("nope", "#08306b")
	assert.Error(t, err)
	_, err = newColorScale("#f7fbff", "")
	assert.Error(t, err)
}

func TestRenderChoropleth(t *testing.T) {
	ds := worldcup.WorldCup()
	wins := worldcup.NewWinTable(ds)
	scale, err := newColorScale("#f7fbff", "#08306b")
	require.NoError(t, err)

	out := renderChoropleth(worldcup.DeriveMapData(wins, "Spain"), scale, "Spain", 50)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, wins.Len()+2)
	for _, wc := range wins.Rows() {
		assert.Contains(t, out, wc.Country)
	}
	assert.Contains(t, lines[0], "Brazil")
	assert.True(t, strings.HasSuffix(lines[0], "0.5"), lines[0])
	assert.Contains(t, lines[len(lines)-1], "0 ")
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], " 1"), lines[len(lines)-1])

	assert.Equal(t, "no winners", renderChoropleth(worldcup.MapView{}, scale, worldcup.All, 50))
}

func TestIntensitySeries(t *testing.T) {
	v := worldcup.MapView{Entries: []worldcup.MapEntry{{Country: "A", Intensity: 4}, {Country: "B", Intensity: 0.5}}}

	assert.Equal(t, []float64{4, 0.5}, intensitySeries(v, false))
	got := intensitySeries(v, true)
	assert.InDelta(t, math.Log(5), got[0], 1e-12)
	assert.InDelta(t, math.Log(1.5), got[1], 1e-12)
}

func TestFillIntensityPlot(t *testing.T) {
	ds := worldcup.WorldCup()
	wins := worldcup.NewWinTable(ds)

	p := newIntensityPlot(40, 6, wins.Len())
	fillIntensityPlot(p, wins, worldcup.DeriveMapData(wins, "Italy"), false)
	assert.Len(t, p.LineColors, 2)
	assert.NotEmpty(t, strings.TrimSpace(p.String()))
}
