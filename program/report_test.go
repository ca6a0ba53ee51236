package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keilerkonzept/worldcup-dashboard/internal/worldcup"
)

func TestBuildReport(t *testing.T) {
	ds := worldcup.WorldCup()
	md := buildReport(ds, worldcup.NewWinTable(ds))

	assert.True(t, strings.HasPrefix(md, "# "+dashboardTitle))
	assert.Contains(t, md, "22 finals, 8 different winners.")

	// Shared ranks for equal title counts.
	assert.Contains(t, md, "| 2 | Germany | 4 |")
	assert.Contains(t, md, "| 2 | Italy | 4 |")
	assert.Contains(t, md, "| 4 | Argentina | 3 |")
	assert.Contains(t, md, "| 7 | Spain | 1 |")

	assert.Contains(t, md, "| 1930 | Uruguay | Argentina | 1st |")
	assert.Contains(t, md, "| 2002 | Brazil | Germany | 5th |")
	assert.Contains(t, md, "| 2018 | France | Croatia | 2nd |")
}

func TestRenderReport(t *testing.T) {
	out, err := renderReport("# Title\n\n| A | B |\n|---|---|\n| x | y |\n", "notty", 60)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "x")
}
