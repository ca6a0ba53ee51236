package worldcup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObserver struct {
	calls map[Output]int
}

func (o *countingObserver) ObserveDerive(out Output, _ time.Duration) {
	if o.calls == nil {
		o.calls = map[Output]int{}
	}
	o.calls[out]++
}

func newTestState(opts ...StateOption) *DashboardState {
	ds := WorldCup()
	return NewDashboardState(ds, NewWinTable(ds), opts...)
}

func TestDashboardStateDefaults(t *testing.T) {
	s := newTestState()

	assert.Equal(t, All, s.Country())
	assert.Equal(t, AllYears, s.Year())
	assert.Equal(t, YearPrompt, s.YearSummary())
	assert.Equal(t, "", s.CountrySummary())
	assert.Equal(t, DeriveMapData(s.WinTable(), All), s.Map())
}

func TestDashboardStateSelectionsAreIndependent(t *testing.T) {
	s := newTestState()

	s.SelectCountry("Italy")
	s.SelectYear(1998)
	assert.Equal(t, "Italy", s.Country())
	assert.Equal(t, "Italy has won the World Cup 4 times.", s.CountrySummary())
	assert.Equal(t, "In 1998, the winner was France and the runner-up was Brazil.", s.YearSummary())

	s.SelectCountry(All)
	assert.Equal(t, 1998, s.Year())
	assert.Equal(t, "In 1998, the winner was France and the runner-up was Brazil.", s.YearSummary())

	s.SelectYear(AllYears)
	s.SelectCountry("Spain")
	assert.Equal(t, "Spain", s.Country())
	assert.Equal(t, YearPrompt, s.YearSummary())
}

func TestSelectCountryAssignsAsGiven(t *testing.T) {
	s := newTestState()

	s.SelectCountry(" Brazil ")
	assert.Equal(t, " Brazil ", s.Country())
	assert.Equal(t, DeriveCountrySummary(s.WinTable(), " Brazil "), s.CountrySummary())
	assert.Equal(t, " Brazil  has never won the World Cup.", s.CountrySummary())
	assert.Equal(t, DeriveMapData(s.WinTable(), " Brazil "), s.Map())

	s.SelectCountry("")
	assert.Equal(t, All, s.Country())
	assert.Equal(t, "", s.CountrySummary())
}

func TestApplyRecomputesOnlyDependentOutputs(t *testing.T) {
	obs := &countingObserver{}
	s := newTestState(WithObserver(obs))
	assert.Equal(t, map[Output]int{OutputMap: 1, OutputYear: 1, OutputCountry: 1}, obs.calls)

	obs.calls = nil
	out := s.Apply(CountrySelected{Country: "Brazil"})
	assert.Equal(t, OutputMap|OutputCountry, out)
	assert.Equal(t, map[Output]int{OutputMap: 1, OutputCountry: 1}, obs.calls)

	obs.calls = nil
	out = s.Apply(YearSelected{Year: 1942})
	assert.Equal(t, OutputYear, out)
	assert.Equal(t, map[Output]int{OutputYear: 1}, obs.calls)
	assert.Equal(t, YearNoData, s.YearSummary())

	obs.calls = nil
	assert.Equal(t, OutputNone, s.Apply(nil))
	assert.Nil(t, obs.calls)
}

func TestOutputString(t *testing.T) {
	assert.Equal(t, "none", OutputNone.String())
	assert.Equal(t, "map|country", (OutputMap | OutputCountry).String())
	assert.Equal(t, "map|year|country", OutputAll.String())
}

func TestSelectorOptions(t *testing.T) {
	s := newTestState()

	countries := s.CountryOptions()
	require.Len(t, countries, 9)
	assert.Equal(t, Option{Label: "All Countries", Value: All}, countries[0])
	assert.Equal(t, Option{Label: "Brazil", Value: "Brazil"}, countries[1])

	years := s.YearOptions()
	require.Len(t, years, 23)
	assert.Equal(t, Option{Label: "All Years", Value: All}, years[0])
	for _, opt := range years {
		y, err := ParseYear(opt.Value)
		require.NoError(t, err)
		assert.Equal(t, opt.Value, FormatYear(y))
	}
}

func TestSnapshot(t *testing.T) {
	s := newTestState()
	s.SelectCountry("Brazil")
	s.SelectYear(2022)

	snap := s.Snapshot()
	assert.Equal(t, "Brazil", snap.Country)
	assert.Equal(t, "2022", snap.Year)
	assert.Equal(t, "Brazil has won the World Cup 5 times.", snap.CountryText)
	assert.Equal(t, "In 2022, the winner was Argentina and the runner-up was France.", snap.YearText)

	snap.Map.Entries[0].Intensity = 99
	assert.NotEqual(t, 99.0, s.Map().Entries[0].Intensity)
}
