package worldcup

import (
	"fmt"
	"strconv"
	"strings"
)

// All selects every country.
const All = "All"

// AllYears selects no particular edition. No final was played in year 0.
const AllYears = 0

// DimmedIntensity is the map intensity of a country that has titles but is
// not the selected one. It sits below every real win count and above zero.
const DimmedIntensity = 0.5

const (
	YearPrompt = "Select a year to see the winner and runner-up."
	YearNoData = "No data available for the selected year."
)

// MapEntry is one shaded country on the map.
type MapEntry struct {
	Country   string  `json:"country"`
	Intensity float64 `json:"intensity"`
}

// MapView is the data behind the choropleth. Domain is the colour scale
// range [0, max intensity].
type MapView struct {
	Entries []MapEntry `json:"entries"`
	Domain  [2]float64 `json:"domain"`
}

func isAllCountries(country string) bool { return country == "" || country == All }

// DeriveMapData shades every winner by title count. When a country is
// selected, all other countries are dimmed to DimmedIntensity, including the
// case where the selection matches no winner.
func DeriveMapData(wins *WinTable, selectedCountry string) MapView {
	v := MapView{Entries: make([]MapEntry, len(wins.rows))}
	all := isAllCountries(selectedCountry)
	for i, r := range wins.rows {
		intensity := float64(r.Wins)
		if !all && r.Country != selectedCountry {
			intensity = DimmedIntensity
		}
		v.Entries[i] = MapEntry{Country: r.Country, Intensity: intensity}
		v.Domain[1] = max(v.Domain[1], intensity)
	}
	return v
}

// DeriveYearSummary names the finalists of the selected edition.
func DeriveYearSummary(ds *Dataset, selectedYear int) string {
	if selectedYear == AllYears {
		return YearPrompt
	}
	r, ok := ds.Lookup(selectedYear)
	if !ok {
		return YearNoData
	}
	return fmt.Sprintf("In %d, the winner was %s and the runner-up was %s.", r.Year, r.Winner, r.RunnerUp)
}

// DeriveCountrySummary reports the selected country's title count. It is
// empty when no country is selected.
func DeriveCountrySummary(wins *WinTable, selectedCountry string) string {
	if isAllCountries(selectedCountry) {
		return ""
	}
	wc, ok := wins.Lookup(selectedCountry)
	if !ok || wc.Wins <= 0 {
		return fmt.Sprintf("%s has never won the World Cup.", selectedCountry)
	}
	return fmt.Sprintf("%s has won the World Cup %d times.", wc.Country, wc.Wins)
}

// ParseYear accepts "All", an empty string or an integer year.
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, All) {
		return AllYears, nil
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse year %q: %w", s, err)
	}
	if y == AllYears {
		return 0, fmt.Errorf("parse year %q: use %q to select every year", s, All)
	}
	return y, nil
}

// ParseCountry trims s and maps an empty selection to All.
func ParseCountry(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return All
	}
	return s
}

// FormatYear is the inverse of ParseYear.
func FormatYear(y int) string {
	if y == AllYears {
		return All
	}
	return strconv.Itoa(y)
}
