package worldcup

import (
	"strconv"
	"strings"
	"time"
)

// Output identifies one derived region of the dashboard.
type Output uint8

const (
	OutputMap Output = 1 << iota
	OutputYear
	OutputCountry

	OutputNone Output = 0
	OutputAll         = OutputMap | OutputYear | OutputCountry
)

func (o Output) Has(x Output) bool { return o&x == x }

func (o Output) String() string {
	if o == OutputNone {
		return "none"
	}
	var parts []string
	if o.Has(OutputMap) {
		parts = append(parts, "map")
	}
	if o.Has(OutputYear) {
		parts = append(parts, "year")
	}
	if o.Has(OutputCountry) {
		parts = append(parts, "country")
	}
	return strings.Join(parts, "|")
}

// Event is a user selection.
type Event interface {
	// Affects lists the outputs that depend on the selected field.
	Affects() Output
}

type CountrySelected struct{ Country string }

type YearSelected struct{ Year int }

func (CountrySelected) Affects() Output { return OutputMap | OutputCountry }
func (YearSelected) Affects() Output    { return OutputYear }

// Observer is told how long each derivation took.
type Observer interface {
	ObserveDerive(out Output, d time.Duration)
}

// Option is one entry in a selector.
type Option struct {
	Label string
	Value string
}

// Snapshot is the full dashboard output for one selection.
type Snapshot struct {
	Country     string  `json:"country"`
	Year        string  `json:"year"`
	Map         MapView `json:"map"`
	YearText    string  `json:"year_summary"`
	CountryText string  `json:"country_summary"`
}

// DashboardState owns the two selections and the outputs derived from them.
// It is not safe for concurrent use; the UI event loop serialises access.
type DashboardState struct {
	ds       *Dataset
	wins     *WinTable
	observer Observer

	country string
	year    int

	mapView     MapView
	yearText    string
	countryText string
}

type StateOption func(*DashboardState)

func WithObserver(o Observer) StateOption {
	return func(s *DashboardState) { s.observer = o }
}

// NewDashboardState starts with both selections set to All.
func NewDashboardState(ds *Dataset, wins *WinTable, opts ...StateOption) *DashboardState {
	s := &DashboardState{
		ds:      ds,
		wins:    wins,
		country: All,
		year:    AllYears,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.recompute(OutputAll)
	return s
}

// Apply performs the selection and recomputes only the outputs depending on
// it. It returns those outputs so the caller can redraw them.
func (s *DashboardState) Apply(ev Event) Output {
	switch ev := ev.(type) {
	case CountrySelected:
		s.country = ev.Country
		if s.country == "" {
			s.country = All
		}
	case YearSelected:
		s.year = ev.Year
	default:
		return OutputNone
	}
	out := ev.Affects()
	s.recompute(out)
	return out
}

func (s *DashboardState) SelectCountry(country string) Output {
	return s.Apply(CountrySelected{Country: country})
}

func (s *DashboardState) SelectYear(year int) Output {
	return s.Apply(YearSelected{Year: year})
}

func (s *DashboardState) recompute(out Output) {
	if out.Has(OutputMap) {
		start := time.Now()
		s.mapView = DeriveMapData(s.wins, s.country)
		s.observe(OutputMap, start)
	}
	if out.Has(OutputYear) {
		start := time.Now()
		s.yearText = DeriveYearSummary(s.ds, s.year)
		s.observe(OutputYear, start)
	}
	if out.Has(OutputCountry) {
		start := time.Now()
		s.countryText = DeriveCountrySummary(s.wins, s.country)
		s.observe(OutputCountry, start)
	}
}

func (s *DashboardState) observe(out Output, start time.Time) {
	if s.observer != nil {
		s.observer.ObserveDerive(out, time.Since(start))
	}
}

func (s *DashboardState) Country() string { return s.country }
func (s *DashboardState) Year() int       { return s.year }

// Map returns the current map view. Entries are shared; do not modify them.
func (s *DashboardState) Map() MapView           { return s.mapView }
func (s *DashboardState) YearSummary() string    { return s.yearText }
func (s *DashboardState) CountrySummary() string { return s.countryText }

func (s *DashboardState) Dataset() *Dataset   { return s.ds }
func (s *DashboardState) WinTable() *WinTable { return s.wins }

// CountryOptions lists "All Countries" followed by every winner, most titles
// first.
func (s *DashboardState) CountryOptions() []Option {
	opts := make([]Option, 0, len(s.wins.rows)+1)
	opts = append(opts, Option{Label: "All Countries", Value: All})
	for _, r := range s.wins.rows {
		opts = append(opts, Option{Label: r.Country, Value: r.Country})
	}
	return opts
}

// YearOptions lists "All Years" followed by every edition in order.
func (s *DashboardState) YearOptions() []Option {
	opts := make([]Option, 0, s.ds.Len()+1)
	opts = append(opts, Option{Label: "All Years", Value: All})
	for _, y := range s.ds.Years() {
		v := strconv.Itoa(y)
		opts = append(opts, Option{Label: v, Value: v})
	}
	return opts
}

func (s *DashboardState) Snapshot() Snapshot {
	m := s.mapView
	m.Entries = append([]MapEntry(nil), m.Entries...)
	return Snapshot{
		Country:     s.country,
		Year:        FormatYear(s.year),
		Map:         m,
		YearText:    s.yearText,
		CountryText: s.countryText,
	}
}
