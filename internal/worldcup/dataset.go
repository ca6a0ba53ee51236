// Package worldcup holds the fixed table of World Cup finals and the views
// derived from it for the dashboard.
package worldcup

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	FirstEdition = 1930
	LastEdition  = 2022
)

// MatchRecord is one World Cup final.
type MatchRecord struct {
	Year     int    `json:"year"`
	Winner   string `json:"winner"`
	RunnerUp string `json:"runner_up"`
}

// Dataset is an immutable, ordered table of finals.
type Dataset struct {
	records []MatchRecord
	byYear  map[int]int
}

// NewDataset copies records and checks that every year is a unique edition
// year with both teams named.
func NewDataset(records []MatchRecord) (*Dataset, error) {
	ds := &Dataset{
		records: make([]MatchRecord, len(records)),
		byYear:  make(map[int]int, len(records)),
	}
	copy(ds.records, records)
	for i, r := range ds.records {
		if r.Year < FirstEdition || r.Year > LastEdition {
			return nil, fmt.Errorf("record %d: year %d outside [%d,%d]", i, r.Year, FirstEdition, LastEdition)
		}
		if strings.TrimSpace(r.Winner) == "" {
			return nil, fmt.Errorf("record %d (%d): empty winner", i, r.Year)
		}
		if strings.TrimSpace(r.RunnerUp) == "" {
			return nil, fmt.Errorf("record %d (%d): empty runner-up", i, r.Year)
		}
		if j, dup := ds.byYear[r.Year]; dup {
			return nil, fmt.Errorf("record %d: year %d already used by record %d", i, r.Year, j)
		}
		ds.byYear[r.Year] = i
	}
	return ds, nil
}

// WorldCup returns the 22 finals from 1930 to 2022.
func WorldCup() *Dataset {
	ds, err := NewDataset(finals)
	if err != nil {
		panic("worldcup: bad built-in dataset: " + err.Error())
	}
	return ds
}

func (d *Dataset) Len() int { return len(d.records) }

// Records returns a copy of the table in edition order.
func (d *Dataset) Records() []MatchRecord {
	out := make([]MatchRecord, len(d.records))
	copy(out, d.records)
	return out
}

func (d *Dataset) Years() []int {
	return lo.Map(d.records, func(r MatchRecord, _ int) int { return r.Year })
}

// Lookup returns the final played in year.
func (d *Dataset) Lookup(year int) (MatchRecord, bool) {
	i, ok := d.byYear[year]
	if !ok {
		return MatchRecord{}, false
	}
	return d.records[i], true
}

var finals = []MatchRecord{
	{1930, "Uruguay", "Argentina"},
	{1934, "Italy", "Czechoslovakia"},
	{1938, "Italy", "Hungary"},
	{1950, "Uruguay", "Brazil"},
	{1954, "Germany", "Hungary"},
	{1958, "Brazil", "Sweden"},
	{1962, "Brazil", "Czechoslovakia"},
	{1966, "England", "Germany"},
	{1970, "Brazil", "Italy"},
	{1974, "Germany", "Netherlands"},
	{1978, "Argentina", "Netherlands"},
	{1982, "Italy", "Germany"},
	{1986, "Argentina", "Germany"},
	{1990, "Germany", "Argentina"},
	{1994, "Brazil", "Italy"},
	{1998, "France", "Brazil"},
	{2002, "Brazil", "Germany"},
	{2006, "Italy", "France"},
	{2010, "Spain", "Netherlands"},
	{2014, "Germany", "Argentina"},
	{2018, "France", "Croatia"},
	{2022, "Argentina", "France"},
}
