package worldcup

import (
	"sort"

	"github.com/samber/lo"
)

// WinCount is the number of finals a country has won.
type WinCount struct {
	Country string `json:"country"`
	Wins    int    `json:"wins"`
}

// ComputeWinCounts groups records by winner. Rows are ordered by wins
// descending, then by country name.
func ComputeWinCounts(records []MatchRecord) []WinCount {
	counts := lo.CountValuesBy(records, func(r MatchRecord) string { return r.Winner })
	out := make([]WinCount, 0, len(counts))
	for country, wins := range counts {
		out = append(out, WinCount{Country: country, Wins: wins})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Country < out[j].Country
	})
	return out
}

// WinTable is an immutable set of WinCounts indexed by country.
type WinTable struct {
	rows  []WinCount
	index map[string]int
	total int
	max   int
}

func NewWinTable(ds *Dataset) *WinTable {
	return newWinTable(ComputeWinCounts(ds.records))
}

func newWinTable(rows []WinCount) *WinTable {
	t := &WinTable{
		rows:  rows,
		index: make(map[string]int, len(rows)),
	}
	for i, r := range rows {
		t.index[r.Country] = i
		t.total += r.Wins
		t.max = max(t.max, r.Wins)
	}
	return t
}

func (t *WinTable) Lookup(country string) (WinCount, bool) {
	i, ok := t.index[country]
	if !ok {
		return WinCount{}, false
	}
	return t.rows[i], true
}

// Rows returns a copy of the table rows.
func (t *WinTable) Rows() []WinCount {
	out := make([]WinCount, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *WinTable) Len() int   { return len(t.rows) }
func (t *WinTable) Total() int { return t.total }
func (t *WinTable) Max() int   { return t.max }
