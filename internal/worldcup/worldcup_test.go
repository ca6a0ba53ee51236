package worldcup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatasetRejectsMalformedRecords(t *testing.T) {
	tests := []struct {
		name    string
		records []MatchRecord
		wantErr string
	}{
		{
			name:    "duplicate year",
			records: []MatchRecord{{1930, "Uruguay", "Argentina"}, {1930, "Italy", "Hungary"}},
			wantErr: "already used",
		},
		{
			name:    "empty winner",
			records: []MatchRecord{{1934, " ", "Czechoslovakia"}},
			wantErr: "empty winner",
		},
		{
			name:    "empty runner-up",
			records: []MatchRecord{{1934, "Italy", ""}},
			wantErr: "empty runner-up",
		},
		{
			name:    "year before first edition",
			records: []MatchRecord{{1926, "Uruguay", "Argentina"}},
			wantErr: "outside",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDataset(tt.records)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWorldCupDataset(t *testing.T) {
	ds := WorldCup()
	require.Equal(t, 22, ds.Len())

	years := ds.Years()
	assert.Equal(t, 1930, years[0])
	assert.Equal(t, 2022, years[len(years)-1])
	assert.NotContains(t, years, 1942)
	assert.NotContains(t, years, 1946)

	r, ok := ds.Lookup(1966)
	require.True(t, ok)
	assert.Equal(t, MatchRecord{1966, "England", "Germany"}, r)

	_, ok = ds.Lookup(1942)
	assert.False(t, ok)
}

func TestDatasetRecordsIsACopy(t *testing.T) {
	ds := WorldCup()
	recs := ds.Records()
	recs[0].Winner = "Atlantis"

	r, _ := ds.Lookup(1930)
	assert.Equal(t, "Uruguay", r.Winner)
}

func TestComputeWinCounts(t *testing.T) {
	ds := WorldCup()
	got := ComputeWinCounts(ds.Records())

	want := []WinCount{
		{"Brazil", 5},
		{"Germany", 4},
		{"Italy", 4},
		{"Argentina", 3},
		{"France", 2},
		{"Uruguay", 2},
		{"England", 1},
		{"Spain", 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ComputeWinCounts mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeWinCountsSumsToRecordCount(t *testing.T) {
	ds := WorldCup()
	total := 0
	for _, wc := range ComputeWinCounts(ds.Records()) {
		assert.Positive(t, wc.Wins)
		total += wc.Wins
	}
	assert.Equal(t, ds.Len(), total)
	assert.Equal(t, ds.Len(), NewWinTable(ds).Total())
}

func TestComputeWinCountsEmpty(t *testing.T) {
	assert.Empty(t, ComputeWinCounts(nil))

	ds, err := NewDataset(nil)
	require.NoError(t, err)
	wins := NewWinTable(ds)
	assert.Zero(t, wins.Len())
	assert.Equal(t, MapView{Entries: []MapEntry{}}, DeriveMapData(wins, All))
}

func TestCountryOptionsFollowWinTable(t *testing.T) {
	ds := WorldCup()
	wins := NewWinTable(ds)
	s := NewDashboardState(ds, wins)

	opts := s.CountryOptions()
	require.Len(t, opts, wins.Len()+1)
	for i, wc := range wins.Rows() {
		assert.Equal(t, Option{Label: wc.Country, Value: wc.Country}, opts[i+1])
	}
}
