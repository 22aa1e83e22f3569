package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/govdash/internal/contracts"
	"github.com/wonny/govdash/internal/dataset/datasettest"
)

func tickers(rows []contracts.CompanyRecord) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Ticker
	}
	return out
}

// permutations of the four levels
func levelOrders() [][]contracts.Level {
	var out [][]contracts.Level
	var permute func(prefix, rest []contracts.Level)
	permute = func(prefix, rest []contracts.Level) {
		if len(rest) == 0 {
			out = append(out, append([]contracts.Level(nil), prefix...))
			return
		}
		for i := range rest {
			next := append(append([]contracts.Level(nil), rest[:i]...), rest[i+1:]...)
			permute(append(prefix, rest[i]), next)
		}
	}
	permute(nil, contracts.Levels)
	return out
}

func TestNarrow(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)

	tests := []struct {
		name string
		sel  Selection
		want []string
	}{
		{"no constraint", Selection{}, []string{"RELIANCE", "IOC", "ONGC", "HDFCBANK", "SBIN", "BAJFINANCE", "INFY", "TCS"}},
		{"all sentinel", Selection{}.Normalize(), []string{"RELIANCE", "IOC", "ONGC", "HDFCBANK", "SBIN", "BAJFINANCE", "INFY", "TCS"}},
		{"macro", Selection{Macro: "Energy"}, []string{"RELIANCE", "IOC", "ONGC"}},
		{"macro + industry", Selection{Macro: "Energy", Industry: "Petroleum Products"}, []string{"RELIANCE", "IOC"}},
		{"basic only", Selection{BasicIndustry: "Private Sector Bank"}, []string{"HDFCBANK"}},
		{"case sensitive", Selection{Macro: "energy"}, []string{}},
		{"inconsistent levels", Selection{Macro: "Energy", Industry: "Banks"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tickers(Narrow(table, tt.sel)))
		})
	}
}

func TestNarrow_Commutes(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)
	selections := []Selection{
		{Macro: "Financial Services", Sector: "Financial Services", Industry: "Banks", BasicIndustry: "Public Sector Bank"},
		{Macro: "Energy", Industry: "Gas"},
		{Sector: "Information Technology", BasicIndustry: "Computers - Software & Consulting"},
		{Macro: "Energy", BasicIndustry: "Private Sector Bank"},
	}

	for _, sel := range selections {
		want := tickers(Narrow(table, sel))

		for _, order := range levelOrders() {
			rows := table.Records()
			for _, l := range order {
				step := Selection{}.With(l, sel.Get(l))
				var kept []contracts.CompanyRecord
				for i := range rows {
					if step.Matches(&rows[i]) {
						kept = append(kept, rows[i])
					}
				}
				rows = kept
			}
			assert.Equal(t, want, append([]string{}, tickers(rows)...), "order %v", order)
		}
	}
}

func TestNarrow_DoesNotMutateTable(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)

	rows := Narrow(table, Selection{Macro: "Energy"})
	rows[0].Ticker = "CHANGED"

	assert.Equal(t, "RELIANCE", table.Record(0).Ticker)
}

func TestValidOptions(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)

	assert.Equal(t,
		[]string{All, "Energy", "Financial Services", "Information Technology"},
		ValidOptions(table, contracts.LevelMacro, Selection{Sector: "ignored"}))

	assert.Equal(t,
		[]string{All, "Oil Gas & Consumable Fuels"},
		ValidOptions(table, contracts.LevelSector, Selection{Macro: "Energy"}))

	assert.Equal(t,
		[]string{All, "Banks", "Finance"},
		ValidOptions(table, contracts.LevelIndustry, Selection{Sector: "Financial Services"}))

	assert.Equal(t,
		[]string{All, "Refineries & Marketing"},
		ValidOptions(table, contracts.LevelBasicIndustry, Selection{Macro: "Energy", Industry: "Petroleum Products", BasicIndustry: "x"}))

	assert.Equal(t,
		[]string{All},
		ValidOptions(table, contracts.LevelSector, Selection{Macro: "Utilities"}))
}

func TestValidOptions_NarrowingIsSubset(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)

	full := ValidOptions(table, contracts.LevelSector, Selection{})
	assert.Equal(t, full, ValidOptions(table, contracts.LevelSector, Selection{Macro: All}))

	for _, macro := range ValidOptions(table, contracts.LevelMacro, Selection{}) {
		narrowed := ValidOptions(table, contracts.LevelSector, Selection{Macro: macro})
		assert.Subset(t, full, narrowed, "macro %q", macro)
		assert.Equal(t, All, narrowed[0])
	}
}

func TestResolve(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)

	tests := []struct {
		name string
		sel  Selection
		want Selection
	}{
		{
			name: "empty normalises to All",
			sel:  Selection{},
			want: Selection{Macro: All, Sector: All, Industry: All, BasicIndustry: All},
		},
		{
			name: "consistent selection kept",
			sel:  Selection{Macro: "Energy", Sector: "Oil Gas & Consumable Fuels", Industry: "Gas"},
			want: Selection{Macro: "Energy", Sector: "Oil Gas & Consumable Fuels", Industry: "Gas", BasicIndustry: All},
		},
		{
			name: "parent change resets stale children",
			sel:  Selection{Macro: "Information Technology", Sector: "Oil Gas & Consumable Fuels", Industry: "Gas", BasicIndustry: "Oil Exploration & Production"},
			want: Selection{Macro: "Information Technology", Sector: All, Industry: All, BasicIndustry: All},
		},
		{
			name: "child valid without intermediate level",
			sel:  Selection{Macro: "Financial Services", BasicIndustry: "Public Sector Bank"},
			want: Selection{Macro: "Financial Services", Sector: All, Industry: All, BasicIndustry: "Public Sector Bank"},
		},
		{
			name: "unknown macro resets everything",
			sel:  Selection{Macro: "Utilities", Industry: "Banks"},
			want: Selection{Macro: All, Sector: All, Industry: "Banks", BasicIndustry: All},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(table, tt.sel)
			assert.Equal(t, tt.want, got)
			// resolving twice is stable
			assert.Equal(t, got, Resolve(table, got))
		})
	}
}

func TestCascade(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)

	opts := Cascade(table, Selection{Macro: "Financial Services", Industry: "Banks"})

	assert.Equal(t, "Banks", opts.Selection.Industry)
	require.Len(t, opts.Levels, 4)
	assert.Equal(t, []string{All, "Financial Services"}, opts.Levels[contracts.LevelSector])
	assert.Equal(t, []string{All, "Private Sector Bank", "Public Sector Bank"}, opts.Levels[contracts.LevelBasicIndustry])
}

func TestCompanies(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)

	got := Companies(Narrow(table, Selection{Industry: "IT - Software"}))
	assert.Equal(t, []contracts.CompanySummary{
		{Name: "Infosys Ltd.", NameOriginal: "INFOSYS LTD.", Ticker: "INFY"},
		{Name: "Tata Consultancy Services Ltd.", NameOriginal: "TATA CONSULTANCY SERVICES LTD.", Ticker: "TCS"},
	}, got)
	assert.Empty(t, Companies(nil))
}

func TestUniqueCompanies(t *testing.T) {
	rows := datasettest.Sample()
	dup := rows[0]
	dup.Ticker = "RELIANCE-PP"
	rows = append(rows, dup)
	table := datasettest.Table(t, rows...)

	all := Companies(table.Records())
	unique := UniqueCompanies(table.Records())

	assert.Len(t, all, 9)
	require.Len(t, unique, 8)
	assert.Equal(t, "RELIANCE", unique[0].Ticker, "first row wins")

	keys := make([]string, len(unique))
	for i, c := range unique {
		keys[i] = c.NameOriginal
	}
	assert.Equal(t, table.CompanyKeys(), keys)
	assert.Empty(t, UniqueCompanies(nil))
}
