package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/govdash/internal/aggregate"
	"github.com/wonny/govdash/internal/contracts"
	"github.com/wonny/govdash/internal/dashcfg"
	"github.com/wonny/govdash/internal/dataset/datasettest"
	"github.com/wonny/govdash/internal/detail"
	"github.com/wonny/govdash/internal/filter"
)

func TestColors(t *testing.T) {
	assert.Equal(t, "green", ClassificationColor("Strong"))
	assert.Equal(t, "yellowgreen", ClassificationColor("Adequate"))
	assert.Equal(t, "yellow", ClassificationColor("Below Average"))
	assert.Equal(t, "red", ClassificationColor("Weak"))
	assert.Equal(t, "grey", ClassificationColor("Excellent"))
	assert.Equal(t, "grey", ClassificationColor(""))

	assert.Equal(t, "green", ComparisonColor("Better"))
	assert.Equal(t, "red", ComparisonColor("Worse"))
	assert.Equal(t, "red", ComparisonColor("Better than NIFTY 100"))

	assert.Equal(t, "red", BarColor(-0.1))
	assert.Equal(t, "green", BarColor(0))

	assert.Equal(t, "#e0f7fa", LevelBackground(0))
	assert.Equal(t, "#4dd0e1", LevelBackground(3))
	assert.Equal(t, "#e0f7fa", LevelBackground(4))
	assert.Equal(t, "#1f77b4", LevelBorder(0, 4))
	assert.Equal(t, "#ff7f0e", LevelBorder(3, 4))
}

func TestLabels(t *testing.T) {
	score := 62.0
	assert.Equal(t, "62 (Max: 80)", GovernanceLabel(contracts.GovernancePoint{Score: &score, MaxScore: 80}))
	assert.Equal(t, "- (Max: 0)", GovernanceLabel(contracts.GovernancePoint{}))

	assert.Equal(t, "12.4% | Better", StockLabel(contracts.StockPoint{Value: 12.4, Comparison: "Better"}))
	assert.Equal(t, "0.0% | ", StockLabel(contracts.StockPoint{}))
	assert.Equal(t, "12.0% | Worse", StockLabel(contracts.StockPoint{Value: 12, Comparison: "Worse"}))
	assert.Equal(t, "-55.0% | Worse", StockLabel(contracts.StockPoint{Value: -55, Comparison: "Worse"}))

	assert.Equal(t, "66.67%", Pct(200.0/3))
	assert.Equal(t, "0.00%", Pct(0))
}

func TestGovernanceScale(t *testing.T) {
	assert.Equal(t, []ScaleStep{
		{4, "Strong"}, {3, "Adequate"}, {2, "Below Average"}, {1, "Weak"}, {0, "Unknown"},
	}, GovernanceScale())
}

func TestStockRange(t *testing.T) {
	lo, hi := StockRange([]contracts.StockPoint{{Value: -38.2}, {Value: 102.5}, {Value: 0}})
	assert.InDelta(t, -58.2, lo, 1e-9)
	assert.InDelta(t, 122.5, hi, 1e-9)

	lo, hi = StockRange(nil)
	assert.Equal(t, -20.0, lo)
	assert.Equal(t, 20.0, hi)
}

func TestNewCompanyPage(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)
	d, err := detail.Detail(table, "INDIAN OIL CORPORATION LTD.")
	require.NoError(t, err)

	cfg := dashcfg.Default()
	p := NewCompanyPage(cfg, filter.Companies(table.Records()), d)

	assert.Equal(t, "NIFTY 100", p.Benchmark)
	assert.Len(t, p.Companies, 8)
	assert.Equal(t, "yellow", p.AverageColor)

	require.Len(t, p.Governance, 3)
	assert.Equal(t, "red", p.Governance[1].Color)
	assert.Equal(t, "39 (Max: 82)", p.Governance[1].Label)

	require.Len(t, p.Stock, 5)
	assert.Equal(t, "red", p.Stock[0].Color)
	assert.Equal(t, "green", p.Stock[4].ComparisonColor)
	assert.Equal(t, 100.0, p.Stock[4].Width)

	require.Len(t, p.Metrics, 2)
	assert.Equal(t, cfg.ShortTermLabel, p.Metrics[0].Label)
	assert.Equal(t, "Worse than NIFTY 100", p.Metrics[0].Text)
	assert.Equal(t, "red", p.Metrics[0].Color)

	require.Len(t, p.Levels, 4)
	assert.Equal(t, "Macro-Economic Sector", p.Levels[0].Title)
	assert.Equal(t, "Energy", p.Levels[0].Value)
	assert.Equal(t, "#ff7f0e", p.Levels[3].Border)
}

func TestNewIndustryPage(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)
	sel := filter.Selection{Macro: "Information Technology"}

	opts := filter.Cascade(table, sel)
	rows := filter.Narrow(table, opts.Selection)
	p := NewIndustryPage(dashcfg.Default(), opts, filter.Companies(rows), aggregate.Aggregate(rows))

	require.Len(t, p.Selectors, 4)
	assert.Equal(t, "Information Technology", p.Selectors[0].Selected)
	assert.Equal(t, filter.All, p.Selectors[1].Selected)
	assert.Equal(t, []string{filter.All, "Information Technology"}, p.Selectors[1].Values)

	assert.Len(t, p.Companies, 2)
	assert.Equal(t, 1, p.Unclassified)

	require.Len(t, p.ShortTerm, 4)
	assert.Equal(t, "Strong", p.ShortTerm[3].Classification)
	assert.Equal(t, "100.00%", p.ShortTerm[3].BetterText)
	assert.Equal(t, "0.00%", p.ShortTerm[0].BetterText)
}
