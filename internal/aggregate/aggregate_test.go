package aggregate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/govdash/internal/contracts"
	"github.com/wonny/govdash/internal/dataset/datasettest"
	"github.com/wonny/govdash/internal/filter"
)

func record(avg contracts.Classification, short, long contracts.Outcome) contracts.CompanyRecord {
	return contracts.CompanyRecord{
		AverageClassification: avg,
		ShortTerm:             contracts.PerformanceSummary{Raw: short.String(), Outcome: short},
		LongTerm:              contracts.PerformanceSummary{Raw: long.String(), Outcome: long},
	}
}

func TestAggregate_TwoStrongRows(t *testing.T) {
	rows := []contracts.CompanyRecord{
		record(contracts.Strong, contracts.Better, contracts.Better),
		record(contracts.Strong, contracts.Worse, contracts.Better),
	}

	perf := Aggregate(rows)

	strongShort := perf.ShortTerm.Get(contracts.Strong)
	assert.Equal(t, 50.0, strongShort.Better)
	assert.Equal(t, 50.0, strongShort.Worse)

	strongLong := perf.LongTerm.Get(contracts.Strong)
	assert.Equal(t, 100.0, strongLong.Better)
	assert.Equal(t, 0.0, strongLong.Worse)

	for _, c := range []contracts.Classification{
		contracts.Weak, contracts.BelowAverage, contracts.Adequate,
	} {
		assert.Equal(t, contracts.OutcomeShare{Classification: c}, perf.ShortTerm.Get(c))
		assert.Equal(t, contracts.OutcomeShare{Classification: c}, perf.LongTerm.Get(c))
	}
}

func TestAggregate_Empty(t *testing.T) {
	perf := Aggregate(nil)

	require.Len(t, perf.ShortTerm.Buckets, 4)
	require.Len(t, perf.LongTerm.Buckets, 4)
	for _, b := range append(perf.ShortTerm.Buckets, perf.LongTerm.Buckets...) {
		assert.Zero(t, b.Better)
		assert.Zero(t, b.Worse)
	}
	assert.Zero(t, perf.Rows)
	assert.Zero(t, perf.Unclassified)
}

func TestAggregate_BucketOrder(t *testing.T) {
	perf := Aggregate(nil)

	var order []contracts.Classification
	for _, b := range perf.ShortTerm.Buckets {
		order = append(order, b.Classification)
	}
	assert.Equal(t, []contracts.Classification{
		contracts.Weak,
		contracts.BelowAverage,
		contracts.Adequate,
		contracts.Strong,
	}, order)
}

func TestAggregate_PercentagesSumTo100(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)
	perf := Aggregate(filter.Narrow(table, filter.Selection{}))

	for _, pt := range []contracts.PctTable{perf.ShortTerm, perf.LongTerm} {
		for _, b := range pt.Buckets {
			if b.Total() == 0 {
				assert.Zero(t, b.Better+b.Worse, b.Classification.String())
				continue
			}
			assert.InDelta(t, 100.0, b.Better+b.Worse, 1e-9, b.Classification.String())
		}
	}
}

func TestAggregate_Sample(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)
	perf := Aggregate(filter.Narrow(table, filter.Selection{}))

	assert.Equal(t, 8, perf.Rows)
	assert.Equal(t, 1, perf.Unclassified, "INFY has an unrecognised average classification")

	// Strong: RELIANCE, HDFCBANK, TCS
	strong := perf.ShortTerm.Get(contracts.Strong)
	assert.Equal(t, 2, strong.BetterCount)
	assert.Equal(t, 1, strong.WorseCount)
	assert.InDelta(t, 66.666, strong.Better, 0.01)

	// SBIN long term text is not an exact outcome, so Weak long term has no counts
	weakLong := perf.LongTerm.Get(contracts.Weak)
	assert.Zero(t, weakLong.Total())
	assert.Zero(t, weakLong.Better)
	weakShort := perf.ShortTerm.Get(contracts.Weak)
	assert.Equal(t, 100.0, weakShort.Better)

	adequateLong := perf.LongTerm.Get(contracts.Adequate)
	assert.Equal(t, 50.0, adequateLong.Better)
	assert.Equal(t, 50.0, adequateLong.Worse)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)
	rows := table.Records()
	want := Aggregate(rows)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := append([]contracts.CompanyRecord(nil), rows...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, Aggregate(shuffled))
	}
}

func TestShare(t *testing.T) {
	tests := []struct {
		name          string
		better, worse int
		wantBetter    float64
		wantWorse     float64
	}{
		{"zero denominator", 0, 0, 0, 0},
		{"all better", 3, 0, 100, 0},
		{"quarter", 1, 3, 25, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Share(contracts.Adequate, tt.better, tt.worse)
			assert.Equal(t, tt.wantBetter, s.Better)
			assert.Equal(t, tt.wantWorse, s.Worse)
			assert.Equal(t, tt.better+tt.worse, s.Total())
		})
	}
}
