// Package aggregate는 거버넌스 분류별 Better/Worse 비율을 계산한다 (순수 계산기)
package aggregate

import "github.com/wonny/govdash/internal/contracts"

// =============================================================================
// Tally
// =============================================================================

type tally struct {
	better [len(bucketIndex)]int
	worse  [len(bucketIndex)]int
}

// bucketIndex maps Weak..Strong onto array slots
var bucketIndex = [...]contracts.Classification{
	contracts.Weak,
	contracts.BelowAverage,
	contracts.Adequate,
	contracts.Strong,
}

func slot(c contracts.Classification) int {
	for i, b := range bucketIndex {
		if b == c {
			return i
		}
	}
	return -1
}

func (t *tally) add(i int, o contracts.Outcome) {
	switch o {
	case contracts.Better:
		t.better[i]++
	case contracts.Worse:
		t.worse[i]++
	}
}

func (t *tally) table() contracts.PctTable {
	buckets := make([]contracts.OutcomeShare, len(bucketIndex))
	for i, c := range bucketIndex {
		buckets[i] = Share(c, t.better[i], t.worse[i])
	}
	return contracts.PctTable{Buckets: buckets}
}

// =============================================================================
// Aggregate (Pure)
// =============================================================================

// Aggregate 분류별 단기/장기 성과 비율 계산
// Only exact Better/Worse outcomes are counted; short and long term are
// tallied independently. Rows with an unknown average classification are
// left out of every bucket and counted in Unclassified.
// ⭐ SSOT: 비율 계산은 이 함수에서만
func Aggregate(rows []contracts.CompanyRecord) contracts.Performance {
	var short, long tally
	perf := contracts.Performance{Rows: len(rows)}

	for i := range rows {
		idx := slot(rows[i].AverageClassification)
		if idx < 0 {
			perf.Unclassified++
			continue
		}
		short.add(idx, rows[i].ShortTerm.Outcome)
		long.add(idx, rows[i].LongTerm.Outcome)
	}

	perf.ShortTerm = short.table()
	perf.LongTerm = long.table()
	return perf
}

// Share builds one bucket; percentages are {0,0} when no outcome was counted
func Share(c contracts.Classification, better, worse int) contracts.OutcomeShare {
	s := contracts.OutcomeShare{
		Classification: c,
		BetterCount:    better,
		WorseCount:     worse,
	}
	total := better + worse
	if total == 0 {
		return s
	}
	s.Better = float64(better) / float64(total) * 100
	s.Worse = float64(worse) / float64(total) * 100
	return s
}
