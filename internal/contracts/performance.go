package contracts

// OutcomeShare is the Better/Worse split of one classification bucket
type OutcomeShare struct {
	Classification Classification `json:"classification"`
	Better         float64        `json:"better_pct"`
	Worse          float64        `json:"worse_pct"`
	BetterCount    int            `json:"better_count"`
	WorseCount     int            `json:"worse_count"`
}

// Total is the number of rows with a recognised outcome
func (s OutcomeShare) Total() int {
	return s.BetterCount + s.WorseCount
}

// PctTable holds one OutcomeShare per known classification, worst-to-best
type PctTable struct {
	Buckets []OutcomeShare `json:"buckets"`
}

// Get returns the share for c; zero share when c has no bucket
func (t PctTable) Get(c Classification) OutcomeShare {
	for _, b := range t.Buckets {
		if b.Classification == c {
			return b
		}
	}
	return OutcomeShare{Classification: c}
}

// Performance is the aggregate over a filtered set of companies
// ⭐ SSOT: 분류별 성과 비율 결과 타입
type Performance struct {
	ShortTerm PctTable `json:"short_term"`
	LongTerm  PctTable `json:"long_term"`

	Rows         int `json:"rows"`
	Unclassified int `json:"unclassified"` // rows whose Average Classification is unknown
}
