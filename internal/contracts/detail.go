package contracts

// GovernancePoint is one plotted year on the governance chart
type GovernancePoint struct {
	Year           string         `json:"year"`
	Raw            string         `json:"classification"`
	Classification Classification `json:"-"`
	Ordinal        int            `json:"ordinal"`
	Score          *float64       `json:"score"` // nil when the cell is empty or malformed
	MaxScore       float64        `json:"max_score"`
}

// StockPoint is one bar on the stock performance chart
type StockPoint struct {
	Year       string  `json:"year"`
	Raw        string  `json:"raw"`
	Value      float64 `json:"value"`
	Comparison string  `json:"comparison"`
}

// MetricSummary is a short or long term performance box
type MetricSummary struct {
	Raw    string `json:"value"`
	Better bool   `json:"better"` // text contains "Better"
}

// CompanyDetail is everything the Company Details page shows
type CompanyDetail struct {
	Name         string    `json:"company_name"`
	NameOriginal string    `json:"company_name_original"`
	Ticker       string    `json:"ticker"`
	Hierarchy    Hierarchy `json:"hierarchy"`

	Governance []GovernancePoint `json:"governance"`
	Stock      []StockPoint      `json:"stock"`

	AverageClassification      string         `json:"average_classification"`
	AverageClassificationLevel Classification `json:"average_classification_level"`

	ShortTerm MetricSummary `json:"short_term"`
	LongTerm  MetricSummary `json:"long_term"`
}
