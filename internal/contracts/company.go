package contracts

import "fmt"

// Level names one tier of the business classification hierarchy
type Level string

const (
	LevelMacro         Level = "macro"
	LevelSector        Level = "sector"
	LevelIndustry      Level = "industry"
	LevelBasicIndustry Level = "basic_industry"
)

// Levels lists the hierarchy top-down
var Levels = []Level{LevelMacro, LevelSector, LevelIndustry, LevelBasicIndustry}

// ParseLevel accepts the query/CLI spelling of a level
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown hierarchy level %q", s)
}

// Depth is the 0-based position of l in Levels, -1 when not a level
func (l Level) Depth() int {
	for i, lv := range Levels {
		if lv == l {
			return i
		}
	}
	return -1
}

// Title is the human label used by both pages
func (l Level) Title() string {
	switch l {
	case LevelMacro:
		return "Macro-Economic Sector"
	case LevelSector:
		return "Sector"
	case LevelIndustry:
		return "Industry"
	case LevelBasicIndustry:
		return "Basic Industry"
	default:
		return string(l)
	}
}

// Hierarchy is a record's four-level business classification
type Hierarchy struct {
	Macro         string `json:"macro"`
	Sector        string `json:"sector"`
	Industry      string `json:"industry"`
	BasicIndustry string `json:"basic_industry"`
}

// Value returns the hierarchy value at level l
func (h Hierarchy) Value(l Level) string {
	switch l {
	case LevelMacro:
		return h.Macro
	case LevelSector:
		return h.Sector
	case LevelIndustry:
		return h.Industry
	case LevelBasicIndustry:
		return h.BasicIndustry
	default:
		return ""
	}
}

// Score is a governance score cell; Valid is false for empty or malformed cells
type Score struct {
	Value float64
	Valid bool
}

// GovernanceEntry is one year of the governance series
type GovernanceEntry struct {
	Year string

	// Raw is the classification text as stored; Present is false for an empty cell
	Raw            string
	Present        bool
	Classification Classification

	Score Score
}

// StockEntry is one year of the stock performance series
type StockEntry struct {
	Year       string
	Raw        string // e.g. "12.5%", "1,204.3%", "N/A"
	Comparison string // raw, normally Better or Worse
}

// PerformanceSummary is a short/long term summary field
type PerformanceSummary struct {
	Raw     string
	Outcome Outcome
}

// CompanyRecord is one row of the governance dataset.
// Categorical fields are typed at ingestion; raw text is kept for display.
type CompanyRecord struct {
	Name         string // Company Name (display)
	NameOriginal string // Company Name Original (lookup key)
	Ticker       string

	Hierarchy Hierarchy

	Governance []GovernanceEntry
	Stock      []StockEntry

	AverageClassificationRaw string
	AverageClassification    Classification

	ShortTerm PerformanceSummary
	LongTerm  PerformanceSummary
}

// GovernanceFor returns the entry for year, if the record has one
func (r *CompanyRecord) GovernanceFor(year string) (GovernanceEntry, bool) {
	for _, g := range r.Governance {
		if g.Year == year {
			return g, true
		}
	}
	return GovernanceEntry{Year: year}, false
}

// StockFor returns the entry for year, if the record has one
func (r *CompanyRecord) StockFor(year string) (StockEntry, bool) {
	for _, s := range r.Stock {
		if s.Year == year {
			return s, true
		}
	}
	return StockEntry{Year: year}, false
}

// CompanySummary is the (name, ticker) pair listed under a filtered selection
type CompanySummary struct {
	Name         string `json:"company_name"`
	NameOriginal string `json:"company_name_original"`
	Ticker       string `json:"ticker"`
}
