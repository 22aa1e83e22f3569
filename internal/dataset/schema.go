package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// Column names of the governance dataset. Per-year columns are built from a year label.
const (
	ColCompanyName         = "Company Name"
	ColCompanyNameOriginal = "Company Name Original"
	ColTicker              = "Ticker"

	ColMacroSector   = "Macro-Economic Sector"
	ColSector        = "Sector"
	ColIndustry      = "Industry"
	ColBasicIndustry = "Basic Industry"

	ColAverageClassification = "Average Classification"
	ColShortTermPerformance  = "Short Term Performance"
	ColLongTermPerformance   = "Long Term Performance"
)

// ClassificationColumn is "Classification <year>"
func ClassificationColumn(year string) string { return "Classification " + year }

// GovernanceScoreColumn is "Governance Score <year>"
func GovernanceScoreColumn(year string) string { return "Governance Score " + year }

// StockPerformanceColumn is "Stock Performance <year>"
func StockPerformanceColumn(year string) string { return "Stock Performance " + year }

// ComparisonColumn is "Comparison <year>"
func ComparisonColumn(year string) string { return "Comparison " + year }

var (
	// ErrSchema is wrapped by every SchemaError
	ErrSchema = errors.New("dataset schema mismatch")

	// ErrUnsupportedFormat is returned for files that are neither .csv nor .xlsx
	ErrUnsupportedFormat = errors.New("unsupported dataset format")

	// ErrNoHeader is returned for an empty input
	ErrNoHeader = errors.New("dataset has no header row")
)

// SchemaError lists every required column absent from the input
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	quoted := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		quoted[i] = fmt.Sprintf("%q", m)
	}
	return fmt.Sprintf("dataset schema: missing column(s) %s", strings.Join(quoted, ", "))
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// Schema fixes which year-labelled columns the table must carry
type Schema struct {
	GovernanceYears []string
	StockYears      []string
}

// RequiredColumns returns every column the loader reads, in a stable order
func (s Schema) RequiredColumns() []string {
	cols := []string{
		ColCompanyName,
		ColCompanyNameOriginal,
		ColTicker,
		ColMacroSector,
		ColSector,
		ColIndustry,
		ColBasicIndustry,
	}
	for _, y := range s.GovernanceYears {
		cols = append(cols, ClassificationColumn(y), GovernanceScoreColumn(y))
	}
	for _, y := range s.StockYears {
		cols = append(cols, StockPerformanceColumn(y), ComparisonColumn(y))
	}
	return append(cols,
		ColAverageClassification,
		ColShortTermPerformance,
		ColLongTermPerformance,
	)
}

// check returns a *SchemaError when header lacks any required column
func (s Schema) check(index map[string]int) error {
	var missing []string
	for _, col := range s.RequiredColumns() {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}
