package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wonny/govdash/internal/contracts"
)

// Table is the loaded dataset. It is never modified after construction,
// so a *Table can be shared by any number of concurrent readers.
// ⭐ SSOT: 원본 행 → CompanyRecord 변환은 여기서만 (ingestion 1회)
type Table struct {
	header  []string
	index   map[string]int
	rows    [][]string
	records []contracts.CompanyRecord
	schema  Schema
	source  string
}

// NewTable validates header against schema and types every row.
// rows may be ragged; missing trailing cells read as empty.
func NewTable(header []string, rows [][]string, schema Schema) (*Table, error) {
	if len(header) == 0 {
		return nil, ErrNoHeader
	}

	h := make([]string, len(header))
	copy(h, header)
	h[0] = strings.TrimPrefix(h[0], "\ufeff") // Excel CSV exports carry a BOM

	index := make(map[string]int, len(h))
	for i, name := range h {
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	if err := schema.check(index); err != nil {
		return nil, err
	}

	t := &Table{
		header:  h,
		index:   index,
		rows:    make([][]string, 0, len(rows)),
		records: make([]contracts.CompanyRecord, 0, len(rows)),
		schema:  schema,
	}

	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		r := make([]string, len(row))
		copy(r, row)
		t.rows = append(t.rows, r)
		t.records = append(t.records, t.buildRecord(r))
	}

	return t, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func (t *Table) cell(row []string, col string) string {
	i, ok := t.index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func (t *Table) buildRecord(row []string) contracts.CompanyRecord {
	rec := contracts.CompanyRecord{
		Name:         t.cell(row, ColCompanyName),
		NameOriginal: t.cell(row, ColCompanyNameOriginal),
		Ticker:       t.cell(row, ColTicker),
		Hierarchy: contracts.Hierarchy{
			Macro:         t.cell(row, ColMacroSector),
			Sector:        t.cell(row, ColSector),
			Industry:      t.cell(row, ColIndustry),
			BasicIndustry: t.cell(row, ColBasicIndustry),
		},
		Governance: make([]contracts.GovernanceEntry, 0, len(t.schema.GovernanceYears)),
		Stock:      make([]contracts.StockEntry, 0, len(t.schema.StockYears)),
	}

	for _, y := range t.schema.GovernanceYears {
		raw := t.cell(row, ClassificationColumn(y))
		rec.Governance = append(rec.Governance, contracts.GovernanceEntry{
			Year:           y,
			Raw:            raw,
			Present:        raw != "",
			Classification: contracts.ParseClassification(raw),
			Score:          parseScore(t.cell(row, GovernanceScoreColumn(y))),
		})
	}

	for _, y := range t.schema.StockYears {
		rec.Stock = append(rec.Stock, contracts.StockEntry{
			Year:       y,
			Raw:        t.cell(row, StockPerformanceColumn(y)),
			Comparison: t.cell(row, ComparisonColumn(y)),
		})
	}

	rec.AverageClassificationRaw = t.cell(row, ColAverageClassification)
	rec.AverageClassification = contracts.ParseClassification(rec.AverageClassificationRaw)

	short := t.cell(row, ColShortTermPerformance)
	rec.ShortTerm = contracts.PerformanceSummary{Raw: short, Outcome: contracts.ParseOutcome(short)}
	long := t.cell(row, ColLongTermPerformance)
	rec.LongTerm = contracts.PerformanceSummary{Raw: long, Outcome: contracts.ParseOutcome(long)}

	return rec
}

func parseScore(s string) contracts.Score {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return contracts.Score{}
	}
	return contracts.Score{Value: v, Valid: true}
}

// Len is the number of data rows
func (t *Table) Len() int {
	return len(t.records)
}

// Record returns row i
func (t *Table) Record(i int) contracts.CompanyRecord {
	return t.records[i]
}

// Records returns a copy of the row slice; callers may reorder or truncate it freely
func (t *Table) Records() []contracts.CompanyRecord {
	out := make([]contracts.CompanyRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Schema returns the year windows the table was validated against
func (t *Table) Schema() Schema {
	return t.schema
}

// Source is the path or name the table was read from
func (t *Table) Source() string {
	return t.source
}

// Columns returns the header in file order
func (t *Table) Columns() []string {
	out := make([]string, len(t.header))
	copy(out, t.header)
	return out
}

// HasColumn reports whether the header carries name
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the raw text of one column for every row
func (t *Table) Column(name string) ([]string, error) {
	if !t.HasColumn(name) {
		return nil, &SchemaError{Missing: []string{name}}
	}
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = t.cell(row, name)
	}
	return out, nil
}

// Value returns the raw cell at (row, column)
func (t *Table) Value(row int, column string) (string, error) {
	if row < 0 || row >= len(t.rows) {
		return "", fmt.Errorf("row %d out of range [0,%d)", row, len(t.rows))
	}
	if !t.HasColumn(column) {
		return "", &SchemaError{Missing: []string{column}}
	}
	return t.cell(t.rows[row], column), nil
}

// CompanyKeys lists distinct Company Name Original values in file order
func (t *Table) CompanyKeys() []string {
	seen := make(map[string]struct{}, len(t.records))
	keys := make([]string, 0, len(t.records))
	for _, r := range t.records {
		if _, ok := seen[r.NameOriginal]; ok {
			continue
		}
		seen[r.NameOriginal] = struct{}{}
		keys = append(keys, r.NameOriginal)
	}
	return keys
}
