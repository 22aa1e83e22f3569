// Package detail extracts the per-company series shown on the Company Details page
package detail

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wonny/govdash/internal/contracts"
	"github.com/wonny/govdash/internal/dataset"
)

// ErrCompanyNotFound is returned when no row carries the requested key
var ErrCompanyNotFound = errors.New("company not found")

// =============================================================================
// Coercion (Pure)
// =============================================================================

// ParsePercent 주가 수익률 문자열을 float로 변환
// "12.5%", " 1,204.3% " → 12.5, 1204.3. Missing or malformed text gives 0.0
// so that every year of the series is populated.
func ParsePercent(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "%", "")
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ClassificationOrdinal maps a raw label to its plot position.
// Strong=4, Adequate=3, Below Average=2, Weak=1, anything else 0.
func ClassificationOrdinal(raw string) int {
	return contracts.ParseClassification(raw).Ordinal()
}

// =============================================================================
// Table-wide (Pure)
// =============================================================================

// MaxGovernanceScores 연도별 최대 거버넌스 점수 (전체 테이블 기준)
// Only rows with a non-empty classification that year take part; a year with
// no such row has max 0. The result never depends on a requested company.
func MaxGovernanceScores(t *dataset.Table, years []string) map[string]float64 {
	out := make(map[string]float64, len(years))
	for _, y := range years {
		out[y] = 0
	}

	found := make(map[string]bool, len(years))
	for i := 0; i < t.Len(); i++ {
		rec := t.Record(i)
		for _, y := range years {
			g, ok := rec.GovernanceFor(y)
			if !ok || !g.Present || !g.Score.Valid {
				continue
			}
			if !found[y] || g.Score.Value > out[y] {
				out[y] = g.Score.Value
				found[y] = true
			}
		}
	}
	return out
}

// =============================================================================
// Detail
// =============================================================================

// Detail builds the Company Details view for the first row whose
// Company Name Original equals key. Year windows come from the table schema.
func Detail(t *dataset.Table, key string) (contracts.CompanyDetail, error) {
	rec, ok := find(t, key)
	if !ok {
		return contracts.CompanyDetail{}, fmt.Errorf("%w: %q", ErrCompanyNotFound, key)
	}

	schema := t.Schema()
	maxScores := MaxGovernanceScores(t, schema.GovernanceYears)

	d := contracts.CompanyDetail{
		Name:                       rec.Name,
		NameOriginal:               rec.NameOriginal,
		Ticker:                     rec.Ticker,
		Hierarchy:                  rec.Hierarchy,
		Governance:                 make([]contracts.GovernancePoint, 0, len(schema.GovernanceYears)),
		Stock:                      make([]contracts.StockPoint, 0, len(schema.StockYears)),
		AverageClassification:      rec.AverageClassificationRaw,
		AverageClassificationLevel: rec.AverageClassification,
		ShortTerm:                  summary(rec.ShortTerm),
		LongTerm:                   summary(rec.LongTerm),
	}

	for _, y := range schema.GovernanceYears {
		g, _ := rec.GovernanceFor(y)
		p := contracts.GovernancePoint{
			Year:           y,
			Raw:            g.Raw,
			Classification: g.Classification,
			Ordinal:        g.Classification.Ordinal(),
			MaxScore:       maxScores[y],
		}
		if g.Score.Valid {
			v := g.Score.Value
			p.Score = &v
		}
		d.Governance = append(d.Governance, p)
	}

	for _, y := range schema.StockYears {
		s, _ := rec.StockFor(y)
		d.Stock = append(d.Stock, contracts.StockPoint{
			Year:       y,
			Raw:        s.Raw,
			Value:      ParsePercent(s.Raw),
			Comparison: s.Comparison,
		})
	}

	return d, nil
}

func find(t *dataset.Table, key string) (contracts.CompanyRecord, bool) {
	for i := 0; i < t.Len(); i++ {
		rec := t.Record(i)
		if rec.NameOriginal == key {
			return rec, true
		}
	}
	return contracts.CompanyRecord{}, false
}

func summary(p contracts.PerformanceSummary) contracts.MetricSummary {
	return contracts.MetricSummary{
		Raw:    p.Raw,
		Better: strings.Contains(p.Raw, "Better"),
	}
}
