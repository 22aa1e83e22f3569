// Package view turns derived values into display-ready page models.
// Both the HTML pages and the terminal reports render from these types.
package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wonny/govdash/internal/contracts"
	"github.com/wonny/govdash/internal/dashcfg"
	"github.com/wonny/govdash/internal/filter"
)

// =============================================================================
// Colours
// =============================================================================

// ClassificationColor 분류별 색상 (알 수 없는 값은 grey)
func ClassificationColor(raw string) string {
	switch contracts.ParseClassification(raw) {
	case contracts.Strong:
		return "green"
	case contracts.Adequate:
		return "yellowgreen"
	case contracts.BelowAverage:
		return "yellow"
	case contracts.Weak:
		return "red"
	default:
		return "grey"
	}
}

// ComparisonColor is green for exactly "Better", red otherwise
func ComparisonColor(raw string) string {
	if raw == contracts.Better.String() {
		return "green"
	}
	return "red"
}

// BarColor colours a stock bar by sign
func BarColor(v float64) string {
	if v < 0 {
		return "red"
	}
	return "green"
}

// MetricColor is green when the summary text contains Better
func MetricColor(m contracts.MetricSummary) string {
	if m.Better {
		return "green"
	}
	return "red"
}

var levelBackgrounds = []string{"#e0f7fa", "#b2ebf2", "#80deea", "#4dd0e1"}

// LevelBackground shades hierarchy boxes from top to bottom
func LevelBackground(i int) string {
	if i < 0 {
		i = -i
	}
	return levelBackgrounds[i%len(levelBackgrounds)]
}

// LevelBorder highlights the most specific level
func LevelBorder(i, n int) string {
	if i == n-1 {
		return "#ff7f0e"
	}
	return "#1f77b4"
}

// =============================================================================
// Labels
// =============================================================================

// Number formats v with the fewest digits that round-trip
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Pct formats a percentage with two decimals
func Pct(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// GovernanceLabel is "<score> (Max: <max>)"; a missing score shows as "-"
func GovernanceLabel(p contracts.GovernancePoint) string {
	score := "-"
	if p.Score != nil {
		score = Number(*p.Score)
	}
	return fmt.Sprintf("%s (Max: %s)", score, Number(p.MaxScore))
}

// StockLabel is "<x>% | <comparison>"; x always carries a fraction digit (12.0%)
func StockLabel(p contracts.StockPoint) string {
	return fmt.Sprintf("%s%% | %s", Decimal(p.Value), p.Comparison)
}

// Decimal is Number with at least one fraction digit, so 12 prints as "12.0"
func Decimal(v float64) string {
	s := Number(v)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}

// StockRange pads the value range by 20 points on either side
func StockRange(points []contracts.StockPoint) (lo, hi float64) {
	if len(points) == 0 {
		return -20, 20
	}
	lo, hi = points[0].Value, points[0].Value
	for _, p := range points[1:] {
		lo = math.Min(lo, p.Value)
		hi = math.Max(hi, p.Value)
	}
	return lo - 20, hi + 20
}

// =============================================================================
// Company Details page
// =============================================================================

// ScaleStep is one row of the governance chart, Strong at the top
type ScaleStep struct {
	Ordinal int    `json:"ordinal"`
	Label   string `json:"label"`
}

// GovernanceScale lists chart rows top-down; ordinal 0 holds unknown labels
func GovernanceScale() []ScaleStep {
	steps := make([]ScaleStep, 0, len(contracts.Classifications)+1)
	for i := len(contracts.Classifications) - 1; i >= 0; i-- {
		c := contracts.Classifications[i]
		steps = append(steps, ScaleStep{Ordinal: c.Ordinal(), Label: c.String()})
	}
	return append(steps, ScaleStep{Ordinal: 0, Label: contracts.ClassificationUnknown.String()})
}

// GovernanceRow is one year on the governance chart
type GovernanceRow struct {
	Year           string `json:"year"`
	Classification string `json:"classification"`
	Ordinal        int    `json:"ordinal"`
	Color          string `json:"color"`
	Label          string `json:"label"`
}

// StockBar is one year on the stock performance chart
type StockBar struct {
	Year            string  `json:"year"`
	Value           float64 `json:"value"`
	Comparison      string  `json:"comparison"`
	Color           string  `json:"color"`
	ComparisonColor string  `json:"comparison_color"`
	Label           string  `json:"label"`
	Width           float64 `json:"width"` // share of the widest bar, 0..100
}

// Metric is a short or long term performance box
type Metric struct {
	Label string `json:"label"`
	Text  string `json:"text"`
	Color string `json:"color"`
}

// LevelBox is one level of the industry hierarchy box stack
type LevelBox struct {
	Title      string `json:"title"`
	Value      string `json:"value"`
	Background string `json:"background"`
	Border     string `json:"border"`
}

// CompanyPage is the Company Details page model
type CompanyPage struct {
	Benchmark string                     `json:"benchmark"`
	Companies []contracts.CompanySummary `json:"companies"`
	Detail    contracts.CompanyDetail    `json:"detail"`

	AverageColor string          `json:"average_color"`
	Governance   []GovernanceRow `json:"governance"`
	Stock        []StockBar      `json:"stock"`
	YMin         float64         `json:"y_min"`
	YMax         float64         `json:"y_max"`
	Metrics      []Metric        `json:"metrics"`
	Levels       []LevelBox      `json:"levels"`
}

// NewCompanyPage decorates d for display
func NewCompanyPage(cfg *dashcfg.Config, companies []contracts.CompanySummary, d contracts.CompanyDetail) CompanyPage {
	p := CompanyPage{
		Benchmark:    cfg.Benchmark,
		Companies:    companies,
		Detail:       d,
		AverageColor: ClassificationColor(d.AverageClassification),
	}

	for _, g := range d.Governance {
		p.Governance = append(p.Governance, GovernanceRow{
			Year:           g.Year,
			Classification: g.Raw,
			Ordinal:        g.Ordinal,
			Color:          ClassificationColor(g.Raw),
			Label:          GovernanceLabel(g),
		})
	}

	var widest float64
	for _, s := range d.Stock {
		widest = math.Max(widest, math.Abs(s.Value))
	}
	for _, s := range d.Stock {
		bar := StockBar{
			Year:            s.Year,
			Value:           s.Value,
			Comparison:      s.Comparison,
			Color:           BarColor(s.Value),
			ComparisonColor: ComparisonColor(s.Comparison),
			Label:           StockLabel(s),
		}
		if widest > 0 {
			bar.Width = math.Abs(s.Value) / widest * 100
		}
		p.Stock = append(p.Stock, bar)
	}
	p.YMin, p.YMax = StockRange(d.Stock)

	p.Metrics = []Metric{
		metric(cfg.ShortTermLabel, d.ShortTerm, cfg.Benchmark),
		metric(cfg.LongTermLabel, d.LongTerm, cfg.Benchmark),
	}

	for i, l := range contracts.Levels {
		p.Levels = append(p.Levels, LevelBox{
			Title:      l.Title(),
			Value:      d.Hierarchy.Value(l),
			Background: LevelBackground(i),
			Border:     LevelBorder(i, len(contracts.Levels)),
		})
	}

	return p
}

func metric(label string, m contracts.MetricSummary, benchmark string) Metric {
	return Metric{
		Label: label,
		Text:  fmt.Sprintf("%s than %s", m.Raw, benchmark),
		Color: MetricColor(m),
	}
}

// =============================================================================
// Industry Performance page
// =============================================================================

// Selector is one cascading drop-down
type Selector struct {
	Level    contracts.Level `json:"level"`
	Title    string          `json:"title"`
	Selected string          `json:"selected"`
	Values   []string        `json:"values"`
}

// ShareRow is one classification line of a percentage table
type ShareRow struct {
	Classification string  `json:"classification"`
	Color          string  `json:"color"`
	Better         float64 `json:"better"`
	Worse          float64 `json:"worse"`
	BetterText     string  `json:"better_text"`
	WorseText      string  `json:"worse_text"`
}

// IndustryPage is the Industry Performance page model
type IndustryPage struct {
	Benchmark      string                     `json:"benchmark"`
	Selection      filter.Selection           `json:"selection"`
	Selectors      []Selector                 `json:"selectors"`
	Companies      []contracts.CompanySummary `json:"companies"`
	ShortTermLabel string                     `json:"short_term_label"`
	LongTermLabel  string                     `json:"long_term_label"`
	ShortTerm      []ShareRow                 `json:"short_term"`
	LongTerm       []ShareRow                 `json:"long_term"`
	Unclassified   int                        `json:"unclassified"`
}

// NewIndustryPage decorates the cascade, the narrowed companies and their aggregate
func NewIndustryPage(cfg *dashcfg.Config, opts filter.Options, companies []contracts.CompanySummary, perf contracts.Performance) IndustryPage {
	p := IndustryPage{
		Benchmark:      cfg.Benchmark,
		Selection:      opts.Selection,
		Companies:      companies,
		ShortTermLabel: cfg.ShortTermLabel,
		LongTermLabel:  cfg.LongTermLabel,
		ShortTerm:      shareRows(perf.ShortTerm),
		LongTerm:       shareRows(perf.LongTerm),
		Unclassified:   perf.Unclassified,
	}

	for _, l := range contracts.Levels {
		p.Selectors = append(p.Selectors, Selector{
			Level:    l,
			Title:    l.Title(),
			Selected: opts.Selection.Get(l),
			Values:   opts.Levels[l],
		})
	}

	return p
}

func shareRows(t contracts.PctTable) []ShareRow {
	rows := make([]ShareRow, 0, len(t.Buckets))
	for _, b := range t.Buckets {
		rows = append(rows, ShareRow{
			Classification: b.Classification.String(),
			Color:          ClassificationColor(b.Classification.String()),
			Better:         b.Better,
			Worse:          b.Worse,
			BetterText:     Pct(b.Better),
			WorseText:      Pct(b.Worse),
		})
	}
	return rows
}
