package filter

import (
	"github.com/wonny/govdash/internal/contracts"
	"github.com/wonny/govdash/internal/dataset"
)

// All is the "no constraint" option shown first in every option list
const All = "All"

// Selection holds one value per hierarchy level; "" or All means unconstrained
type Selection struct {
	Macro         string `json:"macro"`
	Sector        string `json:"sector"`
	Industry      string `json:"industry"`
	BasicIndustry string `json:"basic_industry"`
}

// Get returns the selected value at level l
func (s Selection) Get(l contracts.Level) string {
	switch l {
	case contracts.LevelMacro:
		return s.Macro
	case contracts.LevelSector:
		return s.Sector
	case contracts.LevelIndustry:
		return s.Industry
	case contracts.LevelBasicIndustry:
		return s.BasicIndustry
	default:
		return ""
	}
}

// With returns a copy of s with level l set to v
func (s Selection) With(l contracts.Level, v string) Selection {
	switch l {
	case contracts.LevelMacro:
		s.Macro = v
	case contracts.LevelSector:
		s.Sector = v
	case contracts.LevelIndustry:
		s.Industry = v
	case contracts.LevelBasicIndustry:
		s.BasicIndustry = v
	}
	return s
}

// Constrained reports whether level l carries a real constraint
func (s Selection) Constrained(l contracts.Level) bool {
	v := s.Get(l)
	return v != "" && v != All
}

// Normalize spells every unconstrained level as All
func (s Selection) Normalize() Selection {
	for _, l := range contracts.Levels {
		if !s.Constrained(l) {
			s = s.With(l, All)
		}
	}
	return s
}

// Matches reports whether rec satisfies every constrained level of s.
// Comparison is exact and case-sensitive.
func (s Selection) Matches(rec *contracts.CompanyRecord) bool {
	for _, l := range contracts.Levels {
		if s.Constrained(l) && rec.Hierarchy.Value(l) != s.Get(l) {
			return false
		}
	}
	return true
}

// ancestors keeps only the levels strictly above l
func (s Selection) ancestors(l contracts.Level) Selection {
	var out Selection
	depth := l.Depth()
	for _, lv := range contracts.Levels[:max(depth, 0)] {
		out = out.With(lv, s.Get(lv))
	}
	return out
}

// Narrow returns the rows of t matching sel, in table order.
// Each constraint is an independent equality predicate, so the result does not
// depend on the order constraints are applied. t is never modified.
// ⭐ SSOT: 계층 필터링은 이 함수에서만
func Narrow(t *dataset.Table, sel Selection) []contracts.CompanyRecord {
	out := make([]contracts.CompanyRecord, 0)
	for i := 0; i < t.Len(); i++ {
		rec := t.Record(i)
		if sel.Matches(&rec) {
			out = append(out, rec)
		}
	}
	return out
}

// ValidOptions lists All followed by the distinct values of level among rows
// matching the ancestor levels of sel, in first-appearance order.
// Values selected at level or below are ignored.
func ValidOptions(t *dataset.Table, level contracts.Level, sel Selection) []string {
	parent := sel.ancestors(level)

	seen := make(map[string]struct{})
	opts := []string{All}
	for i := 0; i < t.Len(); i++ {
		rec := t.Record(i)
		if !parent.Matches(&rec) {
			continue
		}
		v := rec.Hierarchy.Value(level)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		opts = append(opts, v)
	}
	return opts
}

// Resolve walks the hierarchy top-down and resets to All any level whose value
// is not a valid option under the already-resolved ancestors. Changing a parent
// therefore invalidates exactly the children it no longer contains.
func Resolve(t *dataset.Table, sel Selection) Selection {
	resolved := Selection{}.Normalize()
	for _, l := range contracts.Levels {
		if !sel.Constrained(l) {
			continue
		}
		v := sel.Get(l)
		if contains(ValidOptions(t, l, resolved), v) {
			resolved = resolved.With(l, v)
		}
	}
	return resolved
}

// Options is the full option set for every level under the resolved selection
type Options struct {
	Selection Selection                    `json:"selection"`
	Levels    map[contracts.Level][]string `json:"options"`
}

// Cascade resolves sel and computes every level's option list in one pass
func Cascade(t *dataset.Table, sel Selection) Options {
	resolved := Resolve(t, sel)
	levels := make(map[contracts.Level][]string, len(contracts.Levels))
	for _, l := range contracts.Levels {
		levels[l] = ValidOptions(t, l, resolved)
	}
	return Options{Selection: resolved, Levels: levels}
}

// Companies projects rows onto the (name, ticker) list shown under a selection
func Companies(rows []contracts.CompanyRecord) []contracts.CompanySummary {
	out := make([]contracts.CompanySummary, len(rows))
	for i, r := range rows {
		out[i] = contracts.CompanySummary{
			Name:         r.Name,
			NameOriginal: r.NameOriginal,
			Ticker:       r.Ticker,
		}
	}
	return out
}

// UniqueCompanies is Companies keeping only the first row per Company Name Original,
// in the same order as Table.CompanyKeys
func UniqueCompanies(rows []contracts.CompanyRecord) []contracts.CompanySummary {
	seen := make(map[string]struct{}, len(rows))
	out := make([]contracts.CompanySummary, 0, len(rows))
	for _, c := range Companies(rows) {
		if _, ok := seen[c.NameOriginal]; ok {
			continue
		}
		seen[c.NameOriginal] = struct{}{}
		out = append(out, c)
	}
	return out
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
