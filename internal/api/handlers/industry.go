package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/govdash/internal/aggregate"
	"github.com/wonny/govdash/internal/contracts"
	"github.com/wonny/govdash/internal/dataset"
	"github.com/wonny/govdash/internal/filter"
	"github.com/wonny/govdash/internal/view"
)

// OptionsResponse is the option list for one level under a resolved selection
type OptionsResponse struct {
	Level     contracts.Level  `json:"level"`
	Title     string           `json:"title"`
	Selection filter.Selection `json:"selection"`
	Options   []string         `json:"options"`
}

// GetOptions returns the valid values of one hierarchy level
// GET /api/options/{level}?macro=&sector=&industry=&basic_industry=
func (h *DashboardHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	lp := levelParam{Level: mux.Vars(r)["level"]}
	if err := h.validate.Struct(lp); err != nil {
		respondError(w, http.StatusBadRequest, describe(err).Error())
		return
	}
	level, err := contracts.ParseLevel(lp.Level)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sel, err := h.parseSelection(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	resolved := filter.Resolve(snap.Table, sel)
	respondJSON(w, http.StatusOK, OptionsResponse{
		Level:     level,
		Title:     level.Title(),
		Selection: resolved,
		Options:   filter.ValidOptions(snap.Table, level, resolved),
	})
}

// GetPerformance returns the Industry Performance page model
// GET /api/industry/performance?macro=&sector=&industry=&basic_industry=
func (h *DashboardHandler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	sel, err := h.parseSelection(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, h.industryPage(snap.Table, sel))
}

// industryPage resolves sel, narrows to it and aggregates the result
func (h *DashboardHandler) industryPage(t *dataset.Table, sel filter.Selection) view.IndustryPage {
	opts := filter.Cascade(t, sel)
	rows := filter.Narrow(t, opts.Selection)
	return view.NewIndustryPage(h.cfg, opts, filter.Companies(rows), aggregate.Aggregate(rows))
}
