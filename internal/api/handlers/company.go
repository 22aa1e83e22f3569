package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/govdash/internal/detail"
	"github.com/wonny/govdash/internal/filter"
	"github.com/wonny/govdash/internal/view"
)

// ListCompanies returns every company in table order
// GET /api/companies
func (h *DashboardHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	companies := filter.Companies(snap.Table.Records())
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":     len(companies),
		"companies": companies,
	})
}

// GetCompany returns the Company Details page model
// GET /api/companies/{name}
func (h *DashboardHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" {
		respondError(w, http.StatusBadRequest, "company name is required")
		return
	}

	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	d, err := detail.Detail(snap.Table, name)
	if errors.Is(err, detail.ErrCompanyNotFound) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.logger.WithContext(r.Context()).WithError(err).WithField("company", name).Error("Failed to build company detail")
		respondError(w, http.StatusInternalServerError, "Failed to build company detail")
		return
	}

	page := view.NewCompanyPage(h.cfg, nil, d)
	respondJSON(w, http.StatusOK, page)
}
