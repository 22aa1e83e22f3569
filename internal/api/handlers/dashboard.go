package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/wonny/govdash/internal/dashcfg"
	"github.com/wonny/govdash/internal/dataset"
	"github.com/wonny/govdash/internal/filter"
	"github.com/wonny/govdash/pkg/logger"
)

// SnapshotSource yields the dataset generation to serve; dataset.Store implements it
type SnapshotSource interface {
	Current() (dataset.Snapshot, bool)
}

// DashboardHandler serves both dashboard pages and their JSON endpoints.
// Every request reads one snapshot and derives everything from it.
// ⭐ SSOT: 대시보드 API 핸들러는 이 구조체에서만
type DashboardHandler struct {
	source   SnapshotSource
	cfg      *dashcfg.Config
	logger   *logger.Logger
	validate *validator.Validate
	pages    *pageSet
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(source SnapshotSource, cfg *dashcfg.Config, log *logger.Logger) (*DashboardHandler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}

	return &DashboardHandler{
		source:   source,
		cfg:      cfg,
		logger:   log.Component("handlers"),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		pages:    pages,
	}, nil
}

// selectionQuery is the query-string form of a filter.Selection
type selectionQuery struct {
	Macro         string `validate:"max=256"`
	Sector        string `validate:"max=256"`
	Industry      string `validate:"max=256"`
	BasicIndustry string `validate:"max=256"`
}

// levelParam is the {level} path variable
type levelParam struct {
	Level string `validate:"required,oneof=macro sector industry basic_industry"`
}

func (h *DashboardHandler) parseSelection(r *http.Request) (filter.Selection, error) {
	q := r.URL.Query()
	sq := selectionQuery{
		Macro:         q.Get("macro"),
		Sector:        q.Get("sector"),
		Industry:      q.Get("industry"),
		BasicIndustry: q.Get("basic_industry"),
	}
	if err := h.validate.Struct(sq); err != nil {
		return filter.Selection{}, describe(err)
	}

	return filter.Selection{
		Macro:         sq.Macro,
		Sector:        sq.Sector,
		Industry:      sq.Industry,
		BasicIndustry: sq.BasicIndustry,
	}, nil
}

// snapshot writes 503 and returns false when nothing is loaded yet
func (h *DashboardHandler) snapshot(w http.ResponseWriter) (dataset.Snapshot, bool) {
	snap, ok := h.source.Current()
	if !ok || snap.Table == nil {
		respondError(w, http.StatusServiceUnavailable, "Dataset not loaded")
		return dataset.Snapshot{}, false
	}
	return snap, true
}

// DatasetInfo describes the snapshot being served
type DatasetInfo struct {
	Source    string    `json:"source"`
	Rows      int       `json:"rows"`
	Columns   int       `json:"columns"`
	Version   int64     `json:"version"`
	LoadedAt  time.Time `json:"loaded_at"`
	Benchmark string    `json:"benchmark"`

	GovernanceYears []string `json:"governance_years"`
	StockYears      []string `json:"stock_years"`
}

// GetDataset returns information about the loaded dataset
// GET /api/dataset
func (h *DashboardHandler) GetDataset(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	schema := snap.Table.Schema()
	respondJSON(w, http.StatusOK, DatasetInfo{
		Source:          snap.Table.Source(),
		Rows:            snap.Table.Len(),
		Columns:         len(snap.Table.Columns()),
		Version:         snap.Version,
		LoadedAt:        snap.LoadedAt,
		Benchmark:       h.cfg.Benchmark,
		GovernanceYears: schema.GovernanceYears,
		StockYears:      schema.StockYears,
	})
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fieldName(fe.Field()))
	case "oneof":
		return fmt.Errorf("%s must be one of: %s", fieldName(fe.Field()), fe.Param())
	case "max":
		return fmt.Errorf("%s must be at most %s characters", fieldName(fe.Field()), fe.Param())
	default:
		return fmt.Errorf("%s is invalid", fieldName(fe.Field()))
	}
}

func fieldName(goName string) string {
	switch goName {
	case "BasicIndustry":
		return "basic_industry"
	case "Macro":
		return "macro"
	case "Sector":
		return "sector"
	case "Industry":
		return "industry"
	case "Level":
		return "level"
	default:
		return goName
	}
}
