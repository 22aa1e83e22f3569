package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"

	"github.com/wonny/govdash/internal/detail"
	"github.com/wonny/govdash/internal/filter"
	"github.com/wonny/govdash/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

type pageSet struct {
	company  *template.Template
	industry *template.Template
}

var pageFuncs = template.FuncMap{
	"pct": view.Pct,
	"num": view.Number,
	"companyURL": func(key string) string {
		return "/company?name=" + url.QueryEscape(key)
	},
}

func parsePages() (*pageSet, error) {
	company, err := template.New("layout.html").Funcs(pageFuncs).ParseFS(templateFS, "templates/layout.html", "templates/company.html")
	if err != nil {
		return nil, err
	}
	industry, err := template.New("layout.html").Funcs(pageFuncs).ParseFS(templateFS, "templates/layout.html", "templates/industry.html")
	if err != nil {
		return nil, err
	}
	return &pageSet{company: company, industry: industry}, nil
}

// pageData is what layout.html renders around either page
type pageData struct {
	Title   string
	Active  string
	Version int64

	Company  *view.CompanyPage
	Scale    []view.ScaleStep
	Industry *view.IndustryPage
}

// renderHTML buffers the page so a template error still yields a clean 500
func (h *DashboardHandler) renderHTML(w http.ResponseWriter, r *http.Request, tpl *template.Template, data pageData) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		h.logger.WithContext(r.Context()).WithError(err).WithField("page", data.Active).Error("Failed to render page")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// CompanyPage renders the Company Details page; name defaults to the first company
// GET /company?name=
func (h *DashboardHandler) CompanyPage(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.source.Current()
	if !ok || snap.Table == nil {
		http.Error(w, "Dataset not loaded", http.StatusServiceUnavailable)
		return
	}

	companies := filter.UniqueCompanies(snap.Table.Records())
	if len(companies) == 0 {
		http.Error(w, "Dataset has no companies", http.StatusNotFound)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = companies[0].NameOriginal
	}

	d, err := detail.Detail(snap.Table, name)
	if errors.Is(err, detail.ErrCompanyNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.WithContext(r.Context()).WithError(err).WithField("company", name).Error("Failed to build company detail")
		http.Error(w, "Failed to build company detail", http.StatusInternalServerError)
		return
	}

	page := view.NewCompanyPage(h.cfg, companies, d)
	h.renderHTML(w, r, h.pages.company, pageData{
		Title:   "Company Details",
		Active:  "company",
		Version: snap.Version,
		Company: &page,
		Scale:   view.GovernanceScale(),
	})
}

// IndustryPage renders the Industry Performance page
// GET /industry?macro=&sector=&industry=&basic_industry=
func (h *DashboardHandler) IndustryPage(w http.ResponseWriter, r *http.Request) {
	sel, err := h.parseSelection(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snap, ok := h.source.Current()
	if !ok || snap.Table == nil {
		http.Error(w, "Dataset not loaded", http.StatusServiceUnavailable)
		return
	}

	page := h.industryPage(snap.Table, sel)
	h.renderHTML(w, r, h.pages.industry, pageData{
		Title:    "Performance Dashboard",
		Active:   "industry",
		Version:  snap.Version,
		Industry: &page,
	})
}
