package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/govdash/internal/api/handlers"
	"github.com/wonny/govdash/pkg/config"
	"github.com/wonny/govdash/pkg/logger"
)

// RouterDeps bundles what NewRouter wires together
type RouterDeps struct {
	Dashboard *handlers.DashboardHandler
	Events    http.Handler   // websocket stream; omitted when nil
	Metrics   *Metrics       // request metrics; omitted when nil
	RateLimit config.RateLimitConfig
	Logger    *logger.Logger
}

// NewRouter creates and configures the HTTP router
// ⭐ SSOT: 라우팅 설정은 이 함수에서만
func NewRouter(deps RouterDeps) http.Handler {
	log := deps.Logger.Component("http")
	h := deps.Dashboard

	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	// Pages
	r.Handle("/", http.RedirectHandler("/company", http.StatusFound)).Methods("GET")
	r.HandleFunc("/company", h.CompanyPage).Methods("GET")
	r.HandleFunc("/industry", h.IndustryPage).Methods("GET")

	// JSON API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/dataset", h.GetDataset).Methods("GET")
	api.HandleFunc("/companies", h.ListCompanies).Methods("GET")
	api.HandleFunc("/companies/{name:.+}", h.GetCompany).Methods("GET")
	api.HandleFunc("/options/{level}", h.GetOptions).Methods("GET")
	api.HandleFunc("/industry/performance", h.GetPerformance).Methods("GET")

	// Dataset events
	if deps.Events != nil {
		r.Handle("/ws", deps.Events).Methods("GET")
	}

	// Apply middleware (outermost first)
	r.Use(requestIDMiddleware)
	r.Use(recoveryMiddleware(log))
	r.Use(loggingMiddleware(log))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.middleware)
	}
	if deps.RateLimit.Enabled {
		r.Use(rateLimitMiddleware(deps.RateLimit.RPS, deps.RateLimit.Burst, log))
	}

	return r
}

// healthCheckHandler returns server health status
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "govdash",
	})
}
