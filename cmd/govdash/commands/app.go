package commands

import (
	"context"
	"fmt"

	"github.com/wonny/govdash/internal/dashcfg"
	"github.com/wonny/govdash/internal/dataset"
	"github.com/wonny/govdash/pkg/config"
	"github.com/wonny/govdash/pkg/httputil"
	"github.com/wonny/govdash/pkg/logger"
)

// app is what every command needs: config, logger and a loaded dataset
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	dash  *dashcfg.Config
	store *dataset.Store
}

// bootstrap loads configuration and the dataset once
func bootstrap(ctx context.Context) (*app, error) {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Dashboard layout (year windows, benchmark)
	dash, err := dashcfg.Load(cfg.DashboardConfig)
	if err != nil {
		return nil, fmt.Errorf("load dashboard config: %w", err)
	}

	// 4. Load dataset (file or http(s) URL)
	opts := dataset.Options{Schema: dash.Schema(), Sheet: cfg.Dataset.Sheet}
	client := httputil.NewWithTimeout(log, cfg.Dataset.FetchTimeout)
	store := dataset.NewStore(dataset.SourceLoader(client, cfg.Dataset.Path, opts), log)
	if _, err := store.Reload(ctx); err != nil {
		return nil, err
	}

	return &app{cfg: cfg, log: log, dash: dash, store: store}, nil
}

// table is the table loaded by bootstrap
func (a *app) table() *dataset.Table {
	return a.store.Table()
}
