package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wonny/govdash/internal/api"
	"github.com/wonny/govdash/internal/api/events"
	"github.com/wonny/govdash/internal/api/handlers"
	"github.com/wonny/govdash/internal/dataset"
	"github.com/wonny/govdash/internal/scheduler"
	"github.com/wonny/govdash/internal/scheduler/jobs"
)

const shutdownTimeout = 30 * time.Second

var servePort string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "대시보드 HTTP 서버 시작",
	Long: `Start the dashboard server.

Serves the company and industry pages, the JSON API and the /ws event
stream. With RELOAD_SCHEDULE set the dataset is re-read on that cron
spec; with METRICS_ENABLED=true Prometheus metrics are served on
METRICS_PORT.

Examples:
  go run ./cmd/govdash serve
  go run ./cmd/govdash serve --port 8090`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "server port (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Config, logger, dataset
	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	if servePort != "" {
		a.cfg.Port = servePort
	}
	log := a.log

	// 2. Events + metrics, both fed by dataset reloads
	hub := events.NewHub(log)
	a.store.Subscribe(func(s dataset.Snapshot) {
		hub.Publish(events.DatasetLoaded(s))
	})

	var metrics *api.Metrics
	if a.cfg.MetricsEnabled {
		metrics = api.NewMetrics(hub.Clients)
		a.store.Subscribe(metrics.ObserveDataset)
	}

	if snap, ok := a.store.Current(); ok {
		hub.Publish(events.DatasetLoaded(snap))
		if metrics != nil {
			metrics.ObserveDataset(snap)
		}
	}

	// 3. Handlers + router
	dashboard, err := handlers.NewDashboardHandler(a.store, a.dash, log)
	if err != nil {
		return fmt.Errorf("init dashboard handler: %w", err)
	}

	router := api.NewRouter(api.RouterDeps{
		Dashboard: dashboard,
		Events:    hub,
		Metrics:   metrics,
		RateLimit: a.cfg.RateLimit,
		Logger:    log,
	})

	g, gctx := errgroup.WithContext(ctx)

	// 4. HTTP servers
	servers := []*api.Server{api.New(a.cfg, log, router)}
	if metrics != nil {
		servers = append(servers, api.NewMetricsServer(a.cfg, log, metrics))
	}
	for _, srv := range servers {
		srv := srv
		g.Go(srv.Start)
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	// 5. Event hub
	g.Go(func() error { return hub.Run(gctx) })

	// 6. Scheduled reloads
	if spec := a.cfg.Dataset.ReloadSchedule; spec != "" {
		var opts []scheduler.Option
		if metrics != nil {
			opts = append(opts, scheduler.WithResultHook(metrics.ObserveJob))
		}
		sched := scheduler.New(log, opts...)
		if err := sched.AddJob(jobs.NewDatasetReloadJob(a.store, spec, log)); err != nil {
			return fmt.Errorf("schedule dataset reload: %w", err)
		}
		g.Go(func() error { return sched.Run(gctx) })
	}

	log.Infof("govdash ready: %d companies, http://localhost:%s", a.table().Len(), a.cfg.Port)

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Server stopped with error")
		return err
	}

	log.Info("Server exited")
	return nil
}
