package jobs

import (
	"context"

	"github.com/wonny/govdash/internal/dataset"
	"github.com/wonny/govdash/pkg/logger"
)

// Reloader is the part of dataset.Store the reload job needs
type Reloader interface {
	Reload(ctx context.Context) (dataset.Snapshot, error)
}

// DatasetReloadJob re-reads the dataset file on a schedule
type DatasetReloadJob struct {
	store    Reloader
	schedule string
	logger   *logger.Logger
}

// NewDatasetReloadJob creates a new reload job
func NewDatasetReloadJob(store Reloader, schedule string, log *logger.Logger) *DatasetReloadJob {
	return &DatasetReloadJob{
		store:    store,
		schedule: schedule,
		logger:   log,
	}
}

// Name returns the job name
func (j *DatasetReloadJob) Name() string {
	return "dataset_reload"
}

// Schedule returns the configured cron spec
func (j *DatasetReloadJob) Schedule() string {
	return j.schedule
}

// Run reloads the dataset; a failed load keeps the previous table serving
func (j *DatasetReloadJob) Run(ctx context.Context) error {
	j.logger.Debug("Starting scheduled dataset reload")

	snap, err := j.store.Reload(ctx)
	if err != nil {
		return err
	}

	j.logger.WithFields(map[string]interface{}{
		"version": snap.Version,
		"rows":    snap.Table.Len(),
	}).Info("Dataset reload completed")

	return nil
}
