package dataset_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/govdash/internal/dataset"
	"github.com/wonny/govdash/internal/dataset/datasettest"
	"github.com/wonny/govdash/pkg/logger"
)

func TestStore_Reload(t *testing.T) {
	first := datasettest.Table(t, datasettest.Sample()[:2]...)
	second := datasettest.Table(t, datasettest.Sample()...)

	tables := []*dataset.Table{first, second}
	calls := 0
	store := dataset.NewStore(func(ctx context.Context) (*dataset.Table, error) {
		next := tables[calls]
		calls++
		return next, nil
	}, logger.Nop())

	_, ok := store.Current()
	assert.False(t, ok)
	assert.Nil(t, store.Table())

	var seen []int64
	store.Subscribe(func(s dataset.Snapshot) { seen = append(seen, s.Version) })

	snap, err := store.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), snap.Version)
	assert.Same(t, first, store.Table())

	held, _ := store.Current()

	snap, err = store.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), snap.Version)
	assert.Same(t, second, store.Table())

	// an earlier snapshot is unaffected by the swap
	assert.Same(t, first, held.Table)
	assert.Equal(t, 2, held.Table.Len())

	assert.Equal(t, []int64{1, 2}, seen)
}

func TestStore_ReloadFailureKeepsCurrent(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)
	fail := false
	store := dataset.NewStore(func(ctx context.Context) (*dataset.Table, error) {
		if fail {
			return nil, &dataset.SchemaError{Missing: []string{"Ticker"}}
		}
		return table, nil
	}, logger.Nop())

	_, err := store.Reload(context.Background())
	require.NoError(t, err)

	fail = true
	_, err = store.Reload(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, dataset.ErrSchema))

	snap, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, int64(1), snap.Version)
	assert.Same(t, table, snap.Table)
}

func TestStore_ConcurrentReaders(t *testing.T) {
	table := datasettest.Table(t, datasettest.Sample()...)
	store := dataset.NewStore(func(ctx context.Context) (*dataset.Table, error) {
		return table, nil
	}, logger.Nop())
	_, err := store.Reload(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.Equal(t, 8, store.Table().Len())
		}()
		go func() {
			defer wg.Done()
			_, err := store.Reload(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestFileLoader_CancelledContext(t *testing.T) {
	load := dataset.FileLoader("unused.csv", dataset.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
