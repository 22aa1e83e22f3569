package dataset

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wonny/govdash/pkg/logger"
)

// LoadFunc produces a fresh table; Store calls it on every (re)load
type LoadFunc func(ctx context.Context) (*Table, error)

// Snapshot is one loaded generation of the dataset
type Snapshot struct {
	Table    *Table
	Version  int64
	LoadedAt time.Time
}

// Store owns the current table. Readers take a Snapshot and keep using it;
// a reload swaps the pointer and never touches a table already handed out.
// ⭐ SSOT: 현재 데이터셋 보관은 Store에서만
type Store struct {
	load    LoadFunc
	logger  *logger.Logger
	current atomic.Pointer[Snapshot]
	version atomic.Int64

	mu        sync.Mutex // serialises Reload and guards listeners
	listeners []func(Snapshot)
}

// NewStore creates an empty store; call Reload once before serving
func NewStore(load LoadFunc, log *logger.Logger) *Store {
	return &Store{
		load:   load,
		logger: log.Component("dataset"),
	}
}

// FileLoader returns a LoadFunc reading path with opts
func FileLoader(path string, opts Options) LoadFunc {
	return func(ctx context.Context) (*Table, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return LoadFile(path, opts)
	}
}

// Subscribe registers fn to run after every successful load
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Reload loads a new table and publishes it.
// On failure the previous snapshot stays current.
func (s *Store) Reload(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	t, err := s.load(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Dataset load failed")
		return Snapshot{}, fmt.Errorf("reload dataset: %w", err)
	}

	snap := &Snapshot{
		Table:    t,
		Version:  s.version.Add(1),
		LoadedAt: time.Now(),
	}
	s.current.Store(snap)

	s.logger.WithFields(map[string]interface{}{
		"source":   t.Source(),
		"rows":     t.Len(),
		"version":  snap.Version,
		"duration": time.Since(start).String(),
	}).Info("Dataset loaded")

	for _, fn := range s.listeners {
		fn(*snap)
	}

	return *snap, nil
}

// Current returns the latest snapshot; ok is false before the first load
func (s *Store) Current() (Snapshot, bool) {
	snap := s.current.Load()
	if snap == nil {
		return Snapshot{}, false
	}
	return *snap, true
}

// Table is a shorthand for Current().Table; nil before the first load
func (s *Store) Table() *Table {
	snap, ok := s.Current()
	if !ok {
		return nil
	}
	return snap.Table
}
