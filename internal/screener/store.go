package screener

import (
	"context"
	"sync"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/scrynt/internal/interfaces"
	"github.com/ternarybob/scrynt/internal/models"
)

// Store binds the current screener snapshot. The snapshot is fetched
// lazily on first use after startup or invalidation and replaced
// wholesale, never updated in place. Concurrent first reads may each
// trigger a fetch; the last writer wins.
type Store struct {
	source interfaces.StockSource
	logger arbor.ILogger

	mu       sync.Mutex
	snapshot *models.Snapshot
}

// NewStore creates a snapshot store backed by the given source.
func NewStore(source interfaces.StockSource, logger arbor.ILogger) *Store {
	return &Store{
		source: source,
		logger: logger,
	}
}

// Get returns the bound snapshot, fetching one if none is bound. A
// failed fetch binds an empty snapshot (so queries degrade to empty
// results until Invalidate) and returns the fetch error alongside it.
func (s *Store) Get(ctx context.Context) (*models.Snapshot, error) {
	s.mu.Lock()
	snapshot := s.snapshot
	s.mu.Unlock()

	if snapshot != nil {
		return snapshot, nil
	}

	records, err := s.source.Fetch(ctx)
	snapshot = &models.Snapshot{}
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("Screener fetch failed, binding empty snapshot")
	} else {
		snapshot.Records = records
		snapshot.FetchedAt = time.Now().UTC()
		s.logger.Info().
			Int("records", len(records)).
			Msg("Screener snapshot bound")
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	return snapshot, err
}

// Invalidate drops the bound snapshot so the next Get fetches fresh
// data.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.snapshot = nil
	s.mu.Unlock()

	s.logger.Debug().Msg("Screener snapshot invalidated")
}

// LastUpdated returns the fetch time of the bound snapshot, or the zero
// time when no successful fetch has happened.
func (s *Store) LastUpdated() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot == nil {
		return time.Time{}
	}
	return s.snapshot.FetchedAt
}
