package search

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/recipe-finder/internal/logging"
	"github.com/ytget/recipe-finder/internal/mealdb"
	"github.com/ytget/recipe-finder/internal/model"
)

// FailedMessage is shown whenever a search request fails
const FailedMessage = "Failed to fetch recipes. Please try again."

var (
	// ErrEmptyQuery is returned when the query is blank after trimming
	ErrEmptyQuery = errors.New("empty search query")
	// ErrSearchInFlight is returned when a search is already running
	ErrSearchInFlight = errors.New("search already in progress")
	// ErrClosed is returned after the service has been closed
	ErrClosed = errors.New("search service closed")
)

// Service handles search actions
type Service struct {
	searcher mealdb.Searcher
	logger   *zap.Logger

	state    model.SearchState
	mu       sync.RWMutex
	cancel   context.CancelFunc
	closed   bool
	inflight sync.WaitGroup

	onUpdate func(model.SearchState) // callback for UI updates
}

var _ Runner = (*Service)(nil)

// NewService creates a new search service
func NewService(searcher mealdb.Searcher, logger *zap.Logger) *Service {
	return &Service{
		searcher: searcher,
		logger:   logging.OrNop(logger),
		state:    model.NewSearchState(),
	}
}

// SetUpdateCallback sets the callback function for state updates
func (s *Service) SetUpdateCallback(callback func(model.SearchState)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// State returns a copy of the current state
func (s *Service) State() model.SearchState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Submit starts a search for query. Blank queries are rejected without
// touching the state, and so is a second search while one is loading.
func (s *Service) Submit(query string) (model.SearchState, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.State(), ErrEmptyQuery
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return s.State(), ErrClosed
	}
	if s.state.IsLoading() {
		snapshot := s.state.Clone()
		s.mu.Unlock()
		return snapshot, ErrSearchInFlight
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.state = model.SearchState{
		ID:          uuid.NewString(),
		Query:       query,
		Status:      model.SearchStatusLoading,
		Recipes:     []model.Recipe{},
		HasSearched: true,
		StartedAt:   time.Now(),
	}
	snapshot := s.state.Clone()
	s.inflight.Add(1)
	s.mu.Unlock()

	s.logger.Info("search started", zap.String("search_id", snapshot.ID), zap.String("query", query))
	s.notifyUpdate(snapshot)

	go s.run(ctx, snapshot.ID, query)

	return snapshot, nil
}

// run performs the request and publishes the final state
func (s *Service) run(ctx context.Context, id, query string) {
	defer s.inflight.Done()

	recipes, err := s.searcher.Search(ctx, query)

	s.mu.Lock()
	if s.state.ID != id {
		s.mu.Unlock()
		return
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	s.state.FinishedAt = time.Now()
	if err != nil {
		s.state.Status = model.SearchStatusError
		s.state.Error = FailedMessage
		s.state.Recipes = []model.Recipe{}
	} else {
		if recipes == nil {
			recipes = []model.Recipe{}
		}
		s.state.Status = model.SearchStatusDone
		s.state.Recipes = recipes
	}
	snapshot := s.state.Clone()
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("search failed",
			zap.String("search_id", id),
			zap.String("query", query),
			zap.Duration("elapsed", snapshot.Duration()),
			zap.Error(err))
	} else {
		s.logger.Info("search finished",
			zap.String("search_id", id),
			zap.String("query", query),
			zap.Int("count", snapshot.Count()),
			zap.Duration("elapsed", snapshot.Duration()))
	}

	s.notifyUpdate(snapshot)
}

// Wait blocks until the in-flight search has finished
func (s *Service) Wait() {
	s.inflight.Wait()
}

// Close cancels an in-flight search and waits for it to settle
func (s *Service) Close() {
	s.mu.Lock()
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	s.inflight.Wait()
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(state model.SearchState) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()

	if callback != nil {
		callback(state)
	}
}
