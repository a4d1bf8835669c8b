package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tmarchal/footprints/backend/internal/domain"
	"github.com/tmarchal/footprints/backend/internal/geocoder"
)

// ErrSuperseded reports that a search was replaced by a newer query before
// its results were delivered.
var ErrSuperseded = errors.New("search superseded by newer query")

// SearchService funnels place searches through a single debouncer so that
// rapid-fire queries collapse into one geocoder lookup and only the newest
// query's results are ever delivered.
type SearchService struct {
	debouncer *geocoder.Debouncer
	log       *slog.Logger

	mu     sync.Mutex
	waiter chan []domain.Candidate // belongs to the newest pending search
}

// NewSearchService constructs a SearchService over the given lookup.
func NewSearchService(lookup geocoder.LookupFunc, log *slog.Logger) *SearchService {
	s := &SearchService{log: log}
	s.debouncer = geocoder.NewDebouncer(s.wrap(lookup), s.deliver)
	return s
}

// Search registers query with the debouncer and blocks until its candidates
// arrive, the query is superseded by a newer one, or ctx is done. A
// superseded search returns ErrSuperseded.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.Candidate, error) {
	waiter := make(chan []domain.Candidate, 1)

	s.mu.Lock()
	prev := s.waiter
	s.waiter = waiter
	s.mu.Unlock()

	if prev != nil {
		close(prev)
	}

	s.debouncer.Update(query)

	select {
	case candidates, ok := <-waiter:
		if !ok {
			return nil, fmt.Errorf("service.SearchService.Search: %w", ErrSuperseded)
		}
		return candidates, nil
	case <-ctx.Done():
		s.detach(waiter)
		return nil, fmt.Errorf("service.SearchService.Search: %w", ctx.Err())
	}
}

// Stop cancels any pending lookup and releases the current waiter.
func (s *SearchService) Stop() {
	s.debouncer.Stop()
	s.mu.Lock()
	waiter := s.waiter
	s.waiter = nil
	s.mu.Unlock()
	if waiter != nil {
		close(waiter)
	}
}

// wrap adds error logging around the raw lookup. The debouncer degrades
// failures to an empty list, so this is the only place the cause surfaces.
func (s *SearchService) wrap(lookup geocoder.LookupFunc) geocoder.LookupFunc {
	return func(ctx context.Context, query string) ([]domain.Candidate, error) {
		candidates, err := lookup(ctx, query)
		if err != nil {
			s.log.Error("geocoder lookup failed", "query", query, "error", err)
			return nil, err
		}
		return candidates, nil
	}
}

// deliver hands candidates to whichever waiter is current. The debouncer
// guarantees it only fires for the newest query.
func (s *SearchService) deliver(query string, candidates []domain.Candidate) {
	s.mu.Lock()
	waiter := s.waiter
	s.waiter = nil
	s.mu.Unlock()

	if waiter != nil {
		waiter <- candidates
	}
}

// detach drops waiter if it is still the current one, so a caller that gave
// up does not receive a late delivery.
func (s *SearchService) detach(waiter chan []domain.Candidate) {
	s.mu.Lock()
	if s.waiter == waiter {
		s.waiter = nil
	}
	s.mu.Unlock()
}
