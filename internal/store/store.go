package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/tmarchal/footprints/backend/internal/domain"
	"github.com/tmarchal/footprints/backend/internal/repo"
)

// persistTimeout bounds each background snapshot write.
const persistTimeout = 5 * time.Second

// Store owns the visit list, the tag set, and the active tag.
//
// Mutations update memory synchronously and persist through the KV boundary
// fire-and-forget: a failed write is logged, never surfaced, and the next
// mutation writes the full snapshot again. On restart Load re-reads the
// persisted state, falling back to defaults when it is absent or unreadable.
type Store struct {
	mu     sync.Mutex
	visits []domain.Visit // most-recent-first; new visits are prepended
	tags   []string       // ordered, unique, never empty
	active string         // always an element of tags

	kv  repo.KV
	log *slog.Logger
}

// New constructs an empty Store persisting through kv.
// Call Load before serving traffic to pick up previously saved state.
func New(kv repo.KV, log *slog.Logger) *Store {
	return &Store{
		visits: []domain.Visit{},
		tags:   domain.DefaultTags(),
		active: domain.DefaultTag,
		kv:     kv,
		log:    log,
	}
}

// Load replaces the in-memory state with the persisted snapshots.
// A missing or unparseable snapshot falls back to the default state; only
// transport failures are returned as errors.
func (s *Store) Load(ctx context.Context) error {
	visits, err := loadSnapshot[[]domain.Visit](ctx, s.kv, repo.KeyVisits, s.log)
	if err != nil {
		return fmt.Errorf("store.Load: %w", err)
	}
	tags, err := loadSnapshot[[]string](ctx, s.kv, repo.KeyTags, s.log)
	if err != nil {
		return fmt.Errorf("store.Load: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if visits != nil {
		s.visits = visits
	}
	if len(tags) > 0 {
		s.tags = tags
	}
	if !contains(s.tags, s.active) {
		s.active = s.tags[0]
	}
	return nil
}

// loadSnapshot reads and decodes one snapshot key. Absent keys and malformed
// payloads both yield the zero value: persisted state may be partially
// written and must never prevent startup.
func loadSnapshot[T any](ctx context.Context, kv repo.KV, key string, log *slog.Logger) (T, error) {
	var zero T
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return zero, nil
		}
		return zero, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warn("discarding malformed snapshot", "key", key, "error", err)
		return zero, nil
	}
	return out, nil
}

// ---- visits ----------------------------------------------------------------

// Visits returns a copy of all visits, most-recent-first.
func (s *Store) Visits() []domain.Visit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Visit(nil), s.visits...)
}

// VisitsByTag returns a copy of the visits recorded under tag.
func (s *Store) VisitsByTag(tag string) []domain.Visit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ByTag(s.visits, tag)
}

// AddVisit prepends a new visit. When a visit with the same (tag, display
// name, country) triple already exists the add is rejected with ErrDuplicate
// and the existing visit is returned, so callers can recenter on it.
// The visit's tag is added to the tag set if it is not already present.
func (s *Store) AddVisit(v domain.Visit) (domain.Visit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := FindDuplicate(s.visits, v.Tag, v.Place.Name, v.Place.CountryISO2); ok {
		return existing, fmt.Errorf("store.AddVisit: %w", domain.ErrDuplicate)
	}

	s.visits = append([]domain.Visit{v}, s.visits...)
	if !contains(s.tags, v.Tag) {
		s.tags = append(s.tags, v.Tag)
		s.persistTagsLocked()
	}
	s.persistVisitsLocked()
	return v, nil
}

// DeleteVisit removes a single visit by id.
func (s *Store) DeleteVisit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.visits {
		if v.ID == id {
			s.visits = append(s.visits[:i], s.visits[i+1:]...)
			s.persistVisitsLocked()
			return nil
		}
	}
	return fmt.Errorf("store.DeleteVisit: %w", domain.ErrNotFound)
}

// DeleteVisitsByTag removes every visit recorded under tag and returns how
// many were removed.
func (s *Store) DeleteVisitsByTag(tag string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	keep := s.visits[:0:0]
	removed := 0
	for _, v := range s.visits {
		if v.Tag == tag {
			removed++
			continue
		}
		keep = append(keep, v)
	}
	if removed > 0 {
		s.visits = keep
		s.persistVisitsLocked()
	}
	return removed
}

// ReplaceVisits overwrites the whole visit list (used by import). Tags
// referenced by the new visits are merged into the tag set so no visit is
// left pointing at a tag that does not exist.
func (s *Store) ReplaceVisits(visits []domain.Visit) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.visits = append([]domain.Visit(nil), visits...)
	for _, v := range s.visits {
		if v.Tag != "" && !contains(s.tags, v.Tag) {
			s.tags = append(s.tags, v.Tag)
		}
	}
	s.persistVisitsLocked()
	s.persistTagsLocked()
}

// ---- tags ------------------------------------------------------------------

// Tags returns a copy of the tag set in order.
func (s *Store) Tags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.tags...)
}

// ActiveTag returns the currently selected tag.
func (s *Store) ActiveTag() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// SetActiveTag selects an existing tag.
func (s *Store) SetActiveTag(tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !contains(s.tags, tag) {
		return fmt.Errorf("store.SetActiveTag: %w", domain.ErrNotFound)
	}
	s.active = tag
	return nil
}

// AddTag appends a new tag and makes it active.
func (s *Store) AddTag(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("store.AddTag: %w: tag name is required", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if contains(s.tags, name) {
		return fmt.Errorf("store.AddTag: %w: tag %q already exists", domain.ErrValidation, name)
	}
	s.tags = append(s.tags, name)
	s.active = name
	s.persistTagsLocked()
	return nil
}

// RenameTag relabels a tag. Every visit recorded under the old name is
// repointed to the new name in the same operation, and the active selection
// follows the rename. The whole operation happens under one lock, so callers
// observe it as atomic.
func (s *Store) RenameTag(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("store.RenameTag: %w: tag name is required", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !contains(s.tags, oldName) {
		return fmt.Errorf("store.RenameTag: %w", domain.ErrNotFound)
	}
	if newName == oldName {
		return nil
	}
	if contains(s.tags, newName) {
		return fmt.Errorf("store.RenameTag: %w: tag %q already exists", domain.ErrValidation, newName)
	}

	for i, t := range s.tags {
		if t == oldName {
			s.tags[i] = newName
		}
	}
	for i := range s.visits {
		if s.visits[i].Tag == oldName {
			s.visits[i].Tag = newName
		}
	}
	if s.active == oldName {
		s.active = newName
	}

	s.persistTagsLocked()
	s.persistVisitsLocked()
	return nil
}

// DeleteTag removes a tag from the set. Deleting the last remaining tag
// substitutes the default tag so the set is never empty. When the active tag
// is deleted the selection falls back to the first remaining tag.
// Visits recorded under the tag are not touched; use DeleteVisitsByTag.
func (s *Store) DeleteTag(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !contains(s.tags, name) {
		return fmt.Errorf("store.DeleteTag: %w", domain.ErrNotFound)
	}

	next := s.tags[:0:0]
	for _, t := range s.tags {
		if t != name {
			next = append(next, t)
		}
	}
	if len(next) == 0 {
		next = append(next, domain.DefaultTag)
	}
	s.tags = next
	if s.active == name {
		s.active = s.tags[0]
	}
	s.persistTagsLocked()
	return nil
}

// ---- persistence -----------------------------------------------------------

// persistVisitsLocked snapshots the visit list and writes it in the
// background. Must be called with s.mu held; the snapshot is taken before the
// goroutine starts so later mutations cannot leak into it.
func (s *Store) persistVisitsLocked() {
	s.saveLocked(repo.KeyVisits, append([]domain.Visit(nil), s.visits...))
}

func (s *Store) persistTagsLocked() {
	s.saveLocked(repo.KeyTags, append([]string(nil), s.tags...))
}

func (s *Store) saveLocked(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Error("marshal snapshot", "key", key, "error", err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.kv.Set(ctx, key, raw); err != nil {
			s.log.Error("persist snapshot", "key", key, "error", err)
		}
	}()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
