package service

import (
	"fmt"
	"strings"

	"github.com/tmarchal/footprints/backend/internal/domain"
)

// TagStore defines the store operations the tag service depends on.
type TagStore interface {
	Tags() []string
	ActiveTag() string
	SetActiveTag(tag string) error
	AddTag(tag string) error
	RenameTag(oldName, newName string) error
	DeleteTag(tag string) error
}

// TagService manages the set of traveler identities.
type TagService struct {
	store TagStore
}

// NewTagService constructs a TagService backed by the provided store.
func NewTagService(s TagStore) *TagService {
	return &TagService{store: s}
}

// List returns every tag in insertion order.
func (s *TagService) List() []string {
	return s.store.Tags()
}

// Active returns the currently selected tag.
func (s *TagService) Active() string {
	return s.store.ActiveTag()
}

// SetActive switches the selected tag.
func (s *TagService) SetActive(tag string) error {
	if err := s.store.SetActiveTag(tag); err != nil {
		return fmt.Errorf("service.TagService.SetActive: %w", err)
	}
	return nil
}

// Add creates a new tag and makes it active. Names are trimmed; empty and
// duplicate names are rejected.
func (s *TagService) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("service.TagService.Add: %w: tag name is required", domain.ErrValidation)
	}
	if err := s.store.AddTag(name); err != nil {
		return fmt.Errorf("service.TagService.Add: %w", err)
	}
	return nil
}

// Rename changes a tag's name, repointing its visits and the active
// selection along with it.
func (s *TagService) Rename(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("service.TagService.Rename: %w: tag name is required", domain.ErrValidation)
	}
	if err := s.store.RenameTag(oldName, newName); err != nil {
		return fmt.Errorf("service.TagService.Rename: %w", err)
	}
	return nil
}

// Delete removes a tag and all of its visits. The operation is
// irreversible, so the caller must pass confirmed=true. It returns the tag
// that is active after the deletion.
func (s *TagService) Delete(tag string, confirmed bool) (string, error) {
	if !confirmed {
		return "", fmt.Errorf("service.TagService.Delete: %w: confirmation required", domain.ErrValidation)
	}
	if err := s.store.DeleteTag(tag); err != nil {
		return "", fmt.Errorf("service.TagService.Delete: %w", err)
	}
	return s.store.ActiveTag(), nil
}
