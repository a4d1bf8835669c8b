package service

import (
	"encoding/json"
	"fmt"

	"github.com/tmarchal/footprints/backend/internal/domain"
)

// ExportService serializes the full visit list to JSON and restores it from
// a previously exported document.
type ExportService struct {
	store VisitStore
}

// NewExportService constructs an ExportService backed by the provided store.
func NewExportService(s VisitStore) *ExportService {
	return &ExportService{store: s}
}

// Export returns every visit, all tags included, as an indented JSON
// document suitable for download and later re-import.
func (s *ExportService) Export() ([]byte, error) {
	data, err := json.MarshalIndent(s.store.Visits(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	return data, nil
}

// Import replaces the entire visit list with the contents of data, a JSON
// array of visits as produced by Export. The replacement is all-or-nothing:
// if data is not valid JSON or any entry is malformed, the store is left
// untouched. Because existing visits are discarded, the caller must pass
// confirmed=true. Import returns the number of visits restored.
func (s *ExportService) Import(data []byte, confirmed bool) (int, error) {
	if !confirmed {
		return 0, fmt.Errorf("service.ExportService.Import: %w: confirmation required", domain.ErrValidation)
	}

	var visits []domain.Visit
	if err := json.Unmarshal(data, &visits); err != nil {
		return 0, fmt.Errorf("service.ExportService.Import: %w: %s", domain.ErrValidation, err)
	}
	for i, v := range visits {
		if err := validateImported(v); err != nil {
			return 0, fmt.Errorf("service.ExportService.Import: entry %d: %w", i, err)
		}
	}

	s.store.ReplaceVisits(visits)
	return len(visits), nil
}

// validateImported checks that an imported entry carries everything a visit
// created through the normal add flow would have.
func validateImported(v domain.Visit) error {
	switch {
	case v.ID == "":
		return fmt.Errorf("%w: missing id", domain.ErrValidation)
	case v.Date == "":
		return fmt.Errorf("%w: missing date", domain.ErrValidation)
	case v.Tag == "":
		return fmt.Errorf("%w: missing tag", domain.ErrValidation)
	case v.Place.Name == "":
		return fmt.Errorf("%w: missing place name", domain.ErrValidation)
	case v.Place.Lat < -90 || v.Place.Lat > 90 || v.Place.Lon < -180 || v.Place.Lon > 180:
		return fmt.Errorf("%w: coordinates out of range", domain.ErrValidation)
	}
	return nil
}
