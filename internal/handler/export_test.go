package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmarchal/footprints/backend/internal/domain"
)

func TestExportVisits(t *testing.T) {
	export := &mockExportService{
		export: func() ([]byte, error) { return []byte(`[]`), nil },
	}
	h := newTestServer(serverDeps{export: export})

	rec := do(t, h, http.MethodGet, "/api/export", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "travel-footprints.json")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestImportVisits(t *testing.T) {
	var gotData []byte
	var gotConfirmed bool
	export := &mockExportService{
		importF: func(data []byte, confirmed bool) (int, error) {
			gotData, gotConfirmed = data, confirmed
			return 2, nil
		},
	}
	h := newTestServer(serverDeps{export: export})

	rec := do(t, h, http.MethodPost, "/api/import?confirm=true", `[{"id":"a"},{"id":"b"}]`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"restored":2}`, rec.Body.String())
	assert.True(t, gotConfirmed)
	assert.JSONEq(t, `[{"id":"a"},{"id":"b"}]`, string(gotData))
}

func TestImportVisits_Unconfirmed(t *testing.T) {
	export := &mockExportService{
		importF: func([]byte, bool) (int, error) { return 0, domain.ErrValidation },
	}
	h := newTestServer(serverDeps{export: export})

	rec := do(t, h, http.MethodPost, "/api/import", `[]`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
