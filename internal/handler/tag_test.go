package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmarchal/footprints/backend/internal/domain"
)

// stateTagService is a mockTagService over a fixed tag list, for tests that
// only care about the response shape.
func stateTagService() *mockTagService {
	return &mockTagService{
		list:   func() []string { return []string{"Me", "Couple"} },
		active: func() string { return "Me" },
	}
}

func TestListTags(t *testing.T) {
	h := newTestServer(serverDeps{tags: stateTagService()})

	rec := do(t, h, http.MethodGet, "/api/tags", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tags":["Me","Couple"],"active":"Me"}`, rec.Body.String())
}

func TestAddTag(t *testing.T) {
	tags := stateTagService()
	var added string
	tags.add = func(name string) error { added = name; return nil }
	h := newTestServer(serverDeps{tags: tags})

	rec := do(t, h, http.MethodPost, "/api/tags", `{"name":"Family"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Family", added)
}

func TestAddTag_Duplicate(t *testing.T) {
	tags := stateTagService()
	tags.add = func(string) error { return domain.ErrDuplicate }
	h := newTestServer(serverDeps{tags: tags})

	rec := do(t, h, http.MethodPost, "/api/tags", `{"name":"Me"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSetActiveTag(t *testing.T) {
	tags := stateTagService()
	var set string
	tags.setActive = func(tag string) error { set = tag; return nil }
	h := newTestServer(serverDeps{tags: tags})

	rec := do(t, h, http.MethodPut, "/api/tags/active", `{"name":"Couple"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Couple", set)
}

func TestSetActiveTag_Unknown(t *testing.T) {
	tags := stateTagService()
	tags.setActive = func(string) error { return domain.ErrNotFound }
	h := newTestServer(serverDeps{tags: tags})

	rec := do(t, h, http.MethodPut, "/api/tags/active", `{"name":"nope"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRenameTag(t *testing.T) {
	tags := stateTagService()
	var gotOld, gotNew string
	tags.rename = func(oldName, newName string) error {
		gotOld, gotNew = oldName, newName
		return nil
	}
	h := newTestServer(serverDeps{tags: tags})

	rec := do(t, h, http.MethodPut, "/api/tags/Me", `{"name":"Solo"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Me", gotOld)
	assert.Equal(t, "Solo", gotNew)
}

func TestDeleteTag_RequiresConfirm(t *testing.T) {
	tags := stateTagService()
	tags.delete = func(tag string, confirmed bool) (string, error) {
		if !confirmed {
			return "", domain.ErrValidation
		}
		return "Couple", nil
	}
	h := newTestServer(serverDeps{tags: tags})

	rec := do(t, h, http.MethodDelete, "/api/tags/Me", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/tags/Me?confirm=true", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
