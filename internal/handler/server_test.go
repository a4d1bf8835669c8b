package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tmarchal/footprints/backend/internal/domain"
	"github.com/tmarchal/footprints/backend/internal/handler"
	"github.com/tmarchal/footprints/backend/internal/service"
)

// Hand-written test doubles for the servicer interfaces. Each method is a
// function field — set only the ones your test needs.

type mockVisitService struct {
	add         func(c domain.Candidate, tag string) (domain.Visit, error)
	list        func(tag string) []domain.Visit
	delete      func(id string) error
	deleteByTag func(tag string, confirmed bool) (int, error)
	presets     func() []domain.Candidate
	stats       func(tag string) service.TagStats
}

func (m *mockVisitService) Add(c domain.Candidate, tag string) (domain.Visit, error) {
	return m.add(c, tag)
}
func (m *mockVisitService) List(tag string) []domain.Visit { return m.list(tag) }
func (m *mockVisitService) Delete(id string) error         { return m.delete(id) }
func (m *mockVisitService) DeleteByTag(tag string, confirmed bool) (int, error) {
	return m.deleteByTag(tag, confirmed)
}
func (m *mockVisitService) Presets() []domain.Candidate      { return m.presets() }
func (m *mockVisitService) Stats(tag string) service.TagStats { return m.stats(tag) }

var _ handler.VisitServicer = (*mockVisitService)(nil)

type mockTagService struct {
	list      func() []string
	active    func() string
	setActive func(tag string) error
	add       func(name string) error
	rename    func(oldName, newName string) error
	delete    func(tag string, confirmed bool) (string, error)
}

func (m *mockTagService) List() []string            { return m.list() }
func (m *mockTagService) Active() string            { return m.active() }
func (m *mockTagService) SetActive(tag string) error { return m.setActive(tag) }
func (m *mockTagService) Add(name string) error      { return m.add(name) }
func (m *mockTagService) Rename(oldName, newName string) error {
	return m.rename(oldName, newName)
}
func (m *mockTagService) Delete(tag string, confirmed bool) (string, error) {
	return m.delete(tag, confirmed)
}

var _ handler.TagServicer = (*mockTagService)(nil)

type mockSearchService struct {
	search func(ctx context.Context, query string) ([]domain.Candidate, error)
}

func (m *mockSearchService) Search(ctx context.Context, query string) ([]domain.Candidate, error) {
	return m.search(ctx, query)
}

var _ handler.SearchServicer = (*mockSearchService)(nil)

type mockMapService struct {
	state         func(tag string, scope domain.Scope) service.MapState
	stateForVisit func(id, tag string) (service.MapState, error)
}

func (m *mockMapService) State(tag string, scope domain.Scope) service.MapState {
	return m.state(tag, scope)
}
func (m *mockMapService) StateForVisit(id, tag string) (service.MapState, error) {
	return m.stateForVisit(id, tag)
}

var _ handler.MapServicer = (*mockMapService)(nil)

type mockExportService struct {
	export  func() ([]byte, error)
	importF func(data []byte, confirmed bool) (int, error)
}

func (m *mockExportService) Export() ([]byte, error) { return m.export() }
func (m *mockExportService) Import(data []byte, confirmed bool) (int, error) {
	return m.importF(data, confirmed)
}

var _ handler.ExportServicer = (*mockExportService)(nil)

// serverDeps bundles the mocks a test wires into a Server. Zero-value fields
// are fine for endpoints a test never hits.
type serverDeps struct {
	visits *mockVisitService
	tags   *mockTagService
	search *mockSearchService
	maps   *mockMapService
	export *mockExportService
}

func newTestServer(deps serverDeps) http.Handler {
	if deps.visits == nil {
		deps.visits = &mockVisitService{}
	}
	if deps.tags == nil {
		deps.tags = &mockTagService{}
	}
	if deps.search == nil {
		deps.search = &mockSearchService{}
	}
	if deps.maps == nil {
		deps.maps = &mockMapService{}
	}
	if deps.export == nil {
		deps.export = &mockExportService{}
	}
	return handler.NewServer(deps.visits, deps.tags, deps.search, deps.maps, deps.export).Routes()
}

// do issues a request against the router and returns the recorder.
func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
