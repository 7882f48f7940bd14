package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microtweet/internal/config"
	handlers "microtweet/internal/handler"
	"microtweet/internal/service"
)

type testServer struct {
	router    *mux.Router
	tweets    *MockTweetService
	likes     *MockLikeService
	bookmarks *MockBookmarkService
	tables    *MockTablesService
}

func newTestServer() *testServer {
	return newTestServerWithUploadLimit(10 << 20)
}

func newTestServerWithUploadLimit(limit int64) *testServer {
	s := &testServer{
		tweets:    new(MockTweetService),
		likes:     new(MockLikeService),
		bookmarks: new(MockBookmarkService),
		tables:    new(MockTablesService),
	}

	h := &handlers.Handlers{
		TweetService:    s.tweets,
		LikeService:     s.likes,
		BookmarkService: s.bookmarks,
		TablesService:   s.tables,
		Cfg:             &config.Config{MaxUploadSize: limit},
		Validate:        validator.New(),
	}
	s.router = handlers.NewRouter(h)

	return s
}

func (s *testServer) do(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *testServer) doJSON(method, path, body string) *httptest.ResponseRecorder {
	return s.do(method, path, bytes.NewBufferString(body), "application/json")
}

func (s *testServer) assertExpectations(t *testing.T) {
	s.tweets.AssertExpectations(t)
	s.likes.AssertExpectations(t)
	s.bookmarks.AssertExpectations(t)
	s.tables.AssertExpectations(t)
}

func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	assert.Equal(t, status, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, message, body.Message)
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func TestNewHandlers(t *testing.T) {
	svc := &service.Service{
		Tweet:    new(MockTweetService),
		Like:     new(MockLikeService),
		Bookmark: new(MockBookmarkService),
		Tables:   new(MockTablesService),
	}
	cfg := &config.Config{}

	h := handlers.NewHandlers(svc, cfg)

	assert.NotNil(t, h.TweetService)
	assert.NotNil(t, h.LikeService)
	assert.NotNil(t, h.BookmarkService)
	assert.NotNil(t, h.TablesService)
	assert.Equal(t, cfg, h.Cfg)
	assert.NotNil(t, h.Validate)
}

func TestRouter_UnknownRoutes(t *testing.T) {
	s := newTestServer()

	assertJSONError(t, s.do(http.MethodGet, "/nope", nil, ""), http.StatusNotFound, "Not found")
	assertJSONError(t, s.do(http.MethodPatch, "/tweets", nil, ""), http.StatusMethodNotAllowed, "Method not allowed")
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer()

	rr := s.do(http.MethodGet, "/metrics", nil, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}
