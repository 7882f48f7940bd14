package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microtweet/internal/config"
	handlers "microtweet/internal/handler"
)

func TestBuildContainer(t *testing.T) {
	container, err := BuildContainer(context.Background(), &config.Config{})

	require.NoError(t, err)
	assert.NotNil(t, container)
}

func TestProvideHTTPHandler(t *testing.T) {
	handler := ProvideHTTPHandler(&handlers.Handlers{Validate: validator.New()})

	t.Run("preflight", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/tweets", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("panics become 500", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/tweets", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"message":"Internal server error"}`, rr.Body.String())
	})
}
