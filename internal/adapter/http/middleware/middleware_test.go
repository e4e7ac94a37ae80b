package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase/interfaces"
	mock_interfaces "tecnicontrol/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newAuthRouter(provider interfaces.IIdentityProvider) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(nil), Auth(provider, nil))
	r.GET("/v1/whoami", func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.UID)
	})
	return r
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)

		w := httptest.NewRecorder()
		newAuthRouter(provider).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/whoami", nil))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/v1/whoami", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		newAuthRouter(provider).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)
		provider.EXPECT().Verify(gomock.Any(), "bad").Return(entities.Identity{}, interfaces.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodGet, "/v1/whoami", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		newAuthRouter(provider).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("verified identity reaches the handler", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)
		provider.EXPECT().Verify(gomock.Any(), "good").Return(entities.Identity{UID: "u1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/whoami", nil)
		req.Header.Set("Authorization", "bearer good")
		w := httptest.NewRecorder()
		newAuthRouter(provider).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "u1" {
			t.Fatalf("expected u1, got %q", w.Body.String())
		}
	})
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/v1/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/v1/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("store down"))
		c.Status(http.StatusServiceUnavailable)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "req-123" {
		t.Fatalf("expected request id to be echoed, got %q", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/boom", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("expected generated request id")
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].ContextMap()["request_id"] != "req-123" {
		t.Fatalf("unexpected fields: %v", entries[0].ContextMap())
	}
	if entries[1].Level != zap.ErrorLevel {
		t.Fatalf("expected error level for 503, got %s", entries[1].Level)
	}
}
