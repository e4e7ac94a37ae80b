package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tecnicontrol/internal/adapter/persistence/docstore"
	"tecnicontrol/internal/config"
	"tecnicontrol/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

type apiClient struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Store:    config.StoreConfig{Driver: config.StoreDriverMemory, TransactionMaxAttempts: 5},
		JWT:      config.JWTConfig{Secret: testSecret, Issuer: "tecnicontrol-test"},
		Sequence: config.SequenceConfig{MaxRetries: 1, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond},
	}
	router, err := newRouter(cfg, zap.NewNop(), docstore.NewMemoryStore(), prometheus.NewRegistry())
	require.NoError(t, err)
	return router
}

func (a apiClient) do(method, path, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func signFor(t *testing.T, uid, name string) string {
	t.Helper()
	token, err := auth.NewJWTProvider(testSecret, "tecnicontrol-test").Sign(auth.Claims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	require.NoError(t, err)
	return token
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestPublicRoutes(t *testing.T) {
	router := newTestAPI(t)
	anon := apiClient{t: t, router: router}

	w := anon.do(http.MethodGet, "/v1/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = anon.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tecnicontrol_sequence_allocations_total")

	w = anon.do(http.MethodGet, "/v1/ordenes", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestOrderFlow(t *testing.T) {
	router := newTestAPI(t)
	ana := apiClient{t: t, router: router, token: signFor(t, "user-ana", "Taller Ana")}
	beto := apiClient{t: t, router: router, token: signFor(t, "user-beto", "Taller Beto")}

	w := ana.do(http.MethodPost, "/v1/clientes", `{"nombre":"Carlos Vera","cedula":"0911111111","equipos":[{"tipo":"motosierra","marca":"Stihl","modelo":"MS 250"}]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	client := decode(t, w)
	clientID := client["id"].(string)
	deviceID := client["equipos"].([]any)[0].(map[string]any)["id"].(string)

	order := `{"cliente_id":"` + clientID + `","equipo_id":"` + deviceID + `","tipo":"mantenimiento","mantenimiento":{"tareas":["afilado"],"repuestos":[{"repuesto":"cadena","cantidad":2}]}}`

	w = ana.do(http.MethodPost, "/v1/ordenes", order)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "OMAN001", decode(t, w)["id"])

	w = ana.do(http.MethodPost, "/v1/ordenes", order)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "OMAN002", decode(t, w)["id"])

	t.Run("other tenant cannot use the client", func(t *testing.T) {
		w := beto.do(http.MethodPost, "/v1/ordenes", order)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = beto.do(http.MethodGet, "/v1/ordenes/OMAN001", "")
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = beto.do(http.MethodGet, "/v1/ordenes", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 0, decode(t, w)["total"])
	})

	t.Run("listing and stats", func(t *testing.T) {
		w := ana.do(http.MethodGet, "/v1/ordenes?tipo=mantenimiento&page_size=1", "")
		require.Equal(t, http.StatusOK, w.Code)
		page := decode(t, w)
		assert.EqualValues(t, 2, page["total"])
		assert.EqualValues(t, 2, page["total_pages"])

		w = ana.do(http.MethodGet, "/v1/ordenes/estadisticas", "")
		require.Equal(t, http.StatusOK, w.Code)
		stats := decode(t, w)
		assert.EqualValues(t, 2, stats["total"])
		assert.EqualValues(t, 2, stats["pendientes"])
		assert.EqualValues(t, 4, stats["repuestos_utilizados"])
	})

	t.Run("sequences", func(t *testing.T) {
		w := ana.do(http.MethodGet, "/v1/ordenes/secuencias", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ultimo_id":"OMAN002"`)
	})

	t.Run("deleted numbers are not reused", func(t *testing.T) {
		w := ana.do(http.MethodDelete, "/v1/ordenes/OMAN002", "")
		require.Equal(t, http.StatusNoContent, w.Code)

		w = ana.do(http.MethodPost, "/v1/ordenes", order)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, "OMAN003", decode(t, w)["id"])
	})

	t.Run("per-user counter is independent", func(t *testing.T) {
		w := ana.do(http.MethodPost, "/v1/contador/siguiente", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 1, decode(t, w)["numero"])
	})

	t.Run("negocio is created on first access", func(t *testing.T) {
		w := beto.do(http.MethodGet, "/v1/negocio", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Taller Beto", decode(t, w)["nombre"])
	})
}
