package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	request "tecnicontrol/internal/adapter/http/dto/request"
	"tecnicontrol/internal/adapter/http/middleware"
	"tecnicontrol/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var testCaller = entities.Identity{UID: "u1", Name: "Taller Ruiz", Email: "ruiz@example.com"}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := request.RegisterValidations(v); err != nil {
			t.Fatalf("register validations: %v", err)
		}
	}
	r := gin.New()
	r.Use(middleware.SetIdentity(testCaller))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
