package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"tecnicontrol/internal/adapter/http/handlers/mocks"
	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase"

	"go.uber.org/mock/gomock"
)

func newNegocioHandlerWithMocks(ctrl *gomock.Controller) (*NegocioHandler, *mocks.MockINegocioUseCase, *mocks.MockIContadorUseCase) {
	negocios := mocks.NewMockINegocioUseCase(ctrl)
	contadores := mocks.NewMockIContadorUseCase(ctrl)
	return NewNegocioHandler(negocios, contadores), negocios, contadores
}

func TestNegocioHandler_GetNegocio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, negocios, _ := newNegocioHandlerWithMocks(ctrl)
	r := newTestRouter(t)
	r.GET("/v1/negocio", h.GetNegocio)

	negocios.EXPECT().GetNegocio(gomock.Any(), testCaller).Return(entities.Negocio{UserID: "u1", Name: "Taller Ruiz"}, nil)

	w := doJSON(r, http.MethodGet, "/v1/negocio", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["nombre"] != "Taller Ruiz" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestNegocioHandler_UpdateNegocio(t *testing.T) {
	t.Run("bad email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, _ := newNegocioHandlerWithMocks(ctrl)
		r := newTestRouter(t)
		r.PATCH("/v1/negocio", h.UpdateNegocio)

		w := doJSON(r, http.MethodPatch, "/v1/negocio", `{"email":"x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, negocios, _ := newNegocioHandlerWithMocks(ctrl)
		r := newTestRouter(t)
		r.PATCH("/v1/negocio", h.UpdateNegocio)

		negocios.EXPECT().UpdateNegocio(gomock.Any(), testCaller, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Identity, upd entities.NegocioUpdate) (entities.Negocio, error) {
				if upd.TaxID == nil || *upd.TaxID != "0990011223001" {
					t.Fatalf("unexpected update: %+v", upd)
				}
				return entities.Negocio{UserID: "u1", TaxID: *upd.TaxID}, nil
			},
		)

		w := doJSON(r, http.MethodPatch, "/v1/negocio", `{"ruc":"0990011223001"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, negocios, _ := newNegocioHandlerWithMocks(ctrl)
		r := newTestRouter(t)
		r.PATCH("/v1/negocio", h.UpdateNegocio)

		negocios.EXPECT().UpdateNegocio(gomock.Any(), testCaller, gomock.Any()).Return(entities.Negocio{}, usecase.ErrEmptyNegocioUpdate)

		w := doJSON(r, http.MethodPatch, "/v1/negocio", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestNegocioHandler_GetContador(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, _, contadores := newNegocioHandlerWithMocks(ctrl)
	r := newTestRouter(t)
	r.GET("/v1/contador", h.GetContador)

	contadores.EXPECT().GetContador(gomock.Any(), "u1").Return(entities.Contador{UserID: "u1", Next: 1}, nil)

	w := doJSON(r, http.MethodGet, "/v1/contador", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if want := `{"siguiente":1,"ultima_orden":0}`; w.Body.String() != want {
		t.Fatalf("expected %s, got %s", want, w.Body.String())
	}
}

func TestNegocioHandler_NextNumber(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, contadores := newNegocioHandlerWithMocks(ctrl)
		r := newTestRouter(t)
		r.POST("/v1/contador/siguiente", h.NextNumber)

		now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		contadores.EXPECT().NextNumber(gomock.Any(), "u1").
			Return(int64(4), entities.Contador{UserID: "u1", Next: 5, LastOrder: 4, UpdatedAt: now}, nil)

		w := doJSON(r, http.MethodPost, "/v1/contador/siguiente", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Numero   int64 `json:"numero"`
			Contador struct {
				Siguiente int64 `json:"siguiente"`
			} `json:"contador"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Numero != 4 || body.Contador.Siguiente != 5 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("allocation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, contadores := newNegocioHandlerWithMocks(ctrl)
		r := newTestRouter(t)
		r.POST("/v1/contador/siguiente", h.NextNumber)

		contadores.EXPECT().NextNumber(gomock.Any(), "u1").
			Return(int64(0), entities.Contador{}, errors.Join(entities.ErrAllocationFailure, errors.New("transaction aborted")))

		w := doJSON(r, http.MethodPost, "/v1/contador/siguiente", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
