package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tecnicontrol/internal/adapter/http/handlers/mocks"
	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const maintenanceBody = `{"cliente_id":"c-1","equipo_id":"d-1","tipo":"mantenimiento","mantenimiento":{"tareas":["afilado"],"repuestos":[{"repuesto":"cadena","cantidad":1}]}}`

func TestOrderHandler_CreateOrder(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter(t)
		r.POST("/v1/ordenes", NewOrderHandler(uc).CreateOrder)

		w := doJSON(r, http.MethodPost, "/v1/ordenes", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown tipo is rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter(t)
		r.POST("/v1/ordenes", NewOrderHandler(uc).CreateOrder)

		w := doJSON(r, http.MethodPost, "/v1/ordenes", `{"cliente_id":"c-1","equipo_id":"d-1","tipo":"reparacion"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{entities.ErrInvalidOrder, http.StatusBadRequest},
			{entities.ErrOwnershipViolation, http.StatusForbidden},
			{usecase.ErrClientNotFound, http.StatusNotFound},
			{usecase.ErrDeviceNotFound, http.StatusNotFound},
			{fmt.Errorf("%w: OMAN007", entities.ErrOrderIDConflict), http.StatusConflict},
			{fmt.Errorf("%w: aborted", entities.ErrAllocationFailure), http.StatusServiceUnavailable},
			{entities.ErrWriteFailure, http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.err.Error(), func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIOrderUseCase(ctrl)
				r := newTestRouter(t)
				r.POST("/v1/ordenes", NewOrderHandler(uc).CreateOrder)

				uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.Order{}, tc.err)

				w := doJSON(r, http.MethodPost, "/v1/ordenes", maintenanceBody)
				if w.Code != tc.code {
					t.Fatalf("expected %d, got %d", tc.code, w.Code)
				}
			})
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter(t)
		r.POST("/v1/ordenes", NewOrderHandler(uc).CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateOrderCommand) (entities.Order, error) {
				if cmd.UserID != "u1" || cmd.ClientID != "c-1" || cmd.Type != entities.OrderTypeMantenimiento {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if cmd.Mantenimiento == nil || len(cmd.Mantenimiento.PartsUsed) != 1 {
					t.Fatalf("expected maintenance details, got %+v", cmd.Mantenimiento)
				}
				return entities.Order{
					ID: "OMAN007", Number: 7, UserID: "u1", Type: cmd.Type,
					Mantenimiento: cmd.Mantenimiento,
				}, nil
			},
		)

		w := doJSON(r, http.MethodPost, "/v1/ordenes", maintenanceBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["id"] != "OMAN007" || body["estado"] != "pendiente" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := body["mantenimiento"]; !ok {
			t.Fatalf("expected mantenimiento details in body")
		}
	})

	t.Run("without identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.POST("/v1/ordenes", NewOrderHandler(uc).CreateOrder)

		w := doJSON(r, http.MethodPost, "/v1/ordenes", maintenanceBody)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	r := newTestRouter(t)
	r.GET("/v1/ordenes/:id", NewOrderHandler(uc).GetOrder)

	uc.EXPECT().GetOrder(gomock.Any(), "u1", "OGAR001").Return(entities.Order{}, entities.ErrOwnershipViolation)
	w := doJSON(r, http.MethodGet, "/v1/ordenes/OGAR001", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	uc.EXPECT().GetOrder(gomock.Any(), "u1", "OGAR002").Return(entities.Order{}, usecase.ErrOrderNotFound)
	w = doJSON(r, http.MethodGet, "/v1/ordenes/OGAR002", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().GetOrder(gomock.Any(), "u1", "OGAR003").Return(entities.Order{
		ID: "OGAR003", Type: entities.OrderTypeGarantia, Garantia: &entities.WarrantyDetails{},
	}, nil)
	w = doJSON(r, http.MethodGet, "/v1/ordenes/OGAR003", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	t.Run("query is forwarded as filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter(t)
		r.GET("/v1/ordenes", NewOrderHandler(uc).ListOrders)

		want := usecase.OrderFilter{Type: entities.OrderTypeDiagnostico, ClientID: "c-1", Search: "stihl", Page: 2, PageSize: 10}
		uc.EXPECT().ListOrders(gomock.Any(), "u1", want).Return(usecase.OrderPage{Items: []entities.Order{}, Total: 11, Page: 2, PageSize: 10}, nil)

		w := doJSON(r, http.MethodGet, "/v1/ordenes?tipo=diagnostico&cliente_id=c-1&q=stihl&page=2&page_size=10", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["total_pages"] != float64(2) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("bad page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter(t)
		r.GET("/v1/ordenes", NewOrderHandler(uc).ListOrders)

		for _, q := range []string{"page=abc", "page=9223372036854775807&page_size=100", "page=100001", "page_size=-5"} {
			w := doJSON(r, http.MethodGet, "/v1/ordenes?"+q, "")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", q, w.Code)
			}
		}
	})

	t.Run("query failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newTestRouter(t)
		r.GET("/v1/ordenes", NewOrderHandler(uc).ListOrders)

		uc.EXPECT().ListOrders(gomock.Any(), "u1", gomock.Any()).Return(usecase.OrderPage{}, entities.ErrQueryFailed)
		w := doJSON(r, http.MethodGet, "/v1/ordenes", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	r := newTestRouter(t)
	r.GET("/v1/ordenes/estadisticas", NewOrderHandler(uc).Stats)

	uc.EXPECT().Stats(gomock.Any(), "u1").Return(usecase.SummarizeOrders(nil), nil)
	w := doJSON(r, http.MethodGet, "/v1/ordenes/estadisticas", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Total   int            `json:"total"`
		PorTipo map[string]int `json:"por_tipo"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Total != 0 || len(body.PorTipo) != 4 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestOrderHandler_UpdateOrderDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	r := newTestRouter(t)
	r.PUT("/v1/ordenes/:id", NewOrderHandler(uc).UpdateOrderDetails)

	uc.EXPECT().UpdateOrderDetails(gomock.Any(), "u1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, o entities.Order) (entities.Order, error) {
			if o.ID != "OENT002" || o.Type != entities.OrderTypeEntrega || o.Entrega == nil {
				t.Fatalf("unexpected order: %+v", o)
			}
			return o, nil
		},
	)

	w := doJSON(r, http.MethodPut, "/v1/ordenes/OENT002", `{"tipo":"entrega","entrega":{"validacion_cliente":true}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !json.Valid(w.Body.Bytes()) {
		t.Fatalf("invalid json body")
	}
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	r := newTestRouter(t)
	r.DELETE("/v1/ordenes/:id", NewOrderHandler(uc).DeleteOrder)

	uc.EXPECT().DeleteOrder(gomock.Any(), "u1", "OMAN001").Return(nil)
	w := doJSON(r, http.MethodDelete, "/v1/ordenes/OMAN001", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestOrderHandler_Sequences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	r := newTestRouter(t)
	r.GET("/v1/ordenes/secuencias", NewOrderHandler(uc).Sequences)

	uc.EXPECT().Sequences(gomock.Any()).Return([]entities.OrderSequence{
		{Type: entities.OrderTypeMantenimiento, LastNumber: 7},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ordenes/secuencias", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if want := `[{"tipo":"mantenimiento","ultimo_numero":7,"ultimo_id":"OMAN007"}]`; w.Body.String() != want {
		t.Fatalf("expected %s, got %s", want, w.Body.String())
	}
}
