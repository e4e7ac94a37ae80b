package usecase

import (
	"context"
	"errors"
	"testing"

	"tecnicontrol/internal/domain/entities"
	mock_interfaces "tecnicontrol/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestContadorUseCase_GetContador(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIContadorRepository(ctrl)
	uc := NewContadorUseCase(repo)

	repo.EXPECT().Get(gomock.Any(), "u1").Return(entities.Contador{}, false, nil)
	c, err := uc.GetContador(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.UserID != "u1" || c.Next != 1 || c.LastOrder != 0 {
		t.Fatalf("expected initial counter, got %+v", c)
	}

	repo.EXPECT().Get(gomock.Any(), "u2").Return(entities.Contador{UserID: "u2", Next: 5, LastOrder: 4}, true, nil)
	c, err = uc.GetContador(context.Background(), "u2")
	if err != nil || c.Next != 5 {
		t.Fatalf("unexpected result: %+v err=%v", c, err)
	}
}

func TestContadorUseCase_NextNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIContadorRepository(ctrl)
	uc := NewContadorUseCase(repo)

	if _, _, err := uc.NextNumber(context.Background(), " "); !errors.Is(err, ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}

	repo.EXPECT().Increment(gomock.Any(), "u1").Return(int64(1), entities.Contador{UserID: "u1", Next: 2, LastOrder: 1}, nil)
	n, c, err := uc.NextNumber(context.Background(), "u1")
	if err != nil || n != 1 || c.Next != 2 {
		t.Fatalf("unexpected result: n=%d c=%+v err=%v", n, c, err)
	}
}

func TestContadorUseCase_RejectsOrderCounterKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no repository call is expected
	repo := mock_interfaces.NewMockIContadorRepository(ctrl)
	uc := NewContadorUseCase(repo)

	for _, id := range []string{"ordenesMantenimiento", " ordenesEntrega ", "ORDENESGARANTIA", "ordenes"} {
		if _, _, err := uc.NextNumber(context.Background(), id); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("NextNumber(%q): expected ErrInvalidUserID, got %v", id, err)
		}
		if _, err := uc.GetContador(context.Background(), id); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("GetContador(%q): expected ErrInvalidUserID, got %v", id, err)
		}
	}
}
