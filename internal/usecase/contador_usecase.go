package usecase

import (
	"context"
	"strings"

	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase/interfaces"
)

// IContadorUseCase exposes the per-user sequence. It is a separate numbering
// scheme from the per-category order counters and does not produce order IDs.
type IContadorUseCase interface {
	GetContador(ctx context.Context, userID string) (entities.Contador, error)
	NextNumber(ctx context.Context, userID string) (int64, entities.Contador, error)
}

type ContadorUseCase struct {
	repo interfaces.IContadorRepository
}

var _ IContadorUseCase = (*ContadorUseCase)(nil)

func NewContadorUseCase(repo interfaces.IContadorRepository) *ContadorUseCase {
	return &ContadorUseCase{repo: repo}
}

// GetContador returns the stored counter, or the state before the first
// increment when there is none.
func (u *ContadorUseCase) GetContador(ctx context.Context, userID string) (entities.Contador, error) {
	userID, err := contadorKey(userID)
	if err != nil {
		return entities.Contador{}, err
	}
	c, found, err := u.repo.Get(ctx, userID)
	if err != nil {
		return entities.Contador{}, err
	}
	if !found {
		return entities.Contador{UserID: userID, Next: 1}, nil
	}
	return c, nil
}

func (u *ContadorUseCase) NextNumber(ctx context.Context, userID string) (int64, entities.Contador, error) {
	userID, err := contadorKey(userID)
	if err != nil {
		return 0, entities.Contador{}, err
	}
	return u.repo.Increment(ctx, userID)
}

// contadorKey trims the user ID and rejects IDs that would land on a category
// counter document.
func contadorKey(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || entities.IsCounterKey(userID) {
		return "", ErrInvalidUserID
	}
	return userID, nil
}
