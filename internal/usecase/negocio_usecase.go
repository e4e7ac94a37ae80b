package usecase

import (
	"context"
	"errors"
	"strings"

	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase/interfaces"
)

var (
	ErrEmptyNegocioUpdate = errors.New("no negocio fields to update")
	ErrInvalidNegocioName = errors.New("invalid negocio name")
)

// INegocioUseCase serves the caller's business profile. The profile is
// created from the identity on first access, so reads never report it missing.
type INegocioUseCase interface {
	GetNegocio(ctx context.Context, id entities.Identity) (entities.Negocio, error)
	UpdateNegocio(ctx context.Context, id entities.Identity, upd entities.NegocioUpdate) (entities.Negocio, error)
}

type NegocioUseCase struct {
	repo interfaces.INegocioRepository
}

var _ INegocioUseCase = (*NegocioUseCase)(nil)

func NewNegocioUseCase(repo interfaces.INegocioRepository) *NegocioUseCase {
	return &NegocioUseCase{repo: repo}
}

func (u *NegocioUseCase) GetNegocio(ctx context.Context, id entities.Identity) (entities.Negocio, error) {
	if strings.TrimSpace(id.UID) == "" {
		return entities.Negocio{}, ErrInvalidUserID
	}
	return u.repo.GetOrCreate(ctx, id)
}

func (u *NegocioUseCase) UpdateNegocio(ctx context.Context, id entities.Identity, upd entities.NegocioUpdate) (entities.Negocio, error) {
	if strings.TrimSpace(id.UID) == "" {
		return entities.Negocio{}, ErrInvalidUserID
	}
	if upd.Empty() {
		return entities.Negocio{}, ErrEmptyNegocioUpdate
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return entities.Negocio{}, ErrInvalidNegocioName
	}

	if _, err := u.repo.GetOrCreate(ctx, id); err != nil {
		return entities.Negocio{}, err
	}
	return u.repo.Update(ctx, id.UID, upd)
}
