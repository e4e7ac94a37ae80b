package usecase

import (
	"context"
	"errors"
	"strings"

	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidClientName   = errors.New("invalid client name")
	ErrEmptyClientUpdate   = errors.New("no client fields to update")
	ErrInvalidDeviceFields = errors.New("device brand or model is required")
)

type CreateClientCommand struct {
	UserID     string
	Name       string
	NationalID string
	Email      string
	Phone      string
	Address    string
	Devices    []entities.Device
}

// IClientUseCase manages the caller's clients and their devices.
type IClientUseCase interface {
	CreateClient(ctx context.Context, cmd CreateClientCommand) (entities.Client, error)
	GetClient(ctx context.Context, userID, id string) (entities.Client, error)
	ListClients(ctx context.Context, userID string) ([]entities.Client, error)
	UpdateClient(ctx context.Context, userID, id string, upd entities.ClientUpdate) (entities.Client, error)
	AddDevice(ctx context.Context, userID, clientID string, d entities.Device) (entities.Client, error)
	DeleteClient(ctx context.Context, userID, id string) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) CreateClient(ctx context.Context, cmd CreateClientCommand) (entities.Client, error) {
	userID := strings.TrimSpace(cmd.UserID)
	if userID == "" {
		return entities.Client{}, ErrInvalidUserID
	}
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	devices, err := prepareDevices(cmd.Devices)
	if err != nil {
		return entities.Client{}, err
	}

	return u.repo.Create(ctx, entities.Client{
		UserID:     userID,
		Name:       name,
		NationalID: strings.TrimSpace(cmd.NationalID),
		Email:      strings.TrimSpace(cmd.Email),
		Phone:      strings.TrimSpace(cmd.Phone),
		Address:    strings.TrimSpace(cmd.Address),
		Devices:    devices,
	})
}

func (u *ClientUseCase) GetClient(ctx context.Context, userID, id string) (entities.Client, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Client{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	if c.UserID != userID {
		return entities.Client{}, entities.ErrOwnershipViolation
	}
	return c, nil
}

func (u *ClientUseCase) ListClients(ctx context.Context, userID string) ([]entities.Client, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUser(ctx, userID)
}

func (u *ClientUseCase) UpdateClient(ctx context.Context, userID, id string, upd entities.ClientUpdate) (entities.Client, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Client{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	if upd.Empty() {
		return entities.Client{}, ErrEmptyClientUpdate
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	if upd.Devices != nil {
		devices, err := prepareDevices(*upd.Devices)
		if err != nil {
			return entities.Client{}, err
		}
		upd.Devices = &devices
	}

	c, err := u.repo.Update(ctx, userID, id, upd)
	return c, notFoundAs(err, ErrClientNotFound)
}

func (u *ClientUseCase) AddDevice(ctx context.Context, userID, clientID string, d entities.Device) (entities.Client, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Client{}, ErrInvalidUserID
	}
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	devices, err := prepareDevices([]entities.Device{d})
	if err != nil {
		return entities.Client{}, err
	}

	c, err := u.repo.AddDevice(ctx, userID, clientID, devices[0])
	return c, notFoundAs(err, ErrClientNotFound)
}

func (u *ClientUseCase) DeleteClient(ctx context.Context, userID, id string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	return notFoundAs(u.repo.Delete(ctx, userID, id), ErrClientNotFound)
}

// prepareDevices trims device fields and gives new devices an id.
func prepareDevices(in []entities.Device) ([]entities.Device, error) {
	out := make([]entities.Device, 0, len(in))
	for _, d := range in {
		d.ID = strings.TrimSpace(d.ID)
		d.Type = strings.TrimSpace(d.Type)
		d.Brand = strings.TrimSpace(d.Brand)
		d.Model = strings.TrimSpace(d.Model)
		d.Serial = strings.TrimSpace(d.Serial)
		d.Notes = strings.TrimSpace(d.Notes)
		if d.Brand == "" && d.Model == "" {
			return nil, ErrInvalidDeviceFields
		}
		if d.ID == "" {
			d.ID = uuid.NewString()
		}
		out = append(out, d)
	}
	return out, nil
}

func notFoundAs(err, target error) error {
	if errors.Is(err, entities.ErrNotFound) {
		return target
	}
	return err
}
