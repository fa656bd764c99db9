package groups

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("grupo no encontrado")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateGroup(ctx context.Context, name string) (Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Group{}, ErrInvalidInput
	}
	return s.repo.CreateGroup(ctx, name)
}

func (s *Service) ListGroups(ctx context.Context) ([]Group, error) {
	return s.repo.ListGroups(ctx)
}

func (s *Service) GetGroup(ctx context.Context, id int64) (Group, error) {
	if id <= 0 {
		return Group{}, ErrNotFound
	}
	return s.repo.GetGroup(ctx, id)
}

// CreateFamily exige que el grupo exista.
func (s *Service) CreateFamily(ctx context.Context, name string, groupID int64) (Family, error) {
	name = strings.TrimSpace(name)
	if name == "" || groupID <= 0 {
		return Family{}, ErrInvalidInput
	}
	if _, err := s.repo.GetGroup(ctx, groupID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Family{}, ErrInvalidInput
		}
		return Family{}, err
	}
	return s.repo.CreateFamily(ctx, name, groupID)
}

// FamiliesByGroup son las opciones de familia para el selector del formulario.
func (s *Service) FamiliesByGroup(ctx context.Context, groupID int64) ([]Family, error) {
	if groupID <= 0 {
		return []Family{}, nil
	}
	return s.repo.ListFamiliesByGroup(ctx, groupID)
}
