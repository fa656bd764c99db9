package clients

import (
	"context"
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("cliente no encontrado")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func normalize(c Client) Client {
	c.Code = strings.TrimSpace(c.Code)
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.RIF = strings.ToUpper(strings.TrimSpace(c.RIF))
	c.Email = strings.TrimSpace(c.Email)
	c.Address = strings.TrimSpace(c.Address)
	return c
}

func validate(c Client) error {
	if c.Code == "" || c.Name == "" {
		return ErrInvalidInput
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return ErrInvalidInput
		}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, c Client) (Client, error) {
	c = normalize(c)
	if err := validate(c); err != nil {
		return Client{}, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Client{}, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, code string, c Client) (Client, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Client{}, ErrNotFound
	}

	c = normalize(c)
	if c.Code == "" {
		c.Code = code
	}
	if err := validate(c); err != nil {
		return Client{}, err
	}

	if err := s.repo.Update(ctx, code, c); err != nil {
		return Client{}, err
	}
	return c, nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (Client, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Client{}, ErrNotFound
	}
	return s.repo.GetByCode(ctx, code)
}

func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, code)
}
