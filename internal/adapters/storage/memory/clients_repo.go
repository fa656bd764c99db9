package memory

import (
	"context"
	"errors"
	"sort"

	"ganaderia-dashboard/internal/domain/clients"
)

type clientRepo struct {
	s *Store
}

func (r *clientRepo) Create(ctx context.Context, c clients.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.clients[c.Code]; exists {
		return errors.New("client already exists")
	}
	r.s.clients[c.Code] = c
	return nil
}

func (r *clientRepo) Update(ctx context.Context, code string, c clients.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clients[code]; !ok {
		return clients.ErrNotFound
	}
	if c.Code != code {
		if _, taken := r.s.clients[c.Code]; taken {
			return errors.New("client already exists")
		}
		delete(r.s.clients, code)
	}
	r.s.clients[c.Code] = c
	return nil
}

func (r *clientRepo) GetByCode(ctx context.Context, code string) (clients.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.clients[code]
	if !ok {
		return clients.Client{}, clients.ErrNotFound
	}
	return c, nil
}

func (r *clientRepo) List(ctx context.Context) ([]clients.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]clients.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *clientRepo) Delete(ctx context.Context, code string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clients[code]; !ok {
		return clients.ErrNotFound
	}
	delete(r.s.clients, code)
	return nil
}
