package clients

import (
	"context"
	"testing"
)

type testRepo struct {
	byCode map[string]Client
}

func newTestRepo() *testRepo {
	return &testRepo{byCode: map[string]Client{}}
}

func (r *testRepo) Create(ctx context.Context, c Client) error {
	r.byCode[c.Code] = c
	return nil
}

func (r *testRepo) Update(ctx context.Context, code string, c Client) error {
	if _, ok := r.byCode[code]; !ok {
		return ErrNotFound
	}
	delete(r.byCode, code)
	r.byCode[c.Code] = c
	return nil
}

func (r *testRepo) GetByCode(ctx context.Context, code string) (Client, error) {
	c, ok := r.byCode[code]
	if !ok {
		return Client{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) List(ctx context.Context) ([]Client, error) {
	out := make([]Client, 0, len(r.byCode))
	for _, c := range r.byCode {
		out = append(out, c)
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, code string) error {
	if _, ok := r.byCode[code]; !ok {
		return ErrNotFound
	}
	delete(r.byCode, code)
	return nil
}

func TestService_Create_NormalizesAndValidates(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	c, err := svc.Create(context.Background(), Client{
		Code:  " CLI-1 ",
		Name:  "Agropecuaria El Palmar",
		RIF:   " j-12345678-9 ",
		Email: "compras@elpalmar.com",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Code != "CLI-1" || c.RIF != "J-12345678-9" {
		t.Fatalf("unexpected normalized client: %+v", c)
	}

	if _, err := svc.Create(context.Background(), Client{Code: "X"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), Client{Code: "X", Name: "Y", Email: "no-es-email"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for bad email, got %v", err)
	}
}

func TestService_Update_KeepsCodeWhenEmpty(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, Client{Code: "C1", Name: "Uno"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	c, err := svc.Update(ctx, "C1", Client{Name: "Uno Actualizado"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if c.Code != "C1" || repo.byCode["C1"].Name != "Uno Actualizado" {
		t.Fatalf("unexpected state after update: %+v", repo.byCode)
	}

	if _, err := svc.Update(ctx, "C9", Client{Name: "x"}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete_IsHard(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, Client{Code: "C1", Name: "Uno"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, "C1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := repo.byCode["C1"]; ok {
		t.Fatalf("client should be gone")
	}
	if err := svc.Delete(ctx, "C1"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
