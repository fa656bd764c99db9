package clients

import "context"

type Repository interface {
	Create(ctx context.Context, c Client) error
	// Update reemplaza la fila code; c.Code puede traer un código nuevo.
	Update(ctx context.Context, code string, c Client) error
	GetByCode(ctx context.Context, code string) (Client, error)
	List(ctx context.Context) ([]Client, error)
	Delete(ctx context.Context, code string) error
}
