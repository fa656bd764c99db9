package animalform

import (
	"context"
	"net/url"
	"strconv"

	"ganaderia-dashboard/internal/platform/httpclient"
)

type Group struct {
	ID   int64  `json:"id_gru"`
	Name string `json:"name_gru"`
}

// FamilyOption es una opción del selector de familia (value = codigo_fam).
type FamilyOption struct {
	Value string
	Label string
}

// Gateway es lo que el formulario necesita de la API.
type Gateway interface {
	GetAnimal(ctx context.Context, id string) (Record, error)
	ListGroups(ctx context.Context) ([]Group, error)
	FamilyOptions(ctx context.Context, groupID string) ([]FamilyOption, error)
	UpdateAnimal(ctx context.Context, id string, p Payload) error
}

// APIGateway habla con la API del dashboard por HTTP.
type APIGateway struct {
	c *httpclient.Client
}

func NewAPIGateway(c *httpclient.Client) *APIGateway {
	return &APIGateway{c: c}
}

func (g *APIGateway) GetAnimal(ctx context.Context, id string) (Record, error) {
	var r Record
	err := g.c.Get(ctx, "/api/animal/"+url.PathEscape(id), &r)
	return r, err
}

func (g *APIGateway) ListGroups(ctx context.Context) ([]Group, error) {
	var out []Group
	if err := g.c.Get(ctx, "/api/grupoAnimales", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *APIGateway) FamilyOptions(ctx context.Context, groupID string) ([]FamilyOption, error) {
	var fams []struct {
		Code int64  `json:"codigo_fam"`
		Name string `json:"name_fam"`
	}
	if err := g.c.Get(ctx, "/api/familia/"+url.PathEscape(groupID), &fams); err != nil {
		return nil, err
	}

	out := make([]FamilyOption, 0, len(fams))
	for _, f := range fams {
		out = append(out, FamilyOption{Value: strconv.FormatInt(f.Code, 10), Label: f.Name})
	}
	return out, nil
}

func (g *APIGateway) UpdateAnimal(ctx context.Context, id string, p Payload) error {
	return g.c.Put(ctx, "/api/animal/"+url.PathEscape(id), p, nil)
}
