package groups

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	groups   []Group
	families []Family
}

func (r *testRepo) CreateGroup(ctx context.Context, name string) (Group, error) {
	g := Group{ID: int64(len(r.groups) + 1), Name: name}
	r.groups = append(r.groups, g)
	return g, nil
}

func (r *testRepo) ListGroups(ctx context.Context) ([]Group, error) {
	return r.groups, nil
}

func (r *testRepo) GetGroup(ctx context.Context, id int64) (Group, error) {
	for _, g := range r.groups {
		if g.ID == id {
			return g, nil
		}
	}
	return Group{}, ErrNotFound
}

func (r *testRepo) CreateFamily(ctx context.Context, name string, groupID int64) (Family, error) {
	f := Family{Code: int64(len(r.families) + 1), Name: name, GroupID: groupID}
	r.families = append(r.families, f)
	return f, nil
}

func (r *testRepo) ListFamiliesByGroup(ctx context.Context, groupID int64) ([]Family, error) {
	out := []Family{}
	for _, f := range r.families {
		if f.GroupID == groupID {
			out = append(out, f)
		}
	}
	return out, nil
}

func TestService_CreateFamily_RequiresExistingGroup(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&testRepo{})

	_, err := svc.CreateFamily(ctx, "Holstein", 7)
	assert.ErrorIs(t, err, ErrInvalidInput)

	g, err := svc.CreateGroup(ctx, " Bovinos ")
	require.NoError(t, err)
	assert.Equal(t, "Bovinos", g.Name)

	f, err := svc.CreateFamily(ctx, "Holstein", g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, f.GroupID)
}

func TestService_FamiliesByGroup(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&testRepo{})

	bov, _ := svc.CreateGroup(ctx, "Bovinos")
	equ, _ := svc.CreateGroup(ctx, "Equinos")
	_, _ = svc.CreateFamily(ctx, "Holstein", bov.ID)
	_, _ = svc.CreateFamily(ctx, "Brahman", bov.ID)
	_, _ = svc.CreateFamily(ctx, "Criollo", equ.ID)

	fams, err := svc.FamiliesByGroup(ctx, bov.ID)
	require.NoError(t, err)
	require.Len(t, fams, 2)
	assert.Equal(t, "Holstein", fams[0].Name)

	fams, err = svc.FamiliesByGroup(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, fams)
}

func TestService_GetGroup_NotFound(t *testing.T) {
	svc := NewService(&testRepo{})
	_, err := svc.GetGroup(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.CreateGroup(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
