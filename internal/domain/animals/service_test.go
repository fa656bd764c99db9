package animals

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byCode map[string]Animal
	err    error
}

func newTestRepo() *testRepo {
	return &testRepo{byCode: map[string]Animal{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) error {
	if r.err != nil {
		return r.err
	}
	r.byCode[a.Code] = a
	return nil
}

func (r *testRepo) Update(ctx context.Context, code string, a Animal) error {
	if r.err != nil {
		return r.err
	}
	cur, ok := r.byCode[code]
	if !ok || !cur.Exists {
		return ErrNotFound
	}
	delete(r.byCode, code)
	r.byCode[a.Code] = a
	return nil
}

func (r *testRepo) GetByCode(ctx context.Context, code string) (Animal, error) {
	a, ok := r.byCode[code]
	if !ok || !a.Exists {
		return Animal{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context) ([]Animal, error) {
	out := make([]Animal, 0, len(r.byCode))
	for _, a := range r.byCode {
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) SoftDelete(ctx context.Context, code string) error {
	a, ok := r.byCode[code]
	if !ok || !a.Exists {
		return ErrNotFound
	}
	a.Exists = false
	r.byCode[code] = a
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestNormalize_BlankChipAndNonPositiveWeight(t *testing.T) {
	out := Normalize(Input{
		Code:   " 123 ",
		Chip:   "   ",
		Weight: decimal.NewNullDecimal(decimal.NewFromInt(-5)),
	})

	assert.Equal(t, "123", out.Code)
	assert.Equal(t, NoChip, out.Chip)
	require.True(t, out.Weight.Valid)
	assert.True(t, out.Weight.Decimal.Equal(DefaultWeight))
	assert.Equal(t, StatusActive, out.Status)
}

func TestNormalize_KeepsValidValues(t *testing.T) {
	tag := "  A-17 "
	out := Normalize(Input{
		Chip:   "98100",
		Weight: decimal.NewNullDecimal(decimal.RequireFromString("412.5")),
		Status: StatusInactive,
		EarTag: &tag,
	})

	assert.Equal(t, "98100", out.Chip)
	assert.Equal(t, "412.5", out.Weight.Decimal.String())
	assert.Equal(t, StatusInactive, out.Status)
	require.NotNil(t, out.EarTag)
	assert.Equal(t, "A-17", *out.EarTag)
}

func TestNormalize_ZeroAndMissingWeight(t *testing.T) {
	for _, w := range []decimal.NullDecimal{{}, decimal.NewNullDecimal(decimal.Zero)} {
		out := Normalize(Input{Weight: w})
		assert.True(t, out.Weight.Decimal.Equal(DefaultWeight))
	}
}

func TestService_Create_RequiresCodeAndName(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), Input{Name: "Lucero"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), Input{Code: "A1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), Input{Code: "A1", Name: "Lucero", Status: 9})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_PersistsNormalizedValues(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, Input{Code: "123", Name: "Lucero", Chip: "555"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "123", Input{
		Name:   "Lucero",
		Chip:   "",
		Weight: decimal.NewNullDecimal(decimal.NewFromInt(-5)),
		Status: StatusActive,
	})
	require.NoError(t, err)

	got := repo.byCode["123"]
	assert.Equal(t, "0", got.Chip)
	assert.Equal(t, "1", got.Weight.Decimal.String())
	assert.True(t, got.Exists)
}

func TestService_Update_CanRenameCode(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, Input{Code: "OLD", Name: "Pinta"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "OLD", Input{Code: "NEW", Name: "Pinta"})
	require.NoError(t, err)

	_, err = svc.GetByCode(ctx, "OLD")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetByCode(ctx, "NEW")
	assert.NoError(t, err)
}

func TestService_Update_Missing(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Update(context.Background(), "nope", Input{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(context.Background(), "  ", Input{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_IsSoft(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, Input{Code: "B7", Name: "Canela"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "B7"))
	assert.False(t, repo.byCode["B7"].Exists)

	assert.ErrorIs(t, svc.Delete(ctx, "B7"), ErrNotFound)
}

func TestService_PropagatesRepoErrors(t *testing.T) {
	repo := newTestRepo()
	repo.err = errors.New("Table 'ganado.animal' doesn't exist")
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), Input{Code: "C1", Name: "Mora"})
	assert.EqualError(t, err, "Table 'ganado.animal' doesn't exist")
}
