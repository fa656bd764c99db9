package memory

import (
	"context"
	"testing"

	"ganaderia-dashboard/internal/domain/animals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestReportsRepo_FamilyRowsLeftJoin(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	g, err := st.Groups().CreateGroup(ctx, "Bovinos")
	require.NoError(t, err)
	holstein, _ := st.Groups().CreateFamily(ctx, "Holstein", g.ID)
	jersey, _ := st.Groups().CreateFamily(ctx, "Jersey", g.ID)

	ar := st.Animals()
	require.NoError(t, ar.Create(ctx, animals.Animal{Code: "A2", Name: "Bella", GroupID: &g.ID, FamilyCode: &holstein.Code, Status: animals.StatusActive}))
	require.NoError(t, ar.Create(ctx, animals.Animal{Code: "A1", Name: "Aurora", GroupID: &g.ID, FamilyCode: &holstein.Code, Status: animals.StatusActive}))
	require.NoError(t, ar.Create(ctx, animals.Animal{Code: "A3", Name: "Baja", FamilyCode: &jersey.Code, Status: animals.StatusActive}))
	require.NoError(t, ar.SoftDelete(ctx, "A3"))

	rows, err := st.Reports().FamilyAnimalRows(ctx, "")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Aurora", rows[0].Animal.Name)
	assert.Equal(t, "Bella", rows[1].Animal.Name)
	assert.Equal(t, "Jersey", rows[2].FamilyName)
	assert.Nil(t, rows[2].Animal)
	require.NotNil(t, rows[2].Group)
	assert.Equal(t, "Bovinos", *rows[2].Group)

	counts, err := st.Reports().FamilyCounts(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, int64(2), counts[0].Total)
	assert.Equal(t, int64(0), counts[1].Total)
}

func TestReportsRepo_AnimalRowsNullCategoryLast(t *testing.T) {
	ctx := context.Background()
	st := NewStore()
	g, _ := st.Groups().CreateGroup(ctx, "Equinos")

	ar := st.Animals()
	require.NoError(t, ar.Create(ctx, animals.Animal{Code: "X", Name: "Sin grupo", Status: animals.StatusActive}))
	require.NoError(t, ar.Create(ctx, animals.Animal{Code: "E", Name: "Relámpago", GroupID: &g.ID, Status: animals.StatusActive}))

	rows, err := st.Reports().AnimalRows(ctx, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "E", rows[0].Code)
	assert.Nil(t, rows[1].Category)

	rows, err = st.Reports().AnimalRows(ctx, "Equinos")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	counts, err := st.Reports().CategoryCounts(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Nil(t, counts[1].Category)
}

func TestAnimalRepo_SoftDeletedIsNotFound(t *testing.T) {
	ctx := context.Background()
	ar := NewStore().Animals()

	require.NoError(t, ar.Create(ctx, animals.Animal{Code: "123", Name: "Lucero", Status: animals.StatusActive, GroupID: int64Ptr(1)}))
	require.NoError(t, ar.SoftDelete(ctx, "123"))

	_, err := ar.GetByCode(ctx, "123")
	assert.ErrorIs(t, err, animals.ErrNotFound)
	assert.ErrorIs(t, ar.Update(ctx, "123", animals.Animal{Code: "123"}), animals.ErrNotFound)
	assert.ErrorIs(t, ar.SoftDelete(ctx, "123"), animals.ErrNotFound)

	list, err := ar.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
