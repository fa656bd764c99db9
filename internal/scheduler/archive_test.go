package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ganaderia-dashboard/internal/adapters/storage/memory"
	"ganaderia-dashboard/internal/domain/animals"
	"ganaderia-dashboard/internal/domain/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countRecorder struct {
	calls []string
}

func (c *countRecorder) ReportGenerated(kind, format string) {
	c.calls = append(c.calls, kind+"/"+format)
}

func newSource(t *testing.T) *reports.Service {
	t.Helper()
	ctx := context.Background()

	st := memory.NewStore()
	g, err := st.Groups().CreateGroup(ctx, "Bovinos")
	require.NoError(t, err)
	fam, err := st.Groups().CreateFamily(ctx, "Holstein", g.ID)
	require.NoError(t, err)
	require.NoError(t, st.Animals().Create(ctx, animals.Animal{
		Code: "A1", Name: "Aurora", GroupID: &g.ID, FamilyCode: &fam.Code, Sex: "Hembra", Status: animals.StatusActive,
	}))

	clock := func() time.Time { return time.Date(2024, 6, 15, 6, 0, 0, 0, time.UTC) }
	return reports.NewService(st.Reports(), reports.Company{Name: "Hacienda", Address: "Km 5"}).WithClock(clock)
}

func TestRunOnce_WritesBothReports(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "archivo")
	rec := &countRecorder{}
	a := NewReportArchiver(newSource(t), dir, "0 6 * * *", nil, rec)

	paths, err := a.RunOnce(context.Background())
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.Equal(t, filepath.Join(dir, "Reporte_Animales_Todos_2024-06-15.pdf"), paths[0])
	assert.Equal(t, filepath.Join(dir, "Reporte_Familias_Todos_2024-06-15.pdf"), paths[1])

	for _, p := range paths {
		b, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-", string(b[:5]))
	}
	assert.Equal(t, []string{"Animales/archive", "Familias/archive"}, rec.calls)

	// no quedan temporales
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestStart(t *testing.T) {
	t.Run("disabled without dir", func(t *testing.T) {
		a := NewReportArchiver(newSource(t), "", "0 6 * * *", nil, nil)
		require.NoError(t, a.Start(context.Background()))
		a.Stop()

		_, err := a.RunOnce(context.Background())
		assert.Error(t, err)
	})

	t.Run("invalid schedule", func(t *testing.T) {
		a := NewReportArchiver(newSource(t), t.TempDir(), "cada día", nil, nil)
		assert.Error(t, a.Start(context.Background()))
	})

	t.Run("start and stop", func(t *testing.T) {
		a := NewReportArchiver(newSource(t), t.TempDir(), "@every 1h", nil, nil)
		require.NoError(t, a.Start(context.Background()))
		require.NoError(t, a.Start(context.Background()))
		a.Stop()
		a.Stop()
	})
}
