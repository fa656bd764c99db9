// Package scheduler corre tareas periódicas del dashboard.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"ganaderia-dashboard/internal/domain/reports"
	"ganaderia-dashboard/internal/platform/logger"
	"ganaderia-dashboard/internal/reportdoc"

	"github.com/robfig/cron/v3"
)

// DocumentSource es lo que el archivo necesita del servicio de reportes.
type DocumentSource interface {
	AnimalDocument(ctx context.Context, category string) (*reportdoc.Document, error)
	FamilyDocument(ctx context.Context, family string) (*reportdoc.Document, error)
	Filename(kind, filter string) string
}

// Recorder cuenta los PDFs archivados (reports.Recorder).
type Recorder = reports.Recorder

// ReportArchiver guarda cada día los reportes sin filtro en un directorio.
type ReportArchiver struct {
	src      DocumentSource
	dir      string
	schedule string
	log      logger.Logger
	rec      Recorder

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
}

func NewReportArchiver(src DocumentSource, dir, schedule string, log logger.Logger, rec Recorder) *ReportArchiver {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportArchiver{
		src:      src,
		dir:      dir,
		schedule: schedule,
		log:      log.With(map[string]any{"component": "report_archive"}),
		rec:      rec,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor))),
	}
}

// ValidateSchedule acepta expresiones de 5 campos o descriptores (@daily).
func ValidateSchedule(expr string) error {
	_, err := cron.ParseStandard(expr)
	return err
}

// Start programa el job. Sin directorio configurado no hace nada.
func (a *ReportArchiver) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.isRunning {
		return nil
	}
	if a.dir == "" {
		a.log.Info("archivo de reportes deshabilitado", nil)
		return nil
	}
	if err := ValidateSchedule(a.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", a.schedule, err)
	}

	if _, err := a.cron.AddFunc(a.schedule, func() {
		if _, err := a.RunOnce(ctx); err != nil {
			a.log.Error("archivo de reportes falló", map[string]any{"error": err.Error()})
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule archive job: %w", err)
	}

	a.cron.Start()
	a.isRunning = true
	a.log.Info("archivo de reportes programado", map[string]any{"schedule": a.schedule, "dir": a.dir})
	return nil
}

// Stop espera a que termine el job en curso.
func (a *ReportArchiver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.isRunning {
		return
	}
	<-a.cron.Stop().Done()
	a.isRunning = false
}

// RunOnce genera ambos PDFs sin filtro y devuelve las rutas escritas.
func (a *ReportArchiver) RunOnce(ctx context.Context) ([]string, error) {
	if a.dir == "" {
		return nil, errors.New("report archive dir not configured")
	}
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}

	jobs := []struct {
		kind  string
		build func(context.Context, string) (*reportdoc.Document, error)
	}{
		{reportdoc.KindAnimals, a.src.AnimalDocument},
		{reportdoc.KindFamilies, a.src.FamilyDocument},
	}

	var written []string
	for _, j := range jobs {
		doc, err := j.build(ctx, reports.AllFilter)
		if err != nil {
			return written, fmt.Errorf("build %s report: %w", j.kind, err)
		}
		path := filepath.Join(a.dir, a.src.Filename(j.kind, reports.AllFilter))
		if err := writeDocument(path, doc); err != nil {
			return written, err
		}
		if a.rec != nil {
			a.rec.ReportGenerated(j.kind, "archive")
		}
		a.log.Info("reporte archivado", map[string]any{"path": path, "report_id": doc.ID})
		written = append(written, path)
	}
	return written, nil
}

// writeDocument escribe en un temporal y renombra, así nunca queda un PDF a medias.
func writeDocument(path string, doc *reportdoc.Document) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".reporte-*.pdf")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := doc.Render(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
