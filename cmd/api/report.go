package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"ganaderia-dashboard/internal/adapters/storage/memory"
	"ganaderia-dashboard/internal/reportdoc"

	"github.com/spf13/cobra"
)

var (
	reportFilter string
	reportOutDir string
)

var reportCmd = &cobra.Command{
	Use:   "report [animales|familias]",
	Short: "Genera un reporte PDF en disco",
	Long: `Genera el mismo PDF que descarga el dashboard.

Ejemplo:
  ganaderia report animales --filtro Bovinos --out ./reportes`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"animales", "familias"},
	RunE:      runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFilter, "filtro", "Todos", "categoría o familia")
	reportCmd.Flags().StringVar(&reportOutDir, "out", ".", "directorio de salida")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}
	svc := reportsService(db, memory.NewStore())

	var (
		doc  *reportdoc.Document
		kind string
	)
	switch args[0] {
	case "animales":
		kind = reportdoc.KindAnimals
		doc, err = svc.AnimalDocument(ctx, reportFilter)
	case "familias":
		kind = reportdoc.KindFamilies
		doc, err = svc.FamilyDocument(ctx, reportFilter)
	default:
		return fmt.Errorf("tipo de reporte desconocido: %s", args[0])
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(reportOutDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(reportOutDir, svc.Filename(kind, reportFilter))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := doc.Render(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Info("reporte generado", map[string]any{"path": path, "report_id": doc.ID})
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
