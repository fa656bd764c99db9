package main

import (
	"database/sql"
	"fmt"
	"os"

	"ganaderia-dashboard/internal/adapters/storage/memory"
	pg "ganaderia-dashboard/internal/adapters/storage/postgres"
	"ganaderia-dashboard/internal/config"
	"ganaderia-dashboard/internal/domain/reports"
	"ganaderia-dashboard/internal/platform/logger"

	"github.com/spf13/cobra"
)

var (
	envFile string

	cfg *config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ganaderia",
	Short: "Dashboard ganadero: API, migraciones y reportes",
	Long: `API REST del dashboard ganadero (animales, clientes, grupos, familias,
producción de leche y reportes PDF).

Sin subcomando arranca el servidor (igual que "serve").`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if envFile != "" {
			cfg = config.Load(envFile)
		} else {
			cfg = config.Load()
		}
		log = logger.New(logger.Options{
			Level:  logger.ParseLevel(cfg.Log.Level),
			Format: logger.ParseFormat(cfg.Log.Format),
			App:    cfg.Log.App,
		})
		return nil
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "archivo .env a cargar (default .env)")

	rootCmd.AddCommand(serveCmd, migrateCmd, reportCmd, animalUpdateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDB abre Postgres si hay DB_DSN; nil significa modo in-memory.
func openDB() (*sql.DB, error) {
	if cfg.Database.DSN == "" {
		return nil, nil
	}
	db, err := pg.Open(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func company() reports.Company {
	return reports.Company{Name: cfg.Company.Name, Address: cfg.Company.Address}
}

// reportsService usa la misma fuente de datos que el router.
func reportsService(db *sql.DB, st *memory.Store) *reports.Service {
	var repo reports.Repository
	if db != nil {
		repo = pg.NewReportsRepo(db)
	} else {
		repo = st.Reports()
	}
	return reports.NewService(repo, company())
}
