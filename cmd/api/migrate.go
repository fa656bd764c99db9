package main

import (
	"errors"
	"fmt"

	pg "ganaderia-dashboard/internal/adapters/storage/postgres"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica las migraciones pendientes en Postgres",
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		if db == nil {
			return errors.New("DB_DSN no configurado")
		}
		defer db.Close()

		v, err := pg.Migrate(db)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "schema en versión %d\n", v)
		return nil
	},
}
