package main

import (
	"database/sql"

	"github.com/go-faster/errors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/colophon-press/colophon/migrations"
	"github.com/colophon-press/colophon/pkg/configuration"
)

func openForMigrations() (*sql.DB, error) {
	conf := configuration.Use()
	db, err := sql.Open("pgx", conf.Database.ConnectionString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, errors.Wrap(err, "failed to set goose dialect")
	}
	return db, nil
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the catalogue schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openForMigrations()
			if err != nil {
				return err
			}
			defer db.Close()
			return goose.UpContext(cmd.Context(), db, ".")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openForMigrations()
			if err != nil {
				return err
			}
			defer db.Close()
			return goose.DownContext(cmd.Context(), db, ".")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openForMigrations()
			if err != nil {
				return err
			}
			defer db.Close()
			return goose.StatusContext(cmd.Context(), db, ".")
		},
	})

	return cmd
}
