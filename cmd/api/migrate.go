// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/scriptwriter/internal/platform/migration"
)

var errMissingDSN = errors.New("migrate: no database URL (set DATABASE_URL or --db)")

func newMigrateCommand() *cobra.Command {
	var dsn string

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL document schema",
		Long: `Apply or roll back the embedded migrations that create the JSONB documents
table used by STORE_DRIVER=postgres.`,
	}

	migrateCmd.PersistentFlags().StringVar(&dsn, "db", "", "Database connection URL (defaults to DATABASE_URL)")

	resolveDSN := func() (string, error) {
		if dsn != "" {
			return dsn, nil
		}
		if fromEnv := os.Getenv("DATABASE_URL"); fromEnv != "" {
			return fromEnv, nil
		}
		return "", errMissingDSN
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			target, err := resolveDSN()
			if err != nil {
				return err
			}
			return migration.RunUp(target, newLogger(false))
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back every applied migration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			target, err := resolveDSN()
			if err != nil {
				return err
			}
			return migration.RunDown(target, newLogger(false))
		},
	})

	return migrateCmd
}
