package catalog

import (
	"database/sql"
	"fmt"
	"log"
)

type CreateCatalogSchema struct{}

func (m *CreateCatalogSchema) UpMigration(db *sql.DB) error {
	query := `
	CREATE SCHEMA IF NOT EXISTS catalog;`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create schema catalog: %w", err)
	}
	return nil
}

type CreateProductsTable struct{}

func (m *CreateProductsTable) UpMigration(db *sql.DB) error {
	if ok, err := checkAndSkipMigration(db, "catalog.products"); err != nil {
		return err
	} else if ok {
		return nil
	}
	query := `
	CREATE TABLE IF NOT EXISTS catalog.products (
		id TEXT PRIMARY KEY,
		description TEXT NOT NULL DEFAULT '',
		features TEXT[] NOT NULL DEFAULT '{}',
		image TEXT NOT NULL DEFAULT '',
		metadata JSONB NOT NULL DEFAULT '{}',
		name TEXT NOT NULL,
		unit_label TEXT NOT NULL DEFAULT '',
		created TIMESTAMPTZ NOT NULL
	);`
	if err := executeAndMarkMigration(db, query, "catalog.products"); err != nil {
		return err
	}
	log.Println("Migration 'catalog.products' completed successfully.")
	return nil
}

type CreatePricesTable struct{}

func (m *CreatePricesTable) UpMigration(db *sql.DB) error {
	if ok, err := checkAndSkipMigration(db, "catalog.prices"); err != nil {
		return err
	} else if ok {
		return nil
	}
	query := `
	CREATE TABLE IF NOT EXISTS catalog.prices (
		id TEXT PRIMARY KEY,
		billing_scheme TEXT NOT NULL,
		created TIMESTAMPTZ NOT NULL,
		currency TEXT NOT NULL,
		custom_unit_amount TEXT,
		livemode BOOLEAN NOT NULL,
		lookup_key TEXT NOT NULL DEFAULT '',
		metadata JSONB NOT NULL DEFAULT '{}',
		nickname TEXT NOT NULL DEFAULT '',
		product_id TEXT NOT NULL,
		recurring JSONB,
		tiers_mode TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL,
		unit_amount TEXT,
		unit_amount_decimal TEXT NOT NULL DEFAULT ''
	);`
	if err := executeAndMarkMigration(db, query, "catalog.prices"); err != nil {
		return err
	}
	log.Println("Migration 'catalog.prices' completed successfully.")
	return nil
}

func checkAndSkipMigration(db *sql.DB, migrationName string) (bool, error) {
	var migrationExists bool
	err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM migrations.migrations WHERE name = $1)", migrationName).Scan(&migrationExists)
	if err != nil {
		return migrationExists, fmt.Errorf("failed to check migration status: %w", err)
	}
	if migrationExists {
		log.Printf("Migration '%s' already completed. Skipping.\n", migrationName)
	}
	return migrationExists, nil
}

func executeAndMarkMigration(db *sql.DB, query string, migrationName string) error {
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to apply migration '%s': %w", migrationName, err)
	}
	if _, err := db.Exec("INSERT INTO migrations.migrations (name, time) VALUES ($1, current_timestamp)", migrationName); err != nil {
		return fmt.Errorf("failed to mark '%s' migration as complete: %w", migrationName, err)
	}
	return nil
}
