// Package main provides a CLI tool for creating the schema and seeding
// the database with demo data.
package main

import (
	"context"
	"fmt"
	"os"

	"facturier/internal/infrastructure/storage/postgres"
	"facturier/pkg/logger"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id         BIGSERIAL PRIMARY KEY,
		first_name TEXT NOT NULL DEFAULT '',
		last_name  TEXT NOT NULL,
		street     TEXT NOT NULL DEFAULT '',
		city       TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_customers_city ON customers (city)`,

	`CREATE TABLE IF NOT EXISTS products (
		id    BIGSERIAL PRIMARY KEY,
		name  TEXT NOT NULL,
		price NUMERIC(15,2) NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS invoices (
		id          BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL REFERENCES customers (id),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_customer ON invoices (customer_id)`,

	`CREATE TABLE IF NOT EXISTS invoice_lines (
		invoice_id BIGINT NOT NULL REFERENCES invoices (id),
		line_no    INT NOT NULL,
		product_id BIGINT NOT NULL REFERENCES products (id),
		quantity   BIGINT NOT NULL,
		price      NUMERIC(15,2) NOT NULL,
		PRIMARY KEY (invoice_id, line_no)
	)`,

	`CREATE TABLE IF NOT EXISTS sys_audit (
		id                 UUID PRIMARY KEY,
		entity_type        TEXT NOT NULL,
		entity_id          BIGINT NOT NULL,
		action             TEXT NOT NULL,
		user_id            TEXT NOT NULL DEFAULT '',
		user_email         TEXT NOT NULL DEFAULT '',
		changes            JSONB,
		changes_compressed BYTEA,
		compression_algo   TEXT NOT NULL DEFAULT 'none',
		created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sys_audit_entity ON sys_audit (entity_type, entity_id, created_at DESC)`,
}

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	// Create schema
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatalw("failed to create schema", "error", err)
		}
	}
	log.Info("schema created")

	// Seed demo data if requested
	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return fmt.Errorf("check existing customers: %w", err)
	}
	if count > 0 {
		log.Infow("demo data already present, skipping", "customers", count)
		return nil
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO customers (first_name, last_name, street, city) VALUES
			('Jean', 'Dupont', '12 rue de la Paix', 'Paris'),
			('Marie', 'Durand', '3 avenue Foch', 'Lyon'),
			('Pierre', 'Martin', '7 place Bellecour', 'Lyon')
	`)
	if err != nil {
		return fmt.Errorf("insert customers: %w", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO products (name, price) VALUES
			('Keyboard', 49.90),
			('Mouse', 19.90),
			('Monitor', 189.00),
			('Headset', 79.50)
	`)
	if err != nil {
		return fmt.Errorf("insert products: %w", err)
	}

	log.Info("demo data seeded")
	return nil
}
