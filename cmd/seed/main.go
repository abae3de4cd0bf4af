// Package main provides a CLI tool for creating the schema and seeding demo data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"shopapi/internal/config"
	"shopapi/internal/infrastructure/storage/postgres"
	"shopapi/pkg/logger"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'customer'
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id   BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		price       NUMERIC(12,2) NOT NULL,
		image_url   TEXT NOT NULL DEFAULT '',
		category_id BIGINT NOT NULL REFERENCES categories(id)
	)`,
	`CREATE TABLE IF NOT EXISTS carts (
		id      BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS cart_items (
		id         BIGSERIAL PRIMARY KEY,
		cart_id    BIGINT NOT NULL REFERENCES carts(id),
		product_id BIGINT NOT NULL REFERENCES products(id),
		quantity   INT NOT NULL CHECK (quantity >= 1)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id           BIGSERIAL PRIMARY KEY,
		user_id      BIGINT NOT NULL REFERENCES users(id),
		order_date   TIMESTAMPTZ NOT NULL,
		total_amount NUMERIC(12,2) NOT NULL,
		status       TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id         BIGSERIAL PRIMARY KEY,
		order_id   BIGINT NOT NULL REFERENCES orders(id),
		product_id BIGINT NOT NULL REFERENCES products(id),
		quantity   INT NOT NULL CHECK (quantity >= 1),
		unit_price NUMERIC(12,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS addresses (
		id          BIGSERIAL PRIMARY KEY,
		user_id     BIGINT NOT NULL REFERENCES users(id),
		street      TEXT NOT NULL,
		city        TEXT NOT NULL,
		state       TEXT NOT NULL,
		postal_code TEXT NOT NULL,
		country     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sys_audit (
		id          BIGSERIAL PRIMARY KEY,
		entity_type TEXT NOT NULL,
		entity_id   BIGINT NOT NULL,
		action      TEXT NOT NULL,
		actor_id    BIGINT NOT NULL DEFAULT 0,
		actor_email TEXT NOT NULL DEFAULT '',
		payload     BYTEA,
		compression TEXT NOT NULL DEFAULT 'none',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_cart_items_cart ON cart_items(cart_id)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_addresses_user ON addresses(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sys_audit_entity ON sys_audit(entity_type, entity_id)`,
}

func main() {
	log, err := logger.New(logger.Config{Level: "info", Development: true})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.DatabaseURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatalw("failed to apply schema", "error", err)
		}
	}
	log.Info("schema applied")

	if err := seedAdminUser(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@shopapi.local"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	var existingID int64
	err := pool.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, adminEmail).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "email", adminEmail, "user_id", existingID)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check admin exists: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	var adminID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, role)
		VALUES ('admin', $1, $2, 'admin')
		RETURNING id
	`, adminEmail, string(passwordHash)).Scan(&adminID)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "email", adminEmail, "user_id", adminID)
	return nil
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		log.Info("demo data already present, skipping")
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	categories := map[string]int64{}
	for _, name := range []string{"Electronics", "Books", "Clothing"} {
		var id int64
		if err := tx.QueryRow(ctx,
			`INSERT INTO categories (name) VALUES ($1) RETURNING id`, name,
		).Scan(&id); err != nil {
			return fmt.Errorf("insert category %s: %w", name, err)
		}
		categories[name] = id
	}

	products := []struct {
		name     string
		price    string
		category string
	}{
		{"Wireless Headphones", "129.99", "Electronics"},
		{"Mechanical Keyboard", "89.50", "Electronics"},
		{"USB-C Charger", "24.99", "Electronics"},
		{"The Go Programming Language", "39.95", "Books"},
		{"Database Internals", "49.99", "Books"},
		{"Cotton T-Shirt", "14.99", "Clothing"},
		{"Denim Jacket", "79.00", "Clothing"},
	}
	for _, p := range products {
		if _, err := tx.Exec(ctx, `
			INSERT INTO products (name, price, image_url, category_id)
			VALUES ($1, $2, '', $3)
		`, p.name, p.price, categories[p.category]); err != nil {
			return fmt.Errorf("insert product %s: %w", p.name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	log.Infow("demo data seeded", "categories", len(categories), "products", len(products))
	return nil
}
