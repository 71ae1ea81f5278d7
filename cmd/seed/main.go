package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"storefront/config"
	"storefront/pkg/helpers"
)

// Seeds a verified demo account plus a couple of products for local
// development. Safe to re-run.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.BcryptHasher{}.Hash(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (username, password_hash, first_name, last_name,
			account_created, account_updated, verified)
		VALUES ($1, $2, $3, $4, now(), now(), true)
		ON CONFLICT (username) DO UPDATE SET account_updated = now()
		RETURNING id
	`, email, hash, "Demo", "User").Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d username=%s password=%s (verified)\n", userID, email, password)

	products := []struct {
		name, description, sku, manufacturer string
		quantity                             int
	}{
		{"Mechanical Keyboard", "87-key tenkeyless, brown switches", "KB-87-BRN", "Keychron", 25},
		{"USB-C Dock", "Dual 4K display, 100W passthrough", "DOCK-C-100", "CalDigit", 10},
	}
	for _, p := range products {
		var pid int64
		err = db.QueryRow(`
			INSERT INTO products (name, description, sku, manufacturer, quantity,
				owner_user_id, date_added, date_last_updated)
			VALUES ($1, $2, $3, $4, $5, $6, now(), now())
			ON CONFLICT (sku) DO UPDATE SET date_last_updated = now()
			RETURNING id
		`, p.name, p.description, p.sku, p.manufacturer, p.quantity, userID).Scan(&pid)
		if err != nil {
			log.Fatalf("failed to seed product %s: %v", p.sku, err)
		}
		fmt.Printf("seeded product: id=%d sku=%s\n", pid, p.sku)
	}
}
