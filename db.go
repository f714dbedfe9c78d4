package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	// WAL mode so readers don't block the writer
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}
	return db, nil
}

func initSchema(db *sql.DB) error {
	ddl, err := os.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading schema: %w", err)
	}
	if _, err := db.Exec(string(ddl)); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

func getAccountByID(db *sql.DB, id int) (*Account, error) {
	var a Account
	err := db.QueryRow("SELECT account_id, name, email, pw_hash FROM account WHERE account_id = ?", id).
		Scan(&a.ID, &a.Name, &a.Email, &a.PwHash)
	if err == sql.ErrNoRows {
		return nil, ErrNoAccount
	}
	if err != nil {
		return nil, fmt.Errorf("querying account %d: %w", id, err)
	}
	return &a, nil
}

func getAccountByName(db *sql.DB, name string) (*Account, error) {
	var a Account
	err := db.QueryRow("SELECT account_id, name, email, pw_hash FROM account WHERE name = ?", name).
		Scan(&a.ID, &a.Name, &a.Email, &a.PwHash)
	if err == sql.ErrNoRows {
		return nil, ErrNoAccount
	}
	if err != nil {
		return nil, fmt.Errorf("querying account %q: %w", name, err)
	}
	return &a, nil
}

func accountExists(db *sql.DB, name, email string) (bool, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM account WHERE name = ? OR email = ?", name, email).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking for existing account: %w", err)
	}
	return n > 0, nil
}
