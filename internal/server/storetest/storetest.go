// Package storetest opens throwaway SQLite stores with the real schema for
// package tests.
package storetest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/recipebox/internal/dbx"
	"github.com/dmitrijs2005/recipebox/internal/server/migrations"
	"github.com/pressly/goose/v3"
)

// Open creates a SQLite file in a temp dir, applies all migrations and
// registers cleanup. goose keeps global state, so callers must not run
// Open from parallel tests.
func Open(t testing.TB) *sql.DB {
	t.Helper()

	db, d, err := dbx.Open("sqlite", filepath.Join(t.TempDir(), "recipebox.db"), 5*time.Second)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(migrations.GooseDialect(d)); err != nil {
		t.Fatalf("goose dialect: %v", err)
	}
	if err := goose.UpContext(context.Background(), db, migrations.Dir(d)); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

// InsertUser adds an account directly and returns its id.
func InsertUser(t testing.TB, db *sql.DB, email string) int64 {
	t.Helper()

	now := time.Now().UTC()
	var id int64
	err := db.QueryRow(
		`INSERT INTO users (name, email, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?) RETURNING id`,
		"user "+email, email, "hash", now, now,
	).Scan(&id)
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}

	return id
}
