// Package testdb opens databases for repository tests.
//
// By default every call gets a private in-memory SQLite database. When DB_URL is set the
// tests run against that PostgreSQL database instead; the table is truncated (identity
// restarted) before and after each test, so ids start at 1 either way.
package testdb

import (
	"fmt"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	envDatabaseURL = "DB_URL"

	driverPostgres = "postgres"
	driverSQLite   = "sqlite"
)

func init() {
	sqlx.BindDriver(driverSQLite, sqlx.QUESTION)
}

// Schema is the DDL for one table in both dialects. Postgres DDL must be idempotent.
type Schema struct {
	Table    string
	Postgres string
	SQLite   string
}

// Open returns a ready, empty database containing schema.Table. It is closed on test cleanup.
func Open(t testing.TB, schema Schema) *sqlx.DB {
	t.Helper()

	if url := os.Getenv(envDatabaseURL); url != "" {
		return openPostgres(t, url, schema)
	}

	return openSQLite(t, schema)
}

// IsPostgres reports whether tests run against PostgreSQL.
func IsPostgres() bool {
	return os.Getenv(envDatabaseURL) != ""
}

func openSQLite(t testing.TB, schema Schema) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open(driverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// every pooled connection to :memory: would be a different database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema.SQLite); err != nil {
		db.Close()
		t.Fatalf("create %s: %v", schema.Table, err)
	}

	t.Cleanup(func() { db.Close() })

	return db
}

func openPostgres(t testing.TB, url string, schema Schema) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect(driverPostgres, url)
	if err != nil {
		t.Fatalf("connect postgres: %v", err)
	}

	if _, err := db.Exec(schema.Postgres); err != nil {
		db.Close()
		t.Fatalf("create %s: %v", schema.Table, err)
	}

	truncate := fmt.Sprintf("TRUNCATE %s RESTART IDENTITY", schema.Table)

	if _, err := db.Exec(truncate); err != nil {
		db.Close()
		t.Fatalf("truncate %s: %v", schema.Table, err)
	}

	t.Cleanup(func() {
		if _, err := db.Exec(truncate); err != nil {
			t.Errorf("truncate %s: %v", schema.Table, err)
		}

		db.Close()
	})

	return db
}
