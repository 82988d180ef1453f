package sqlkv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/inventory/kv"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exercise runs the same scenario against any backend.
func exercise(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "inventario")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, s.Set(ctx, "inventario", `[{"id":"PROD-001"}]`))
	require.NoError(t, s.Set(ctx, "inventario", `[]`))
	require.NoError(t, s.Set(ctx, "numeroFactura", "3"))

	v, err := s.Get(ctx, "inventario")
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)

	v, err = s.Get(ctx, "numeroFactura")
	require.NoError(t, err)
	assert.Equal(t, "3", v)

	require.NoError(t, s.Delete(ctx, "inventario"))
	_, err = s.Get(ctx, "inventario")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "inventory.db")
	s, err := Open(context.Background(), "sqlite", path)
	require.NoError(t, err)
	defer s.Close()

	exercise(t, s)
	assert.Equal(t, SQLite, s.Dialect())
}

func TestSQLiteReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "inventory.db")

	s, err := Open(ctx, "sqlite", path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "dark", "1"))
	require.NoError(t, s.Close())

	s, err = Open(ctx, "sqlite", path)
	require.NoError(t, err)
	defer s.Close()
	v, err := s.Get(ctx, "dark")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}

func TestOpenUnknownDialect(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "")
	assert.Error(t, err)
}

func TestPostgres(t *testing.T) {
	dsn := os.Getenv("INV_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("INV_TEST_PG_DSN not set")
	}
	s, err := Open(context.Background(), "postgres", dsn)
	require.NoError(t, err)
	defer s.Close()
	exercise(t, s)
}

func TestMySQL(t *testing.T) {
	dsn := os.Getenv("INV_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("INV_TEST_MYSQL_DSN not set")
	}
	s, err := Open(context.Background(), "mysql", dsn)
	require.NoError(t, err)
	defer s.Close()
	exercise(t, s)
}

func TestOpenClosesOnFailure(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "broken.db")

	// an index named kv prevents the creation of the table
	db, err := sqlx.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE t (x TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE INDEX kv ON t (x)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	var opened *sqlx.DB
	old := connect
	connect = func(ctx context.Context, driverName, dsn string) (*sqlx.DB, error) {
		db, err := old(ctx, driverName, dsn)
		opened = db
		return db, err
	}
	t.Cleanup(func() { connect = old })

	_, err = Open(ctx, "sqlite", path)
	require.Error(t, err)
	require.NotNil(t, opened)
	assert.EqualError(t, opened.PingContext(ctx), "sql: database is closed")
}
