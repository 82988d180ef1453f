// Package sqlkv implements kv.Store on top of a single SQL table.
//
// Supported dialects are sqlite (pure Go driver), postgres (pgx) and mysql.
package sqlkv

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/etnz/inventory/kv"
	_ "github.com/go-sql-driver/mysql" // mysql driver
	_ "github.com/jackc/pgx/v5/stdlib" // postgres driver, registered as "pgx"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Dialect holds the statements that differ between databases.
type Dialect struct {
	Name   string // dialect name, as accepted by Open
	Driver string // database/sql driver name
	Create string // creates the kv table when missing
	Upsert string // inserts or replaces one value, with ? placeholders
}

var (
	SQLite = Dialect{
		Name:   "sqlite",
		Driver: "sqlite",
		Create: `CREATE TABLE IF NOT EXISTS kv (k TEXT PRIMARY KEY, v TEXT NOT NULL)`,
		Upsert: `INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
	}
	Postgres = Dialect{
		Name:   "postgres",
		Driver: "pgx",
		Create: `CREATE TABLE IF NOT EXISTS kv (k TEXT PRIMARY KEY, v TEXT NOT NULL)`,
		Upsert: `INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT (k) DO UPDATE SET v = EXCLUDED.v`,
	}
	MySQL = Dialect{
		Name:   "mysql",
		Driver: "mysql",
		Create: `CREATE TABLE IF NOT EXISTS kv (k VARCHAR(191) PRIMARY KEY, v LONGTEXT NOT NULL)`,
		Upsert: `INSERT INTO kv (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)`,
	}
)

// Dialects lists the supported dialects by name.
var Dialects = map[string]Dialect{
	SQLite.Name:   SQLite,
	Postgres.Name: Postgres,
	MySQL.Name:    MySQL,
}

// Store is a kv.Store backed by a SQL database.
type Store struct {
	db      *sqlx.DB
	dialect Dialect
}

// Open connects to the database described by dsn using the named dialect and
// creates the kv table if needed.
// For sqlite, dsn is a file path and its parent directory is created.
func Open(ctx context.Context, dialect, dsn string) (*Store, error) {
	d, ok := Dialects[dialect]
	if !ok {
		return nil, errors.Errorf("unsupported sql dialect %q", dialect)
	}
	if d.Name == SQLite.Name {
		if dsn == "" {
			dsn = "inventory.db"
		}
		if err := os.MkdirAll(filepath.Dir(dsn), 0o750); err != nil {
			return nil, errors.Wrap(err, "create dirs")
		}
	}
	db, err := connect(ctx, d.Driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", d.Name)
	}
	s, err := New(ctx, db, d)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// connect opens and pings a database, tests replace it.
var connect = sqlx.ConnectContext

// New wraps an existing connection.
func New(ctx context.Context, db *sqlx.DB, d Dialect) (*Store, error) {
	if _, err := db.ExecContext(ctx, d.Create); err != nil {
		return nil, errors.Wrap(err, "create kv table")
	}
	return &Store{db: db, dialect: d}, nil
}

// Dialect returns the dialect in use.
func (s *Store) Dialect() Dialect { return s.dialect }

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := s.db.GetContext(ctx, &v, s.db.Rebind(`SELECT v FROM kv WHERE k = ?`), key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", kv.ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "select %q", key)
	}
	return v, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(s.dialect.Upsert), key, value); err != nil {
		return errors.Wrapf(err, "upsert %q", key)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM kv WHERE k = ?`), key); err != nil {
		return errors.Wrapf(err, "delete %q", key)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }
