package sqldb

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

var (
	ErrUnknownDialect = errors.New("unknown sql dialect")
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// DB envuelve *sql.DB con el dialecto; los repos escriben SQL con $N
// y rebind lo adapta para sqlite.
type DB struct {
	*sql.DB
	dialect Dialect
}

func ParseDialect(s string) (Dialect, error) {
	switch Dialect(strings.ToLower(strings.TrimSpace(s))) {
	case Postgres, "pgx":
		return Postgres, nil
	case SQLite:
		return SQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, s)
	}
}

// Open aplica migraciones pendientes, abre el pool y hace ping.
func Open(ctx context.Context, dialect Dialect, dsn string) (*DB, error) {
	if dialect == SQLite {
		if dir := sqliteDir(dsn); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
	}
	if err := Migrate(ctx, dialect, dsn); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	var (
		sqlDB *sql.DB
		err   error
	)

	switch dialect {
	case Postgres:
		sqlDB, err = sql.Open("pgx", dsn)
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	case SQLite:
		sqlDB, err = sql.Open("sqlite", sqliteDSN(dsn))
		if err != nil {
			return nil, err
		}
		// sqlite: un solo writer
		sqlDB.SetMaxOpenConns(1)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{DB: sqlDB, dialect: dialect}, nil
}

func (db *DB) Dialect() Dialect {
	return db.dialect
}

// sqliteDSN acepta un path suelto o un DSN file: y le agrega los pragmas que hacen falta.
func sqliteDSN(dsn string) string {
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	if !strings.Contains(dsn, "foreign_keys") {
		dsn += sep + "_pragma=foreign_keys(1)"
		sep = "&"
	}
	if !strings.Contains(dsn, "busy_timeout") {
		dsn += sep + "_pragma=busy_timeout(5000)"
		sep = "&"
	}
	if !strings.Contains(dsn, "_time_format") {
		dsn += sep + "_time_format=sqlite"
	}
	return dsn
}

// sqliteDir devuelve el directorio del archivo, o "" si no hay nada que crear.
func sqliteDir(dsn string) string {
	p := strings.TrimPrefix(dsn, "file:")
	if i := strings.Index(p, "?"); i >= 0 {
		p = p[:i]
	}
	if p == "" || p == ":memory:" {
		return ""
	}
	dir := filepath.Dir(p)
	if dir == "." {
		return ""
	}
	return dir
}

var placeholderRe = regexp.MustCompile(`\$(\d+)`)

// rebind: $1 -> ?1 en sqlite. Postgres queda igual.
func (db *DB) rebind(query string) string {
	if db.dialect != SQLite {
		return query
	}
	return placeholderRe.ReplaceAllString(query, "?$1")
}

func (db *DB) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.ExecContext(ctx, db.rebind(query), args...)
}

func (db *DB) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.QueryContext(ctx, db.rebind(query), args...)
}

func (db *DB) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return db.QueryRowContext(ctx, db.rebind(query), args...)
}

// Migrate aplica los *.up.sql pendientes del dialecto con golang-migrate.
// Usa su propia conexión y la cierra al terminar; dsn tiene que apuntar a la misma base que Open.
func Migrate(ctx context.Context, dialect Dialect, dsn string) error {
	src, err := iofs.New(migrationsFS, "migrations/"+string(dialect))
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	var (
		mdb *sql.DB
		drv database.Driver
	)
	switch dialect {
	case Postgres:
		if mdb, err = sql.Open("pgx", dsn); err == nil {
			drv, err = migratepgx.WithInstance(mdb, &migratepgx.Config{})
		}
	case SQLite:
		if mdb, err = sql.Open("sqlite", sqliteDSN(dsn)); err == nil {
			drv, err = migratesqlite.WithInstance(mdb, &migratesqlite.Config{})
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
	if err != nil {
		if mdb != nil {
			_ = mdb.Close()
		}
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, string(dialect), drv)
	if err != nil {
		_ = drv.Close()
		return fmt.Errorf("init migrations: %w", err)
	}
	// Close cierra también mdb
	defer m.Close()

	done := make(chan error, 1)
	go func() { done <- m.Up() }()

	select {
	case err = <-done:
	case <-ctx.Done():
		m.GracefulStop <- true
		err = <-done
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
