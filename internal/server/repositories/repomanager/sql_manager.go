package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/filex"
	"github.com/dmitrijs2005/notekeeper/internal/server/migrations"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/notes"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/waitlist"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Dialect selects the SQL driver and the migration set.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

type dialectInfo struct {
	driver      string
	gooseName   string
	migrationFS string
}

var dialects = map[Dialect]dialectInfo{
	DialectPostgres: {driver: "pgx", gooseName: "pgx", migrationFS: migrations.PostgresDir},
	DialectSQLite:   {driver: "sqlite", gooseName: "sqlite3", migrationFS: migrations.SQLiteDir},
}

// SQLRepositoryManager vends SQL-backed repositories sharing one *sql.DB.
type SQLRepositoryManager struct {
	db      *sql.DB
	dialect Dialect

	users    *users.SQLRepository
	notes    *notes.SQLRepository
	waitlist *waitlist.SQLRepository
	sessions *sessions.SQLRepository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// NewSQLRepositoryManager opens dsn with the driver for dialect and verifies
// the connection.
func NewSQLRepositoryManager(ctx context.Context, dialect Dialect, dsn string) (*SQLRepositoryManager, error) {
	info, ok := dialects[dialect]
	if !ok {
		return nil, fmt.Errorf("unsupported sql dialect %q", dialect)
	}

	if dialect == DialectSQLite {
		if path := filex.SQLitePath(dsn); path != "" {
			if err := filex.EnsureParentDir(path); err != nil {
				return nil, err
			}
		}
		dsn = withSQLiteForeignKeys(dsn)
	}

	db, err := sqlOpen(info.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if dialect == DialectSQLite {
		// sqlite serializes writers; a single connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return NewSQLRepositoryManagerFromDB(db, dialect), nil
}

// NewSQLRepositoryManagerFromDB wraps an already opened database.
func NewSQLRepositoryManagerFromDB(db *sql.DB, dialect Dialect) *SQLRepositoryManager {
	return &SQLRepositoryManager{
		db:       db,
		dialect:  dialect,
		users:    users.NewSQLRepository(db),
		notes:    notes.NewSQLRepository(db),
		waitlist: waitlist.NewSQLRepository(db),
		sessions: sessions.NewSQLRepository(db),
	}
}

func withSQLiteForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

func (m *SQLRepositoryManager) Users() users.Repository       { return m.users }
func (m *SQLRepositoryManager) Notes() notes.Repository       { return m.notes }
func (m *SQLRepositoryManager) Waitlist() waitlist.Repository { return m.waitlist }
func (m *SQLRepositoryManager) Sessions() sessions.Repository { return m.sessions }

// RunMigrations sets up goose with the embedded migrations for the manager's
// dialect and runs them.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context) error {
	info := dialects[m.dialect]

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(info.gooseName); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, info.migrationFS); err != nil {
		return err
	}
	return nil
}

func (m *SQLRepositoryManager) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *SQLRepositoryManager) Close() error {
	return m.db.Close()
}
