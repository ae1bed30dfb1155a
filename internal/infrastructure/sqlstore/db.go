package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registra el driver database/sql "sqlite"

	"github.com/klep98/Inventario-Desarrollo-IV/pkg/config"
)

func init() {
	// modernc registra "sqlite", que sqlx no conoce; usa placeholders "?".
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// DB conexión a la base de datos junto con el dialecto que la interpreta.
type DB struct {
	X       *sqlx.DB
	Dialect Dialect
}

// Open abre la base de datos según cfg.Driver y verifica la conexión.
func Open(ctx context.Context, cfg config.DBConfig) (*DB, error) {
	var (
		db  *DB
		err error
	)
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = openPostgres(cfg.DSN())
	case config.DriverSQLite, "":
		db, err = openSQLite(ctx, cfg.DSN())
	default:
		return nil, fmt.Errorf("driver no soportado: %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := db.X.PingContext(ctx); err != nil {
		db.X.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return db, nil
}

// New envuelve una conexión existente; driverName decide dialecto y placeholders.
func New(conn *sql.DB, driverName string) *DB {
	return &DB{X: sqlx.NewDb(conn, driverName), Dialect: NewDialect(driverName)}
}

// Close cierra la conexión.
func (d *DB) Close() error {
	return d.X.Close()
}

func openSQLite(ctx context.Context, path string) (*DB, error) {
	x, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir SQLite: %w", err)
	}
	// SQLite: un solo escritor. Con una conexión cada petición usa y libera la misma,
	// y una base en memoria sobrevive entre consultas.
	x.SetMaxOpenConns(1)
	if path != ":memory:" {
		if _, err := x.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			x.Close()
			return nil, fmt.Errorf("activar WAL: %w", err)
		}
	}
	return &DB{X: x, Dialect: SQLiteDialect{}}, nil
}

func openPostgres(dsn string) (*DB, error) {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	// NUMERIC/DECIMAL -> shopspring/decimal en todas las conexiones.
	conn := stdlib.OpenDB(*connCfg, stdlib.OptionAfterConnect(func(_ context.Context, c *pgx.Conn) error {
		pgxdecimal.Register(c.TypeMap())
		return nil
	}))
	conn.SetMaxOpenConns(10)
	return &DB{X: sqlx.NewDb(conn, "pgx"), Dialect: PostgresDialect{}}, nil
}
