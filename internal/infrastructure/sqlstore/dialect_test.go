package sqlstore_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/infrastructure/sqlstore"
)

func TestNewDialect(t *testing.T) {
	assert.Equal(t, "postgres", sqlstore.NewDialect("pgx").Name())
	assert.Equal(t, "sqlite", sqlstore.NewDialect("sqlite").Name())
}

func TestSQLiteDialect_MapError(t *testing.T) {
	d := sqlstore.SQLiteDialect{}
	assert.ErrorIs(t, d.MapError(errors.New("SQL logic error: no such table: productos (1)")), domain.ErrSchema)
	assert.ErrorIs(t, d.MapError(errors.New("table productos has no column named color")), domain.ErrStore)
	assert.ErrorIs(t, d.MapError(errors.New("NOT NULL constraint failed: productos.nombre")), domain.ErrStore)
	assert.ErrorIs(t, d.MapError(errors.New("UNIQUE constraint failed: usuarios.nombre")), domain.ErrStore)

	other := errors.New("disk I/O error")
	assert.Equal(t, other, d.MapError(other))
	assert.NoError(t, d.MapError(nil))
}

func TestPostgresDialect_MapError(t *testing.T) {
	d := sqlstore.PostgresDialect{}
	wrap := func(code string) error {
		return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code, Message: "x"})
	}
	assert.ErrorIs(t, d.MapError(wrap("42P01")), domain.ErrSchema)
	assert.ErrorIs(t, d.MapError(wrap("42703")), domain.ErrStore)
	assert.ErrorIs(t, d.MapError(wrap("23505")), domain.ErrStore)
	assert.ErrorIs(t, d.MapError(wrap("23502")), domain.ErrStore)
	assert.ErrorIs(t, d.MapError(wrap("22P02")), domain.ErrStore)
	assert.False(t, errors.Is(d.MapError(wrap("57014")), domain.ErrStore))
}
