package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klep98/Inventario-Desarrollo-IV/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("SESSION_SECRET", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "InventarioBD_2.db", cfg.DB.DSN())
	assert.Equal(t, "0.0.0.0:5000", cfg.HTTP.Addr())
	assert.NotEmpty(t, cfg.Session.Secret, "development usa un secreto por defecto")
	assert.Equal(t, 480, cfg.Session.Expiration)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "s3cr3t")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/inv?sslmode=disable")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "postgres://u:p@localhost:5432/inv?sslmode=disable", cfg.DB.DSN())
	assert.Equal(t, "s3cr3t", cfg.Session.Secret)
}

func TestLoad_ProduccionSinSecretoFalla(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_PostgresSinURLFalla(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestRead_ValidaDespuesDeCompletar(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	cfg := config.Read()
	require.Error(t, cfg.Validate())

	cfg.DB.DatabaseURL = "postgres://u:p@localhost:5432/inv?sslmode=disable"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, cfg.DB.DatabaseURL, cfg.DB.DSN())
}

func TestValidate_NormalizaDriver(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	cfg := config.Read()
	cfg.DB.Driver = " SQLite "
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.DriverSQLite, cfg.DB.Driver)
}
