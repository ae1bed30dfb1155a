package setup_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/audit"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/auth"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/setup"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/infrastructure/sqlstore"
	"github.com/klep98/Inventario-Desarrollo-IV/pkg/config"
	"github.com/klep98/Inventario-Desarrollo-IV/pkg/logger"
)

func TestRun_PreparaTablasExistentesYOmiteFaltantes(t *testing.T) {
	ctx := context.Background()
	db, err := sqlstore.Open(ctx, config.DBConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.X.ExecContext(ctx, `CREATE TABLE productos (id INTEGER PRIMARY KEY, nombre TEXT)`)
	require.NoError(t, err)
	_, err = db.X.ExecContext(ctx, `INSERT INTO productos (nombre) VALUES ('Viejo'), ('Antiguo')`)
	require.NoError(t, err)

	now := func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local) }
	schemaRepo := sqlstore.NewSchemaRepository(db)
	authUC := auth.NewAuthUseCase(sqlstore.NewUserRepository(db), auth.SessionConfig{Secret: "s"}, now, logger.Nop())
	initializer := setup.NewInitializer(authUC, schemaRepo, audit.NewStamper(now), logger.Nop())

	rep, err := initializer.Run(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ADMIN", "PRODUCTOS", "ALMACENES"}, rep.UsersCreated)
	assert.Equal(t, []string{"fecha_hora_creacion", "fecha_hora_ultima_modificacion", "ultimo_usuario_en_modificar"},
		rep.ColumnsAdded["productos"])
	assert.Equal(t, int64(2), rep.Backfilled["productos"])
	assert.Equal(t, []string{"almacenes"}, rep.Skipped)

	rows, err := sqlstore.NewRowRepository(db).ListAll(ctx, "productos", []string{"nombre", "fecha_hora_creacion", "ultimo_usuario_en_modificar"})
	require.NoError(t, err)
	assert.Equal(t, [][]any{
		{"Antiguo", "2024-01-02 03:04:05", nil},
		{"Viejo", "2024-01-02 03:04:05", nil},
	}, rows)

	// Segunda ejecución: nada que hacer.
	rep, err = initializer.Run(ctx)
	require.NoError(t, err)
	assert.Empty(t, rep.UsersCreated)
	assert.Empty(t, rep.ColumnsAdded)
	assert.Empty(t, rep.Backfilled)
}
