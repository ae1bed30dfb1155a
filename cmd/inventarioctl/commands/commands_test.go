package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klep98/Inventario-Desarrollo-IV/cmd/inventarioctl/commands"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/infrastructure/sqlstore"
	"github.com/klep98/Inventario-Desarrollo-IV/pkg/config"
)

// newDBFile crea un archivo SQLite con la tabla productos y devuelve su ruta.
func newDBFile(t *testing.T) string {
	t.Helper()
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_DRIVER", "sqlite")
	path := filepath.Join(t.TempDir(), "inventario.db")

	db, err := sqlstore.Open(context.Background(), config.DBConfig{Driver: config.DriverSQLite, Path: path})
	require.NoError(t, err)
	_, err = db.X.Exec(`CREATE TABLE productos (id INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL, precio REAL)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInitDB_EsIdempotente(t *testing.T) {
	path := newDBFile(t)

	out, err := run(t, "init-db", "--db-path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Usuarios creados")
	assert.Contains(t, out, "productos: columnas agregadas")
	assert.Contains(t, out, "almacenes: no existe")

	out, err = run(t, "init-db", "--db-path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Usuarios: sin cambios")
	assert.NotContains(t, out, "columnas agregadas")
}

func TestDescribir(t *testing.T) {
	path := newDBFile(t)
	_, err := run(t, "init-db", "--db-path", path)
	require.NoError(t, err)

	out, err := run(t, "describir", "productos", "--db-path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "COLUMNA")
	assert.Contains(t, out, "precio")
	assert.Contains(t, out, "ultimo_usuario_en_modificar")
}

func TestDescribir_TablaFueraDelRegistro(t *testing.T) {
	path := newDBFile(t)
	_, err := run(t, "describir", "usuarios", "--db-path", path)
	assert.ErrorContains(t, err, "tabla desconocida")
}

func TestImportar(t *testing.T) {
	path := newDBFile(t)
	_, err := run(t, "init-db", "--db-path", path)
	require.NoError(t, err)

	csvPath := filepath.Join(t.TempDir(), "productos.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("nombre;precio\nTornillo;0,25\nTuerca;abc\n"), 0o600))

	out, err := run(t, "importar", "productos", csvPath, "--db-path", path, "--usuario", "PRODUCTOS")
	assert.ErrorContains(t, err, "1 filas no se importaron")
	assert.Contains(t, out, "Insertadas: 1")
	assert.Contains(t, out, "línea 3")
}

func TestImportar_SeparadorInvalido(t *testing.T) {
	path := newDBFile(t)
	_, err := run(t, "importar", "productos", "x.csv", "--db-path", path, "--separador", ";;")
	assert.ErrorContains(t, err, "un solo carácter")
}

func TestBanderasCompletanElEntorno(t *testing.T) {
	path := newDBFile(t)
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := run(t, "describir", "productos")
	assert.ErrorContains(t, err, "DATABASE_URL requerido")

	out, err := run(t, "describir", "productos", "--db-driver", "sqlite", "--db-path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "nombre")

	// La URL de la bandera pasa la validación; el error viene de la conexión.
	_, err = run(t, "describir", "productos", "--database-url", "postgres://u:p@127.0.0.1:1/inv?sslmode=disable&connect_timeout=1")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "DATABASE_URL requerido")
}
