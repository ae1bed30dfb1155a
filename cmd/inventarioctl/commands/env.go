package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/go-extras/cobraflags"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/audit"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/auth"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/usecase"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/infrastructure/sqlstore"
	"github.com/klep98/Inventario-Desarrollo-IV/pkg/config"
	"github.com/klep98/Inventario-Desarrollo-IV/pkg/logger"
)

// Banderas de conexión comunes a todos los comandos.
const (
	dbDriverFlag    = "db-driver"
	dbPathFlag      = "db-path"
	databaseURLFlag = "database-url"
	logLevelFlag    = "log-level"
)

// dbFlags devuelve un mapa nuevo por comando; vacío significa usar la variable de entorno.
func dbFlags() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		dbDriverFlag: &cobraflags.StringFlag{
			Name:  dbDriverFlag,
			Value: "",
			Usage: "Driver de base de datos (sqlite, postgres)",
		},
		dbPathFlag: &cobraflags.StringFlag{
			Name:  dbPathFlag,
			Value: "",
			Usage: "Archivo SQLite",
		},
		databaseURLFlag: &cobraflags.StringFlag{
			Name:  databaseURLFlag,
			Value: "",
			Usage: "URL de conexión PostgreSQL",
		},
		logLevelFlag: &cobraflags.StringFlag{
			Name:  logLevelFlag,
			Value: "warn",
			Usage: "Nivel de log (debug, info, warn, error)",
		},
	}
}

// env dependencias armadas para un comando.
type env struct {
	db      *sqlstore.DB
	log     *logger.Logger
	stamper *audit.Stamper
	users   *sqlstore.UserRepo
	schema  *sqlstore.SchemaRepo
	authUC  *auth.AuthUseCase
	tableUC *usecase.TableUseCase
}

func (e *env) Close() error { return e.db.Close() }

// openEnv carga la configuración, aplica las banderas, valida y abre la base.
func openEnv(ctx context.Context, flags map[string]cobraflags.Flag) (*env, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Config{
		Env:     "development",
		Level:   flags[logLevelFlag].GetString(),
		Service: "inventarioctl",
	})
	db, err := sqlstore.Open(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	stamper := audit.NewStamper(time.Now)
	users := sqlstore.NewUserRepository(db)
	schema := sqlstore.NewSchemaRepository(db)
	return &env{
		db:      db,
		log:     log,
		stamper: stamper,
		users:   users,
		schema:  schema,
		authUC: auth.NewAuthUseCase(users, auth.SessionConfig{
			Secret:     cfg.Session.Secret,
			ExpMinutes: cfg.Session.Expiration,
			Issuer:     cfg.Session.Issuer,
		}, time.Now, log),
		tableUC: usecase.NewTableUseCase(schema, sqlstore.NewRowRepository(db), stamper, log),
	}, nil
}

// loadConfig valida después de aplicar las banderas: una bandera puede completar lo que
// falta en el entorno.
func loadConfig(flags map[string]cobraflags.Flag) (*config.Config, error) {
	cfg := config.Read()
	if v := flags[dbDriverFlag].GetString(); v != "" {
		cfg.DB.Driver = v
	}
	if v := flags[dbPathFlag].GetString(); v != "" {
		cfg.DB.Path = v
	}
	if v := flags[databaseURLFlag].GetString(); v != "" {
		cfg.DB.DatabaseURL = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// lookupTable solo acepta tablas del registro.
func lookupTable(name string) (entity.TableSpec, error) {
	spec, ok := entity.LookupTable(name)
	if !ok {
		names := make([]string, 0, len(entity.Tables))
		for _, t := range entity.Tables {
			names = append(names, t.Name)
		}
		return entity.TableSpec{}, fmt.Errorf("tabla desconocida %q (disponibles: %v)", name, names)
	}
	return spec, nil
}
