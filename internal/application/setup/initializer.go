// Package setup prepara la base de datos al arrancar: usuarios base y columnas de auditoría.
package setup

import (
	"context"
	"errors"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/audit"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/auth"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/repository"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/schema"
	"github.com/klep98/Inventario-Desarrollo-IV/pkg/logger"
)

// Report resumen de lo que cambió una inicialización.
type Report struct {
	UsersCreated []string
	// ColumnsAdded columnas agregadas por tabla.
	ColumnsAdded map[string][]string
	// Backfilled filas con fecha de creación asignada por tabla.
	Backfilled map[string]int64
	// Skipped tablas del registro que no existen en la base.
	Skipped []string
}

// Initializer deja la base lista para la aplicación. Ejecutarlo varias veces es seguro.
type Initializer struct {
	auth    *auth.AuthUseCase
	schema  repository.AuditSchema
	stamper *audit.Stamper
	tables  []entity.TableSpec
	log     *logger.Logger
}

// NewInitializer construye el inicializador para las tablas del registro.
func NewInitializer(authUC *auth.AuthUseCase, auditSchema repository.AuditSchema, stamper *audit.Stamper, log *logger.Logger) *Initializer {
	if log == nil {
		log = logger.Nop()
	}
	return &Initializer{
		auth:    authUC,
		schema:  auditSchema,
		stamper: stamper,
		tables:  entity.Tables,
		log:     log.Component("setup"),
	}
}

// Run crea usuarios faltantes, agrega columnas de auditoría y completa fechas de creación nulas.
// Las tablas que no existen se omiten.
func (i *Initializer) Run(ctx context.Context) (*Report, error) {
	rep := &Report{ColumnsAdded: map[string][]string{}, Backfilled: map[string]int64{}}

	created, err := i.auth.SeedUsers(ctx, auth.DefaultSeeds)
	if err != nil {
		return nil, err
	}
	rep.UsersCreated = created

	for _, t := range i.tables {
		added, err := i.schema.EnsureColumns(ctx, t.Name, schema.AuditColumns)
		if errors.Is(err, domain.ErrSchema) {
			i.log.Debug().Str("tabla", t.Name).Msg("tabla inexistente, se omite")
			rep.Skipped = append(rep.Skipped, t.Name)
			continue
		}
		if err != nil {
			return nil, err
		}
		if len(added) > 0 {
			rep.ColumnsAdded[t.Name] = added
			i.log.Info().Str("tabla", t.Name).Strs("columnas", added).Msg("columnas de auditoría agregadas")
		}

		n, err := i.schema.BackfillNull(ctx, t.Name, schema.ColCreacion, i.stamper.Now())
		if err != nil {
			return nil, err
		}
		if n > 0 {
			rep.Backfilled[t.Name] = n
			i.log.Info().Str("tabla", t.Name).Int64("filas", n).Msg("fechas de creación completadas")
		}
	}
	return rep, nil
}
