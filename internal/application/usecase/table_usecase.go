package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/audit"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/dto"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/repository"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/schema"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/metrics"
	"github.com/klep98/Inventario-Desarrollo-IV/pkg/logger"
)

// Operaciones de escritura, usadas como etiqueta en logs y métricas.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpDelete = "delete"
)

// MissingTableMessage mensaje que se muestra en la página cuando la tabla no existe.
func MissingTableMessage(table string) string {
	return fmt.Sprintf("No se encontró la tabla '%s' en la base de datos.", table)
}

// TableUseCase lectura y escritura genérica sobre las tablas del registro.
// Las columnas se descubren en cada llamada; nada del esquema se cachea.
type TableUseCase struct {
	schema  repository.SchemaReader
	rows    repository.RowStore
	stamper *audit.Stamper
	log     *logger.Logger
}

// NewTableUseCase construye el caso de uso.
func NewTableUseCase(schemaReader repository.SchemaReader, rows repository.RowStore, stamper *audit.Stamper, log *logger.Logger) *TableUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &TableUseCase{schema: schemaReader, rows: rows, stamper: stamper, log: log.Component("tablas")}
}

// View arma los datos de la página de una tabla. Si la tabla no existe devuelve una
// vista vacía con el mensaje en Error y sin error.
func (uc *TableUseCase) View(ctx context.Context, spec entity.TableSpec, rol string) (*dto.TableView, error) {
	view := &dto.TableView{
		Table:    spec.Name,
		Title:    spec.Title,
		Headers:  []string{},
		Rows:     [][]any{},
		Columns:  []entity.ColumnDescriptor{},
		Editable: spec.CanEdit(rol),
	}
	cols, err := uc.schema.Describe(ctx, spec.Name)
	if err == nil {
		headers := schema.Names(cols)
		var rows [][]any
		rows, err = uc.rows.ListAll(ctx, spec.Name, headers)
		if err == nil {
			view.Headers, view.Rows, view.Columns = headers, rows, cols
			return view, nil
		}
	}
	if errors.Is(err, domain.ErrSchema) {
		uc.log.Warn().Str("tabla", spec.Name).Err(err).Msg("tabla no encontrada")
		view.Error = MissingTableMessage(spec.Name)
		return view, nil
	}
	return nil, err
}

// Insert agrega una fila. Ignora id y columnas de clave primaria enviadas por el cliente
// y sella las columnas de auditoría.
func (uc *TableUseCase) Insert(ctx context.Context, spec entity.TableSpec, rol, usuario string, fields map[string]any) (err error) {
	defer uc.record(spec.Name, OpInsert, usuario, &err)
	if err := checkEdit(spec, rol); err != nil {
		return err
	}
	cols, err := uc.schema.Describe(ctx, spec.Name)
	if err != nil {
		return err
	}
	values, err := assignments(cols, fields)
	if err != nil {
		return err
	}
	values = append(values, present(cols, uc.stamper.ForInsert(usuario))...)
	return uc.rows.Insert(ctx, spec.Name, values)
}

// Update modifica la fila indicada por fields["id"]. Solo cambian las columnas enviadas
// y las de auditoría de modificación. Que ninguna fila coincida no es un error.
func (uc *TableUseCase) Update(ctx context.Context, spec entity.TableSpec, rol, usuario string, fields map[string]any) (err error) {
	defer uc.record(spec.Name, OpUpdate, usuario, &err)
	if err := checkEdit(spec, rol); err != nil {
		return err
	}
	rawID, ok := fields[schema.IDColumn]
	if !ok || isBlank(rawID) {
		return fmt.Errorf("%w: falta id", domain.ErrValidation)
	}
	cols, err := uc.schema.Describe(ctx, spec.Name)
	if err != nil {
		return err
	}
	key, err := keyColumn(spec.Name, cols)
	if err != nil {
		return err
	}
	id, err := coerceValue(key, rawID)
	if err != nil {
		return err
	}
	values, err := assignments(cols, fields)
	if err != nil {
		return err
	}
	values = append(values, present(cols, uc.stamper.ForUpdate(usuario))...)
	if len(values) == 0 {
		return nil
	}
	n, err := uc.rows.Update(ctx, spec.Name, key.Name, id, values)
	if err != nil {
		return err
	}
	if n == 0 {
		uc.log.Debug().Str("tabla", spec.Name).Interface("id", id).Msg("update sin filas afectadas")
	}
	return nil
}

// Delete elimina en lote las filas con los ids dados; los inexistentes se ignoran.
func (uc *TableUseCase) Delete(ctx context.Context, spec entity.TableSpec, rol, usuario string, ids []any) (err error) {
	defer uc.record(spec.Name, OpDelete, usuario, &err)
	if err := checkEdit(spec, rol); err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w: no se enviaron ids", domain.ErrValidation)
	}
	cols, err := uc.schema.Describe(ctx, spec.Name)
	if err != nil {
		return err
	}
	key, err := keyColumn(spec.Name, cols)
	if err != nil {
		return err
	}
	keys := make([]any, 0, len(ids))
	for _, raw := range ids {
		if isBlank(raw) {
			continue
		}
		id, err := coerceValue(key, raw)
		if err != nil {
			return err
		}
		keys = append(keys, id)
	}
	if len(keys) == 0 {
		return fmt.Errorf("%w: no se enviaron ids", domain.ErrValidation)
	}
	n, err := uc.rows.DeleteMany(ctx, spec.Name, key.Name, keys)
	if err != nil {
		return err
	}
	metrics.RowsDeleted.WithLabelValues(spec.Name).Add(float64(n))
	return nil
}

// record registra el resultado de una escritura en logs y métricas.
func (uc *TableUseCase) record(table, op, usuario string, errp *error) {
	err := *errp
	result := metrics.ResultOK
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrForbidden):
		result = metrics.ResultDenied
	case errors.Is(err, domain.ErrValidation):
		result = metrics.ResultInvalid
	case errors.Is(err, domain.ErrSchema):
		result = metrics.ResultNotFound
	default:
		result = metrics.ResultError
	}
	metrics.Mutations.WithLabelValues(table, op, result).Inc()

	if err != nil {
		uc.log.Warn().Str("tabla", table).Str("operacion", op).Str("usuario", usuario).Err(err).Msg("escritura rechazada")
		return
	}
	uc.log.Info().Str("tabla", table).Str("operacion", op).Str("usuario", usuario).Msg("escritura aplicada")
}

func checkEdit(spec entity.TableSpec, rol string) error {
	if !spec.CanEdit(rol) {
		return fmt.Errorf("%w: el rol %q no puede modificar %s", domain.ErrForbidden, rol, spec.Name)
	}
	return nil
}

// keyColumn columna por la que se identifican filas en update y delete.
func keyColumn(table string, cols []entity.ColumnDescriptor) (entity.ColumnDescriptor, error) {
	key, ok := schema.PrimaryKey(cols)
	if !ok {
		return entity.ColumnDescriptor{}, fmt.Errorf("%w: la tabla %s no tiene clave primaria ni columna id", domain.ErrStore, table)
	}
	return key, nil
}

// assignments valida las columnas enviadas contra el esquema y convierte sus valores.
// Descarta id, claves primarias y columnas de auditoría, que no se aceptan del cliente.
// El orden es alfabético para que las sentencias sean estables.
func assignments(cols []entity.ColumnDescriptor, fields map[string]any) ([]repository.Assignment, error) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]repository.Assignment, 0, len(names))
	for _, name := range names {
		if strings.EqualFold(name, schema.IDColumn) || schema.IsAuditColumn(name) {
			continue
		}
		col, ok := schema.Find(cols, name)
		if !ok {
			return nil, fmt.Errorf("%w: columna desconocida '%s'", domain.ErrStore, name)
		}
		if col.IsPrimaryKey() {
			continue
		}
		v, err := coerceValue(col, fields[name])
		if err != nil {
			return nil, err
		}
		out = append(out, repository.Assignment{Column: col.Name, Value: v})
	}
	return out, nil
}

// present filtra los sellos de auditoría a las columnas que existen en la tabla.
func present(cols []entity.ColumnDescriptor, stamps []repository.Assignment) []repository.Assignment {
	out := stamps[:0]
	for _, s := range stamps {
		if _, ok := schema.Find(cols, s.Column); ok {
			out = append(out, s)
		}
	}
	return out
}
