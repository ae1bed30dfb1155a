package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/dto"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
)

// TablePDFGenerator puerto para renderizar el listado de una tabla como PDF.
type TablePDFGenerator interface {
	GenerateTablePDF(ctx context.Context, doc dto.TableDocument) ([]byte, error)
}

// ExportUseCase exporta el listado de una tabla.
type ExportUseCase struct {
	tables *TableUseCase
	pdf    TablePDFGenerator
	now    func() time.Time
}

// NewExportUseCase construye el caso de uso; con now nil usa time.Now.
func NewExportUseCase(tables *TableUseCase, pdf TablePDFGenerator, now func() time.Time) *ExportUseCase {
	if now == nil {
		now = time.Now
	}
	return &ExportUseCase{tables: tables, pdf: pdf, now: now}
}

// PDF genera el documento con todas las filas de la tabla. Cualquier usuario autenticado
// puede exportar; una tabla inexistente devuelve ErrSchema.
func (uc *ExportUseCase) PDF(ctx context.Context, spec entity.TableSpec, sess dto.Session) ([]byte, error) {
	view, err := uc.tables.View(ctx, spec, sess.Rol)
	if err != nil {
		return nil, err
	}
	if view.Error != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrSchema, spec.Name)
	}
	return uc.pdf.GenerateTablePDF(ctx, dto.TableDocument{
		Title:       spec.Title,
		GeneratedBy: sess.Usuario,
		GeneratedAt: uc.now(),
		Data:        entity.TableData{Headers: view.Headers, Rows: view.Rows},
	})
}
