// Package pdf exporta el listado de una tabla como documento A4.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO de la tabla          │  Generado por + fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ENCABEZADOS (fondo azul, hasta 12 columnas)                │
//	│  FILAS                                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Total de registros                                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/dto"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/usecase"
)

// MaxColumns columnas de la grilla de maroto; las demás no se imprimen.
const MaxColumns = 12

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.TablePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa usecase.TablePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateTablePDF genera el PDF del listado y devuelve sus bytes.
// Con más de seis columnas la página va apaisada.
func (g *MarotoPDFGenerator) GenerateTablePDF(_ context.Context, doc dto.TableDocument) ([]byte, error) {
	headers := doc.Data.Headers
	if len(headers) > MaxColumns {
		headers = headers[:MaxColumns]
	}
	orient := orientation.Vertical
	if len(headers) > 6 {
		orient = orientation.Horizontal
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orient).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(doc.Title, true).
		WithAuthor(doc.GeneratedBy, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(headers) > 0 {
		sizes := columnSizes(len(headers))
		m.AddRows(headerRow(headers, sizes))
		for _, r := range doc.Data.Rows {
			m.AddRows(dataRow(r, sizes))
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de registros: %d", len(doc.Data.Rows)), props.Text{
			Size: 8, Color: colorGray, Top: 1,
		}),
	)))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// titleRow: título (izq) y autor + fecha de generación (der).
func titleRow(doc dto.TableDocument) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Generado por: "+doc.GeneratedBy, props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New(doc.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 6, Color: colorGray,
			}),
		),
	)
}

func headerRow(headers []string, sizes []int) core.Row {
	cols := make([]core.Col, len(headers))
	for i, h := range headers {
		cols[i] = col.New(sizes[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 7, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(cols...)
}

func dataRow(values []any, sizes []int) core.Row {
	cols := make([]core.Col, len(sizes))
	for i := range sizes {
		var v any
		if i < len(values) {
			v = values[i]
		}
		cols[i] = col.New(sizes[i]).Add(text.New(formatCell(v), props.Text{
			Size: 7, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(cols...)
}

// columnSizes reparte las 12 unidades de la grilla; el resto va a las primeras columnas.
func columnSizes(n int) []int {
	sizes := make([]int, n)
	base, extra := MaxColumns/n, MaxColumns%n
	for i := range sizes {
		sizes[i] = base
		if i < extra {
			sizes[i]++
		}
	}
	return sizes
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprint(val)
	}
}
