// Package importer carga filas desde archivos CSV a las tablas del registro,
// pasando por las mismas validaciones y sellos de auditoría que la interfaz web.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/usecase"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/repository"
	"github.com/klep98/Inventario-Desarrollo-IV/pkg/logger"
)

// Codificaciones aceptadas para el archivo de entrada.
const (
	EncodingUTF8        = "utf-8"
	EncodingLatin1      = "latin1"
	EncodingWindows1252 = "windows-1252"
)

// Options parámetros de una importación.
type Options struct {
	Usuario  string // usuario que queda registrado en la auditoría; define el rol
	Encoding string
	// Comma separador de campos; 0 lo detecta en el encabezado (',' o ';').
	Comma rune
}

// RowError fila que no se pudo insertar.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("línea %d: %v", e.Line, e.Err)
}

// Result resultado de una importación.
type Result struct {
	Inserted int
	Failed   []RowError
}

// Importer inserta filas de CSV a través de TableUseCase.
type Importer struct {
	tables *usecase.TableUseCase
	users  repository.UserRepository
	log    *logger.Logger
}

// New construye el importador.
func New(tables *usecase.TableUseCase, users repository.UserRepository, log *logger.Logger) *Importer {
	if log == nil {
		log = logger.Nop()
	}
	return &Importer{tables: tables, users: users, log: log.Component("importer")}
}

// Decoder devuelve el decodificador para el nombre de codificación.
func Decoder(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EncodingUTF8, "utf8":
		return &encoding.Decoder{Transformer: unicode.BOMOverride(unicode.UTF8.NewDecoder())}, nil
	case EncodingLatin1, "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case EncodingWindows1252, "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: codificación no soportada %q", domain.ErrValidation, name)
	}
}

// Import lee el CSV (primera fila = nombres de columna) e inserta cada fila.
// Las filas con valores inválidos o rechazadas por la base se reportan y se continúa;
// los errores de permiso, de tabla inexistente o de lectura detienen la importación.
func (im *Importer) Import(ctx context.Context, spec entity.TableSpec, r io.Reader, opts Options) (*Result, error) {
	user, err := im.users.FindByNombre(ctx, opts.Usuario)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, opts.Usuario)
	}
	dec, err := Decoder(opts.Encoding)
	if err != nil {
		return nil, err
	}

	reader, err := newCSVReader(transform.NewReader(r, dec), opts.Comma)
	if err != nil {
		return nil, err
	}
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: archivo vacío", domain.ErrValidation)
		}
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	res := &Result{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("leer CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)
		fields := make(map[string]any, len(header))
		for i, name := range header {
			if name == "" || i >= len(record) {
				continue
			}
			fields[name] = record[i]
		}
		err = im.tables.Insert(ctx, spec, user.Rol, user.Nombre, fields)
		switch {
		case err == nil:
			res.Inserted++
		case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrStore):
			res.Failed = append(res.Failed, RowError{Line: line, Err: err})
		default:
			return res, err
		}
	}
	im.log.Info().Str("tabla", spec.Name).Str("usuario", user.Nombre).
		Int("insertadas", res.Inserted).Int("fallidas", len(res.Failed)).Msg("importación terminada")
	return res, nil
}

// newCSVReader detecta el separador a partir de la primera línea cuando comma es 0.
func newCSVReader(r io.Reader, comma rune) (*csv.Reader, error) {
	if comma == 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("leer archivo: %w", err)
		}
		first, _, _ := strings.Cut(string(data), "\n")
		comma = ','
		if strings.Count(first, ";") > strings.Count(first, ",") {
			comma = ';'
		}
		r = strings.NewReader(string(data))
	}
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr, nil
}
