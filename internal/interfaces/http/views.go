package http

import (
	"embed"
	"encoding/json"
	"io/fs"
	nethttp "net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
)

//go:embed templates static
var assets embed.FS

// layoutMain plantilla base de todas las páginas.
const layoutMain = "layouts/main"

// NewViewEngine crea el motor de plantillas sobre los archivos embebidos.
func NewViewEngine() *html.Engine {
	sub, err := fs.Sub(assets, "templates")
	if err != nil {
		panic(err) // el directorio está embebido; solo falla si cambia el patrón go:embed
	}
	engine := html.NewFileSystem(nethttp.FS(sub), ".html")
	engine.AddFunc("json", toJSON)
	engine.AddFunc("cell", formatCell)
	engine.AddFunc("numericColumns", numericColumns)
	return engine
}

// StaticFS archivos estáticos servidos bajo /static.
func StaticFS() nethttp.FileSystem {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return nethttp.FS(sub)
}

// pageData datos comunes del layout: título, sesión, tablas del menú y mensaje pendiente.
// extra agrega o reemplaza claves.
func pageData(c *fiber.Ctx, title string, extra fiber.Map) fiber.Map {
	data := fiber.Map{
		"Title":   title,
		"Usuario": GetUsuario(c),
		"Rol":     GetRol(c),
		"Tables":  entity.Tables,
		"Flash":   PopFlash(c),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// toJSON serializa v para atributos data-*; html/template escapa el resultado.
func toJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

// formatCell texto de una celda de la tabla; NULL se muestra vacío.
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
	case bool:
		return strconv.FormatBool(val)
	default:
		b, _ := json.Marshal(val)
		return string(b)
	}
}

// numericColumns nombres de columnas con filtro por rango.
func numericColumns(cols []entity.ColumnDescriptor) []string {
	out := []string{}
	for _, c := range cols {
		if c.Kind.IsNumeric() {
			out = append(out, c.Name)
		}
	}
	return out
}

