package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/dto"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/usecase"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
	"github.com/klep98/Inventario-Desarrollo-IV/pkg/logger"
)

const msgInternal = "Error interno del servidor."

// TableHandler páginas y endpoints JSON de las tablas del registro.
// Cada método recibe la tabla al registrar la ruta; el nombre nunca sale de la URL.
type TableHandler struct {
	tables *usecase.TableUseCase
	export *usecase.ExportUseCase
	log    *logger.Logger
}

// NewTableHandler construye el handler de tablas.
func NewTableHandler(tables *usecase.TableUseCase, export *usecase.ExportUseCase, log *logger.Logger) *TableHandler {
	return &TableHandler{tables: tables, export: export, log: log.Component("tablas-http")}
}

// Page lista la tabla con su formulario dinámico.
func (h *TableHandler) Page(spec entity.TableSpec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := h.tables.View(c.UserContext(), spec, GetRol(c))
		if err != nil {
			return err
		}
		return c.Render("tabla", pageData(c, spec.Title, fiber.Map{"View": view}), layoutMain)
	}
}

// Data godoc
// @Summary      Datos de una tabla
// @Tags         tablas
// @Produce      json
// @Param        tabla  path  string  true  "productos | almacenes"
// @Success      200    {object}  dto.TableView
// @Failure      401    {object}  dto.MutationResponse
// @Router       /{tabla}/datos [get]
func (h *TableHandler) Data(spec entity.TableSpec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := h.tables.View(c.UserContext(), spec, GetRol(c))
		if err != nil {
			return err
		}
		return c.JSON(view)
	}
}

// PDF godoc
// @Summary      Exportar tabla a PDF
// @Tags         tablas
// @Produce      application/pdf
// @Param        tabla  path  string  true  "productos | almacenes"
// @Success      200
// @Router       /{tabla}/pdf [get]
func (h *TableHandler) PDF(spec entity.TableSpec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := h.export.PDF(c.UserContext(), spec, GetSession(c))
		if err != nil {
			if errors.Is(err, domain.ErrSchema) {
				SetFlash(c, FlashWarning, usecase.MissingTableMessage(spec.Name))
				return c.Redirect("/" + spec.Name)
			}
			return err
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+spec.Name+`.pdf"`)
		return c.Send(out)
	}
}

// Insert godoc
// @Summary      Agregar registro
// @Description  Cuerpo: objeto plano columna -> valor. id y columnas de auditoría se ignoran.
// @Tags         tablas
// @Accept       json
// @Produce      json
// @Param        tabla  path  string  true  "productos | almacenes"
// @Success      200    {object}  dto.MutationResponse
// @Failure      403    {object}  dto.MutationResponse
// @Router       /{tabla}/insert [post]
func (h *TableHandler) Insert(spec entity.TableSpec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields, ok := h.parseFields(c)
		if !ok {
			return nil
		}
		err := h.tables.Insert(c.UserContext(), spec, GetRol(c), GetUsuario(c), fields)
		return h.respond(c, spec, err)
	}
}

// Update godoc
// @Summary      Modificar registro
// @Description  Cuerpo: objeto plano con "id" y las columnas a cambiar.
// @Tags         tablas
// @Accept       json
// @Produce      json
// @Param        tabla  path  string  true  "productos | almacenes"
// @Success      200    {object}  dto.MutationResponse
// @Failure      403    {object}  dto.MutationResponse
// @Router       /{tabla}/update [post]
func (h *TableHandler) Update(spec entity.TableSpec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields, ok := h.parseFields(c)
		if !ok {
			return nil
		}
		err := h.tables.Update(c.UserContext(), spec, GetRol(c), GetUsuario(c), fields)
		return h.respond(c, spec, err)
	}
}

// Delete godoc
// @Summary      Eliminar registros
// @Tags         tablas
// @Accept       json
// @Produce      json
// @Param        tabla  path  string  true  "productos | almacenes"
// @Param        body   body  dto.DeleteRequest  true  "ids"
// @Success      200    {object}  dto.MutationResponse
// @Failure      403    {object}  dto.MutationResponse
// @Router       /{tabla}/delete [post]
func (h *TableHandler) Delete(spec entity.TableSpec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.DeleteRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MutationFail("JSON inválido"))
		}
		err := h.tables.Delete(c.UserContext(), spec, GetRol(c), GetUsuario(c), in.Ids)
		return h.respond(c, spec, err)
	}
}

// parseFields lee el objeto JSON del cuerpo; si no es válido ya respondió 400.
func (h *TableHandler) parseFields(c *fiber.Ctx) (map[string]any, bool) {
	fields := map[string]any{}
	if err := c.BodyParser(&fields); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.MutationFail("JSON inválido"))
		return nil, false
	}
	return fields, true
}

// respond traduce el resultado de una escritura a {ok, msg}. Los errores de datos
// responden 200 para que la página los muestre en el formulario.
func (h *TableHandler) respond(c *fiber.Ctx, spec entity.TableSpec, err error) error {
	switch {
	case err == nil:
		return c.JSON(dto.MutationOK())
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.MutationFail(forbiddenMessage(spec)))
	case errors.Is(err, domain.ErrSchema):
		return c.JSON(dto.MutationFail(usecase.MissingTableMessage(spec.Name)))
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrStore):
		return c.JSON(dto.MutationFail(userMessage(err)))
	default:
		h.log.Error().Err(err).Str("tabla", spec.Name).Msg("escritura fallida")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MutationFail(msgInternal))
	}
}

// userMessage quita del mensaje el contexto interno y el nombre del error de dominio.
func userMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{domain.ErrValidation, domain.ErrStore} {
		prefix := sentinel.Error() + ": "
		if i := strings.LastIndex(msg, prefix); i >= 0 {
			return msg[i+len(prefix):]
		}
	}
	return msg
}
