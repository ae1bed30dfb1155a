package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/dto"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
)

// RequireEditRole autoriza las escrituras sobre spec solo a sus roles de edición.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRol).
func RequireEditRole(spec entity.TableSpec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !spec.CanEdit(GetRol(c)) {
			return c.Status(fiber.StatusForbidden).JSON(dto.MutationFail(forbiddenMessage(spec)))
		}
		return c.Next()
	}
}

func forbiddenMessage(spec entity.TableSpec) string {
	return fmt.Sprintf("Tu rol no tiene permiso para modificar %s.", spec.Title)
}
