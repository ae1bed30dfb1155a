package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/dto"
)

// Locals keys para la identidad de la sesión en Fiber.
const (
	LocalUsuario = "usuario"
	LocalRol     = "rol"
)

// msgSessionRequired respuesta JSON cuando no hay sesión válida.
const msgSessionRequired = "Sesión no válida o expirada. Inicia sesión nuevamente."

// sessionParser contrato mínimo del middleware; lo implementa *auth.AuthUseCase.
type sessionParser interface {
	ParseSession(token string) (*dto.Session, error)
}

// AuthMiddleware decodifica la sesión una sola vez por petición y la deja en c.Locals.
// El token se busca en la cookie de sesión y, si no está, en el header Bearer.
// Sin sesión válida: las páginas redirigen a /login y las peticiones JSON reciben 401.
func AuthMiddleware(parser sessionParser, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			token = bearerToken(c.Get(fiber.HeaderAuthorization))
		}
		sess, err := parser.ParseSession(token)
		if err != nil {
			if token != "" {
				expireCookie(c, cookieName)
			}
			if wantsJSON(c) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.MutationFail(msgSessionRequired))
			}
			return c.Redirect("/login")
		}
		c.Locals(LocalUsuario, sess.Usuario)
		c.Locals(LocalRol, sess.Rol)
		return c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// wantsJSON distingue llamadas de la API (fetch) de navegación de páginas.
func wantsJSON(c *fiber.Ctx) bool {
	if c.Method() != fiber.MethodGet {
		return true
	}
	if strings.HasSuffix(c.Path(), "/datos") {
		return true
	}
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}

// GetUsuario devuelve el usuario de la sesión (después del middleware de auth).
func GetUsuario(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsuario).(string)
	return s
}

// GetRol devuelve el rol de la sesión (después del middleware de auth).
func GetRol(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRol).(string)
	return s
}

// GetSession devuelve la identidad completa de la sesión.
func GetSession(c *fiber.Ctx) dto.Session {
	return dto.Session{Usuario: GetUsuario(c), Rol: GetRol(c)}
}
