package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/auth"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/dto"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
)

// Mensajes de la pantalla de inicio de sesión.
const (
	MsgEmptyCredentials   = "Debes ingresar usuario y contraseña."
	MsgInvalidCredentials = "Usuario o contraseña inválidos."
	MsgLoginOK            = "Inicio de sesión exitoso."
	MsgLogout             = "Sesión cerrada."
)

// SessionCookie configuración de la cookie que transporta el token de sesión.
type SessionCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// AuthHandler maneja login y logout.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie SessionCookie
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie}
}

// LoginPage muestra el formulario; con una sesión válida redirige al inicio.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if _, err := h.uc.ParseSession(c.Cookies(h.cookie.Name)); err == nil {
		return c.Redirect("/")
	}
	return c.Render("login", pageData(c, "Iniciar sesión", nil), layoutMain)
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Con formulario establece la cookie de sesión y redirige al inicio.
// @Description  Con JSON devuelve el token para usar como Bearer.
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json,html
// @Param        body  body  dto.LoginForm  true  "nombre, password"
// @Success      200   {object}  dto.LoginResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Login(c.UserContext(), in)
	if c.Is("json") {
		return h.loginJSON(c, res, err)
	}
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, domain.ErrValidation):
			msg = MsgEmptyCredentials
		case errors.Is(err, domain.ErrInvalidCredentials):
			msg = MsgInvalidCredentials
		default:
			return err
		}
		return c.Render("login", pageData(c, "Iniciar sesión", fiber.Map{
			"Nombre": in.Nombre,
			"Flash":  &Flash{Category: FlashDanger, Message: msg},
		}), layoutMain)
	}
	h.setSessionCookie(c, res.Token)
	SetFlash(c, FlashSuccess, MsgLoginOK)
	return c.Redirect("/")
}

func (h *AuthHandler) loginJSON(c *fiber.Ctx, res *dto.LoginResult, err error) error {
	switch {
	case err == nil:
		return c.JSON(res)
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: MsgEmptyCredentials})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: MsgInvalidCredentials})
	default:
		return err
	}
}

// Logout borra la sesión y vuelve al login.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	expireCookie(c, h.cookie.Name)
	SetFlash(c, FlashInfo, MsgLogout)
	return c.Redirect("/login")
}

// Index página de inicio con accesos a las tablas.
func (h *AuthHandler) Index(c *fiber.Ctx) error {
	rol := GetRol(c)
	type card struct {
		Name, Title string
		Editable    bool
	}
	cards := make([]card, 0, len(entity.Tables))
	for _, t := range entity.Tables {
		cards = append(cards, card{Name: t.Name, Title: t.Title, Editable: t.CanEdit(rol)})
	}
	return c.Render("index", pageData(c, "Inicio", fiber.Map{"Cards": cards}), layoutMain)
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cookie.TTL),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
