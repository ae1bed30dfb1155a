package http

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

// flashCookie cookie de un solo uso con el mensaje para la siguiente página.
const flashCookie = "inventario_flash"

// Categorías de mensajes (clases de alerta de Bootstrap).
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashInfo    = "info"
	FlashWarning = "warning"
)

// Flash mensaje para mostrar una vez.
type Flash struct {
	Category string
	Message  string
}

// SetFlash deja un mensaje para la próxima página que se renderice.
func SetFlash(c *fiber.Ctx, category, message string) {
	v := url.Values{"c": {category}, "m": {message}}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    v.Encode(),
		Path:     "/",
		Expires:  time.Now().Add(5 * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// PopFlash lee y borra el mensaje pendiente; nil si no hay.
func PopFlash(c *fiber.Ctx) *Flash {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return nil
	}
	expireCookie(c, flashCookie)
	v, err := url.ParseQuery(raw)
	if err != nil || v.Get("m") == "" {
		return nil
	}
	return &Flash{Category: v.Get("c"), Message: v.Get("m")}
}

// expireCookie borra la cookie name en el navegador para todo el sitio.
func expireCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
