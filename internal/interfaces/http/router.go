package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/auth"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/dto"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/usecase"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/domain/entity"
	"github.com/klep98/Inventario-Desarrollo-IV/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC   *auth.AuthUseCase
	TableUC  *usecase.TableUseCase
	ExportUC *usecase.ExportUseCase
	Cookie   SessionCookie
	Service  string
	Log      *logger.Logger
}

// NewApp crea la app Fiber con el motor de plantillas, timeouts y recuperación de panics.
func NewApp(name string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		Views:        NewViewEngine(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	return app
}

// errorHandler respuesta JSON para errores no atendidos por los handlers.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	resp := dto.ErrorResponse{Code: "INTERNAL", Message: msgInternal}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		resp = dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message}
		if code == fiber.StatusNotFound {
			resp.Code = "NOT_FOUND"
		}
	}
	return c.Status(code).JSON(resp)
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	app.Use(RequestLogger(log))
	app.Use("/static", filesystem.New(filesystem.Config{Root: StaticFS()}))

	// Health godoc
	// @Summary  Estado del servicio
	// @Tags     sistema
	// @Produce  json
	// @Success  200  {object}  dto.HealthResponse
	// @Router   /health [get]
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.Service})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", authHandler.Login)

	// Rutas protegidas (cookie de sesión o Bearer Token)
	protected := app.Group("", AuthMiddleware(deps.AuthUC, deps.Cookie.Name))
	protected.Get("/logout", authHandler.Logout)
	protected.Get("/", authHandler.Index)

	tableHandler := NewTableHandler(deps.TableUC, deps.ExportUC, log)
	for _, spec := range entity.Tables {
		g := protected.Group("/" + spec.Name)
		g.Get("/", tableHandler.Page(spec))
		g.Get("/datos", tableHandler.Data(spec))
		g.Get("/pdf", tableHandler.PDF(spec))

		edit := RequireEditRole(spec)
		g.Post("/insert", edit, tableHandler.Insert(spec))
		g.Post("/update", edit, tableHandler.Update(spec))
		g.Post("/delete", edit, tableHandler.Delete(spec))
	}
}
