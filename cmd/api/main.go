package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"

	_ "github.com/klep98/Inventario-Desarrollo-IV/docs"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/audit"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/auth"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/setup"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/application/usecase"
	infrapdf "github.com/klep98/Inventario-Desarrollo-IV/internal/infrastructure/pdf"
	"github.com/klep98/Inventario-Desarrollo-IV/internal/infrastructure/sqlstore"
	httpRouter "github.com/klep98/Inventario-Desarrollo-IV/internal/interfaces/http"
	"github.com/klep98/Inventario-Desarrollo-IV/pkg/config"
	"github.com/klep98/Inventario-Desarrollo-IV/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, err := sqlstore.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer db.Close()

	userRepo := sqlstore.NewUserRepository(db)
	schemaRepo := sqlstore.NewSchemaRepository(db)
	rowRepo := sqlstore.NewRowRepository(db)
	stamper := audit.NewStamper(time.Now)

	authUC := auth.NewAuthUseCase(userRepo, auth.SessionConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.Expiration,
		Issuer:     cfg.Session.Issuer,
	}, time.Now, log)
	tableUC := usecase.NewTableUseCase(schemaRepo, rowRepo, stamper, log)
	exportUC := usecase.NewExportUseCase(tableUC, infrapdf.NewMarotoPDFGenerator(), time.Now)

	// Usuarios base y columnas de auditoría antes de aceptar peticiones.
	report, err := setup.NewInitializer(authUC, schemaRepo, stamper, log).Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("inicialización de la base de datos")
	}
	log.Info().
		Strs("usuarios_creados", report.UsersCreated).
		Strs("tablas_omitidas", report.Skipped).
		Msg("base de datos lista")

	app := httpRouter.NewApp(cfg.App.Name)

	// Documento OpenAPI embebido; no depende del directorio de trabajo.
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Swagger.File); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.File,
			Path:     "docs",
			Title:    "Inventario API",
		}))
	} else {
		log.Warn().Str("archivo", cfg.Swagger.File).Msg("documento OpenAPI no encontrado; /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:   authUC,
		TableUC:  tableUC,
		ExportUC: exportUC,
		Cookie: httpRouter.SessionCookie{
			Name:   cfg.Session.CookieName,
			TTL:    time.Duration(cfg.Session.Expiration) * time.Minute,
			Secure: cfg.App.Env == "production",
		},
		Service: cfg.App.Name,
		Log:     log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
