package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/activos-consola/internal/application/auth"
	"github.com/jhoicas/activos-consola/internal/application/usecase"
	infrapdf "github.com/jhoicas/activos-consola/internal/infrastructure/pdf"
	"github.com/jhoicas/activos-consola/internal/infrastructure/rest"
	"github.com/jhoicas/activos-consola/internal/infrastructure/sessionstore"
	"github.com/jhoicas/activos-consola/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/activos-consola/internal/interfaces/http"
	"github.com/jhoicas/activos-consola/pkg/config"
	"github.com/jhoicas/activos-consola/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando consola web")

	// Sesiones: Redis si hay REDIS_URL (varias réplicas), memoria en otro caso.
	sessCfg := session.Config{
		Expiration:     cfg.Session.TTL(),
		CookieSecure:   cfg.Session.CookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	}
	if cfg.Session.RedisURL != "" {
		storage, err := sessionstore.NewRedisStorage(cfg.Session.RedisURL, "")
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer storage.Close()
		sessCfg.Storage = storage
		log.Info().Msg("sesiones en Redis")
	}
	store := session.New(sessCfg)

	// El token de cada petición sale de la sesión que el middleware deja en el contexto.
	client := rest.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), rest.SesionToken)
	tabla := xlsx.NewExcelizeExporter()
	ficha := infrapdf.NewMarotoFichaGenerator(cfg.App.Name)

	sesionUC := auth.NewSessionUseCase(rest.NewAuthGateway(client), log)
	parametroUC := usecase.NewParametroUseCase(rest.NewParametroRepository(client), tabla, log)
	usuarioUC := usecase.NewUsuarioUseCase(rest.NewUsuarioRepository(client), log)
	rolUC := usecase.NewRolUseCase(rest.NewRolRepository(client))
	edificioUC := usecase.NewEdificioUseCase(rest.NewEdificioRepository(client), ficha, tabla, log)

	vistas, err := httpRouter.NewVistas(cfg.App.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("plantillas")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.API.Timeout() + 10*time.Second,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log, vistas),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Vistas:      vistas,
		Store:       store,
		Log:         log,
		SesionUC:    sesionUC,
		ParametroUC: parametroUC,
		UsuarioUC:   usuarioUC,
		RolUC:       rolUC,
		EdificioUC:  edificioUC,
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

	log.Info().Msg("consola detenida")
}
