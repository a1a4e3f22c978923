package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/albertmmateo-blip/entretelas-api/internal/application/usecase"
	infrapdf "github.com/albertmmateo-blip/entretelas-api/internal/infrastructure/pdf"
	"github.com/albertmmateo-blip/entretelas-api/internal/infrastructure/postgres"
	httpRouter "github.com/albertmmateo-blip/entretelas-api/internal/interfaces/http"
	"github.com/albertmmateo-blip/entretelas-api/pkg/config"
	"github.com/albertmmateo-blip/entretelas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	entidadRepo := postgres.NewEntidadRepository(pool)
	facturaRepo := postgres.NewFacturaRepository(pool)
	arregloRepo := postgres.NewArregloRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	lugarRepo := postgres.NewLugarRepository(pool, txRunner)
	productoRepo := postgres.NewProductoRepository(pool)
	notaRepo := postgres.NewNotaRepository(pool)
	avisoRepo := postgres.NewAvisoRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)

	tarifas := cfg.Tarifas.Tarifas()
	pdfGenerator := infrapdf.NewMarotoResumenGenerator(cfg.App.Tienda)

	entidadUC := usecase.NewEntidadUseCase(entidadRepo)
	facturaUC := usecase.NewFacturaUseCase(facturaRepo, entidadRepo, tarifas, pdfGenerator)
	arregloUC := usecase.NewArregloUseCase(arregloRepo, tarifas, pdfGenerator)
	guardadoUC := usecase.NewGuardadoUseCase(lugarRepo, productoRepo)
	notaUC := usecase.NewNotaUseCase(notaRepo)
	avisoUC := usecase.NewAvisoUseCase(avisoRepo)
	pedidoUC := usecase.NewPedidoUseCase(pedidoRepo)

	// El catálogo de guardado vive en memoria; se carga entero al arrancar
	if err := guardadoUC.Recargar(); err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo de guardado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    32 * 1024 * 1024, // documentos de facturas
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Entretelas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EntidadUC:  entidadUC,
		FacturaUC:  facturaUC,
		ArregloUC:  arregloUC,
		GuardadoUC: guardadoUC,
		NotaUC:     notaUC,
		AvisoUC:    avisoUC,
		PedidoUC:   pedidoUC,
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
