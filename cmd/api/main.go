package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gardengates/comanda-api/internal/application/auth"
	"github.com/gardengates/comanda-api/internal/application/inventario"
	"github.com/gardengates/comanda-api/internal/application/pedidos"
	"github.com/gardengates/comanda-api/internal/application/usecase"
	"github.com/gardengates/comanda-api/internal/infrastructure/notifier"
	"github.com/gardengates/comanda-api/internal/infrastructure/postgres"
	httpRouter "github.com/gardengates/comanda-api/internal/interfaces/http"
	"github.com/gardengates/comanda-api/pkg/config"
	"github.com/gardengates/comanda-api/pkg/logger"
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

	ingredienteRepo := postgres.NewIngredienteRepository(pool)
	preparadoRepo := postgres.NewProductoPreparadoRepository(pool)
	recetaRepo := postgres.NewRecetaRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	mesaRepo := postgres.NewMesaRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	engine := inventario.NewEngine(txRunner, productoRepo)
	recetasUC := inventario.NewRecetasUseCase(txRunner, recetaRepo, preparadoRepo, productoRepo)

	// Hub de websockets: los casos de uso de pedidos publican eventos aquí.
	hub := notifier.NewHub()
	pedidoUC := pedidos.NewPedidoUseCase(txRunner, engine, pedidoRepo, productoRepo, mesaRepo, hub)

	ingredienteUC := usecase.NewIngredienteUseCase(ingredienteRepo)
	preparadoUC := usecase.NewProductoPreparadoUseCase(preparadoRepo, recetaRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo, preparadoRepo)
	mesaUC := usecase.NewMesaUseCase(mesaRepo)
	movimientoUC := usecase.NewMovimientoUseCase(movimientoRepo, ingredienteRepo, preparadoRepo)
	reporteUC := usecase.NewReporteUseCase(reporteRepo)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		Engine:        engine,
		RecetasUC:     recetasUC,
		IngredienteUC: ingredienteUC,
		PreparadoUC:   preparadoUC,
		ProductoUC:    productoUC,
		MesaUC:        mesaUC,
		MovimientoUC:  movimientoUC,
		ReporteUC:     reporteUC,
		PedidoUC:      pedidoUC,
		Hub:           hub,
		JWTSecret:     cfg.JWT.Secret,
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
