package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gardengates/comanda-api/internal/application/auth"
	"github.com/gardengates/comanda-api/internal/application/inventario"
	"github.com/gardengates/comanda-api/internal/application/pedidos"
	"github.com/gardengates/comanda-api/internal/application/usecase"
	"github.com/gardengates/comanda-api/internal/domain/entity"
	"github.com/gardengates/comanda-api/internal/infrastructure/notifier"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	Engine        *inventario.Engine
	RecetasUC     *inventario.RecetasUseCase
	IngredienteUC *usecase.IngredienteUseCase
	PreparadoUC   *usecase.ProductoPreparadoUseCase
	ProductoUC    *usecase.ProductoUseCase
	MesaUC        *usecase.MesaUseCase
	MovimientoUC  *usecase.MovimientoUseCase
	ReporteUC     *usecase.ReporteUseCase
	PedidoUC      *pedidos.PedidoUseCase
	Hub           *notifier.Hub
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/registro", authHandler.Registro)
	authGroup.Post("/login", authHandler.Login)

	// Eventos de pedidos en tiempo real.
	app.Use("/ws", WSUpgrade)
	app.Get("/ws", WSHandler(deps.Hub))

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	soloAdmin := RequireRole(entity.RolAdmin)

	// Inventario: ingredientes, productos preparados, recetas y motor
	invHandler := NewInventarioHandler(deps.Engine, deps.RecetasUC, deps.IngredienteUC, deps.PreparadoUC, deps.MovimientoUC)

	ingredientes := protected.Group("/ingredientes")
	ingredientes.Get("/", invHandler.ListarIngredientes)
	ingredientes.Get("/bajo-stock", invHandler.ListarIngredientesBajoStock)
	ingredientes.Get("/:id", invHandler.ObtenerIngrediente)
	ingredientes.Post("/", soloAdmin, invHandler.CrearIngrediente)
	ingredientes.Put("/:id", soloAdmin, invHandler.ActualizarIngrediente)
	ingredientes.Delete("/:id", soloAdmin, invHandler.DesactivarIngrediente)

	preparados := protected.Group("/productos-preparados")
	preparados.Get("/", invHandler.ListarPreparados)
	preparados.Post("/vender", invHandler.VenderPreparado)
	preparados.Get("/:id", invHandler.ObtenerPreparado)
	preparados.Post("/", soloAdmin, invHandler.CrearPreparado)
	preparados.Put("/:id", soloAdmin, invHandler.ActualizarPreparado)
	preparados.Delete("/:id", soloAdmin, invHandler.EliminarPreparado)
	preparados.Get("/:id/receta", invHandler.ObtenerReceta)
	preparados.Put("/:id/receta", soloAdmin, invHandler.ReemplazarReceta)
	preparados.Post("/:id/receta", soloAdmin, invHandler.AgregarLineaReceta)

	invGroup := protected.Group("/inventario")
	invGroup.Post("/preparar", RequireRole(entity.RolAdmin, entity.RolCocina), invHandler.Preparar)
	invGroup.Post("/vender", invHandler.Vender)
	invGroup.Post("/venta-directa", invHandler.VentaDirecta)
	invGroup.Post("/movimientos", soloAdmin, invHandler.RegistrarMovimiento)
	invGroup.Get("/movimientos", invHandler.ListarMovimientos)
	invGroup.Get("/alertas", invHandler.AlertasStock)

	// Carta
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.Listar)
	productos.Get("/:id", productoHandler.Obtener)
	productos.Post("/", soloAdmin, productoHandler.Crear)
	productos.Put("/:id", soloAdmin, productoHandler.Actualizar)
	productos.Delete("/:id", soloAdmin, productoHandler.Eliminar)
	// Los productos generales también llevan receta (se consume al venderlos).
	productos.Get("/:id/receta", invHandler.ObtenerReceta)
	productos.Put("/:id/receta", soloAdmin, invHandler.ReemplazarReceta)
	productos.Post("/:id/receta", soloAdmin, invHandler.AgregarLineaReceta)

	// Mesas
	mesas := protected.Group("/mesas")
	mesaHandler := NewMesaHandler(deps.MesaUC)
	mesas.Get("/", mesaHandler.Listar)
	mesas.Get("/:id", mesaHandler.Obtener)
	mesas.Post("/", soloAdmin, mesaHandler.Crear)
	mesas.Put("/:id", mesaHandler.Actualizar)
	mesas.Delete("/:id", soloAdmin, mesaHandler.Eliminar)

	// Pedidos
	pedidosGroup := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	pedidosGroup.Get("/", pedidoHandler.Listar)
	pedidosGroup.Get("/:id", pedidoHandler.Obtener)
	pedidosGroup.Post("/", pedidoHandler.Crear)
	pedidosGroup.Put("/:id/estado", pedidoHandler.ActualizarEstado)
	pedidosGroup.Delete("/:id", soloAdmin, pedidoHandler.Eliminar)
	protected.Get("/mesas/:mesaId/pedidos", pedidoHandler.ListarPorMesa)

	// Reportes
	reportes := protected.Group("/reportes", soloAdmin)
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportes.Get("/ventas-diarias", reporteHandler.VentasDiarias)
	reportes.Get("/productos-populares", reporteHandler.ProductosPopulares)
	reportes.Get("/ventas-por-mozo", reporteHandler.VentasPorMozo)
}
