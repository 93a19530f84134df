package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/gardengates/comanda-api/internal/application/dto"
	"github.com/gardengates/comanda-api/internal/application/inventario"
	"github.com/gardengates/comanda-api/internal/application/usecase"
	"github.com/gardengates/comanda-api/internal/domain/entity"
)

// InventarioHandler expone ingredientes, productos preparados, recetas y las
// operaciones del motor de inventario (preparar, vender, venta directa, ajustes).
type InventarioHandler struct {
	engine        *inventario.Engine
	recetasUC     *inventario.RecetasUseCase
	ingredienteUC *usecase.IngredienteUseCase
	preparadoUC   *usecase.ProductoPreparadoUseCase
	movimientoUC  *usecase.MovimientoUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(
	engine *inventario.Engine,
	recetasUC *inventario.RecetasUseCase,
	ingredienteUC *usecase.IngredienteUseCase,
	preparadoUC *usecase.ProductoPreparadoUseCase,
	movimientoUC *usecase.MovimientoUseCase,
) *InventarioHandler {
	return &InventarioHandler{
		engine:        engine,
		recetasUC:     recetasUC,
		ingredienteUC: ingredienteUC,
		preparadoUC:   preparadoUC,
		movimientoUC:  movimientoUC,
	}
}

// ── Ingredientes ──

func (h *InventarioHandler) CrearIngrediente(c *fiber.Ctx) error {
	var in dto.IngredienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ingredienteUC.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *InventarioHandler) ObtenerIngrediente(c *fiber.Ctx) error {
	out, err := h.ingredienteUC.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *InventarioHandler) ActualizarIngrediente(c *fiber.Ctx) error {
	var in dto.IngredienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ingredienteUC.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DesactivarIngrediente hace soft delete; el histórico de movimientos se conserva.
func (h *InventarioHandler) DesactivarIngrediente(c *fiber.Ctx) error {
	if err := h.ingredienteUC.Desactivar(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Success: true, Message: "ingrediente desactivado"})
}

func (h *InventarioHandler) ListarIngredientes(c *fiber.Ctx) error {
	out, err := h.ingredienteUC.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *InventarioHandler) ListarIngredientesBajoStock(c *fiber.Ctx) error {
	out, err := h.ingredienteUC.ListBajoStock()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ── Productos preparados ──

func (h *InventarioHandler) CrearPreparado(c *fiber.Ctx) error {
	var in dto.ProductoPreparadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.preparadoUC.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *InventarioHandler) ObtenerPreparado(c *fiber.Ctx) error {
	out, err := h.preparadoUC.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *InventarioHandler) ActualizarPreparado(c *fiber.Ctx) error {
	var in dto.ProductoPreparadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.preparadoUC.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EliminarPreparado borra el producto preparado y su receta.
func (h *InventarioHandler) EliminarPreparado(c *fiber.Ctx) error {
	if err := h.preparadoUC.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Success: true, Message: "producto preparado eliminado"})
}

func (h *InventarioHandler) ListarPreparados(c *fiber.Ctx) error {
	out, err := h.preparadoUC.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ── Recetas ──

func (h *InventarioHandler) ObtenerReceta(c *fiber.Ctx) error {
	lineas, err := h.recetasUC.ObtenerReceta(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.RecetaLineaResponse, 0, len(lineas))
	for _, l := range lineas {
		out = append(out, dto.RecetaLineaResponse{
			IngredienteID:     l.IngredienteID,
			IngredienteNombre: l.IngredienteNombre,
			IngredienteUnidad: l.IngredienteUnidad,
			Cantidad:          l.Cantidad,
		})
	}
	return c.JSON(out)
}

// ReemplazarReceta sustituye la receta completa del producto preparado.
func (h *InventarioHandler) ReemplazarReceta(c *fiber.Ctx) error {
	var in []dto.RecetaLineaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lineas := make([]*entity.RecetaLinea, 0, len(in))
	for _, l := range in {
		lineas = append(lineas, &entity.RecetaLinea{
			IngredienteID: l.IngredienteID,
			Cantidad:      l.Cantidad,
		})
	}
	if err := h.recetasUC.Reemplazar(c.Context(), c.Params("id"), lineas); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Success: true, Message: "receta actualizada"})
}

func (h *InventarioHandler) AgregarLineaReceta(c *fiber.Ctx) error {
	var in dto.RecetaLineaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	linea := &entity.RecetaLinea{
		ProductoID:    c.Params("id"),
		IngredienteID: in.IngredienteID,
		Cantidad:      in.Cantidad,
	}
	if err := h.recetasUC.AgregarLinea(c.Context(), linea); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensajeResponse{Success: true, Message: "línea agregada"})
}

// ── Motor de inventario ──

// Preparar produce unidades de un producto preparado consumiendo su receta.
func (h *InventarioHandler) Preparar(c *fiber.Ctx) error {
	var in dto.PrepararRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	prep, err := h.engine.Preparar(c.Context(), in.ProductoID, in.Cantidad, GetUsuarioID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"producto_id":  prep.ID,
		"stock_actual": prep.StockActual,
	})
}

// Vender descuenta inventario por la venta de un producto de la carta.
func (h *InventarioHandler) Vender(c *fiber.Ctx) error {
	var in dto.VenderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.engine.Vender(c.Context(), in.ProductoID, in.Cantidad, GetUsuarioID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Success: true, Message: "venta registrada"})
}

// VenderPreparado descuenta stock de un producto preparado directamente por
// su ID, sin pasar por un producto de la carta.
func (h *InventarioHandler) VenderPreparado(c *fiber.Ctx) error {
	var in dto.VenderPreparadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.engine.VenderPreparado(c.Context(), in.ProductoPreparadoID, in.Cantidad, GetUsuarioID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Success: true, Message: "venta registrada"})
}

// VentaDirecta debita ingredientes explícitos sin pasar por recetas.
func (h *InventarioHandler) VentaDirecta(c *fiber.Ctx) error {
	var in dto.VentaDirectaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lineas := make([]inventario.LineaVentaDirecta, 0, len(in.Ingredientes))
	for _, l := range in.Ingredientes {
		lineas = append(lineas, inventario.LineaVentaDirecta{
			IngredienteID: l.IngredienteID,
			Cantidad:      l.Cantidad,
		})
	}
	if err := h.engine.VentaDirecta(c.Context(), lineas, GetUsuarioID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Success: true, Message: "venta directa registrada"})
}

// RegistrarMovimiento entrada o salida administrativa sobre cualquiera de las
// dos clases de inventario.
func (h *InventarioHandler) RegistrarMovimiento(c *fiber.Ctx) error {
	var in dto.MovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Cantidad.LessThanOrEqual(decimal.Zero) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad debe ser mayor que cero"})
	}
	item := entity.ItemInventario{Clase: in.Clase, ID: in.ItemID}
	err := h.engine.RegistrarMovimiento(c.Context(), item, in.Tipo, in.Cantidad, in.Motivo, GetUsuarioID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensajeResponse{Success: true, Message: "movimiento registrado"})
}

// ── Libro de movimientos y alertas ──

// ListarMovimientos acepta ?desde=2006-01-02&hasta=2006-01-02.
func (h *InventarioHandler) ListarMovimientos(c *fiber.Ctx) error {
	out, err := h.movimientoUC.List(c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *InventarioHandler) AlertasStock(c *fiber.Ctx) error {
	out, err := h.movimientoUC.AlertasStock()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
