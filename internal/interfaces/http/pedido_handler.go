package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gardengates/comanda-api/internal/application/dto"
	"github.com/gardengates/comanda-api/internal/application/pedidos"
)

// PedidoHandler maneja el ciclo de vida de pedidos.
type PedidoHandler struct {
	uc *pedidos.PedidoUseCase
}

// NewPedidoHandler construye el handler de pedidos.
func NewPedidoHandler(uc *pedidos.PedidoUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// Crear registra un pedido con sus líneas; el inventario de todas las líneas
// se compromete en una sola transacción.
func (h *PedidoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearPedido(c.Context(), &in, GetUsuarioID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ActualizarEstado mueve el pedido por su máquina de estados.
func (h *PedidoHandler) ActualizarEstado(c *fiber.Ctx) error {
	var in dto.ActualizarEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ActualizarEstado(c.Context(), c.Params("id"), in.Estado)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Eliminar borra el pedido y sus detalles (no repone inventario).
func (h *PedidoHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.EliminarPedido(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Success: true, Message: "pedido eliminado"})
}

// Obtener devuelve el pedido con sus líneas.
func (h *PedidoHandler) Obtener(c *fiber.Ctx) error {
	out, err := h.uc.ObtenerConDetalles(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Listar acepta ?estado= para filtrar; sin filtro devuelve todos.
func (h *PedidoHandler) Listar(c *fiber.Ctx) error {
	if estado := c.Query("estado"); estado != "" {
		out, err := h.uc.ListarPorEstado(c.Context(), estado)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.Listar(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListarPorMesa devuelve los pedidos activos de una mesa.
func (h *PedidoHandler) ListarPorMesa(c *fiber.Ctx) error {
	out, err := h.uc.ListarPorMesa(c.Context(), c.Params("mesaId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
