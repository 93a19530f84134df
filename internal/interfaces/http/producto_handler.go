package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gardengates/comanda-api/internal/application/dto"
	"github.com/gardengates/comanda-api/internal/application/usecase"
)

// ProductoHandler maneja el CRUD de productos de la carta.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler de productos.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ProductoHandler) Obtener(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ProductoHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ProductoHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Success: true, Message: "producto eliminado"})
}

// Listar acepta ?categoria= y ?buscar= como filtros excluyentes.
func (h *ProductoHandler) Listar(c *fiber.Ctx) error {
	if termino := c.Query("buscar"); termino != "" {
		out, err := h.uc.Buscar(termino)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	if categoria := c.Query("categoria"); categoria != "" {
		out, err := h.uc.ListByCategoria(categoria)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
