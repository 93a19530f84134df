package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gardengates/comanda-api/internal/application/dto"
	"github.com/gardengates/comanda-api/internal/application/usecase"
)

// MesaHandler maneja el CRUD de mesas.
type MesaHandler struct {
	uc *usecase.MesaUseCase
}

// NewMesaHandler construye el handler de mesas.
func NewMesaHandler(uc *usecase.MesaUseCase) *MesaHandler {
	return &MesaHandler{uc: uc}
}

func (h *MesaHandler) Crear(c *fiber.Ctx) error {
	var in dto.MesaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *MesaHandler) Obtener(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *MesaHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.MesaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *MesaHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Success: true, Message: "mesa eliminada"})
}

func (h *MesaHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
