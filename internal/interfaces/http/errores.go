package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gardengates/comanda-api/internal/application/dto"
	"github.com/gardengates/comanda-api/internal/domain"
)

// respondError traduce errores de dominio a respuestas HTTP. Los handlers
// resuelven primero sus casos propios y delegan aquí el resto.
func respondError(c *fiber.Ctx, err error) error {
	var sinStock *domain.SinStockError
	if errors.As(err, &sinStock) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_INSUFICIENTE", Message: sinStock.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrNoEncontrado), errors.Is(err, domain.ErrUsuarioNoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrSinReceta):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SIN_RECETA", Message: err.Error()})
	case errors.Is(err, domain.ErrSinProductoPreparado):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SIN_PRODUCTO_PREPARADO", Message: err.Error()})
	case errors.Is(err, domain.ErrTransicionEstado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "TRANSICION_INVALIDA", Message: err.Error()})
	case errors.Is(err, domain.ErrConflictoConcurrente):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICTO_CONCURRENTE", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailRegistrado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: err.Error()})
	case errors.Is(err, domain.ErrNoAutorizado):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrProhibido):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
