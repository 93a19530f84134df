package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaDiariaResponse agregado de ventas de un día (excluye cancelados).
type VentaDiariaResponse struct {
	Fecha        time.Time       `json:"fecha"`
	TotalPedidos int             `json:"total_pedidos"`
	TotalVentas  decimal.Decimal `json:"total_ventas"`
}

// ProductoPopularResponse producto ordenado por veces pedido.
type ProductoPopularResponse struct {
	ProductoID     string          `json:"producto_id"`
	ProductoNombre string          `json:"producto_nombre"`
	VecesPedido    int             `json:"veces_pedido"`
	TotalUnidades  decimal.Decimal `json:"total_unidades"`
	TotalIngresos  decimal.Decimal `json:"total_ingresos"`
}

// VentaPorMozoResponse agregado de ventas por mozo.
type VentaPorMozoResponse struct {
	MozoNombre   string          `json:"mozo_nombre"`
	TotalPedidos int             `json:"total_pedidos"`
	TotalVentas  decimal.Decimal `json:"total_ventas"`
}
