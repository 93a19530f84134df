package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetalleRequest una línea del pedido a crear.
type DetalleRequest struct {
	ProductoID string          `json:"producto_id"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	Notas      string          `json:"notas"`
}

// CrearPedidoRequest alta de pedido con sus líneas.
type CrearPedidoRequest struct {
	MesaID   string           `json:"mesa_id"`
	Detalles []DetalleRequest `json:"detalles"`
}

// ActualizarEstadoRequest cambio de estado del pedido.
type ActualizarEstadoRequest struct {
	Estado string `json:"estado"`
}

// DetalleResponse línea del pedido.
type DetalleResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	ProductoNombre string          `json:"producto_nombre,omitempty"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Notas          string          `json:"notas"`
	Precio         decimal.Decimal `json:"precio"`
	Estado         string          `json:"estado"`
}

// PedidoResponse pedido completo con sus líneas.
type PedidoResponse struct {
	ID                 string            `json:"id"`
	MesaID             string            `json:"mesa_id"`
	MesaNumero         int               `json:"mesa_numero,omitempty"`
	UsuarioID          string            `json:"usuario_id"`
	MozoNombre         string            `json:"mozo_nombre,omitempty"`
	Estado             string            `json:"estado"`
	Total              decimal.Decimal   `json:"total"`
	FechaCreacion      time.Time         `json:"fecha_creacion"`
	FechaActualizacion time.Time         `json:"fecha_actualizacion"`
	Detalles           []DetalleResponse `json:"detalles,omitempty"`
}
