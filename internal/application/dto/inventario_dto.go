package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IngredienteRequest alta o edición de un ingrediente.
type IngredienteRequest struct {
	Nombre         string          `json:"nombre"`
	Unidad         string          `json:"unidad"`
	StockActual    decimal.Decimal `json:"stock_actual"`
	StockMinimo    decimal.Decimal `json:"stock_minimo"`
	CostoPorUnidad decimal.Decimal `json:"costo_por_unidad"`
	Activo         *bool           `json:"activo"`
}

// ProductoPreparadoRequest alta o edición de un producto preparado.
type ProductoPreparadoRequest struct {
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion"`
	Unidad         string          `json:"unidad"`
	StockActual    decimal.Decimal `json:"stock_actual"`
	StockMinimo    decimal.Decimal `json:"stock_minimo"`
	CostoPorUnidad decimal.Decimal `json:"costo_por_unidad"`
}

// RecetaLineaRequest una línea de receta (cantidad por unidad de salida).
type RecetaLineaRequest struct {
	IngredienteID string          `json:"ingrediente_id"`
	Cantidad      decimal.Decimal `json:"cantidad"`
}

// PrepararRequest orden de preparación de un producto preparado.
type PrepararRequest struct {
	ProductoID string          `json:"producto_id"`
	Cantidad   decimal.Decimal `json:"cantidad"`
}

// VenderRequest venta de un producto de la carta (descuenta según su clase de inventario).
type VenderRequest struct {
	ProductoID string          `json:"producto_id"`
	Cantidad   decimal.Decimal `json:"cantidad"`
}

// VenderPreparadoRequest venta directa de stock de un producto preparado.
type VenderPreparadoRequest struct {
	ProductoPreparadoID string          `json:"producto_preparado_id"`
	Cantidad            decimal.Decimal `json:"cantidad"`
}

// VentaDirectaLinea un ingrediente a debitar en una venta directa.
type VentaDirectaLinea struct {
	IngredienteID string          `json:"ingrediente_id"`
	Cantidad      decimal.Decimal `json:"cantidad"`
}

// VentaDirectaRequest venta que debita ingredientes sin pasar por recetas (platos ad-hoc).
type VentaDirectaRequest struct {
	Ingredientes []VentaDirectaLinea `json:"ingredientes"`
}

// IngredienteResponse ingrediente con su stock vigente.
type IngredienteResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	Unidad         string          `json:"unidad"`
	StockActual    decimal.Decimal `json:"stock_actual"`
	StockMinimo    decimal.Decimal `json:"stock_minimo"`
	CostoPorUnidad decimal.Decimal `json:"costo_por_unidad"`
	BajoMinimo     bool            `json:"bajo_minimo"`
}

// ProductoPreparadoResponse producto preparado con su stock vigente.
type ProductoPreparadoResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion,omitempty"`
	Unidad         string          `json:"unidad"`
	StockActual    decimal.Decimal `json:"stock_actual"`
	StockMinimo    decimal.Decimal `json:"stock_minimo"`
	CostoPorUnidad decimal.Decimal `json:"costo_por_unidad"`
	BajoMinimo     bool            `json:"bajo_minimo"`
}

// RecetaLineaResponse línea de receta con el ingrediente resuelto.
type RecetaLineaResponse struct {
	IngredienteID     string          `json:"ingrediente_id"`
	IngredienteNombre string          `json:"ingrediente_nombre,omitempty"`
	IngredienteUnidad string          `json:"ingrediente_unidad,omitempty"`
	Cantidad          decimal.Decimal `json:"cantidad"`
}

// MovimientoRequest entrada o salida administrativa de inventario.
type MovimientoRequest struct {
	Clase    string          `json:"clase"` // ingrediente | producto_preparado
	ItemID   string          `json:"item_id"`
	Tipo     string          `json:"tipo"` // entrada | salida
	Cantidad decimal.Decimal `json:"cantidad"`
	Motivo   string          `json:"motivo"`
}

// MovimientoResponse una entrada del libro de movimientos.
type MovimientoResponse struct {
	ID            string          `json:"id"`
	Clase         string          `json:"clase"`
	ItemID        string          `json:"item_id"`
	ItemNombre    string          `json:"item_nombre,omitempty"`
	Tipo          string          `json:"tipo"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	Motivo        string          `json:"motivo"`
	UsuarioID     string          `json:"usuario_id"`
	PedidoID      *string         `json:"pedido_id,omitempty"`
	FechaCreacion time.Time       `json:"fecha_creacion"`
}

// AlertasStockResponse ítems de ambas clases en o bajo su stock mínimo.
type AlertasStockResponse struct {
	Ingredientes        []IngredienteResponse       `json:"ingredientes"`
	ProductosPreparados []ProductoPreparadoResponse `json:"productos_preparados"`
}
