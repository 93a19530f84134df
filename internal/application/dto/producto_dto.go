package dto

import "github.com/shopspring/decimal"

// ProductoRequest alta o edición de un producto de la carta.
type ProductoRequest struct {
	Nombre              string          `json:"nombre"`
	Descripcion         string          `json:"descripcion"`
	Precio              decimal.Decimal `json:"precio"`
	Categoria           string          `json:"categoria"`
	TipoInventario      string          `json:"tipo_inventario"` // general | preparado
	ProductoPreparadoID *string         `json:"producto_preparado_id"`
}

// MesaRequest alta o edición de una mesa.
type MesaRequest struct {
	Numero    int    `json:"numero"`
	Capacidad int    `json:"capacidad"`
	Estado    string `json:"estado"`
}

// ProductoResponse producto de la carta.
type ProductoResponse struct {
	ID                  string          `json:"id"`
	Nombre              string          `json:"nombre"`
	Descripcion         string          `json:"descripcion,omitempty"`
	Precio              decimal.Decimal `json:"precio"`
	Categoria           string          `json:"categoria,omitempty"`
	TipoInventario      string          `json:"tipo_inventario"`
	ProductoPreparadoID *string         `json:"producto_preparado_id,omitempty"`
}

// MesaResponse mesa del salón.
type MesaResponse struct {
	ID        string `json:"id"`
	Numero    int    `json:"numero"`
	Capacidad int    `json:"capacidad"`
	Estado    string `json:"estado"`
}
