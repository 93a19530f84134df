package entity

import "time"

// Estados de mesa.
const (
	MesaLibre     = "libre"
	MesaOcupada   = "ocupada"
	MesaReservada = "reservada"
)

// Mesa del salón.
type Mesa struct {
	ID            string
	Numero        int
	Capacidad     int
	Estado        string
	FechaCreacion time.Time
}
