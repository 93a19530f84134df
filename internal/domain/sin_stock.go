package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FaltanteStock describe un ítem sin existencias suficientes para una operación.
type FaltanteStock struct {
	Item       string
	Unidad     string
	Disponible decimal.Decimal
	Requerido  decimal.Decimal
}

func (f FaltanteStock) String() string {
	if f.Unidad != "" {
		return fmt.Sprintf("stock insuficiente de %s. Disponible: %s %s, Requiere: %s %s",
			f.Item, f.Disponible.String(), f.Unidad, f.Requerido.String(), f.Unidad)
	}
	return fmt.Sprintf("stock insuficiente de %s. Disponible: %s, Requiere: %s",
		f.Item, f.Disponible.String(), f.Requerido.String())
}

// SinStockError agrega todos los faltantes de una operación multi-ítem
// (verificación en dos pasadas: se reportan todos, no solo el primero).
type SinStockError struct {
	Faltantes []FaltanteStock
}

func (e *SinStockError) Error() string {
	msgs := make([]string, 0, len(e.Faltantes))
	for _, f := range e.Faltantes {
		msgs = append(msgs, f.String())
	}
	return strings.Join(msgs, ". ")
}

// NuevoSinStock construye el error con un único faltante.
func NuevoSinStock(item, unidad string, disponible, requerido decimal.Decimal) *SinStockError {
	return &SinStockError{Faltantes: []FaltanteStock{{
		Item:       item,
		Unidad:     unidad,
		Disponible: disponible,
		Requerido:  requerido,
	}}}
}

// EsSinStock indica si err es (o envuelve) un SinStockError.
func EsSinStock(err error) bool {
	var target *SinStockError
	return errors.As(err, &target)
}
