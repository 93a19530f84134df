package inventario

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardengates/comanda-api/internal/domain"
	"github.com/gardengates/comanda-api/internal/domain/entity"
)

func TestVentaDirecta_DescuentaYRegistra(t *testing.T) {
	e := nuevoEntorno()
	e.conIngrediente("queso", "Queso", "kg", 3, 1)
	e.conIngrediente("jamon", "Jamón", "kg", 2, 1)

	err := e.engine.VentaDirecta(context.Background(), []LineaVentaDirecta{
		{IngredienteID: "queso", Cantidad: decimal.NewFromFloat(0.5)},
		{IngredienteID: "jamon", Cantidad: decimal.NewFromFloat(0.25)},
	}, "u1")
	require.NoError(t, err)

	assert.True(t, e.stockIngrediente("queso").Equal(decimal.NewFromFloat(2.5)))
	assert.True(t, e.stockIngrediente("jamon").Equal(decimal.NewFromFloat(1.75)))

	require.Len(t, e.movs.movs, 2)
	for _, mov := range e.movs.movs {
		assert.Equal(t, entity.MotivoVentaDirecta, mov.Motivo)
		assert.Equal(t, entity.MovimientoSalida, mov.Tipo)
	}
}

// Con dos ingredientes insuficientes el error nombra a ambos, no solo al primero.
func TestVentaDirecta_AgregaTodosLosFaltantes(t *testing.T) {
	e := nuevoEntorno()
	e.conIngrediente("queso", "Queso", "kg", 1, 1)
	e.conIngrediente("jamon", "Jamón", "kg", 0, 1)
	e.conIngrediente("pan", "Pan", "unidad", 10, 1)

	err := e.engine.VentaDirecta(context.Background(), []LineaVentaDirecta{
		{IngredienteID: "queso", Cantidad: decimal.NewFromInt(2)},
		{IngredienteID: "jamon", Cantidad: decimal.NewFromInt(1)},
		{IngredienteID: "pan", Cantidad: decimal.NewFromInt(1)},
	}, "u1")
	require.Error(t, err)

	var sinStock *domain.SinStockError
	require.ErrorAs(t, err, &sinStock)
	require.Len(t, sinStock.Faltantes, 2)
	assert.Equal(t, "Queso", sinStock.Faltantes[0].Item)
	assert.Equal(t, "Jamón", sinStock.Faltantes[1].Item)
	assert.Contains(t, err.Error(), "Queso")
	assert.Contains(t, err.Error(), "Jamón")

	// Dos pasadas: el pan alcanzaba pero tampoco se descuenta.
	assert.True(t, e.stockIngrediente("pan").Equal(decimal.NewFromInt(10)))
	assert.True(t, e.stockIngrediente("queso").Equal(decimal.NewFromInt(1)))
	assert.Empty(t, e.movs.movs)
}

// Dos líneas del mismo ingrediente se verifican contra la suma, no cada una
// contra el stock sin mutar: 3+3 con stock 4 debe fallar, no colarse.
func TestVentaDirecta_LineasDuplicadasSeVerificanSumadas(t *testing.T) {
	e := nuevoEntorno()
	e.conIngrediente("queso", "Queso", "kg", 4, 1)

	err := e.engine.VentaDirecta(context.Background(), []LineaVentaDirecta{
		{IngredienteID: "queso", Cantidad: decimal.NewFromInt(3)},
		{IngredienteID: "queso", Cantidad: decimal.NewFromInt(3)},
	}, "u1")
	require.Error(t, err)

	var sinStock *domain.SinStockError
	require.ErrorAs(t, err, &sinStock)
	require.Len(t, sinStock.Faltantes, 1)
	assert.True(t, sinStock.Faltantes[0].Requerido.Equal(decimal.NewFromInt(6)))
	assert.True(t, sinStock.Faltantes[0].Disponible.Equal(decimal.NewFromInt(4)))

	assert.True(t, e.stockIngrediente("queso").Equal(decimal.NewFromInt(4)))
	assert.Empty(t, e.movs.movs)
}

// Cuando la suma sí alcanza, la fila se escribe una sola vez y el libro
// registra un único movimiento cuyo monto coincide con el delta real.
func TestVentaDirecta_LineasDuplicadasSeAplicanUnaVez(t *testing.T) {
	e := nuevoEntorno()
	e.conIngrediente("queso", "Queso", "kg", 10, 1)

	err := e.engine.VentaDirecta(context.Background(), []LineaVentaDirecta{
		{IngredienteID: "queso", Cantidad: decimal.NewFromInt(3)},
		{IngredienteID: "queso", Cantidad: decimal.NewFromInt(3)},
	}, "u1")
	require.NoError(t, err)

	assert.True(t, e.stockIngrediente("queso").Equal(decimal.NewFromInt(4)))
	require.Len(t, e.movs.movs, 1)
	assert.True(t, e.movs.movs[0].Cantidad.Equal(decimal.NewFromInt(6)))
	assert.Equal(t, entity.MovimientoSalida, e.movs.movs[0].Tipo)
}

func TestVentaDirecta_EntradaInvalida(t *testing.T) {
	e := nuevoEntorno()

	err := e.engine.VentaDirecta(context.Background(), nil, "u1")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	err = e.engine.VentaDirecta(context.Background(), []LineaVentaDirecta{
		{IngredienteID: "queso", Cantidad: decimal.Zero},
	}, "u1")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestVentaDirecta_IngredienteInexistente(t *testing.T) {
	e := nuevoEntorno()
	err := e.engine.VentaDirecta(context.Background(), []LineaVentaDirecta{
		{IngredienteID: "nada", Cantidad: decimal.NewFromInt(1)},
	}, "u1")
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}
