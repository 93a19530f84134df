package repository

import "github.com/gardengates/comanda-api/internal/domain/entity"

// RecetaRepository define el puerto de persistencia del índice de recetas.
// Una receta vacía (cero líneas) es un estado válido: significa "sin receta
// definida"; la existencia del ítem producible se verifica aparte.
// El reemplazo total (borrar + insertar) debe ejecutarse dentro de una
// transacción del caller para que ningún lector vea la receta transitoriamente vacía.
type RecetaRepository interface {
	// ObtenerPorProducto devuelve las líneas con nombre y unidad del ingrediente.
	ObtenerPorProducto(productoID string) ([]*entity.RecetaLinea, error)
	AgregarLinea(linea *entity.RecetaLinea) error
	// EliminarPorProducto borra todas las líneas del ítem. Devuelve filas eliminadas.
	EliminarPorProducto(productoID string) (int64, error)
}
