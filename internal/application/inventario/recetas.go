package inventario

import (
	"context"

	"github.com/gardengates/comanda-api/internal/domain"
	"github.com/gardengates/comanda-api/internal/domain/entity"
	"github.com/gardengates/comanda-api/internal/domain/repository"
)

// RecetasUseCase administra el índice de recetas. Las líneas expresan cantidad
// de ingrediente POR UNIDAD de salida del ítem producible, que puede ser un
// producto preparado o un producto general de la carta.
type RecetasUseCase struct {
	txRunner     TxRunner
	recetaRepo   repository.RecetaRepository
	prepRepo     repository.ProductoPreparadoRepository
	productoRepo repository.ProductoRepository
}

// NewRecetasUseCase construye el caso de uso.
func NewRecetasUseCase(
	txRunner TxRunner,
	recetaRepo repository.RecetaRepository,
	prepRepo repository.ProductoPreparadoRepository,
	productoRepo repository.ProductoRepository,
) *RecetasUseCase {
	return &RecetasUseCase{txRunner: txRunner, recetaRepo: recetaRepo, prepRepo: prepRepo, productoRepo: productoRepo}
}

// existeProducible resuelve el ítem en ambos almacenes: primero como producto
// preparado y si no, como producto de la carta.
func (uc *RecetasUseCase) existeProducible(prepRepo repository.ProductoPreparadoRepository, productoID string) (bool, error) {
	prep, err := prepRepo.GetByID(productoID)
	if err != nil {
		return false, err
	}
	if prep != nil {
		return true, nil
	}
	prod, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return false, err
	}
	return prod != nil, nil
}

// ObtenerReceta devuelve las líneas de receta de un ítem producible. Un
// resultado vacío con ítem existente significa "sin receta definida"; si el
// ítem no existe en ninguno de los dos almacenes devuelve ErrNoEncontrado.
func (uc *RecetasUseCase) ObtenerReceta(ctx context.Context, productoID string) ([]*entity.RecetaLinea, error) {
	existe, err := uc.existeProducible(uc.prepRepo, productoID)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, domain.ErrNoEncontrado
	}
	lineas, err := uc.recetaRepo.ObtenerPorProducto(productoID)
	if err != nil {
		return nil, err
	}
	if lineas == nil {
		lineas = []*entity.RecetaLinea{}
	}
	return lineas, nil
}

// AgregarLinea añade una línea a la receta sin tocar las existentes. El ítem
// producible debe existir.
func (uc *RecetasUseCase) AgregarLinea(ctx context.Context, linea *entity.RecetaLinea) error {
	if !linea.Valida() {
		return domain.ErrEntradaInvalida
	}
	existe, err := uc.existeProducible(uc.prepRepo, linea.ProductoID)
	if err != nil {
		return err
	}
	if !existe {
		return domain.ErrNoEncontrado
	}
	return uc.recetaRepo.AgregarLinea(linea)
}

// Reemplazar sustituye la receta completa del ítem: verifica que el ítem
// exista, borra las líneas previas e inserta el nuevo conjunto en una sola
// transacción, de modo que ningún lector concurrente observe una receta
// transitoriamente vacía ni quede una receta colgando de un ítem inexistente.
func (uc *RecetasUseCase) Reemplazar(ctx context.Context, productoID string, lineas []*entity.RecetaLinea) error {
	if productoID == "" {
		return domain.ErrEntradaInvalida
	}
	for _, l := range lineas {
		l.ProductoID = productoID
		if !l.Valida() {
			return domain.ErrEntradaInvalida
		}
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.IngredienteRepository,
		prepRepo repository.ProductoPreparadoRepository,
		recetaRepo repository.RecetaRepository,
		_ repository.MovimientoRepository,
	) error {
		existe, err := uc.existeProducible(prepRepo, productoID)
		if err != nil {
			return err
		}
		if !existe {
			return domain.ErrNoEncontrado
		}
		if _, err := recetaRepo.EliminarPorProducto(productoID); err != nil {
			return err
		}
		for _, l := range lineas {
			if err := recetaRepo.AgregarLinea(l); err != nil {
				return err
			}
		}
		return nil
	})
}

// EliminarReceta borra todas las líneas del ítem. Devuelve cuántas eliminó.
func (uc *RecetasUseCase) EliminarReceta(ctx context.Context, productoID string) (int64, error) {
	return uc.recetaRepo.EliminarPorProducto(productoID)
}
