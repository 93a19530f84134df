package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gardengates/comanda-api/internal/application/inventario"
	"github.com/gardengates/comanda-api/internal/application/pedidos"
	"github.com/gardengates/comanda-api/internal/domain/repository"
)

// Ensure TxRunner implements inventario.TxRunner and pedidos.TxRunner.
var _ inventario.TxRunner = (*TxRunner)(nil)
var _ pedidos.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos de inventario atados a la
// tx y hace Commit o Rollback. Los errores de concurrencia de PostgreSQL se
// traducen a domain.ErrConflictoConcurrente.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ingRepo repository.IngredienteRepository,
	prepRepo repository.ProductoPreparadoRepository,
	recetaRepo repository.RecetaRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ingRepo := NewIngredienteRepository(tx)
	prepRepo := NewProductoPreparadoRepository(tx)
	recetaRepo := NewRecetaRepository(tx)
	movRepo := NewMovimientoRepository(tx)

	if err := fn(ingRepo, prepRepo, recetaRepo, movRepo); err != nil {
		return mapConcurrencyErr(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return mapConcurrencyErr(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

// RunPedido inicia una transacción con repos de inventario y de pedidos, para
// que el alta del pedido y los descuentos de stock de sus líneas confirmen juntos.
func (r *TxRunner) RunPedido(ctx context.Context, fn func(
	ingRepo repository.IngredienteRepository,
	prepRepo repository.ProductoPreparadoRepository,
	recetaRepo repository.RecetaRepository,
	movRepo repository.MovimientoRepository,
	pedidoRepo repository.PedidoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ingRepo := NewIngredienteRepository(tx)
	prepRepo := NewProductoPreparadoRepository(tx)
	recetaRepo := NewRecetaRepository(tx)
	movRepo := NewMovimientoRepository(tx)
	pedidoRepo := NewPedidoRepository(tx)

	if err := fn(ingRepo, prepRepo, recetaRepo, movRepo, pedidoRepo); err != nil {
		return mapConcurrencyErr(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return mapConcurrencyErr(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}
