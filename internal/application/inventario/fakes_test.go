package inventario

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gardengates/comanda-api/internal/domain/entity"
	"github.com/gardengates/comanda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para probar el motor sin base de datos. El runner
// falso toma una instantánea del estado antes de ejecutar el callback y la
// restaura si este falla, reproduciendo la semántica Commit/Rollback.
// ──────────────────────────────────────────────────────────────────────────────

type memIngredientes struct {
	filas map[string]entity.Ingrediente
}

func newMemIngredientes() *memIngredientes {
	return &memIngredientes{filas: make(map[string]entity.Ingrediente)}
}

func (m *memIngredientes) Create(ing *entity.Ingrediente) error {
	m.filas[ing.ID] = *ing
	return nil
}

func (m *memIngredientes) Update(ing *entity.Ingrediente) error {
	m.filas[ing.ID] = *ing
	return nil
}

func (m *memIngredientes) Desactivar(id string) (bool, error) {
	ing, ok := m.filas[id]
	if !ok {
		return false, nil
	}
	ing.Activo = false
	m.filas[id] = ing
	return true, nil
}

func (m *memIngredientes) GetByID(id string) (*entity.Ingrediente, error) {
	ing, ok := m.filas[id]
	if !ok || !ing.Activo {
		return nil, nil
	}
	copia := ing
	return &copia, nil
}

func (m *memIngredientes) List() ([]*entity.Ingrediente, error) {
	var out []*entity.Ingrediente
	for _, ing := range m.filas {
		if ing.Activo {
			copia := ing
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (m *memIngredientes) ListBajoStock() ([]*entity.Ingrediente, error) {
	var out []*entity.Ingrediente
	for _, ing := range m.filas {
		if ing.Activo && ing.BajoMinimo() {
			copia := ing
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (m *memIngredientes) GetForUpdate(id string) (*entity.Ingrediente, error) {
	return m.GetByID(id)
}

func (m *memIngredientes) UpdateStock(id string, stock decimal.Decimal) error {
	ing := m.filas[id]
	ing.StockActual = stock
	m.filas[id] = ing
	return nil
}

type memPreparados struct {
	filas map[string]entity.ProductoPreparado
}

func newMemPreparados() *memPreparados {
	return &memPreparados{filas: make(map[string]entity.ProductoPreparado)}
}

func (m *memPreparados) Create(p *entity.ProductoPreparado) error {
	m.filas[p.ID] = *p
	return nil
}

func (m *memPreparados) Update(p *entity.ProductoPreparado) error {
	m.filas[p.ID] = *p
	return nil
}

func (m *memPreparados) Delete(id string) (bool, error) {
	if _, ok := m.filas[id]; !ok {
		return false, nil
	}
	delete(m.filas, id)
	return true, nil
}

func (m *memPreparados) GetByID(id string) (*entity.ProductoPreparado, error) {
	p, ok := m.filas[id]
	if !ok {
		return nil, nil
	}
	copia := p
	return &copia, nil
}

func (m *memPreparados) List() ([]*entity.ProductoPreparado, error) {
	var out []*entity.ProductoPreparado
	for _, p := range m.filas {
		copia := p
		out = append(out, &copia)
	}
	return out, nil
}

func (m *memPreparados) ListBajoStock() ([]*entity.ProductoPreparado, error) {
	var out []*entity.ProductoPreparado
	for _, p := range m.filas {
		if p.BajoMinimo() {
			copia := p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (m *memPreparados) GetForUpdate(id string) (*entity.ProductoPreparado, error) {
	return m.GetByID(id)
}

func (m *memPreparados) UpdateStock(id string, stock decimal.Decimal) error {
	p := m.filas[id]
	p.StockActual = stock
	m.filas[id] = p
	return nil
}

type memRecetas struct {
	lineas []entity.RecetaLinea
}

func (m *memRecetas) ObtenerPorProducto(productoID string) ([]*entity.RecetaLinea, error) {
	var out []*entity.RecetaLinea
	for _, l := range m.lineas {
		if l.ProductoID == productoID {
			copia := l
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (m *memRecetas) AgregarLinea(linea *entity.RecetaLinea) error {
	m.lineas = append(m.lineas, *linea)
	return nil
}

func (m *memRecetas) EliminarPorProducto(productoID string) (int64, error) {
	var restantes []entity.RecetaLinea
	var eliminadas int64
	for _, l := range m.lineas {
		if l.ProductoID == productoID {
			eliminadas++
			continue
		}
		restantes = append(restantes, l)
	}
	m.lineas = restantes
	return eliminadas, nil
}

type memMovimientos struct {
	movs []entity.Movimiento
}

func (m *memMovimientos) Create(mov *entity.Movimiento) error {
	m.movs = append(m.movs, *mov)
	return nil
}

func (m *memMovimientos) List(desde, hasta *time.Time) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, mov := range m.movs {
		copia := mov
		out = append(out, &copia)
	}
	return out, nil
}

type memProductos struct {
	filas map[string]entity.Producto
}

func newMemProductos() *memProductos {
	return &memProductos{filas: make(map[string]entity.Producto)}
}

func (m *memProductos) Create(p *entity.Producto) error {
	m.filas[p.ID] = *p
	return nil
}

func (m *memProductos) Update(p *entity.Producto) error {
	m.filas[p.ID] = *p
	return nil
}

func (m *memProductos) Delete(id string) (bool, error) {
	if _, ok := m.filas[id]; !ok {
		return false, nil
	}
	delete(m.filas, id)
	return true, nil
}

func (m *memProductos) GetByID(id string) (*entity.Producto, error) {
	p, ok := m.filas[id]
	if !ok {
		return nil, nil
	}
	copia := p
	return &copia, nil
}

func (m *memProductos) List() ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range m.filas {
		copia := p
		out = append(out, &copia)
	}
	return out, nil
}

func (m *memProductos) ListByCategoria(categoria string) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range m.filas {
		if p.Categoria == categoria {
			copia := p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (m *memProductos) Buscar(termino string) ([]*entity.Producto, error) {
	return m.List()
}

// fakeTxRunner emula la atomicidad: restaura el estado previo si fn falla.
type fakeTxRunner struct {
	ings    *memIngredientes
	preps   *memPreparados
	recetas *memRecetas
	movs    *memMovimientos
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	ingRepo repository.IngredienteRepository,
	prepRepo repository.ProductoPreparadoRepository,
	recetaRepo repository.RecetaRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	ingsAntes := make(map[string]entity.Ingrediente, len(r.ings.filas))
	for k, v := range r.ings.filas {
		ingsAntes[k] = v
	}
	prepsAntes := make(map[string]entity.ProductoPreparado, len(r.preps.filas))
	for k, v := range r.preps.filas {
		prepsAntes[k] = v
	}
	lineasAntes := append([]entity.RecetaLinea(nil), r.recetas.lineas...)
	movsAntes := append([]entity.Movimiento(nil), r.movs.movs...)

	if err := fn(r.ings, r.preps, r.recetas, r.movs); err != nil {
		r.ings.filas = ingsAntes
		r.preps.filas = prepsAntes
		r.recetas.lineas = lineasAntes
		r.movs.movs = movsAntes
		return err
	}
	return nil
}

// entorno agrupa los fakes y el motor listo para usar en tests.
type entorno struct {
	ings    *memIngredientes
	preps   *memPreparados
	recetas *memRecetas
	movs    *memMovimientos
	prods   *memProductos
	engine  *Engine
	runner  *fakeTxRunner
}

func nuevoEntorno() *entorno {
	e := &entorno{
		ings:    newMemIngredientes(),
		preps:   newMemPreparados(),
		recetas: &memRecetas{},
		movs:    &memMovimientos{},
		prods:   newMemProductos(),
	}
	e.runner = &fakeTxRunner{ings: e.ings, preps: e.preps, recetas: e.recetas, movs: e.movs}
	e.engine = NewEngine(e.runner, e.prods)
	return e
}

func (e *entorno) conIngrediente(id, nombre, unidad string, stock, minimo float64) {
	e.ings.filas[id] = entity.Ingrediente{
		ID:          id,
		Nombre:      nombre,
		Unidad:      unidad,
		StockActual: decimal.NewFromFloat(stock),
		StockMinimo: decimal.NewFromFloat(minimo),
		Activo:      true,
	}
}

func (e *entorno) conPreparado(id, nombre, unidad string, stock float64) {
	e.preps.filas[id] = entity.ProductoPreparado{
		ID:          id,
		Nombre:      nombre,
		Unidad:      unidad,
		StockActual: decimal.NewFromFloat(stock),
	}
}

func (e *entorno) conRecetaLinea(productoID, ingredienteID string, cantidad float64) {
	e.recetas.lineas = append(e.recetas.lineas, entity.RecetaLinea{
		ProductoID:    productoID,
		IngredienteID: ingredienteID,
		Cantidad:      decimal.NewFromFloat(cantidad),
	})
}

func (e *entorno) stockIngrediente(id string) decimal.Decimal {
	return e.ings.filas[id].StockActual
}

func (e *entorno) stockPreparado(id string) decimal.Decimal {
	return e.preps.filas[id].StockActual
}
