package pedidos

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gardengates/comanda-api/internal/application/inventario"
	"github.com/gardengates/comanda-api/internal/domain/entity"
	"github.com/gardengates/comanda-api/internal/domain/repository"
)

// Fakes en memoria para probar el flujo de pedidos junto con el motor de
// inventario, sin base de datos. El runner falso restaura el estado previo
// cuando el callback falla, igual que un Rollback.

type memIngredientes struct {
	filas map[string]entity.Ingrediente
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

type memMesas struct {
	filas map[string]entity.Mesa
}

func (m *memMesas) Create(mesa *entity.Mesa) error {
	m.filas[mesa.ID] = *mesa
	return nil
}

func (m *memMesas) Update(mesa *entity.Mesa) error {
	m.filas[mesa.ID] = *mesa
	return nil
}

func (m *memMesas) Delete(id string) (bool, error) {
	if _, ok := m.filas[id]; !ok {
		return false, nil
	}
	delete(m.filas, id)
	return true, nil
}

func (m *memMesas) GetByID(id string) (*entity.Mesa, error) {
	mesa, ok := m.filas[id]
	if !ok {
		return nil, nil
	}
	copia := mesa
	return &copia, nil
}

func (m *memMesas) List() ([]*entity.Mesa, error) {
	var out []*entity.Mesa
	for _, mesa := range m.filas {
		copia := mesa
		out = append(out, &copia)
	}
	return out, nil
}

type memPedidos struct {
	pedidos  map[string]entity.Pedido
	detalles []entity.DetallePedido
}

func (m *memPedidos) Create(p *entity.Pedido) error {
	m.pedidos[p.ID] = *p
	return nil
}

func (m *memPedidos) UpdateEstado(id, estado string) (*entity.Pedido, error) {
	p, ok := m.pedidos[id]
	if !ok {
		return nil, nil
	}
	p.Estado = estado
	p.FechaActualizacion = time.Now()
	m.pedidos[id] = p
	copia := p
	return &copia, nil
}

func (m *memPedidos) UpdateTotal(id string, total decimal.Decimal) error {
	p := m.pedidos[id]
	p.Total = total
	m.pedidos[id] = p
	return nil
}

func (m *memPedidos) Delete(id string) (bool, error) {
	if _, ok := m.pedidos[id]; !ok {
		return false, nil
	}
	delete(m.pedidos, id)
	return true, nil
}

func (m *memPedidos) GetByID(id string) (*entity.Pedido, error) {
	p, ok := m.pedidos[id]
	if !ok {
		return nil, nil
	}
	copia := p
	return &copia, nil
}

func (m *memPedidos) List() ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range m.pedidos {
		copia := p
		out = append(out, &copia)
	}
	return out, nil
}

func (m *memPedidos) ListByMesa(mesaID string) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range m.pedidos {
		if p.MesaID == mesaID && p.Estado != entity.EstadoEntregado {
			copia := p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (m *memPedidos) ListByEstado(estado string) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range m.pedidos {
		if p.Estado == estado {
			copia := p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (m *memPedidos) CreateDetalle(d *entity.DetallePedido) error {
	m.detalles = append(m.detalles, *d)
	return nil
}

func (m *memPedidos) GetDetalles(pedidoID string) ([]*entity.DetallePedido, error) {
	var out []*entity.DetallePedido
	for _, d := range m.detalles {
		if d.PedidoID == pedidoID {
			copia := d
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (m *memPedidos) UpdateEstadoDetalles(pedidoID, estado string) error {
	for i := range m.detalles {
		if m.detalles[i].PedidoID == pedidoID {
			m.detalles[i].Estado = estado
		}
	}
	return nil
}

func (m *memPedidos) DeleteDetalles(pedidoID string) error {
	var restantes []entity.DetallePedido
	for _, d := range m.detalles {
		if d.PedidoID != pedidoID {
			restantes = append(restantes, d)
		}
	}
	m.detalles = restantes
	return nil
}

// fakeTxRunner emula la atomicidad de RunPedido: instantánea antes, restaura si falla.
type fakeTxRunner struct {
	ings    *memIngredientes
	preps   *memPreparados
	recetas *memRecetas
	movs    *memMovimientos
	pedidos *memPedidos
}

func (r *fakeTxRunner) RunPedido(ctx context.Context, fn func(
	ingRepo repository.IngredienteRepository,
	prepRepo repository.ProductoPreparadoRepository,
	recetaRepo repository.RecetaRepository,
	movRepo repository.MovimientoRepository,
	pedidoRepo repository.PedidoRepository,
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
	pedidosAntes := make(map[string]entity.Pedido, len(r.pedidos.pedidos))
	for k, v := range r.pedidos.pedidos {
		pedidosAntes[k] = v
	}
	detallesAntes := append([]entity.DetallePedido(nil), r.pedidos.detalles...)

	if err := fn(r.ings, r.preps, r.recetas, r.movs, r.pedidos); err != nil {
		r.ings.filas = ingsAntes
		r.preps.filas = prepsAntes
		r.recetas.lineas = lineasAntes
		r.movs.movs = movsAntes
		r.pedidos.pedidos = pedidosAntes
		r.pedidos.detalles = detallesAntes
		return err
	}
	return nil
}

// eventoPublicado captura una publicación del Publisher.
type eventoPublicado struct {
	Evento string
	Datos  any
}

type fakePublisher struct {
	eventos []eventoPublicado
}

func (p *fakePublisher) Publish(evento string, datos any) {
	p.eventos = append(p.eventos, eventoPublicado{Evento: evento, Datos: datos})
}

// entorno agrupa los fakes y el caso de uso listo para usar.
type entorno struct {
	ings      *memIngredientes
	preps     *memPreparados
	recetas   *memRecetas
	movs      *memMovimientos
	prods     *memProductos
	mesas     *memMesas
	pedidos   *memPedidos
	publisher *fakePublisher
	uc        *PedidoUseCase
}

func nuevoEntorno() *entorno {
	e := &entorno{
		ings:      &memIngredientes{filas: make(map[string]entity.Ingrediente)},
		preps:     &memPreparados{filas: make(map[string]entity.ProductoPreparado)},
		recetas:   &memRecetas{},
		movs:      &memMovimientos{},
		prods:     &memProductos{filas: make(map[string]entity.Producto)},
		mesas:     &memMesas{filas: make(map[string]entity.Mesa)},
		pedidos:   &memPedidos{pedidos: make(map[string]entity.Pedido)},
		publisher: &fakePublisher{},
	}
	runner := &fakeTxRunner{ings: e.ings, preps: e.preps, recetas: e.recetas, movs: e.movs, pedidos: e.pedidos}
	engine := inventario.NewEngine(engineRunner{runner}, e.prods)
	e.uc = NewPedidoUseCase(runner, engine, e.pedidos, e.prods, e.mesas, e.publisher)
	return e
}

// engineRunner adapta el runner de pedidos al TxRunner del motor de inventario.
type engineRunner struct {
	r *fakeTxRunner
}

func (a engineRunner) Run(ctx context.Context, fn func(
	ingRepo repository.IngredienteRepository,
	prepRepo repository.ProductoPreparadoRepository,
	recetaRepo repository.RecetaRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	return a.r.RunPedido(ctx, func(
		ingRepo repository.IngredienteRepository,
		prepRepo repository.ProductoPreparadoRepository,
		recetaRepo repository.RecetaRepository,
		movRepo repository.MovimientoRepository,
		_ repository.PedidoRepository,
	) error {
		return fn(ingRepo, prepRepo, recetaRepo, movRepo)
	})
}

func (e *entorno) conMesa(id string, numero int) {
	e.mesas.filas[id] = entity.Mesa{ID: id, Numero: numero, Capacidad: 4, Estado: entity.MesaLibre}
}

func (e *entorno) conIngrediente(id, nombre, unidad string, stock float64) {
	e.ings.filas[id] = entity.Ingrediente{
		ID:          id,
		Nombre:      nombre,
		Unidad:      unidad,
		StockActual: decimal.NewFromFloat(stock),
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

func (e *entorno) conProductoGeneral(id, nombre string, precio float64) {
	e.prods.filas[id] = entity.Producto{
		ID:             id,
		Nombre:         nombre,
		Precio:         decimal.NewFromFloat(precio),
		TipoInventario: entity.TipoInventarioGeneral,
	}
}

func (e *entorno) conProductoPreparado(id, nombre string, precio float64, prepID string) {
	e.prods.filas[id] = entity.Producto{
		ID:                  id,
		Nombre:              nombre,
		Precio:              decimal.NewFromFloat(precio),
		TipoInventario:      entity.TipoInventarioPreparado,
		ProductoPreparadoID: &prepID,
	}
}

func (e *entorno) conRecetaLinea(productoID, ingredienteID string, cantidad float64) {
	e.recetas.lineas = append(e.recetas.lineas, entity.RecetaLinea{
		ProductoID:    productoID,
		IngredienteID: ingredienteID,
		Cantidad:      decimal.NewFromFloat(cantidad),
	})
}

func (e *entorno) conPedido(id, mesaID, estado string) {
	e.pedidos.pedidos[id] = entity.Pedido{
		ID:     id,
		MesaID: mesaID,
		Estado: estado,
	}
}

func (e *entorno) stockIngrediente(id string) decimal.Decimal {
	return e.ings.filas[id].StockActual
}

func (e *entorno) stockPreparado(id string) decimal.Decimal {
	return e.preps.filas[id].StockActual
}
