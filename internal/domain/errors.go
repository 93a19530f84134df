package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado         = errors.New("recurso no encontrado")
	ErrUsuarioNoEncontrado  = errors.New("usuario no encontrado")
	ErrEmailRegistrado      = errors.New("el email ya está registrado")
	ErrEntradaInvalida      = errors.New("entrada inválida")
	ErrNoAutorizado         = errors.New("no autorizado")
	ErrProhibido            = errors.New("acceso denegado")
	ErrSinReceta            = errors.New("el producto no tiene receta asociada")
	ErrSinProductoPreparado = errors.New("el producto no tiene producto preparado vinculado")
	ErrTransicionEstado     = errors.New("transición de estado no permitida")
	ErrConflictoConcurrente = errors.New("conflicto concurrente, reintente la operación")
)
