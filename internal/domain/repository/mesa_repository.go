package repository

import "github.com/gardengates/comanda-api/internal/domain/entity"

// MesaRepository define el puerto de persistencia para mesas.
type MesaRepository interface {
	Create(m *entity.Mesa) error
	Update(m *entity.Mesa) error
	Delete(id string) (bool, error)
	GetByID(id string) (*entity.Mesa, error)
	List() ([]*entity.Mesa, error)
}
