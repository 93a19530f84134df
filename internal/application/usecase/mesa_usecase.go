package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gardengates/comanda-api/internal/application/dto"
	"github.com/gardengates/comanda-api/internal/domain"
	"github.com/gardengates/comanda-api/internal/domain/entity"
	"github.com/gardengates/comanda-api/internal/domain/repository"
)

// MesaUseCase casos de uso CRUD para mesas del salón.
type MesaUseCase struct {
	repo repository.MesaRepository
}

// NewMesaUseCase construye el caso de uso.
func NewMesaUseCase(repo repository.MesaRepository) *MesaUseCase {
	return &MesaUseCase{repo: repo}
}

// Create crea una mesa; sin estado explícito nace libre.
func (uc *MesaUseCase) Create(in dto.MesaRequest) (*dto.MesaResponse, error) {
	if in.Numero <= 0 || in.Capacidad <= 0 {
		return nil, domain.ErrEntradaInvalida
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.MesaLibre
	}
	if !mesaEstadoConocido(estado) {
		return nil, domain.ErrEntradaInvalida
	}
	m := &entity.Mesa{
		ID:            uuid.New().String(),
		Numero:        in.Numero,
		Capacidad:     in.Capacidad,
		Estado:        estado,
		FechaCreacion: time.Now(),
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toMesaResponse(m), nil
}

// GetByID obtiene una mesa por ID.
func (uc *MesaUseCase) GetByID(id string) (*dto.MesaResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNoEncontrado
	}
	return toMesaResponse(m), nil
}

// Update actualiza la mesa (número, capacidad o estado).
func (uc *MesaUseCase) Update(id string, in dto.MesaRequest) (*dto.MesaResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNoEncontrado
	}
	if in.Numero > 0 {
		m.Numero = in.Numero
	}
	if in.Capacidad > 0 {
		m.Capacidad = in.Capacidad
	}
	if in.Estado != "" {
		if !mesaEstadoConocido(in.Estado) {
			return nil, domain.ErrEntradaInvalida
		}
		m.Estado = in.Estado
	}
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return toMesaResponse(m), nil
}

// Delete elimina la mesa.
func (uc *MesaUseCase) Delete(id string) error {
	ok, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNoEncontrado
	}
	return nil
}

// List lista todas las mesas.
func (uc *MesaUseCase) List() ([]*dto.MesaResponse, error) {
	mesas, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MesaResponse, 0, len(mesas))
	for _, m := range mesas {
		out = append(out, toMesaResponse(m))
	}
	return out, nil
}

func mesaEstadoConocido(estado string) bool {
	switch estado {
	case entity.MesaLibre, entity.MesaOcupada, entity.MesaReservada:
		return true
	}
	return false
}

func toMesaResponse(m *entity.Mesa) *dto.MesaResponse {
	return &dto.MesaResponse{
		ID:        m.ID,
		Numero:    m.Numero,
		Capacidad: m.Capacidad,
		Estado:    m.Estado,
	}
}
