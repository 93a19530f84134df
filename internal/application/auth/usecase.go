package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gardengates/comanda-api/internal/application/dto"
	"github.com/gardengates/comanda-api/internal/domain"
	"github.com/gardengates/comanda-api/internal/domain/entity"
	"github.com/gardengates/comanda-api/internal/domain/repository"
	"github.com/gardengates/comanda-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Registrar crea un usuario: hashea la contraseña con bcrypt y persiste.
// Devuelve ErrEmailRegistrado si el email ya existe.
func (uc *AuthUseCase) Registrar(in dto.RegistroRequest) (*dto.UsuarioResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrEntradaInvalida
	}
	existente, _ := uc.usuarioRepo.FindByEmail(in.Email)
	if existente != nil {
		return nil, domain.ErrEmailRegistrado
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolMozo
	}
	switch rol {
	case entity.RolAdmin, entity.RolMozo, entity.RolCocina:
	default:
		return nil, domain.ErrEntradaInvalida
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	nombre := in.Nombre
	if nombre == "" {
		nombre = in.Email
	}
	usuario := &entity.Usuario{
		ID:            uuid.New().String(),
		Nombre:        nombre,
		Email:         in.Email,
		Contrasena:    string(hash),
		Rol:           rol,
		Activo:        true,
		FechaCreacion: time.Now(),
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Login verifica email/contraseña, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Contrasena), []byte(in.Password)); err != nil {
		return nil, domain.ErrNoAutorizado
	}
	if !usuario.Activo {
		return nil, domain.ErrProhibido
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Nombre, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *toUsuarioResponse(usuario),
	}, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:            u.ID,
		Nombre:        u.Nombre,
		Email:         u.Email,
		Rol:           u.Rol,
		FechaCreacion: u.FechaCreacion,
	}
}
