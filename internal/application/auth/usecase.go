package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/Almacen-api/pkg/jwt"
)

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase registro y login de usuarios del back-office.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario con la contraseña hasheada (bcrypt) y devuelve un token.
func (uc *UseCase) Register(email, password, name, role string) (token string, err error) {
	if email == "" || len(password) < 8 {
		return "", domain.ErrInvalidInput
	}
	if role == "" {
		role = entity.RoleWarehouse
	}
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return "", err
	}
	return pkgjwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

// Login valida credenciales y devuelve el token y el rol.
func (uc *UseCase) Login(email, password string) (token, role string, err error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", "", domain.ErrUnauthorized
	}
	token, err = pkgjwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", "", err
	}
	return token, user.Role, nil
}
