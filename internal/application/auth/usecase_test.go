package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/pkg/jwt"
)

type memUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUC() (*auth.UseCase, *memUserRepo) {
	repo := &memUserRepo{byEmail: make(map[string]*entity.User)}
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "almacen-api-test",
	})
	return uc, repo
}

func TestRegister_EmiteTokenConRol(t *testing.T) {
	uc, repo := newAuthUC()

	token, err := uc.Register("ana@almacen.co", "contraseña-larga", "Ana", "")
	require.NoError(t, err)

	_, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleWarehouse, role, "el rol por defecto es bodeguero")

	user := repo.byEmail["ana@almacen.co"]
	require.NotNil(t, user)
	assert.NotEqual(t, "contraseña-larga", user.PasswordHash,
		"la contraseña nunca se guarda en claro")
}

func TestRegister_Validaciones(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Register("", "contraseña-larga", "Ana", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "email vacío")

	_, err = uc.Register("ana@almacen.co", "corta", "Ana", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "contraseña de menos de 8 caracteres")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.Register("ana@almacen.co", "contraseña-larga", "Ana", "")
	require.NoError(t, err)

	_, err = uc.Register("ana@almacen.co", "otra-contraseña", "Ana B", "")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.Register("ana@almacen.co", "contraseña-larga", "Ana", entity.RoleAdmin)
	require.NoError(t, err)

	token, role, err := uc.Login("ana@almacen.co", "contraseña-larga")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, entity.RoleAdmin, role)

	_, _, err = uc.Login("ana@almacen.co", "contraseña-equivocada")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, _, err = uc.Login("nadie@almacen.co", "contraseña-larga")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
