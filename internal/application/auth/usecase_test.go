package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-ventas/internal/application/auth"
	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthUC() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:   testSecret,
		ExpHours: 24,
		Issuer:   "crm-ventas",
	})
	return uc, repo
}

func TestRegisterYLogin_FlujoCompleto(t *testing.T) {
	uc, repo := newAuthUC()
	ctx := context.Background()

	user, err := uc.Register(ctx, dto.RegisterRequest{
		Email:    "ana@empresa.com",
		Password: "clave-segura-123",
		Name:     "Ana",
		LastName: "Ruiz",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ana@empresa.com", user.Email)

	// El hash persistido nunca es el password en claro.
	stored := repo.byEmail["ana@empresa.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave-segura-123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)

	out, err := uc.Login(ctx, dto.LoginRequest{
		Email:    "ana@empresa.com",
		Password: "clave-segura-123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, user.ID, out.User.ID)

	// El token transporta solo el id: debe resolverse de vuelta al usuario.
	subject, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject)
}

func TestRegister_EmailDuplicado_RetornaError(t *testing.T) {
	uc, _ := newAuthUC()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{
		Email: "ana@empresa.com", Password: "clave-segura-123", Name: "Ana", LastName: "Ruiz",
	})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{
		Email: "ana@empresa.com", Password: "otra-clave-456", Name: "Otra", LastName: "Ana",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Credenciales malas devuelven siempre Unauthorized, sin distinguir si el
// email existe o el password está mal.
func TestLogin_CredencialesInvalidas_RetornaUnauthorized(t *testing.T) {
	uc, _ := newAuthUC()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{
		Email: "ana@empresa.com", Password: "clave-segura-123", Name: "Ana", LastName: "Ruiz",
	})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@empresa.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@empresa.com", Password: "clave-segura-123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCurrentUser(t *testing.T) {
	uc, _ := newAuthUC()
	ctx := context.Background()

	user, err := uc.Register(ctx, dto.RegisterRequest{
		Email: "ana@empresa.com", Password: "clave-segura-123", Name: "Ana", LastName: "Ruiz",
	})
	require.NoError(t, err)

	got, err := uc.CurrentUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = uc.CurrentUser(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
