package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Almacen-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

var testJWT = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "almacen-api-test",
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegisterUser
// ──────────────────────────────────────────────────────────────────────────────

// El primer usuario del sistema se registra como admin aunque pida staff.
func TestRegisterUser_PrimerUsuarioEsAdmin(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    "Admin@Tienda.com",
		Password: "contraseña-larga",
		Role:     entity.RoleStaff,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, out.Role, "el primer usuario administra el sistema")
	assert.Equal(t, "admin@tienda.com", out.Email, "el email se normaliza a minúsculas")
	assert.Equal(t, "active", out.Status)
}

// Los registros siguientes respetan el rol pedido, con staff por defecto.
func TestRegisterUser_RolPorDefectoStaff(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "admin@tienda.com", Password: "contraseña-larga",
	})
	require.NoError(t, err)

	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "cajero@tienda.com", Password: "contraseña-larga",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, out.Role)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "admin@tienda.com", Password: "contraseña-larga",
	})
	require.NoError(t, err)

	_, err = uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "ADMIN@tienda.com", Password: "otra-contraseña",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists, "la unicidad del email es case-insensitive")
}

func TestRegisterUser_EntradasInvalidas(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "  ", Password: "contraseña-larga",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "email vacío")

	_, err = uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "a@b.com", Password: "corta",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "password menor a 8 caracteres")

	_, err = uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "a@b.com", Password: "contraseña-larga", Role: "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol desconocido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_TokenConClaims(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	registered, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "admin@tienda.com", Password: "contraseña-larga",
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@tienda.com", Password: "contraseña-larga",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, registered.ID, out.User.ID)

	userID, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err, "el token emitido debe ser verificable con el mismo secret")
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "admin@tienda.com", Password: "contraseña-larga",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@tienda.com", Password: "otra-cosa",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "password incorrecta no debe revelar más detalle")
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "nadie@tienda.com", Password: "lo-que-sea",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivoBloqueado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "admin@tienda.com", Password: "contraseña-larga",
	})
	require.NoError(t, err)
	repo.users["admin@tienda.com"].Status = "inactive"

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@tienda.com", Password: "contraseña-larga",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden, "usuario inactivo no debe poder iniciar sesión")
}
