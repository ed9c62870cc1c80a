package service_test

import (
	"context"
	"testing"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/config"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/dto"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestCfg() *config.Config {
	return &config.Config{
		JWTSecret:          "test_access_secret_32_chars_min!",
		JWTRefreshSecret:   "test_refresh_secret_32_chars_ok!",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
}

type authFixture struct {
	usuarios  *stubUsuarioRepo
	clientes  *stubClienteRepo
	empleados *stubEmpleadoRepo
	svc       service.AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		usuarios:  newStubUsuarioRepo(),
		clientes:  newStubClienteRepo(),
		empleados: newStubEmpleadoRepo(),
	}
	f.svc = service.NewAuthService(f.usuarios, f.clientes, f.empleados, newTestCfg(), nil)
	return f
}

func (f *authFixture) seedUsuario(t *testing.T, correo, password string) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	require.NoError(t, err)
	u := &model.Usuario{
		Username:     correo,
		Correo:       correo,
		PasswordHash: string(hash),
		Estado:       model.EstadoActivo,
	}
	require.NoError(t, f.usuarios.Create(context.Background(), nil, u))
	return u
}

// seedTrabajador attaches an employee record with the given roles to an account.
func (f *authFixture) seedTrabajador(u *model.Usuario, roles ...string) *model.Empleado {
	e := &model.Empleado{
		IDEmpleado: u.IDUsuario + 100,
		IDUsuario:  u.IDUsuario,
		Nombres:    "Empleado",
		ApePaterno: "Prueba",
	}
	for _, r := range roles {
		e.Roles = append(e.Roles, model.Rol{NombreRol: r})
	}
	f.empleados.empleados[u.IDUsuario] = e
	return e
}

// ── Register ──────────────────────────────────────────────────────────────────

func TestRegister_CreatesClienteWithPaddedDNI(t *testing.T) {
	f := newAuthFixture(t)

	resp, err := f.svc.Register(context.Background(), dto.RegisterRequest{
		Nombre:     "Ana",
		ApePaterno: "Quispe",
		Correo:     "ana.quispe@example.com",
		Password:   "secreta1",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "ana.quispe", resp.User.Username)
	assert.Equal(t, model.RolCliente, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	cliente, err := f.clientes.FindByUsuario(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "00000001", cliente.DNICliente)
	assert.Equal(t, "Ana", cliente.Nombre)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUsuario(t, "dup@example.com", "secreta1")

	_, err := f.svc.Register(context.Background(), dto.RegisterRequest{
		Nombre:     "Otro",
		ApePaterno: "Cliente",
		Correo:     "dup@example.com",
		Password:   "secreta1",
	})
	assert.ErrorIs(t, err, service.ErrCorreoRegistrado)
}

func TestRegister_PasswordIsHashed(t *testing.T) {
	f := newAuthFixture(t)

	resp, err := f.svc.Register(context.Background(), dto.RegisterRequest{
		Nombre:     "Ana",
		ApePaterno: "Quispe",
		Correo:     "hash@example.com",
		Password:   "secreta1",
	})
	require.NoError(t, err)

	u, err := f.usuarios.FindByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secreta1", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secreta1")))
}

// ── Login ─────────────────────────────────────────────────────────────────────

func TestLogin_ClienteSuccess(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUsuario(t, "cliente@example.com", "secreta1")

	resp, err := f.svc.Login(context.Background(), dto.LoginRequest{
		Email:    "cliente@example.com",
		Password: "secreta1",
		UserType: dto.UserTypeCliente,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RolCliente, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUsuario(t, "cliente@example.com", "secreta1")

	_, err := f.svc.Login(context.Background(), dto.LoginRequest{
		Email:    "cliente@example.com",
		Password: "equivocada",
		UserType: dto.UserTypeCliente,
	})
	assert.ErrorIs(t, err, service.ErrCredenciales)
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@example.com",
		Password: "secreta1",
		UserType: dto.UserTypeCliente,
	})
	assert.ErrorIs(t, err, service.ErrCredenciales)
}

func TestLogin_InactiveAccount(t *testing.T) {
	f := newAuthFixture(t)
	u := f.seedUsuario(t, "baja@example.com", "secreta1")
	u.Estado = model.EstadoInactivo

	_, err := f.svc.Login(context.Background(), dto.LoginRequest{
		Email:    "baja@example.com",
		Password: "secreta1",
		UserType: dto.UserTypeCliente,
	})
	assert.ErrorIs(t, err, service.ErrCuentaDesactivada)
}

func TestLogin_ClienteClaimingTrabajador(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUsuario(t, "cliente@example.com", "secreta1")

	_, err := f.svc.Login(context.Background(), dto.LoginRequest{
		Email:    "cliente@example.com",
		Password: "secreta1",
		UserType: dto.UserTypeTrabajador,
	})
	assert.ErrorIs(t, err, service.ErrSinAccesoTrabajador)
}

func TestLogin_TrabajadorClaimingCliente(t *testing.T) {
	f := newAuthFixture(t)
	u := f.seedUsuario(t, "operario@example.com", "secreta1")
	f.seedTrabajador(u, model.RolOperario)

	_, err := f.svc.Login(context.Background(), dto.LoginRequest{
		Email:    "operario@example.com",
		Password: "secreta1",
		UserType: dto.UserTypeCliente,
	})
	assert.ErrorIs(t, err, service.ErrSinAccesoCliente)
}

func TestLogin_TrabajadorSinRol(t *testing.T) {
	f := newAuthFixture(t)
	u := f.seedUsuario(t, "sinrol@example.com", "secreta1")
	f.seedTrabajador(u) // employee record, zero role rows

	_, err := f.svc.Login(context.Background(), dto.LoginRequest{
		Email:    "sinrol@example.com",
		Password: "secreta1",
		UserType: dto.UserTypeTrabajador,
	})
	assert.ErrorIs(t, err, service.ErrTrabajadorSinRol)
}

func TestLogin_MultiRolePicksHighestPriority(t *testing.T) {
	f := newAuthFixture(t)
	u := f.seedUsuario(t, "jefe@example.com", "secreta1")
	f.seedTrabajador(u, model.RolOperario, model.RolAdministrador, model.RolSupervisor)

	resp, err := f.svc.Login(context.Background(), dto.LoginRequest{
		Email:    "jefe@example.com",
		Password: "secreta1",
		UserType: dto.UserTypeTrabajador,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RolAdministrador, resp.User.Role)
}

// ── Refresh ───────────────────────────────────────────────────────────────────

func TestRefresh_RoundTrip(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUsuario(t, "cliente@example.com", "secreta1")

	login, err := f.svc.Login(context.Background(), dto.LoginRequest{
		Email:    "cliente@example.com",
		Password: "secreta1",
		UserType: dto.UserTypeCliente,
	})
	require.NoError(t, err)

	resp, err := f.svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	// Access and refresh tokens are signed with distinct secrets, so an
	// access token must not be accepted on the refresh endpoint.
	f := newAuthFixture(t)
	f.seedUsuario(t, "cliente@example.com", "secreta1")

	login, err := f.svc.Login(context.Background(), dto.LoginRequest{
		Email:    "cliente@example.com",
		Password: "secreta1",
		UserType: dto.UserTypeCliente,
	})
	require.NoError(t, err)

	_, err = f.svc.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, service.ErrRefreshInvalido)
}

func TestRefresh_Garbage(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.svc.Refresh(context.Background(), "this.is.garbage")
	assert.ErrorIs(t, err, service.ErrRefreshInvalido)
}

// ── Profile / ChangePassword ──────────────────────────────────────────────────

func TestGetProfile(t *testing.T) {
	f := newAuthFixture(t)
	u := f.seedUsuario(t, "cliente@example.com", "secreta1")

	resp, err := f.svc.GetProfile(context.Background(), u.IDUsuario)
	require.NoError(t, err)
	assert.Equal(t, u.Correo, resp.User.Email)
	assert.True(t, resp.User.Status)

	_, err = f.svc.GetProfile(context.Background(), 999)
	assert.ErrorIs(t, err, service.ErrUsuarioNoEncontrado)
}

func TestChangePassword(t *testing.T) {
	f := newAuthFixture(t)
	u := f.seedUsuario(t, "cliente@example.com", "secreta1")

	err := f.svc.ChangePassword(context.Background(), u.IDUsuario, dto.ChangePasswordRequest{
		OldPassword: "equivocada",
		NewPassword: "nueva123",
	})
	assert.ErrorIs(t, err, service.ErrPasswordActual)

	err = f.svc.ChangePassword(context.Background(), u.IDUsuario, dto.ChangePasswordRequest{
		OldPassword: "secreta1",
		NewPassword: "nueva123",
	})
	require.NoError(t, err)

	_, err = f.svc.Login(context.Background(), dto.LoginRequest{
		Email:    "cliente@example.com",
		Password: "nueva123",
		UserType: dto.UserTypeCliente,
	})
	assert.NoError(t, err)
}
