package service_test

import (
	"testing"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func empleadoConRoles(roles ...string) *model.Empleado {
	e := &model.Empleado{IDEmpleado: 1, IDUsuario: 1}
	for _, r := range roles {
		e.Roles = append(e.Roles, model.Rol{NombreRol: r})
	}
	return e
}

func TestNuevaIdentidad_NilEmpleadoIsCliente(t *testing.T) {
	i := service.NuevaIdentidad(nil)
	assert.Equal(t, service.IdentidadCliente, i.Tipo)

	rol, err := i.RolPrincipal()
	require.NoError(t, err)
	assert.Equal(t, model.RolCliente, rol)
}

func TestRolPrincipal_OrderIndependent(t *testing.T) {
	// The same role set must resolve identically no matter how the rows
	// come back from the store.
	ordenes := [][]string{
		{model.RolOperario, model.RolSupervisor, model.RolAdministrador},
		{model.RolAdministrador, model.RolOperario, model.RolSupervisor},
		{model.RolSupervisor, model.RolAdministrador, model.RolOperario},
	}
	for _, roles := range ordenes {
		i := service.NuevaIdentidad(empleadoConRoles(roles...))
		rol, err := i.RolPrincipal()
		require.NoError(t, err)
		assert.Equal(t, model.RolAdministrador, rol)
	}
}

func TestRolPrincipal_SupervisorBeatsOperario(t *testing.T) {
	i := service.NuevaIdentidad(empleadoConRoles(model.RolOperario, model.RolSupervisor))
	rol, err := i.RolPrincipal()
	require.NoError(t, err)
	assert.Equal(t, model.RolSupervisor, rol)
}

func TestRolPrincipal_SinRoles(t *testing.T) {
	i := service.NuevaIdentidad(empleadoConRoles())
	_, err := i.RolPrincipal()
	assert.ErrorIs(t, err, service.ErrTrabajadorSinRol)
}

func TestRolPrincipal_UnknownRoleOnly(t *testing.T) {
	// A role name outside the known set carries no priority and must not
	// grant access.
	i := service.NuevaIdentidad(empleadoConRoles("GERENTE"))
	_, err := i.RolPrincipal()
	assert.ErrorIs(t, err, service.ErrTrabajadorSinRol)
}

func TestResolverRol_CrossTypeRejection(t *testing.T) {
	cliente := service.NuevaIdentidad(nil)
	trabajador := service.NuevaIdentidad(empleadoConRoles(model.RolOperario))

	_, err := service.ResolverRol(cliente, "TRABAJADOR")
	assert.ErrorIs(t, err, service.ErrSinAccesoTrabajador)

	_, err = service.ResolverRol(trabajador, "CLIENTE")
	assert.ErrorIs(t, err, service.ErrSinAccesoCliente)

	rol, err := service.ResolverRol(trabajador, "TRABAJADOR")
	require.NoError(t, err)
	assert.Equal(t, model.RolOperario, rol)

	rol, err = service.ResolverRol(cliente, "CLIENTE")
	require.NoError(t, err)
	assert.Equal(t, model.RolCliente, rol)
}
