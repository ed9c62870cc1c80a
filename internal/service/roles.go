package service

import (
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"
)

// TipoIdentidad is the kind of an authenticated account: a customer or
// a staff member. An account is exactly one of the two; the employee
// record decides which.
type TipoIdentidad int

const (
	IdentidadCliente TipoIdentidad = iota
	IdentidadTrabajador
)

// Identidad is the tagged variant used for authorization decisions,
// replacing repeated nil-checks on the employee association.
type Identidad struct {
	Tipo  TipoIdentidad
	Roles []string
}

// NuevaIdentidad classifies an account by its employee record (nil means
// the account is a client).
func NuevaIdentidad(empleado *model.Empleado) Identidad {
	if empleado == nil {
		return Identidad{Tipo: IdentidadCliente}
	}
	roles := make([]string, 0, len(empleado.Roles))
	for _, r := range empleado.Roles {
		roles = append(roles, r.NombreRol)
	}
	return Identidad{Tipo: IdentidadTrabajador, Roles: roles}
}

// Role selection for multi-role employees is deterministic: the highest
// priority wins regardless of the order rows come back from the store.
var prioridadRol = map[string]int{
	model.RolAdministrador: 3,
	model.RolSupervisor:    2,
	model.RolOperario:      1,
}

// RolPrincipal resolves the single authorization role of an identity.
// A client is always CLIENTE. An employee with no role rows is an
// authorization failure, not a silent fallback.
func (i Identidad) RolPrincipal() (string, error) {
	if i.Tipo == IdentidadCliente {
		return model.RolCliente, nil
	}
	mejor := ""
	for _, r := range i.Roles {
		if prioridadRol[r] > prioridadRol[mejor] {
			mejor = r
		}
	}
	if mejor == "" {
		return "", ErrTrabajadorSinRol
	}
	return mejor, nil
}

// ResolverRol validates the login-type claim against the actual identity
// kind and returns the resolved role. An employee may not log in as a
// client, and vice versa.
func ResolverRol(i Identidad, claimedUserType string) (string, error) {
	switch claimedUserType {
	case "TRABAJADOR":
		if i.Tipo != IdentidadTrabajador {
			return "", ErrSinAccesoTrabajador
		}
		return i.RolPrincipal()
	default: // CLIENTE
		if i.Tipo == IdentidadTrabajador {
			return "", ErrSinAccesoCliente
		}
		return model.RolCliente, nil
	}
}
