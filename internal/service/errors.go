package service

import "errors"

// Sentinel errors surfaced to handlers. The message text is what the
// client sees; the handler layer picks the HTTP status.
var (
	// Auth — 409
	ErrCorreoRegistrado = errors.New("El email ya está registrado")

	// Auth — 401
	ErrCredenciales        = errors.New("Email o contraseña incorrectos")
	ErrCuentaDesactivada   = errors.New("La cuenta ha sido desactivada")
	ErrSinAccesoTrabajador = errors.New("Este usuario no tiene acceso como trabajador")
	ErrSinAccesoCliente    = errors.New("Este usuario no tiene acceso como cliente")
	ErrTrabajadorSinRol    = errors.New("Trabajador sin rol asignado")
	ErrUsuarioNoEncontrado = errors.New("Usuario no encontrado")
	ErrRefreshInvalido     = errors.New("Refresh token inválido")
	ErrPasswordActual      = errors.New("Contraseña actual incorrecta")

	// Intake — 400
	ErrSinLoteActivo         = errors.New("No hay lote activo disponible")
	ErrSinSupervisor         = errors.New("No hay supervisor disponible")
	ErrHorarioNoDisponible   = errors.New("Horario no disponible")
	ErrSinServicioPreventivo = errors.New("No hay servicios preventivos disponibles")
	ErrServicioNoEncontrado  = errors.New("Servicio no encontrado")
	ErrClienteNoEncontrado   = errors.New("Cliente no encontrado")
	ErrEmpleadoNoEncontrado  = errors.New("Empleado no encontrado")

	// Vehicles — 409
	ErrPlacaRegistrada = errors.New("La placa ya está registrada")
)
