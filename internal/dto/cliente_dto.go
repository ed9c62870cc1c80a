package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarVehiculoRequest struct {
	Placa  string `json:"placa"  validate:"required,min=6,max=10"`
	Marca  string `json:"marca"  validate:"required,max=50"`
	Modelo string `json:"modelo" validate:"required,max=50"`
	Anio   *int   `json:"anio"   validate:"omitempty,gte=1950,lte=2100"`
}

type ActualizarPerfilRequest struct {
	Nombre     string  `json:"nombre"     validate:"omitempty,min=2,max=100"`
	ApePaterno string  `json:"apePaterno" validate:"omitempty,min=2,max=100"`
	ApeMaterno *string `json:"apeMaterno" validate:"omitempty,max=100"`
	Telefono   *string `json:"telefono"   validate:"omitempty,max=15"`
	Direccion  *string `json:"direccion"  validate:"omitempty,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClientePerfil struct {
	DNICliente string  `json:"dnicliente"`
	Nombre     string  `json:"nombre"`
	ApePaterno string  `json:"apepaterno"`
	ApeMaterno *string `json:"apematerno"`
	Correo     string  `json:"correo"`
	Telefono   *string `json:"telefono"`
	Direccion  *string `json:"direccion"`
}

type ClientePerfilResponse struct {
	Success bool          `json:"success"`
	Cliente ClientePerfil `json:"cliente"`
}

type VehiculoItem struct {
	CodVehiculo string `json:"codvehiculo"`
	Placa       string `json:"placa"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	Anio        *int   `json:"anio"`
}

type VehiculosResponse struct {
	Success   bool           `json:"success"`
	Total     int            `json:"total"`
	Vehiculos []VehiculoItem `json:"vehiculos"`
}

type VehiculoCreadoResponse struct {
	Success  bool         `json:"success"`
	Message  string       `json:"message"`
	Vehiculo VehiculoItem `json:"vehiculo"`
}

// MantenimientoItem is one row of the client's maintenance history
// (corrective or preventive, selected by route).
type MantenimientoItem struct {
	CodMantenimiento string           `json:"codmantenimiento"`
	Fecha            string           `json:"fecha"`
	Estado           string           `json:"estado"`
	Monto            *decimal.Decimal `json:"monto"`
	Servicio         string           `json:"servicio"`
	Vehiculo         string           `json:"vehiculo"`
}

type MantenimientosResponse struct {
	Success        bool                `json:"success"`
	Total          int                 `json:"total"`
	Mantenimientos []MantenimientoItem `json:"mantenimientos"`
}

type TicketItem struct {
	CodTicket  string  `json:"codticket"`
	Fecha      string  `json:"fecha"`
	HoraInicio *string `json:"horainicio"`
	HoraFin    *string `json:"horafin"`
	Estado     string  `json:"estado"`
	Vehiculo   string  `json:"vehiculo"`
}

type TicketsResponse struct {
	Success bool         `json:"success"`
	Total   int          `json:"total"`
	Tickets []TicketItem `json:"tickets"`
}
