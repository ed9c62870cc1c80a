package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SolicitarDiagnosticoRequest struct {
	CodVehiculo string `json:"codvehiculo" validate:"required,max=8"`
	Fecha       string `json:"fecha"       validate:"required,datetime=2006-01-02"`
	HoraInicio  string `json:"horainicio"  validate:"required"`
	HoraFin     string `json:"horafin"     validate:"required"`
	IDEmpleado  *uint  `json:"idempleado"`
}

type SolicitarCorrectivoRequest struct {
	CodVehiculo string `json:"codvehiculo" validate:"required,max=8"`
	CodServicio string `json:"codservicio" validate:"required,max=8"`
	Fecha       string `json:"fecha"       validate:"required,datetime=2006-01-02"`
	HoraInicio  string `json:"horainicio"  validate:"required"`
	IDEmpleado  *uint  `json:"idempleado"`
}

type SolicitarPreventivoRequest struct {
	CodVehiculo    string `json:"codvehiculo"    validate:"required,max=8"`
	CodHorarioDisp string `json:"codhorariodisp" validate:"required,max=8"`
	Kilometraje    int    `json:"kilometraje"    validate:"required,gt=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// TicketCreado is the summary returned by the three intake flows.
type TicketCreado struct {
	CodTicket        string  `json:"codticket"`
	CodMantenimiento string  `json:"codmantenimiento,omitempty"`
	Fecha            string  `json:"fecha"`
	HoraInicio       string  `json:"horainicio,omitempty"`
	HoraFin          string  `json:"horafin,omitempty"`
	CodLoteTicket    *string `json:"codloteticket"`
	IDSupervisor     *uint   `json:"idsupervisor"`
	IDOperario       *uint   `json:"idoperario"`
	Estado           string  `json:"estado"`
	Kilometraje      int     `json:"kilometraje,omitempty"`
}

type TicketResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Ticket  TicketCreado `json:"ticket"`
}

type HorarioDisponible struct {
	CodHorarioDisp string          `json:"codhorariodisp"`
	Fecha          string          `json:"fecha"`
	HoraInicio     string          `json:"horainicio"`
	HoraFin        string          `json:"horafin"`
	Rampa          string          `json:"rampadescripcion"`
	Tarifa         decimal.Decimal `json:"tarifa"`
	IDEmpleado     *uint           `json:"idempleado"`
	Operario       string          `json:"operario"`
}

type HorariosResponse struct {
	Success   bool                `json:"success"`
	Schedules []HorarioDisponible `json:"schedules"`
}

type ServicioCatalogo struct {
	CodServicio string          `json:"codservicio"`
	Descripcion string          `json:"descripcion"`
	Tipo        string          `json:"tipomantenimiento"`
	Tarifa      decimal.Decimal `json:"tarifa"`
	Duracion    *int            `json:"duracion"`
	Marca       *string         `json:"marca"`
	Modelo      *string         `json:"modelo"`
}

type ServiciosResponse struct {
	Success   bool               `json:"success"`
	Total     int                `json:"total"`
	Servicios []ServicioCatalogo `json:"servicios"`
}

type OperarioDisponible struct {
	IDEmpleado     uint   `json:"idempleado"`
	Nombres        string `json:"nombres"`
	ApePaterno     string `json:"apepaterno"`
	Especialidad   string `json:"especialidad"`
	NombreCompleto string `json:"nombreCompleto"`
}

type OperarioDisponibleResponse struct {
	Success  bool                `json:"success"`
	Message  string              `json:"message,omitempty"`
	Operario *OperarioDisponible `json:"operario"`
}
