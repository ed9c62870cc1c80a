package model

import "time"

// Ticket estado codes. Stored as integers, rendered as names at the API edge.
const (
	TicketPendiente  = 1
	TicketEnProceso  = 2
	TicketCompletado = 3
	TicketCancelado  = 4
)

// NombreEstadoTicket maps an estado code to its display name.
func NombreEstadoTicket(estado int) string {
	switch estado {
	case TicketPendiente:
		return "Pendiente"
	case TicketEnProceso:
		return "En Proceso"
	case TicketCompletado:
		return "Completado"
	case TicketCancelado:
		return "Cancelado"
	default:
		return "Desconocido"
	}
}

// Ticket is a client-initiated service request. Lot and supervisor are
// nullable: the diagnostic intake flow tolerates their absence, the
// corrective and preventive flows do not (see service.PoliticaAsignacion).
type Ticket struct {
	CodTicket       string    `gorm:"column:codticket;type:varchar(8);primaryKey"`
	Fecha           time.Time `gorm:"column:fecha;type:date;not null"`
	HoraIniEstimada *string   `gorm:"column:horainiestimada;type:time"`
	HoraFinEstimada *string   `gorm:"column:horafinestimada;type:time"`
	Estado          int       `gorm:"column:estado;not null;default:1"`
	DNICliente      string    `gorm:"column:dnicliente;index;not null"`
	CodVehiculo     string    `gorm:"column:codvehiculo;not null"`
	CodLoteTicket   *string   `gorm:"column:codloteticket"`
	IDSupervisor    *uint     `gorm:"column:idsupervisor;index"`
	CreatedAt       time.Time
}

func (Ticket) TableName() string { return "ticket" }

// LoteTicket is a time-boxed batch: tickets created inside its window
// carry its code.
type LoteTicket struct {
	CodLoteTicket    string    `gorm:"column:codloteticket;type:varchar(8);primaryKey"`
	FechaGeneracion  time.Time `gorm:"column:fechageneracion;type:date;not null"`
	FechaVencimiento time.Time `gorm:"column:fechavencimiento;type:date;not null"`
}

func (LoteTicket) TableName() string { return "loteticket" }

// AsignarOperario links a ticket to the operator working it. At most one
// per ticket in normal flow.
type AsignarOperario struct {
	CodOperarioXTicket string `gorm:"column:codoperarioxticket;type:varchar(8);primaryKey"`
	IDEmpleado         uint   `gorm:"column:idempleado;index;not null"`
	CodTicket          string `gorm:"column:codticket;index;not null"`
}

func (AsignarOperario) TableName() string { return "asignaroperario" }
