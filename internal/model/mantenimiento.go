package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoMantenimiento names used by the catalog lookups.
const (
	TipoPreventivo = "Preventivo"
	TipoCorrectivo = "Correctivo"
)

type TipoMantenimiento struct {
	IDTipoMantenimiento uint   `gorm:"column:idtipomantenimiento;primaryKey"`
	NombreTipo          string `gorm:"column:nombretipo;uniqueIndex;not null"`
}

func (TipoMantenimiento) TableName() string { return "tipomantenimiento" }

// CatalogoServicio is one entry of the service catalog (a corrective
// repair or the preventive service), with its fare and expected duration.
type CatalogoServicio struct {
	CodServicio         string          `gorm:"column:codservicio;type:varchar(8);primaryKey"`
	Descripcion         string          `gorm:"column:descripcion;not null"`
	Tarifa              decimal.Decimal `gorm:"column:tarifa;type:decimal(10,2)"`
	Duracion            *int            `gorm:"column:duracion"` // minutes
	Marca               *string         `gorm:"column:marca"`
	Modelo              *string         `gorm:"column:modelo"`
	IDTipoMantenimiento uint            `gorm:"column:idtipomantenimiento;index;not null"`

	TipoMantenimiento TipoMantenimiento `gorm:"foreignKey:IDTipoMantenimiento;references:IDTipoMantenimiento"`
}

func (CatalogoServicio) TableName() string { return "catalogoservicios" }

// Mantenimiento records the service work attached to a ticket.
type Mantenimiento struct {
	CodMantenimiento string           `gorm:"column:codmantenimiento;type:varchar(8);primaryKey"`
	CodTicket        string           `gorm:"column:codticket;index;not null"`
	CodServicio      string           `gorm:"column:codservicio;not null"`
	FechaRealiza     time.Time        `gorm:"column:fecharealiza;type:date"`
	Monto            *decimal.Decimal `gorm:"column:monto;type:decimal(10,2)"`
	Observaciones    *string          `gorm:"column:observaciones"`
	Estado           int              `gorm:"column:estado;not null;default:1"`
}

func (Mantenimiento) TableName() string { return "mantenimientos" }
