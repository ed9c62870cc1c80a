package model

import "time"

// HorarioDisp is a published availability window clients can book for
// preventive service. Ramp and operator are attached through the join
// tables below; both links are optional.
type HorarioDisp struct {
	CodHorarioDisp string    `gorm:"column:codhorariodisp;type:varchar(8);primaryKey"`
	Fecha          time.Time `gorm:"column:fecha;type:date;not null"`
	HoraInicio     string    `gorm:"column:horainicio;type:time;not null"`
	HoraFin        string    `gorm:"column:horafin;type:time;not null"`
}

func (HorarioDisp) TableName() string { return "horariodisp" }

type Rampa struct {
	CodRampa    string `gorm:"column:codrampa;type:varchar(8);primaryKey"`
	Descripcion string `gorm:"column:descripcion"`
}

func (Rampa) TableName() string { return "rampa" }

type DispRampa struct {
	CodHorarioDisp string `gorm:"column:codhorariodisp;primaryKey"`
	CodRampa       string `gorm:"column:codrampa;primaryKey"`
}

func (DispRampa) TableName() string { return "disprampa" }

type DispOperario struct {
	CodHorarioDisp string `gorm:"column:codhorariodisp;primaryKey"`
	IDEmpleado     uint   `gorm:"column:idempleado;primaryKey"`
}

func (DispOperario) TableName() string { return "dispoperario" }
