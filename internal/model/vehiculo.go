package model

type Vehiculo struct {
	CodVehiculo string `gorm:"column:codvehiculo;type:varchar(8);primaryKey"`
	Placa       string `gorm:"column:placa;uniqueIndex;not null"`
	Marca       string `gorm:"column:marca"`
	Modelo      string `gorm:"column:modelo"`
	Anio        *int   `gorm:"column:anio"`
	DNICliente  string `gorm:"column:dnicliente;index;not null"`
}

func (Vehiculo) TableName() string { return "vehiculo" }
