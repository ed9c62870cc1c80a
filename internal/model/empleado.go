package model

// Empleado extends a Usuario for TRABAJADOR identities (staff).
// Roles is a many-to-many through empleadorol: an employee may hold
// zero, one, or several roles.
type Empleado struct {
	IDEmpleado   uint    `gorm:"column:idempleado;primaryKey"`
	IDUsuario    uint    `gorm:"column:idusuario;uniqueIndex;not null"`
	DNI          string  `gorm:"column:dni;type:varchar(8)"`
	Nombres      string  `gorm:"column:nombres"`
	ApePaterno   string  `gorm:"column:apepaterno"`
	ApeMaterno   *string `gorm:"column:apematerno"`
	Telefono     *string `gorm:"column:telefono"`
	Especialidad *string `gorm:"column:especialidad"`

	Roles []Rol `gorm:"many2many:empleadorol;foreignKey:IDEmpleado;joinForeignKey:IDEmpleado;References:IDRol;joinReferences:IDRol"`
}

func (Empleado) TableName() string { return "empleado" }

// NombreCompleto joins the personal name fields the way the UI shows them.
func (e *Empleado) NombreCompleto() string {
	nombre := e.Nombres
	if e.ApePaterno != "" {
		nombre += " " + e.ApePaterno
	}
	if e.ApeMaterno != nil && *e.ApeMaterno != "" {
		nombre += " " + *e.ApeMaterno
	}
	return nombre
}
