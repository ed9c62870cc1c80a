package model

// Role names. CLIENTE is not a Rol row: it is the implied role of any
// account without an Empleado record.
const (
	RolCliente       = "CLIENTE"
	RolOperario      = "OPERARIO"
	RolSupervisor    = "SUPERVISOR"
	RolAdministrador = "ADMINISTRADOR"
)

// IDRolSupervisor is fixed by the seed: the supervisor-assignment query
// filters empleadorol by this id.
const IDRolSupervisor = 2

type Rol struct {
	IDRol     uint   `gorm:"column:idrol;primaryKey"`
	NombreRol string `gorm:"column:nombrerol;uniqueIndex;not null"`
}

func (Rol) TableName() string { return "rol" }

// EmpleadoRol is the join table between Empleado and Rol. It is declared
// explicitly so the seed tool and AutoMigrate control its shape.
type EmpleadoRol struct {
	IDEmpleado uint `gorm:"column:idempleado;primaryKey"`
	IDRol      uint `gorm:"column:idrol;primaryKey"`
}

func (EmpleadoRol) TableName() string { return "empleadorol" }
