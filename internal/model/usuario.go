package model

import "time"

// Estado values for Usuario. Only "A" accounts may complete login.
const (
	EstadoActivo   = "A"
	EstadoInactivo = "I"
)

// Usuario is the root identity record: every Cliente and Empleado owns
// exactly one. Credentials live here; the personal data lives in the
// owning extension record.
type Usuario struct {
	IDUsuario    uint   `gorm:"column:idusuario;primaryKey"`
	Username     string `gorm:"column:username;uniqueIndex;not null"`
	Correo       string `gorm:"column:correo;uniqueIndex;not null"`
	PasswordHash string `gorm:"column:passwordhash;not null"`
	Estado       string `gorm:"column:estado;type:varchar(1);not null;default:A"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "usuario" }

func (u *Usuario) Activo() bool { return u.Estado == EstadoActivo }
