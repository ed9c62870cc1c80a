package model

// Cliente extends a Usuario for customer identities. The primary key is
// the document id; registration generates a temporary one (the account id
// zero-padded to 8 digits) until the client completes their profile.
type Cliente struct {
	DNICliente string  `gorm:"column:dnicliente;type:varchar(8);primaryKey"`
	IDUsuario  uint    `gorm:"column:idusuario;uniqueIndex;not null"`
	Nombre     string  `gorm:"column:nombre"`
	ApePaterno string  `gorm:"column:apepaterno"`
	ApeMaterno *string `gorm:"column:apematerno"`
	Correo     string  `gorm:"column:correo"`
	Telefono   *string `gorm:"column:telefono"`
	Direccion  *string `gorm:"column:direccion"`
}

func (Cliente) TableName() string { return "cliente" }
