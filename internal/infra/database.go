package infra

import (
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx. Callers run
// RunMigrations themselves so the schema is applied exactly once.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

// RunMigrations applies the schema. Shared with the integration tests so
// both paths create identical tables.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Usuario{},
		&model.Empleado{},
		&model.Rol{},
		&model.EmpleadoRol{},
		&model.Cliente{},
		&model.Vehiculo{},
		&model.LoteTicket{},
		&model.Ticket{},
		&model.AsignarOperario{},
		&model.TipoMantenimiento{},
		&model.CatalogoServicio{},
		&model.Mantenimiento{},
		&model.HorarioDisp{},
		&model.Rampa{},
		&model.DispRampa{},
		&model.DispOperario{},
	)
}
