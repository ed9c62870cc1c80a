package repository

import (
	"context"
	"errors"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"

	"gorm.io/gorm"
)

type EmpleadoRepository interface {
	// FindByUsuario returns (nil, nil) when the account has no employee
	// record: absence is a normal outcome, not an error.
	FindByUsuario(ctx context.Context, idUsuario uint) (*model.Empleado, error)
	FindByID(ctx context.Context, id uint) (*model.Empleado, error)
	// ListSupervisores returns every employee holding the SUPERVISOR role,
	// ordered by idempleado ascending (the round-robin tie-break order).
	ListSupervisores(ctx context.Context) ([]model.Empleado, error)
	Count(ctx context.Context) (int64, error)
}

type empleadoRepo struct{ db *gorm.DB }

func NewEmpleadoRepository(db *gorm.DB) EmpleadoRepository { return &empleadoRepo{db: db} }

func (r *empleadoRepo) FindByUsuario(ctx context.Context, idUsuario uint) (*model.Empleado, error) {
	var e model.Empleado
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("idusuario = ?", idUsuario).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empleadoRepo) FindByID(ctx context.Context, id uint) (*model.Empleado, error) {
	var e model.Empleado
	err := r.db.WithContext(ctx).Preload("Roles").First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empleadoRepo) ListSupervisores(ctx context.Context) ([]model.Empleado, error) {
	var empleados []model.Empleado
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN empleadorol er ON er.idempleado = empleado.idempleado").
		Where("er.idrol = ?", model.IDRolSupervisor).
		Order("empleado.idempleado ASC").
		Find(&empleados).Error
	return empleados, err
}

func (r *empleadoRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Empleado{}).Count(&total).Error
	return total, err
}
