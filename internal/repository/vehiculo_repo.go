package repository

import (
	"context"
	"errors"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"

	"gorm.io/gorm"
)

type VehiculoRepository interface {
	Create(ctx context.Context, v *model.Vehiculo) error
	FindByCod(ctx context.Context, cod string) (*model.Vehiculo, error)
	// ExistsPlaca reports whether a vehicle with that plate is already registered.
	ExistsPlaca(ctx context.Context, placa string) (bool, error)
	ListByCliente(ctx context.Context, dniCliente string) ([]model.Vehiculo, error)
	List(ctx context.Context, page, limit int) ([]model.Vehiculo, int64, error)
	Count(ctx context.Context) (int64, error)
}

type vehiculoRepo struct{ db *gorm.DB }

func NewVehiculoRepository(db *gorm.DB) VehiculoRepository { return &vehiculoRepo{db: db} }

func (r *vehiculoRepo) Create(ctx context.Context, v *model.Vehiculo) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehiculoRepo) FindByCod(ctx context.Context, cod string) (*model.Vehiculo, error) {
	var v model.Vehiculo
	err := r.db.WithContext(ctx).Where("codvehiculo = ?", cod).First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vehiculoRepo) ExistsPlaca(ctx context.Context, placa string) (bool, error) {
	var v model.Vehiculo
	err := r.db.WithContext(ctx).Where("placa = ?", placa).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *vehiculoRepo) ListByCliente(ctx context.Context, dniCliente string) ([]model.Vehiculo, error) {
	var vehiculos []model.Vehiculo
	err := r.db.WithContext(ctx).
		Where("dnicliente = ?", dniCliente).
		Order("codvehiculo").
		Find(&vehiculos).Error
	return vehiculos, err
}

func (r *vehiculoRepo) List(ctx context.Context, page, limit int) ([]model.Vehiculo, int64, error) {
	var vehiculos []model.Vehiculo
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Vehiculo{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Order("codvehiculo").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&vehiculos).Error
	return vehiculos, total, err
}

func (r *vehiculoRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Vehiculo{}).Count(&total).Error
	return total, err
}
