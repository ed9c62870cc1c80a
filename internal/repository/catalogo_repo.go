package repository

import (
	"context"
	"errors"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"

	"gorm.io/gorm"
)

type CatalogoRepository interface {
	FindByCod(ctx context.Context, cod string) (*model.CatalogoServicio, error)
	ListByTipo(ctx context.Context, nombreTipo string) ([]model.CatalogoServicio, error)
	// FindFirstByTipo returns any service of the named maintenance type,
	// or (nil, nil) when the catalog has none.
	FindFirstByTipo(ctx context.Context, nombreTipo string) (*model.CatalogoServicio, error)
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) FindByCod(ctx context.Context, cod string) (*model.CatalogoServicio, error) {
	var s model.CatalogoServicio
	err := r.db.WithContext(ctx).
		Preload("TipoMantenimiento").
		Where("codservicio = ?", cod).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *catalogoRepo) ListByTipo(ctx context.Context, nombreTipo string) ([]model.CatalogoServicio, error) {
	var servicios []model.CatalogoServicio
	err := r.db.WithContext(ctx).
		Preload("TipoMantenimiento").
		Joins("INNER JOIN tipomantenimiento tm ON tm.idtipomantenimiento = catalogoservicios.idtipomantenimiento").
		Where("tm.nombretipo = ?", nombreTipo).
		Order("catalogoservicios.descripcion ASC").
		Find(&servicios).Error
	return servicios, err
}

func (r *catalogoRepo) FindFirstByTipo(ctx context.Context, nombreTipo string) (*model.CatalogoServicio, error) {
	var s model.CatalogoServicio
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN tipomantenimiento tm ON tm.idtipomantenimiento = catalogoservicios.idtipomantenimiento").
		Where("tm.nombretipo = ?", nombreTipo).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
