package repository

import (
	"context"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"

	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(ctx context.Context, tx *gorm.DB, c *model.Cliente) error
	FindByUsuario(ctx context.Context, idUsuario uint) (*model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	Count(ctx context.Context) (int64, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, tx *gorm.DB, c *model.Cliente) error {
	return tx.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByUsuario(ctx context.Context, idUsuario uint) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Where("idusuario = ?", idUsuario).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Cliente{}).Count(&total).Error
	return total, err
}
