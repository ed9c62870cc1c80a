package repository

import (
	"context"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, tx *gorm.DB, u *model.Usuario) error
	FindByCorreo(ctx context.Context, correo string) (*model.Usuario, error)
	FindByID(ctx context.Context, id uint) (*model.Usuario, error)
	UpdatePassword(ctx context.Context, id uint, hash string) error
	List(ctx context.Context, page, limit int) ([]model.Usuario, int64, error)
	Count(ctx context.Context) (int64, error)
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) DB() *gorm.DB { return r.db }

func (r *usuarioRepo) Create(ctx context.Context, tx *gorm.DB, u *model.Usuario) error {
	return tx.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByCorreo(ctx context.Context, correo string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Where("LOWER(correo) = LOWER(?)", correo).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uint) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) UpdatePassword(ctx context.Context, id uint, hash string) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("idusuario = ?", id).
		Update("passwordhash", hash).Error
}

func (r *usuarioRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Usuario{}).Count(&total).Error
	return total, err
}

func (r *usuarioRepo) List(ctx context.Context, page, limit int) ([]model.Usuario, int64, error) {
	var usuarios []model.Usuario
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Usuario{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Order("idusuario").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&usuarios).Error
	return usuarios, total, err
}
