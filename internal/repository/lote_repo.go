package repository

import (
	"context"
	"errors"
	"time"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"

	"gorm.io/gorm"
)

type LoteRepository interface {
	// FindActivo returns the batch whose window contains fecha, or
	// (nil, nil) when no batch is active.
	FindActivo(ctx context.Context, fecha time.Time) (*model.LoteTicket, error)
}

type loteRepo struct{ db *gorm.DB }

func NewLoteRepository(db *gorm.DB) LoteRepository { return &loteRepo{db: db} }

func (r *loteRepo) FindActivo(ctx context.Context, fecha time.Time) (*model.LoteTicket, error) {
	dia := fecha.Format("2006-01-02")
	var lote model.LoteTicket
	err := r.db.WithContext(ctx).
		Where("fechageneracion <= ? AND fechavencimiento >= ?", dia, dia).
		First(&lote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lote, nil
}
