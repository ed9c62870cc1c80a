package repository

import (
	"context"
	"time"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MantenimientoRow flattens a maintenance record with its service and
// vehicle for the history listings.
type MantenimientoRow struct {
	CodMantenimiento string
	Fecha            time.Time
	Estado           int
	Monto            *decimal.Decimal
	Servicio         string
	Placa            string
	Marca            string
	Modelo           string
}

type MantenimientoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, m *model.Mantenimiento) error
	// ListByCliente returns the client's maintenance history filtered by
	// maintenance type name (Preventivo / Correctivo).
	ListByCliente(ctx context.Context, dniCliente, nombreTipo string) ([]MantenimientoRow, error)
	// ListRecientesByCliente returns the client's latest maintenance
	// records regardless of type.
	ListRecientesByCliente(ctx context.Context, dniCliente string, limit int) ([]MantenimientoRow, error)
	// ListByOperario returns the maintenance records worked by an
	// operator, newest first. A limit <= 0 returns the full history.
	ListByOperario(ctx context.Context, idEmpleado uint, limit int) ([]MantenimientoRow, error)
	CountByEstado(ctx context.Context) (map[int]int64, error)
	List(ctx context.Context, page, limit int) ([]model.Mantenimiento, int64, error)
}

type mantenimientoRepo struct{ db *gorm.DB }

func NewMantenimientoRepository(db *gorm.DB) MantenimientoRepository {
	return &mantenimientoRepo{db: db}
}

func (r *mantenimientoRepo) Create(ctx context.Context, tx *gorm.DB, m *model.Mantenimiento) error {
	return tx.WithContext(ctx).Create(m).Error
}

func (r *mantenimientoRepo) ListByCliente(ctx context.Context, dniCliente, nombreTipo string) ([]MantenimientoRow, error) {
	var filas []MantenimientoRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.codmantenimiento AS cod_mantenimiento,
		       m.fecharealiza     AS fecha,
		       m.estado           AS estado,
		       m.monto            AS monto,
		       cs.descripcion     AS servicio,
		       v.placa            AS placa,
		       v.marca            AS marca,
		       v.modelo           AS modelo
		FROM mantenimientos m
		INNER JOIN ticket t             ON t.codticket = m.codticket
		INNER JOIN vehiculo v           ON v.codvehiculo = t.codvehiculo
		INNER JOIN catalogoservicios cs ON cs.codservicio = m.codservicio
		INNER JOIN tipomantenimiento tm ON tm.idtipomantenimiento = cs.idtipomantenimiento
		WHERE t.dnicliente = ? AND tm.nombretipo = ?
		ORDER BY m.fecharealiza DESC`, dniCliente, nombreTipo).
		Scan(&filas).Error
	return filas, err
}

func (r *mantenimientoRepo) ListRecientesByCliente(ctx context.Context, dniCliente string, limit int) ([]MantenimientoRow, error) {
	var filas []MantenimientoRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.codmantenimiento AS cod_mantenimiento,
		       m.fecharealiza     AS fecha,
		       m.estado           AS estado,
		       m.monto            AS monto,
		       cs.descripcion     AS servicio,
		       v.placa            AS placa,
		       v.marca            AS marca,
		       v.modelo           AS modelo
		FROM mantenimientos m
		INNER JOIN ticket t             ON t.codticket = m.codticket
		INNER JOIN vehiculo v           ON v.codvehiculo = t.codvehiculo
		INNER JOIN catalogoservicios cs ON cs.codservicio = m.codservicio
		WHERE t.dnicliente = ?
		ORDER BY m.fecharealiza DESC
		LIMIT ?`, dniCliente, limit).
		Scan(&filas).Error
	return filas, err
}

func (r *mantenimientoRepo) ListByOperario(ctx context.Context, idEmpleado uint, limit int) ([]MantenimientoRow, error) {
	sql := `
		SELECT m.codmantenimiento AS cod_mantenimiento,
		       m.fecharealiza     AS fecha,
		       m.estado           AS estado,
		       m.monto            AS monto,
		       cs.descripcion     AS servicio,
		       v.placa            AS placa,
		       v.marca            AS marca,
		       v.modelo           AS modelo
		FROM mantenimientos m
		INNER JOIN ticket t             ON t.codticket = m.codticket
		INNER JOIN vehiculo v           ON v.codvehiculo = t.codvehiculo
		INNER JOIN catalogoservicios cs ON cs.codservicio = m.codservicio
		INNER JOIN asignaroperario ao   ON ao.codticket = t.codticket
		WHERE ao.idempleado = ?
		ORDER BY m.fecharealiza DESC`
	args := []interface{}{idEmpleado}
	if limit > 0 {
		sql += `
		LIMIT ?`
		args = append(args, limit)
	}

	var filas []MantenimientoRow
	err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&filas).Error
	return filas, err
}

func (r *mantenimientoRepo) CountByEstado(ctx context.Context) (map[int]int64, error) {
	type fila struct {
		Estado int
		Total  int64
	}
	var filas []fila
	err := r.db.WithContext(ctx).Model(&model.Mantenimiento{}).
		Select("estado, COUNT(*) AS total").
		Group("estado").
		Scan(&filas).Error
	if err != nil {
		return nil, err
	}
	conteos := make(map[int]int64, len(filas))
	for _, f := range filas {
		conteos[f.Estado] = f.Total
	}
	return conteos, nil
}

func (r *mantenimientoRepo) List(ctx context.Context, page, limit int) ([]model.Mantenimiento, int64, error) {
	var mantenimientos []model.Mantenimiento
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Mantenimiento{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Order("fecharealiza DESC, codmantenimiento DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&mantenimientos).Error
	return mantenimientos, total, err
}
