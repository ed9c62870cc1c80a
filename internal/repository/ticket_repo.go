package repository

import (
	"context"
	"time"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/dto"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"

	"gorm.io/gorm"
)

// TicketActividadRow flattens a recent ticket with its vehicle and
// client for the dashboard activity feed.
type TicketActividadRow struct {
	CodTicket string
	Fecha     time.Time
	Estado    int
	Marca     string
	Modelo    string
	Cliente   string
}

type TicketRepository interface {
	Create(ctx context.Context, tx *gorm.DB, t *model.Ticket) error
	CreateAsignacion(ctx context.Context, tx *gorm.DB, a *model.AsignarOperario) error
	// CountBySupervisorFecha counts tickets already assigned to a
	// supervisor on a given date — the round-robin load signal.
	CountBySupervisorFecha(ctx context.Context, idSupervisor uint, fecha time.Time) (int64, error)
	ListByCliente(ctx context.Context, dniCliente string) ([]model.Ticket, error)
	ListByOperario(ctx context.Context, idEmpleado uint) ([]model.Ticket, error)
	List(ctx context.Context, page, limit int) ([]model.Ticket, int64, error)
	CountByEstado(ctx context.Context) (map[int]int64, error)
	CountPorMes(ctx context.Context, meses int) ([]dto.MesTotal, error)
	// ListRecientes returns the newest tickets with vehicle and client
	// labels for the dashboard activity feed.
	ListRecientes(ctx context.Context, limit int) ([]TicketActividadRow, error)
	FindByCod(ctx context.Context, cod string) (*model.Ticket, error)
	DB() *gorm.DB
}

type ticketRepo struct{ db *gorm.DB }

func NewTicketRepository(db *gorm.DB) TicketRepository { return &ticketRepo{db: db} }

func (r *ticketRepo) DB() *gorm.DB { return r.db }

func (r *ticketRepo) Create(ctx context.Context, tx *gorm.DB, t *model.Ticket) error {
	return tx.WithContext(ctx).Create(t).Error
}

func (r *ticketRepo) CreateAsignacion(ctx context.Context, tx *gorm.DB, a *model.AsignarOperario) error {
	return tx.WithContext(ctx).Create(a).Error
}

func (r *ticketRepo) CountBySupervisorFecha(ctx context.Context, idSupervisor uint, fecha time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Ticket{}).
		Where("idsupervisor = ? AND fecha = ?", idSupervisor, fecha.Format("2006-01-02")).
		Count(&total).Error
	return total, err
}

func (r *ticketRepo) ListByCliente(ctx context.Context, dniCliente string) ([]model.Ticket, error) {
	var tickets []model.Ticket
	err := r.db.WithContext(ctx).
		Where("dnicliente = ?", dniCliente).
		Order("fecha DESC, codticket DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *ticketRepo) ListByOperario(ctx context.Context, idEmpleado uint) ([]model.Ticket, error) {
	var tickets []model.Ticket
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN asignaroperario ao ON ao.codticket = ticket.codticket").
		Where("ao.idempleado = ?", idEmpleado).
		Order("ticket.fecha DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *ticketRepo) List(ctx context.Context, page, limit int) ([]model.Ticket, int64, error) {
	var tickets []model.Ticket
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Ticket{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Order("fecha DESC, codticket DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&tickets).Error
	return tickets, total, err
}

func (r *ticketRepo) CountByEstado(ctx context.Context) (map[int]int64, error) {
	type fila struct {
		Estado int
		Total  int64
	}
	var filas []fila
	err := r.db.WithContext(ctx).Model(&model.Ticket{}).
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

func (r *ticketRepo) CountPorMes(ctx context.Context, meses int) ([]dto.MesTotal, error) {
	desde := time.Now().AddDate(0, -meses, 0)
	var filas []dto.MesTotal
	err := r.db.WithContext(ctx).Model(&model.Ticket{}).
		Select("TO_CHAR(fecha, 'YYYY-MM') AS mes, COUNT(*) AS total").
		Where("fecha >= ?", desde.Format("2006-01-02")).
		Group("TO_CHAR(fecha, 'YYYY-MM')").
		Order("mes").
		Scan(&filas).Error
	return filas, err
}

func (r *ticketRepo) ListRecientes(ctx context.Context, limit int) ([]TicketActividadRow, error) {
	var filas []TicketActividadRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT t.codticket AS cod_ticket,
		       t.fecha     AS fecha,
		       t.estado    AS estado,
		       v.marca     AS marca,
		       v.modelo    AS modelo,
		       c.nombre    AS cliente
		FROM ticket t
		INNER JOIN vehiculo v ON v.codvehiculo = t.codvehiculo
		INNER JOIN cliente c  ON c.dnicliente = t.dnicliente
		ORDER BY t.fecha DESC, t.codticket DESC
		LIMIT ?`, limit).
		Scan(&filas).Error
	return filas, err
}

func (r *ticketRepo) FindByCod(ctx context.Context, cod string) (*model.Ticket, error) {
	var t model.Ticket
	err := r.db.WithContext(ctx).Where("codticket = ?", cod).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}
