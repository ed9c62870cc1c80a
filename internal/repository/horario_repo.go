package repository

import (
	"context"
	"errors"
	"time"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"

	"gorm.io/gorm"
)

// HorarioRow is the flattened availability slot returned to clients:
// the window plus whatever ramp/operator is linked to it.
type HorarioRow struct {
	CodHorarioDisp string
	Fecha          time.Time
	HoraInicio     string
	HoraFin        string
	Rampa          *string
	IDEmpleado     *uint
	Operario       *string
}

type HorarioRepository interface {
	FindByCod(ctx context.Context, cod string) (*model.HorarioDisp, error)
	ListByFecha(ctx context.Context, fecha time.Time) ([]HorarioRow, error)
	// FindOperarioDelHorario returns the operator pre-linked to a slot,
	// or (nil, nil) when the slot has none.
	FindOperarioDelHorario(ctx context.Context, codHorario string) (*model.DispOperario, error)
	// FindOperarioDisponible returns the first operator with an
	// availability slot at exactly (fecha, horaInicio), or (nil, nil).
	FindOperarioDisponible(ctx context.Context, fecha time.Time, horaInicio string) (*model.Empleado, error)
}

type horarioRepo struct{ db *gorm.DB }

func NewHorarioRepository(db *gorm.DB) HorarioRepository { return &horarioRepo{db: db} }

func (r *horarioRepo) FindByCod(ctx context.Context, cod string) (*model.HorarioDisp, error) {
	var h model.HorarioDisp
	err := r.db.WithContext(ctx).Where("codhorariodisp = ?", cod).First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *horarioRepo) ListByFecha(ctx context.Context, fecha time.Time) ([]HorarioRow, error) {
	var filas []HorarioRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT hd.codhorariodisp     AS cod_horario_disp,
		       hd.fecha              AS fecha,
		       hd.horainicio::text   AS hora_inicio,
		       hd.horafin::text      AS hora_fin,
		       r.descripcion         AS rampa,
		       e.idempleado          AS id_empleado,
		       e.nombres             AS operario
		FROM horariodisp hd
		LEFT JOIN disprampa dr     ON dr.codhorariodisp = hd.codhorariodisp
		LEFT JOIN rampa r          ON r.codrampa = dr.codrampa
		LEFT JOIN dispoperario dop ON dop.codhorariodisp = hd.codhorariodisp
		LEFT JOIN empleado e       ON e.idempleado = dop.idempleado
		WHERE hd.fecha = ?
		ORDER BY hd.horainicio`, fecha.Format("2006-01-02")).
		Scan(&filas).Error
	return filas, err
}

func (r *horarioRepo) FindOperarioDelHorario(ctx context.Context, codHorario string) (*model.DispOperario, error) {
	var d model.DispOperario
	err := r.db.WithContext(ctx).Where("codhorariodisp = ?", codHorario).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *horarioRepo) FindOperarioDisponible(ctx context.Context, fecha time.Time, horaInicio string) (*model.Empleado, error) {
	var e model.Empleado
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN dispoperario dop ON dop.idempleado = empleado.idempleado").
		Joins("INNER JOIN horariodisp hd ON hd.codhorariodisp = dop.codhorariodisp").
		Where("hd.fecha = ? AND hd.horainicio::text = ?", fecha.Format("2006-01-02"), horaInicio).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
