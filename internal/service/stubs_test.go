package service_test

// In-memory repository stubs. They ignore the tx argument — the service
// layer runs fn(nil) when the repository exposes a nil DB.

import (
	"context"
	"time"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/dto"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/repository"

	"gorm.io/gorm"
)

// ── Usuario ───────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uint]*model.Usuario
	nextID   uint
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uint]*model.Usuario), nextID: 1}
}

func (r *stubUsuarioRepo) DB() *gorm.DB { return nil }

func (r *stubUsuarioRepo) Create(_ context.Context, _ *gorm.DB, u *model.Usuario) error {
	u.IDUsuario = r.nextID
	r.nextID++
	r.usuarios[u.IDUsuario] = u
	return nil
}

func (r *stubUsuarioRepo) FindByCorreo(_ context.Context, correo string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Correo == correo {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) UpdatePassword(_ context.Context, id uint, hash string) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *stubUsuarioRepo) List(_ context.Context, page, limit int) ([]model.Usuario, int64, error) {
	all := make([]model.Usuario, 0, len(r.usuarios))
	for id := uint(1); id < r.nextID; id++ {
		if u, ok := r.usuarios[id]; ok {
			all = append(all, *u)
		}
	}
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *stubUsuarioRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.usuarios)), nil
}

// ── Cliente ───────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uint]*model.Cliente // by idusuario
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uint]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, _ *gorm.DB, c *model.Cliente) error {
	r.clientes[c.IDUsuario] = c
	return nil
}

func (r *stubClienteRepo) FindByUsuario(_ context.Context, idUsuario uint) (*model.Cliente, error) {
	c, ok := r.clientes[idUsuario]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.IDUsuario] = c
	return nil
}

func (r *stubClienteRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.clientes)), nil
}

// ── Empleado ──────────────────────────────────────────────────────────────────

type stubEmpleadoRepo struct {
	empleados    map[uint]*model.Empleado // by idusuario
	supervisores []model.Empleado
}

func newStubEmpleadoRepo() *stubEmpleadoRepo {
	return &stubEmpleadoRepo{empleados: make(map[uint]*model.Empleado)}
}

func (r *stubEmpleadoRepo) FindByUsuario(_ context.Context, idUsuario uint) (*model.Empleado, error) {
	return r.empleados[idUsuario], nil // nil, nil when absent
}

func (r *stubEmpleadoRepo) FindByID(_ context.Context, id uint) (*model.Empleado, error) {
	for _, e := range r.empleados {
		if e.IDEmpleado == id {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubEmpleadoRepo) ListSupervisores(_ context.Context) ([]model.Empleado, error) {
	return r.supervisores, nil
}

func (r *stubEmpleadoRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.empleados)), nil
}

// ── Ticket ────────────────────────────────────────────────────────────────────

type stubTicketRepo struct {
	tickets      []*model.Ticket
	asignaciones []*model.AsignarOperario
	actividades  []repository.TicketActividadRow
}

func (r *stubTicketRepo) DB() *gorm.DB { return nil }

func (r *stubTicketRepo) Create(_ context.Context, _ *gorm.DB, t *model.Ticket) error {
	r.tickets = append(r.tickets, t)
	return nil
}

func (r *stubTicketRepo) CreateAsignacion(_ context.Context, _ *gorm.DB, a *model.AsignarOperario) error {
	r.asignaciones = append(r.asignaciones, a)
	return nil
}

func (r *stubTicketRepo) CountBySupervisorFecha(_ context.Context, idSupervisor uint, fecha time.Time) (int64, error) {
	dia := fecha.Format("2006-01-02")
	var total int64
	for _, t := range r.tickets {
		if t.IDSupervisor != nil && *t.IDSupervisor == idSupervisor && t.Fecha.Format("2006-01-02") == dia {
			total++
		}
	}
	return total, nil
}

func (r *stubTicketRepo) ListByCliente(_ context.Context, dniCliente string) ([]model.Ticket, error) {
	var out []model.Ticket
	for _, t := range r.tickets {
		if t.DNICliente == dniCliente {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTicketRepo) ListByOperario(_ context.Context, idEmpleado uint) ([]model.Ticket, error) {
	var out []model.Ticket
	for _, a := range r.asignaciones {
		if a.IDEmpleado != idEmpleado {
			continue
		}
		for _, t := range r.tickets {
			if t.CodTicket == a.CodTicket {
				out = append(out, *t)
			}
		}
	}
	return out, nil
}

func (r *stubTicketRepo) List(_ context.Context, page, limit int) ([]model.Ticket, int64, error) {
	total := int64(len(r.tickets))
	start := (page - 1) * limit
	if start >= len(r.tickets) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(r.tickets) {
		end = len(r.tickets)
	}
	out := make([]model.Ticket, 0, end-start)
	for _, t := range r.tickets[start:end] {
		out = append(out, *t)
	}
	return out, total, nil
}

func (r *stubTicketRepo) CountByEstado(_ context.Context) (map[int]int64, error) {
	conteos := make(map[int]int64)
	for _, t := range r.tickets {
		conteos[t.Estado]++
	}
	return conteos, nil
}

func (r *stubTicketRepo) CountPorMes(_ context.Context, _ int) ([]dto.MesTotal, error) {
	conteos := make(map[string]int64)
	for _, t := range r.tickets {
		conteos[t.Fecha.Format("2006-01")]++
	}
	out := make([]dto.MesTotal, 0, len(conteos))
	for mes, total := range conteos {
		out = append(out, dto.MesTotal{Mes: mes, Total: total})
	}
	return out, nil
}

func (r *stubTicketRepo) ListRecientes(_ context.Context, limit int) ([]repository.TicketActividadRow, error) {
	filas := r.actividades
	if limit > 0 && len(filas) > limit {
		filas = filas[:limit]
	}
	return filas, nil
}

func (r *stubTicketRepo) FindByCod(_ context.Context, cod string) (*model.Ticket, error) {
	for _, t := range r.tickets {
		if t.CodTicket == cod {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Lote ──────────────────────────────────────────────────────────────────────

type stubLoteRepo struct {
	lote *model.LoteTicket
}

func (r *stubLoteRepo) FindActivo(_ context.Context, fecha time.Time) (*model.LoteTicket, error) {
	if r.lote == nil {
		return nil, nil
	}
	if fecha.Before(r.lote.FechaGeneracion) || fecha.After(r.lote.FechaVencimiento) {
		return nil, nil
	}
	return r.lote, nil
}

// ── Horario ───────────────────────────────────────────────────────────────────

type stubHorarioRepo struct {
	horarios           map[string]*model.HorarioDisp
	filas              []repository.HorarioRow
	operarioDelHorario map[string]*model.DispOperario
	operarioDisponible *model.Empleado
}

func newStubHorarioRepo() *stubHorarioRepo {
	return &stubHorarioRepo{
		horarios:           make(map[string]*model.HorarioDisp),
		operarioDelHorario: make(map[string]*model.DispOperario),
	}
}

func (r *stubHorarioRepo) FindByCod(_ context.Context, cod string) (*model.HorarioDisp, error) {
	h, ok := r.horarios[cod]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return h, nil
}

func (r *stubHorarioRepo) ListByFecha(_ context.Context, _ time.Time) ([]repository.HorarioRow, error) {
	return r.filas, nil
}

func (r *stubHorarioRepo) FindOperarioDelHorario(_ context.Context, codHorario string) (*model.DispOperario, error) {
	return r.operarioDelHorario[codHorario], nil
}

func (r *stubHorarioRepo) FindOperarioDisponible(_ context.Context, _ time.Time, _ string) (*model.Empleado, error) {
	return r.operarioDisponible, nil
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

type stubCatalogoRepo struct {
	servicios []model.CatalogoServicio
}

func (r *stubCatalogoRepo) FindByCod(_ context.Context, cod string) (*model.CatalogoServicio, error) {
	for i := range r.servicios {
		if r.servicios[i].CodServicio == cod {
			return &r.servicios[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCatalogoRepo) ListByTipo(_ context.Context, nombreTipo string) ([]model.CatalogoServicio, error) {
	var out []model.CatalogoServicio
	for _, s := range r.servicios {
		if s.TipoMantenimiento.NombreTipo == nombreTipo {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubCatalogoRepo) FindFirstByTipo(_ context.Context, nombreTipo string) (*model.CatalogoServicio, error) {
	for i := range r.servicios {
		if r.servicios[i].TipoMantenimiento.NombreTipo == nombreTipo {
			return &r.servicios[i], nil
		}
	}
	return nil, nil
}

// ── Mantenimiento ─────────────────────────────────────────────────────────────

type stubMantenimientoRepo struct {
	creados     []*model.Mantenimiento
	porOperario map[uint][]repository.MantenimientoRow
}

func (r *stubMantenimientoRepo) Create(_ context.Context, _ *gorm.DB, m *model.Mantenimiento) error {
	r.creados = append(r.creados, m)
	return nil
}

func (r *stubMantenimientoRepo) ListByCliente(_ context.Context, _, _ string) ([]repository.MantenimientoRow, error) {
	return nil, nil
}

func (r *stubMantenimientoRepo) ListRecientesByCliente(_ context.Context, _ string, _ int) ([]repository.MantenimientoRow, error) {
	return nil, nil
}

func (r *stubMantenimientoRepo) ListByOperario(_ context.Context, idEmpleado uint, limit int) ([]repository.MantenimientoRow, error) {
	filas := r.porOperario[idEmpleado]
	if limit > 0 && len(filas) > limit {
		filas = filas[:limit]
	}
	return filas, nil
}

func (r *stubMantenimientoRepo) CountByEstado(_ context.Context) (map[int]int64, error) {
	conteos := make(map[int]int64)
	for _, m := range r.creados {
		conteos[m.Estado]++
	}
	return conteos, nil
}

func (r *stubMantenimientoRepo) List(_ context.Context, page, limit int) ([]model.Mantenimiento, int64, error) {
	total := int64(len(r.creados))
	start := (page - 1) * limit
	if start >= len(r.creados) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(r.creados) {
		end = len(r.creados)
	}
	out := make([]model.Mantenimiento, 0, end-start)
	for _, m := range r.creados[start:end] {
		out = append(out, *m)
	}
	return out, total, nil
}

// ── Vehículo ──────────────────────────────────────────────────────────────────

type stubVehiculoRepo struct {
	vehiculos []*model.Vehiculo
}

func (r *stubVehiculoRepo) Create(_ context.Context, v *model.Vehiculo) error {
	r.vehiculos = append(r.vehiculos, v)
	return nil
}

func (r *stubVehiculoRepo) FindByCod(_ context.Context, cod string) (*model.Vehiculo, error) {
	for _, v := range r.vehiculos {
		if v.CodVehiculo == cod {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubVehiculoRepo) ExistsPlaca(_ context.Context, placa string) (bool, error) {
	for _, v := range r.vehiculos {
		if v.Placa == placa {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubVehiculoRepo) ListByCliente(_ context.Context, dniCliente string) ([]model.Vehiculo, error) {
	var out []model.Vehiculo
	for _, v := range r.vehiculos {
		if v.DNICliente == dniCliente {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVehiculoRepo) List(_ context.Context, page, limit int) ([]model.Vehiculo, int64, error) {
	total := int64(len(r.vehiculos))
	start := (page - 1) * limit
	if start >= len(r.vehiculos) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(r.vehiculos) {
		end = len(r.vehiculos)
	}
	out := make([]model.Vehiculo, 0, end-start)
	for _, v := range r.vehiculos[start:end] {
		out = append(out, *v)
	}
	return out, total, nil
}

func (r *stubVehiculoRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.vehiculos)), nil
}
