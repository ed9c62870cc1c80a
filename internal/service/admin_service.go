package service

import (
	"context"
	"fmt"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/dto"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/repository"
)

const (
	defaultPage        = 1
	defaultLimit       = 10
	mesesTrend         = 6
	actividadesLimit   = 10
	clienteDesconocido = "N/A"
)

type AdminService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	Usuarios(ctx context.Context, page, limit int) (*dto.UsuariosAdminResponse, error)
	Vehiculos(ctx context.Context, page, limit int) (*dto.VehiculosAdminResponse, error)
	Tickets(ctx context.Context, page, limit int) (*dto.TicketsAdminResponse, error)
	Mantenimientos(ctx context.Context, page, limit int) (*dto.MantenimientosAdminResponse, error)
}

type adminService struct {
	usuarios       repository.UsuarioRepository
	clientes       repository.ClienteRepository
	empleados      repository.EmpleadoRepository
	vehiculos      repository.VehiculoRepository
	tickets        repository.TicketRepository
	mantenimientos repository.MantenimientoRepository
}

func NewAdminService(
	usuarios repository.UsuarioRepository,
	clientes repository.ClienteRepository,
	empleados repository.EmpleadoRepository,
	vehiculos repository.VehiculoRepository,
	tickets repository.TicketRepository,
	mantenimientos repository.MantenimientoRepository,
) AdminService {
	return &adminService{
		usuarios:       usuarios,
		clientes:       clientes,
		empleados:      empleados,
		vehiculos:      vehiculos,
		tickets:        tickets,
		mantenimientos: mantenimientos,
	}
}

func normalizarPagina(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}
	return page, limit
}

// porNombreEstado re-keys an estado-code count map by display name.
func porNombreEstado(conteos map[int]int64) map[string]int64 {
	out := make(map[string]int64, len(conteos))
	for estado, total := range conteos {
		out[model.NombreEstadoTicket(estado)] = total
	}
	return out
}

func (s *adminService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	var stats dto.DashboardStats
	var err error

	if stats.TotalUsuarios, err = s.usuarios.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalClientes, err = s.clientes.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalEmpleados, err = s.empleados.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalVehiculos, err = s.vehiculos.Count(ctx); err != nil {
		return nil, err
	}

	ticketsPorEstado, err := s.tickets.CountByEstado(ctx)
	if err != nil {
		return nil, err
	}
	for _, total := range ticketsPorEstado {
		stats.TotalTickets += total
	}
	stats.TicketsPorEstado = porNombreEstado(ticketsPorEstado)

	mantPorEstado, err := s.mantenimientos.CountByEstado(ctx)
	if err != nil {
		return nil, err
	}
	stats.MantenimientosPorEstado = porNombreEstado(mantPorEstado)

	if stats.TicketsPorMes, err = s.tickets.CountPorMes(ctx, mesesTrend); err != nil {
		return nil, err
	}

	recientes, err := s.tickets.ListRecientes(ctx, actividadesLimit)
	if err != nil {
		return nil, err
	}
	actividades := make([]dto.ActividadReciente, 0, len(recientes))
	for _, f := range recientes {
		cliente := f.Cliente
		if cliente == "" {
			cliente = clienteDesconocido
		}
		actividades = append(actividades, dto.ActividadReciente{
			Tipo:        "ticket",
			ID:          f.CodTicket,
			Titulo:      fmt.Sprintf("Ticket: %s %s", f.Marca, f.Modelo),
			Descripcion: "Cliente: " + cliente,
			Estado:      model.NombreEstadoTicket(f.Estado),
			Fecha:       f.Fecha.Format("2006-01-02"),
		})
	}

	return &dto.DashboardResponse{Success: true, Stats: stats, Actividades: actividades}, nil
}

func (s *adminService) Usuarios(ctx context.Context, page, limit int) (*dto.UsuariosAdminResponse, error) {
	page, limit = normalizarPagina(page, limit)
	usuarios, total, err := s.usuarios.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UsuarioAdminItem, 0, len(usuarios))
	for _, u := range usuarios {
		tipo := dto.UserTypeCliente
		empleado, err := s.empleados.FindByUsuario(ctx, u.IDUsuario)
		if err != nil {
			return nil, err
		}
		if empleado != nil {
			tipo = dto.UserTypeTrabajador
		}
		items = append(items, dto.UsuarioAdminItem{
			IDUsuario: u.IDUsuario,
			Username:  u.Username,
			Correo:    u.Correo,
			Estado:    u.Estado,
			Tipo:      tipo,
		})
	}

	return &dto.UsuariosAdminResponse{
		Success:    true,
		Usuarios:   items,
		Pagination: dto.NewPaginacion(page, limit, total),
	}, nil
}

func (s *adminService) Vehiculos(ctx context.Context, page, limit int) (*dto.VehiculosAdminResponse, error) {
	page, limit = normalizarPagina(page, limit)
	vehiculos, total, err := s.vehiculos.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.VehiculoAdminItem, 0, len(vehiculos))
	for _, v := range vehiculos {
		items = append(items, dto.VehiculoAdminItem{
			CodVehiculo: v.CodVehiculo,
			Placa:       v.Placa,
			Marca:       v.Marca,
			Modelo:      v.Modelo,
			DNICliente:  v.DNICliente,
		})
	}

	return &dto.VehiculosAdminResponse{
		Success:    true,
		Vehiculos:  items,
		Pagination: dto.NewPaginacion(page, limit, total),
	}, nil
}

func (s *adminService) Tickets(ctx context.Context, page, limit int) (*dto.TicketsAdminResponse, error) {
	page, limit = normalizarPagina(page, limit)
	tickets, total, err := s.tickets.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TicketAdminItem, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.TicketAdminItem{
			CodTicket:     t.CodTicket,
			Fecha:         t.Fecha.Format("2006-01-02"),
			Estado:        model.NombreEstadoTicket(t.Estado),
			DNICliente:    t.DNICliente,
			CodVehiculo:   t.CodVehiculo,
			CodLoteTicket: t.CodLoteTicket,
			IDSupervisor:  t.IDSupervisor,
		})
	}

	return &dto.TicketsAdminResponse{
		Success:    true,
		Tickets:    items,
		Pagination: dto.NewPaginacion(page, limit, total),
	}, nil
}

func (s *adminService) Mantenimientos(ctx context.Context, page, limit int) (*dto.MantenimientosAdminResponse, error) {
	page, limit = normalizarPagina(page, limit)
	mantenimientos, total, err := s.mantenimientos.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MantenimientoAdminItem, 0, len(mantenimientos))
	for _, m := range mantenimientos {
		items = append(items, dto.MantenimientoAdminItem{
			CodMantenimiento: m.CodMantenimiento,
			CodTicket:        m.CodTicket,
			CodServicio:      m.CodServicio,
			Fecha:            m.FechaRealiza.Format("2006-01-02"),
			Estado:           model.NombreEstadoTicket(m.Estado),
		})
	}

	return &dto.MantenimientosAdminResponse{
		Success:        true,
		Mantenimientos: items,
		Pagination:     dto.NewPaginacion(page, limit, total),
	}, nil
}
