package service

import (
	"context"
	"fmt"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/dto"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/repository"
)

type OperarioService interface {
	PerfilPorUsuario(ctx context.Context, idUsuario uint) (*dto.OperarioPerfilResponse, error)
	TicketsAsignados(ctx context.Context, idUsuario uint) (*dto.TicketsResponse, error)
	Stats(ctx context.Context, idUsuario uint) (*dto.OperarioStatsResponse, error)
	MantenimientosRealizados(ctx context.Context, idUsuario uint) (*dto.MantenimientosResponse, error)
	TrabajosRecientes(ctx context.Context, idUsuario uint) (*dto.TrabajosRecientesResponse, error)
}

type operarioService struct {
	empleados      repository.EmpleadoRepository
	usuarios       repository.UsuarioRepository
	tickets        repository.TicketRepository
	mantenimientos repository.MantenimientoRepository
}

func NewOperarioService(
	empleados repository.EmpleadoRepository,
	usuarios repository.UsuarioRepository,
	tickets repository.TicketRepository,
	mantenimientos repository.MantenimientoRepository,
) OperarioService {
	return &operarioService{
		empleados:      empleados,
		usuarios:       usuarios,
		tickets:        tickets,
		mantenimientos: mantenimientos,
	}
}

// empleadoPorUsuario resolves the employee record behind an
// authenticated account. Every operator route starts here.
func (s *operarioService) empleadoPorUsuario(ctx context.Context, idUsuario uint) (*model.Empleado, error) {
	empleado, err := s.empleados.FindByUsuario(ctx, idUsuario)
	if err != nil {
		return nil, err
	}
	if empleado == nil {
		return nil, ErrEmpleadoNoEncontrado
	}
	return empleado, nil
}

func (s *operarioService) PerfilPorUsuario(ctx context.Context, idUsuario uint) (*dto.OperarioPerfilResponse, error) {
	empleado, err := s.empleadoPorUsuario(ctx, idUsuario)
	if err != nil {
		return nil, err
	}
	usuario, err := s.usuarios.FindByID(ctx, idUsuario)
	if err != nil {
		return nil, ErrUsuarioNoEncontrado
	}

	return &dto.OperarioPerfilResponse{
		Success: true,
		Operario: dto.OperarioPerfil{
			IDEmpleado:   empleado.IDEmpleado,
			DNI:          empleado.DNI,
			Nombres:      empleado.Nombres,
			ApePaterno:   empleado.ApePaterno,
			ApeMaterno:   empleado.ApeMaterno,
			Telefono:     empleado.Telefono,
			Especialidad: empleado.Especialidad,
			Correo:       usuario.Correo,
		},
	}, nil
}

func (s *operarioService) TicketsAsignados(ctx context.Context, idUsuario uint) (*dto.TicketsResponse, error) {
	empleado, err := s.empleadoPorUsuario(ctx, idUsuario)
	if err != nil {
		return nil, err
	}

	tickets, err := s.tickets.ListByOperario(ctx, empleado.IDEmpleado)
	if err != nil {
		return nil, err
	}

	resp := &dto.TicketsResponse{
		Success: true,
		Total:   len(tickets),
		Tickets: make([]dto.TicketItem, 0, len(tickets)),
	}
	for _, t := range tickets {
		resp.Tickets = append(resp.Tickets, dto.TicketItem{
			CodTicket:  t.CodTicket,
			Fecha:      t.Fecha.Format("2006-01-02"),
			HoraInicio: t.HoraIniEstimada,
			HoraFin:    t.HoraFinEstimada,
			Estado:     model.NombreEstadoTicket(t.Estado),
			Vehiculo:   t.CodVehiculo,
		})
	}
	return resp, nil
}

// Stats aggregates the operator's assigned tickets by estado.
func (s *operarioService) Stats(ctx context.Context, idUsuario uint) (*dto.OperarioStatsResponse, error) {
	empleado, err := s.empleadoPorUsuario(ctx, idUsuario)
	if err != nil {
		return nil, err
	}

	tickets, err := s.tickets.ListByOperario(ctx, empleado.IDEmpleado)
	if err != nil {
		return nil, err
	}

	var stats dto.OperarioStats
	for _, t := range tickets {
		stats.Total++
		switch t.Estado {
		case model.TicketPendiente:
			stats.Asignados++
		case model.TicketEnProceso:
			stats.EnProceso++
		case model.TicketCompletado:
			stats.Completados++
		}
	}
	return &dto.OperarioStatsResponse{Success: true, Stats: stats}, nil
}

// MantenimientosRealizados lists every maintenance record the operator
// has worked, newest first.
func (s *operarioService) MantenimientosRealizados(ctx context.Context, idUsuario uint) (*dto.MantenimientosResponse, error) {
	empleado, err := s.empleadoPorUsuario(ctx, idUsuario)
	if err != nil {
		return nil, err
	}

	filas, err := s.mantenimientos.ListByOperario(ctx, empleado.IDEmpleado, 0)
	if err != nil {
		return nil, err
	}
	return mantenimientosDTO(filas), nil
}

func (s *operarioService) TrabajosRecientes(ctx context.Context, idUsuario uint) (*dto.TrabajosRecientesResponse, error) {
	empleado, err := s.empleadoPorUsuario(ctx, idUsuario)
	if err != nil {
		return nil, err
	}

	filas, err := s.mantenimientos.ListByOperario(ctx, empleado.IDEmpleado, 5)
	if err != nil {
		return nil, err
	}

	resp := &dto.TrabajosRecientesResponse{
		Success:  true,
		Trabajos: make([]dto.TrabajoReciente, 0, len(filas)),
	}
	for _, f := range filas {
		resp.Trabajos = append(resp.Trabajos, dto.TrabajoReciente{
			CodMantenimiento: f.CodMantenimiento,
			Fecha:            f.Fecha.Format("2006-01-02"),
			Estado:           model.NombreEstadoTicket(f.Estado),
			Servicio:         f.Servicio,
			Vehiculo:         fmt.Sprintf("%s %s (%s)", f.Marca, f.Modelo, f.Placa),
		})
	}
	return resp, nil
}
