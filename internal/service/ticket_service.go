package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/dto"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/repository"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PoliticaAsignacion controls how an intake flow reacts when no active
// batch or no supervisor exists.
type PoliticaAsignacion int

const (
	// AsignacionOpcional: the ticket is created with a null lot and/or
	// supervisor (diagnostic intake).
	AsignacionOpcional PoliticaAsignacion = iota
	// AsignacionObligatoria: the intake fails (corrective and preventive).
	AsignacionObligatoria
)

const cacheServiciosCorrectivos = "cache:servicios:correctivos"

type TicketService interface {
	LoteActivo(ctx context.Context, fecha time.Time) (*model.LoteTicket, error)
	SupervisorDisponible(ctx context.Context, fecha time.Time) (*model.Empleado, error)
	HorariosDisponibles(ctx context.Context, fecha time.Time) (*dto.HorariosResponse, error)
	ServiciosCorrectivos(ctx context.Context) (*dto.ServiciosResponse, error)
	OperarioDisponible(ctx context.Context, fecha time.Time, horaInicio string) (*dto.OperarioDisponibleResponse, error)
	SolicitarDiagnostico(ctx context.Context, cliente *model.Cliente, req dto.SolicitarDiagnosticoRequest) (*dto.TicketResponse, error)
	SolicitarCorrectivo(ctx context.Context, cliente *model.Cliente, req dto.SolicitarCorrectivoRequest) (*dto.TicketResponse, error)
	SolicitarPreventivo(ctx context.Context, cliente *model.Cliente, req dto.SolicitarPreventivoRequest) (*dto.TicketResponse, error)
}

type ticketService struct {
	tickets        repository.TicketRepository
	lotes          repository.LoteRepository
	empleados      repository.EmpleadoRepository
	horarios       repository.HorarioRepository
	catalogos      repository.CatalogoRepository
	mantenimientos repository.MantenimientoRepository
	rdb            *redis.Client      // nil disables the catalog cache
	dispatcher     *worker.Dispatcher // nil in unit tests
}

func NewTicketService(
	tickets repository.TicketRepository,
	lotes repository.LoteRepository,
	empleados repository.EmpleadoRepository,
	horarios repository.HorarioRepository,
	catalogos repository.CatalogoRepository,
	mantenimientos repository.MantenimientoRepository,
	rdb *redis.Client,
	dispatcher *worker.Dispatcher,
) TicketService {
	return &ticketService{
		tickets:        tickets,
		lotes:          lotes,
		empleados:      empleados,
		horarios:       horarios,
		catalogos:      catalogos,
		mantenimientos: mantenimientos,
		rdb:            rdb,
		dispatcher:     dispatcher,
	}
}

func (s *ticketService) LoteActivo(ctx context.Context, fecha time.Time) (*model.LoteTicket, error) {
	return s.lotes.FindActivo(ctx, fecha)
}

// SupervisorDisponible picks the supervisor with the fewest tickets on
// fecha. Ties break toward the lowest idempleado; supervisors are
// scanned in ascending id order, so the first minimum wins. Returns
// (nil, nil) when no supervisors exist.
func (s *ticketService) SupervisorDisponible(ctx context.Context, fecha time.Time) (*model.Empleado, error) {
	supervisores, err := s.empleados.ListSupervisores(ctx)
	if err != nil {
		return nil, err
	}
	if len(supervisores) == 0 {
		return nil, nil
	}

	var elegido *model.Empleado
	var minimo int64
	for i := range supervisores {
		sup := &supervisores[i]
		total, err := s.tickets.CountBySupervisorFecha(ctx, sup.IDEmpleado, fecha)
		if err != nil {
			return nil, err
		}
		if elegido == nil || total < minimo {
			elegido = sup
			minimo = total
		}
	}
	return elegido, nil
}

// resolverAsignacion resolves the active batch and the least-loaded
// supervisor for a new ticket, enforcing the flow's policy.
func (s *ticketService) resolverAsignacion(ctx context.Context, fecha time.Time, politica PoliticaAsignacion) (*string, *uint, error) {
	lote, err := s.lotes.FindActivo(ctx, fecha)
	if err != nil {
		return nil, nil, err
	}
	supervisor, err := s.SupervisorDisponible(ctx, fecha)
	if err != nil {
		return nil, nil, err
	}

	if politica == AsignacionObligatoria {
		if lote == nil {
			return nil, nil, ErrSinLoteActivo
		}
		if supervisor == nil {
			return nil, nil, ErrSinSupervisor
		}
	}

	var codLote *string
	if lote != nil {
		codLote = &lote.CodLoteTicket
	}
	var idSupervisor *uint
	if supervisor != nil {
		idSupervisor = &supervisor.IDEmpleado
	}
	return codLote, idSupervisor, nil
}

func (s *ticketService) HorariosDisponibles(ctx context.Context, fecha time.Time) (*dto.HorariosResponse, error) {
	filas, err := s.horarios.ListByFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}

	// All slots quote the base preventive tariff; the exact service is
	// bound at intake time.
	base, err := s.catalogos.FindFirstByTipo(ctx, model.TipoPreventivo)
	if err != nil {
		return nil, err
	}

	resp := &dto.HorariosResponse{Success: true, Schedules: make([]dto.HorarioDisponible, 0, len(filas))}
	for _, f := range filas {
		h := dto.HorarioDisponible{
			CodHorarioDisp: f.CodHorarioDisp,
			Fecha:          f.Fecha.Format("2006-01-02"),
			HoraInicio:     f.HoraInicio,
			HoraFin:        f.HoraFin,
			IDEmpleado:     f.IDEmpleado,
		}
		if f.Rampa != nil {
			h.Rampa = *f.Rampa
		}
		if f.Operario != nil {
			h.Operario = *f.Operario
		}
		if base != nil {
			h.Tarifa = base.Tarifa
		}
		resp.Schedules = append(resp.Schedules, h)
	}
	return resp, nil
}

func (s *ticketService) ServiciosCorrectivos(ctx context.Context) (*dto.ServiciosResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheServiciosCorrectivos).Bytes()
		if err == nil {
			var resp dto.ServiciosResponse
			if json.Unmarshal(cached, &resp) == nil {
				return &resp, nil
			}
		}
	}

	servicios, err := s.catalogos.ListByTipo(ctx, model.TipoCorrectivo)
	if err != nil {
		return nil, err
	}

	resp := &dto.ServiciosResponse{
		Success:   true,
		Total:     len(servicios),
		Servicios: make([]dto.ServicioCatalogo, 0, len(servicios)),
	}
	for _, sv := range servicios {
		resp.Servicios = append(resp.Servicios, dto.ServicioCatalogo{
			CodServicio: sv.CodServicio,
			Descripcion: sv.Descripcion,
			Tipo:        sv.TipoMantenimiento.NombreTipo,
			Tarifa:      sv.Tarifa,
			Duracion:    sv.Duracion,
			Marca:       sv.Marca,
			Modelo:      sv.Modelo,
		})
	}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, cacheServiciosCorrectivos, data, 5*time.Minute).Err(); err != nil {
				log.Warn().Err(err).Msg("catalog cache write failed")
			}
		}
	}
	return resp, nil
}

func (s *ticketService) OperarioDisponible(ctx context.Context, fecha time.Time, horaInicio string) (*dto.OperarioDisponibleResponse, error) {
	emp, err := s.horarios.FindOperarioDisponible(ctx, fecha, horaInicio)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return &dto.OperarioDisponibleResponse{
			Success: true,
			Message: "No hay operarios disponibles en ese horario",
		}, nil
	}

	especialidad := ""
	if emp.Especialidad != nil {
		especialidad = *emp.Especialidad
	}
	return &dto.OperarioDisponibleResponse{
		Success: true,
		Operario: &dto.OperarioDisponible{
			IDEmpleado:     emp.IDEmpleado,
			Nombres:        emp.Nombres,
			ApePaterno:     emp.ApePaterno,
			Especialidad:   especialidad,
			NombreCompleto: emp.NombreCompleto(),
		},
	}, nil
}

// SolicitarDiagnostico creates a diagnostic ticket. Lot and supervisor
// are attached when available but their absence does not block intake.
func (s *ticketService) SolicitarDiagnostico(ctx context.Context, cliente *model.Cliente, req dto.SolicitarDiagnosticoRequest) (*dto.TicketResponse, error) {
	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, err
	}

	codLote, idSupervisor, err := s.resolverAsignacion(ctx, fecha, AsignacionOpcional)
	if err != nil {
		return nil, err
	}

	ticket := &model.Ticket{
		CodTicket:       nuevoCodigo("TKT"),
		Fecha:           fecha,
		HoraIniEstimada: &req.HoraInicio,
		HoraFinEstimada: &req.HoraFin,
		Estado:          model.TicketPendiente,
		DNICliente:      cliente.DNICliente,
		CodVehiculo:     req.CodVehiculo,
		CodLoteTicket:   codLote,
		IDSupervisor:    idSupervisor,
	}

	txErr := runTx(ctx, s.tickets.DB(), func(tx *gorm.DB) error {
		if err := s.tickets.Create(ctx, tx, ticket); err != nil {
			return err
		}
		if req.IDEmpleado != nil {
			return s.tickets.CreateAsignacion(ctx, tx, &model.AsignarOperario{
				CodOperarioXTicket: nuevoCodigo("OPR"),
				IDEmpleado:         *req.IDEmpleado,
				CodTicket:          ticket.CodTicket,
			})
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.notificarTicket(ctx, cliente, ticket.CodTicket, "Diagnóstico", req.Fecha)

	return &dto.TicketResponse{
		Success: true,
		Message: "Ticket de diagnóstico creado exitosamente",
		Ticket: dto.TicketCreado{
			CodTicket:     ticket.CodTicket,
			Fecha:         req.Fecha,
			HoraInicio:    req.HoraInicio,
			HoraFin:       req.HoraFin,
			CodLoteTicket: codLote,
			IDSupervisor:  idSupervisor,
			IDOperario:    req.IDEmpleado,
			Estado:        model.NombreEstadoTicket(ticket.Estado),
		},
	}, nil
}

// SolicitarCorrectivo creates a corrective ticket plus its maintenance
// record priced at the chosen service's tariff. Requires an active
// batch and an available supervisor.
func (s *ticketService) SolicitarCorrectivo(ctx context.Context, cliente *model.Cliente, req dto.SolicitarCorrectivoRequest) (*dto.TicketResponse, error) {
	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, err
	}

	servicio, err := s.catalogos.FindByCod(ctx, req.CodServicio)
	if err != nil {
		return nil, ErrServicioNoEncontrado
	}

	codLote, idSupervisor, err := s.resolverAsignacion(ctx, fecha, AsignacionObligatoria)
	if err != nil {
		return nil, err
	}

	ticket := &model.Ticket{
		CodTicket:       nuevoCodigo("C"),
		Fecha:           fecha,
		HoraIniEstimada: &req.HoraInicio,
		Estado:          model.TicketPendiente,
		DNICliente:      cliente.DNICliente,
		CodVehiculo:     req.CodVehiculo,
		CodLoteTicket:   codLote,
		IDSupervisor:    idSupervisor,
	}
	mantenimiento := &model.Mantenimiento{
		CodMantenimiento: nuevoCodigo("M"),
		CodTicket:        ticket.CodTicket,
		CodServicio:      servicio.CodServicio,
		FechaRealiza:     fecha,
		Monto:            &servicio.Tarifa,
		Estado:           model.TicketPendiente,
	}

	txErr := runTx(ctx, s.tickets.DB(), func(tx *gorm.DB) error {
		if err := s.tickets.Create(ctx, tx, ticket); err != nil {
			return err
		}
		if err := s.mantenimientos.Create(ctx, tx, mantenimiento); err != nil {
			return err
		}
		if req.IDEmpleado != nil {
			return s.tickets.CreateAsignacion(ctx, tx, &model.AsignarOperario{
				CodOperarioXTicket: nuevoCodigo("O"),
				IDEmpleado:         *req.IDEmpleado,
				CodTicket:          ticket.CodTicket,
			})
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.notificarTicket(ctx, cliente, ticket.CodTicket, "Correctivo", req.Fecha)

	return &dto.TicketResponse{
		Success: true,
		Message: "Ticket de mantenimiento correctivo creado exitosamente",
		Ticket: dto.TicketCreado{
			CodTicket:        ticket.CodTicket,
			CodMantenimiento: mantenimiento.CodMantenimiento,
			Fecha:            req.Fecha,
			HoraInicio:       req.HoraInicio,
			CodLoteTicket:    codLote,
			IDSupervisor:     idSupervisor,
			IDOperario:       req.IDEmpleado,
			Estado:           model.NombreEstadoTicket(ticket.Estado),
		},
	}, nil
}

// SolicitarPreventivo books a preventive maintenance into an existing
// availability slot. The slot's pre-linked operator, if any, is
// attached automatically.
func (s *ticketService) SolicitarPreventivo(ctx context.Context, cliente *model.Cliente, req dto.SolicitarPreventivoRequest) (*dto.TicketResponse, error) {
	horario, err := s.horarios.FindByCod(ctx, req.CodHorarioDisp)
	if err != nil {
		return nil, ErrHorarioNoDisponible
	}

	codLote, idSupervisor, err := s.resolverAsignacion(ctx, horario.Fecha, AsignacionObligatoria)
	if err != nil {
		return nil, err
	}

	servicio, err := s.catalogos.FindFirstByTipo(ctx, model.TipoPreventivo)
	if err != nil {
		return nil, err
	}
	if servicio == nil {
		return nil, ErrSinServicioPreventivo
	}

	observaciones := fmt.Sprintf("Kilometraje: %d", req.Kilometraje)
	ticket := &model.Ticket{
		CodTicket:       nuevoCodigo("P"),
		Fecha:           horario.Fecha,
		HoraIniEstimada: &horario.HoraInicio,
		HoraFinEstimada: &horario.HoraFin,
		Estado:          model.TicketPendiente,
		DNICliente:      cliente.DNICliente,
		CodVehiculo:     req.CodVehiculo,
		CodLoteTicket:   codLote,
		IDSupervisor:    idSupervisor,
	}
	mantenimiento := &model.Mantenimiento{
		CodMantenimiento: nuevoCodigo("M"),
		CodTicket:        ticket.CodTicket,
		CodServicio:      servicio.CodServicio,
		FechaRealiza:     horario.Fecha,
		Monto:            &servicio.Tarifa,
		Observaciones:    &observaciones,
		Estado:           model.TicketPendiente,
	}

	disp, err := s.horarios.FindOperarioDelHorario(ctx, req.CodHorarioDisp)
	if err != nil {
		return nil, err
	}

	var idOperario *uint
	txErr := runTx(ctx, s.tickets.DB(), func(tx *gorm.DB) error {
		if err := s.tickets.Create(ctx, tx, ticket); err != nil {
			return err
		}
		if err := s.mantenimientos.Create(ctx, tx, mantenimiento); err != nil {
			return err
		}
		if disp != nil {
			idOperario = &disp.IDEmpleado
			return s.tickets.CreateAsignacion(ctx, tx, &model.AsignarOperario{
				CodOperarioXTicket: nuevoCodigo("O"),
				IDEmpleado:         disp.IDEmpleado,
				CodTicket:          ticket.CodTicket,
			})
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	fechaStr := horario.Fecha.Format("2006-01-02")
	s.notificarTicket(ctx, cliente, ticket.CodTicket, "Preventivo", fechaStr)

	return &dto.TicketResponse{
		Success: true,
		Message: "Ticket de mantenimiento preventivo creado exitosamente",
		Ticket: dto.TicketCreado{
			CodTicket:        ticket.CodTicket,
			CodMantenimiento: mantenimiento.CodMantenimiento,
			Fecha:            fechaStr,
			HoraInicio:       horario.HoraInicio,
			HoraFin:          horario.HoraFin,
			CodLoteTicket:    codLote,
			IDSupervisor:     idSupervisor,
			IDOperario:       idOperario,
			Estado:           model.NombreEstadoTicket(ticket.Estado),
			Kilometraje:      req.Kilometraje,
		},
	}, nil
}

func (s *ticketService) notificarTicket(ctx context.Context, cliente *model.Cliente, codTicket, tipoServicio, fecha string) {
	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.EnqueueNotificacion(ctx, worker.NotificacionPayload{
		Tipo:         worker.NotificacionTicketCreado,
		Destinatario: cliente.Correo,
		Nombre:       cliente.Nombre,
		CodTicket:    codTicket,
		TipoServicio: tipoServicio,
		Fecha:        fecha,
	})
	if err != nil {
		log.Warn().Err(err).Str("codticket", codTicket).Msg("ticket notification not enqueued")
	}
}
