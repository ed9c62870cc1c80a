package service

import (
	"context"
	"fmt"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/dto"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/repository"
)

type ClienteService interface {
	// PerfilPorUsuario resolves the client record behind an
	// authenticated account. Every client route starts here.
	PerfilPorUsuario(ctx context.Context, idUsuario uint) (*model.Cliente, error)
	Perfil(ctx context.Context, idUsuario uint) (*dto.ClientePerfilResponse, error)
	ActualizarPerfil(ctx context.Context, idUsuario uint, req dto.ActualizarPerfilRequest) (*dto.ClientePerfilResponse, error)
	Vehiculos(ctx context.Context, idUsuario uint) (*dto.VehiculosResponse, error)
	RegistrarVehiculo(ctx context.Context, idUsuario uint, req dto.RegistrarVehiculoRequest) (*dto.VehiculoCreadoResponse, error)
	Mantenimientos(ctx context.Context, idUsuario uint, tipo string) (*dto.MantenimientosResponse, error)
	ServiciosRecientes(ctx context.Context, idUsuario uint) (*dto.MantenimientosResponse, error)
	TicketsSolicitados(ctx context.Context, idUsuario uint) (*dto.TicketsResponse, error)
}

type clienteService struct {
	clientes       repository.ClienteRepository
	vehiculos      repository.VehiculoRepository
	tickets        repository.TicketRepository
	mantenimientos repository.MantenimientoRepository
}

func NewClienteService(
	clientes repository.ClienteRepository,
	vehiculos repository.VehiculoRepository,
	tickets repository.TicketRepository,
	mantenimientos repository.MantenimientoRepository,
) ClienteService {
	return &clienteService{
		clientes:       clientes,
		vehiculos:      vehiculos,
		tickets:        tickets,
		mantenimientos: mantenimientos,
	}
}

func (s *clienteService) PerfilPorUsuario(ctx context.Context, idUsuario uint) (*model.Cliente, error) {
	cliente, err := s.clientes.FindByUsuario(ctx, idUsuario)
	if err != nil {
		return nil, ErrClienteNoEncontrado
	}
	return cliente, nil
}

func (s *clienteService) Perfil(ctx context.Context, idUsuario uint) (*dto.ClientePerfilResponse, error) {
	cliente, err := s.PerfilPorUsuario(ctx, idUsuario)
	if err != nil {
		return nil, err
	}
	return &dto.ClientePerfilResponse{Success: true, Cliente: perfilDTO(cliente)}, nil
}

func (s *clienteService) ActualizarPerfil(ctx context.Context, idUsuario uint, req dto.ActualizarPerfilRequest) (*dto.ClientePerfilResponse, error) {
	cliente, err := s.PerfilPorUsuario(ctx, idUsuario)
	if err != nil {
		return nil, err
	}

	if req.Nombre != "" {
		cliente.Nombre = req.Nombre
	}
	if req.ApePaterno != "" {
		cliente.ApePaterno = req.ApePaterno
	}
	if req.ApeMaterno != nil {
		cliente.ApeMaterno = req.ApeMaterno
	}
	if req.Telefono != nil {
		cliente.Telefono = req.Telefono
	}
	if req.Direccion != nil {
		cliente.Direccion = req.Direccion
	}

	if err := s.clientes.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return &dto.ClientePerfilResponse{Success: true, Cliente: perfilDTO(cliente)}, nil
}

func (s *clienteService) Vehiculos(ctx context.Context, idUsuario uint) (*dto.VehiculosResponse, error) {
	cliente, err := s.PerfilPorUsuario(ctx, idUsuario)
	if err != nil {
		return nil, err
	}

	vehiculos, err := s.vehiculos.ListByCliente(ctx, cliente.DNICliente)
	if err != nil {
		return nil, err
	}

	resp := &dto.VehiculosResponse{
		Success:   true,
		Total:     len(vehiculos),
		Vehiculos: make([]dto.VehiculoItem, 0, len(vehiculos)),
	}
	for _, v := range vehiculos {
		resp.Vehiculos = append(resp.Vehiculos, vehiculoDTO(&v))
	}
	return resp, nil
}

func (s *clienteService) RegistrarVehiculo(ctx context.Context, idUsuario uint, req dto.RegistrarVehiculoRequest) (*dto.VehiculoCreadoResponse, error) {
	cliente, err := s.PerfilPorUsuario(ctx, idUsuario)
	if err != nil {
		return nil, err
	}

	existe, err := s.vehiculos.ExistsPlaca(ctx, req.Placa)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, ErrPlacaRegistrada
	}

	vehiculo := &model.Vehiculo{
		CodVehiculo: nuevoCodigo("VEH"),
		Placa:       req.Placa,
		Marca:       req.Marca,
		Modelo:      req.Modelo,
		Anio:        req.Anio,
		DNICliente:  cliente.DNICliente,
	}
	if err := s.vehiculos.Create(ctx, vehiculo); err != nil {
		return nil, err
	}

	return &dto.VehiculoCreadoResponse{
		Success:  true,
		Message:  "Vehículo registrado exitosamente",
		Vehiculo: vehiculoDTO(vehiculo),
	}, nil
}

func (s *clienteService) Mantenimientos(ctx context.Context, idUsuario uint, tipo string) (*dto.MantenimientosResponse, error) {
	cliente, err := s.PerfilPorUsuario(ctx, idUsuario)
	if err != nil {
		return nil, err
	}

	filas, err := s.mantenimientos.ListByCliente(ctx, cliente.DNICliente, tipo)
	if err != nil {
		return nil, err
	}
	return mantenimientosDTO(filas), nil
}

// ServiciosRecientes returns the client's latest records across both
// maintenance types, for the dashboard card.
func (s *clienteService) ServiciosRecientes(ctx context.Context, idUsuario uint) (*dto.MantenimientosResponse, error) {
	cliente, err := s.PerfilPorUsuario(ctx, idUsuario)
	if err != nil {
		return nil, err
	}

	filas, err := s.mantenimientos.ListRecientesByCliente(ctx, cliente.DNICliente, 4)
	if err != nil {
		return nil, err
	}
	return mantenimientosDTO(filas), nil
}

func (s *clienteService) TicketsSolicitados(ctx context.Context, idUsuario uint) (*dto.TicketsResponse, error) {
	cliente, err := s.PerfilPorUsuario(ctx, idUsuario)
	if err != nil {
		return nil, err
	}

	tickets, err := s.tickets.ListByCliente(ctx, cliente.DNICliente)
	if err != nil {
		return nil, err
	}
	vehiculos, err := s.vehiculos.ListByCliente(ctx, cliente.DNICliente)
	if err != nil {
		return nil, err
	}
	etiquetas := make(map[string]string, len(vehiculos))
	for _, v := range vehiculos {
		etiquetas[v.CodVehiculo] = fmt.Sprintf("%s %s (%s)", v.Marca, v.Modelo, v.Placa)
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
			Vehiculo:   etiquetas[t.CodVehiculo],
		})
	}
	return resp, nil
}

func perfilDTO(c *model.Cliente) dto.ClientePerfil {
	return dto.ClientePerfil{
		DNICliente: c.DNICliente,
		Nombre:     c.Nombre,
		ApePaterno: c.ApePaterno,
		ApeMaterno: c.ApeMaterno,
		Correo:     c.Correo,
		Telefono:   c.Telefono,
		Direccion:  c.Direccion,
	}
}

func vehiculoDTO(v *model.Vehiculo) dto.VehiculoItem {
	return dto.VehiculoItem{
		CodVehiculo: v.CodVehiculo,
		Placa:       v.Placa,
		Marca:       v.Marca,
		Modelo:      v.Modelo,
		Anio:        v.Anio,
	}
}

func mantenimientosDTO(filas []repository.MantenimientoRow) *dto.MantenimientosResponse {
	resp := &dto.MantenimientosResponse{
		Success:        true,
		Total:          len(filas),
		Mantenimientos: make([]dto.MantenimientoItem, 0, len(filas)),
	}
	for _, f := range filas {
		resp.Mantenimientos = append(resp.Mantenimientos, dto.MantenimientoItem{
			CodMantenimiento: f.CodMantenimiento,
			Fecha:            f.Fecha.Format("2006-01-02"),
			Estado:           model.NombreEstadoTicket(f.Estado),
			Monto:            f.Monto,
			Servicio:         f.Servicio,
			Vehiculo:         fmt.Sprintf("%s %s (%s)", f.Marca, f.Modelo, f.Placa),
		})
	}
	return resp
}
