package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/dto"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ticketFixture struct {
	tickets        *stubTicketRepo
	lotes          *stubLoteRepo
	empleados      *stubEmpleadoRepo
	horarios       *stubHorarioRepo
	catalogos      *stubCatalogoRepo
	mantenimientos *stubMantenimientoRepo
	svc            service.TicketService
}

func newTicketFixture() *ticketFixture {
	f := &ticketFixture{
		tickets:        &stubTicketRepo{},
		lotes:          &stubLoteRepo{},
		empleados:      newStubEmpleadoRepo(),
		horarios:       newStubHorarioRepo(),
		catalogos:      &stubCatalogoRepo{},
		mantenimientos: &stubMantenimientoRepo{},
	}
	f.svc = service.NewTicketService(
		f.tickets, f.lotes, f.empleados, f.horarios,
		f.catalogos, f.mantenimientos, nil, nil,
	)
	return f
}

func (f *ticketFixture) seedSupervisores(ids ...uint) {
	for _, id := range ids {
		f.empleados.supervisores = append(f.empleados.supervisores, model.Empleado{
			IDEmpleado: id,
			Nombres:    "Supervisor",
		})
	}
}

var codSeq int

// seedCarga assigns n tickets on fecha to a supervisor.
func (f *ticketFixture) seedCarga(idSupervisor uint, fecha time.Time, n int) {
	for i := 0; i < n; i++ {
		id := idSupervisor
		codSeq++
		f.tickets.tickets = append(f.tickets.tickets, &model.Ticket{
			CodTicket:    fmt.Sprintf("TKT%05d", codSeq),
			Fecha:        fecha,
			Estado:       model.TicketPendiente,
			IDSupervisor: &id,
		})
	}
}

func (f *ticketFixture) seedLoteActivo(fecha time.Time) {
	f.lotes.lote = &model.LoteTicket{
		CodLoteTicket:    "LOT00001",
		FechaGeneracion:  fecha.AddDate(0, 0, -1),
		FechaVencimiento: fecha.AddDate(0, 0, 1),
	}
}

func (f *ticketFixture) seedServicio(cod, tipo string, tarifa int64) {
	f.catalogos.servicios = append(f.catalogos.servicios, model.CatalogoServicio{
		CodServicio:       cod,
		Descripcion:       "Servicio " + cod,
		Tarifa:            decimal.NewFromInt(tarifa),
		TipoMantenimiento: model.TipoMantenimiento{NombreTipo: tipo},
	})
}

var clientePrueba = &model.Cliente{
	DNICliente: "00000042",
	IDUsuario:  42,
	Nombre:     "Ana",
	ApePaterno: "Quispe",
	Correo:     "ana@example.com",
}

// ── Supervisor round-robin ────────────────────────────────────────────────────

func TestSupervisorDisponible_PicksLeastLoaded(t *testing.T) {
	f := newTicketFixture()
	hoy := time.Now()
	f.seedSupervisores(1, 2, 3, 4, 5)
	for i, carga := range []int{3, 1, 4, 1, 5} {
		f.seedCarga(uint(i+1), hoy, carga)
	}

	sup, err := f.svc.SupervisorDisponible(context.Background(), hoy)
	require.NoError(t, err)
	require.NotNil(t, sup)
	// Supervisors 2 and 4 tie at one ticket; the lower id wins.
	assert.Equal(t, uint(2), sup.IDEmpleado)
}

func TestSupervisorDisponible_ZeroLoadWins(t *testing.T) {
	f := newTicketFixture()
	hoy := time.Now()
	f.seedSupervisores(7, 9)
	f.seedCarga(7, hoy, 2)

	sup, err := f.svc.SupervisorDisponible(context.Background(), hoy)
	require.NoError(t, err)
	assert.Equal(t, uint(9), sup.IDEmpleado)
}

func TestSupervisorDisponible_CountsOnlyThatDate(t *testing.T) {
	f := newTicketFixture()
	hoy := time.Now()
	f.seedSupervisores(1, 2)
	// Yesterday's load must not count against supervisor 1.
	f.seedCarga(1, hoy.AddDate(0, 0, -1), 10)
	f.seedCarga(2, hoy, 1)

	sup, err := f.svc.SupervisorDisponible(context.Background(), hoy)
	require.NoError(t, err)
	assert.Equal(t, uint(1), sup.IDEmpleado)
}

func TestSupervisorDisponible_NoneRegistered(t *testing.T) {
	f := newTicketFixture()
	sup, err := f.svc.SupervisorDisponible(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Nil(t, sup)
}

// ── Diagnostic intake: assignment is optional ─────────────────────────────────

func TestSolicitarDiagnostico_SinLoteNiSupervisor(t *testing.T) {
	f := newTicketFixture()

	resp, err := f.svc.SolicitarDiagnostico(context.Background(), clientePrueba, dto.SolicitarDiagnosticoRequest{
		CodVehiculo: "VEH00001",
		Fecha:       "2026-09-01",
		HoraInicio:  "09:00",
		HoraFin:     "10:00",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Nil(t, resp.Ticket.CodLoteTicket)
	assert.Nil(t, resp.Ticket.IDSupervisor)
	assert.Equal(t, "Pendiente", resp.Ticket.Estado)
	require.Len(t, f.tickets.tickets, 1)
	assert.Equal(t, clientePrueba.DNICliente, f.tickets.tickets[0].DNICliente)
}

func TestSolicitarDiagnostico_ConLoteYSupervisor(t *testing.T) {
	f := newTicketFixture()
	fecha, _ := time.Parse("2006-01-02", "2026-09-01")
	f.seedLoteActivo(fecha)
	f.seedSupervisores(3)

	resp, err := f.svc.SolicitarDiagnostico(context.Background(), clientePrueba, dto.SolicitarDiagnosticoRequest{
		CodVehiculo: "VEH00001",
		Fecha:       "2026-09-01",
		HoraInicio:  "09:00",
		HoraFin:     "10:00",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Ticket.CodLoteTicket)
	assert.Equal(t, "LOT00001", *resp.Ticket.CodLoteTicket)
	require.NotNil(t, resp.Ticket.IDSupervisor)
	assert.Equal(t, uint(3), *resp.Ticket.IDSupervisor)
}

func TestSolicitarDiagnostico_OperarioElegido(t *testing.T) {
	f := newTicketFixture()
	idOperario := uint(11)

	resp, err := f.svc.SolicitarDiagnostico(context.Background(), clientePrueba, dto.SolicitarDiagnosticoRequest{
		CodVehiculo: "VEH00001",
		Fecha:       "2026-09-01",
		HoraInicio:  "09:00",
		HoraFin:     "10:00",
		IDEmpleado:  &idOperario,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Ticket.IDOperario)
	assert.Equal(t, idOperario, *resp.Ticket.IDOperario)
	require.Len(t, f.tickets.asignaciones, 1)
	assert.Equal(t, resp.Ticket.CodTicket, f.tickets.asignaciones[0].CodTicket)
}

// ── Corrective intake: assignment is mandatory ────────────────────────────────

func TestSolicitarCorrectivo_SinLote(t *testing.T) {
	f := newTicketFixture()
	f.seedSupervisores(1) // a supervisor alone is not enough
	f.seedServicio("SRV00001", model.TipoCorrectivo, 150)

	_, err := f.svc.SolicitarCorrectivo(context.Background(), clientePrueba, dto.SolicitarCorrectivoRequest{
		CodVehiculo: "VEH00001",
		CodServicio: "SRV00001",
		Fecha:       "2026-09-01",
		HoraInicio:  "09:00",
	})
	assert.ErrorIs(t, err, service.ErrSinLoteActivo)
	assert.Empty(t, f.tickets.tickets)
}

func TestSolicitarCorrectivo_SinSupervisor(t *testing.T) {
	f := newTicketFixture()
	fecha, _ := time.Parse("2006-01-02", "2026-09-01")
	f.seedLoteActivo(fecha)
	f.seedServicio("SRV00001", model.TipoCorrectivo, 150)

	_, err := f.svc.SolicitarCorrectivo(context.Background(), clientePrueba, dto.SolicitarCorrectivoRequest{
		CodVehiculo: "VEH00001",
		CodServicio: "SRV00001",
		Fecha:       "2026-09-01",
		HoraInicio:  "09:00",
	})
	assert.ErrorIs(t, err, service.ErrSinSupervisor)
}

func TestSolicitarCorrectivo_ServicioInexistente(t *testing.T) {
	f := newTicketFixture()
	fecha, _ := time.Parse("2006-01-02", "2026-09-01")
	f.seedLoteActivo(fecha)
	f.seedSupervisores(1)

	_, err := f.svc.SolicitarCorrectivo(context.Background(), clientePrueba, dto.SolicitarCorrectivoRequest{
		CodVehiculo: "VEH00001",
		CodServicio: "NOEXISTE",
		Fecha:       "2026-09-01",
		HoraInicio:  "09:00",
	})
	assert.ErrorIs(t, err, service.ErrServicioNoEncontrado)
}

func TestSolicitarCorrectivo_CreaMantenimientoConTarifa(t *testing.T) {
	f := newTicketFixture()
	fecha, _ := time.Parse("2006-01-02", "2026-09-01")
	f.seedLoteActivo(fecha)
	f.seedSupervisores(1)
	f.seedServicio("SRV00001", model.TipoCorrectivo, 150)

	resp, err := f.svc.SolicitarCorrectivo(context.Background(), clientePrueba, dto.SolicitarCorrectivoRequest{
		CodVehiculo: "VEH00001",
		CodServicio: "SRV00001",
		Fecha:       "2026-09-01",
		HoraInicio:  "09:00",
	})
	require.NoError(t, err)

	require.Len(t, f.mantenimientos.creados, 1)
	m := f.mantenimientos.creados[0]
	assert.Equal(t, resp.Ticket.CodTicket, m.CodTicket)
	assert.Equal(t, "SRV00001", m.CodServicio)
	require.NotNil(t, m.Monto)
	assert.True(t, m.Monto.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, resp.Ticket.CodMantenimiento, m.CodMantenimiento)
}

// ── Preventive intake ─────────────────────────────────────────────────────────

func seedHorario(f *ticketFixture, cod string, fecha time.Time) {
	f.horarios.horarios[cod] = &model.HorarioDisp{
		CodHorarioDisp: cod,
		Fecha:          fecha,
		HoraInicio:     "08:00",
		HoraFin:        "09:00",
	}
}

func TestSolicitarPreventivo_HorarioInvalido(t *testing.T) {
	f := newTicketFixture()

	_, err := f.svc.SolicitarPreventivo(context.Background(), clientePrueba, dto.SolicitarPreventivoRequest{
		CodVehiculo:    "VEH00001",
		CodHorarioDisp: "NOEXISTE",
		Kilometraje:    15000,
	})
	assert.ErrorIs(t, err, service.ErrHorarioNoDisponible)
}

func TestSolicitarPreventivo_SinCatalogoPreventivo(t *testing.T) {
	f := newTicketFixture()
	fecha, _ := time.Parse("2006-01-02", "2026-09-01")
	seedHorario(f, "HOR00001", fecha)
	f.seedLoteActivo(fecha)
	f.seedSupervisores(1)
	f.seedServicio("SRV00001", model.TipoCorrectivo, 150) // wrong type only

	_, err := f.svc.SolicitarPreventivo(context.Background(), clientePrueba, dto.SolicitarPreventivoRequest{
		CodVehiculo:    "VEH00001",
		CodHorarioDisp: "HOR00001",
		Kilometraje:    15000,
	})
	assert.ErrorIs(t, err, service.ErrSinServicioPreventivo)
}

func TestSolicitarPreventivo_AdjuntaOperarioDelHorario(t *testing.T) {
	f := newTicketFixture()
	fecha, _ := time.Parse("2006-01-02", "2026-09-01")
	seedHorario(f, "HOR00001", fecha)
	f.seedLoteActivo(fecha)
	f.seedSupervisores(1)
	f.seedServicio("SRV00002", model.TipoPreventivo, 90)
	f.horarios.operarioDelHorario["HOR00001"] = &model.DispOperario{
		CodHorarioDisp: "HOR00001",
		IDEmpleado:     21,
	}

	resp, err := f.svc.SolicitarPreventivo(context.Background(), clientePrueba, dto.SolicitarPreventivoRequest{
		CodVehiculo:    "VEH00001",
		CodHorarioDisp: "HOR00001",
		Kilometraje:    15000,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Ticket.IDOperario)
	assert.Equal(t, uint(21), *resp.Ticket.IDOperario)
	require.Len(t, f.tickets.asignaciones, 1)
	assert.Equal(t, uint(21), f.tickets.asignaciones[0].IDEmpleado)

	require.Len(t, f.mantenimientos.creados, 1)
	require.NotNil(t, f.mantenimientos.creados[0].Observaciones)
	assert.Equal(t, "Kilometraje: 15000", *f.mantenimientos.creados[0].Observaciones)
	assert.Equal(t, 15000, resp.Ticket.Kilometraje)
}

func TestSolicitarPreventivo_SinOperarioEnHorario(t *testing.T) {
	f := newTicketFixture()
	fecha, _ := time.Parse("2006-01-02", "2026-09-01")
	seedHorario(f, "HOR00001", fecha)
	f.seedLoteActivo(fecha)
	f.seedSupervisores(1)
	f.seedServicio("SRV00002", model.TipoPreventivo, 90)

	resp, err := f.svc.SolicitarPreventivo(context.Background(), clientePrueba, dto.SolicitarPreventivoRequest{
		CodVehiculo:    "VEH00001",
		CodHorarioDisp: "HOR00001",
		Kilometraje:    8000,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Ticket.IDOperario)
	assert.Empty(t, f.tickets.asignaciones)
}

// ── Lookups ───────────────────────────────────────────────────────────────────

func TestServiciosCorrectivos_FiltersByType(t *testing.T) {
	f := newTicketFixture()
	f.seedServicio("SRV00001", model.TipoCorrectivo, 150)
	f.seedServicio("SRV00002", model.TipoPreventivo, 90)
	f.seedServicio("SRV00003", model.TipoCorrectivo, 200)

	resp, err := f.svc.ServiciosCorrectivos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	for _, s := range resp.Servicios {
		assert.Equal(t, model.TipoCorrectivo, s.Tipo)
	}
}

func TestOperarioDisponible(t *testing.T) {
	f := newTicketFixture()
	esp := "Electricidad"
	f.horarios.operarioDisponible = &model.Empleado{
		IDEmpleado:   5,
		Nombres:      "Luis",
		ApePaterno:   "Rojas",
		Especialidad: &esp,
	}

	resp, err := f.svc.OperarioDisponible(context.Background(), time.Now(), "08:00")
	require.NoError(t, err)
	require.NotNil(t, resp.Operario)
	assert.Equal(t, "Luis Rojas", resp.Operario.NombreCompleto)

	f.horarios.operarioDisponible = nil
	resp, err = f.svc.OperarioDisponible(context.Background(), time.Now(), "08:00")
	require.NoError(t, err)
	assert.Nil(t, resp.Operario)
	assert.NotEmpty(t, resp.Message)
}
