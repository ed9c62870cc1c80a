package handler

import (
	"fmt"
	"net/http"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/apierror"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/dto"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/infra"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/middleware"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/repository"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/service"

	"github.com/gin-gonic/gin"
)

type ClienteHandler struct {
	svc       service.ClienteService
	tickets   repository.TicketRepository
	vehiculos repository.VehiculoRepository
}

func NewClienteHandler(
	svc service.ClienteService,
	tickets repository.TicketRepository,
	vehiculos repository.VehiculoRepository,
) *ClienteHandler {
	return &ClienteHandler{svc: svc, tickets: tickets, vehiculos: vehiculos}
}

func (h *ClienteHandler) Perfil(c *gin.Context) {
	resp, err := h.svc.Perfil(c.Request.Context(), middleware.GetClaims(c).Sub)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClienteHandler) ActualizarPerfil(c *gin.Context) {
	var req dto.ActualizarPerfilRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarPerfil(c.Request.Context(), middleware.GetClaims(c).Sub, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClienteHandler) Vehiculos(c *gin.Context) {
	resp, err := h.svc.Vehiculos(c.Request.Context(), middleware.GetClaims(c).Sub)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarVehiculo godoc
// @Summary Registrar vehículo del cliente
// @Tags client
// @Accept json
// @Produce json
// @Param body body dto.RegistrarVehiculoRequest true "Vehículo"
// @Success 201 {object} dto.VehiculoCreadoResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/client/vehiculos [post]
func (h *ClienteHandler) RegistrarVehiculo(c *gin.Context) {
	var req dto.RegistrarVehiculoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarVehiculo(c.Request.Context(), middleware.GetClaims(c).Sub, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ClienteHandler) MantenimientosCorrectivos(c *gin.Context) {
	h.mantenimientos(c, model.TipoCorrectivo)
}

func (h *ClienteHandler) MantenimientosPreventivos(c *gin.Context) {
	h.mantenimientos(c, model.TipoPreventivo)
}

func (h *ClienteHandler) mantenimientos(c *gin.Context, tipo string) {
	resp, err := h.svc.Mantenimientos(c.Request.Context(), middleware.GetClaims(c).Sub, tipo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClienteHandler) ServiciosRecientes(c *gin.Context) {
	resp, err := h.svc.ServiciosRecientes(c.Request.Context(), middleware.GetClaims(c).Sub)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClienteHandler) Tickets(c *gin.Context) {
	resp, err := h.svc.TicketsSolicitados(c.Request.Context(), middleware.GetClaims(c).Sub)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DescargarOrdenPDF streams the service-order PDF of one of the
// client's own tickets. Tickets of other clients 404.
func (h *ClienteHandler) DescargarOrdenPDF(c *gin.Context) {
	ctx := c.Request.Context()

	cliente, err := h.svc.PerfilPorUsuario(ctx, middleware.GetClaims(c).Sub)
	if err != nil {
		respondError(c, err)
		return
	}

	ticket, err := h.tickets.FindByCod(ctx, c.Param("codticket"))
	if err != nil || ticket.DNICliente != cliente.DNICliente {
		c.JSON(http.StatusNotFound, apierror.New("Ticket no encontrado"))
		return
	}

	vehiculo, err := h.vehiculos.FindByCod(ctx, ticket.CodVehiculo)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}

	data, err := infra.GenerarOrdenServicioPDF(infra.OrdenServicio{
		Ticket:   ticket,
		Cliente:  cliente,
		Vehiculo: vehiculo,
	})
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=orden-%s.pdf", ticket.CodTicket))
	c.Data(http.StatusOK, "application/pdf", data)
}
