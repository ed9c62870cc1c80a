package handler

import (
	"net/http"
	"time"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/apierror"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/dto"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/middleware"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/service"

	"github.com/gin-gonic/gin"
)

// TicketsHandler serves the intake flows and their supporting lookups.
// The acting client is always resolved from the authenticated account,
// never from the request body.
type TicketsHandler struct {
	tickets  service.TicketService
	clientes service.ClienteService
}

func NewTicketsHandler(tickets service.TicketService, clientes service.ClienteService) *TicketsHandler {
	return &TicketsHandler{tickets: tickets, clientes: clientes}
}

// SolicitarDiagnostico godoc
// @Summary Solicitar ticket de diagnóstico
// @Tags tickets
// @Accept json
// @Produce json
// @Param body body dto.SolicitarDiagnosticoRequest true "Solicitud"
// @Success 201 {object} dto.TicketResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/client/tickets/diagnostico [post]
func (h *TicketsHandler) SolicitarDiagnostico(c *gin.Context) {
	var req dto.SolicitarDiagnosticoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	cliente, err := h.clientes.PerfilPorUsuario(c.Request.Context(), middleware.GetClaims(c).Sub)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.tickets.SolicitarDiagnostico(c.Request.Context(), cliente, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TicketsHandler) SolicitarCorrectivo(c *gin.Context) {
	var req dto.SolicitarCorrectivoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	cliente, err := h.clientes.PerfilPorUsuario(c.Request.Context(), middleware.GetClaims(c).Sub)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.tickets.SolicitarCorrectivo(c.Request.Context(), cliente, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TicketsHandler) SolicitarPreventivo(c *gin.Context) {
	var req dto.SolicitarPreventivoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	cliente, err := h.clientes.PerfilPorUsuario(c.Request.Context(), middleware.GetClaims(c).Sub)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.tickets.SolicitarPreventivo(c.Request.Context(), cliente, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Horarios lists availability slots for ?fecha=YYYY-MM-DD (today by default).
func (h *TicketsHandler) Horarios(c *gin.Context) {
	fecha := time.Now()
	if q := c.Query("fecha"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Fecha inválida, use YYYY-MM-DD"))
			return
		}
		fecha = parsed
	}

	resp, err := h.tickets.HorariosDisponibles(c.Request.Context(), fecha)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TicketsHandler) ServiciosCorrectivos(c *gin.Context) {
	resp, err := h.tickets.ServiciosCorrectivos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// OperarioDisponible looks up a free operator for ?fecha=&horainicio=.
func (h *TicketsHandler) OperarioDisponible(c *gin.Context) {
	fecha, err := time.Parse("2006-01-02", c.Query("fecha"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Fecha inválida, use YYYY-MM-DD"))
		return
	}
	horaInicio := c.Query("horainicio")
	if horaInicio == "" {
		c.JSON(http.StatusBadRequest, apierror.New("horainicio es requerido"))
		return
	}

	resp, err := h.tickets.OperarioDisponible(c.Request.Context(), fecha, horaInicio)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
