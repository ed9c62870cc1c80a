package handler

import (
	"net/http"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/middleware"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/service"

	"github.com/gin-gonic/gin"
)

type OperarioHandler struct{ svc service.OperarioService }

func NewOperarioHandler(svc service.OperarioService) *OperarioHandler {
	return &OperarioHandler{svc: svc}
}

func (h *OperarioHandler) Perfil(c *gin.Context) {
	resp, err := h.svc.PerfilPorUsuario(c.Request.Context(), middleware.GetClaims(c).Sub)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OperarioHandler) TicketsAsignados(c *gin.Context) {
	resp, err := h.svc.TicketsAsignados(c.Request.Context(), middleware.GetClaims(c).Sub)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OperarioHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context(), middleware.GetClaims(c).Sub)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OperarioHandler) MantenimientosRealizados(c *gin.Context) {
	resp, err := h.svc.MantenimientosRealizados(c.Request.Context(), middleware.GetClaims(c).Sub)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OperarioHandler) TrabajosRecientes(c *gin.Context) {
	resp, err := h.svc.TrabajosRecientes(c.Request.Context(), middleware.GetClaims(c).Sub)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
