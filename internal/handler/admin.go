package handler

import (
	"net/http"
	"strconv"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{ svc service.AdminService }

func NewAdminHandler(svc service.AdminService) *AdminHandler { return &AdminHandler{svc: svc} }

func paginacion(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) Usuarios(c *gin.Context) {
	page, limit := paginacion(c)
	resp, err := h.svc.Usuarios(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) Vehiculos(c *gin.Context) {
	page, limit := paginacion(c)
	resp, err := h.svc.Vehiculos(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) Tickets(c *gin.Context) {
	page, limit := paginacion(c)
	resp, err := h.svc.Tickets(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) Mantenimientos(c *gin.Context) {
	page, limit := paginacion(c)
	resp, err := h.svc.Mantenimientos(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
