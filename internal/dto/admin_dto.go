package dto

// Paginacion is the standard page envelope for admin listings.
type Paginacion struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPaginacion computes TotalPages from the row count.
func NewPaginacion(page, limit int, total int64) Paginacion {
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return Paginacion{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

type MesTotal struct {
	Mes   string `json:"mes"` // YYYY-MM
	Total int64  `json:"total"`
}

type DashboardStats struct {
	TotalUsuarios           int64            `json:"totalUsuarios"`
	TotalClientes           int64            `json:"totalClientes"`
	TotalEmpleados          int64            `json:"totalEmpleados"`
	TotalVehiculos          int64            `json:"totalVehiculos"`
	TotalTickets            int64            `json:"totalTickets"`
	TicketsPorEstado        map[string]int64 `json:"ticketsPorEstado"`
	MantenimientosPorEstado map[string]int64 `json:"mantenimientosPorEstado"`
	TicketsPorMes           []MesTotal       `json:"ticketsPorMes"`
}

// ActividadReciente is one entry of the dashboard activity feed: the
// newest tickets rendered with vehicle and client labels.
type ActividadReciente struct {
	Tipo        string `json:"tipo"`
	ID          string `json:"id"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Estado      string `json:"estado"`
	Fecha       string `json:"fecha"`
}

type DashboardResponse struct {
	Success     bool                `json:"success"`
	Stats       DashboardStats      `json:"stats"`
	Actividades []ActividadReciente `json:"actividadesRecientes"`
}

type UsuarioAdminItem struct {
	IDUsuario uint   `json:"idusuario"`
	Username  string `json:"username"`
	Correo    string `json:"correo"`
	Estado    string `json:"estado"`
	Tipo      string `json:"tipo"` // CLIENTE | TRABAJADOR
}

type UsuariosAdminResponse struct {
	Success    bool               `json:"success"`
	Usuarios   []UsuarioAdminItem `json:"usuarios"`
	Pagination Paginacion         `json:"pagination"`
}

type VehiculoAdminItem struct {
	CodVehiculo string `json:"codvehiculo"`
	Placa       string `json:"placa"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	DNICliente  string `json:"dnicliente"`
}

type VehiculosAdminResponse struct {
	Success    bool                `json:"success"`
	Vehiculos  []VehiculoAdminItem `json:"vehiculos"`
	Pagination Paginacion          `json:"pagination"`
}

type TicketAdminItem struct {
	CodTicket     string  `json:"codticket"`
	Fecha         string  `json:"fecha"`
	Estado        string  `json:"estado"`
	DNICliente    string  `json:"dnicliente"`
	CodVehiculo   string  `json:"codvehiculo"`
	CodLoteTicket *string `json:"codloteticket"`
	IDSupervisor  *uint   `json:"idsupervisor"`
}

type TicketsAdminResponse struct {
	Success    bool              `json:"success"`
	Tickets    []TicketAdminItem `json:"tickets"`
	Pagination Paginacion        `json:"pagination"`
}

type MantenimientoAdminItem struct {
	CodMantenimiento string `json:"codmantenimiento"`
	CodTicket        string `json:"codticket"`
	CodServicio      string `json:"codservicio"`
	Fecha            string `json:"fecha"`
	Estado           string `json:"estado"`
}

type MantenimientosAdminResponse struct {
	Success        bool                     `json:"success"`
	Mantenimientos []MantenimientoAdminItem `json:"mantenimientos"`
	Pagination     Paginacion               `json:"pagination"`
}
