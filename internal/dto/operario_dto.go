package dto

type OperarioPerfil struct {
	IDEmpleado   uint    `json:"idempleado"`
	DNI          string  `json:"dni"`
	Nombres      string  `json:"nombres"`
	ApePaterno   string  `json:"apepaterno"`
	ApeMaterno   *string `json:"apematerno"`
	Telefono     *string `json:"telefono"`
	Especialidad *string `json:"especialidad"`
	Correo       string  `json:"correo"`
}

type OperarioPerfilResponse struct {
	Success  bool           `json:"success"`
	Operario OperarioPerfil `json:"operario"`
}

// OperarioStats aggregates the operator's workload by ticket estado.
type OperarioStats struct {
	Asignados   int64 `json:"asignados"`
	EnProceso   int64 `json:"enProceso"`
	Completados int64 `json:"completados"`
	Total       int64 `json:"total"`
}

type OperarioStatsResponse struct {
	Success bool          `json:"success"`
	Stats   OperarioStats `json:"stats"`
}

type TrabajoReciente struct {
	CodMantenimiento string `json:"codmantenimiento"`
	Fecha            string `json:"fecha"`
	Estado           string `json:"estado"`
	Servicio         string `json:"servicio"`
	Vehiculo         string `json:"vehiculo"`
}

type TrabajosRecientesResponse struct {
	Success  bool              `json:"success"`
	Trabajos []TrabajoReciente `json:"trabajos"`
}
