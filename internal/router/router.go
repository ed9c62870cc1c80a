package router

import (
	"time"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/config"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/handler"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/middleware"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/repository"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/service"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
//
// Protected routes only verify the token; which data a request can see
// is decided by resolving the account's client or employee record, so
// a client token gets nothing out of the operator or admin groups.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	empleadoRepo := repository.NewEmpleadoRepository(db)
	vehiculoRepo := repository.NewVehiculoRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	loteRepo := repository.NewLoteRepository(db)
	horarioRepo := repository.NewHorarioRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	mantenimientoRepo := repository.NewMantenimientoRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, clienteRepo, empleadoRepo, cfg, dispatcher)
	clienteSvc := service.NewClienteService(clienteRepo, vehiculoRepo, ticketRepo, mantenimientoRepo)
	ticketSvc := service.NewTicketService(ticketRepo, loteRepo, empleadoRepo, horarioRepo, catalogoRepo, mantenimientoRepo, rdb, dispatcher)
	operarioSvc := service.NewOperarioService(empleadoRepo, usuarioRepo, ticketRepo, mantenimientoRepo)
	adminSvc := service.NewAdminService(usuarioRepo, clienteRepo, empleadoRepo, vehiculoRepo, ticketRepo, mantenimientoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	ticketsH := handler.NewTicketsHandler(ticketSvc, clienteSvc)
	clienteH := handler.NewClienteHandler(clienteSvc, ticketRepo, vehiculoRepo)
	operarioH := handler.NewOperarioHandler(operarioSvc)
	adminH := handler.NewAdminHandler(adminSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.LoginRateLimiter(), authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)

	authed := r.Group("/auth", jwtMW)
	{
		authed.GET("/profile", authH.Profile)
		authed.POST("/change-password", authH.ChangePassword)
	}

	v1 := r.Group("/v1", jwtMW)
	{
		client := v1.Group("/client")
		{
			client.GET("/profile", clienteH.Perfil)
			client.PUT("/profile", clienteH.ActualizarPerfil)

			client.GET("/vehiculos", clienteH.Vehiculos)
			client.POST("/vehiculos", clienteH.RegistrarVehiculo)

			client.GET("/mantenimientos/correctivos", clienteH.MantenimientosCorrectivos)
			client.GET("/mantenimientos/preventivos", clienteH.MantenimientosPreventivos)
			client.GET("/servicios/recientes", clienteH.ServiciosRecientes)

			client.GET("/tickets", clienteH.Tickets)
			client.GET("/tickets/:codticket/pdf", clienteH.DescargarOrdenPDF)

			client.POST("/tickets/diagnostico", ticketsH.SolicitarDiagnostico)
			client.POST("/tickets/correctivo", ticketsH.SolicitarCorrectivo)
			client.POST("/tickets/preventivo", ticketsH.SolicitarPreventivo)

			client.GET("/horarios", ticketsH.Horarios)
			client.GET("/servicios/correctivos", ticketsH.ServiciosCorrectivos)
			client.GET("/operarios/disponible", ticketsH.OperarioDisponible)
		}

		operator := v1.Group("/operator")
		{
			operator.GET("/profile", operarioH.Perfil)
			operator.GET("/tickets", operarioH.TicketsAsignados)
			operator.GET("/stats", operarioH.Stats)
			operator.GET("/mantenimientos", operarioH.MantenimientosRealizados)
			operator.GET("/trabajos/recientes", operarioH.TrabajosRecientes)
		}

		admin := v1.Group("/admin")
		{
			admin.GET("/dashboard", adminH.Dashboard)
			admin.GET("/usuarios", adminH.Usuarios)
			admin.GET("/vehiculos", adminH.Vehiculos)
			admin.GET("/tickets", adminH.Tickets)
			admin.GET("/mantenimientos", adminH.Mantenimientos)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
