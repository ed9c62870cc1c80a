package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/config"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/dto"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/model"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/repository"
	"github.com/TRABAJOSUNI2025/maintenance-system/internal/worker"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost matches the hashes already in the usuario table; changing
// it only affects newly written hashes.
const bcryptCost = 10

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	GetProfile(ctx context.Context, idUsuario uint) (*dto.ProfileResponse, error)
	ChangePassword(ctx context.Context, idUsuario uint, req dto.ChangePasswordRequest) error
}

type authService struct {
	usuarios   repository.UsuarioRepository
	clientes   repository.ClienteRepository
	empleados  repository.EmpleadoRepository
	cfg        *config.Config
	dispatcher *worker.Dispatcher // nil in unit tests
}

func NewAuthService(
	usuarios repository.UsuarioRepository,
	clientes repository.ClienteRepository,
	empleados repository.EmpleadoRepository,
	cfg *config.Config,
	dispatcher *worker.Dispatcher,
) AuthService {
	return &authService{
		usuarios:   usuarios,
		clientes:   clientes,
		empleados:  empleados,
		cfg:        cfg,
		dispatcher: dispatcher,
	}
}

// Register creates a CLIENTE account: the Usuario credentials row plus
// its Cliente extension, atomically. The temporary document id is the
// new account id zero-padded to 8 digits.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if existing, err := s.usuarios.FindByCorreo(ctx, req.Correo); err == nil && existing != nil {
		return nil, ErrCorreoRegistrado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	usuario := &model.Usuario{
		Username:     strings.SplitN(req.Correo, "@", 2)[0],
		Correo:       req.Correo,
		PasswordHash: string(hash),
		Estado:       model.EstadoActivo,
	}

	txErr := runTx(ctx, s.usuarios.DB(), func(tx *gorm.DB) error {
		if err := s.usuarios.Create(ctx, tx, usuario); err != nil {
			return err
		}
		cliente := &model.Cliente{
			DNICliente: fmt.Sprintf("%08d", usuario.IDUsuario),
			IDUsuario:  usuario.IDUsuario,
			Nombre:     req.Nombre,
			ApePaterno: req.ApePaterno,
			ApeMaterno: req.ApeMaterno,
			Correo:     req.Correo,
			Telefono:   req.Telefono,
		}
		return s.clientes.Create(ctx, tx, cliente)
	})
	if txErr != nil {
		return nil, txErr
	}

	access, refresh, err := s.generarTokens(usuario)
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueNotificacion(ctx, worker.NotificacionPayload{
			Tipo:         worker.NotificacionBienvenida,
			Destinatario: usuario.Correo,
			Nombre:       req.Nombre,
		}); err != nil {
			log.Warn().Err(err).Str("correo", usuario.Correo).Msg("welcome notification not enqueued")
		}
	}

	return &dto.AuthResponse{
		Success: true,
		Message: "Cliente registrado exitosamente",
		User: dto.AuthUser{
			ID:       usuario.IDUsuario,
			Email:    usuario.Correo,
			Username: usuario.Username,
			Role:     model.RolCliente,
		},
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// Login authenticates an account and resolves its authorization role
// against the claimed user type.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	usuario, err := s.usuarios.FindByCorreo(ctx, req.Email)
	if err != nil {
		return nil, ErrCredenciales
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredenciales
	}

	if !usuario.Activo() {
		return nil, ErrCuentaDesactivada
	}

	empleado, err := s.empleados.FindByUsuario(ctx, usuario.IDUsuario)
	if err != nil {
		return nil, err
	}

	rol, err := ResolverRol(NuevaIdentidad(empleado), req.UserType)
	if err != nil {
		return nil, err
	}

	access, refresh, err := s.generarTokens(usuario)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Success: true,
		Message: "Login exitoso",
		User: dto.AuthUser{
			ID:       usuario.IDUsuario,
			Email:    usuario.Correo,
			Username: usuario.Username,
			Role:     rol,
		},
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh access+refresh
// pair. The role is not re-validated here, only account existence.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrRefreshInvalido
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrRefreshInvalido
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, ErrRefreshInvalido
	}

	usuario, err := s.usuarios.FindByID(ctx, uint(sub))
	if err != nil {
		return nil, ErrUsuarioNoEncontrado
	}

	access, refresh, err := s.generarTokens(usuario)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		Success:      true,
		Message:      "Token refrescado",
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (s *authService) GetProfile(ctx context.Context, idUsuario uint) (*dto.ProfileResponse, error) {
	usuario, err := s.usuarios.FindByID(ctx, idUsuario)
	if err != nil {
		return nil, ErrUsuarioNoEncontrado
	}
	return &dto.ProfileResponse{
		Success: true,
		User: dto.ProfileUser{
			ID:       usuario.IDUsuario,
			Email:    usuario.Correo,
			Username: usuario.Username,
			Status:   usuario.Activo(),
		},
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, idUsuario uint, req dto.ChangePasswordRequest) error {
	usuario, err := s.usuarios.FindByID(ctx, idUsuario)
	if err != nil {
		return ErrUsuarioNoEncontrado
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrPasswordActual
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return err
	}
	return s.usuarios.UpdatePassword(ctx, idUsuario, string(hash))
}

// generarTokens mints the access/refresh pair. Payload is {sub, email,
// username} only — the role travels in the login response, not the token.
func (s *authService) generarTokens(u *model.Usuario) (access, refresh string, err error) {
	access, err = s.firmar(u, []byte(s.cfg.JWTSecret), time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.firmar(u, []byte(s.cfg.JWTRefreshSecret), time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *authService) firmar(u *model.Usuario, secret []byte, duracion time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      u.IDUsuario,
		"email":    u.Correo,
		"username": u.Username,
		"exp":      now.Add(duracion).Unix(),
		"iat":      now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
