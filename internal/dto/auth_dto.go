package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// UserType values accepted at login. The claimed type must match the
// actual identity kind or login fails with 401.
const (
	UserTypeCliente    = "CLIENTE"
	UserTypeTrabajador = "TRABAJADOR"
)

type RegisterRequest struct {
	Nombre     string  `json:"nombre"     validate:"required,min=2,max=100"`
	ApePaterno string  `json:"apePaterno" validate:"required,min=2,max=100"`
	ApeMaterno *string `json:"apeMaterno" validate:"omitempty,max=100"`
	Correo     string  `json:"correo"     validate:"required,email"`
	Password   string  `json:"password"   validate:"required,min=6"`
	Telefono   *string `json:"telefono"   validate:"omitempty,max=15"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
	UserType string `json:"userType" validate:"required,oneof=CLIENTE TRABAJADOR"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// AuthUser is the identity block returned by register and login. Role is
// returned here but deliberately not embedded in the token payload.
type AuthUser struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type AuthResponse struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	User         AuthUser `json:"user"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
}

type TokenResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type ProfileUser struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Status   bool   `json:"status"`
}

type ProfileResponse struct {
	Success bool        `json:"success"`
	User    ProfileUser `json:"user"`
}

// SimpleResponse is the generic success envelope for mutations that
// return no payload.
type SimpleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
