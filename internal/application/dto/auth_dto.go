package dto

import "github.com/invorax/invorax-go/internal/domain/entity"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest datos de registro. PasswordConfirm y CompanyName se validan
// en el cliente antes de tocar la red; PasswordConfirm nunca viaja al backend.
type RegisterRequest struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"-"`
	CompanyName     string `json:"company_name"`
}

// TokenPairResponse respuesta de /login/ y /register/.
type TokenPairResponse struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    entity.User `json:"user"`
}

// RefreshRequest cuerpo de /token/refresh/.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse respuesta de /token/refresh/: solo el nuevo access token.
type RefreshResponse struct {
	Access string `json:"access"`
}
