package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/invorax/invorax-go/internal/application/dto"
)

// Mensajes genéricos cuando el backend no entrega uno aprovechable.
const (
	genericLoginError    = "Error al iniciar sesión"
	genericRegisterError = "Error al registrarse"
	genericRefreshError  = "Error al renovar la sesión"
)

// AuthAPI implementa session.AuthAPI contra los endpoints públicos del backend
// (/login/, /register/, /token/refresh/). No requiere credencial bearer.
type AuthAPI struct {
	c *Client
}

// NewAuthAPI construye el adaptador de autenticación.
func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{c: c}
}

// Login envía las credenciales y devuelve el par de tokens con el usuario.
func (a *AuthAPI) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenPairResponse, error) {
	data, err := a.c.do(ctx, http.MethodPost, "/login/", in)
	if err != nil {
		return nil, withFallback(err, genericLoginError)
	}
	var out dto.TokenPairResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decodificar respuesta de login: %w", err)
	}
	return &out, nil
}

// Register registra un usuario nuevo; el backend crea la empresa y devuelve la
// sesión ya iniciada.
func (a *AuthAPI) Register(ctx context.Context, in dto.RegisterRequest) (*dto.TokenPairResponse, error) {
	data, err := a.c.do(ctx, http.MethodPost, "/register/", in)
	if err != nil {
		return nil, withFallback(err, genericRegisterError)
	}
	var out dto.TokenPairResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decodificar respuesta de registro: %w", err)
	}
	return &out, nil
}

// Refresh canjea el refresh token por un access token nuevo.
func (a *AuthAPI) Refresh(ctx context.Context, refreshToken string) (string, error) {
	data, err := a.c.do(ctx, http.MethodPost, "/token/refresh/", dto.RefreshRequest{Refresh: refreshToken})
	if err != nil {
		return "", withFallback(err, genericRefreshError)
	}
	var out dto.RefreshResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decodificar respuesta de refresh: %w", err)
	}
	return out.Access, nil
}
