package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims del access token emitido por el backend Invorax (simplejwt).
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// ExpiresAt devuelve la expiración del access token sin validar la firma.
// El cliente no conoce el secreto de firma del backend; solo necesita leer el
// claim exp para decidir si toca renovar. Devuelve cero si el token no trae exp.
func ExpiresAt(tokenString string) (time.Time, error) {
	parser := jwt.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}

// IsExpired indica si el token ya venció, con un margen de anticipación para no
// lanzar peticiones con un token a punto de expirar. Un token ilegible se trata
// como vencido; un token sin claim exp se asume vigente.
func IsExpired(tokenString string, leeway time.Duration) bool {
	exp, err := ExpiresAt(tokenString)
	if err != nil {
		return true
	}
	if exp.IsZero() {
		return false
	}
	return !time.Now().Add(leeway).Before(exp)
}
