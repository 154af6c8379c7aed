package entity

// Session par de credenciales más el usuario autenticado.
// Invariante: AccessToken presente ⇔ User presente; nunca uno sin el otro.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         *User
}

// IsAuthenticated indica si hay una sesión activa completa.
func (s Session) IsAuthenticated() bool {
	return s.AccessToken != "" && s.User != nil
}
