package session

import "encoding/json"

// StoredSession estado de sesión persistido entre ejecuciones. User se guarda
// crudo para que el restore pueda detectar un registro corrupto y descartar
// toda la sesión en lugar de operar con estado parcial.
type StoredSession struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	User         json.RawMessage `json:"user"`
}

// Store persistencia clave-valor de la sesión. Las tres claves (access_token,
// refresh_token, user) se escriben y borran siempre como una sola transacción;
// ningún observador externo puede ver una escritura a medias.
type Store interface {
	// Load devuelve la sesión persistida, o nil si no hay ninguna.
	Load() (*StoredSession, error)
	Save(s StoredSession) error
	Clear() error
}
