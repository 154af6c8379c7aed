package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrValidation     = errors.New("entrada inválida")
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrNoSession      = errors.New("no hay sesión activa")
	ErrSessionExpired = errors.New("sesión expirada")
	ErrConflict       = errors.New("conflicto con el estado actual")
)
