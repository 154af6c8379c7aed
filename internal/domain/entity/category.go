package entity

import "time"

// Category categoría de productos. El slug es único por empresa (lo valida el
// backend; el cliente lo trata como string requerido opaco).
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Company     int64     `json:"company"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategory carga para crear o actualizar una categoría.
type NewCategory struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}
