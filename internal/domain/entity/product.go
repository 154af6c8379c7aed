package entity

import "time"

// Product definición de un producto del inventario. La categoría puede llegar
// como id o como objeto expandido según el serializer.
type Product struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Slug         string      `json:"slug"`
	Presentation string      `json:"presentation,omitempty"`
	Supplier     string      `json:"supplier"`
	Category     CategoryRef `json:"category"`
	Company      int64       `json:"company"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// NewProduct carga para crear o actualizar un producto.
type NewProduct struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Presentation string `json:"presentation,omitempty"`
	Supplier     string `json:"supplier"`
	Category     int64  `json:"category"`
}
