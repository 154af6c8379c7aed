package entity

import "time"

// MovementType tipo de movimiento de stock.
type MovementType string

const (
	MovementIn      MovementType = "IN"
	MovementOut     MovementType = "OUT"
	MovementAdjust  MovementType = "ADJUST"
	MovementExpired MovementType = "EXPIRED"
)

// Valid indica si el tipo es uno de los aceptados por el backend.
func (t MovementType) Valid() bool {
	switch t {
	case MovementIn, MovementOut, MovementAdjust, MovementExpired:
		return true
	}
	return false
}

// Movement cambio registrado contra la cantidad disponible de un lote.
// BatchCode es una copia desnormalizada del código del lote para display y
// para crear movimientos por código.
type Movement struct {
	ID        int64        `json:"id"`
	Product   ProductRef   `json:"product"`
	Batch     BatchRef     `json:"batch"`
	BatchCode string       `json:"batch_code,omitempty"`
	Quantity  int64        `json:"quantity"`
	Type      MovementType `json:"movement_type"`
	Reason    string       `json:"reason"`
	CreatedAt time.Time    `json:"created_at"`
	CreatedBy UserRef      `json:"created_by"`
}

// NewMovement carga para crear o actualizar un movimiento. El lote se indica
// por id o por código (BatchCode tiene prioridad en el backend).
type NewMovement struct {
	Product   *int64       `json:"product,omitempty"`
	Batch     *int64       `json:"batch,omitempty"`
	BatchCode string       `json:"batch_code,omitempty"`
	Quantity  int64        `json:"quantity"`
	Type      MovementType `json:"movement_type"`
	Reason    string       `json:"reason,omitempty"`
}
