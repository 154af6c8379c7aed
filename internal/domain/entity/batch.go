package entity

import "github.com/shopspring/decimal"

// Batch lote recibido de un producto, con su propia cantidad y vencimiento.
// Code es el identificador humano (ej. LOTE-1-0042), distinto del id numérico.
// Invariante asumido del backend: 0 ≤ QuantityAvailable ≤ QuantityReceived.
type Batch struct {
	ID                int64           `json:"id"`
	Code              string          `json:"code"`
	Product           ProductRef      `json:"product"`
	QuantityReceived  int64           `json:"quantity_received"`
	QuantityAvailable int64           `json:"quantity_available"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	ExpirationDate    string          `json:"expiration_date,omitempty"` // "2006-01-02" o vacío
	Supplier          string          `json:"supplier"`
}

// NewBatch carga para crear un lote. Si QuantityAvailable es nil el backend lo
// inicializa igual a la cantidad recibida; si Code es vacío el backend genera uno.
type NewBatch struct {
	Code              string          `json:"code,omitempty"`
	Product           int64           `json:"product"`
	QuantityReceived  int64           `json:"quantity_received"`
	QuantityAvailable *int64          `json:"quantity_available,omitempty"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	ExpirationDate    string          `json:"expiration_date,omitempty"`
	Supplier          string          `json:"supplier"`
}
