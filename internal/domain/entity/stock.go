package entity

// StockSummary resumen de stock por producto, derivado de los lotes. No se
// persiste: se recalcula en cada lectura y se descarta cuando cambian las
// entradas.
type StockSummary struct {
	ProductID      int64
	ProductName    string
	TotalReceived  int64
	TotalAvailable int64
	TotalSold      int64
	Batches        []BatchStock
}

// BatchStock detalle de un lote dentro de un resumen de stock.
type BatchStock struct {
	Code              string
	QuantityAvailable int64
	ExpirationDate    string
}
