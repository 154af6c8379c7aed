package stock

import "github.com/invorax/invorax-go/internal/domain/entity"

// FallbackProductName etiqueta usada cuando un lote referencia un producto que
// no aparece en la colección de productos. No es un error: puede pasar por
// desfase de paginación o consistencia eventual entre ambas colecciones.
const FallbackProductName = "Producto no encontrado"

// ExpirationUnknown sentinela para lotes sin fecha de vencimiento.
const ExpirationUnknown = "-"

// Aggregate pliega lotes planos en resúmenes de stock por producto (servicio de
// dominio puro: mismas entradas producen exactamente el mismo resultado).
//
// El nombre del producto se resuelve contra la lista de productos; un lote cuyo
// producto no se encuentra igual suma a un resumen con el id crudo y la etiqueta
// de fallback. TotalSold se acumula lote a lote (recibido − disponible), no como
// resta de los agregados, para que una futura ponderación por lote (ej. excluir
// vencidos) no rompa la aritmética.
//
// Orden de salida: primera aparición de cada producto en la lista de lotes.
func Aggregate(batches []entity.Batch, products []entity.Product) []entity.StockSummary {
	names := make(map[int64]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	index := make(map[int64]int, len(batches))
	summaries := make([]entity.StockSummary, 0, len(products))

	for _, b := range batches {
		productID := b.Product.ID()
		i, ok := index[productID]
		if !ok {
			name := names[productID]
			if name == "" {
				name = FallbackProductName
			}
			summaries = append(summaries, entity.StockSummary{
				ProductID:   productID,
				ProductName: name,
			})
			i = len(summaries) - 1
			index[productID] = i
		}

		s := &summaries[i]
		s.TotalReceived += b.QuantityReceived
		s.TotalAvailable += b.QuantityAvailable
		s.TotalSold += b.QuantityReceived - b.QuantityAvailable

		exp := b.ExpirationDate
		if exp == "" {
			exp = ExpirationUnknown
		}
		s.Batches = append(s.Batches, entity.BatchStock{
			Code:              b.Code,
			QuantityAvailable: b.QuantityAvailable,
			ExpirationDate:    exp,
		})
	}

	return summaries
}
