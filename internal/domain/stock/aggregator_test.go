package stock_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorax/invorax-go/internal/domain/entity"
	"github.com/invorax/invorax-go/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// batchFor construye un lote referenciando al producto por id plano.
func batchFor(productID int64, code string, received, available int64) entity.Batch {
	var b entity.Batch
	raw := []byte(`{"product": ` + jsonInt(productID) + `, "code": "` + code + `"}`)
	if err := json.Unmarshal(raw, &b); err != nil {
		panic(err)
	}
	b.QuantityReceived = received
	b.QuantityAvailable = available
	return b
}

func jsonInt(n int64) string {
	raw, _ := json.Marshal(n)
	return string(raw)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Aggregate
// ──────────────────────────────────────────────────────────────────────────────

// Caso base: dos lotes del mismo producto se acumulan en un solo resumen.
func TestAggregate_AcumulaLotesPorProducto(t *testing.T) {
	batches := []entity.Batch{
		batchFor(1, "B1", 100, 40),
		batchFor(1, "B2", 50, 50),
	}
	products := []entity.Product{{ID: 1, Name: "Widget"}}

	out := stock.Aggregate(batches, products)

	require.Len(t, out, 1, "dos lotes del mismo producto deben producir un resumen")
	s := out[0]
	assert.Equal(t, int64(1), s.ProductID)
	assert.Equal(t, "Widget", s.ProductName)
	assert.Equal(t, int64(150), s.TotalReceived)
	assert.Equal(t, int64(90), s.TotalAvailable)
	assert.Equal(t, int64(60), s.TotalSold)

	require.Len(t, s.Batches, 2, "el detalle debe conservar un renglón por lote")
	assert.Equal(t, "B1", s.Batches[0].Code)
	assert.Equal(t, int64(40), s.Batches[0].QuantityAvailable)
	assert.Equal(t, "B2", s.Batches[1].Code)
	assert.Equal(t, int64(50), s.Batches[1].QuantityAvailable)
}

// Un lote cuyo producto no está en la lista igual suma, con la etiqueta de
// fallback; no es un error.
func TestAggregate_ProductoNoEncontrado_UsaFallback(t *testing.T) {
	batches := []entity.Batch{batchFor(99, "X1", 10, 10)}

	out := stock.Aggregate(batches, []entity.Product{{ID: 1, Name: "Widget"}})

	require.Len(t, out, 1)
	assert.Equal(t, int64(99), out[0].ProductID, "el resumen se indexa por el id crudo")
	assert.Equal(t, stock.FallbackProductName, out[0].ProductName)
}

// Lista vacía de lotes produce lista vacía, no error ni nil-panic.
func TestAggregate_SinLotes_ResumenVacio(t *testing.T) {
	out := stock.Aggregate(nil, []entity.Product{{ID: 1, Name: "Widget"}})
	assert.Empty(t, out)
}

// El orden de salida es el de primera aparición de cada producto en los lotes,
// no el orden de la lista de productos ni orden por id.
func TestAggregate_OrdenDePrimeraAparicion(t *testing.T) {
	batches := []entity.Batch{
		batchFor(5, "A", 1, 1),
		batchFor(2, "B", 1, 1),
		batchFor(5, "C", 1, 1),
		batchFor(9, "D", 1, 1),
	}

	out := stock.Aggregate(batches, nil)

	require.Len(t, out, 3)
	assert.Equal(t, int64(5), out[0].ProductID)
	assert.Equal(t, int64(2), out[1].ProductID)
	assert.Equal(t, int64(9), out[2].ProductID)
}

// Determinismo: misma entrada, salida estructuralmente idéntica.
func TestAggregate_EsDeterminista(t *testing.T) {
	batches := []entity.Batch{
		batchFor(1, "B1", 100, 40),
		batchFor(2, "B2", 30, 5),
		batchFor(1, "B3", 7, 0),
	}
	products := []entity.Product{{ID: 1, Name: "Widget"}, {ID: 2, Name: "Gadget"}}

	first := stock.Aggregate(batches, products)
	second := stock.Aggregate(batches, products)

	assert.Equal(t, first, second)
}

// Propiedad aritmética: TotalSold = TotalReceived − TotalAvailable, y ambos
// coinciden con las sumas por lote.
func TestAggregate_AritmeticaPorLote(t *testing.T) {
	batches := []entity.Batch{
		batchFor(1, "B1", 100, 40),
		batchFor(1, "B2", 50, 50),
		batchFor(2, "C1", 80, 12),
	}

	out := stock.Aggregate(batches, nil)

	for _, s := range out {
		assert.Equal(t, s.TotalReceived-s.TotalAvailable, s.TotalSold,
			"la resta global debe coincidir con la acumulación por lote")

		var available int64
		for _, b := range s.Batches {
			available += b.QuantityAvailable
		}
		assert.Equal(t, s.TotalAvailable, available,
			"el total disponible debe ser la suma del detalle por lote")
	}
}

// Lote con producto expandido: el id se toma del objeto embebido, pero el
// nombre se resuelve contra la lista de productos igual que con id plano.
func TestAggregate_ProductoExpandido(t *testing.T) {
	var b entity.Batch
	raw := []byte(`{"code": "E1", "product": {"id": 4, "name": "Inline"}, "quantity_received": 20, "quantity_available": 8}`)
	require.NoError(t, json.Unmarshal(raw, &b))

	out := stock.Aggregate([]entity.Batch{b}, []entity.Product{{ID: 4, Name: "Tornillos"}})

	require.Len(t, out, 1)
	assert.Equal(t, int64(4), out[0].ProductID)
	assert.Equal(t, "Tornillos", out[0].ProductName,
		"el nombre sale de la lista de productos, no del objeto embebido")
	assert.Equal(t, int64(12), out[0].TotalSold)
}

// Lote sin fecha de vencimiento: el detalle lleva el sentinela "-", nunca falla
// por parseo de fechas.
func TestAggregate_VencimientoAusente_UsaSentinela(t *testing.T) {
	b := batchFor(1, "S1", 5, 5)
	b.ExpirationDate = ""

	out := stock.Aggregate([]entity.Batch{b}, nil)

	require.Len(t, out, 1)
	require.Len(t, out[0].Batches, 1)
	assert.Equal(t, stock.ExpirationUnknown, out[0].Batches[0].ExpirationDate)
}
