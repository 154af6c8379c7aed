package usecase

import (
	"context"

	"github.com/invorax/invorax-go/internal/domain/entity"
	"github.com/invorax/invorax-go/internal/domain/repository"
	"github.com/invorax/invorax-go/internal/domain/stock"
)

// StockUseCase arma la vista de control de stock: lee lotes y productos del
// backend y los pliega con el agregador de dominio. El resultado es transitorio;
// se recalcula en cada invocación.
type StockUseCase struct {
	batches  repository.BatchRepository
	products repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(batches repository.BatchRepository, products repository.ProductRepository) *StockUseCase {
	return &StockUseCase{batches: batches, products: products}
}

// Summaries devuelve el resumen de stock por producto.
func (uc *StockUseCase) Summaries(ctx context.Context) ([]entity.StockSummary, error) {
	batches, err := uc.batches.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return stock.Aggregate(batches, products), nil
}
