package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/invorax/invorax-go/internal/domain"
	"github.com/invorax/invorax-go/internal/domain/entity"
	"github.com/invorax/invorax-go/internal/domain/repository"
)

// BatchUseCase casos de uso para lotes.
type BatchUseCase struct {
	repo repository.BatchRepository
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(repo repository.BatchRepository) *BatchUseCase {
	return &BatchUseCase{repo: repo}
}

// List lista los lotes de la empresa del usuario.
func (uc *BatchUseCase) List(ctx context.Context) ([]entity.Batch, error) {
	return uc.repo.List(ctx)
}

// Get obtiene un lote por id.
func (uc *BatchUseCase) Get(ctx context.Context, id int64) (*entity.Batch, error) {
	return uc.repo.Get(ctx, id)
}

// Create registra un ingreso de mercadería como lote nuevo. El backend genera
// el código si viene vacío e inicializa la cantidad disponible si viene nil.
func (uc *BatchUseCase) Create(ctx context.Context, in entity.NewBatch) (*entity.Batch, error) {
	if in.Product <= 0 {
		return nil, fmt.Errorf("%w: el producto es requerido", domain.ErrValidation)
	}
	if in.QuantityReceived <= 0 {
		return nil, fmt.Errorf("%w: la cantidad recibida debe ser mayor a cero", domain.ErrValidation)
	}
	if in.QuantityAvailable != nil && (*in.QuantityAvailable < 0 || *in.QuantityAvailable > in.QuantityReceived) {
		return nil, fmt.Errorf("%w: la cantidad disponible debe estar entre 0 y la recibida", domain.ErrValidation)
	}
	if in.PurchasePrice.IsNegative() {
		return nil, fmt.Errorf("%w: el precio de compra no puede ser negativo", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Supplier) == "" {
		return nil, fmt.Errorf("%w: el proveedor es requerido", domain.ErrValidation)
	}
	if in.ExpirationDate != "" {
		if _, err := time.Parse("2006-01-02", in.ExpirationDate); err != nil {
			return nil, fmt.Errorf("%w: fecha de vencimiento inválida (se espera AAAA-MM-DD)", domain.ErrValidation)
		}
	}
	return uc.repo.Create(ctx, in)
}

// Delete elimina un lote por id.
func (uc *BatchUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
