package repository

import (
	"context"

	"github.com/invorax/invorax-go/internal/domain/entity"
)

// BatchRepository define el puerto de acceso a lotes del backend (DIP).
type BatchRepository interface {
	List(ctx context.Context) ([]entity.Batch, error)
	Get(ctx context.Context, id int64) (*entity.Batch, error)
	Create(ctx context.Context, in entity.NewBatch) (*entity.Batch, error)
	Delete(ctx context.Context, id int64) error
}
