package repository

import (
	"context"

	"github.com/invorax/invorax-go/internal/domain/entity"
)

// ProductRepository define el puerto de acceso a productos del backend (DIP).
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	Get(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, in entity.NewProduct) (*entity.Product, error)
	Update(ctx context.Context, id int64, in entity.NewProduct) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}
