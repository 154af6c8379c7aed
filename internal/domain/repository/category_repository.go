package repository

import (
	"context"

	"github.com/invorax/invorax-go/internal/domain/entity"
)

// CategoryRepository define el puerto de acceso a categorías del backend (DIP).
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	Get(ctx context.Context, id int64) (*entity.Category, error)
	Create(ctx context.Context, in entity.NewCategory) (*entity.Category, error)
	Update(ctx context.Context, id int64, in entity.NewCategory) (*entity.Category, error)
	Delete(ctx context.Context, id int64) error
}
