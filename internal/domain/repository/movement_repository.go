package repository

import (
	"context"

	"github.com/invorax/invorax-go/internal/domain/entity"
)

// MovementRepository define el puerto de acceso a movimientos del backend (DIP).
type MovementRepository interface {
	List(ctx context.Context) ([]entity.Movement, error)
	Get(ctx context.Context, id int64) (*entity.Movement, error)
	Create(ctx context.Context, in entity.NewMovement) (*entity.Movement, error)
	Update(ctx context.Context, id int64, in entity.NewMovement) (*entity.Movement, error)
	Delete(ctx context.Context, id int64) error
}
