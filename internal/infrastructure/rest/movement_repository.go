package rest

import (
	"context"
	"fmt"

	"github.com/invorax/invorax-go/internal/domain/entity"
)

// MovementRepository implementación REST de repository.MovementRepository.
type MovementRepository struct {
	c *Client
}

// NewMovementRepository construye el repositorio.
func NewMovementRepository(c *Client) *MovementRepository {
	return &MovementRepository{c: c}
}

func (r *MovementRepository) List(ctx context.Context) ([]entity.Movement, error) {
	return getList[entity.Movement](ctx, r.c, "/movements/")
}

func (r *MovementRepository) Get(ctx context.Context, id int64) (*entity.Movement, error) {
	return getOne[entity.Movement](ctx, r.c, fmt.Sprintf("/movements/%d/", id))
}

func (r *MovementRepository) Create(ctx context.Context, in entity.NewMovement) (*entity.Movement, error) {
	return postOne[entity.Movement](ctx, r.c, "/movements/", in)
}

func (r *MovementRepository) Update(ctx context.Context, id int64, in entity.NewMovement) (*entity.Movement, error) {
	return putOne[entity.Movement](ctx, r.c, fmt.Sprintf("/movements/%d/", id), in)
}

func (r *MovementRepository) Delete(ctx context.Context, id int64) error {
	return r.c.del(ctx, fmt.Sprintf("/movements/%d/", id))
}
