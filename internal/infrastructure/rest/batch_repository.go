package rest

import (
	"context"
	"fmt"

	"github.com/invorax/invorax-go/internal/domain/entity"
)

// BatchRepository implementación REST de repository.BatchRepository.
type BatchRepository struct {
	c *Client
}

// NewBatchRepository construye el repositorio.
func NewBatchRepository(c *Client) *BatchRepository {
	return &BatchRepository{c: c}
}

func (r *BatchRepository) List(ctx context.Context) ([]entity.Batch, error) {
	return getList[entity.Batch](ctx, r.c, "/batches/")
}

func (r *BatchRepository) Get(ctx context.Context, id int64) (*entity.Batch, error) {
	return getOne[entity.Batch](ctx, r.c, fmt.Sprintf("/batches/%d/", id))
}

func (r *BatchRepository) Create(ctx context.Context, in entity.NewBatch) (*entity.Batch, error) {
	return postOne[entity.Batch](ctx, r.c, "/batches/", in)
}

func (r *BatchRepository) Delete(ctx context.Context, id int64) error {
	return r.c.del(ctx, fmt.Sprintf("/batches/%d/", id))
}
