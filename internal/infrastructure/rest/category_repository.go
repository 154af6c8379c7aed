package rest

import (
	"context"
	"fmt"

	"github.com/invorax/invorax-go/internal/domain/entity"
)

// CategoryRepository implementación REST de repository.CategoryRepository.
type CategoryRepository struct {
	c *Client
}

// NewCategoryRepository construye el repositorio.
func NewCategoryRepository(c *Client) *CategoryRepository {
	return &CategoryRepository{c: c}
}

func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	return getList[entity.Category](ctx, r.c, "/categories/")
}

func (r *CategoryRepository) Get(ctx context.Context, id int64) (*entity.Category, error) {
	return getOne[entity.Category](ctx, r.c, fmt.Sprintf("/categories/%d/", id))
}

func (r *CategoryRepository) Create(ctx context.Context, in entity.NewCategory) (*entity.Category, error) {
	return postOne[entity.Category](ctx, r.c, "/categories/", in)
}

func (r *CategoryRepository) Update(ctx context.Context, id int64, in entity.NewCategory) (*entity.Category, error) {
	return putOne[entity.Category](ctx, r.c, fmt.Sprintf("/categories/%d/", id), in)
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	return r.c.del(ctx, fmt.Sprintf("/categories/%d/", id))
}
