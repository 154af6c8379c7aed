package rest

import (
	"context"
	"fmt"

	"github.com/invorax/invorax-go/internal/domain/entity"
)

// ProductRepository implementación REST de repository.ProductRepository.
type ProductRepository struct {
	c *Client
}

// NewProductRepository construye el repositorio.
func NewProductRepository(c *Client) *ProductRepository {
	return &ProductRepository{c: c}
}

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	return getList[entity.Product](ctx, r.c, "/products/")
}

func (r *ProductRepository) Get(ctx context.Context, id int64) (*entity.Product, error) {
	return getOne[entity.Product](ctx, r.c, fmt.Sprintf("/products/%d/", id))
}

func (r *ProductRepository) Create(ctx context.Context, in entity.NewProduct) (*entity.Product, error) {
	return postOne[entity.Product](ctx, r.c, "/products/", in)
}

func (r *ProductRepository) Update(ctx context.Context, id int64, in entity.NewProduct) (*entity.Product, error) {
	return putOne[entity.Product](ctx, r.c, fmt.Sprintf("/products/%d/", id), in)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	return r.c.del(ctx, fmt.Sprintf("/products/%d/", id))
}
