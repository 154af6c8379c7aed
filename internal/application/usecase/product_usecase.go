package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/invorax/invorax-go/internal/domain"
	"github.com/invorax/invorax-go/internal/domain/entity"
	"github.com/invorax/invorax-go/internal/domain/repository"
	"github.com/invorax/invorax-go/pkg/slug"
)

// ProductUseCase casos de uso CRUD para productos. El stock no se toca acá: se
// deriva de lotes y movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista los productos de la empresa del usuario.
func (uc *ProductUseCase) List(ctx context.Context) ([]entity.Product, error) {
	return uc.repo.List(ctx)
}

// Get obtiene un producto por id.
func (uc *ProductUseCase) Get(ctx context.Context, id int64) (*entity.Product, error) {
	return uc.repo.Get(ctx, id)
}

// Create crea un producto. Si no se indica slug se sugiere uno desde el nombre.
func (uc *ProductUseCase) Create(ctx context.Context, in entity.NewProduct) (*entity.Product, error) {
	if err := validateProduct(&in); err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, in)
}

// Update actualiza un producto existente.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in entity.NewProduct) (*entity.Product, error) {
	if err := validateProduct(&in); err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, id, in)
}

// Delete elimina un producto por id.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func validateProduct(in *entity.NewProduct) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: el nombre es requerido", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Supplier) == "" {
		return fmt.Errorf("%w: el proveedor es requerido", domain.ErrValidation)
	}
	if in.Category <= 0 {
		return fmt.Errorf("%w: la categoría es requerida", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Slug) == "" {
		in.Slug = slug.Suggest(in.Name)
	}
	return nil
}
