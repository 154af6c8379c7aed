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

// CategoryUseCase casos de uso CRUD para categorías, con validación en el
// cliente antes de tocar la red.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List lista las categorías de la empresa del usuario.
func (uc *CategoryUseCase) List(ctx context.Context) ([]entity.Category, error) {
	return uc.repo.List(ctx)
}

// Get obtiene una categoría por id.
func (uc *CategoryUseCase) Get(ctx context.Context, id int64) (*entity.Category, error) {
	return uc.repo.Get(ctx, id)
}

// Create crea una categoría. Si no se indica slug se sugiere uno desde el nombre.
func (uc *CategoryUseCase) Create(ctx context.Context, in entity.NewCategory) (*entity.Category, error) {
	if err := validateCategory(&in); err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, in)
}

// Update actualiza una categoría existente.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in entity.NewCategory) (*entity.Category, error) {
	if err := validateCategory(&in); err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, id, in)
}

// Delete elimina una categoría por id.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func validateCategory(in *entity.NewCategory) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: el nombre es requerido", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Slug) == "" {
		in.Slug = slug.Suggest(in.Name)
	}
	return nil
}
