package usecase

import (
	"context"
	"fmt"

	"github.com/invorax/invorax-go/internal/domain"
	"github.com/invorax/invorax-go/internal/domain/entity"
	"github.com/invorax/invorax-go/internal/domain/repository"
)

// MovementUseCase casos de uso para movimientos de stock.
type MovementUseCase struct {
	repo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// List lista los movimientos de la empresa del usuario.
func (uc *MovementUseCase) List(ctx context.Context) ([]entity.Movement, error) {
	return uc.repo.List(ctx)
}

// Get obtiene un movimiento por id.
func (uc *MovementUseCase) Get(ctx context.Context, id int64) (*entity.Movement, error) {
	return uc.repo.Get(ctx, id)
}

// Create registra un movimiento. El lote se indica por id o por código.
func (uc *MovementUseCase) Create(ctx context.Context, in entity.NewMovement) (*entity.Movement, error) {
	if err := validateMovement(in); err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, in)
}

// Update corrige un movimiento existente.
func (uc *MovementUseCase) Update(ctx context.Context, id int64, in entity.NewMovement) (*entity.Movement, error) {
	if err := validateMovement(in); err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, id, in)
}

// Delete elimina un movimiento por id.
func (uc *MovementUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func validateMovement(in entity.NewMovement) error {
	if in.BatchCode == "" && (in.Batch == nil || *in.Batch <= 0) {
		return fmt.Errorf("%w: el lote es requerido (id o código)", domain.ErrValidation)
	}
	if in.Quantity <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser mayor a cero", domain.ErrValidation)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: tipo de movimiento inválido (IN, OUT, ADJUST, EXPIRED)", domain.ErrValidation)
	}
	return nil
}
