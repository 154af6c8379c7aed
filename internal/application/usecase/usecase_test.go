package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorax/invorax-go/internal/application/usecase"
	"github.com/invorax/invorax-go/internal/domain"
	"github.com/invorax/invorax-go/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria — solo los métodos que estos tests ejercitan hacen algo útil
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	created *entity.NewCategory
}

func (f *fakeCategoryRepo) List(context.Context) ([]entity.Category, error)      { return nil, nil }
func (f *fakeCategoryRepo) Get(context.Context, int64) (*entity.Category, error) { return nil, nil }
func (f *fakeCategoryRepo) Create(_ context.Context, in entity.NewCategory) (*entity.Category, error) {
	f.created = &in
	return &entity.Category{ID: 1, Name: in.Name, Slug: in.Slug}, nil
}
func (f *fakeCategoryRepo) Update(_ context.Context, _ int64, in entity.NewCategory) (*entity.Category, error) {
	f.created = &in
	return &entity.Category{ID: 1, Name: in.Name, Slug: in.Slug}, nil
}
func (f *fakeCategoryRepo) Delete(context.Context, int64) error { return nil }

type fakeBatchRepo struct {
	batches []entity.Batch
	creates int
	listErr error
}

func (f *fakeBatchRepo) List(context.Context) ([]entity.Batch, error) {
	return f.batches, f.listErr
}
func (f *fakeBatchRepo) Get(context.Context, int64) (*entity.Batch, error) { return nil, nil }
func (f *fakeBatchRepo) Create(_ context.Context, in entity.NewBatch) (*entity.Batch, error) {
	f.creates++
	return &entity.Batch{ID: 1, Product: entity.ProductID(in.Product)}, nil
}
func (f *fakeBatchRepo) Delete(context.Context, int64) error { return nil }

type fakeProductRepo struct {
	products []entity.Product
}

func (f *fakeProductRepo) List(context.Context) ([]entity.Product, error) {
	return f.products, nil
}
func (f *fakeProductRepo) Get(context.Context, int64) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Create(context.Context, entity.NewProduct) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(context.Context, int64, entity.NewProduct) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Delete(context.Context, int64) error { return nil }

type fakeMovementRepo struct {
	creates int
}

func (f *fakeMovementRepo) List(context.Context) ([]entity.Movement, error)      { return nil, nil }
func (f *fakeMovementRepo) Get(context.Context, int64) (*entity.Movement, error) { return nil, nil }
func (f *fakeMovementRepo) Create(context.Context, entity.NewMovement) (*entity.Movement, error) {
	f.creates++
	return &entity.Movement{ID: 1}, nil
}
func (f *fakeMovementRepo) Update(context.Context, int64, entity.NewMovement) (*entity.Movement, error) {
	return nil, nil
}
func (f *fakeMovementRepo) Delete(context.Context, int64) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// CategoryUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryCreate_SugiereSlugDesdeElNombre(t *testing.T) {
	repo := &fakeCategoryRepo{}
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.Create(context.Background(), entity.NewCategory{Name: "Lácteos y Huevos"})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, "lacteos-y-huevos", repo.created.Slug)
}

func TestCategoryCreate_RespetaSlugExplicito(t *testing.T) {
	repo := &fakeCategoryRepo{}
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.Create(context.Background(), entity.NewCategory{Name: "Lácteos", Slug: "dairy"})
	require.NoError(t, err)
	assert.Equal(t, "dairy", repo.created.Slug)
}

func TestCategoryCreate_NombreVacio_NoLlamaAlRepositorio(t *testing.T) {
	repo := &fakeCategoryRepo{}
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.Create(context.Background(), entity.NewCategory{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, repo.created, "una carga inválida no debe salir a la red")
}

// ──────────────────────────────────────────────────────────────────────────────
// BatchUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestBatchCreate_Validaciones(t *testing.T) {
	disponibleAlto := int64(200)
	cases := []struct {
		name string
		in   entity.NewBatch
	}{
		{"sin producto", entity.NewBatch{QuantityReceived: 10, Supplier: "x"}},
		{"cantidad cero", entity.NewBatch{Product: 1, Supplier: "x"}},
		{"disponible mayor a recibida", entity.NewBatch{Product: 1, QuantityReceived: 10, QuantityAvailable: &disponibleAlto, Supplier: "x"}},
		{"precio negativo", entity.NewBatch{Product: 1, QuantityReceived: 10, PurchasePrice: decimal.NewFromInt(-1), Supplier: "x"}},
		{"sin proveedor", entity.NewBatch{Product: 1, QuantityReceived: 10}},
		{"fecha malformada", entity.NewBatch{Product: 1, QuantityReceived: 10, Supplier: "x", ExpirationDate: "31/12/2026"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeBatchRepo{}
			_, err := usecase.NewBatchUseCase(repo).Create(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Zero(t, repo.creates)
		})
	}
}

func TestBatchCreate_CargaValida(t *testing.T) {
	repo := &fakeBatchRepo{}
	in := entity.NewBatch{
		Product:          1,
		QuantityReceived: 10,
		PurchasePrice:    decimal.RequireFromString("99.90"),
		ExpirationDate:   "2026-12-31",
		Supplier:         "Distribuidora Sur",
	}

	_, err := usecase.NewBatchUseCase(repo).Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.creates)
}

// ──────────────────────────────────────────────────────────────────────────────
// MovementUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementCreate_LotePorCodigoOPorID(t *testing.T) {
	batchID := int64(3)
	repo := &fakeMovementRepo{}
	uc := usecase.NewMovementUseCase(repo)

	_, err := uc.Create(context.Background(), entity.NewMovement{
		BatchCode: "LOTE-1-0001", Quantity: 5, Type: entity.MovementOut,
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), entity.NewMovement{
		Batch: &batchID, Quantity: 5, Type: entity.MovementIn,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.creates)
}

func TestMovementCreate_Invalido_NoLlamaAlRepositorio(t *testing.T) {
	repo := &fakeMovementRepo{}
	uc := usecase.NewMovementUseCase(repo)

	cases := []entity.NewMovement{
		{Quantity: 5, Type: entity.MovementOut},                           // sin lote
		{BatchCode: "LOTE-1-0001", Type: entity.MovementOut},              // cantidad cero
		{BatchCode: "LOTE-1-0001", Quantity: 5, Type: "TRANSFER"},         // tipo desconocido
		{BatchCode: "LOTE-1-0001", Quantity: -2, Type: entity.MovementIn}, // cantidad negativa
	}
	for _, in := range cases {
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
	assert.Zero(t, repo.creates)
}

// ──────────────────────────────────────────────────────────────────────────────
// StockUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestStockSummaries_PliegaLotesYProductos(t *testing.T) {
	var b1, b2 entity.Batch
	require.NoError(t, json.Unmarshal([]byte(`{"code": "B1", "product": 1, "quantity_received": 100, "quantity_available": 40}`), &b1))
	require.NoError(t, json.Unmarshal([]byte(`{"code": "B2", "product": 1, "quantity_received": 50, "quantity_available": 50}`), &b2))

	uc := usecase.NewStockUseCase(
		&fakeBatchRepo{batches: []entity.Batch{b1, b2}},
		&fakeProductRepo{products: []entity.Product{{ID: 1, Name: "Widget"}}},
	)

	out, err := uc.Summaries(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Widget", out[0].ProductName)
	assert.Equal(t, int64(60), out[0].TotalSold)
}

func TestStockSummaries_PropagaErroresDelBackend(t *testing.T) {
	fallo := errors.New("backend caído")
	uc := usecase.NewStockUseCase(&fakeBatchRepo{listErr: fallo}, &fakeProductRepo{})

	_, err := uc.Summaries(context.Background())
	assert.ErrorIs(t, err, fallo)
}
