package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(_ context.Context, id string, quantity int64) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *fakeProductRepo) UpdateStatus(_ context.Context, id, status string) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, _ repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) UpdateStatus(_ context.Context, id, status string) error {
	c, ok := r.categories[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Status = status
	return nil
}

func (r *fakeCategoryRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Category, error) {
	return nil, nil
}

type fakeMovementRepo struct {
	movements  []*entity.StockMovement
	failCreate error
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(_ context.Context, _ string) (*entity.StockMovement, error) {
	return nil, nil
}

func (r *fakeMovementRepo) ListByProduct(_ context.Context, _ string, _, _ int) ([]*entity.StockMovement, error) {
	return nil, nil
}

func (r *fakeMovementRepo) Query(_ context.Context, _ repository.MovementFilter) ([]*entity.StockMovement, error) {
	return nil, nil
}

// fakeTxRunner emula el rollback: toma un snapshot al entrar y lo restaura si fn falla.
type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	productsBefore := make(map[string]*entity.Product, len(tx.products.products))
	for id, p := range tx.products.products {
		cp := *p
		productsBefore[id] = &cp
	}
	movementsBefore := append([]*entity.StockMovement(nil), tx.movements.movements...)

	if err := fn(tx.movements, tx.products); err != nil {
		tx.products.products = productsBefore
		tx.movements.movements = movementsBefore
		return err
	}
	return nil
}

const testUserID = "00000000-0000-0000-0000-000000000001"

func setup() (*usecase.ProductUseCase, *fakeProductRepo, *fakeCategoryRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo()
	categoryRepo := &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
	movRepo := &fakeMovementRepo{}
	tx := &fakeTxRunner{products: productRepo, movements: movRepo}
	movementUC := inventory.NewRegisterMovementUseCase(tx, productRepo)
	return usecase.NewProductUseCase(tx, productRepo, categoryRepo, movementUC), productRepo, categoryRepo, movRepo
}

func validRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:           "abc-001",
		Name:          "Arroz blanco",
		Unit:          "kg",
		PurchasePrice: decimal.NewFromInt(10),
		SellingPrice:  decimal.NewFromInt(15),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// El SKU se normaliza a mayúsculas y el umbral por defecto es 1.
func TestCreate_NormalizaSKUYDefaults(t *testing.T) {
	uc, _, _, movRepo := setup()

	out, err := uc.Create(context.Background(), testUserID, validRequest())
	require.NoError(t, err, "crear un producto válido no debe fallar")

	assert.Equal(t, "ABC-001", out.SKU, "el SKU debe guardarse en mayúsculas")
	assert.Equal(t, int64(1), out.LowStockThreshold, "el umbral por defecto es 1")
	assert.Equal(t, entity.ProductStatusActive, out.Status)
	assert.Equal(t, int64(0), out.Quantity, "sin stock inicial la cantidad es cero")
	assert.Equal(t, entity.StockLevelOutOfStock, out.StockLevel)
	assert.Empty(t, movRepo.movements, "sin stock inicial no debe haber movimiento")
}

// El stock inicial entra por el libro, nunca como escritura directa de quantity.
func TestCreate_StockInicialViaMovimiento(t *testing.T) {
	uc, productRepo, _, movRepo := setup()

	req := validRequest()
	req.OpeningQuantity = 10
	req.LowStockThreshold = 3

	out, err := uc.Create(context.Background(), testUserID, req)
	require.NoError(t, err)

	assert.Equal(t, int64(10), out.Quantity)
	assert.Equal(t, entity.StockLevelInStock, out.StockLevel, "10 > umbral 3")

	require.Len(t, movRepo.movements, 1, "el stock inicial debe quedar en el libro")
	mov := movRepo.movements[0]
	assert.Equal(t, entity.MovementTypeIn, mov.Type)
	assert.Equal(t, entity.ReferenceTypeAdjustment, mov.ReferenceType)
	assert.Equal(t, int64(0), mov.PreviousStock)
	assert.Equal(t, int64(10), mov.NewStock)
	assert.Equal(t, "stock inicial", mov.Note)

	stored, _ := productRepo.GetByID(context.Background(), out.ID)
	assert.Equal(t, int64(10), stored.Quantity)
}

// Alta y asiento inicial son una sola transacción: si el asiento falla, el
// producto no queda a medias y un reintento con el mismo SKU funciona.
func TestCreate_StockInicialFallidoDeshaceElAlta(t *testing.T) {
	uc, productRepo, _, movRepo := setup()

	req := validRequest()
	req.OpeningQuantity = 10

	movRepo.failCreate = errors.New("writer bloqueado")
	_, err := uc.Create(context.Background(), testUserID, req)
	require.Error(t, err, "si el asiento inicial falla, el alta debe fallar")

	stored, _ := productRepo.GetBySKU(context.Background(), "ABC-001")
	assert.Nil(t, stored, "el producto no debe quedar creado si el asiento falló")
	assert.Empty(t, movRepo.movements)

	movRepo.failCreate = nil
	out, err := uc.Create(context.Background(), testUserID, req)
	require.NoError(t, err, "el reintento no debe chocar con un SKU fantasma")
	assert.Equal(t, int64(10), out.Quantity)
}

// La unicidad del SKU es case-insensitive.
func TestCreate_SKUDuplicadoRechazado(t *testing.T) {
	uc, _, _, _ := setup()

	_, err := uc.Create(context.Background(), testUserID, validRequest())
	require.NoError(t, err)

	dup := validRequest()
	dup.SKU = "ABC-001 " // misma clave tras normalizar
	_, err = uc.Create(context.Background(), testUserID, dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el mismo SKU con otra caja debe rechazarse")
}

// Entradas inválidas en la creación.
func TestCreate_EntradasInvalidas(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateProductRequest)
	}{
		{"sku vacío", func(r *dto.CreateProductRequest) { r.SKU = "   " }},
		{"nombre vacío", func(r *dto.CreateProductRequest) { r.Name = "" }},
		{"unidad desconocida", func(r *dto.CreateProductRequest) { r.Unit = "docena" }},
		{"venta menor que compra", func(r *dto.CreateProductRequest) { r.SellingPrice = decimal.NewFromInt(5) }},
		{"precio de compra negativo", func(r *dto.CreateProductRequest) {
			r.PurchasePrice = decimal.NewFromInt(-1)
			r.SellingPrice = decimal.NewFromInt(5)
		}},
		{"stock inicial negativo", func(r *dto.CreateProductRequest) { r.OpeningQuantity = -1 }},
		{"umbral negativo", func(r *dto.CreateProductRequest) { r.LowStockThreshold = -2 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _, _, _ := setup()
			req := validRequest()
			tc.mutate(&req)
			_, err := uc.Create(context.Background(), testUserID, req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Una categoría inexistente corta la creación.
func TestCreate_CategoriaInexistente(t *testing.T) {
	uc, _, _, _ := setup()

	req := validRequest()
	req.CategoryID = "no-existe"
	_, err := uc.Create(context.Background(), testUserID, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update
// ──────────────────────────────────────────────────────────────────────────────

// El patch es parcial: solo cambian los campos enviados.
func TestUpdate_PatchParcial(t *testing.T) {
	uc, _, _, _ := setup()
	created, err := uc.Create(context.Background(), testUserID, validRequest())
	require.NoError(t, err)

	name := "Arroz integral"
	threshold := int64(5)
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		Name:              &name,
		LowStockThreshold: &threshold,
	})
	require.NoError(t, err)

	assert.Equal(t, "Arroz integral", out.Name)
	assert.Equal(t, int64(5), out.LowStockThreshold)
	assert.Equal(t, "ABC-001", out.SKU, "el SKU no cambia en un patch")
	assert.True(t, out.SellingPrice.Equal(created.SellingPrice), "los campos no enviados se conservan")
}

// El invariante venta >= compra se valida sobre el estado resultante del patch.
func TestUpdate_InvarianteDePrecios(t *testing.T) {
	uc, productRepo, _, _ := setup()
	created, err := uc.Create(context.Background(), testUserID, validRequest())
	require.NoError(t, err)

	selling := decimal.NewFromInt(8) // por debajo de la compra vigente (10)
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		SellingPrice: &selling,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "venta < compra debe rechazarse aunque la compra no cambie")

	stored, _ := productRepo.GetByID(context.Background(), created.ID)
	assert.True(t, stored.SellingPrice.Equal(decimal.NewFromInt(15)), "el rechazo no debe dejar escritura parcial")
}

// Umbral y unidad inválidos en el patch.
func TestUpdate_EntradasInvalidas(t *testing.T) {
	uc, _, _, _ := setup()
	created, err := uc.Create(context.Background(), testUserID, validRequest())
	require.NoError(t, err)

	badThreshold := int64(0)
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		LowStockThreshold: &badThreshold,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el umbral debe ser >= 1")

	badUnit := "docena"
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Unit: &badUnit})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Deactivate / Reactivate
// ──────────────────────────────────────────────────────────────────────────────

// La baja es lógica y reversible.
func TestDeactivate_Reactivate(t *testing.T) {
	uc, productRepo, _, _ := setup()
	created, err := uc.Create(context.Background(), testUserID, validRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(context.Background(), created.ID))
	stored, _ := productRepo.GetByID(context.Background(), created.ID)
	assert.Equal(t, entity.ProductStatusInactive, stored.Status)

	require.NoError(t, uc.Reactivate(context.Background(), created.ID))
	stored, _ = productRepo.GetByID(context.Background(), created.ID)
	assert.Equal(t, entity.ProductStatusActive, stored.Status)

	assert.ErrorIs(t, uc.Deactivate(context.Background(), "no-existe"), domain.ErrNotFound)
}

// StockLevel clasifica frente al umbral.
func TestStockLevel_Clasificacion(t *testing.T) {
	uc, productRepo, _, _ := setup()

	req := validRequest()
	req.OpeningQuantity = 3
	req.LowStockThreshold = 3
	created, err := uc.Create(context.Background(), testUserID, req)
	require.NoError(t, err)
	assert.Equal(t, entity.StockLevelLowStock, created.StockLevel, "cantidad igual al umbral es stock bajo")

	require.NoError(t, productRepo.UpdateQuantity(context.Background(), created.ID, 0))
	out, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StockLevelOutOfStock, out.StockLevel)
}
