package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
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

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
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

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(_ context.Context, id string) (*entity.StockMovement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListByProduct(_ context.Context, productID string, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) Query(_ context.Context, _ repository.MovementFilter) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

// fakeTxRunner imita la atomicidad de la tx real: toma un snapshot al entrar y
// lo restaura si fn devuelve error, de modo que un fallo no deja escrituras.
type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	productSnap := snapshotProducts(tx.products)
	movSnap := len(tx.movements.movements)
	if err := fn(tx.movements, tx.products); err != nil {
		tx.products.products = productSnap
		tx.movements.movements = tx.movements.movements[:movSnap]
		return err
	}
	return nil
}

func snapshotProducts(r *fakeProductRepo) map[string]*entity.Product {
	snap := make(map[string]*entity.Product, len(r.products))
	for id, p := range r.products {
		cp := *p
		snap[id] = &cp
	}
	return snap
}

func testProduct(id string, quantity int64) *entity.Product {
	return &entity.Product{
		ID:       id,
		SKU:      "SKU-" + id,
		Name:     "Producto " + id,
		Quantity: quantity,
		Unit:     "unidad",
		Status:   entity.ProductStatusActive,
	}
}

const testUserID = "00000000-0000-0000-0000-000000000001"

func newUseCase(products ...*entity.Product) (*inventory.RegisterMovementUseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo(products...)
	movRepo := &fakeMovementRepo{}
	tx := &fakeTxRunner{products: productRepo, movements: movRepo}
	return inventory.NewRegisterMovementUseCase(tx, productRepo), productRepo, movRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegisterMovement
// ──────────────────────────────────────────────────────────────────────────────

// Una entrada suma al stock y asienta el snapshot antes/después.
func TestRegisterMovement_EntradaActualizaStockYSnapshot(t *testing.T) {
	uc, productRepo, movRepo := newUseCase(testProduct("p1", 5))

	mov, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID:     "p1",
		Type:          entity.MovementTypeIn,
		Quantity:      7,
		ReferenceType: entity.ReferenceTypeManual,
		PerformedBy:   testUserID,
		Note:          "reposición",
	})
	require.NoError(t, err, "una entrada válida no debe fallar")
	require.NotNil(t, mov)

	assert.Equal(t, int64(5), mov.PreviousStock, "el snapshot previo debe ser el stock antes del movimiento")
	assert.Equal(t, int64(12), mov.NewStock, "el snapshot nuevo debe reflejar la suma")

	p, _ := productRepo.GetByID(context.Background(), "p1")
	assert.Equal(t, int64(12), p.Quantity, "la cantidad del producto debe actualizarse en la misma operación")
	assert.Len(t, movRepo.movements, 1, "debe asentarse exactamente un movimiento")
}

// Una salida que dejaría el stock negativo se rechaza con el faltante exacto,
// nunca se recorta al disponible.
func TestRegisterMovement_SalidaInsuficienteSeRechaza(t *testing.T) {
	uc, productRepo, movRepo := newUseCase(testProduct("p1", 3))

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID:     "p1",
		Type:          entity.MovementTypeOut,
		Quantity:      10,
		ReferenceType: entity.ReferenceTypeManual,
		PerformedBy:   testUserID,
	})
	require.Error(t, err, "una salida mayor al disponible debe rechazarse")

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr, "el error debe ser InsufficientStockError")
	assert.Equal(t, int64(10), stockErr.Requested)
	assert.Equal(t, int64(3), stockErr.Available)
	assert.Equal(t, int64(7), stockErr.Shortfall(), "el faltante debe ser solicitado - disponible")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "debe envolver el centinela ErrInsufficientStock")

	p, _ := productRepo.GetByID(context.Background(), "p1")
	assert.Equal(t, int64(3), p.Quantity, "el stock no debe tocarse en un rechazo")
	assert.Empty(t, movRepo.movements, "no debe asentarse ningún movimiento en un rechazo")
}

// La salida exacta del disponible deja el stock en cero (borde válido).
func TestRegisterMovement_SalidaExactaDejaCero(t *testing.T) {
	uc, productRepo, _ := newUseCase(testProduct("p1", 4))

	mov, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID:     "p1",
		Type:          entity.MovementTypeOut,
		Quantity:      4,
		ReferenceType: entity.ReferenceTypeAdjustment,
		PerformedBy:   testUserID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), mov.NewStock)

	p, _ := productRepo.GetByID(context.Background(), "p1")
	assert.Equal(t, int64(0), p.Quantity)
}

// Entradas y salidas encadenadas mantienen la suma corriente: cada NewStock es
// el PreviousStock del siguiente movimiento del mismo producto.
func TestRegisterMovement_SumaCorrienteEntreMovimientos(t *testing.T) {
	uc, _, movRepo := newUseCase(testProduct("p1", 0))

	steps := []struct {
		typ string
		qty int64
	}{
		{entity.MovementTypeIn, 10},
		{entity.MovementTypeOut, 4},
		{entity.MovementTypeIn, 2},
		{entity.MovementTypeOut, 8},
	}
	for _, s := range steps {
		_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
			ProductID:     "p1",
			Type:          s.typ,
			Quantity:      s.qty,
			ReferenceType: entity.ReferenceTypeManual,
			PerformedBy:   testUserID,
		})
		require.NoError(t, err)
	}

	require.Len(t, movRepo.movements, 4)
	for i := 1; i < len(movRepo.movements); i++ {
		assert.Equal(t, movRepo.movements[i-1].NewStock, movRepo.movements[i].PreviousStock,
			"el snapshot previo debe encadenar con el nuevo del movimiento anterior")
	}
	assert.Equal(t, int64(0), movRepo.movements[3].NewStock, "10-4+2-8 debe dejar el stock en cero")
}

// Entradas inválidas se rechazan antes de tocar la transacción.
func TestRegisterMovement_EntradasInvalidas(t *testing.T) {
	uc, _, movRepo := newUseCase(testProduct("p1", 5))

	cases := []struct {
		name string
		in   inventory.MovementInput
	}{
		{"cantidad cero", inventory.MovementInput{ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 0, ReferenceType: entity.ReferenceTypeManual, PerformedBy: testUserID}},
		{"cantidad negativa", inventory.MovementInput{ProductID: "p1", Type: entity.MovementTypeIn, Quantity: -3, ReferenceType: entity.ReferenceTypeManual, PerformedBy: testUserID}},
		{"tipo desconocido", inventory.MovementInput{ProductID: "p1", Type: "transfer", Quantity: 1, ReferenceType: entity.ReferenceTypeManual, PerformedBy: testUserID}},
		{"referencia desconocida", inventory.MovementInput{ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 1, ReferenceType: "donation", PerformedBy: testUserID}},
		{"sin usuario", inventory.MovementInput{ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 1, ReferenceType: entity.ReferenceTypeManual}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterMovement(context.Background(), tc.in)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput), "debe rechazarse con ErrInvalidInput")
		})
	}
	assert.Empty(t, movRepo.movements, "ninguna entrada inválida debe asentar movimientos")
}

// Las referencias purchase y sale solo las emiten los flujos de órdenes y
// facturas: un ajuste manual no puede fabricar asientos de venta o compra.
func TestRegisterMovement_ReferenciasDeDocumentoRechazadas(t *testing.T) {
	uc, productRepo, movRepo := newUseCase(testProduct("p1", 10))

	for _, refType := range []string{entity.ReferenceTypeSale, entity.ReferenceTypePurchase} {
		t.Run(refType, func(t *testing.T) {
			_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
				ProductID:     "p1",
				Type:          entity.MovementTypeOut,
				Quantity:      3,
				ReferenceType: refType,
				PerformedBy:   testUserID,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput,
				"un movimiento manual con referencia de documento debe rechazarse")
		})
	}

	p, _ := productRepo.GetByID(context.Background(), "p1")
	assert.Equal(t, int64(10), p.Quantity, "el stock no debe tocarse")
	assert.Empty(t, movRepo.movements, "el libro no debe recibir asientos forjados")
}

// Movimiento sobre un producto inexistente devuelve ErrNotFound.
func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID:     "no-existe",
		Type:          entity.MovementTypeIn,
		Quantity:      1,
		ReferenceType: entity.ReferenceTypeManual,
		PerformedBy:   testUserID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
