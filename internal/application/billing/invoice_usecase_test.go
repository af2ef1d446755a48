package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/billing"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
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
	return nil, nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
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

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]*entity.Invoice)}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetForUpdate(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeInvoiceRepo) UpdateStatus(_ context.Context, id, status string, paidAt *time.Time) error {
	inv, ok := r.invoices[id]
	if !ok {
		return domain.ErrNotFound
	}
	inv.Status = status
	if paidAt != nil {
		inv.PaidAt = paidAt
	}
	return nil
}

func (r *fakeInvoiceRepo) List(_ context.Context, _ repository.InvoiceFilter) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		cp := *inv
		out = append(out, &cp)
	}
	return out, nil
}

// fakeBillingTx imita la atomicidad de la tx real: snapshot al entrar, restauración
// completa si fn devuelve error.
type fakeBillingTx struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
	invoices  *fakeInvoiceRepo
}

func (tx *fakeBillingTx) RunBilling(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	productSnap := make(map[string]*entity.Product, len(tx.products.products))
	for id, p := range tx.products.products {
		cp := *p
		productSnap[id] = &cp
	}
	invoiceSnap := make(map[string]*entity.Invoice, len(tx.invoices.invoices))
	for id, inv := range tx.invoices.invoices {
		cp := *inv
		invoiceSnap[id] = &cp
	}
	movSnap := len(tx.movements.movements)

	if err := fn(tx.movements, tx.products, tx.invoices); err != nil {
		tx.products.products = productSnap
		tx.invoices.invoices = invoiceSnap
		tx.movements.movements = tx.movements.movements[:movSnap]
		return err
	}
	return nil
}

// inventoryTx adapta el mismo trío de fakes al TxRunner de movimientos sueltos.
type inventoryTx struct {
	billing *fakeBillingTx
}

func (tx *inventoryTx) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return tx.billing.RunBilling(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		_ repository.InvoiceRepository,
	) error {
		return fn(movRepo, productRepo)
	})
}

const testUserID = "00000000-0000-0000-0000-000000000001"

func activeProduct(id string, quantity int64, selling float64) *entity.Product {
	return &entity.Product{
		ID:           id,
		SKU:          "SKU-" + id,
		Name:         "Producto " + id,
		Quantity:     quantity,
		Unit:         "unidad",
		SellingPrice: decimal.NewFromFloat(selling),
		Status:       entity.ProductStatusActive,
	}
}

func setup(products ...*entity.Product) (*billing.InvoiceUseCase, *fakeProductRepo, *fakeMovementRepo, *fakeInvoiceRepo) {
	productRepo := newFakeProductRepo(products...)
	movRepo := &fakeMovementRepo{}
	invoiceRepo := newFakeInvoiceRepo()
	tx := &fakeBillingTx{products: productRepo, movements: movRepo, invoices: invoiceRepo}
	movementUC := inventory.NewRegisterMovementUseCase(&inventoryTx{billing: tx}, productRepo)
	return billing.NewInvoiceUseCase(tx, movementUC, invoiceRepo, productRepo), productRepo, movRepo, invoiceRepo
}

func createInvoice(t *testing.T, uc *billing.InvoiceUseCase, productID string, qty int64) *dto.InvoiceResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), testUserID, dto.CreateInvoiceRequest{
		CustomerName:  "Cliente Uno",
		PaymentMethod: entity.PaymentMethodCash,
		Items: []dto.InvoiceItemRequest{
			{ProductID: productID, Quantity: qty},
		},
	})
	require.NoError(t, err, "la creación de la factura no debe fallar")
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// Crear la factura no toca el stock: nace pending y el libro queda intacto.
func TestCreate_NoDescuentaStock(t *testing.T) {
	uc, productRepo, movRepo, _ := setup(activeProduct("p1", 10, 20))

	out := createInvoice(t, uc, "p1", 3)

	assert.Equal(t, entity.InvoiceStatusPending, out.Status, "la factura debe nacer pending")
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(60)), "3 x 20 = 60")

	p, _ := productRepo.GetByID(context.Background(), "p1")
	assert.Equal(t, int64(10), p.Quantity, "crear la factura no debe descontar stock")
	assert.Empty(t, movRepo.movements, "crear la factura no debe asentar movimientos")
}

// El precio de línea en cero toma el precio de venta vigente del producto.
func TestCreate_PrecioPorDefecto(t *testing.T) {
	uc, _, _, _ := setup(activeProduct("p1", 10, 15.5))

	out, err := uc.Create(context.Background(), testUserID, dto.CreateInvoiceRequest{
		CustomerName:  "Cliente Uno",
		PaymentMethod: entity.PaymentMethodCard,
		Items: []dto.InvoiceItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p1", Quantity: 1, SellingPrice: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)
	assert.True(t, out.Items[0].SellingPrice.Equal(decimal.NewFromFloat(15.5)),
		"precio cero debe resolverse al vigente del producto")
	assert.True(t, out.Items[1].SellingPrice.Equal(decimal.NewFromInt(10)),
		"precio explícito debe respetarse")
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(41)), "2x15.5 + 1x10 = 41")
}

// Método de pago fuera del conjunto cerrado se rechaza.
func TestCreate_MetodoPagoInvalido(t *testing.T) {
	uc, _, _, _ := setup(activeProduct("p1", 10, 20))

	_, err := uc.Create(context.Background(), testUserID, dto.CreateInvoiceRequest{
		CustomerName:  "Cliente Uno",
		PaymentMethod: "bitcoin",
		Items:         []dto.InvoiceItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MarkPaid
// ──────────────────────────────────────────────────────────────────────────────

// Pagar descuenta el stock línea a línea con referencia sale y estampa paid_at.
func TestMarkPaid_DescuentaStock(t *testing.T) {
	uc, productRepo, movRepo, _ := setup(activeProduct("p1", 10, 20))
	inv := createInvoice(t, uc, "p1", 3)

	out, err := uc.MarkPaid(context.Background(), inv.ID, testUserID)
	require.NoError(t, err, "pagar con stock suficiente no debe fallar")

	assert.Equal(t, entity.InvoiceStatusPaid, out.Status)
	require.NotNil(t, out.PaidAt, "paid_at debe estamparse al pagar")

	p, _ := productRepo.GetByID(context.Background(), "p1")
	assert.Equal(t, int64(7), p.Quantity, "10 - 3 = 7")

	require.Len(t, movRepo.movements, 1)
	mov := movRepo.movements[0]
	assert.Equal(t, entity.MovementTypeOut, mov.Type)
	assert.Equal(t, entity.ReferenceTypeSale, mov.ReferenceType)
	assert.Equal(t, inv.ID, mov.ReferenceID, "el movimiento debe referenciar la factura")
	assert.Equal(t, int64(10), mov.PreviousStock)
	assert.Equal(t, int64(7), mov.NewStock)
}

// Pagar sin stock suficiente aborta todo: la factura sigue pending, el stock y el
// libro quedan intactos, y el error expone el faltante exacto.
func TestMarkPaid_StockInsuficienteTodoONada(t *testing.T) {
	uc, productRepo, movRepo, _ := setup(activeProduct("p1", 7, 20))
	inv := createInvoice(t, uc, "p1", 10)

	_, err := uc.MarkPaid(context.Background(), inv.ID, testUserID)
	require.Error(t, err)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(3), stockErr.Shortfall(), "faltan 10 - 7 = 3 unidades")

	p, _ := productRepo.GetByID(context.Background(), "p1")
	assert.Equal(t, int64(7), p.Quantity, "el stock no debe tocarse si el pago aborta")
	assert.Empty(t, movRepo.movements, "no debe quedar ningún movimiento de un pago abortado")

	pending, err := uc.GetByID(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPending, pending.Status, "la factura debe seguir pending")
}

// El mismo producto en varias líneas suma presión acumulada: dos líneas de 4
// sobre stock 6 deben abortar aunque cada una quepa por separado.
func TestMarkPaid_PresionAcumuladaEntreLineas(t *testing.T) {
	uc, productRepo, movRepo, _ := setup(activeProduct("p1", 6, 20))

	out, err := uc.Create(context.Background(), testUserID, dto.CreateInvoiceRequest{
		CustomerName:  "Cliente Uno",
		PaymentMethod: entity.PaymentMethodTransfer,
		Items: []dto.InvoiceItemRequest{
			{ProductID: "p1", Quantity: 4},
			{ProductID: "p1", Quantity: 4},
		},
	})
	require.NoError(t, err)

	_, err = uc.MarkPaid(context.Background(), out.ID, testUserID)
	require.Error(t, err, "la presión acumulada (8 > 6) debe abortar el pago")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := productRepo.GetByID(context.Background(), "p1")
	assert.Equal(t, int64(6), p.Quantity, "el rollback debe deshacer la primera línea aplicada")
	assert.Empty(t, movRepo.movements)
}

// Con varias líneas cortas de stock, el error reporta la primera en el orden
// del documento: las líneas se aplican secuencialmente tal como fueron creadas.
func TestMarkPaid_PrimerFaltanteEnOrdenDeLineas(t *testing.T) {
	uc, productRepo, movRepo, _ := setup(activeProduct("p1", 1, 20), activeProduct("p2", 0, 30))

	out, err := uc.Create(context.Background(), testUserID, dto.CreateInvoiceRequest{
		CustomerName:  "Cliente Uno",
		PaymentMethod: entity.PaymentMethodCash,
		Items: []dto.InvoiceItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	_, err = uc.MarkPaid(context.Background(), out.ID, testUserID)
	require.Error(t, err)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "p1", stockErr.ProductID, "el faltante reportado debe ser el de la primera línea")
	assert.Equal(t, int64(2), stockErr.Requested)
	assert.Equal(t, int64(1), stockErr.Available)

	p1, _ := productRepo.GetByID(context.Background(), "p1")
	p2, _ := productRepo.GetByID(context.Background(), "p2")
	assert.Equal(t, int64(1), p1.Quantity, "el pago abortado no debe tocar stock")
	assert.Equal(t, int64(0), p2.Quantity)
	assert.Empty(t, movRepo.movements)
}

// Pagar dos veces es una transición inválida: paid es terminal.
func TestMarkPaid_DoblePagoRechazado(t *testing.T) {
	uc, _, movRepo, _ := setup(activeProduct("p1", 10, 20))
	inv := createInvoice(t, uc, "p1", 2)

	_, err := uc.MarkPaid(context.Background(), inv.ID, testUserID)
	require.NoError(t, err)

	_, err = uc.MarkPaid(context.Background(), inv.ID, testUserID)
	require.Error(t, err, "una factura pagada no debe poder pagarse de nuevo")

	var transErr *domain.InvalidTransitionError
	require.ErrorAs(t, err, &transErr)
	assert.Equal(t, entity.InvoiceStatusPaid, transErr.From)
	assert.Len(t, movRepo.movements, 1, "el segundo pago no debe asentar movimientos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Cancel
// ──────────────────────────────────────────────────────────────────────────────

// Cancelar una factura pendiente no toca el libro ni el stock.
func TestCancel_SinEfectoEnElLibro(t *testing.T) {
	uc, productRepo, movRepo, _ := setup(activeProduct("p1", 10, 20))
	inv := createInvoice(t, uc, "p1", 3)

	out, err := uc.Cancel(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusCancelled, out.Status)

	p, _ := productRepo.GetByID(context.Background(), "p1")
	assert.Equal(t, int64(10), p.Quantity)
	assert.Empty(t, movRepo.movements)
}

// Una factura cancelada no puede pagarse después.
func TestCancel_LuegoPagarRechazado(t *testing.T) {
	uc, _, _, _ := setup(activeProduct("p1", 10, 20))
	inv := createInvoice(t, uc, "p1", 3)

	_, err := uc.Cancel(context.Background(), inv.ID)
	require.NoError(t, err)

	_, err = uc.MarkPaid(context.Background(), inv.ID, testUserID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "cancelled es terminal")
}
