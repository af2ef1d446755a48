package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// InvoiceUseCase máquina de estados de facturas de venta.
// pending -> paid emite un movimiento "out" por línea (referencia sale) en una sola
// transacción; cualquier línea sin stock suficiente revierte la transición completa.
// pending -> cancelled no toca el libro.
type InvoiceUseCase struct {
	txRunner    BillingTxRunner
	movementUC  *inventory.RegisterMovementUseCase
	invoiceRepo repository.InvoiceRepository
	productRepo repository.ProductRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	txRunner BillingTxRunner,
	movementUC *inventory.RegisterMovementUseCase,
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:    txRunner,
		movementUC:  movementUC,
		invoiceRepo: invoiceRepo,
		productRepo: productRepo,
	}
}

// Create valida cliente, método de pago y líneas, calcula totales y persiste la
// factura en pending. SellingPrice en cero toma el precio de venta del producto.
func (uc *InvoiceUseCase) Create(ctx context.Context, userID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	customer := strings.TrimSpace(in.CustomerName)
	if customer == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	invoiceID := uuid.New().String()
	total := decimal.Zero
	items := make([]entity.InvoiceItem, 0, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 || item.SellingPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if !product.IsActive() {
			return nil, domain.ErrConflict
		}
		price := item.SellingPrice
		if price.IsZero() {
			price = product.SellingPrice
		}
		subtotal := price.Mul(decimal.NewFromInt(item.Quantity))
		total = total.Add(subtotal)
		items = append(items, entity.InvoiceItem{
			ID:           uuid.New().String(),
			InvoiceID:    invoiceID,
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			SellingPrice: price,
			Subtotal:     subtotal,
		})
	}

	number := strings.TrimSpace(in.InvoiceNumber)
	if number == "" {
		number = fmt.Sprintf("INV-%d", now.Unix())
	}

	invoice := &entity.Invoice{
		ID:            invoiceID,
		InvoiceNumber: number,
		CustomerName:  customer,
		PaymentMethod: in.PaymentMethod,
		Status:        entity.InvoiceStatusPending,
		TotalAmount:   total,
		CreatedBy:     userID,
		CreatedAt:     now,
		UpdatedAt:     now,
		Items:         items,
	}
	if err := uc.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// MarkPaid transiciona pending -> paid: bloquea la cabecera, relee el estado dentro
// de la tx y aplica las salidas línea a línea en el orden de la factura. Un producto
// repetido en varias líneas ve el stock ya descontado por las anteriores, así que la
// presión acumulada se verifica sola; la primera línea con faltante aborta todo con
// InsufficientStockError y cero escrituras.
func (uc *InvoiceUseCase) MarkPaid(ctx context.Context, id, userID string) (*dto.InvoiceResponse, error) {
	now := time.Now()
	var paid *entity.Invoice

	err := uc.txRunner.RunBilling(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		invoice, err := invoiceRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if invoice == nil {
			return domain.ErrNotFound
		}
		if invoice.Status != entity.InvoiceStatusPending {
			return &domain.InvalidTransitionError{Entity: "invoice", ID: invoice.ID, From: invoice.Status, To: entity.InvoiceStatusPaid}
		}

		for _, item := range invoice.Items {
			if _, err := uc.movementUC.ApplyInTx(ctx, movRepo, productRepo, inventory.MovementInput{
				ProductID:     item.ProductID,
				Type:          entity.MovementTypeOut,
				Quantity:      item.Quantity,
				ReferenceType: entity.ReferenceTypeSale,
				ReferenceID:   invoice.ID,
				PerformedBy:   userID,
			}, now); err != nil {
				return err
			}
		}

		if err := invoiceRepo.UpdateStatus(ctx, invoice.ID, entity.InvoiceStatusPaid, &now); err != nil {
			return err
		}
		invoice.Status = entity.InvoiceStatusPaid
		invoice.PaidAt = &now
		invoice.UpdatedAt = now
		paid = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(paid), nil
}

// Cancel transiciona pending -> cancelled sin efecto en el libro.
func (uc *InvoiceUseCase) Cancel(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	var cancelled *entity.Invoice

	err := uc.txRunner.RunBilling(ctx, func(
		_ repository.StockMovementRepository,
		_ repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		invoice, err := invoiceRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if invoice == nil {
			return domain.ErrNotFound
		}
		if invoice.Status != entity.InvoiceStatusPending {
			return &domain.InvalidTransitionError{Entity: "invoice", ID: invoice.ID, From: invoice.Status, To: entity.InvoiceStatusCancelled}
		}
		if err := invoiceRepo.UpdateStatus(ctx, invoice.ID, entity.InvoiceStatusCancelled, nil); err != nil {
			return err
		}
		invoice.Status = entity.InvoiceStatusCancelled
		cancelled = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(cancelled), nil
}

// GetByID obtiene una factura; nil si no existe.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	return toInvoiceResponse(invoice), nil
}

// List lista facturas con filtros y paginación.
func (uc *InvoiceUseCase) List(ctx context.Context, filter repository.InvoiceFilter, page dto.PageRequest) (*dto.InvoiceListResponse, error) {
	page.DefaultPage()
	filter.Limit = page.Limit
	filter.Offset = page.Offset
	invoices, err := uc.invoiceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, *toInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	items := make([]dto.InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.InvoiceItemResponse{
			ID:           it.ID,
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			SellingPrice: it.SellingPrice,
			Subtotal:     it.Subtotal,
		})
	}
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerName:  inv.CustomerName,
		PaymentMethod: inv.PaymentMethod,
		Status:        inv.Status,
		TotalAmount:   inv.TotalAmount,
		PaidAt:        inv.PaidAt,
		Items:         items,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}
