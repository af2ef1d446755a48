package orders

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

// PurchaseOrderUseCase máquina de estados de órdenes de compra.
// pending -> delivered emite un movimiento "in" por línea (referencia purchase)
// en una sola transacción; pending -> cancelled no toca el libro.
type PurchaseOrderUseCase struct {
	txRunner    OrderTxRunner
	movementUC  *inventory.RegisterMovementUseCase
	orderRepo   repository.PurchaseOrderRepository
	vendorRepo  repository.VendorRepository
	productRepo repository.ProductRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	txRunner OrderTxRunner,
	movementUC *inventory.RegisterMovementUseCase,
	orderRepo repository.PurchaseOrderRepository,
	vendorRepo repository.VendorRepository,
	productRepo repository.ProductRepository,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		txRunner:    txRunner,
		movementUC:  movementUC,
		orderRepo:   orderRepo,
		vendorRepo:  vendorRepo,
		productRepo: productRepo,
	}
}

// Create valida proveedor, productos y líneas, y persiste la orden en pending.
// PurchasePrice en cero toma el precio de compra vigente del producto.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, userID string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.VendorID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	vendor, err := uc.vendorRepo.GetByID(ctx, in.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	if !vendor.IsActive() {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	items, err := uc.buildItems(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	number := strings.TrimSpace(in.OrderNumber)
	if number == "" {
		number = fmt.Sprintf("PO-%d", now.Unix())
	}

	order := &entity.PurchaseOrder{
		ID:               uuid.New().String(),
		OrderNumber:      number,
		VendorID:         in.VendorID,
		Status:           entity.OrderStatusPending,
		ExpectedDelivery: in.ExpectedDelivery,
		CreatedBy:        userID,
		CreatedAt:        now,
		UpdatedAt:        now,
		Items:            items,
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// buildItems valida cada línea y resuelve precios por defecto.
func (uc *PurchaseOrderUseCase) buildItems(ctx context.Context, in []dto.OrderItemRequest) ([]entity.PurchaseOrderItem, error) {
	items := make([]entity.PurchaseOrderItem, 0, len(in))
	for _, item := range in {
		if item.ProductID == "" || item.Quantity <= 0 || item.PurchasePrice.LessThan(decimal.Zero) {
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
		price := item.PurchasePrice
		if price.IsZero() {
			price = product.PurchasePrice
		}
		items = append(items, entity.PurchaseOrderItem{
			ID:            uuid.New().String(),
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			PurchasePrice: price,
		})
	}
	return items, nil
}

// Update modifica una orden; solo válido mientras está pending.
func (uc *PurchaseOrderUseCase) Update(ctx context.Context, id string, in dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	// Validaciones de referencia fuera de la tx; el estado de la orden se relee
	// con lock adentro, igual que en MarkDelivered y Cancel.
	if in.VendorID != nil {
		vendor, err := uc.vendorRepo.GetByID(ctx, *in.VendorID)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, domain.ErrNotFound
		}
		if !vendor.IsActive() {
			return nil, domain.ErrConflict
		}
	}
	var items []entity.PurchaseOrderItem
	if in.Items != nil {
		var err error
		items, err = uc.buildItems(ctx, in.Items)
		if err != nil {
			return nil, err
		}
	}

	var updated *entity.PurchaseOrder
	err := uc.txRunner.RunOrder(ctx, func(
		_ repository.StockMovementRepository,
		_ repository.ProductRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error {
		order, err := orderRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderStatusPending {
			return &domain.InvalidTransitionError{Entity: "purchase_order", ID: order.ID, From: order.Status, To: order.Status}
		}

		if in.VendorID != nil {
			order.VendorID = *in.VendorID
		}
		if in.ExpectedDelivery != nil {
			order.ExpectedDelivery = *in.ExpectedDelivery
		}
		if in.Items != nil {
			for i := range items {
				items[i].OrderID = order.ID
			}
			order.Items = items
		}
		order.UpdatedAt = time.Now()
		if err := orderRepo.Update(ctx, order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}

// MarkDelivered transiciona pending -> delivered: bloquea la cabecera, relee el
// estado dentro de la tx, emite un movimiento "in" por línea y estampa receivedAt.
// Si cualquier línea falla, toda la transición se revierte (todo-o-nada).
func (uc *PurchaseOrderUseCase) MarkDelivered(ctx context.Context, id, userID string) (*dto.PurchaseOrderResponse, error) {
	now := time.Now()
	var delivered *entity.PurchaseOrder

	err := uc.txRunner.RunOrder(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error {
		order, err := orderRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderStatusPending {
			return &domain.InvalidTransitionError{Entity: "purchase_order", ID: order.ID, From: order.Status, To: entity.OrderStatusDelivered}
		}

		for _, item := range order.Items {
			if _, err := uc.movementUC.ApplyInTx(ctx, movRepo, productRepo, inventory.MovementInput{
				ProductID:     item.ProductID,
				Type:          entity.MovementTypeIn,
				Quantity:      item.Quantity,
				ReferenceType: entity.ReferenceTypePurchase,
				ReferenceID:   order.ID,
				PerformedBy:   userID,
			}, now); err != nil {
				return err
			}
		}

		if err := orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusDelivered, &now); err != nil {
			return err
		}
		order.Status = entity.OrderStatusDelivered
		order.ReceivedAt = &now
		order.UpdatedAt = now
		delivered = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(delivered), nil
}

// Cancel transiciona pending -> cancelled sin efecto en el libro.
func (uc *PurchaseOrderUseCase) Cancel(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	var cancelled *entity.PurchaseOrder

	err := uc.txRunner.RunOrder(ctx, func(
		_ repository.StockMovementRepository,
		_ repository.ProductRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error {
		order, err := orderRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderStatusPending {
			return &domain.InvalidTransitionError{Entity: "purchase_order", ID: order.ID, From: order.Status, To: entity.OrderStatusCancelled}
		}
		if err := orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled, nil); err != nil {
			return err
		}
		order.Status = entity.OrderStatusCancelled
		cancelled = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(cancelled), nil
}

// GetByID obtiene una orden; nil si no existe.
func (uc *PurchaseOrderUseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List lista órdenes con filtros y paginación.
func (uc *PurchaseOrderUseCase) List(ctx context.Context, filter repository.OrderFilter, page dto.PageRequest) (*dto.PurchaseOrderListResponse, error) {
	page.DefaultPage()
	filter.Limit = page.Limit
	filter.Offset = page.Offset
	ordersList, err := uc.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(ordersList))
	for _, o := range ordersList {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.PurchaseOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toOrderResponse(o *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:            it.ID,
			ProductID:     it.ProductID,
			Quantity:      it.Quantity,
			PurchasePrice: it.PurchasePrice,
		})
	}
	return &dto.PurchaseOrderResponse{
		ID:               o.ID,
		OrderNumber:      o.OrderNumber,
		VendorID:         o.VendorID,
		Status:           o.Status,
		ExpectedDelivery: o.ExpectedDelivery,
		ReceivedAt:       o.ReceivedAt,
		Total:            o.Total(),
		Items:            items,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
