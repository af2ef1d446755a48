package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// OrderFilter criterios de listado de órdenes de compra.
type OrderFilter struct {
	Status   string
	VendorID string
	Limit    int
	Offset   int
}

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder (DIP).
type PurchaseOrderRepository interface {
	// Create persiste cabecera y líneas.
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	// GetForUpdate bloquea la cabecera (SELECT FOR UPDATE) para que el chequeo de estado
	// terminal y los movimientos queden en la misma tx.
	GetForUpdate(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	// Update reescribe cabecera y líneas; solo válido mientras la orden está pending.
	Update(ctx context.Context, order *entity.PurchaseOrder) error
	UpdateStatus(ctx context.Context, id, status string, receivedAt *time.Time) error
	List(ctx context.Context, filter OrderFilter) ([]*entity.PurchaseOrder, error)
}
