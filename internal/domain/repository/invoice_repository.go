package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// InvoiceFilter criterios de listado de facturas.
type InvoiceFilter struct {
	Status       string
	CustomerName string
	Limit        int
	Offset       int
}

// InvoiceRepository define el puerto de persistencia para Invoice (DIP).
type InvoiceRepository interface {
	// Create persiste cabecera y líneas.
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// GetForUpdate bloquea la cabecera (SELECT FOR UPDATE) para serializar pay/cancel.
	GetForUpdate(ctx context.Context, id string) (*entity.Invoice, error)
	UpdateStatus(ctx context.Context, id, status string, paidAt *time.Time) error
	List(ctx context.Context, filter InvoiceFilter) ([]*entity.Invoice, error)
}
