package billing

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción con los repositorios
// que necesita el pago de una factura: movimientos, productos y la propia factura.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}
