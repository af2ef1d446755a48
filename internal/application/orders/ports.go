package orders

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// OrderTxRunner ejecuta una función dentro de una transacción con los repositorios
// que necesita la entrega de una orden: movimientos, productos y la propia orden.
// El chequeo de estado terminal y los movimientos comparten la tx (una cancelación
// concurrente pierde la carrera limpiamente).
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error) error
}
