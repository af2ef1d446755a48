package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// MovementFilter criterios de consulta sobre el libro de movimientos.
type MovementFilter struct {
	Type          string // "", in, out
	ReferenceType string // "", purchase, sale, manual, adjustment, return
	From          *time.Time
	To            *time.Time
	Limit         int
	Offset        int
}

// StockMovementRepository define el puerto de persistencia del libro de movimientos (DIP).
// El libro es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	GetByID(ctx context.Context, id string) (*entity.StockMovement, error)
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error)
	Query(ctx context.Context, filter MovementFilter) ([]*entity.StockMovement, error)
}
