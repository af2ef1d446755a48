package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ProductFilter criterios de listado de productos.
type ProductFilter struct {
	Status       string // "", active, inactive
	CategoryID   string
	Search       string // busca en name y sku
	LowStockOnly bool   // quantity <= low_stock_threshold
	Limit        int
	Offset       int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos Get* devuelven (nil, nil) cuando el recurso no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de la tx actual.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateQuantity es el único camino que escribe quantity; solo debe invocarse
	// desde el caso de uso de movimientos, en la misma tx que el insert del movimiento.
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
	UpdateStatus(ctx context.Context, id, status string) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
}
