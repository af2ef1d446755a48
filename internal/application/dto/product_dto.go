package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// OpeningQuantity > 0 genera un movimiento "in" de tipo adjustment (stock inicial);
// quantity nunca se escribe por fuera del libro de movimientos.
type CreateProductRequest struct {
	SKU               string          `json:"sku" validate:"required,min=1,max=100"`
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Description       string          `json:"description"`
	CategoryID        string          `json:"category_id"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
	Unit              string          `json:"unit" validate:"required"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	OpeningQuantity   int64           `json:"opening_quantity"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Quantity: se maneja vía movimientos).
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string          `json:"description"`
	CategoryID        *string          `json:"category_id"`
	PurchasePrice     *decimal.Decimal `json:"purchase_price"`
	SellingPrice      *decimal.Decimal `json:"selling_price"`
	Unit              *string          `json:"unit"`
	LowStockThreshold *int64           `json:"low_stock_threshold"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	CategoryID        string          `json:"category_id"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
	Quantity          int64           `json:"quantity"`
	Unit              string          `json:"unit"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	StockLevel        string          `json:"stock_level"` // in_stock, low_stock, out_of_stock
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
