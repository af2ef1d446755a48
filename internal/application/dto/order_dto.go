package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de una orden de compra.
// PurchasePrice en cero toma el precio de compra vigente del producto.
type OrderItemRequest struct {
	ProductID     string          `json:"product_id" validate:"required"`
	Quantity      int64           `json:"quantity" validate:"required,gt=0"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

// CreatePurchaseOrderRequest entrada para crear una orden de compra.
type CreatePurchaseOrderRequest struct {
	OrderNumber      string             `json:"order_number"` // vacío: se genera PO-<unix>
	VendorID         string             `json:"vendor_id" validate:"required"`
	ExpectedDelivery time.Time          `json:"expected_delivery"`
	Items            []OrderItemRequest `json:"items" validate:"required,min=1"`
}

// UpdatePurchaseOrderRequest entrada para modificar una orden pendiente.
type UpdatePurchaseOrderRequest struct {
	VendorID         *string            `json:"vendor_id"`
	ExpectedDelivery *time.Time         `json:"expected_delivery"`
	Items            []OrderItemRequest `json:"items"` // nil: conserva las líneas actuales
}

// OrderItemResponse línea de una orden de compra.
type OrderItemResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	Quantity      int64           `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	ID               string              `json:"id"`
	OrderNumber      string              `json:"order_number"`
	VendorID         string              `json:"vendor_id"`
	Status           string              `json:"status"`
	ExpectedDelivery time.Time           `json:"expected_delivery"`
	ReceivedAt       *time.Time          `json:"received_at,omitempty"`
	Total            decimal.Decimal     `json:"total"`
	Items            []OrderItemResponse `json:"items"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// PurchaseOrderListResponse lista paginada de órdenes.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
