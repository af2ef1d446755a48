package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItemRequest línea de una factura.
// SellingPrice en cero toma el precio de venta vigente del producto.
type InvoiceItemRequest struct {
	ProductID    string          `json:"product_id" validate:"required"`
	Quantity     int64           `json:"quantity" validate:"required,gt=0"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// CreateInvoiceRequest entrada para crear una factura.
type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoice_number"` // vacío: se genera INV-<unix>
	CustomerName  string               `json:"customer_name" validate:"required"`
	PaymentMethod string               `json:"payment_method" validate:"required,oneof=cash card transfer credit"`
	Items         []InvoiceItemRequest `json:"items" validate:"required,min=1"`
}

// InvoiceItemResponse línea de una factura.
type InvoiceItemResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	Quantity     int64           `json:"quantity"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	InvoiceNumber string                `json:"invoice_number"`
	CustomerName  string                `json:"customer_name"`
	PaymentMethod string                `json:"payment_method"`
	Status        string                `json:"status"`
	TotalAmount   decimal.Decimal       `json:"total_amount"`
	PaidAt        *time.Time            `json:"paid_at,omitempty"`
	Items         []InvoiceItemResponse `json:"items"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// InvoiceListResponse lista paginada de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
