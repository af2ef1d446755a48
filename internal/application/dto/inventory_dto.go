package dto

import "time"

// AdjustStockRequest entrada para un ajuste manual de stock.
// Type es "in" o "out"; ReferenceType por defecto "manual" (también admite return/adjustment).
type AdjustStockRequest struct {
	ProductID     string `json:"product_id" validate:"required"`
	Type          string `json:"type" validate:"required,oneof=in out"`
	Quantity      int64  `json:"quantity" validate:"required,gt=0"`
	ReferenceType string `json:"reference_type"`
	Note          string `json:"note"`
}

// MovementQueryRequest filtros del listado de movimientos.
type MovementQueryRequest struct {
	Type          string `query:"type"`
	ReferenceType string `query:"reference_type"`
	From          string `query:"from"` // RFC 3339 o YYYY-MM-DD
	To            string `query:"to"`
	PageRequest
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	Type          string    `json:"type"`
	Quantity      int64     `json:"quantity"`
	PreviousStock int64     `json:"previous_stock"`
	NewStock      int64     `json:"new_stock"`
	ReferenceType string    `json:"reference_type"`
	ReferenceID   string    `json:"reference_id,omitempty"`
	PerformedBy   string    `json:"performed_by"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
