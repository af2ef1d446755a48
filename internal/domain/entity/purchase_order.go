package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. delivered y cancelled son terminales.
const (
	OrderStatusPending   = "pending"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// PurchaseOrder representa una orden de compra a un proveedor.
// Máquina de estados: pending -> delivered (genera movimientos "in" por línea)
// o pending -> cancelled (sin efecto en el libro).
type PurchaseOrder struct {
	ID               string
	OrderNumber      string // único
	VendorID         string
	Status           string
	ExpectedDelivery time.Time
	ReceivedAt       *time.Time // se estampa al marcar delivered
	CreatedBy        string     // UserID
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Items            []PurchaseOrderItem
}

// PurchaseOrderItem línea de una orden de compra.
type PurchaseOrderItem struct {
	ID            string
	OrderID       string
	ProductID     string
	Quantity      int64
	PurchasePrice decimal.Decimal
}

// IsTerminal indica si la orden ya no admite transiciones.
func (o *PurchaseOrder) IsTerminal() bool {
	return o.Status != OrderStatusPending
}

// Total suma cantidad x precio de compra sobre las líneas.
func (o *PurchaseOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.PurchasePrice.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}
