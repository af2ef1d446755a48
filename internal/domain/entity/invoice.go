package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura de venta. paid y cancelled son terminales.
const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

// Métodos de pago reconocidos.
const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
	PaymentMethodCredit   = "credit"
)

// ValidPaymentMethod verifica que el método de pago pertenezca al conjunto cerrado.
func ValidPaymentMethod(pm string) bool {
	switch pm {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodCredit:
		return true
	}
	return false
}

// Invoice representa una factura de venta.
// Máquina de estados: pending -> paid (genera movimientos "out" por línea, atómico)
// o pending -> cancelled (sin efecto en el libro).
type Invoice struct {
	ID            string
	InvoiceNumber string // único
	CustomerName  string
	PaymentMethod string
	Status        string
	TotalAmount   decimal.Decimal // = suma de subtotales de las líneas
	CreatedBy     string          // UserID
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Items         []InvoiceItem
}

// InvoiceItem línea de una factura.
type InvoiceItem struct {
	ID           string
	InvoiceID    string
	ProductID    string
	Quantity     int64
	SellingPrice decimal.Decimal
	Subtotal     decimal.Decimal // Quantity x SellingPrice
}

// IsTerminal indica si la factura ya no admite transiciones.
func (i *Invoice) IsTerminal() bool {
	return i.Status != InvoiceStatusPending
}
