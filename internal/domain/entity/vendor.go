package entity

import "time"

// Vendor representa un proveedor. Borrado lógico vía Status (nunca físico mientras
// existan órdenes de compra que lo referencien).
type Vendor struct {
	ID          string
	Name        string
	ContactName string
	Email       string
	Phone       string
	Address     string
	Status      string // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive indica si el proveedor admite nuevas órdenes de compra.
func (v *Vendor) IsActive() bool {
	return v.Status == "active"
}
