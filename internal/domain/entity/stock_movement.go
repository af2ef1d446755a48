package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// Razones de negocio de un movimiento (variantes cerradas, no strings libres).
const (
	ReferenceTypePurchase   = "purchase"   // orden de compra entregada
	ReferenceTypeSale       = "sale"       // factura pagada
	ReferenceTypeManual     = "manual"     // ajuste manual del operario
	ReferenceTypeAdjustment = "adjustment" // ajuste del sistema (ej. stock inicial)
	ReferenceTypeReturn     = "return"     // devolución
)

// ValidReferenceType verifica que la razón del movimiento pertenezca al conjunto cerrado.
func ValidReferenceType(rt string) bool {
	switch rt {
	case ReferenceTypePurchase, ReferenceTypeSale, ReferenceTypeManual,
		ReferenceTypeAdjustment, ReferenceTypeReturn:
		return true
	}
	return false
}

// StockMovement es un registro inmutable del libro de movimientos: una entrada o salida
// de stock con snapshot antes/después. Nunca se actualiza ni se borra (auditoría).
// Invariante: NewStock = PreviousStock + Quantity (in) o PreviousStock - Quantity (out),
// y NewStock >= 0 siempre.
type StockMovement struct {
	ID            string
	ProductID     string
	Type          string // in, out
	Quantity      int64  // siempre positivo; el signo lo da Type
	PreviousStock int64
	NewStock      int64
	ReferenceType string // purchase, sale, manual, adjustment, return
	ReferenceID   string // orden o factura asociada; vacío en manuales
	PerformedBy   string // UserID
	Note          string
	CreatedAt     time.Time
}
