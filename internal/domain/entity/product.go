package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del producto.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Niveles de stock derivados de Quantity y LowStockThreshold.
const (
	StockLevelInStock    = "in_stock"
	StockLevelLowStock   = "low_stock"
	StockLevelOutOfStock = "out_of_stock"
)

// Unidades de medida reconocidas.
var ValidUnits = map[string]bool{
	"unidad":  true,
	"caja":    true,
	"paquete": true,
	"kg":      true,
	"g":       true,
	"l":       true,
	"ml":      true,
	"m":       true,
}

// Product representa un producto o SKU del catálogo.
// Quantity solo se modifica a través del libro de movimientos (StockMovement);
// PurchasePrice/SellingPrice son precios vigentes, con invariante SellingPrice >= PurchasePrice.
type Product struct {
	ID                string
	SKU               string // único, normalizado a mayúsculas
	Name              string
	Description       string
	CategoryID        string
	PurchasePrice     decimal.Decimal
	SellingPrice      decimal.Decimal
	Quantity          int64 // existencias actuales, nunca negativo
	Unit              string
	LowStockThreshold int64 // >= 1
	Status            string // active, inactive
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// StockLevel clasifica las existencias actuales frente al umbral de stock bajo.
func (p *Product) StockLevel() string {
	switch {
	case p.Quantity <= 0:
		return StockLevelOutOfStock
	case p.Quantity <= p.LowStockThreshold:
		return StockLevelLowStock
	default:
		return StockLevelInStock
	}
}

// IsActive indica si el producto admite nuevas líneas de orden/factura.
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}
