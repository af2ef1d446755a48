package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummary snapshot persistido de las cifras del dashboard.
// Lo escribe únicamente Rebuild; es una caché de lectura, nunca fuente de verdad
// (eventualmente consistente con el libro de movimientos).
type DashboardSummary struct {
	TotalProducts  int64
	ActiveProducts int64
	TotalStock     int64
	LowStockCount  int64
	InventoryValue decimal.Decimal // suma quantity x purchase_price
	TotalSales     decimal.Decimal // suma de totales de facturas pagadas
	TotalCost      decimal.Decimal // costo de lo vendido
	TotalProfit    decimal.Decimal // TotalSales - TotalCost
	GeneratedAt    time.Time
}
