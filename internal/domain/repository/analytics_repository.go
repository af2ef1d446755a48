package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ProductStats conteos y valor del catálogo.
type ProductStats struct {
	TotalProducts  int64
	ActiveProducts int64
	TotalStock     int64
	LowStockCount  int64
	InventoryValue decimal.Decimal // suma quantity x purchase_price de productos activos
}

// StockTotals sumas de cantidades del libro de movimientos en un rango, por tipo.
type StockTotals struct {
	TotalIn  int64
	TotalOut int64
}

// TopProductResult producto más vendido por cantidad en facturas pagadas.
type TopProductResult struct {
	ProductID string
	Name      string
	SKU       string
	UnitsSold int64
	Revenue   decimal.Decimal
}

// TopVendorResult proveedor con mayor compra (precio x cantidad) en órdenes entregadas.
type TopVendorResult struct {
	VendorID  string
	Name      string
	Purchased decimal.Decimal
}

// TopCustomerResult cliente con mayor facturación pagada, agrupado por nombre.
type TopCustomerResult struct {
	CustomerName string
	Invoices     int64
	Total        decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para el dashboard y los reportes.
// Ninguna implementación debe escribir en el libro de movimientos.
type AnalyticsRepository interface {
	GetProductStats(ctx context.Context) (*ProductStats, error)
	// GetSalesMetrics devuelve ingresos y costo de lo vendido sobre facturas pagadas.
	// El costo usa el precio de compra vigente del producto.
	GetSalesMetrics(ctx context.Context) (revenue, cost decimal.Decimal, err error)
	GetStockTotals(ctx context.Context, from, to time.Time) (*StockTotals, error)
	GetTopProduct(ctx context.Context) (*TopProductResult, error)
	GetTopVendor(ctx context.Context) (*TopVendorResult, error)
	GetTopCustomer(ctx context.Context) (*TopCustomerResult, error)
}
