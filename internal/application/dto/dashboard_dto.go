package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OverviewResponse cifras generales del dashboard.
// Cached indica si proviene del snapshot persistido por Rebuild (eventualmente consistente).
type OverviewResponse struct {
	TotalProducts  int64           `json:"total_products"`
	ActiveProducts int64           `json:"active_products"`
	TotalStock     int64           `json:"total_stock"`
	LowStockCount  int64           `json:"low_stock_count"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	TotalSales     decimal.Decimal `json:"total_sales"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	TotalProfit    decimal.Decimal `json:"total_profit"`
	Cached         bool            `json:"cached"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

// StockReportResponse sumas de entradas/salidas del libro en un rango.
type StockReportResponse struct {
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
	TotalIn  int64     `json:"total_in"`
	TotalOut int64     `json:"total_out"`
}

// ProfitLossResponse resultado sobre facturas pagadas.
type ProfitLossResponse struct {
	Revenue decimal.Decimal `json:"revenue"`
	Cost    decimal.Decimal `json:"cost"`
	Profit  decimal.Decimal `json:"profit"`
}

// TopProductDTO producto más vendido.
type TopProductDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	UnitsSold int64           `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// TopVendorDTO proveedor con mayor compra entregada.
type TopVendorDTO struct {
	VendorID  string          `json:"vendor_id"`
	Name      string          `json:"name"`
	Purchased decimal.Decimal `json:"purchased"`
}

// TopCustomerDTO cliente con mayor facturación pagada.
type TopCustomerDTO struct {
	CustomerName string          `json:"customer_name"`
	Invoices     int64           `json:"invoices"`
	Total        decimal.Decimal `json:"total"`
}

// TopInsightsResponse mejores producto, proveedor y cliente.
// Los campos son nil cuando aún no hay datos (sin ventas/compras).
type TopInsightsResponse struct {
	BestProduct *TopProductDTO  `json:"best_product"`
	TopVendor   *TopVendorDTO   `json:"top_vendor"`
	TopCustomer *TopCustomerDTO `json:"top_customer"`
}
