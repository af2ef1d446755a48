package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura sobre PostgreSQL.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetProductStats cifras del catálogo. El valor del inventario solo cuenta
// productos activos.
func (r *AnalyticsRepo) GetProductStats(ctx context.Context) (*repository.ProductStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active'),
			COALESCE(SUM(quantity) FILTER (WHERE status = 'active'), 0),
			COUNT(*) FILTER (WHERE status = 'active' AND quantity <= low_stock_threshold),
			COALESCE(SUM(quantity * purchase_price) FILTER (WHERE status = 'active'), 0)
		FROM products`
	var stats repository.ProductStats
	err := r.q.QueryRow(ctx, query).Scan(
		&stats.TotalProducts, &stats.ActiveProducts, &stats.TotalStock,
		&stats.LowStockCount, &stats.InventoryValue,
	)
	if err != nil {
		return nil, fmt.Errorf("product stats: %w", err)
	}
	return &stats, nil
}

// GetSalesMetrics ingresos (subtotales facturados) y costo de lo vendido
// (precio de compra vigente del producto) sobre facturas pagadas.
func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context) (revenue, cost decimal.Decimal, err error) {
	query := `
		SELECT
			COALESCE(SUM(ii.subtotal), 0),
			COALESCE(SUM(ii.quantity * p.purchase_price), 0)
		FROM invoice_items ii
		JOIN invoices i ON i.id = ii.invoice_id
		JOIN products p ON p.id = ii.product_id
		WHERE i.status = 'paid'`
	if err = r.q.QueryRow(ctx, query).Scan(&revenue, &cost); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("sales metrics: %w", err)
	}
	return revenue, cost, nil
}

// GetStockTotals suma cantidades del libro de movimientos en [from, to), por tipo.
func (r *AnalyticsRepo) GetStockTotals(ctx context.Context, from, to time.Time) (*repository.StockTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(quantity) FILTER (WHERE type = 'in'), 0),
			COALESCE(SUM(quantity) FILTER (WHERE type = 'out'), 0)
		FROM stock_movements
		WHERE created_at >= $1 AND created_at < $2`
	var totals repository.StockTotals
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&totals.TotalIn, &totals.TotalOut); err != nil {
		return nil, fmt.Errorf("stock totals: %w", err)
	}
	return &totals, nil
}

// GetTopProduct producto más vendido por unidades en facturas pagadas.
// Devuelve (nil, nil) si no hay ventas.
func (r *AnalyticsRepo) GetTopProduct(ctx context.Context) (*repository.TopProductResult, error) {
	query := `
		SELECT p.id, p.name, p.sku, SUM(ii.quantity), SUM(ii.subtotal)
		FROM invoice_items ii
		JOIN invoices i ON i.id = ii.invoice_id
		JOIN products p ON p.id = ii.product_id
		WHERE i.status = 'paid'
		GROUP BY p.id, p.name, p.sku
		ORDER BY SUM(ii.quantity) DESC
		LIMIT 1`
	var top repository.TopProductResult
	err := r.q.QueryRow(ctx, query).Scan(&top.ProductID, &top.Name, &top.SKU, &top.UnitsSold, &top.Revenue)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("top product: %w", err)
	}
	return &top, nil
}

// GetTopVendor proveedor con mayor monto comprado en órdenes entregadas.
// Devuelve (nil, nil) si no hay órdenes entregadas.
func (r *AnalyticsRepo) GetTopVendor(ctx context.Context) (*repository.TopVendorResult, error) {
	query := `
		SELECT v.id, v.name, SUM(poi.quantity * poi.purchase_price)
		FROM purchase_order_items poi
		JOIN purchase_orders po ON po.id = poi.order_id
		JOIN vendors v ON v.id = po.vendor_id
		WHERE po.status = 'delivered'
		GROUP BY v.id, v.name
		ORDER BY SUM(poi.quantity * poi.purchase_price) DESC
		LIMIT 1`
	var top repository.TopVendorResult
	err := r.q.QueryRow(ctx, query).Scan(&top.VendorID, &top.Name, &top.Purchased)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("top vendor: %w", err)
	}
	return &top, nil
}

// GetTopCustomer cliente con mayor facturación pagada, agrupado por nombre.
// Devuelve (nil, nil) si no hay facturas pagadas.
func (r *AnalyticsRepo) GetTopCustomer(ctx context.Context) (*repository.TopCustomerResult, error) {
	query := `
		SELECT customer_name, COUNT(*), SUM(total_amount)
		FROM invoices
		WHERE status = 'paid'
		GROUP BY customer_name
		ORDER BY SUM(total_amount) DESC
		LIMIT 1`
	var top repository.TopCustomerResult
	err := r.q.QueryRow(ctx, query).Scan(&top.CustomerName, &top.Invoices, &top.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("top customer: %w", err)
	}
	return &top, nil
}
