package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.SummaryRepository = (*SummaryRepo)(nil)

// SummaryRepo persiste el snapshot del dashboard en una sola fila (id fijo 1).
type SummaryRepo struct {
	q Querier
}

// NewSummaryRepository construye el adaptador.
func NewSummaryRepository(q Querier) *SummaryRepo {
	return &SummaryRepo{q: q}
}

// Upsert escribe (o sobreescribe) el snapshot. Idempotente.
func (r *SummaryRepo) Upsert(ctx context.Context, summary *entity.DashboardSummary) error {
	query := `
		INSERT INTO dashboard_summaries (
			id, total_products, active_products, total_stock, low_stock_count,
			inventory_value, total_sales, total_cost, total_profit, generated_at
		) VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			total_products = EXCLUDED.total_products,
			active_products = EXCLUDED.active_products,
			total_stock = EXCLUDED.total_stock,
			low_stock_count = EXCLUDED.low_stock_count,
			inventory_value = EXCLUDED.inventory_value,
			total_sales = EXCLUDED.total_sales,
			total_cost = EXCLUDED.total_cost,
			total_profit = EXCLUDED.total_profit,
			generated_at = EXCLUDED.generated_at`
	_, err := r.q.Exec(ctx, query,
		summary.TotalProducts, summary.ActiveProducts, summary.TotalStock,
		summary.LowStockCount, summary.InventoryValue, summary.TotalSales,
		summary.TotalCost, summary.TotalProfit, summary.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert dashboard summary: %w", err)
	}
	return nil
}

// Get devuelve (nil, nil) si el snapshot nunca se ha generado.
func (r *SummaryRepo) Get(ctx context.Context) (*entity.DashboardSummary, error) {
	query := `
		SELECT total_products, active_products, total_stock, low_stock_count,
		       inventory_value, total_sales, total_cost, total_profit, generated_at
		FROM dashboard_summaries WHERE id = 1`
	var s entity.DashboardSummary
	err := r.q.QueryRow(ctx, query).Scan(
		&s.TotalProducts, &s.ActiveProducts, &s.TotalStock, &s.LowStockCount,
		&s.InventoryValue, &s.TotalSales, &s.TotalCost, &s.TotalProfit, &s.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dashboard summary: %w", err)
	}
	return &s, nil
}
