// Package analytics contiene los casos de uso de solo lectura del dashboard:
// resumen general, reporte de stock, estado de resultados y rankings.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// DashboardUseCase agrega cifras sobre catálogo, facturas y libro de movimientos.
//
// Todas las operaciones son lecturas; la única escritura es Rebuild, que persiste
// un snapshot en dashboard_summaries (idempotente, sin efecto sobre el libro).
// El snapshot es eventualmente consistente con el libro: GeneratedAt lo evidencia.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	summaryRepo   repository.SummaryRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, summaryRepo repository.SummaryRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, summaryRepo: summaryRepo}
}

// Overview construye las cifras generales. Con cached=true sirve el snapshot de
// Rebuild si existe; si nunca se ha reconstruido, cae al cálculo en vivo.
func (uc *DashboardUseCase) Overview(ctx context.Context, cached bool) (*dto.OverviewResponse, error) {
	if cached {
		snapshot, err := uc.summaryRepo.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("overview: snapshot: %w", err)
		}
		if snapshot != nil {
			return summaryToOverview(snapshot, true), nil
		}
	}
	summary, err := uc.compute(ctx)
	if err != nil {
		return nil, err
	}
	return summaryToOverview(summary, false), nil
}

// compute ejecuta las consultas del resumen en paralelo y arma el snapshot.
// Si alguna falla, se devuelve el error: nunca cifras parciales.
func (uc *DashboardUseCase) compute(ctx context.Context) (*entity.DashboardSummary, error) {
	type statsResult struct {
		stats *repository.ProductStats
		err   error
	}

	statsCh := make(chan statsResult, 1)
	go func() {
		stats, err := uc.analyticsRepo.GetProductStats(ctx)
		statsCh <- statsResult{stats, err}
	}()

	revenue, cost, salesErr := uc.analyticsRepo.GetSalesMetrics(ctx)
	stats := <-statsCh

	if stats.err != nil {
		return nil, fmt.Errorf("overview: catálogo: %w", stats.err)
	}
	if salesErr != nil {
		return nil, fmt.Errorf("overview: ventas: %w", salesErr)
	}

	return &entity.DashboardSummary{
		TotalProducts:  stats.stats.TotalProducts,
		ActiveProducts: stats.stats.ActiveProducts,
		TotalStock:     stats.stats.TotalStock,
		LowStockCount:  stats.stats.LowStockCount,
		InventoryValue: stats.stats.InventoryValue.Round(2),
		TotalSales:     revenue.Round(2),
		TotalCost:      cost.Round(2),
		TotalProfit:    revenue.Sub(cost).Round(2),
		GeneratedAt:    time.Now(),
	}, nil
}

// Rebuild recalcula el resumen y lo persiste como snapshot. Idempotente: dos
// Rebuild seguidos dejan el mismo estado; el libro de movimientos no se toca.
func (uc *DashboardUseCase) Rebuild(ctx context.Context) (*dto.OverviewResponse, error) {
	summary, err := uc.compute(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.summaryRepo.Upsert(ctx, summary); err != nil {
		return nil, fmt.Errorf("rebuild: persistir snapshot: %w", err)
	}
	return summaryToOverview(summary, false), nil
}

// StockReport suma entradas y salidas del libro en el rango [from, to].
func (uc *DashboardUseCase) StockReport(ctx context.Context, from, to time.Time) (*dto.StockReportResponse, error) {
	totals, err := uc.analyticsRepo.GetStockTotals(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("stock report: %w", err)
	}
	return &dto.StockReportResponse{
		From:     from,
		To:       to,
		TotalIn:  totals.TotalIn,
		TotalOut: totals.TotalOut,
	}, nil
}

// ProfitLoss estado de resultados sobre todas las facturas pagadas.
func (uc *DashboardUseCase) ProfitLoss(ctx context.Context) (*dto.ProfitLossResponse, error) {
	revenue, cost, err := uc.analyticsRepo.GetSalesMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("profit/loss: %w", err)
	}
	return &dto.ProfitLossResponse{
		Revenue: revenue.Round(2),
		Cost:    cost.Round(2),
		Profit:  revenue.Sub(cost).Round(2),
	}, nil
}

// TopInsights mejor producto, proveedor y cliente. Tres consultas en paralelo.
func (uc *DashboardUseCase) TopInsights(ctx context.Context) (*dto.TopInsightsResponse, error) {
	type productResult struct {
		r   *repository.TopProductResult
		err error
	}
	type vendorResult struct {
		r   *repository.TopVendorResult
		err error
	}
	type customerResult struct {
		r   *repository.TopCustomerResult
		err error
	}

	productCh := make(chan productResult, 1)
	vendorCh := make(chan vendorResult, 1)
	customerCh := make(chan customerResult, 1)

	go func() {
		r, err := uc.analyticsRepo.GetTopProduct(ctx)
		productCh <- productResult{r, err}
	}()
	go func() {
		r, err := uc.analyticsRepo.GetTopVendor(ctx)
		vendorCh <- vendorResult{r, err}
	}()
	go func() {
		r, err := uc.analyticsRepo.GetTopCustomer(ctx)
		customerCh <- customerResult{r, err}
	}()

	product := <-productCh
	vendor := <-vendorCh
	customer := <-customerCh

	if product.err != nil {
		return nil, fmt.Errorf("top insights: producto: %w", product.err)
	}
	if vendor.err != nil {
		return nil, fmt.Errorf("top insights: proveedor: %w", vendor.err)
	}
	if customer.err != nil {
		return nil, fmt.Errorf("top insights: cliente: %w", customer.err)
	}

	out := &dto.TopInsightsResponse{}
	if product.r != nil {
		out.BestProduct = &dto.TopProductDTO{
			ProductID: product.r.ProductID,
			Name:      product.r.Name,
			SKU:       product.r.SKU,
			UnitsSold: product.r.UnitsSold,
			Revenue:   product.r.Revenue.Round(2),
		}
	}
	if vendor.r != nil {
		out.TopVendor = &dto.TopVendorDTO{
			VendorID:  vendor.r.VendorID,
			Name:      vendor.r.Name,
			Purchased: vendor.r.Purchased.Round(2),
		}
	}
	if customer.r != nil {
		out.TopCustomer = &dto.TopCustomerDTO{
			CustomerName: customer.r.CustomerName,
			Invoices:     customer.r.Invoices,
			Total:        customer.r.Total.Round(2),
		}
	}
	return out, nil
}

func summaryToOverview(s *entity.DashboardSummary, cached bool) *dto.OverviewResponse {
	return &dto.OverviewResponse{
		TotalProducts:  s.TotalProducts,
		ActiveProducts: s.ActiveProducts,
		TotalStock:     s.TotalStock,
		LowStockCount:  s.LowStockCount,
		InventoryValue: s.InventoryValue,
		TotalSales:     s.TotalSales,
		TotalCost:      s.TotalCost,
		TotalProfit:    s.TotalProfit,
		Cached:         cached,
		GeneratedAt:    s.GeneratedAt,
	}
}
