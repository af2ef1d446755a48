package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeAnalyticsRepo struct {
	stats       repository.ProductStats
	revenue     decimal.Decimal
	cost        decimal.Decimal
	stockTotals repository.StockTotals
	topProduct  *repository.TopProductResult
	topVendor   *repository.TopVendorResult
	topCustomer *repository.TopCustomerResult

	statsCalls int
}

func (r *fakeAnalyticsRepo) GetProductStats(_ context.Context) (*repository.ProductStats, error) {
	r.statsCalls++
	cp := r.stats
	return &cp, nil
}

func (r *fakeAnalyticsRepo) GetSalesMetrics(_ context.Context) (decimal.Decimal, decimal.Decimal, error) {
	return r.revenue, r.cost, nil
}

func (r *fakeAnalyticsRepo) GetStockTotals(_ context.Context, _, _ time.Time) (*repository.StockTotals, error) {
	cp := r.stockTotals
	return &cp, nil
}

func (r *fakeAnalyticsRepo) GetTopProduct(_ context.Context) (*repository.TopProductResult, error) {
	return r.topProduct, nil
}

func (r *fakeAnalyticsRepo) GetTopVendor(_ context.Context) (*repository.TopVendorResult, error) {
	return r.topVendor, nil
}

func (r *fakeAnalyticsRepo) GetTopCustomer(_ context.Context) (*repository.TopCustomerResult, error) {
	return r.topCustomer, nil
}

type fakeSummaryRepo struct {
	snapshot *entity.DashboardSummary
	upserts  int
}

func (r *fakeSummaryRepo) Upsert(_ context.Context, s *entity.DashboardSummary) error {
	cp := *s
	r.snapshot = &cp
	r.upserts++
	return nil
}

func (r *fakeSummaryRepo) Get(_ context.Context) (*entity.DashboardSummary, error) {
	if r.snapshot == nil {
		return nil, nil
	}
	cp := *r.snapshot
	return &cp, nil
}

func defaultRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{
		stats: repository.ProductStats{
			TotalProducts:  12,
			ActiveProducts: 10,
			TotalStock:     340,
			LowStockCount:  2,
			InventoryValue: decimal.NewFromInt(5200),
		},
		revenue: decimal.NewFromInt(60),
		cost:    decimal.NewFromInt(24),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Overview / Rebuild
// ──────────────────────────────────────────────────────────────────────────────

// Overview en vivo calcula sobre los repos y marca cached=false.
func TestOverview_EnVivo(t *testing.T) {
	repo := defaultRepo()
	uc := analytics.NewDashboardUseCase(repo, &fakeSummaryRepo{})

	out, err := uc.Overview(context.Background(), false)
	require.NoError(t, err)

	assert.False(t, out.Cached)
	assert.Equal(t, int64(12), out.TotalProducts)
	assert.Equal(t, int64(10), out.ActiveProducts)
	assert.Equal(t, int64(340), out.TotalStock)
	assert.Equal(t, int64(2), out.LowStockCount)
	assert.True(t, out.TotalProfit.Equal(decimal.NewFromInt(36)), "60 - 24 = 36")
	assert.False(t, out.GeneratedAt.IsZero())
}

// Con cached=true pero sin Rebuild previo, cae al cálculo en vivo.
func TestOverview_CacheVacioCaeEnVivo(t *testing.T) {
	repo := defaultRepo()
	uc := analytics.NewDashboardUseCase(repo, &fakeSummaryRepo{})

	out, err := uc.Overview(context.Background(), true)
	require.NoError(t, err)

	assert.False(t, out.Cached, "sin snapshot debe servirse el cálculo en vivo")
	assert.Equal(t, 1, repo.statsCalls)
}

// Tras Rebuild, cached=true sirve el snapshot aunque las cifras reales cambien.
func TestOverview_CacheServidoTrasRebuild(t *testing.T) {
	repo := defaultRepo()
	summaryRepo := &fakeSummaryRepo{}
	uc := analytics.NewDashboardUseCase(repo, summaryRepo)

	_, err := uc.Rebuild(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, summaryRepo.upserts)

	// Las cifras en vivo cambian; el snapshot no.
	repo.stats.TotalProducts = 99

	out, err := uc.Overview(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, out.Cached)
	assert.Equal(t, int64(12), out.TotalProducts, "el cache sirve la cifra congelada")

	live, err := uc.Overview(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, live.Cached)
	assert.Equal(t, int64(99), live.TotalProducts)
}

// Rebuild es idempotente: dos seguidos dejan un único snapshot equivalente.
func TestRebuild_Idempotente(t *testing.T) {
	repo := defaultRepo()
	summaryRepo := &fakeSummaryRepo{}
	uc := analytics.NewDashboardUseCase(repo, summaryRepo)

	first, err := uc.Rebuild(context.Background())
	require.NoError(t, err)
	second, err := uc.Rebuild(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summaryRepo.upserts)
	assert.Equal(t, first.TotalProducts, second.TotalProducts)
	assert.True(t, first.TotalProfit.Equal(second.TotalProfit))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestProfitLoss_Redondeado(t *testing.T) {
	repo := defaultRepo()
	repo.revenue = decimal.RequireFromString("60.005")
	repo.cost = decimal.RequireFromString("24.004")
	uc := analytics.NewDashboardUseCase(repo, &fakeSummaryRepo{})

	out, err := uc.ProfitLoss(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "60.01", out.Revenue.StringFixed(2))
	assert.Equal(t, "24.00", out.Cost.StringFixed(2))
	assert.Equal(t, "36.00", out.Profit.StringFixed(2), "la utilidad se redondea sobre la resta exacta")
}

func TestStockReport_Totales(t *testing.T) {
	repo := defaultRepo()
	repo.stockTotals = repository.StockTotals{TotalIn: 120, TotalOut: 45}
	uc := analytics.NewDashboardUseCase(repo, &fakeSummaryRepo{})

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	out, err := uc.StockReport(context.Background(), from, to)
	require.NoError(t, err)

	assert.Equal(t, from, out.From)
	assert.Equal(t, to, out.To)
	assert.Equal(t, int64(120), out.TotalIn)
	assert.Equal(t, int64(45), out.TotalOut)
}

// Sin datos, los rankings vienen nil en lugar de ceros engañosos.
func TestTopInsights_SinDatos(t *testing.T) {
	uc := analytics.NewDashboardUseCase(defaultRepo(), &fakeSummaryRepo{})

	out, err := uc.TopInsights(context.Background())
	require.NoError(t, err)

	assert.Nil(t, out.BestProduct)
	assert.Nil(t, out.TopVendor)
	assert.Nil(t, out.TopCustomer)
}

func TestTopInsights_ConDatos(t *testing.T) {
	repo := defaultRepo()
	repo.topProduct = &repository.TopProductResult{
		ProductID: "p1", Name: "Arroz", SKU: "ABC-001", UnitsSold: 40,
		Revenue: decimal.NewFromInt(600),
	}
	repo.topVendor = &repository.TopVendorResult{
		VendorID: "v1", Name: "Distribuidora Norte", Purchased: decimal.NewFromInt(1500),
	}
	repo.topCustomer = &repository.TopCustomerResult{
		CustomerName: "Bodega Central", Invoices: 7, Total: decimal.NewFromInt(980),
	}
	uc := analytics.NewDashboardUseCase(repo, &fakeSummaryRepo{})

	out, err := uc.TopInsights(context.Background())
	require.NoError(t, err)

	require.NotNil(t, out.BestProduct)
	assert.Equal(t, int64(40), out.BestProduct.UnitsSold)
	require.NotNil(t, out.TopVendor)
	assert.True(t, out.TopVendor.Purchased.Equal(decimal.NewFromInt(1500)))
	require.NotNil(t, out.TopCustomer)
	assert.Equal(t, int64(7), out.TopCustomer.Invoices)
}
