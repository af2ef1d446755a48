package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
)

// DashboardHandler maneja las consultas del dashboard y los reportes (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Overview godoc
// @Summary      Cifras generales del inventario
// @Description  Con cached=true sirve el snapshot persistido (si existe) en lugar de consultar en vivo.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        cached  query  bool  false  "Usar snapshot persistido"  default(false)
// @Success      200     {object}  dto.OverviewResponse
// @Router       /api/dashboard/overview [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.Context(), c.QueryBool("cached", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Rebuild godoc
// @Summary      Regenerar el snapshot del dashboard
// @Description  Recalcula todas las cifras y sobreescribe el snapshot. Idempotente. Solo admin.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OverviewResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/rebuild [post]
func (h *DashboardHandler) Rebuild(c *fiber.Ctx) error {
	out, err := h.uc.Rebuild(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockReport godoc
// @Summary      Entradas y salidas del libro en un rango
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "RFC 3339 o YYYY-MM-DD (por defecto: hace 30 días)"
// @Param        to    query  string  false  "RFC 3339 o YYYY-MM-DD (por defecto: ahora)"
// @Success      200   {object}  dto.StockReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/dashboard/stock-report [get]
func (h *DashboardHandler) StockReport(c *fiber.Ctx) error {
	now := time.Now().UTC()
	from, ok := parseTimeParam(c.Query("from"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido: usar RFC 3339 o YYYY-MM-DD"})
	}
	to, ok := parseTimeParam(c.Query("to"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido: usar RFC 3339 o YYYY-MM-DD"})
	}
	fromT := now.AddDate(0, 0, -30)
	if from != nil {
		fromT = *from
	}
	toT := now
	if to != nil {
		toT = *to
	}
	if !fromT.Before(toT) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser anterior a to"})
	}
	out, err := h.uc.StockReport(c.Context(), fromT, toT)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ProfitLoss godoc
// @Summary      Resultado sobre facturas pagadas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfitLossResponse
// @Router       /api/dashboard/profit-loss [get]
func (h *DashboardHandler) ProfitLoss(c *fiber.Ctx) error {
	out, err := h.uc.ProfitLoss(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopInsights godoc
// @Summary      Mejor producto, proveedor y cliente
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TopInsightsResponse
// @Router       /api/dashboard/top-insights [get]
func (h *DashboardHandler) TopInsights(c *fiber.Ctx) error {
	out, err := h.uc.TopInsights(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
