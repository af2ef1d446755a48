package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// InventoryHandler maneja ajustes manuales y consultas del libro de movimientos.
type InventoryHandler struct {
	registerUC *inventory.RegisterMovementUseCase
	queryUC    *inventory.MovementQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(registerUC *inventory.RegisterMovementUseCase, queryUC *inventory.MovementQueryUseCase) *InventoryHandler {
	return &InventoryHandler{registerUC: registerUC, queryUC: queryUC}
}

// AdjustStock godoc
// @Summary      Registrar ajuste manual de stock
// @Description  Entrada o salida manual; queda asentada en el libro de movimientos.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "Datos del ajuste"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjust [post]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	refType := in.ReferenceType
	if refType == "" {
		refType = entity.ReferenceTypeManual
	}
	movement, err := h.registerUC.RegisterMovement(c.Context(), inventory.MovementInput{
		ProductID:     in.ProductID,
		Type:          in.Type,
		Quantity:      in.Quantity,
		ReferenceType: refType,
		PerformedBy:   GetUserID(c),
		Note:          in.Note,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inventory.ToMovementResponse(movement))
}

// ListByProduct godoc
// @Summary      Historial de movimientos de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.MovementListResponse
// @Router       /api/products/{id}/movements [get]
func (h *InventoryHandler) ListByProduct(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.queryUC.ListByProduct(c.Context(), c.Params("id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Query godoc
// @Summary      Consultar el libro de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        type            query  string  false  "in | out"
// @Param        reference_type  query  string  false  "purchase | sale | manual | adjustment | return"
// @Param        from            query  string  false  "RFC 3339 o YYYY-MM-DD"
// @Param        to              query  string  false  "RFC 3339 o YYYY-MM-DD"
// @Param        limit           query  int     false  "Límite"   default(20)
// @Param        offset          query  int     false  "Offset"   default(0)
// @Success      200             {object}  dto.MovementListResponse
// @Failure      400             {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) Query(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	filter := repository.MovementFilter{
		Type:          c.Query("type"),
		ReferenceType: c.Query("reference_type"),
	}
	from, ok := parseTimeParam(c.Query("from"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido: usar RFC 3339 o YYYY-MM-DD"})
	}
	to, ok := parseTimeParam(c.Query("to"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido: usar RFC 3339 o YYYY-MM-DD"})
	}
	filter.From = from
	filter.To = to
	out, err := h.queryUC.Query(c.Context(), filter, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseTimeParam acepta RFC 3339 o fecha simple; cadena vacía devuelve nil.
func parseTimeParam(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, true
	}
	return nil, false
}
