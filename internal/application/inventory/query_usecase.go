package inventory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// MovementQueryUseCase consultas de solo lectura sobre el libro de movimientos.
type MovementQueryUseCase struct {
	movRepo repository.StockMovementRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(movRepo repository.StockMovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo}
}

// ListByProduct lista el historial de movimientos de un producto (más reciente primero).
func (uc *MovementQueryUseCase) ListByProduct(ctx context.Context, productID string, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	movements, err := uc.movRepo.ListByProduct(ctx, productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(movements, page), nil
}

// Query filtra el libro por tipo, razón y rango de fechas.
func (uc *MovementQueryUseCase) Query(ctx context.Context, filter repository.MovementFilter, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	filter.Limit = page.Limit
	filter.Offset = page.Offset
	movements, err := uc.movRepo.Query(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toMovementList(movements, page), nil
}

func toMovementList(movements []*entity.StockMovement, page dto.PageRequest) *dto.MovementListResponse {
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}

// ToMovementResponse mapea la entidad al DTO de salida.
func ToMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		PerformedBy:   m.PerformedBy,
		Note:          m.Note,
		CreatedAt:     m.CreatedAt,
	}
}
