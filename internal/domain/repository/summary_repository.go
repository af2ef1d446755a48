package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// SummaryRepository persiste el snapshot del dashboard escrito por Rebuild.
// Una sola fila; Upsert es idempotente.
type SummaryRepository interface {
	Upsert(ctx context.Context, summary *entity.DashboardSummary) error
	// Get devuelve (nil, nil) si nunca se ha ejecutado Rebuild.
	Get(ctx context.Context) (*entity.DashboardSummary, error)
}
