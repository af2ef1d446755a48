package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// VendorRepository define el puerto de persistencia para Vendor (DIP).
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id string) (*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	UpdateStatus(ctx context.Context, id, status string) error
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Vendor, error)
}
