package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// VendorUseCase CRUD de proveedores con borrado lógico.
type VendorUseCase struct {
	vendorRepo repository.VendorRepository
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(vendorRepo repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{vendorRepo: vendorRepo}
}

// Create persiste un proveedor nuevo.
func (uc *VendorUseCase) Create(ctx context.Context, in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	vendor := &entity.Vendor{
		ID:          uuid.New().String(),
		Name:        name,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// GetByID obtiene un proveedor; nil si no existe.
func (uc *VendorUseCase) GetByID(ctx context.Context, id string) (*dto.VendorResponse, error) {
	vendor, err := uc.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, nil
	}
	return toVendorResponse(vendor), nil
}

// Update aplica un patch parcial.
func (uc *VendorUseCase) Update(ctx context.Context, id string, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	vendor, err := uc.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		vendor.Name = strings.TrimSpace(*in.Name)
	}
	if in.ContactName != nil {
		vendor.ContactName = *in.ContactName
	}
	if in.Email != nil {
		vendor.Email = *in.Email
	}
	if in.Phone != nil {
		vendor.Phone = *in.Phone
	}
	if in.Address != nil {
		vendor.Address = *in.Address
	}
	vendor.UpdatedAt = time.Now()
	if err := uc.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// Deactivate borrado lógico: el proveedor deja de admitir órdenes nuevas.
func (uc *VendorUseCase) Deactivate(ctx context.Context, id string) error {
	vendor, err := uc.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return domain.ErrNotFound
	}
	return uc.vendorRepo.UpdateStatus(ctx, id, "inactive")
}

// List lista proveedores.
func (uc *VendorUseCase) List(ctx context.Context, status string, page dto.PageRequest) ([]dto.VendorResponse, error) {
	page.DefaultPage()
	vendors, err := uc.vendorRepo.List(ctx, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		items = append(items, *toVendorResponse(v))
	}
	return items, nil
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		ID:          v.ID,
		Name:        v.Name,
		ContactName: v.ContactName,
		Email:       v.Email,
		Phone:       v.Phone,
		Address:     v.Address,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
