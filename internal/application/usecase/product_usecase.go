package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var skuUpper = cases.Upper(language.Und)

// NormalizeSKU recorta espacios y normaliza a mayúsculas (unicidad case-insensitive).
func NormalizeSKU(sku string) string {
	return skuUpper.String(strings.TrimSpace(sku))
}

// ProductUseCase casos de uso del catálogo de productos.
// Quantity nunca se escribe aquí: el stock inicial entra por el libro de movimientos.
type ProductUseCase struct {
	txRunner     inventory.TxRunner
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	movementUC   *inventory.RegisterMovementUseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner inventory.TxRunner,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	movementUC *inventory.RegisterMovementUseCase,
) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo, categoryRepo: categoryRepo, movementUC: movementUC}
}

// Create valida y persiste un producto nuevo. Si OpeningQuantity > 0, registra el
// stock inicial como movimiento "in" de tipo adjustment (la cantidad siempre
// pasa por el libro). Alta y movimiento inicial van en la misma transacción: si
// el asiento falla, el producto tampoco queda creado.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := NormalizeSKU(in.SKU)
	if sku == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidUnits[in.Unit] {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.LessThan(decimal.Zero) || in.SellingPrice.LessThan(in.PurchasePrice) {
		return nil, domain.ErrInvalidInput
	}
	if in.OpeningQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	threshold := in.LowStockThreshold
	if threshold == 0 {
		threshold = 1
	}
	if threshold < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryID != "" {
		cat, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
	}

	existing, err := uc.productRepo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		SKU:               sku,
		Name:              strings.TrimSpace(in.Name),
		Description:       in.Description,
		CategoryID:        in.CategoryID,
		PurchasePrice:     in.PurchasePrice,
		SellingPrice:      in.SellingPrice,
		Quantity:          0,
		Unit:              in.Unit,
		LowStockThreshold: threshold,
		Status:            entity.ProductStatusActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if in.OpeningQuantity > 0 {
			mov, err := uc.movementUC.ApplyInTx(ctx, movRepo, productRepo, inventory.MovementInput{
				ProductID:     product.ID,
				Type:          entity.MovementTypeIn,
				Quantity:      in.OpeningQuantity,
				ReferenceType: entity.ReferenceTypeAdjustment,
				PerformedBy:   userID,
				Note:          "stock inicial",
			}, now)
			if err != nil {
				return err
			}
			product.Quantity = mov.NewStock
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto; nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update aplica un patch parcial. Quantity queda fuera; SKU no se cambia.
// Mantiene el invariante selling_price >= purchase_price sobre el estado resultante.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			cat, err := uc.categoryRepo.GetByID(ctx, *in.CategoryID)
			if err != nil {
				return nil, err
			}
			if cat == nil {
				return nil, domain.ErrNotFound
			}
		}
		product.CategoryID = *in.CategoryID
	}
	if in.PurchasePrice != nil {
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SellingPrice != nil {
		product.SellingPrice = *in.SellingPrice
	}
	if in.Unit != nil {
		if !entity.ValidUnits[*in.Unit] {
			return nil, domain.ErrInvalidInput
		}
		product.Unit = *in.Unit
	}
	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 1 {
			return nil, domain.ErrInvalidInput
		}
		product.LowStockThreshold = *in.LowStockThreshold
	}
	if product.PurchasePrice.LessThan(decimal.Zero) || product.SellingPrice.LessThan(product.PurchasePrice) {
		return nil, domain.ErrInvalidInput
	}

	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Deactivate borrado lógico: el producto conserva historial y referencias.
func (uc *ProductUseCase) Deactivate(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, entity.ProductStatusInactive)
}

// Reactivate vuelve a habilitar el producto para nuevas líneas.
func (uc *ProductUseCase) Reactivate(ctx context.Context, id string) error {
	return uc.setStatus(ctx, id, entity.ProductStatusActive)
}

func (uc *ProductUseCase) setStatus(ctx context.Context, id, status string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.UpdateStatus(ctx, id, status)
}

// List lista productos con filtros y paginación.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	filter.Limit = page.Limit
	filter.Offset = page.Offset
	products, err := uc.productRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID,
		SKU:               p.SKU,
		Name:              p.Name,
		Description:       p.Description,
		CategoryID:        p.CategoryID,
		PurchasePrice:     p.PurchasePrice,
		SellingPrice:      p.SellingPrice,
		Quantity:          p.Quantity,
		Unit:              p.Unit,
		LowStockThreshold: p.LowStockThreshold,
		StockLevel:        p.StockLevel(),
		Status:            p.Status,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
