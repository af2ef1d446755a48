package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock de forma transaccional.
// Es el único punto del sistema que muta Product.Quantity: bloquea la fila del
// producto (SELECT FOR UPDATE), inserta el movimiento con snapshot antes/después
// y actualiza la cantidad en la misma tx; Commit o Rollback completo.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// MovementInput entrada para registrar un movimiento.
// Quantity es siempre positivo; Type decide el signo (in suma, out resta).
type MovementInput struct {
	ProductID     string
	Type          string // in, out
	Quantity      int64
	ReferenceType string // purchase, sale, manual, adjustment, return
	ReferenceID   string
	PerformedBy   string
	Note          string
}

func (in MovementInput) validate() error {
	if in.ProductID == "" || in.PerformedBy == "" {
		return domain.ErrInvalidInput
	}
	if in.Type != entity.MovementTypeIn && in.Type != entity.MovementTypeOut {
		return domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if !entity.ValidReferenceType(in.ReferenceType) {
		return domain.ErrInvalidInput
	}
	return nil
}

// RegisterMovement valida la entrada, verifica que el producto exista y aplica el
// movimiento dentro de una transacción. Una salida que dejaría el stock negativo
// se rechaza con InsufficientStockError (nunca se recorta en silencio).
//
// Por esta vía solo entran movimientos manuales (manual, adjustment, return).
// Las referencias purchase y sale las emiten exclusivamente la entrega de órdenes
// y el pago de facturas vía ApplyInTx: un ajuste manual no puede fabricar
// asientos de venta o compra sin documento asociado.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in MovementInput) (*entity.StockMovement, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.ReferenceType == entity.ReferenceTypePurchase || in.ReferenceType == entity.ReferenceTypeSale {
		return nil, domain.ErrInvalidInput
	}

	// Existencia fuera de la tx (solo lectura); el estado definitivo se relee con lock adentro.
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var mov *entity.StockMovement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		var applyErr error
		mov, applyErr = uc.ApplyInTx(ctx, movRepo, productRepo, in, now)
		return applyErr
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// ApplyInTx aplica un movimiento usando los repositorios proporcionados (misma
// transacción del caller). Lo usan las entregas de órdenes y el pago de facturas
// para emitir varias líneas con atomicidad todo-o-nada.
func (uc *RegisterMovementUseCase) ApplyInTx(
	ctx context.Context,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	in MovementInput,
	now time.Time,
) (*entity.StockMovement, error) {
	// Bloquea la fila del producto para serializar lecturas-escrituras concurrentes.
	product, err := productRepo.GetForUpdate(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var newStock int64
	switch in.Type {
	case entity.MovementTypeIn:
		newStock = product.Quantity + in.Quantity
	case entity.MovementTypeOut:
		if in.Quantity > product.Quantity {
			return nil, &domain.InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Requested:   in.Quantity,
				Available:   product.Quantity,
			}
		}
		newStock = product.Quantity - in.Quantity
	default:
		return nil, domain.ErrInvalidInput
	}

	mov := &entity.StockMovement{
		ID:            uuid.New().String(),
		ProductID:     product.ID,
		Type:          in.Type,
		Quantity:      in.Quantity,
		PreviousStock: product.Quantity,
		NewStock:      newStock,
		ReferenceType: in.ReferenceType,
		ReferenceID:   in.ReferenceID,
		PerformedBy:   in.PerformedBy,
		Note:          in.Note,
		CreatedAt:     now,
	}
	if err := movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}
	if err := productRepo.UpdateQuantity(ctx, product.ID, newStock); err != nil {
		return nil, err
	}
	return mov, nil
}
