package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const orderColumns = `id, order_number, vendor_id, status, expected_delivery, received_at, created_by, created_at, updated_at`

// PurchaseOrderRepo implementación sobre PostgreSQL (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste cabecera y líneas.
func (r *PurchaseOrderRepo) Create(ctx context.Context, order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.OrderNumber, order.VendorID, order.Status,
		order.ExpectedDelivery, order.ReceivedAt, order.CreatedBy,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return r.insertItems(ctx, order.ID, order.Items)
}

// insertItems persiste las líneas con su posición: el orden de inserción es el
// orden del documento y gobierna la aplicación secuencial de movimientos.
func (r *PurchaseOrderRepo) insertItems(ctx context.Context, orderID string, items []entity.PurchaseOrderItem) error {
	for i, item := range items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO purchase_order_items (id, order_id, product_id, quantity, purchase_price, position)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, orderID, item.ProductID, item.Quantity, item.PurchasePrice, i,
		)
		if err != nil {
			return fmt.Errorf("insert purchase order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene cabecera y líneas.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE id = $1`
	return r.getOne(ctx, query, id, "get purchase order")
}

// GetForUpdate obtiene la orden bloqueando la cabecera (SELECT FOR UPDATE).
func (r *PurchaseOrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id, "get purchase order for update")
}

func (r *PurchaseOrderRepo) getOne(ctx context.Context, query, id, op string) (*entity.PurchaseOrder, error) {
	order, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *PurchaseOrderRepo) loadItems(ctx context.Context, orderID string) ([]entity.PurchaseOrderItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, order_id, product_id, quantity, purchase_price
		FROM purchase_order_items WHERE order_id = $1 ORDER BY position`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("load purchase order items: %w", err)
	}
	defer rows.Close()

	var items []entity.PurchaseOrderItem
	for rows.Next() {
		var it entity.PurchaseOrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.PurchasePrice); err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Update reescribe cabecera y líneas (orden pendiente).
func (r *PurchaseOrderRepo) Update(ctx context.Context, order *entity.PurchaseOrder) error {
	_, err := r.q.Exec(ctx, `
		UPDATE purchase_orders
		SET vendor_id = $2, expected_delivery = $3, updated_at = $4
		WHERE id = $1`,
		order.ID, order.VendorID, order.ExpectedDelivery, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM purchase_order_items WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("clear purchase order items: %w", err)
	}
	return r.insertItems(ctx, order.ID, order.Items)
}

// UpdateStatus cambia el estado y estampa received_at cuando aplica.
func (r *PurchaseOrderRepo) UpdateStatus(ctx context.Context, id, status string, receivedAt *time.Time) error {
	_, err := r.q.Exec(ctx, `
		UPDATE purchase_orders
		SET status = $2, received_at = COALESCE($3, received_at), updated_at = now()
		WHERE id = $1`,
		id, status, receivedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	return nil
}

// List lista órdenes (con líneas) según filtros.
func (r *PurchaseOrderRepo) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE 1=1`
	args := []any{}
	idx := 1
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filter.Status)
		idx++
	}
	if filter.VendorID != "" {
		query += fmt.Sprintf(" AND vendor_id = $%d", idx)
		args = append(args, filter.VendorID)
		idx++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseOrder
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, order := range list {
		items, err := r.loadItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}
	return list, nil
}

func scanOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	if err := row.Scan(
		&o.ID, &o.OrderNumber, &o.VendorID, &o.Status, &o.ExpectedDelivery,
		&o.ReceivedAt, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}
