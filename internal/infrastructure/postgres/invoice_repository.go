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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, invoice_number, customer_name, payment_method, status, total_amount, created_by, paid_at, created_at, updated_at`

// InvoiceRepo implementación sobre PostgreSQL (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste cabecera y líneas.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.InvoiceNumber, invoice.CustomerName, invoice.PaymentMethod,
		invoice.Status, invoice.TotalAmount, invoice.CreatedBy, invoice.PaidAt,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	// position preserva el orden de las líneas del documento: el pago las
	// aplica secuencialmente y el primer faltante se reporta en ese orden.
	for i, item := range invoice.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO invoice_items (id, invoice_id, product_id, quantity, selling_price, subtotal, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, invoice.ID, item.ProductID, item.Quantity, item.SellingPrice, item.Subtotal, i,
		)
		if err != nil {
			return fmt.Errorf("insert invoice item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene cabecera y líneas.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	return r.getOne(ctx, query, id, "get invoice")
}

// GetForUpdate obtiene la factura bloqueando la cabecera (SELECT FOR UPDATE).
func (r *InvoiceRepo) GetForUpdate(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id, "get invoice for update")
}

func (r *InvoiceRepo) getOne(ctx context.Context, query, id, op string) (*entity.Invoice, error) {
	invoice, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	items, err := r.loadItems(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	return invoice, nil
}

func (r *InvoiceRepo) loadItems(ctx context.Context, invoiceID string) ([]entity.InvoiceItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, invoice_id, product_id, quantity, selling_price, subtotal
		FROM invoice_items WHERE invoice_id = $1 ORDER BY position`,
		invoiceID,
	)
	if err != nil {
		return nil, fmt.Errorf("load invoice items: %w", err)
	}
	defer rows.Close()

	var items []entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.ProductID, &it.Quantity, &it.SellingPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// UpdateStatus cambia el estado y estampa paid_at cuando aplica.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, id, status string, paidAt *time.Time) error {
	_, err := r.q.Exec(ctx, `
		UPDATE invoices
		SET status = $2, paid_at = COALESCE($3, paid_at), updated_at = now()
		WHERE id = $1`,
		id, status, paidAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	return nil
}

// List lista facturas (con líneas) según filtros.
func (r *InvoiceRepo) List(ctx context.Context, filter repository.InvoiceFilter) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE 1=1`
	args := []any{}
	idx := 1
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filter.Status)
		idx++
	}
	if filter.CustomerName != "" {
		query += fmt.Sprintf(" AND customer_name ILIKE $%d", idx)
		args = append(args, "%"+filter.CustomerName+"%")
		idx++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, invoice := range list {
		items, err := r.loadItems(ctx, invoice.ID)
		if err != nil {
			return nil, err
		}
		invoice.Items = items
	}
	return list, nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var i entity.Invoice
	if err := row.Scan(
		&i.ID, &i.InvoiceNumber, &i.CustomerName, &i.PaymentMethod, &i.Status,
		&i.TotalAmount, &i.CreatedBy, &i.PaidAt, &i.CreatedAt, &i.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &i, nil
}
