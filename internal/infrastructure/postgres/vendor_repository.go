package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

const vendorColumns = `id, name, contact_name, email, phone, address, status, created_at, updated_at`

// VendorRepo implementación sobre PostgreSQL.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador.
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

func (r *VendorRepo) Create(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		vendor.ID, vendor.Name, vendor.ContactName, vendor.Email, vendor.Phone,
		vendor.Address, vendor.Status, vendor.CreatedAt, vendor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

func (r *VendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1`
	v, err := scanVendor(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return v, nil
}

func (r *VendorRepo) Update(ctx context.Context, vendor *entity.Vendor) error {
	_, err := r.q.Exec(ctx, `
		UPDATE vendors
		SET name = $2, contact_name = $3, email = $4, phone = $5, address = $6, updated_at = $7
		WHERE id = $1`,
		vendor.ID, vendor.Name, vendor.ContactName, vendor.Email, vendor.Phone,
		vendor.Address, vendor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update vendor: %w", err)
	}
	return nil
}

func (r *VendorRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.q.Exec(ctx, `
		UPDATE vendors SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update vendor status: %w", err)
	}
	return nil
}

func (r *VendorRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE 1=1`
	args := []any{}
	idx := 1
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, status)
		idx++
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var list []*entity.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func scanVendor(row pgx.Row) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := row.Scan(
		&v.ID, &v.Name, &v.ContactName, &v.Email, &v.Phone, &v.Address,
		&v.Status, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &v, nil
}
