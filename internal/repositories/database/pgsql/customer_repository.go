package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradekeep/tradekeep_backend/internal/apperrors"
	"github.com/tradekeep/tradekeep_backend/internal/core/domain"
	portsrepo "github.com/tradekeep/tradekeep_backend/internal/core/ports/repositories"
)

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerColumns = `customer_id, business_id, lead_id, name, phone, email, address, location, gst_number, created_at, updated_at`

func scanCustomer(row pgx.Row) (domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.CustomerID,
		&c.BusinessID,
		&c.LeadID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.Address,
		&c.Location,
		&c.GSTNumber,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		customer.CustomerID,
		customer.BusinessID,
		customer.LeadID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.Location,
		customer.GSTNumber,
		customer.CreatedAt,
		customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: customer for lead %s already exists", apperrors.ErrDuplicate, customer.LeadID)
		}
		return fmt.Errorf("failed to save customer %s: %w", customer.CustomerID, err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, businessID, customerID string) (*domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE business_id = $1 AND customer_id = $2;
	`
	c, err := scanCustomer(r.Pool.QueryRow(ctx, query, businessID, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
		}
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	return &c, nil
}

func (r *PgxCustomerRepository) FindCustomerByLeadID(ctx context.Context, businessID, leadID string) (*domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE business_id = $1 AND lead_id = $2;
	`
	c, err := scanCustomer(r.Pool.QueryRow(ctx, query, businessID, leadID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no customer for lead %s", apperrors.ErrNotFound, leadID)
		}
		return nil, fmt.Errorf("failed to find customer by lead %s: %w", leadID, err)
	}
	return &c, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, businessID string, limit, offset int) ([]domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE business_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}

func (r *PgxCustomerRepository) CountCustomers(ctx context.Context, businessID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers WHERE business_id = $1;`, businessID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE customers
		SET name = $3, phone = $4, email = $5, address = $6, location = $7, gst_number = $8, updated_at = $9
		WHERE business_id = $1 AND customer_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		customer.BusinessID,
		customer.CustomerID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.Location,
		customer.GSTNumber,
		customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", customer.CustomerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customer.CustomerID)
	}
	return nil
}

func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, businessID, customerID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM customers WHERE business_id = $1 AND customer_id = $2;`, businessID, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", customerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
	}
	return nil
}
