package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"dronefleet-service/internal/domain"
)

// fullname is derived at query time, never stored.
const operatorColumns = `operatorid, firstname, lastname,
       firstname || ' ' || lastname AS fullname,
       certificationid, contactnumber`

// OperatorRepo represents the operator repository.
type OperatorRepo struct{ db *pgxpool.Pool }

// NewOperatorRepo creates a new OperatorRepo.
func NewOperatorRepo(db *pgxpool.Pool) *OperatorRepo { return &OperatorRepo{db: db} }

func scanOperator(row interface{ Scan(...any) error }) (domain.Operator, error) {
	var o domain.Operator
	err := row.Scan(&o.ID, &o.FirstName, &o.LastName, &o.FullName, &o.CertificationID, &o.ContactNumber)
	return o, err
}

// List returns all operators ordered by id.
func (r *OperatorRepo) List(ctx context.Context) ([]domain.Operator, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+operatorColumns+` FROM operator ORDER BY operatorid`)
	if err != nil {
		return nil, fmt.Errorf("list operators: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Operator, 0)
	for rows.Next() {
		o, err := scanOperator(rows)
		if err != nil {
			return nil, fmt.Errorf("scan operator: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Create inserts a new operator and returns the stored row.
func (r *OperatorRepo) Create(ctx context.Context, o *domain.Operator) (*domain.Operator, error) {
	created, err := scanOperator(r.db.QueryRow(ctx, `
        INSERT INTO operator (firstname, lastname, certificationid, contactnumber)
        VALUES ($1, $2, $3, $4)
        RETURNING `+operatorColumns,
		o.FirstName, o.LastName, o.CertificationID, o.ContactNumber))
	if err != nil {
		return nil, fmt.Errorf("create operator: %w", err)
	}
	return &created, nil
}

// UpdatePartial applies a partial update to an operator.
// Returns nil if no operator has the given id. Callers must reject empty
// updates before reaching here.
func (r *OperatorRepo) UpdatePartial(ctx context.Context, u domain.PartialOperatorUpdate) (*domain.Operator, error) {
	updated, err := scanOperator(r.db.QueryRow(ctx, `
        UPDATE operator
        SET
            firstname       = COALESCE($2, firstname),
            lastname        = COALESCE($3, lastname),
            certificationid = COALESCE($4, certificationid),
            contactnumber   = COALESCE($5, contactnumber)
        WHERE operatorid = $1
        RETURNING `+operatorColumns,
		u.ID, u.FirstName, u.LastName, u.CertificationID, u.ContactNumber))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update operator %d: %w", u.ID, err)
	}
	return &updated, nil
}

// Delete removes an operator and returns the deleted row, or nil if absent.
// Deliveries referencing the operator are left untouched; dangling
// operator ids on deliveries are expected.
func (r *OperatorRepo) Delete(ctx context.Context, id int64) (*domain.Operator, error) {
	deleted, err := scanOperator(r.db.QueryRow(ctx, `
        DELETE FROM operator WHERE operatorid = $1
        RETURNING `+operatorColumns, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete operator %d: %w", id, err)
	}
	return &deleted, nil
}
