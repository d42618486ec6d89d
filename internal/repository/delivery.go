package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"dronefleet-service/internal/apperr"
	"dronefleet-service/internal/domain"
)

const deliveryColumns = `deliveryid, droneid, operatorid, starttime, endtime, deliverystatus`

// DeliveryRepo represents the delivery repository.
type DeliveryRepo struct{ db *pgxpool.Pool }

// NewDeliveryRepo creates a new DeliveryRepo.
func NewDeliveryRepo(db *pgxpool.Pool) *DeliveryRepo { return &DeliveryRepo{db: db} }

func scanDelivery(row interface{ Scan(...any) error }) (domain.Delivery, error) {
	var d domain.Delivery
	err := row.Scan(&d.ID, &d.DroneID, &d.OperatorID, &d.StartTime, &d.EndTime, &d.Status)
	return d, err
}

// List returns deliveries ordered by id descending. A non-nil status
// restricts the result to that status.
func (r *DeliveryRepo) List(ctx context.Context, status *domain.DeliveryStatus) ([]domain.Delivery, error) {
	q := `SELECT ` + deliveryColumns + ` FROM delivery`
	args := make([]any, 0, 1)
	if status != nil {
		q += ` WHERE deliverystatus = $1`
		args = append(args, *status)
	}
	q += ` ORDER BY deliveryid DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Delivery, 0)
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Create inserts a delivery and returns the stored row. EndTime may be nil.
func (r *DeliveryRepo) Create(ctx context.Context, d *domain.Delivery) (*domain.Delivery, error) {
	created, err := scanDelivery(r.db.QueryRow(ctx, `
        INSERT INTO delivery (droneid, operatorid, starttime, endtime, deliverystatus)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING `+deliveryColumns,
		d.DroneID, d.OperatorID, d.StartTime, d.EndTime, d.Status))
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, apperr.ErrConflict
		}
		return nil, fmt.Errorf("create delivery: %w", err)
	}
	return &created, nil
}

// UpdateStatus updates exactly the status field.
// Returns nil if no delivery has the given id.
func (r *DeliveryRepo) UpdateStatus(ctx context.Context, id int64, status domain.DeliveryStatus) (*domain.Delivery, error) {
	updated, err := scanDelivery(r.db.QueryRow(ctx, `
        UPDATE delivery SET deliverystatus = $2 WHERE deliveryid = $1
        RETURNING `+deliveryColumns, id, status))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update delivery %d: %w", id, err)
	}
	return &updated, nil
}

// Delete removes join-table rows for the delivery and then the delivery
// itself, reporting whether the delivery row existed. The join rows are
// cleared even when the delivery never existed. The two statements are
// not wrapped in a transaction; a crash in between leaves the delivery
// without join rows, which is harmless.
func (r *DeliveryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, err := r.db.Exec(ctx, `DELETE FROM delivery_package WHERE deliveryid = $1`, id); err != nil {
		return false, fmt.Errorf("delete delivery %d packages: %w", id, err)
	}
	ct, err := r.db.Exec(ctx, `DELETE FROM delivery WHERE deliveryid = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete delivery %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
