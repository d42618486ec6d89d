package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"dronefleet-service/internal/domain"
)

const droneColumns = `droneid, model, maxloadkg, batterycapacity, status, battery`

// DroneRepo represents the drone fleet repository.
type DroneRepo struct{ db *pgxpool.Pool }

// NewDroneRepo creates a new DroneRepo.
func NewDroneRepo(db *pgxpool.Pool) *DroneRepo { return &DroneRepo{db: db} }

// List returns all drones ordered by id ascending.
func (r *DroneRepo) List(ctx context.Context) ([]domain.Drone, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+droneColumns+` FROM drone ORDER BY droneid ASC`)
	if err != nil {
		return nil, fmt.Errorf("list drones: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Drone, 0)
	for rows.Next() {
		var d domain.Drone
		if err := rows.Scan(&d.ID, &d.Model, &d.MaxLoadKg, &d.BatteryCapacity, &d.Status, &d.Battery); err != nil {
			return nil, fmt.Errorf("scan drone: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Create inserts a new drone and returns the stored row.
func (r *DroneRepo) Create(ctx context.Context, d *domain.Drone) (*domain.Drone, error) {
	var created domain.Drone
	err := r.db.QueryRow(ctx, `
        INSERT INTO drone (model, maxloadkg, batterycapacity, status, battery)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING `+droneColumns,
		d.Model, d.MaxLoadKg, d.BatteryCapacity, d.Status, d.Battery,
	).Scan(&created.ID, &created.Model, &created.MaxLoadKg, &created.BatteryCapacity, &created.Status, &created.Battery)
	if err != nil {
		return nil, fmt.Errorf("create drone: %w", err)
	}
	return &created, nil
}

// UpdateStatusBattery updates exactly the status and battery fields.
// Returns nil if no drone has the given id.
func (r *DroneRepo) UpdateStatusBattery(ctx context.Context, id int64, status domain.DroneStatus, battery float64) (*domain.Drone, error) {
	var d domain.Drone
	err := r.db.QueryRow(ctx, `
        UPDATE drone
        SET status = $2, battery = $3
        WHERE droneid = $1
        RETURNING `+droneColumns,
		id, status, battery,
	).Scan(&d.ID, &d.Model, &d.MaxLoadKg, &d.BatteryCapacity, &d.Status, &d.Battery)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update drone %d: %w", id, err)
	}
	return &d, nil
}

// Delete removes a drone and reports whether a row existed.
func (r *DroneRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM drone WHERE droneid = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete drone %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
