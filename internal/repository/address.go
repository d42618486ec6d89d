package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"dronefleet-service/internal/domain"
)

// AddressRepo represents the address lookup repository.
// The HTTP surface only lists addresses; Get exists for row access.
type AddressRepo struct{ db *pgxpool.Pool }

// NewAddressRepo creates a new AddressRepo.
func NewAddressRepo(db *pgxpool.Pool) *AddressRepo { return &AddressRepo{db: db} }

// List returns all addresses ordered by id.
func (r *AddressRepo) List(ctx context.Context) ([]domain.Address, error) {
	rows, err := r.db.Query(ctx,
		`SELECT addressid, street, city, zip FROM address ORDER BY addressid`)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Address, 0)
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.Street, &a.City, &a.Zip); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Get returns an address by its id, or nil if absent.
func (r *AddressRepo) Get(ctx context.Context, id int64) (*domain.Address, error) {
	var a domain.Address
	err := r.db.QueryRow(ctx,
		`SELECT addressid, street, city, zip FROM address WHERE addressid = $1`, id,
	).Scan(&a.ID, &a.Street, &a.City, &a.Zip)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get address %d: %w", id, err)
	}
	return &a, nil
}
