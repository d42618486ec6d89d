package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"dronefleet-service/internal/apperr"
	"dronefleet-service/internal/domain"
)

// Every read path goes through this join so packages come back in one
// canonical shape, addresses included.
const selectPackage = `
    SELECT p.packageid, p.prioritylevel,
           p.length, p.width, p.height, p.weightkg,
           p.senderaddressid, p.receiveraddressid,
           sa.street, sa.city, sa.zip,
           ra.street, ra.city, ra.zip
    FROM package p
    LEFT JOIN address sa ON p.senderaddressid = sa.addressid
    LEFT JOIN address ra ON p.receiveraddressid = ra.addressid`

// PackageRepo represents the package repository.
type PackageRepo struct{ db *pgxpool.Pool }

// NewPackageRepo creates a new PackageRepo.
func NewPackageRepo(db *pgxpool.Pool) *PackageRepo { return &PackageRepo{db: db} }

func scanPackage(row interface{ Scan(...any) error }) (domain.Package, error) {
	var (
		p                                domain.Package
		senderStreet, senderCity, sndZip *string
		recvStreet, recvCity, recvZip    *string
	)
	err := row.Scan(
		&p.ID, &p.Priority,
		&p.Dims.Length, &p.Dims.Width, &p.Dims.Height, &p.WeightKg,
		&p.SenderAddressID, &p.ReceiverAddressID,
		&senderStreet, &senderCity, &sndZip,
		&recvStreet, &recvCity, &recvZip,
	)
	if err != nil {
		return domain.Package{}, err
	}
	if senderStreet != nil {
		p.Sender = &domain.Address{ID: p.SenderAddressID, Street: *senderStreet, City: deref(senderCity), Zip: deref(sndZip)}
	}
	if recvStreet != nil {
		p.Receiver = &domain.Address{ID: p.ReceiverAddressID, Street: *recvStreet, City: deref(recvCity), Zip: deref(recvZip)}
	}
	return p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// List returns all packages ordered by id with sender/receiver addresses joined.
func (r *PackageRepo) List(ctx context.Context) ([]domain.Package, error) {
	rows, err := r.db.Query(ctx, selectPackage+` ORDER BY p.packageid`)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Package, 0)
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Get returns a package by its numeric id, or nil if absent.
func (r *PackageRepo) Get(ctx context.Context, id int64) (*domain.Package, error) {
	p, err := scanPackage(r.db.QueryRow(ctx, selectPackage+` WHERE p.packageid = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get package %d: %w", id, err)
	}
	return &p, nil
}

// Create inserts a package and reads it back through the canonical join.
func (r *PackageRepo) Create(ctx context.Context, p *domain.Package) (*domain.Package, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO package (prioritylevel, length, width, height, weightkg, senderaddressid, receiveraddressid)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING packageid`,
		p.Priority, p.Dims.Length, p.Dims.Width, p.Dims.Height, p.WeightKg,
		p.SenderAddressID, p.ReceiverAddressID,
	).Scan(&id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, apperr.ErrConflict
		}
		return nil, fmt.Errorf("create package: %w", err)
	}
	return r.Get(ctx, id)
}

// UpdatePartial applies a coalescing update and reads the row back.
// Returns nil if no package has the given id.
func (r *PackageRepo) UpdatePartial(ctx context.Context, u domain.PartialPackageUpdate) (*domain.Package, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE package
        SET prioritylevel     = COALESCE($2, prioritylevel),
            length            = COALESCE($3, length),
            width             = COALESCE($4, width),
            height            = COALESCE($5, height),
            weightkg          = COALESCE($6, weightkg),
            senderaddressid   = COALESCE($7, senderaddressid),
            receiveraddressid = COALESCE($8, receiveraddressid)
        WHERE packageid = $1`,
		u.ID, u.Priority, u.Length, u.Width, u.Height, u.WeightKg,
		u.SenderAddressID, u.ReceiverAddressID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, apperr.ErrConflict
		}
		return nil, fmt.Errorf("update package %d: %w", u.ID, err)
	}
	if ct.RowsAffected() == 0 {
		return nil, nil
	}
	return r.Get(ctx, u.ID)
}

// Delete removes a package and returns the row as it was, or nil if absent.
// The joined read and the delete are two statements; the window between
// them is acceptable for this API.
func (r *PackageRepo) Delete(ctx context.Context, id int64) (*domain.Package, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM package WHERE packageid = $1`, id); err != nil {
		return nil, fmt.Errorf("delete package %d: %w", id, err)
	}
	return p, nil
}
