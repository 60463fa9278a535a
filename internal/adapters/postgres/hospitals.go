package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"bloodlink/internal/domain"
)

// PutHospital registers or replaces a hospital.
func (db *DB) PutHospital(ctx context.Context, h domain.Hospital) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO hospitals (id, name, latitude, longitude, suspended) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude, suspended = EXCLUDED.suspended
	`, h.ID, h.Name, h.Location.Latitude, h.Location.Longitude, h.Suspended)
	return err
}

func (db *DB) GetHospital(ctx context.Context, id string) (domain.Hospital, error) {
	var h domain.Hospital
	err := db.Pool.QueryRow(ctx, `
		SELECT id, name, latitude, longitude, suspended FROM hospitals WHERE id = $1
	`, id).Scan(&h.ID, &h.Name, &h.Location.Latitude, &h.Location.Longitude, &h.Suspended)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Hospital{}, domain.NotFoundf("hospital %s not found", id)
	}
	return h, err
}

func (db *DB) ListHospitals(ctx context.Context) ([]domain.Hospital, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id, name, latitude, longitude, suspended FROM hospitals ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Hospital
	for rows.Next() {
		var h domain.Hospital
		if err := rows.Scan(&h.ID, &h.Name, &h.Location.Latitude, &h.Location.Longitude, &h.Suspended); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (db *DB) Locate(ctx context.Context, hospitalID string) (domain.Location, error) {
	h, err := db.GetHospital(ctx, hospitalID)
	if err != nil {
		return domain.Location{}, err
	}
	return h.Location, nil
}
