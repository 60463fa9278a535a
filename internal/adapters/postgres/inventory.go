package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"bloodlink/internal/domain"
	"bloodlink/internal/ports"
)

// Inventory moves are single conditional UPDATEs, so concurrent reservations
// can never drive a pool negative.

func checkUnits(units int) error {
	if units <= 0 {
		return domain.Validationf("units must be positive, got %d", units)
	}
	return nil
}

func (db *DB) Reserve(ctx context.Context, hospitalID string, group domain.BloodGroup, units int) error {
	if err := checkUnits(units); err != nil {
		return err
	}
	tag, err := db.Pool.Exec(ctx, `
		UPDATE inventory SET available = available - $3, reserved = reserved + $3
		WHERE hospital_id = $1 AND blood_group = $2 AND available >= $3
	`, hospitalID, group, units)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		available, err := db.Available(ctx, hospitalID, group)
		if err != nil {
			return err
		}
		return domain.InsufficientInventory(hospitalID, group, available, units)
	}
	return nil
}

func (db *DB) Release(ctx context.Context, hospitalID string, group domain.BloodGroup, units int) error {
	if err := checkUnits(units); err != nil {
		return err
	}
	tag, err := db.Pool.Exec(ctx, `
		UPDATE inventory SET reserved = reserved - $3, available = available + $3
		WHERE hospital_id = $1 AND blood_group = $2 AND reserved >= $3
	`, hospitalID, group, units)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.Validationf("release of %d units exceeds reservation at %s/%s", units, hospitalID, group)
	}
	return nil
}

func (db *DB) Consume(ctx context.Context, hospitalID string, group domain.BloodGroup, units int) error {
	if err := checkUnits(units); err != nil {
		return err
	}
	tag, err := db.Pool.Exec(ctx, `
		UPDATE inventory SET reserved = reserved - $3, consumed = consumed + $3
		WHERE hospital_id = $1 AND blood_group = $2 AND reserved >= $3
	`, hospitalID, group, units)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.Validationf("consume of %d units exceeds reservation at %s/%s", units, hospitalID, group)
	}
	return nil
}

func (db *DB) Receive(ctx context.Context, hospitalID string, group domain.BloodGroup, units int) error {
	if units < 0 {
		return domain.Validationf("units must not be negative, got %d", units)
	}
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO inventory (hospital_id, blood_group, available) VALUES ($1, $2, $3)
		ON CONFLICT (hospital_id, blood_group) DO UPDATE SET available = inventory.available + EXCLUDED.available
	`, hospitalID, group, units)
	return err
}

func (db *DB) Available(ctx context.Context, hospitalID string, group domain.BloodGroup) (int, error) {
	lvl, err := db.Level(ctx, hospitalID, group)
	return lvl.Available, err
}

func (db *DB) Level(ctx context.Context, hospitalID string, group domain.BloodGroup) (ports.InventoryLevel, error) {
	lvl := ports.InventoryLevel{HospitalID: hospitalID, BloodGroup: group}
	err := db.Pool.QueryRow(ctx, `
		SELECT available, reserved, consumed FROM inventory WHERE hospital_id = $1 AND blood_group = $2
	`, hospitalID, group).Scan(&lvl.Available, &lvl.Reserved, &lvl.Consumed)
	if errors.Is(err, pgx.ErrNoRows) {
		return lvl, nil
	}
	return lvl, err
}

// SetStock overwrites the available units of one pool.
func (db *DB) SetStock(ctx context.Context, hospitalID string, group domain.BloodGroup, available int) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO inventory (hospital_id, blood_group, available) VALUES ($1, $2, $3)
		ON CONFLICT (hospital_id, blood_group) DO UPDATE SET available = EXCLUDED.available
	`, hospitalID, group, available)
	return err
}
