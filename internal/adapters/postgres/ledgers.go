package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"bloodlink/internal/domain"
)

func (db *DB) GetLedger(ctx context.Context, hospitalID string) (domain.TrustLedger, bool, error) {
	var doc []byte
	err := db.Pool.QueryRow(ctx, `SELECT doc FROM trust_ledgers WHERE hospital_id = $1`, hospitalID).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.TrustLedger{}, false, nil
	}
	if err != nil {
		return domain.TrustLedger{}, false, err
	}
	var l domain.TrustLedger
	if err := json.Unmarshal(doc, &l); err != nil {
		return domain.TrustLedger{}, false, err
	}
	return l, true, nil
}

func (db *DB) SaveLedger(ctx context.Context, l domain.TrustLedger) error {
	doc, err := json.Marshal(l)
	if err != nil {
		return err
	}
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO trust_ledgers (hospital_id, overall, updated_at, doc)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (hospital_id) DO UPDATE SET overall = EXCLUDED.overall, updated_at = EXCLUDED.updated_at, doc = EXCLUDED.doc
	`, l.HospitalID, l.Scores.Overall, l.UpdatedAt, doc)
	return err
}
