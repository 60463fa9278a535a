package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"bloodlink/internal/domain"
)

// Requests are stored as a JSONB document next to the columns used for
// filtering. The version column is authoritative for optimistic updates.

func (db *DB) CreateRequest(ctx context.Context, req *domain.EmergencyRequest) error {
	req.Version = 1
	doc, err := json.Marshal(req)
	if err != nil {
		return err
	}
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO requests (id, hospital_id, status, blood_group, severity, escalation_level, created_at, version, doc)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, req.ID, req.HospitalID, req.Status, req.BloodGroup, req.Severity, req.EscalationLevel, req.CreatedAt, req.Version, doc)
	if uniqueViolation(err) {
		return domain.Validationf("request %s already exists", req.ID)
	}
	return err
}

func (db *DB) GetRequest(ctx context.Context, id string) (*domain.EmergencyRequest, error) {
	var doc []byte
	err := db.Pool.QueryRow(ctx, `SELECT doc FROM requests WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFoundf("request %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return decodeRequest(doc)
}

func (db *DB) UpdateRequest(ctx context.Context, req *domain.EmergencyRequest) error {
	return db.inTx(ctx, func(tx pgx.Tx) error {
		var current int64
		err := tx.QueryRow(ctx, `SELECT version FROM requests WHERE id = $1 FOR UPDATE`, req.ID).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NotFoundf("request %s not found", req.ID)
		}
		if err != nil {
			return err
		}
		if current != req.Version {
			return domain.ConcurrentModificationf("request %s was modified (version %d, have %d)", req.ID, current, req.Version)
		}
		next := *req
		next.Version++
		doc, err := json.Marshal(&next)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
			UPDATE requests SET status = $2, escalation_level = $3, version = $4, doc = $5 WHERE id = $1
		`, req.ID, next.Status, next.EscalationLevel, next.Version, doc); err != nil {
			return err
		}
		req.Version = next.Version
		return nil
	})
}

func (db *DB) ListRequests(ctx context.Context, f domain.RequestFilter) ([]*domain.EmergencyRequest, error) {
	var (
		where []string
		args  []any
	)
	add := func(clause string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.BloodGroup != "" {
		add("blood_group = $%d", f.BloodGroup)
	}
	if f.Severity != "" {
		add("severity = $%d", f.Severity)
	}
	if f.HospitalID != "" {
		add("hospital_id = $%d", f.HospitalID)
	}
	if !f.CreatedFrom.IsZero() {
		add("created_at >= $%d", f.CreatedFrom)
	}
	if !f.CreatedTo.IsZero() {
		add("created_at < $%d", f.CreatedTo)
	}
	q := `SELECT doc FROM requests`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at, id"
	return db.queryRequests(ctx, q, args...)
}

func (db *DB) ListEscalatable(ctx context.Context, maxLevel int) ([]*domain.EmergencyRequest, error) {
	return db.queryRequests(ctx, `
		SELECT doc FROM requests
		WHERE status IN ($1, $2) AND escalation_level < $3
		ORDER BY created_at, id
	`, domain.StatusCreated, domain.StatusMedicalVerificationPending, maxLevel)
}

func (db *DB) queryRequests(ctx context.Context, q string, args ...any) ([]*domain.EmergencyRequest, error) {
	rows, err := db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []*domain.EmergencyRequest{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		r, err := decodeRequest(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func decodeRequest(doc []byte) (*domain.EmergencyRequest, error) {
	var r domain.EmergencyRequest
	if err := json.Unmarshal(doc, &r); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	return &r, nil
}
