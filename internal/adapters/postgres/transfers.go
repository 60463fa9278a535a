package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"bloodlink/internal/domain"
)

func (db *DB) CreateTransfer(ctx context.Context, t *domain.BloodTransfer) error {
	t.Version = 1
	doc, err := json.Marshal(t)
	if err != nil {
		return err
	}
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO transfers (id, request_id, status, version, doc) VALUES ($1, $2, $3, $4, $5)
	`, t.ID, t.RequestID, t.Status, t.Version, doc)
	if uniqueViolation(err) {
		return domain.Validationf("transfer %s already exists", t.ID)
	}
	return err
}

func (db *DB) GetTransfer(ctx context.Context, id string) (*domain.BloodTransfer, error) {
	var doc []byte
	err := db.Pool.QueryRow(ctx, `SELECT doc FROM transfers WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFoundf("transfer %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	var t domain.BloodTransfer
	if err := json.Unmarshal(doc, &t); err != nil {
		return nil, fmt.Errorf("decode transfer: %w", err)
	}
	return &t, nil
}

func (db *DB) UpdateTransfer(ctx context.Context, t *domain.BloodTransfer) error {
	next := *t
	next.Version++
	doc, err := json.Marshal(&next)
	if err != nil {
		return err
	}
	tag, err := db.Pool.Exec(ctx, `
		UPDATE transfers SET status = $3, version = $4, doc = $5 WHERE id = $1 AND version = $2
	`, t.ID, t.Version, next.Status, next.Version, doc)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM transfers WHERE id = $1)`, t.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.NotFoundf("transfer %s not found", t.ID)
		}
		return domain.ConcurrentModificationf("transfer %s was modified", t.ID)
	}
	t.Version = next.Version
	return nil
}
