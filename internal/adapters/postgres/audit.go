package postgres

import (
	"context"

	"bloodlink/internal/ports"
)

// Emit appends one audit event; duplicates by id are ignored.
func (db *DB) Emit(ctx context.Context, ev ports.AuditEvent) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO audit_events (id, request_id, at, action, actor, old_status, new_status, level, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`, ev.ID, ev.RequestID, ev.At, ev.Action, ev.Actor, ev.OldStatus, ev.NewStatus, ev.Level, ev.Note)
	return err
}

func (db *DB) History(ctx context.Context, requestID string) ([]ports.AuditEvent, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, request_id, at, action, actor, old_status, new_status, level, note
		FROM audit_events WHERE request_id = $1 ORDER BY at, id
	`, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []ports.AuditEvent{}
	for rows.Next() {
		var ev ports.AuditEvent
		if err := rows.Scan(&ev.ID, &ev.RequestID, &ev.At, &ev.Action, &ev.Actor, &ev.OldStatus, &ev.NewStatus, &ev.Level, &ev.Note); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
