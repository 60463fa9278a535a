// Package archive keeps an append-only local copy of audit events in
// LevelDB, keyed so that one request's events iterate in time order.
package archive

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"bloodlink/internal/ports"
)

type Archive struct {
	db *leveldb.DB
}

func Open(path string) (*Archive, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open audit archive %s: %w", path, err)
	}
	return &Archive{db: db}, nil
}

func (a *Archive) Close() error { return a.db.Close() }

func requestPrefix(requestID string) []byte {
	return []byte("audit/" + requestID + "/")
}

// key sorts by timestamp; the event id breaks ties between events of the
// same instant.
func key(ev ports.AuditEvent) []byte {
	return []byte(fmt.Sprintf("audit/%s/%020d/%s", ev.RequestID, ev.At.UnixNano(), ev.ID))
}

// Emit stores the event synchronously.
func (a *Archive) Emit(_ context.Context, ev ports.AuditEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return a.db.Put(key(ev), data, &opt.WriteOptions{Sync: true})
}

// History returns every archived event of a request, oldest first.
func (a *Archive) History(_ context.Context, requestID string) ([]ports.AuditEvent, error) {
	iter := a.db.NewIterator(util.BytesPrefix(requestPrefix(requestID)), nil)
	defer iter.Release()
	out := []ports.AuditEvent{}
	for iter.Next() {
		var ev ports.AuditEvent
		if err := json.Unmarshal(iter.Value(), &ev); err != nil {
			return nil, fmt.Errorf("decode %s: %w", iter.Key(), err)
		}
		out = append(out, ev)
	}
	return out, iter.Error()
}
