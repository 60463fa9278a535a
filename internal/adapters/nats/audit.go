// Package natsaudit streams audit events to NATS subjects of the form
// <prefix>.<action>, for example bloodlink.audit.escalated.
package natsaudit

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"bloodlink/internal/ports"
)

const DefaultSubjectPrefix = "bloodlink.audit"

type Config struct {
	URL            string
	Name           string
	SubjectPrefix  string
	ReconnectWait  time.Duration
	MaxReconnects  int
	ConnectTimeout time.Duration
}

type Sink struct {
	conn   *nats.Conn
	prefix string
}

func Connect(cfg Config) (*Sink, error) {
	if cfg.Name == "" {
		cfg.Name = "bloodlink"
	}
	if cfg.ReconnectWait <= 0 {
		cfg.ReconnectWait = 2 * time.Second
	}
	if cfg.MaxReconnects == 0 {
		cfg.MaxReconnects = -1
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 5 * time.Second
	}
	opts := []nats.Option{
		nats.Name(cfg.Name),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.Timeout(cfg.ConnectTimeout),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Printf("nats: disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("nats: reconnected to %s", nc.ConnectedUrl())
		}),
	}
	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return New(conn, cfg.SubjectPrefix), nil
}

func New(conn *nats.Conn, prefix string) *Sink {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &Sink{conn: conn, prefix: prefix}
}

// Subject is where events with the given action are published.
func (s *Sink) Subject(action string) string {
	return s.prefix + "." + strings.ToLower(action)
}

// Emit publishes without waiting for acknowledgement; the client buffers
// while reconnecting.
func (s *Sink) Emit(ctx context.Context, ev ports.AuditEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := nats.NewMsg(s.Subject(ev.Action))
	msg.Header.Set("Request-Id", ev.RequestID)
	msg.Header.Set(nats.MsgIdHdr, ev.ID)
	msg.Data = data
	return s.conn.PublishMsg(msg)
}

// Close flushes pending events and closes the connection.
func (s *Sink) Close() error {
	return s.conn.Drain()
}
