package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zoobzio/clockz"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"bloodlink/internal/adapters/audit"
	httpadapter "bloodlink/internal/adapters/http"
	archive "bloodlink/internal/adapters/leveldb"
	"bloodlink/internal/adapters/memory"
	natsaudit "bloodlink/internal/adapters/nats"
	pg "bloodlink/internal/adapters/postgres"
	redisnotify "bloodlink/internal/adapters/redis"
	"bloodlink/internal/config"
	"bloodlink/internal/ports"
	"bloodlink/internal/services/lifecycle"
	"bloodlink/internal/services/matching"
	"bloodlink/internal/services/trust"
	"bloodlink/internal/workers/escalation"
	"bloodlink/internal/workers/notifier"
)

// stores groups the storage ports; both the Postgres and the in-memory
// adapter implement all of them.
type stores struct {
	requests  ports.RequestRepository
	transfers ports.TransferRepository
	ledgers   ports.LedgerRepository
	inventory ports.InventoryStore
	hospitals ports.HospitalDirectory
	locator   ports.Locator
	sinks     audit.Fanout
	history   ports.AuditHistory
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("warning: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var closers []func()
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	st, err := openStores(ctx, cfg, &closers)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	st.sinks = append(st.sinks, audit.Log{})
	if cfg.AuditArchivePath != "" {
		arc, err := archive.Open(cfg.AuditArchivePath)
		if err != nil {
			log.Fatalf("audit archive: %v", err)
		}
		closers = append(closers, func() { _ = arc.Close() })
		st.sinks = append(st.sinks, arc)
		if st.history == nil {
			st.history = arc
		}
	}
	if cfg.NatsURL != "" {
		sink, err := natsaudit.Connect(natsaudit.Config{URL: cfg.NatsURL})
		if err != nil {
			log.Fatalf("audit stream: %v", err)
		}
		closers = append(closers, func() { _ = sink.Close() })
		st.sinks = append(st.sinks, sink)
	}

	clock := clockz.RealClock
	var (
		transport ports.Notifier = notifier.LogTransport{}
		inbox     ports.Inbox
	)
	if cfg.RedisURL != "" {
		rdb, err := redisnotify.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("notifications: %v", err)
		}
		closers = append(closers, func() { _ = rdb.Close() })
		rn := redisnotify.New(rdb, clock)
		transport, inbox = rn, rn
	}
	dispatcher := notifier.New(transport, cfg.NotifyWorkers, cfg.NotifyQueue, cfg.NotifyTimeout)

	trustSvc := trust.New(st.ledgers, clock)
	requests := lifecycle.New(lifecycle.Deps{
		Requests:    st.requests,
		Transfers:   st.transfers,
		Inventory:   st.inventory,
		Hospitals:   st.hospitals,
		Matcher:     matching.New(st.hospitals, st.locator, st.inventory, trustSvc),
		Trust:       trustSvc,
		Notifier:    dispatcher,
		Audit:       st.sinks,
		Clock:       clock,
		AuthorityID: cfg.AuthorityID,
	})
	scheduler := escalation.New(st.requests, requests, clock, cfg.EscalationInterval)

	api := httpadapter.New(httpadapter.Deps{
		Requests:  requests,
		Transfers: requests,
		Trust:     trustSvc,
		History:   st.history,
		Inbox:     inbox,
	})
	server := &http.Server{Handler: api.Routes(), ReadHeaderTimeout: 10 * time.Second}
	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	ln = netutil.LimitListener(ln, cfg.MaxConns)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dispatcher.Run(gctx)
		return nil
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case f := <-dispatcher.Failures():
				if f.Job.Tier.Authority {
					log.Printf("warning: authority alert for request %s was not delivered: %v", f.Job.Summary.RequestID, f.Err)
				}
			}
		}
	})
	g.Go(func() error {
		scheduler.Run(gctx)
		return nil
	})
	g.Go(func() error {
		log.Printf("listening on %s (%s)", cfg.ListenAddr, cfg.Env)
		if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Printf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		log.Printf("exit: %v", err)
		os.Exit(1)
	}
}

func openStores(ctx context.Context, cfg config.Config, closers *[]func()) (stores, error) {
	if cfg.DatabaseURL != "" {
		db, err := pg.Connect(ctx, cfg.DatabaseURL, pg.PoolConfig{
			MaxConns:          int32(cfg.DBMaxConns),
			MinConns:          int32(cfg.DBMinConns),
			MaxConnLifetime:   cfg.DBMaxConnLifetime,
			HealthCheckPeriod: cfg.DBHealthCheck,
		})
		if err != nil {
			return stores{}, fmt.Errorf("db connect: %w", err)
		}
		*closers = append(*closers, db.Close)
		if err := db.Migrate(ctx); err != nil {
			return stores{}, err
		}
		return stores{
			requests:  db,
			transfers: db,
			ledgers:   db,
			inventory: db,
			hospitals: db,
			locator:   db,
			sinks:     audit.Fanout{db},
			history:   db,
		}, nil
	}
	mem := memory.New()
	if cfg.SeedFile != "" {
		if err := mem.LoadSeed(cfg.SeedFile); err != nil {
			return stores{}, err
		}
		log.Printf("seeded hospitals from %s", cfg.SeedFile)
	}
	return stores{
		requests:  mem,
		transfers: mem,
		ledgers:   mem,
		inventory: mem,
		hospitals: mem,
		locator:   mem,
	}, nil
}
