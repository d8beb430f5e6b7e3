// Command crickboost runs the CrickBoost site: the public marketing pages
// plus the session-guarded coaching dashboard.
//
// Configuration comes from CRICKBOOST_* environment variables; see
// [crickboost.ConfigFromEnv]. The only required variable is
// CRICKBOOST_SESSION_SECRET. With CRICKBOOST_REDIS_ADDR set, credentials
// live in Redis and logout revokes tokens server-side; without it the
// process keeps everything in memory.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/crickboost/crickboost"
	"github.com/crickboost/crickboost/logger"
	"github.com/crickboost/crickboost/password"
	"github.com/crickboost/crickboost/session"
	"github.com/crickboost/crickboost/token"
	"github.com/crickboost/crickboost/web"
)

func main() {
	log := logger.New("crickboost", slog.LevelInfo)

	if err := run(log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg := crickboost.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	hasher, err := password.New(cfg.Password.Params())
	if err != nil {
		return err
	}

	var (
		store    crickboost.CredentialStore
		denylist session.Denylist
	)
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return err
		}

		store, err = crickboost.NewRedisStore(client, hasher)
		if err != nil {
			return err
		}
		denylist = session.NewRedisDenylist(client)
		log.Info("using redis backend", "addr", cfg.Redis.Addr)
	} else {
		store, err = crickboost.NewMemoryStore(hasher)
		if err != nil {
			return err
		}
		log.Info("using in-memory backend")
	}

	engine, err := crickboost.New().WithStore(store).Build()
	if err != nil {
		return err
	}

	codec, err := token.NewCodec(cfg.Session.Secret)
	if err != nil {
		return err
	}
	sessions := session.NewManager(codec, session.Options{
		TTL:      cfg.Session.TTL,
		Secure:   cfg.Production(),
		Denylist: denylist,
	})

	site, err := web.NewServer(engine, sessions, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      site.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Server.Addr, "env", cfg.Server.Env)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
