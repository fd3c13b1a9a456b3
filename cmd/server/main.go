package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rohits-web03/clubhouse/internal/api"
	"github.com/rohits-web03/clubhouse/internal/api/handlers"
	"github.com/rohits-web03/clubhouse/internal/config"
	"github.com/rohits-web03/clubhouse/internal/logging"
	"github.com/rohits-web03/clubhouse/internal/repositories"
	"github.com/rohits-web03/clubhouse/internal/services"
)

const sessionSweepInterval = time.Hour

// @title Clubhouse API
// @version 1.0
// @description Members-only message board with a code word membership gate.
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()
	log := logging.New(cfg.Environment)

	if err := run(cfg, log); err != nil {
		log.Error(context.Background(), "server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repositories.Open(cfg.DBDriver, cfg.DB_URL)
	if err != nil {
		return err
	}
	if err := repositories.Migrate(db); err != nil {
		return err
	}

	users := repositories.NewUserRepository(db)
	sessions := repositories.NewSessionRepository(db)
	messages := repositories.NewMessageRepository(db)

	if n, err := messages.Count(ctx); err == nil {
		log.Info(ctx, "database ready", "driver", cfg.DBDriver, "messages", n)
	}

	// a nil interface, not a nil *R2Store, keeps the archiver disabled
	var objects services.ObjectStore
	if cfg.R2.Enabled() {
		store, err := repositories.NewR2Store(cfg.R2)
		if err != nil {
			return err
		}
		objects = store
	} else {
		log.Warn(ctx, "R2 not configured, board export disabled")
	}

	var google handlers.GoogleAuthenticator
	if cfg.Google.Enabled() {
		google = services.NewGoogleOAuth(cfg.Google)
	} else {
		log.Warn(ctx, "Google OAuth not configured, Google sign-in disabled")
	}

	auth := services.NewAuthService(users, sessions, services.NewBcryptHasher(cfg.BcryptCost), cfg.SessionSecret, cfg.SessionTTL, log)
	board := services.NewBoard(messages, users, log)

	h := handlers.New(handlers.Deps{
		Auth:          auth,
		Gate:          services.NewMembershipGate(users, cfg.CodeWord, log),
		Board:         board,
		Archiver:      services.NewArchiver(board, objects, cfg.ArchiveURLTTL, log),
		Google:        google,
		FlashKey:      []byte(cfg.SessionSecret),
		SecureCookies: cfg.IsProduction(),
		Log:           log,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.SetupRouter(h, auth, cfg.CorsConfig, log),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info(gctx, "starting clubhouse server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not listen on port %s: %w", cfg.Port, err)
		}
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(sessionSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case now := <-ticker.C:
				n, err := sessions.DeleteExpired(gctx, now)
				if err != nil {
					log.Warn(gctx, "failed to sweep expired sessions", "error", err)
					continue
				}
				if n > 0 {
					log.Info(gctx, "swept expired sessions", "count", n)
				}
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info(shutdownCtx, "shutting down")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
