package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mmarinn/dayder/internal/auth"
	"github.com/mmarinn/dayder/internal/config"
	"github.com/mmarinn/dayder/internal/server"
	"github.com/mmarinn/dayder/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := store.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := store.CreateSchema(ctx, db); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	users := store.NewUsers(db)
	announcements := store.NewAnnouncements(db)

	bootstrapAdmin(ctx, users, cfg)

	tokens := auth.NewTokenService([]byte(cfg.SigningKey), cfg.TokenTTL, cfg.Issuer, nil)
	authenticator := auth.NewAuthenticator(users, tokens)

	srv := server.New(authenticator, users, announcements)

	go func() {
		if err := srv.Listen(cfg.HTTPAddr); err != nil {
			log.Fatalf("http server: %v", err)
		}
	}()

	waitExitSignal()

	if err := srv.Shutdown(); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// bootstrapAdmin makes sure the configured admin account exists. Failure is
// logged and swallowed: a broken bootstrap must not keep the API down.
func bootstrapAdmin(ctx context.Context, users *store.Users, cfg *config.Config) {
	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Printf("admin bootstrap skipped: %v", err)
		return
	}

	created, err := store.EnsureDefaultAdmin(ctx, users, cfg.AdminUsername, hash)
	if err != nil {
		log.Printf("admin bootstrap failed: %v", err)
		return
	}
	if created {
		log.Printf("admin bootstrap created user %q", cfg.AdminUsername)
	}
}

func waitExitSignal() os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	return <-ch
}
