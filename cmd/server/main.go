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

	"go.uber.org/zap"

	"github.com/Erzhan279/Durac-game-telegram/internal/bots"
	"github.com/Erzhan279/Durac-game-telegram/internal/config"
	"github.com/Erzhan279/Durac-game-telegram/internal/game"
	"github.com/Erzhan279/Durac-game-telegram/internal/logger"
	"github.com/Erzhan279/Durac-game-telegram/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	arena := game.NewArena(log, func(id string) game.Options {
		return game.Options{
			Bot:      bots.New(cfg.BotLevel, time.Now().UnixNano()),
			BotDelay: cfg.BotDelay,
		}
	})
	e := server.NewRouter(server.NewServer(arena, log), cfg.WebDist, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("listening",
			zap.String("addr", cfg.Addr),
			zap.String("webDist", cfg.WebDist),
			zap.Duration("botDelay", cfg.BotDelay),
			zap.String("botLevel", cfg.BotLevel),
		)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		arena.Close()
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	arena.Close()
	return e.Shutdown(shutdownCtx)
}
