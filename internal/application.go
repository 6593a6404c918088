package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/caro-backend/internal/config"
	"github.com/rocketscienceinc/caro-backend/internal/repository"
	"github.com/rocketscienceinc/caro-backend/internal/repository/storage"
	"github.com/rocketscienceinc/caro-backend/internal/service"
	"github.com/rocketscienceinc/caro-backend/internal/usecase"
	"github.com/rocketscienceinc/caro-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	settings, err := conf.Caro.Settings()
	if err != nil {
		return fmt.Errorf("invalid game settings: %w", err)
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisStorage.Connection)
	lockRepo := repository.NewLockRepository(redisStorage.Connection)
	playerService := service.NewPlayerService(playerRepo)

	newBot := func() usecase.BotPlayer {
		return service.NewBotService(settings, newSource())
	}

	timings := usecase.Timings{
		TurnTimeout:       conf.Caro.TurnTimeout,
		FinishedRetention: conf.Caro.FinishedRetention,
		LockTTL:           conf.Caro.LockTTL,
		SweepInterval:     conf.Caro.SweepInterval,
	}

	matchManager := usecase.NewMatchManager(logger, settings, timings, playerService, lockRepo, newBot, newSource())
	go matchManager.Run(ctx)

	log.Info("Game settings loaded",
		"board_size", settings.BoardSize,
		"max_pieces", settings.MaxPieces,
		"minimax_depth", settings.MinimaxDepth,
		"first_mover", settings.FirstMover,
	)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		server := rest.New(logger, matchManager)
		if httpErr := server.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newSource() rand.Source {
	return rand.NewSource(uint64(time.Now().UnixNano()))
}
