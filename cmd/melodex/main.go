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

	"golang.org/x/sync/errgroup"

	"github.com/melodex/melodex/internal/albums"
	"github.com/melodex/melodex/internal/app"
	"github.com/melodex/melodex/internal/artists"
	"github.com/melodex/melodex/internal/auth"
	"github.com/melodex/melodex/internal/observability"
	"github.com/melodex/melodex/internal/platform/cache"
	"github.com/melodex/melodex/internal/platform/db"
	"github.com/melodex/melodex/internal/playlists"
	"github.com/melodex/melodex/internal/songs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	if err := db.Migrate(ctx, cfg.PGDSN); err != nil {
		logger.Error("run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	codec, err := auth.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logger.Error("build token codec", slog.Any("error", err))
		os.Exit(1)
	}

	authRepo := auth.NewRepository(dbpool)
	authService := auth.NewService(authRepo, auth.BcryptHasher{})
	loginLimiter := auth.NewLoginLimiter(redisClient, cfg.LoginMaxFails, cfg.LoginWindow, cfg.LoginBlockFor)
	authHandler := auth.NewHandler(logger, authService, codec, loginLimiter)
	resolver := auth.NewResolver(codec, authRepo, logger)

	artistsService := artists.NewService(artists.NewRepository(dbpool))
	artistsHandler := artists.NewHandler(logger, artistsService, cfg.MaxPageLimit)

	albumsService := albums.NewService(albums.NewRepository(dbpool))
	albumsHandler := albums.NewHandler(logger, albumsService, cfg.MaxPageLimit)

	songsService := songs.NewService(songs.NewRepository(dbpool), cfg.MediaDir)
	songsHandler := songs.NewHandler(logger, songsService, cfg.MaxPageLimit)

	playlistsService := playlists.NewService(playlists.NewRepository(dbpool), songsService)
	playlistsHandler := playlists.NewHandler(logger, playlistsService, cfg.MaxPageLimit)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		Resolver:         resolver,
		AuthHandler:      authHandler,
		ArtistsHandler:   artistsHandler,
		AlbumsHandler:    albumsHandler,
		SongsHandler:     songsHandler,
		PlaylistsHandler: playlistsHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
