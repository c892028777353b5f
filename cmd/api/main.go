// @title Cat Collector API
// @version 1.0
// @description Gatos, comidas, juguetes y fotos por usuario.
// @BasePath /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cat-collector/internal/adapters/auth/token"
	blobmem "cat-collector/internal/adapters/objectstorage/memory"
	"cat-collector/internal/adapters/objectstorage/s3"
	"cat-collector/internal/adapters/storage/sqldb"
	"cat-collector/internal/config"
	"cat-collector/internal/domain/access"
	"cat-collector/internal/domain/photos"
	"cat-collector/internal/platform/logger"
	"cat-collector/internal/ports/objectstorage"
	"cat-collector/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("load config", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	policy, err := access.ParsePolicy(cfg.AccessPolicy)
	if err != nil {
		return err
	}

	opts := router.Options{
		Photos: photos.Config{
			Bucket:         cfg.S3Bucket,
			BaseURL:        cfg.S3BaseURL,
			MaxUploadBytes: cfg.MaxUploadBytes,
		},
		AccessPolicy: policy,
		Logger:       log,
	}

	// Store
	if cfg.DBDriver != config.DriverMemory {
		dialect, err := sqldb.ParseDialect(cfg.DBDriver)
		if err != nil {
			return err
		}
		db, err := sqldb.Open(ctx, dialect, cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		opts.DB = db
	}
	log.Info("store ready", map[string]any{"driver": cfg.DBDriver})

	// Bucket de fotos
	var uploader objectstorage.Uploader
	if cfg.StorageBackend == config.StorageS3 {
		up, err := s3.New(ctx, s3.Config{
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			UsePathStyle:    cfg.S3UsePathStyle,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			return err
		}
		uploader = up
	} else {
		uploader = blobmem.NewUploader()
	}
	opts.Uploader = uploader

	// Auth: sin JWT_SECRET queda el modo dev (X-Debug-User-ID)
	if cfg.JWTSecret != "" {
		j, err := token.New(token.Config{Secret: cfg.JWTSecret, Issuer: cfg.AppName, TTL: cfg.JWTTTL})
		if err != nil {
			return err
		}
		opts.AuthVerifier = j
		opts.TokenIssuer = j
	} else {
		log.Warn("JWT_SECRET not set: dev auth via X-Debug-User-ID", nil)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "policy": string(policy), "storage": cfg.StorageBackend})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
