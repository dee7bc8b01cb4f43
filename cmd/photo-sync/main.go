package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"listing_backend/internal/adapters/storage"
	"listing_backend/internal/property"
	"listing_backend/platform/config"
	"listing_backend/platform/logger"
)

func main() {
	dir := flag.String("dir", "public/photos", "directory holding the listing photos")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting photo sync", "dir", *dir, "bucket", cfg.GetMinioBucketPropertyPhotos())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listing, err := property.Load(cfg.GetPropertyFile())
	if err != nil {
		log.Error("failed to load property listing", "error", err)
		panic("failed to load property listing: " + err.Error())
	}

	storageSvc, err := storage.NewMinIOService(cfg)
	if err != nil {
		log.Error("failed to initialize storage service", "error", err)
		panic("failed to initialize storage service: " + err.Error())
	}

	bucket := cfg.GetMinioBucketPropertyPhotos()
	if err := storageSvc.EnsureBucketExists(ctx, bucket); err != nil {
		log.Error("failed to ensure storage bucket exists", "error", err, "bucket", bucket)
		panic("failed to ensure storage bucket exists: " + err.Error())
	}

	report, err := property.SyncPhotos(ctx, listing, storageSvc, bucket, *dir, log)
	if err != nil {
		log.Error("photo sync failed", "error", err, "uploaded", report.Uploaded)
		os.Exit(1)
	}
	log.Info("photo sync complete", "uploaded", report.Uploaded, "skipped", report.Skipped)
}
