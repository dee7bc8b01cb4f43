package property

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"listing_backend/internal/adapters/storage"
	"listing_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

const syncConcurrency = 4

// SyncReport summarizes a photo upload run.
type SyncReport struct {
	Uploaded int
	Skipped  int
}

// SyncPhotos uploads every gallery photo (plus the agent portrait) found in
// dir to bucket under its listing key. Photos with absolute URLs are skipped.
// Missing local files fail the run.
func SyncPhotos(ctx context.Context, listing Listing, store storage.StorageService, bucket, dir string, log *logger.Logger) (SyncReport, error) {
	keys := photoKeys(listing)

	var uploaded, skipped atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(syncConcurrency)

	for _, key := range keys {
		if isAbsolute(key) {
			skipped.Add(1)
			continue
		}
		g.Go(func() error {
			if err := uploadPhoto(gctx, store, bucket, dir, key); err != nil {
				return err
			}
			uploaded.Add(1)
			log.Info("photo uploaded", "key", key, "bucket", bucket)
			return nil
		})
	}

	err := g.Wait()
	return SyncReport{Uploaded: int(uploaded.Load()), Skipped: int(skipped.Load())}, err
}

func photoKeys(listing Listing) []string {
	seen := make(map[string]bool, len(listing.Photos)+1)
	keys := make([]string, 0, len(listing.Photos)+1)
	add := func(key string) {
		key = strings.TrimLeft(key, "/")
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		keys = append(keys, key)
	}
	for _, p := range listing.Photos {
		add(p.Src)
	}
	add(listing.Agent.Photo)
	return keys
}

func uploadPhoto(ctx context.Context, store storage.StorageService, bucket, dir, key string) error {
	f, err := os.Open(filepath.Join(dir, filepath.FromSlash(key)))
	if err != nil {
		return fmt.Errorf("open %s: %w", key, err)
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", key, err)
	}

	contentType := storage.ContentTypeForFile(key)
	if err := store.ValidateContentType(contentType); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return store.PutFile(ctx, bucket, key, contentType, f, info.Size())
}
