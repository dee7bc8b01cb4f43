package property

import (
	"context"
	"path"
	"strings"
	"time"

	"listing_backend/internal/adapters/storage"
	"listing_backend/platform/logger"
)

// PhotoURLResolver turns a photo key into a URL the browser can load.
type PhotoURLResolver interface {
	PhotoURL(ctx context.Context, key string) (string, error)
}

// StaticResolver joins keys onto a public base path.
type StaticResolver struct {
	BaseURL string
}

func (r StaticResolver) PhotoURL(_ context.Context, key string) (string, error) {
	if isAbsolute(key) {
		return key, nil
	}
	base := strings.TrimRight(r.BaseURL, "/")
	return base + "/" + strings.TrimLeft(key, "/"), nil
}

// StorageResolver presigns keys in the property photo bucket.
type StorageResolver struct {
	Storage storage.StorageService
	Bucket  string
}

func (r StorageResolver) PhotoURL(ctx context.Context, key string) (string, error) {
	if isAbsolute(key) {
		return key, nil
	}
	presigned, err := r.Storage.GenerateDownloadURL(ctx, r.Bucket, path.Clean(strings.TrimLeft(key, "/")))
	if err != nil {
		return "", err
	}
	return presigned.URL, nil
}

func isAbsolute(key string) bool {
	return strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://")
}

// Service serves the listing.
type Service struct {
	listing  Listing
	resolver PhotoURLResolver
	log      *logger.Logger
	now      func() time.Time
}

func NewService(listing Listing, resolver PhotoURLResolver, log *logger.Logger) *Service {
	return &Service{listing: listing, resolver: resolver, log: log, now: time.Now}
}

// Listing returns the raw listing.
func (s *Service) Listing() Listing {
	return s.listing
}

// FullAddress identifies the property on stored leads.
func (s *Service) FullAddress() string {
	return s.listing.FullAddress()
}

// Get returns the listing with photo and agent URLs resolved.
func (s *Service) Get(ctx context.Context) ListingResponse {
	l := s.listing
	l.Photos = s.resolvePhotos(ctx, l.Photos)
	if l.Agent.Photo != "" {
		l.Agent.Photo = s.resolve(ctx, l.Agent.Photo)
	}

	return ListingResponse{
		Listing:        l,
		FullAddress:    l.FullAddress(),
		PriceFormatted: l.PriceFormatted(),
		SqftFormatted:  FormatNumber(l.Sqft),
		DaysOnMarket:   l.DaysOnMarket(s.now()),
	}
}

// Photos returns the gallery, optionally narrowed to one category.
// Category counts always cover the full gallery.
func (s *Service) Photos(ctx context.Context, category string) PhotosResponse {
	counts := make(map[string]int)
	selected := make([]Photo, 0, len(s.listing.Photos))
	for _, p := range s.listing.Photos {
		counts[p.Category]++
		if category == "" || strings.EqualFold(p.Category, category) {
			selected = append(selected, p)
		}
	}
	return PhotosResponse{Items: s.resolvePhotos(ctx, selected), Categories: counts}
}

func (s *Service) resolvePhotos(ctx context.Context, photos []Photo) []Photo {
	out := make([]Photo, len(photos))
	for i, p := range photos {
		p.Src = s.resolve(ctx, p.Src)
		out[i] = p
	}
	return out
}

// resolve falls back to the raw key when the resolver fails.
func (s *Service) resolve(ctx context.Context, key string) string {
	u, err := s.resolver.PhotoURL(ctx, key)
	if err != nil {
		s.log.Warn("failed to resolve photo url", "key", key, "error", err)
		return key
	}
	return u
}
