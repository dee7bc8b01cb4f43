package property

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaultListing(t *testing.T) {
	l, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := l.FullAddress(); got != "9805 Steelhead Rd, Paso Robles, CA 93446" {
		t.Fatalf("unexpected full address %q", got)
	}
	if got := l.PriceFormatted(); got != "$1,195,000" {
		t.Fatalf("unexpected price %q", got)
	}
	if l.Beds != 4 || l.Baths != 3.5 || l.Sqft != 2856 {
		t.Fatalf("unexpected details: %d bd %.1f ba %d sqft", l.Beds, l.Baths, l.Sqft)
	}
	if len(l.Photos) != 24 {
		t.Fatalf("expected 24 photos, got %d", len(l.Photos))
	}
	if l.Agent.Name != "Omar Riyad" || l.Agent.License != "DRE #02052562" {
		t.Fatalf("unexpected agent %+v", l.Agent)
	}
	if l.ListingDate != "2025-01-15" {
		t.Fatalf("unexpected listing date %q", l.ListingDate)
	}
	if !strings.Contains(l.Description, "\n\nThe moment you arrive") {
		t.Fatal("expected paragraphs to be preserved")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listing.yaml")
	data := "address: 1 Main St\ncity: Templeton\nstate: CA\nzip: \"93465\"\nprice: 899000\nagent:\n  email: a@example.com\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.ShortAddress() != "1 Main St, Templeton" {
		t.Fatalf("unexpected short address %q", l.ShortAddress())
	}
	if l.PriceFormatted() != "$899,000" {
		t.Fatalf("unexpected price %q", l.PriceFormatted())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseRejectsInvalidListing(t *testing.T) {
	_, err := Parse([]byte("address: ''\nprice: 0\nlistingDate: soon\nphotos:\n  - {id: 1}\n  - {id: 1}\n"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"address is required", "price must be positive", "listingDate", "duplicate photo id 1"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}

func TestDaysOnMarket(t *testing.T) {
	l := Listing{ListingDate: "2025-01-15"}
	now := time.Date(2025, 1, 26, 12, 0, 0, 0, time.UTC)
	if got := l.DaysOnMarket(now); got != 11 {
		t.Fatalf("DaysOnMarket = %d, want 11", got)
	}
	if got := l.DaysOnMarket(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)); got != 0 {
		t.Fatalf("expected 0 before listing date, got %d", got)
	}
	if got := (Listing{}).DaysOnMarket(now); got != 0 {
		t.Fatalf("expected 0 for unknown date, got %d", got)
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(2856); got != "2,856" {
		t.Fatalf("FormatNumber = %q", got)
	}
	if got := FormatPrice(950); got != "$950" {
		t.Fatalf("FormatPrice = %q", got)
	}
}
