package property

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed listing.yaml
var defaultListing []byte

const listingDateLayout = "2006-01-02"

var printer = message.NewPrinter(language.AmericanEnglish)

// Load reads the listing from path, or the built-in listing when path is empty.
func Load(path string) (Listing, error) {
	data := defaultListing
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Listing{}, fmt.Errorf("read listing file: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes and validates listing YAML.
func Parse(data []byte) (Listing, error) {
	var l Listing
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Listing{}, fmt.Errorf("decode listing: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Listing{}, err
	}
	return l, nil
}

// Validate checks the fields the site and emails rely on.
func (l Listing) Validate() error {
	var errs []error
	if strings.TrimSpace(l.Address) == "" {
		errs = append(errs, errors.New("address is required"))
	}
	if strings.TrimSpace(l.City) == "" {
		errs = append(errs, errors.New("city is required"))
	}
	if l.Price <= 0 {
		errs = append(errs, errors.New("price must be positive"))
	}
	if strings.TrimSpace(l.Agent.Email) == "" {
		errs = append(errs, errors.New("agent email is required"))
	}
	if l.ListingDate != "" {
		if _, err := time.Parse(listingDateLayout, l.ListingDate); err != nil {
			errs = append(errs, fmt.Errorf("listingDate must be YYYY-MM-DD: %w", err))
		}
	}
	seen := make(map[int]bool, len(l.Photos))
	for _, p := range l.Photos {
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("duplicate photo id %d", p.ID))
		}
		seen[p.ID] = true
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid listing: %w", err)
	}
	return nil
}

// FullAddress is "street, city, ST zip".
func (l Listing) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s %s", l.Address, l.City, l.State, l.Zip)
}

// ShortAddress is "street, city", used in email subjects.
func (l Listing) ShortAddress() string {
	return l.Address + ", " + l.City
}

// PriceFormatted renders the price as US dollars, e.g. $1,195,000.
func (l Listing) PriceFormatted() string {
	return FormatPrice(l.Price)
}

// DaysOnMarket counts whole days since the listing date. Unknown dates yield 0.
func (l Listing) DaysOnMarket(now time.Time) int {
	listed, err := time.Parse(listingDateLayout, l.ListingDate)
	if err != nil {
		return 0
	}
	days := int(now.UTC().Sub(listed).Hours() / 24)
	return max(days, 0)
}

// FormatPrice renders whole dollars with US grouping.
func FormatPrice(dollars int64) string {
	return printer.Sprintf("$%d", dollars)
}

// FormatNumber renders an integer with US grouping, e.g. 2,856.
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}
