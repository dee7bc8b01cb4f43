package exports

import (
	"context"
	"crypto/sha256"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"listing_backend/internal/leads/repository"
	"listing_backend/internal/leads/scoring"
	"listing_backend/internal/leads/service"
	"listing_backend/internal/leads/transport"
	"listing_backend/platform/httpkit"
	"listing_backend/platform/logger"
	"listing_backend/platform/phone"

	"github.com/gin-gonic/gin"
)

const (
	defaultCurrency = "USD"
	defaultTimezone = "America/Los_Angeles"
	dateLayout      = "2006-01-02"
	defaultLimit    = 5000
	maxLimit        = 50000
)

// LeadSource lists stored leads by creation time.
type LeadSource interface {
	ListCreatedBetween(ctx context.Context, from, to time.Time, limit int) ([]repository.Lead, error)
}

// Handler streams lead exports as CSV.
type Handler struct {
	leads LeadSource
	log   *logger.Logger
	now   func() time.Time
}

// NewHandler creates a new exports handler.
func NewHandler(leads LeadSource, log *logger.Logger) *Handler {
	return &Handler{leads: leads, log: log, now: time.Now}
}

// ExportLeadsCSV writes every lead in the date range as a spreadsheet-friendly CSV.
// GET /api/v1/exports/leads.csv
func (h *Handler) ExportLeadsCSV(c *gin.Context) {
	leads, location, _, ok := h.loadLeads(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=leads.csv")

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(leadHeaders); err != nil {
		return
	}
	for _, lead := range leads {
		if err := writer.Write(leadRow(lead, location)); err != nil {
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		h.log.Error("lead export write failed", "error", err)
	}
}

// ExportGoogleAdsCSV writes qualified leads as Google Ads offline conversions
// keyed on hashed contact details.
// GET /api/v1/exports/google-ads/conversions.csv
func (h *Handler) ExportGoogleAdsCSV(c *gin.Context) {
	leads, location, tzName, ok := h.loadLeads(c)
	if !ok {
		return
	}

	currency := strings.ToUpper(strings.TrimSpace(c.DefaultQuery("currency", defaultCurrency)))
	includeCold := parseBool(c.Query("includeCold"))
	rows := buildConversionRows(leads, location, currency, includeCold)

	writer, ok := startConversionCsv(c, tzName)
	if !ok {
		return
	}
	for _, row := range rows {
		if err := writer.Write(row.CSV()); err != nil {
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		h.log.Error("conversion export write failed", "error", err)
	}
}

func (h *Handler) loadLeads(c *gin.Context) ([]repository.Lead, *time.Location, string, bool) {
	location, tzName, ok := parseTimezone(c)
	if !ok {
		return nil, nil, "", false
	}

	fromDate, toDate, err := parseDateRange(c, h.now(), location)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid date range", err.Error())
		return nil, nil, "", false
	}

	leads, err := h.leads.ListCreatedBetween(c.Request.Context(), fromDate, toDate, parseLimit(c, defaultLimit, maxLimit))
	if err != nil {
		h.log.DatabaseError("export leads", err)
		httpkit.HandleError(c, err)
		return nil, nil, "", false
	}
	return leads, location, tzName, true
}

// ---- Lead CSV ----

var leadHeaders = []string{
	"Submitted At",
	"Category",
	"Score",
	"First Name",
	"Last Name",
	"Email",
	"Phone",
	"Buyer Type",
	"Timeline",
	"Budget",
	"Has Agent",
	"Viewing Times",
	"Attendees",
	"Wants Showing",
	"Source",
	"Property",
	"Lead ID",
}

func leadRow(lead repository.Lead, location *time.Location) []string {
	wantsShowing := "No"
	if lead.InterestedInShowing {
		wantsShowing = "Yes"
	}
	return []string{
		lead.CreatedAt.In(location).Format("2006-01-02 15:04"),
		service.StoredScore(lead).Category.Label(),
		strconv.Itoa(lead.LeadScore),
		lead.FirstName,
		lead.LastName,
		lead.Email,
		phone.FormatNational(lead.Phone),
		transport.Label(transport.BuyerTypeLabels, lead.BuyerType),
		transport.Label(transport.TimelineLabels, lead.Timeline),
		transport.Label(transport.BudgetLabels, lead.Budget),
		transport.Label(transport.HasAgentLabels, lead.HasAgent),
		strings.Join(transport.ViewingTimeList(lead.ViewingTime), "; "),
		transport.Label(transport.AttendeesLabels, lead.Attendees),
		wantsShowing,
		lead.Source,
		lead.PropertyAddress,
		lead.ID.String(),
	}
}

// ---- Google Ads conversions ----

type conversionRow struct {
	ConversionName     string
	ConversionTime     time.Time
	ConversionValue    float64
	ConversionCurrency string
	OrderID            string
	HashedEmail        string
	HashedPhone        string
}

func (r conversionRow) CSV() []string {
	return []string{
		r.HashedEmail,
		r.HashedPhone,
		r.ConversionName,
		formatConversionTime(r.ConversionTime),
		formatConversionValue(r.ConversionValue),
		r.ConversionCurrency,
		r.OrderID,
	}
}

var conversionHeaders = []string{
	"Email",
	"Phone Number",
	"Conversion Name",
	"Conversion Time",
	"Conversion Value",
	"Conversion Currency",
	"Order ID",
}

func startConversionCsv(c *gin.Context, tzName string) (*csv.Writer, bool) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=google-ads-conversions.csv")

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write([]string{fmt.Sprintf("Parameters:TimeZone=%s", tzName)}); err != nil {
		return nil, false
	}
	if err := writer.Write(conversionHeaders); err != nil {
		return nil, false
	}
	return writer, true
}

func buildConversionRows(leads []repository.Lead, location *time.Location, currency string, includeCold bool) []conversionRow {
	rows := make([]conversionRow, 0, len(leads))
	for _, lead := range leads {
		name := mapConversionName(service.StoredScore(lead).Category, includeCold)
		if name == "" {
			continue
		}
		hashedEmail := hashEmail(lead.Email)
		hashedPhone := hashPhone(lead.Phone)
		if hashedEmail == "" && hashedPhone == "" {
			continue
		}
		rows = append(rows, conversionRow{
			ConversionName:     name,
			ConversionTime:     lead.CreatedAt.In(location),
			ConversionCurrency: currency,
			OrderID:            lead.ID.String(),
			HashedEmail:        hashedEmail,
			HashedPhone:        hashedPhone,
		})
	}
	return rows
}

func mapConversionName(category scoring.Category, includeCold bool) string {
	switch category {
	case scoring.CategoryHot:
		return "Hot_Lead"
	case scoring.CategoryWarm:
		return "Warm_Lead"
	case scoring.CategoryCold:
		if includeCold {
			return "Cold_Lead"
		}
	}
	return ""
}

// ---- Helpers ----

func parseTimezone(c *gin.Context) (*time.Location, string, bool) {
	tzName := strings.TrimSpace(c.DefaultQuery("timezone", defaultTimezone))
	location, err := time.LoadLocation(tzName)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid timezone", nil)
		return nil, "", false
	}
	return location, tzName, true
}

// parseDateRange reads fromDate/toDate as calendar days in location.
// toDate is inclusive and defaults to now; fromDate defaults to 90 days
// before toDate.
func parseDateRange(c *gin.Context, now time.Time, location *time.Location) (time.Time, time.Time, error) {
	to := now
	from := now.AddDate(0, 0, -90)

	if raw := strings.TrimSpace(c.Query("toDate")); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, location)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
		from = parsed.AddDate(0, 0, -90)
	}
	if raw := strings.TrimSpace(c.Query("fromDate")); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, location)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("toDate before fromDate")
	}
	return from, to, nil
}

func parseLimit(c *gin.Context, fallback int, max int) int {
	limit := fallback
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	if limit > max {
		return max
	}
	if limit < 1 {
		return fallback
	}
	return limit
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

func formatConversionTime(value time.Time) string {
	return value.Format("2006-01-02 15:04:05-0700")
}

func formatConversionValue(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// hashEmail lowercases and, for Gmail, strips dots and +tags before hashing.
func hashEmail(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return ""
	}

	user, domain, ok := strings.Cut(value, "@")
	if ok && (domain == "gmail.com" || domain == "googlemail.com") {
		user = strings.ReplaceAll(user, ".", "")
		if plus := strings.Index(user, "+"); plus >= 0 {
			user = user[:plus]
		}
		value = user + "@" + domain
	}

	return sha256Sum(value)
}

// hashPhone hashes the E.164 form. Numbers that cannot be parsed are skipped.
func hashPhone(value string) string {
	normalized := phone.NormalizeE164(value)
	if !strings.HasPrefix(normalized, "+") {
		return ""
	}
	return sha256Sum(normalized)
}

func sha256Sum(value string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(value)))
}
