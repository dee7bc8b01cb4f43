package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

func sampleAlert() LeadAlert {
	return LeadAlert{
		PropertyAddress: "9805 Steelhead Rd",
		Emoji:           "🔥",
		Category:        "hot",
		CategoryLabel:   "HOT",
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		Phone:           "+18055551234",
		BuyerType:       "Primary Residence",
		Timeline:        "Ready Now (0-30 days)",
		Budget:          "$1M - $1.25M",
		HasAgent:        "Looking for Representation",
		ViewingTimes:    []string{"Weekday Mornings", "Weekends"},
		Attendees:       "Me + Spouse/Partner",
		WantsShowing:    true,
		Breakdown: []ScoreLine{
			{Label: "Timeline", Points: 5, Max: 5},
			{Label: "Buyer Type", Points: 3, Max: 3},
			{Label: "Budget Match", Points: 5, Max: 5},
			{Label: "Showing Interest", Points: 5, Max: 5},
		},
		Total:       18,
		MaxTotal:    18,
		SubmittedAt: time.Date(2025, 1, 20, 15, 4, 0, 0, time.UTC),
	}
}

func sampleDossier() BuyerDossier {
	return BuyerDossier{
		FirstName:       "Jane",
		PropertyAddress: "9805 Steelhead Rd",
		CityLine:        "Paso Robles, CA 93446",
		ShortAddress:    "9805 Steelhead Rd, Paso Robles",
		PriceFormatted:  "$1,195,000",
		Intro:           "Thank you for your interest.",
		Stats: []DossierStat{
			{Value: "4", Label: "Bedrooms"},
			{Value: "3.5", Label: "Bathrooms"},
		},
		Highlights: []string{"Panoramic views"},
		BookingURL: "https://calendly.com/omar",
		Agent: AgentCard{
			Name:      "Omar Riyad",
			Title:     "Luxury Real Estate Advisor",
			Brokerage: "Revel Real Estate",
			Phone:     "805.268.3615",
			Email:     "omar@revelrealestate.com",
			License:   "DRE #02052562",
		},
	}
}

func TestLeadAlertSubject(t *testing.T) {
	assert.Equal(t, "🔥 NEW HOT LEAD - 9805 Steelhead Rd (Score: 18)", LeadAlertSubject(sampleAlert()))
}

func TestBuyerDossierSubject(t *testing.T) {
	assert.Equal(t, "Your Private Buyer's Dossier - 9805 Steelhead Rd, Paso Robles", BuyerDossierSubject(sampleDossier()))
}

func TestRenderLeadAlert(t *testing.T) {
	subject, html, err := messageRenderer{}.leadAlert(sampleAlert())
	require.NoError(t, err)

	assert.Contains(t, subject, "NEW HOT LEAD")
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, `href="mailto:jane@example.com"`)
	assert.Contains(t, html, `href="tel:`)
	assert.Contains(t, html, "18055551234")
	assert.Contains(t, html, "Weekday Mornings, Weekends")
	assert.Contains(t, html, "Follow up within 1 hour")
	assert.Contains(t, html, "Lead Score Breakdown (18/18)")
	assert.Contains(t, html, "3/3")
	assert.Contains(t, html, "Call Jane Now")
	assert.Contains(t, html, "badge-hot")
	assert.Contains(t, html, "Jan 20, 2025")
}

func TestRenderLeadAlertWithoutShowing(t *testing.T) {
	alert := sampleAlert()
	alert.WantsShowing = false
	alert.ViewingTimes = nil

	_, html, err := messageRenderer{}.leadAlert(alert)
	require.NoError(t, err)

	assert.NotContains(t, html, "PRIORITY")
	assert.Contains(t, html, "Not immediately")
	assert.Contains(t, html, "Not specified")
}

func TestRenderEscapesUserInput(t *testing.T) {
	alert := sampleAlert()
	alert.FirstName = "<script>alert(1)</script>"

	_, html, err := messageRenderer{}.leadAlert(alert)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderBuyerDossier(t *testing.T) {
	subject, html, err := messageRenderer{}.buyerDossier(sampleDossier())
	require.NoError(t, err)

	assert.Equal(t, "Your Private Buyer's Dossier - 9805 Steelhead Rd, Paso Robles", subject)
	assert.Contains(t, html, "Hi Jane,")
	assert.Contains(t, html, "$1,195,000")
	assert.Contains(t, html, "Bedrooms")
	assert.Contains(t, html, "Panoramic views")
	assert.Contains(t, html, `href="https://calendly.com/omar"`)
	assert.Contains(t, html, "Book Your Private Tour")
	assert.Contains(t, html, ">OR<")
	assert.Contains(t, html, "DRE #02052562")
}

func TestAgentCardInitials(t *testing.T) {
	assert.Equal(t, "OR", AgentCard{Name: "Omar Riyad"}.Initials())
	assert.Equal(t, "J", AgentCard{Name: " Jane "}.Initials())
	assert.Equal(t, "", AgentCard{}.Initials())
}

func TestBrevoSenderPostsPayload(t *testing.T) {
	var got brevoEmailRequest
	var apiKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	sender := NewBrevoSender("key-123", "leads@example.com", "Property Leads", srv.Client())
	sender.endpoint = srv.URL

	require.NoError(t, sender.SendLeadAlertEmail(context.Background(), "agent@example.com", sampleAlert()))

	assert.Equal(t, "key-123", apiKey)
	assert.Equal(t, "Property Leads", got.Sender.Name)
	assert.Equal(t, "leads@example.com", got.Sender.Email)
	require.Len(t, got.To, 1)
	assert.Equal(t, "agent@example.com", got.To[0].Email)
	assert.True(t, strings.HasPrefix(got.Subject, "🔥 NEW HOT LEAD"))
	assert.Contains(t, got.HTMLContent, "Jane Doe")
}

func TestBrevoSenderReportsFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	sender := NewBrevoSender("nope", "leads@example.com", "Property Leads", srv.Client())
	sender.endpoint = srv.URL

	err := sender.SendLeadAlertEmail(context.Background(), "a@example.com", sampleAlert())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestSMTPSenderBuildsMessage(t *testing.T) {
	sender := NewSMTPSender("localhost", 2525, "", "", "leads@example.com", "Property Leads")

	msg, err := sender.message("buyer@example.com", "Subject", "<p>body</p>")
	require.NoError(t, err)
	assert.Equal(t, []string{"Subject"}, msg.GetGenHeader(gomail.HeaderSubject))

	_, err = sender.message("not-an-address", "Subject", "<p>body</p>")
	assert.Error(t, err)
}

type emailConfig struct {
	enabled  bool
	provider string
}

func (c emailConfig) GetEmailEnabled() bool       { return c.enabled }
func (c emailConfig) GetEmailProvider() string    { return c.provider }
func (c emailConfig) GetBrevoAPIKey() string      { return "key" }
func (c emailConfig) GetSMTPHost() string         { return "smtp.example.com" }
func (c emailConfig) GetSMTPPort() int            { return 587 }
func (c emailConfig) GetSMTPUsername() string     { return "user" }
func (c emailConfig) GetSMTPPassword() string     { return "pass" }
func (c emailConfig) GetEmailFromName() string    { return "Property Leads" }
func (c emailConfig) GetEmailFromAddress() string { return "leads@example.com" }

func TestNewSenderSelectsProvider(t *testing.T) {
	s, err := NewSender(emailConfig{})
	require.NoError(t, err)
	assert.True(t, IsNoop(s))

	s, err = NewSender(emailConfig{enabled: true, provider: ProviderBrevo})
	require.NoError(t, err)
	assert.IsType(t, &BrevoSender{}, s)

	s, err = NewSender(emailConfig{enabled: true, provider: ProviderSMTP})
	require.NoError(t, err)
	assert.IsType(t, &SMTPSender{}, s)

	_, err = NewSender(emailConfig{enabled: true, provider: "carrier-pigeon"})
	assert.Error(t, err)
}
