package email

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"listing_backend/platform/config"
)

// Sender delivers the transactional emails of the listing site.
type Sender interface {
	SendLeadAlertEmail(ctx context.Context, toEmail string, alert LeadAlert) error
	SendBuyerDossierEmail(ctx context.Context, toEmail string, dossier BuyerDossier) error
}

// NoopSender drops every message. Used when email is disabled.
type NoopSender struct{}

func (NoopSender) SendLeadAlertEmail(ctx context.Context, toEmail string, alert LeadAlert) error {
	return nil
}

func (NoopSender) SendBuyerDossierEmail(ctx context.Context, toEmail string, dossier BuyerDossier) error {
	return nil
}

// IsNoop reports whether s discards messages.
func IsNoop(s Sender) bool {
	_, ok := s.(NoopSender)
	return ok
}

// NewSender picks the delivery provider from config.
func NewSender(cfg config.EmailConfig) (Sender, error) {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}, nil
	}

	switch cfg.GetEmailProvider() {
	case ProviderBrevo:
		return NewBrevoSender(cfg.GetBrevoAPIKey(), cfg.GetEmailFromAddress(), cfg.GetEmailFromName(), &http.Client{Timeout: 10 * time.Second}), nil
	case ProviderSMTP:
		return NewSMTPSender(cfg.GetSMTPHost(), cfg.GetSMTPPort(), cfg.GetSMTPUsername(), cfg.GetSMTPPassword(), cfg.GetEmailFromAddress(), cfg.GetEmailFromName()), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.GetEmailProvider())
	}
}

const (
	ProviderBrevo = "brevo"
	ProviderSMTP  = "smtp"
)

// messageRenderer turns typed payloads into subject + HTML. Shared by the
// providers so both deliver identical content.
type messageRenderer struct{}

func (messageRenderer) leadAlert(alert LeadAlert) (string, string, error) {
	content, err := renderEmailTemplate("lead_alert.html", leadAlertEmailData{
		baseEmailData: baseEmailData{
			Title:   "New lead",
			Heading: fmt.Sprintf("%s NEW LEAD - %s", alert.Emoji, alert.PropertyAddress),
		},
		LeadAlert: alert,
	})
	if err != nil {
		return "", "", err
	}
	return LeadAlertSubject(alert), content, nil
}

func (messageRenderer) buyerDossier(dossier BuyerDossier) (string, string, error) {
	content, err := renderEmailTemplate("buyer_dossier.html", buyerDossierEmailData{
		baseEmailData: baseEmailData{
			Title:      "Your Buyer's Dossier",
			Heading:    dossier.PropertyAddress,
			Subheading: dossier.CityLine,
			CTALabel:   "Book Your Private Tour",
			CTAURL:     dossier.BookingURL,
		},
		BuyerDossier: dossier,
	})
	if err != nil {
		return "", "", err
	}
	return BuyerDossierSubject(dossier), content, nil
}
