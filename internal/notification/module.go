// Package notification sends the emails that follow a lead submission.
// It subscribes to domain events so the leads module never touches email
// providers or templates.
package notification

import (
	"context"
	"fmt"

	"listing_backend/internal/email"
	"listing_backend/internal/events"
	"listing_backend/internal/property"
	"listing_backend/platform/config"
	"listing_backend/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	kindLeadAlert    = "lead_alert"
	kindBuyerDossier = "buyer_dossier"
)

// Enqueuer hands lead notifications to the background worker.
type Enqueuer interface {
	EnqueueLeadNotification(ctx context.Context, leadID uuid.UUID) error
}

// Module handles notification-related event subscriptions.
type Module struct {
	sender   email.Sender
	cfg      config.NotificationConfig
	listing  property.Listing
	enqueuer Enqueuer
	log      *logger.Logger
}

func New(sender email.Sender, cfg config.NotificationConfig, listing property.Listing, log *logger.Logger) *Module {
	if sender == nil {
		sender = email.NoopSender{}
	}
	return &Module{sender: sender, cfg: cfg, listing: listing, log: log}
}

// SetEnqueuer routes notifications through the task queue instead of
// sending them in-process.
func (m *Module) SetEnqueuer(e Enqueuer) { m.enqueuer = e }

// RegisterHandlers subscribes the module to the events it handles.
func (m *Module) RegisterHandlers(bus *events.InMemoryBus) {
	bus.Subscribe(events.LeadSubmitted{}.EventName(), m)
	m.log.Info("notification module registered event handlers", "queued", m.enqueuer != nil)
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.LeadSubmitted:
		return m.handleLeadSubmitted(ctx, e)
	default:
		m.log.Warn("unhandled event type", "event", event.EventName())
		return nil
	}
}

func (m *Module) handleLeadSubmitted(ctx context.Context, e events.LeadSubmitted) error {
	if m.enqueuer != nil {
		err := m.enqueuer.EnqueueLeadNotification(ctx, e.LeadID)
		if err == nil {
			return nil
		}
		m.log.Error("failed to enqueue lead notification, sending inline", "leadId", e.LeadID, "error", err)
	}

	// Delivery problems are logged per message and never reach the submitter.
	_ = m.NotifyLead(ctx, e)
	return nil
}

// NotifyLead sends the agent alert and the buyer dossier concurrently.
// Each failure is logged; the first one is returned so a queued task can retry.
func (m *Module) NotifyLead(ctx context.Context, e events.LeadSubmitted) error {
	ctx = context.WithValue(ctx, logger.LeadIDKey, e.LeadID.String())
	log := m.log.WithContext(ctx)

	if email.IsNoop(m.sender) {
		log.Info("email disabled - emails not sent")
		return nil
	}

	alert := BuildLeadAlert(e, m.listing)
	dossier := BuildBuyerDossier(e, m.listing, m.cfg.GetBookingURL())
	agentTo := m.cfg.GetAgentNotifyEmail()

	// A plain group: one failed message must not cancel the other.
	var g errgroup.Group
	g.Go(func() error {
		err := m.sender.SendLeadAlertEmail(ctx, agentTo, alert)
		log.EmailDelivery(kindLeadAlert, agentTo, err)
		if err != nil {
			return fmt.Errorf("send lead alert: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		err := m.sender.SendBuyerDossierEmail(ctx, e.Email, dossier)
		log.EmailDelivery(kindBuyerDossier, e.Email, err)
		if err != nil {
			return fmt.Errorf("send buyer dossier: %w", err)
		}
		return nil
	})
	return g.Wait()
}

var _ events.Handler = (*Module)(nil)
