package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"listing_backend/internal/email"
	"listing_backend/internal/events"
	"listing_backend/internal/leads/scoring"
	"listing_backend/internal/property"
	"listing_backend/platform/logger"

	"github.com/google/uuid"
)

const (
	testAgentEmail = "agent@example.com"
	testLeadEmail  = "lead@example.com"
)

type testNotificationConfig struct{}

func (testNotificationConfig) GetAgentNotifyEmail() string { return testAgentEmail }
func (testNotificationConfig) GetBookingURL() string       { return "https://calendly.com/test" }

type testSender struct {
	mu       sync.Mutex
	alerts   map[string]email.LeadAlert
	dossiers map[string]email.BuyerDossier
	alertErr error
}

func newTestSender() *testSender {
	return &testSender{
		alerts:   map[string]email.LeadAlert{},
		dossiers: map[string]email.BuyerDossier{},
	}
}

func (s *testSender) SendLeadAlertEmail(_ context.Context, to string, alert email.LeadAlert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.alertErr != nil {
		return s.alertErr
	}
	s.alerts[to] = alert
	return nil
}

func (s *testSender) SendBuyerDossierEmail(_ context.Context, to string, dossier email.BuyerDossier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dossiers[to] = dossier
	return nil
}

type testEnqueuer struct {
	ids []uuid.UUID
	err error
}

func (q *testEnqueuer) EnqueueLeadNotification(_ context.Context, id uuid.UUID) error {
	if q.err != nil {
		return q.err
	}
	q.ids = append(q.ids, id)
	return nil
}

func testListing(t *testing.T) property.Listing {
	t.Helper()
	listing, err := property.Load("")
	if err != nil {
		t.Fatalf("load listing: %v", err)
	}
	return listing
}

func testEvent() events.LeadSubmitted {
	answers := scoring.Answers{
		Timeline:            scoring.TimelineNow,
		BuyerType:           scoring.BuyerPrimary,
		Budget:              scoring.BudgetOneToOneQuarter,
		InterestedInShowing: true,
	}
	return events.LeadSubmitted{
		BaseEvent:           events.NewBaseEvent(),
		LeadID:              uuid.New(),
		FirstName:           "Jane",
		LastName:            "Doe",
		Email:               testLeadEmail,
		Phone:               "+18055551234",
		BuyerType:           answers.BuyerType,
		Timeline:            answers.Timeline,
		Budget:              answers.Budget,
		ViewingTime:         []string{"weekday-morning", "weekends"},
		Attendees:           "spouse",
		HasAgent:            "no",
		InterestedInShowing: true,
		Score:               scoring.Calculate(answers),
		Source:              "qualify-form",
		SubmittedAt:         time.Now(),
	}
}

func newTestModule(t *testing.T, sender email.Sender) *Module {
	t.Helper()
	return New(sender, testNotificationConfig{}, testListing(t), logger.New("development"))
}

func TestNotifyLeadSendsBothEmails(t *testing.T) {
	sender := newTestSender()
	m := newTestModule(t, sender)

	if err := m.NotifyLead(context.Background(), testEvent()); err != nil {
		t.Fatalf("NotifyLead: %v", err)
	}

	alert, ok := sender.alerts[testAgentEmail]
	if !ok {
		t.Fatalf("expected agent alert to %s", testAgentEmail)
	}
	if alert.CategoryLabel != "HOT" || alert.Total != 18 || alert.MaxTotal != scoring.MaxTotal {
		t.Fatalf("unexpected alert score: %+v", alert)
	}
	if alert.BuyerType != "Primary Residence" {
		t.Fatalf("expected labeled buyer type, got %q", alert.BuyerType)
	}
	if len(alert.ViewingTimes) != 2 || alert.ViewingTimes[0] == "weekday-morning" {
		t.Fatalf("expected labeled viewing times, got %v", alert.ViewingTimes)
	}
	if got := email.LeadAlertSubject(alert); got != "🔥 NEW HOT LEAD - 9805 Steelhead Rd (Score: 18)" {
		t.Fatalf("unexpected subject %q", got)
	}

	dossier, ok := sender.dossiers[testLeadEmail]
	if !ok {
		t.Fatalf("expected dossier to %s", testLeadEmail)
	}
	if dossier.FirstName != "Jane" || dossier.BookingURL != "https://calendly.com/test" {
		t.Fatalf("unexpected dossier: %+v", dossier)
	}
	if dossier.Agent.Name != "Omar Riyad" {
		t.Fatalf("expected agent card from listing, got %q", dossier.Agent.Name)
	}
	if got := email.BuyerDossierSubject(dossier); got != "Your Private Buyer's Dossier - 9805 Steelhead Rd, Paso Robles" {
		t.Fatalf("unexpected subject %q", got)
	}
}

func TestNotifyLeadReportsFailureButStillSendsDossier(t *testing.T) {
	sender := newTestSender()
	sender.alertErr = errors.New("smtp down")
	m := newTestModule(t, sender)

	err := m.NotifyLead(context.Background(), testEvent())
	if err == nil {
		t.Fatal("expected alert failure to be returned")
	}
	if _, ok := sender.dossiers[testLeadEmail]; !ok {
		t.Fatal("dossier should be sent even when the alert fails")
	}
}

func TestHandleSwallowsDeliveryErrors(t *testing.T) {
	sender := newTestSender()
	sender.alertErr = errors.New("smtp down")
	m := newTestModule(t, sender)

	if err := m.Handle(context.Background(), testEvent()); err != nil {
		t.Fatalf("expected delivery errors to be logged only, got %v", err)
	}
}

func TestHandleEnqueuesWhenQueueConfigured(t *testing.T) {
	sender := newTestSender()
	m := newTestModule(t, sender)
	q := &testEnqueuer{}
	m.SetEnqueuer(q)

	evt := testEvent()
	if err := m.Handle(context.Background(), evt); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(q.ids) != 1 || q.ids[0] != evt.LeadID {
		t.Fatalf("expected lead to be enqueued, got %v", q.ids)
	}
	if len(sender.alerts) != 0 {
		t.Fatal("queued notifications must not be sent inline")
	}
}

func TestHandleFallsBackToInlineWhenEnqueueFails(t *testing.T) {
	sender := newTestSender()
	m := newTestModule(t, sender)
	m.SetEnqueuer(&testEnqueuer{err: errors.New("redis down")})

	if err := m.Handle(context.Background(), testEvent()); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if _, ok := sender.alerts[testAgentEmail]; !ok {
		t.Fatal("expected inline delivery after enqueue failure")
	}
}

func TestSubscribedThroughBus(t *testing.T) {
	sender := newTestSender()
	m := newTestModule(t, sender)
	bus := events.NewInMemoryBus(logger.New("development"))
	m.RegisterHandlers(bus)

	bus.Publish(context.Background(), testEvent())
	bus.Wait()

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.alerts) != 1 || len(sender.dossiers) != 1 {
		t.Fatalf("expected one alert and one dossier, got %d/%d", len(sender.alerts), len(sender.dossiers))
	}
}

func TestNoopSenderSkipsDelivery(t *testing.T) {
	m := newTestModule(t, email.NoopSender{})
	if err := m.NotifyLead(context.Background(), testEvent()); err != nil {
		t.Fatalf("NotifyLead: %v", err)
	}
}

func TestBuildLeadAlertWithoutShowing(t *testing.T) {
	evt := testEvent()
	evt.InterestedInShowing = false
	evt.ViewingTime = nil
	evt.Score = scoring.Calculate(scoring.Answers{Timeline: "researching", BuyerType: "browsing", Budget: "not-sure"})

	alert := BuildLeadAlert(evt, testListing(t))
	if alert.WantsShowing || alert.Category != "cold" || alert.Total != 0 {
		t.Fatalf("unexpected alert: %+v", alert)
	}
	if len(alert.Breakdown) != 4 {
		t.Fatalf("expected four breakdown rows, got %d", len(alert.Breakdown))
	}
}

func TestBuildBuyerDossierStats(t *testing.T) {
	d := BuildBuyerDossier(testEvent(), testListing(t), "https://book.example.com")
	want := map[string]string{"Bedrooms": "4", "Bathrooms": "3.5", "Sq Ft": "2,856"}
	for _, s := range d.Stats {
		if v, ok := want[s.Label]; ok && v != s.Value {
			t.Fatalf("stat %s = %q, want %q", s.Label, s.Value, v)
		}
	}
	if d.PriceFormatted != "$1,195,000" {
		t.Fatalf("unexpected price %q", d.PriceFormatted)
	}
	if len(d.Highlights) == 0 || len(d.Highlights) > maxDossierHighlights {
		t.Fatalf("unexpected highlight count %d", len(d.Highlights))
	}
}
