// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"time"

	"listing_backend/internal/leads/scoring"
	"listing_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Lead Domain Events
// =============================================================================

// LeadSubmitted is published after a qualified lead has been stored.
type LeadSubmitted struct {
	BaseEvent
	LeadID              uuid.UUID     `json:"leadId"`
	FirstName           string        `json:"firstName"`
	LastName            string        `json:"lastName"`
	Email               string        `json:"email"`
	Phone               string        `json:"phone"`
	BuyerType           string        `json:"buyerType"`
	Timeline            string        `json:"timeline"`
	Budget              string        `json:"budget"`
	ViewingTime         []string      `json:"viewingTime"`
	Attendees           string        `json:"attendees"`
	HasAgent            string        `json:"hasAgent"`
	InterestedInShowing bool          `json:"interestedInShowing"`
	Score               scoring.Score `json:"score"`
	Source              string        `json:"source"`
	PropertyAddress     string        `json:"propertyAddress"`
	SubmittedAt         time.Time     `json:"submittedAt"`
}

func (e LeadSubmitted) EventName() string { return "leads.lead.submitted" }
