package transport

import (
	"strings"
	"time"

	"listing_backend/internal/leads/scoring"
	"listing_backend/platform/sanitize"

	"github.com/google/uuid"
)

// Submission sources, one per frontend flow that can post a lead.
const (
	SourceQualifyForm = "qualify-form"
	SourceHeroForm    = "hero-form"
	SourceContactForm = "contact-form"
)

// Step1Request is the "interest" step of the wizard.
type Step1Request struct {
	BuyerType string `json:"buyerType" validate:"required,oneof=primary vacation investment browsing"`
	Timeline  string `json:"timeline" validate:"required,oneof=0-30 30-90 3-6 researching"`
	Budget    string `json:"budget" validate:"required,oneof=under-1m 1m-1.25m 1.25m-1.5m not-sure"`
}

// Step2Request is the "viewing preferences" step.
type Step2Request struct {
	ViewingTime []string `json:"viewingTime" validate:"required,min=1,dive,oneof=weekday-morning weekday-afternoon weekends call-to-schedule flexible"`
	Attendees   string   `json:"attendees" validate:"required,oneof=solo spouse family agent virtual"`
	HasAgent    string   `json:"hasAgent" validate:"required,oneof=yes no open"`
}

// Step3Request is the "contact" step.
type Step3Request struct {
	FirstName           string `json:"firstName" validate:"required,min=2,max=50"`
	LastName            string `json:"lastName" validate:"required,min=2,max=50"`
	Email               string `json:"email" validate:"required,email,max=254"`
	Phone               string `json:"phone" validate:"required,usphone"`
	InterestedInShowing *bool  `json:"interestedInShowing,omitempty"`
	AgreeToTerms        bool   `json:"agreeToTerms" validate:"required"`
}

// WantsShowing applies the form default: an omitted answer means yes.
func (r Step3Request) WantsShowing() bool {
	if r.InterestedInShowing == nil {
		return true
	}
	return *r.InterestedInShowing
}

// Clean strips markup from the names and trims the email so the length
// rules apply to what is stored.
func (r *Step3Request) Clean() {
	r.FirstName = sanitize.Text(r.FirstName)
	r.LastName = sanitize.Text(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// SubmitLeadRequest is the full wizard posted on the final step.
type SubmitLeadRequest struct {
	Step1Request
	Step2Request
	Step3Request
	Source string `json:"source,omitempty" validate:"omitempty,oneof=qualify-form hero-form contact-form"`
}

// Answers extracts the scored inputs.
func (r SubmitLeadRequest) Answers() scoring.Answers {
	return scoring.Answers{
		BuyerType:           r.BuyerType,
		Timeline:            r.Timeline,
		Budget:              r.Budget,
		InterestedInShowing: r.WantsShowing(),
	}
}

// ScorePreviewRequest scores the interest step without storing anything.
type ScorePreviewRequest struct {
	Step1Request
	InterestedInShowing *bool `json:"interestedInShowing,omitempty"`
}

// Answers extracts the scored inputs, defaulting showing interest to true.
func (r ScorePreviewRequest) Answers() scoring.Answers {
	showing := true
	if r.InterestedInShowing != nil {
		showing = *r.InterestedInShowing
	}
	return scoring.Answers{
		BuyerType:           r.BuyerType,
		Timeline:            r.Timeline,
		Budget:              r.Budget,
		InterestedInShowing: showing,
	}
}

// ListLeadsRequest filters the agent lead list.
type ListLeadsRequest struct {
	Category string `form:"category" validate:"omitempty,oneof=hot warm cold"`
	Search   string `form:"search" validate:"omitempty,max=100"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

// Response DTOs

type StepValidationResponse struct {
	Step  int  `json:"step"`
	Valid bool `json:"valid"`
}

type ScoreResponse struct {
	Breakdown scoring.Breakdown `json:"breakdown"`
	Total     int               `json:"total"`
	MaxTotal  int               `json:"maxTotal"`
	Category  scoring.Category  `json:"category"`
}

type SubmitLeadResponse struct {
	ID    uuid.UUID     `json:"id"`
	Score ScoreResponse `json:"score"`
}

type LeadResponse struct {
	ID                  uuid.UUID      `json:"id"`
	FirstName           string         `json:"firstName"`
	LastName            string         `json:"lastName"`
	Email               string         `json:"email"`
	Phone               string         `json:"phone"`
	BuyerType           LabeledValue   `json:"buyerType"`
	Timeline            LabeledValue   `json:"timeline"`
	Budget              LabeledValue   `json:"budget"`
	ViewingTime         []LabeledValue `json:"viewingTime"`
	Attendees           LabeledValue   `json:"attendees"`
	HasAgent            LabeledValue   `json:"hasAgent"`
	InterestedInShowing bool           `json:"interestedInShowing"`
	Score               ScoreResponse  `json:"score"`
	ScoreVersion        string         `json:"scoreVersion"`
	Source              string         `json:"source"`
	PropertyAddress     string         `json:"propertyAddress"`
	CreatedAt           time.Time      `json:"createdAt"`
}

// LabeledValue pairs a stored enum value with its display label.
type LabeledValue struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type LeadListResponse struct {
	Items      []LeadResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

type LeadStatsResponse struct {
	Total int `json:"total"`
	Hot   int `json:"hot"`
	Warm  int `json:"warm"`
	Cold  int `json:"cold"`
}

// NewScoreResponse adapts a computed score for the wire.
func NewScoreResponse(s scoring.Score) ScoreResponse {
	return ScoreResponse{
		Breakdown: s.Breakdown,
		Total:     s.Total,
		MaxTotal:  scoring.MaxTotal,
		Category:  s.Category,
	}
}
