// Package service runs the lead submission workflow and the agent read side.
package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"listing_backend/internal/events"
	"listing_backend/internal/leads/repository"
	"listing_backend/internal/leads/scoring"
	"listing_backend/internal/leads/transport"
	"listing_backend/platform/apperr"
	"listing_backend/platform/logger"
	"listing_backend/platform/phone"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20

	msgLeadNotFound = "lead not found"
	msgDuplicate    = "We already received your details. Our agent will be in touch shortly."
	msgSaveFailed   = "We couldn't save your details. Please try again."
)

// Repository defines the data access the lead service needs.
type Repository interface {
	repository.LeadReader
	repository.LeadWriter
}

// Listing identifies the property leads are submitted for.
type Listing interface {
	FullAddress() string
}

// Service handles lead submission and retrieval.
type Service struct {
	repo    Repository
	guard   DuplicateGuard
	bus     events.Bus
	listing Listing
	log     *logger.Logger
}

// New creates a lead service. A nil guard disables duplicate detection.
func New(repo Repository, guard DuplicateGuard, bus events.Bus, listing Listing, log *logger.Logger) *Service {
	if guard == nil {
		guard = NoopGuard{}
	}
	return &Service{
		repo:    repo,
		guard:   guard,
		bus:     bus,
		listing: listing,
		log:     log,
	}
}

// Preview scores answers without storing anything.
func (s *Service) Preview(req transport.ScorePreviewRequest) transport.ScoreResponse {
	return transport.NewScoreResponse(scoring.Calculate(req.Answers()))
}

// Submit stores a completed wizard and announces it.
// Storage failures fail the request; notification happens asynchronously.
func (s *Service) Submit(ctx context.Context, req transport.SubmitLeadRequest) (transport.SubmitLeadResponse, error) {
	req = normalize(req)
	address := s.listing.FullAddress()
	log := s.log.WithContext(ctx)

	dupKey := duplicateKey(req.Email, address)
	claimed, err := s.guard.Claim(ctx, dupKey)
	if err != nil {
		// Fail open when Redis is unavailable.
		log.Warn("duplicate guard unavailable", "error", err)
		claimed = true
	}
	if !claimed {
		leadsRejected.WithLabelValues("duplicate").Inc()
		return transport.SubmitLeadResponse{}, apperr.Conflict(msgDuplicate).WithOp("leads.Submit")
	}

	score := scoring.Calculate(req.Answers())

	lead, err := s.repo.Create(ctx, repository.CreateLeadParams{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		Phone:               req.Phone,
		BuyerType:           req.BuyerType,
		Timeline:            req.Timeline,
		Budget:              req.Budget,
		ViewingTime:         req.ViewingTime,
		Attendees:           req.Attendees,
		HasAgent:            req.HasAgent,
		InterestedInShowing: req.WantsShowing(),
		AgreedToTerms:       req.AgreeToTerms,
		LeadScore:           score.Total,
		LeadCategory:        string(score.Category),
		ScoreTimeline:       score.Breakdown.Timeline,
		ScoreBuyerType:      score.Breakdown.BuyerType,
		ScoreBudget:         score.Breakdown.Budget,
		ScoreShowing:        score.Breakdown.ShowingInterest,
		ScoreVersion:        scoring.Version,
		Source:              req.Source,
		PropertyAddress:     address,
	})
	if err != nil {
		if releaseErr := s.guard.Release(ctx, dupKey); releaseErr != nil {
			log.Warn("failed to release duplicate guard", "error", releaseErr)
		}
		log.DatabaseError("create_lead", err)
		leadsRejected.WithLabelValues("storage").Inc()
		return transport.SubmitLeadResponse{}, apperr.Wrap(apperr.KindInternal, msgSaveFailed, err).WithOp("leads.Submit")
	}

	leadsSubmitted.WithLabelValues(string(score.Category), lead.Source).Inc()
	leadScore.Observe(float64(score.Total))
	log.LeadSubmitted(lead.ID.String(), lead.Email, string(score.Category), score.Total, lead.Source)

	s.bus.Publish(ctx, LeadSubmittedEvent(lead))

	return transport.SubmitLeadResponse{ID: lead.ID, Score: transport.NewScoreResponse(score)}, nil
}

// Get returns one lead for the agent.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.LeadResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.LeadResponse{}, apperr.NotFound(msgLeadNotFound)
		}
		return transport.LeadResponse{}, err
	}
	return ToLeadResponse(lead), nil
}

// List returns a page of leads, newest first.
func (s *Service) List(ctx context.Context, req transport.ListLeadsRequest) (transport.LeadListResponse, error) {
	page := max(req.Page, 1)
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	params := repository.ListParams{
		Search: strings.TrimSpace(req.Search),
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	}
	if req.Category != "" {
		category := req.Category
		params.Category = &category
	}

	leads, total, err := s.repo.List(ctx, params)
	if err != nil {
		return transport.LeadListResponse{}, err
	}

	items := make([]transport.LeadResponse, 0, len(leads))
	for _, lead := range leads {
		items = append(items, ToLeadResponse(lead))
	}

	return transport.LeadListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

// Stats counts leads per category.
func (s *Service) Stats(ctx context.Context) (transport.LeadStatsResponse, error) {
	counts, err := s.repo.CountByCategory(ctx)
	if err != nil {
		return transport.LeadStatsResponse{}, err
	}
	return transport.LeadStatsResponse{
		Total: counts.Total(),
		Hot:   counts.Hot,
		Warm:  counts.Warm,
		Cold:  counts.Cold,
	}, nil
}

func normalize(req transport.SubmitLeadRequest) transport.SubmitLeadRequest {
	req.Clean()
	req.Phone = phone.NormalizeE164(req.Phone)
	if req.Source == "" {
		req.Source = transport.SourceQualifyForm
	}
	return req
}
