package service

import (
	"listing_backend/internal/events"
	"listing_backend/internal/leads/repository"
	"listing_backend/internal/leads/scoring"
	"listing_backend/internal/leads/transport"
)

// ToLeadResponse converts a stored lead for the agent API.
func ToLeadResponse(lead repository.Lead) transport.LeadResponse {
	viewing := make([]transport.LabeledValue, 0, len(lead.ViewingTime))
	for _, v := range lead.ViewingTime {
		viewing = append(viewing, transport.Labeled(transport.ViewingTimeLabels, v))
	}

	return transport.LeadResponse{
		ID:                  lead.ID,
		FirstName:           lead.FirstName,
		LastName:            lead.LastName,
		Email:               lead.Email,
		Phone:               lead.Phone,
		BuyerType:           transport.Labeled(transport.BuyerTypeLabels, lead.BuyerType),
		Timeline:            transport.Labeled(transport.TimelineLabels, lead.Timeline),
		Budget:              transport.Labeled(transport.BudgetLabels, lead.Budget),
		ViewingTime:         viewing,
		Attendees:           transport.Labeled(transport.AttendeesLabels, lead.Attendees),
		HasAgent:            transport.Labeled(transport.HasAgentLabels, lead.HasAgent),
		InterestedInShowing: lead.InterestedInShowing,
		Score:               transport.NewScoreResponse(StoredScore(lead)),
		ScoreVersion:        lead.ScoreVersion,
		Source:              lead.Source,
		PropertyAddress:     lead.PropertyAddress,
		CreatedAt:           lead.CreatedAt,
	}
}

// StoredScore rebuilds the score recorded with the lead. A row with an
// unknown category is re-categorized from its total.
func StoredScore(lead repository.Lead) scoring.Score {
	category := scoring.Category(lead.LeadCategory)
	if !category.Valid() {
		category = scoring.Categorize(lead.LeadScore)
	}
	return scoring.Score{
		Breakdown: scoring.Breakdown{
			Timeline:        lead.ScoreTimeline,
			BuyerType:       lead.ScoreBuyerType,
			Budget:          lead.ScoreBudget,
			ShowingInterest: lead.ScoreShowing,
		},
		Total:    lead.LeadScore,
		Category: category,
	}
}

// LeadSubmittedEvent builds the domain event for a stored lead. The
// background worker uses it to replay notifications from the database.
func LeadSubmittedEvent(lead repository.Lead) events.LeadSubmitted {
	return events.LeadSubmitted{
		BaseEvent:           events.NewBaseEvent(),
		LeadID:              lead.ID,
		FirstName:           lead.FirstName,
		LastName:            lead.LastName,
		Email:               lead.Email,
		Phone:               lead.Phone,
		BuyerType:           lead.BuyerType,
		Timeline:            lead.Timeline,
		Budget:              lead.Budget,
		ViewingTime:         lead.ViewingTime,
		Attendees:           lead.Attendees,
		HasAgent:            lead.HasAgent,
		InterestedInShowing: lead.InterestedInShowing,
		Score:               StoredScore(lead),
		Source:              lead.Source,
		PropertyAddress:     lead.PropertyAddress,
		SubmittedAt:         lead.CreatedAt,
	}
}
