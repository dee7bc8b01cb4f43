package notification

import (
	"fmt"
	"strconv"

	"listing_backend/internal/email"
	"listing_backend/internal/events"
	"listing_backend/internal/leads/scoring"
	"listing_backend/internal/leads/transport"
	"listing_backend/internal/property"
)

const maxDossierHighlights = 7

// BuildLeadAlert maps a submitted lead onto the agent alert, swapping raw
// answers for display labels.
func BuildLeadAlert(e events.LeadSubmitted, listing property.Listing) email.LeadAlert {
	b := e.Score.Breakdown
	return email.LeadAlert{
		PropertyAddress: listing.Address,
		Emoji:           e.Score.Category.Emoji(),
		Category:        string(e.Score.Category),
		CategoryLabel:   e.Score.Category.Label(),
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		Email:           e.Email,
		Phone:           e.Phone,
		BuyerType:       transport.Label(transport.BuyerTypeLabels, e.BuyerType),
		Timeline:        transport.Label(transport.TimelineLabels, e.Timeline),
		Budget:          transport.Label(transport.BudgetLabels, e.Budget),
		HasAgent:        transport.Label(transport.HasAgentLabels, e.HasAgent),
		ViewingTimes:    transport.ViewingTimeList(e.ViewingTime),
		Attendees:       transport.Label(transport.AttendeesLabels, e.Attendees),
		WantsShowing:    e.InterestedInShowing,
		Breakdown: []email.ScoreLine{
			{Label: "Timeline", Points: b.Timeline, Max: scoring.MaxTimeline},
			{Label: "Buyer Type", Points: b.BuyerType, Max: scoring.MaxBuyerType},
			{Label: "Budget Match", Points: b.Budget, Max: scoring.MaxBudget},
			{Label: "Showing Interest", Points: b.ShowingInterest, Max: scoring.MaxShowingInterest},
		},
		Total:       e.Score.Total,
		MaxTotal:    scoring.MaxTotal,
		SubmittedAt: e.SubmittedAt,
	}
}

// BuildBuyerDossier assembles the thank-you email from the listing.
func BuildBuyerDossier(e events.LeadSubmitted, listing property.Listing, bookingURL string) email.BuyerDossier {
	highlights := listing.KeyFeatures
	if len(highlights) > maxDossierHighlights {
		highlights = highlights[:maxDossierHighlights]
	}

	return email.BuyerDossier{
		FirstName:       e.FirstName,
		PropertyAddress: listing.Address,
		CityLine:        fmt.Sprintf("%s, %s %s", listing.City, listing.State, listing.Zip),
		ShortAddress:    listing.ShortAddress(),
		PriceFormatted:  listing.PriceFormatted(),
		Intro: fmt.Sprintf("Thank you for your interest in %s. As promised, here's your exclusive Buyer's Dossier with all the details you need to make an informed decision.",
			listing.Address),
		Stats: []email.DossierStat{
			{Value: strconv.Itoa(listing.Beds), Label: "Bedrooms"},
			{Value: strconv.FormatFloat(listing.Baths, 'f', -1, 64), Label: "Bathrooms"},
			{Value: property.FormatNumber(listing.Sqft), Label: "Sq Ft"},
			{Value: listing.LotSize, Label: "Lot Size"},
		},
		Highlights: highlights,
		BookingURL: bookingURL,
		Agent: email.AgentCard{
			Name:      listing.Agent.Name,
			Title:     listing.Agent.Title,
			Brokerage: listing.Agent.Brokerage,
			Phone:     listing.Agent.Phone,
			Email:     listing.Agent.Email,
			License:   listing.Agent.License,
		},
	}
}
