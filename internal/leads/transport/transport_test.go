package transport

import (
	"encoding/json"
	"testing"

	"listing_backend/internal/leads/scoring"
	"listing_backend/platform/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() SubmitLeadRequest {
	return SubmitLeadRequest{
		Step1Request: Step1Request{BuyerType: "primary", Timeline: "0-30", Budget: "1m-1.25m"},
		Step2Request: Step2Request{ViewingTime: []string{"weekends"}, Attendees: "spouse", HasAgent: "no"},
		Step3Request: Step3Request{
			FirstName:    "Jane",
			LastName:     "Buyer",
			Email:        "jane@example.com",
			Phone:        "(805) 555-0134",
			AgreeToTerms: true,
		},
	}
}

func TestSubmitLeadRequestValid(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.Struct(validSubmission()))
}

func TestSubmitLeadRequestDecodesFlatJSON(t *testing.T) {
	body := `{
		"buyerType": "vacation", "timeline": "30-90", "budget": "under-1m",
		"viewingTime": ["flexible"], "attendees": "solo", "hasAgent": "open",
		"firstName": "Al", "lastName": "Bo", "email": "al@example.com",
		"phone": "805.555.0100", "interestedInShowing": false, "agreeToTerms": true
	}`

	var req SubmitLeadRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, "vacation", req.BuyerType)
	assert.Equal(t, []string{"flexible"}, req.ViewingTime)
	assert.False(t, req.WantsShowing())
	assert.NoError(t, validator.New().Struct(req))
}

func TestValidationMessagesUseWizardCopy(t *testing.T) {
	req := validSubmission()
	req.Timeline = "someday"
	req.ViewingTime = nil
	req.FirstName = "J"
	req.LastName = "ThisLastNameIsWayTooLongToBeAcceptedByTheFormValidation"
	req.Phone = "12345"
	req.AgreeToTerms = false

	msgs := ValidationMessages(validator.New().Struct(req))

	assert.Equal(t, "Please select your buying timeline", msgs["timeline"])
	assert.Equal(t, "Please select at least one option", msgs["viewingTime"])
	assert.Equal(t, "First name must be at least 2 characters", msgs["firstName"])
	assert.Equal(t, "Last name is too long", msgs["lastName"])
	assert.Equal(t, "Please enter a valid phone number", msgs["phone"])
	assert.Equal(t, "You must agree to receive communications", msgs["agreeToTerms"])
	assert.NotContains(t, msgs, "email")
}

func TestValidationMessagesForUnknownViewingTime(t *testing.T) {
	req := Step2Request{ViewingTime: []string{"weekends", "midnight"}, Attendees: "family", HasAgent: "yes"}

	msgs := ValidationMessages(validator.New().Struct(req))
	assert.Equal(t, map[string]string{"viewingTime": "Please select at least one option"}, msgs)
}

func TestWantsShowingDefaultsToTrue(t *testing.T) {
	var step Step3Request
	assert.True(t, step.WantsShowing())

	no := false
	step.InterestedInShowing = &no
	assert.False(t, step.WantsShowing())
}

func TestSubmitAnswersFeedScoring(t *testing.T) {
	score := scoring.Calculate(validSubmission().Answers())
	assert.Equal(t, 18, score.Total)
	assert.Equal(t, scoring.CategoryHot, score.Category)
}

func TestScorePreviewDefaults(t *testing.T) {
	req := ScorePreviewRequest{Step1Request: Step1Request{BuyerType: "browsing", Timeline: "researching", Budget: "not-sure"}}
	resp := NewScoreResponse(scoring.Calculate(req.Answers()))
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, 18, resp.MaxTotal)
	assert.Equal(t, scoring.CategoryCold, resp.Category)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Ready Now (0-30 days)", Label(TimelineLabels, "0-30"))
	assert.Equal(t, "unknown", Label(TimelineLabels, "unknown"))
	assert.Equal(t, LabeledValue{Value: "spouse", Label: "Me + Spouse/Partner"}, Labeled(AttendeesLabels, "spouse"))
	assert.Equal(t, []string{"Weekends", "Flexible / Any Time"}, ViewingTimeList([]string{"weekends", "flexible"}))
}
