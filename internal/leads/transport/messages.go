package transport

import (
	"strings"

	"listing_backend/platform/validator"
)

// fieldMessages holds the wizard copy shown under each input.
// Keys are "field.tag" with a "field" fallback.
var fieldMessages = map[string]string{
	"buyerType":     "Please select what best describes you",
	"timeline":      "Please select your buying timeline",
	"budget":        "Please select your budget range",
	"viewingTime":   "Please select at least one option",
	"attendees":     "Please select who will attend",
	"hasAgent":      "Please let us know if you have an agent",
	"firstName":     "First name must be at least 2 characters",
	"firstName.max": "First name is too long",
	"lastName":      "Last name must be at least 2 characters",
	"lastName.max":  "Last name is too long",
	"email":         "Please enter a valid email address",
	"phone":         "Please enter a valid phone number",
	"agreeToTerms":  "You must agree to receive communications",
	"source":        "Unknown submission source",
	"category":      "Category must be hot, warm or cold",
	"search":        "Search is too long",
	"page":          "Page must be 1 or greater",
	"pageSize":      "Page size must be between 1 and 100",
}

// ValidationMessages turns a validator error into field → message pairs.
// It returns nil when err carries no field failures.
func ValidationMessages(err error) map[string]string {
	fields := validator.Fields(err)
	if len(fields) == 0 {
		return nil
	}

	out := make(map[string]string, len(fields))
	for _, fe := range fields {
		field := fe.Field
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = messageFor(field, fe.Tag)
	}
	return out
}

func messageFor(field, tag string) string {
	if msg, ok := fieldMessages[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}
	return "Invalid value"
}
