package transport

// Display labels for wizard answers, shared by the agent API and emails.
var (
	BuyerTypeLabels = map[string]string{
		"primary":    "Primary Residence",
		"vacation":   "Vacation / Second Home",
		"investment": "Investment / Rental",
		"browsing":   "Just Browsing",
	}

	TimelineLabels = map[string]string{
		"0-30":        "Ready Now (0-30 days)",
		"30-90":       "1-3 Months",
		"3-6":         "3-6 Months",
		"researching": "Just Researching",
	}

	BudgetLabels = map[string]string{
		"under-1m":   "Under $1M",
		"1m-1.25m":   "$1M - $1.25M",
		"1.25m-1.5m": "$1.25M - $1.5M",
		"not-sure":   "Not Sure Yet",
	}

	AttendeesLabels = map[string]string{
		"solo":    "Just Me",
		"spouse":  "Me + Spouse/Partner",
		"family":  "Family",
		"agent":   "Me + My Agent",
		"virtual": "Virtual Tour First",
	}

	HasAgentLabels = map[string]string{
		"yes":  "Yes, Has Agent",
		"no":   "Looking for Representation",
		"open": "Open to Agent",
	}

	ViewingTimeLabels = map[string]string{
		"weekday-morning":   "Weekday Mornings",
		"weekday-afternoon": "Weekday Afternoons",
		"weekends":          "Weekends",
		"call-to-schedule":  "I'll Call to Schedule",
		"flexible":          "Flexible / Any Time",
	}
)

// Label looks up value in labels, falling back to the raw value.
func Label(labels map[string]string, value string) string {
	if label, ok := labels[value]; ok {
		return label
	}
	return value
}

// Labeled pairs value with its label.
func Labeled(labels map[string]string, value string) LabeledValue {
	return LabeledValue{Value: value, Label: Label(labels, value)}
}

// ViewingTimeList renders the selected viewing times as labels.
func ViewingTimeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, Label(ViewingTimeLabels, v))
	}
	return out
}
