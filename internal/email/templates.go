package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// LeadAlert is the agent notification for a freshly submitted lead.
// Answer fields carry display labels, not raw wizard values.
type LeadAlert struct {
	PropertyAddress string
	Emoji           string
	Category        string // hot, warm, cold
	CategoryLabel   string // HOT, WARM, COLD

	FirstName string
	LastName  string
	Email     string
	Phone     string

	BuyerType    string
	Timeline     string
	Budget       string
	HasAgent     string
	ViewingTimes []string
	Attendees    string
	WantsShowing bool

	Breakdown []ScoreLine
	Total     int
	MaxTotal  int

	SubmittedAt time.Time
}

// ScoreLine is one row of the score breakdown table.
type ScoreLine struct {
	Label  string
	Points int
	Max    int
}

// BuyerDossier is the thank-you email sent to the lead.
type BuyerDossier struct {
	FirstName       string
	PropertyAddress string
	CityLine        string // "Paso Robles, CA 93446"
	ShortAddress    string // "9805 Steelhead Rd, Paso Robles"
	PriceFormatted  string
	Intro           string
	Stats           []DossierStat
	Highlights      []string
	BookingURL      string
	Agent           AgentCard
}

type DossierStat struct {
	Value string
	Label string
}

type AgentCard struct {
	Name      string
	Title     string
	Brokerage string
	Phone     string
	Email     string
	License   string
}

// Initials is shown in the avatar bubble.
func (a AgentCard) Initials() string {
	var out []rune
	start := true
	for _, r := range a.Name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, r)
			start = false
		}
	}
	return string(out)
}

type baseEmailData struct {
	Title      string
	Heading    string
	Subheading string
	CTALabel   string
	CTAURL     string
}

type leadAlertEmailData struct {
	baseEmailData
	LeadAlert
}

type buyerDossierEmailData struct {
	baseEmailData
	BuyerDossier
}

var templateFuncs = template.FuncMap{
	"submittedAt": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format("Jan 2, 2006 3:04 PM MST")
	},
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.New("base.html").Funcs(templateFuncs).ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}
