// Package scoring rates a buyer lead from the qualification wizard answers.
//
// The model is a fixed lookup table: each answer maps to a sub-score and the
// sum decides the category. Unknown answers score zero; Calculate never fails.
package scoring

const (
	// Version tracks the scoring model stored next to each score.
	// Bump this when the table or thresholds change.
	Version = "2025-table-v1"

	MaxTimeline        = 5
	MaxBuyerType       = 3
	MaxBudget          = 5
	MaxShowingInterest = 5

	// MaxTotal is the highest reachable score.
	MaxTotal = MaxTimeline + MaxBuyerType + MaxBudget + MaxShowingInterest

	hotThreshold  = 12
	warmThreshold = 6
)

// Buyer type answers.
const (
	BuyerPrimary    = "primary"
	BuyerVacation   = "vacation"
	BuyerInvestment = "investment"
	BuyerBrowsing   = "browsing"
)

// Timeline answers.
const (
	TimelineNow         = "0-30"
	TimelineOneToThree  = "30-90"
	TimelineThreeToSix  = "3-6"
	TimelineResearching = "researching"
)

// Budget answers.
const (
	BudgetUnderOneMillion     = "under-1m"
	BudgetOneToOneQuarter     = "1m-1.25m"
	BudgetOneQuarterToOneHalf = "1.25m-1.5m"
	BudgetNotSure             = "not-sure"
)

// Category is the lead tier derived from the total.
type Category string

const (
	CategoryHot  Category = "hot"
	CategoryWarm Category = "warm"
	CategoryCold Category = "cold"
)

// Answers are the wizard inputs that feed the score.
type Answers struct {
	BuyerType           string
	Timeline            string
	Budget              string
	InterestedInShowing bool
}

// Breakdown holds the per-answer sub-scores.
type Breakdown struct {
	Timeline        int `json:"timeline"`
	BuyerType       int `json:"buyerType"`
	Budget          int `json:"budget"`
	ShowingInterest int `json:"showingInterest"`
}

// Sum adds the sub-scores.
func (b Breakdown) Sum() int {
	return b.Timeline + b.BuyerType + b.Budget + b.ShowingInterest
}

// Score is the result of Calculate.
type Score struct {
	Breakdown Breakdown `json:"breakdown"`
	Total     int       `json:"total"`
	Category  Category  `json:"category"`
}

// Calculate scores the answers.
func Calculate(a Answers) Score {
	b := Breakdown{
		Timeline:        scoreTimeline(a.Timeline),
		BuyerType:       scoreBuyerType(a.BuyerType),
		Budget:          scoreBudget(a.Budget),
		ShowingInterest: scoreShowing(a.InterestedInShowing),
	}
	total := b.Sum()
	return Score{Breakdown: b, Total: total, Category: Categorize(total)}
}

// Categorize maps a total onto a category. Lower bounds are inclusive.
func Categorize(total int) Category {
	switch {
	case total >= hotThreshold:
		return CategoryHot
	case total >= warmThreshold:
		return CategoryWarm
	default:
		return CategoryCold
	}
}

// scoreTimeline rewards buyers who can move soon.
func scoreTimeline(timeline string) int {
	switch timeline {
	case TimelineNow:
		return 5
	case TimelineOneToThree:
		return 3
	case TimelineThreeToSix:
		return 1
	default:
		return 0
	}
}

// scoreBuyerType favors owner-occupiers over investors.
func scoreBuyerType(buyerType string) int {
	switch buyerType {
	case BuyerPrimary, BuyerVacation:
		return 3
	case BuyerInvestment:
		return 2
	default:
		return 0
	}
}

// scoreBudget rewards budgets that cover the asking price.
func scoreBudget(budget string) int {
	switch budget {
	case BudgetOneToOneQuarter, BudgetOneQuarterToOneHalf:
		return 5
	case BudgetUnderOneMillion:
		return 2
	default:
		return 0
	}
}

func scoreShowing(interested bool) int {
	if interested {
		return MaxShowingInterest
	}
	return 0
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryHot, CategoryWarm, CategoryCold:
		return true
	}
	return false
}

// Emoji is the marker used in agent alert subjects.
func (c Category) Emoji() string {
	switch c {
	case CategoryHot:
		return "🔥"
	case CategoryWarm:
		return "🟡"
	default:
		return "❄️"
	}
}

// Label is the upper-case category name, e.g. "HOT".
func (c Category) Label() string {
	switch c {
	case CategoryHot:
		return "HOT"
	case CategoryWarm:
		return "WARM"
	default:
		return "COLD"
	}
}
