package scoring

import "testing"

var (
	allBuyerTypes = []string{BuyerPrimary, BuyerVacation, BuyerInvestment, BuyerBrowsing, "", "PRIMARY", "landlord"}
	allTimelines  = []string{TimelineNow, TimelineOneToThree, TimelineThreeToSix, TimelineResearching, "", "tomorrow"}
	allBudgets    = []string{BudgetUnderOneMillion, BudgetOneToOneQuarter, BudgetOneQuarterToOneHalf, BudgetNotSure, "", "2m+"}
)

func TestCalculateScenarios(t *testing.T) {
	tests := []struct {
		name     string
		answers  Answers
		want     Breakdown
		total    int
		category Category
	}{
		{
			name:     "ideal buyer",
			answers:  Answers{Timeline: TimelineNow, BuyerType: BuyerPrimary, Budget: BudgetOneToOneQuarter, InterestedInShowing: true},
			want:     Breakdown{Timeline: 5, BuyerType: 3, Budget: 5, ShowingInterest: 5},
			total:    18,
			category: CategoryHot,
		},
		{
			name:     "browser",
			answers:  Answers{Timeline: TimelineResearching, BuyerType: BuyerBrowsing, Budget: BudgetNotSure},
			want:     Breakdown{},
			total:    0,
			category: CategoryCold,
		},
		{
			name:     "hot boundary",
			answers:  Answers{Timeline: TimelineOneToThree, BuyerType: BuyerInvestment, Budget: BudgetUnderOneMillion, InterestedInShowing: true},
			want:     Breakdown{Timeline: 3, BuyerType: 2, Budget: 2, ShowingInterest: 5},
			total:    12,
			category: CategoryHot,
		},
		{
			name:     "warm vacation buyer",
			answers:  Answers{Timeline: TimelineThreeToSix, BuyerType: BuyerVacation, Budget: BudgetOneQuarterToOneHalf},
			want:     Breakdown{Timeline: 1, BuyerType: 3, Budget: 5},
			total:    9,
			category: CategoryWarm,
		},
		{
			name:     "unknown answers score zero",
			answers:  Answers{Timeline: "soon", BuyerType: "flipper", Budget: "lots", InterestedInShowing: true},
			want:     Breakdown{ShowingInterest: 5},
			total:    5,
			category: CategoryCold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.answers)
			if got.Breakdown != tt.want {
				t.Fatalf("breakdown = %+v, want %+v", got.Breakdown, tt.want)
			}
			if got.Total != tt.total {
				t.Fatalf("total = %d, want %d", got.Total, tt.total)
			}
			if got.Category != tt.category {
				t.Fatalf("category = %q, want %q", got.Category, tt.category)
			}
		})
	}
}

func TestCalculateInvariantsOverAllAnswers(t *testing.T) {
	for _, bt := range allBuyerTypes {
		for _, tl := range allTimelines {
			for _, bg := range allBudgets {
				for _, showing := range []bool{true, false} {
					a := Answers{BuyerType: bt, Timeline: tl, Budget: bg, InterestedInShowing: showing}
					s := Calculate(a)

					if s.Total < 0 || s.Total > MaxTotal {
						t.Fatalf("%+v: total %d out of range", a, s.Total)
					}
					if s.Total != s.Breakdown.Sum() {
						t.Fatalf("%+v: total %d != breakdown sum %d", a, s.Total, s.Breakdown.Sum())
					}
					if s.Breakdown.Timeline > MaxTimeline || s.Breakdown.BuyerType > MaxBuyerType ||
						s.Breakdown.Budget > MaxBudget || s.Breakdown.ShowingInterest > MaxShowingInterest {
						t.Fatalf("%+v: sub-score above maximum: %+v", a, s.Breakdown)
					}
					if s.Category != Categorize(s.Total) {
						t.Fatalf("%+v: category %q does not match total %d", a, s.Category, s.Total)
					}
					if again := Calculate(a); again != s {
						t.Fatalf("%+v: not idempotent: %+v then %+v", a, s, again)
					}
				}
			}
		}
	}
}

func TestCategorizeThresholds(t *testing.T) {
	for total := 0; total <= MaxTotal; total++ {
		var want Category
		switch {
		case total >= 12:
			want = CategoryHot
		case total >= 6:
			want = CategoryWarm
		default:
			want = CategoryCold
		}
		if got := Categorize(total); got != want {
			t.Errorf("Categorize(%d) = %q, want %q", total, got, want)
		}
	}

	if Categorize(11) != CategoryWarm || Categorize(5) != CategoryCold || Categorize(6) != CategoryWarm {
		t.Fatal("boundary totals misclassified")
	}
}

func TestMaxTotal(t *testing.T) {
	if MaxTotal != 18 {
		t.Fatalf("MaxTotal = %d, want 18", MaxTotal)
	}
}

func TestCategoryPresentation(t *testing.T) {
	tests := []struct {
		category Category
		emoji    string
		label    string
	}{
		{CategoryHot, "🔥", "HOT"},
		{CategoryWarm, "🟡", "WARM"},
		{CategoryCold, "❄️", "COLD"},
	}
	for _, tt := range tests {
		if got := tt.category.Emoji(); got != tt.emoji {
			t.Errorf("%s emoji = %q, want %q", tt.category, got, tt.emoji)
		}
		if got := tt.category.Label(); got != tt.label {
			t.Errorf("%s label = %q, want %q", tt.category, got, tt.label)
		}
		if !tt.category.Valid() {
			t.Errorf("%s should be valid", tt.category)
		}
	}
	if Category("lukewarm").Valid() {
		t.Error("unknown category should be invalid")
	}
}
