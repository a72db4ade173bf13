package analytics

// InsightCategory grades the qualitative reading of a period.
type InsightCategory string

const (
	InsightSuccess InsightCategory = "success"
	InsightWarning InsightCategory = "warning"
	InsightNeutral InsightCategory = "neutral"
)

// Insight is the qualitative message for a period summary. Code is stable
// across message-copy changes so clients can key styling on it.
type Insight struct {
	Category InsightCategory `json:"category"`
	Code     string          `json:"code"`
	Message  string          `json:"message"`
}

// signalSet holds the derived booleans the rule table evaluates over.
type signalSet struct {
	hasCurrentStock    bool
	livePeriod         bool
	hasBaseline        bool
	wealthGrew         bool
	expensesDown       bool
	netSavingsPositive bool
	overspent          bool
}

// insightRule pairs a predicate with its outcome. The table is evaluated
// top to bottom, first match wins, so ordering is part of the contract.
type insightRule struct {
	code     string
	category InsightCategory
	applies  func(signalSet) bool
}

var insightRules = []insightRule{
	{
		code:     "register_net_worth",
		category: InsightNeutral,
		applies:  func(s signalSet) bool { return !s.hasCurrentStock },
	},
	{
		code:     "start_of_history",
		category: InsightNeutral,
		applies:  func(s signalSet) bool { return !s.hasBaseline && !s.livePeriod },
	},
	{
		code:     "grew_and_cut_spending",
		category: InsightSuccess,
		applies:  func(s signalSet) bool { return s.wealthGrew && s.expensesDown },
	},
	{
		code:     "growth_from_savings",
		category: InsightSuccess,
		applies:  func(s signalSet) bool { return s.wealthGrew && s.netSavingsPositive },
	},
	{
		code:     "overspent_and_declined",
		category: InsightWarning,
		applies:  func(s signalSet) bool { return !s.wealthGrew && s.overspent },
	},
	{
		code:     "growth_without_savings",
		category: InsightNeutral,
		applies:  func(s signalSet) bool { return s.wealthGrew && !s.netSavingsPositive },
	},
	{
		code:     "saved_but_declined",
		category: InsightWarning,
		applies:  func(s signalSet) bool { return !s.wealthGrew && s.netSavingsPositive },
	},
}

const defaultInsightCode = "steady_course"

// Message copy lives apart from the predicates so wording can change
// without touching rule order.
var insightMessages = map[string]string{
	"register_net_worth":     "Register your net worth to see its evolution over time.",
	"start_of_history":       "This is the start of your tracked history, so there is nothing to compare against yet.",
	"grew_and_cut_spending":  "You grew your wealth and cut your spending this period. Keep it up.",
	"growth_from_savings":    "Your wealth grew, driven by positive net savings.",
	"overspent_and_declined": "You spent more than you earned and your wealth declined.",
	"growth_without_savings": "Your wealth rose despite no net savings. Check asset appreciation.",
	"saved_but_declined":     "You saved money but your wealth declined. Check for devaluation.",
	"steady_course":          "Steady course. Review the highlights below.",
}

// evaluateInsight walks the rule table and returns the first matching
// outcome, falling back to the steady-course default.
func evaluateInsight(s signalSet) Insight {
	for _, r := range insightRules {
		if r.applies(s) {
			return Insight{Category: r.category, Code: r.code, Message: insightMessages[r.code]}
		}
	}
	return Insight{
		Category: InsightNeutral,
		Code:     defaultInsightCode,
		Message:  insightMessages[defaultInsightCode],
	}
}
