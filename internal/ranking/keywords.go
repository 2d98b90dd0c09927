// Package ranking scores campus news content for urgency and suggests a
// category for it. Everything here is a pure function over text: the keyword
// tables are fixed at compile time and never modified, so every exported
// function is safe for concurrent use without locking.
package ranking

// Tier is the weight class of a priority keyword.
type Tier int

const (
	TierLow Tier = iota + 1
	TierMedium
	TierHigh
)

// Weight returns the points a single keyword match in this tier contributes.
func (t Tier) Weight() int {
	switch t {
	case TierHigh:
		return 3
	case TierMedium:
		return 2
	case TierLow:
		return 1
	default:
		return 0
	}
}

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	case TierLow:
		return "low"
	default:
		return "unknown"
	}
}

// Keyword is a lowercase term and the tier it scores in.
type Keyword struct {
	Term string `json:"term"`
	Tier Tier   `json:"tier"`
}

// Order matters only for the order matches are reported in, never for the score.
var (
	highPriorityKeywords = []string{
		"urgent", "important", "deadline", "immediate", "required", "mandatory",
		"examination", "exam", "result", "admission", "registration",
		"last date", "final", "notice", "alert", "warning", "emergency",
	}

	mediumPriorityKeywords = []string{
		"workshop", "seminar", "event", "opportunity", "internship", "placement",
		"scholarship", "competition", "conference", "training", "certification",
	}

	lowPriorityKeywords = []string{
		"holiday", "vacation", "celebration", "festival", "cultural",
		"sports", "club", "fun", "recreational",
	}
)

// priorityKeywords is the flattened table scanned by Score, high tier first.
var priorityKeywords = buildKeywordTable()

func buildKeywordTable() []Keyword {
	table := make([]Keyword, 0, len(highPriorityKeywords)+len(mediumPriorityKeywords)+len(lowPriorityKeywords))
	for _, term := range highPriorityKeywords {
		table = append(table, Keyword{Term: term, Tier: TierHigh})
	}
	for _, term := range mediumPriorityKeywords {
		table = append(table, Keyword{Term: term, Tier: TierMedium})
	}
	for _, term := range lowPriorityKeywords {
		table = append(table, Keyword{Term: term, Tier: TierLow})
	}
	return table
}

// HighPriorityKeywords returns a copy of the high tier keyword list.
func HighPriorityKeywords() []string { return cloneStrings(highPriorityKeywords) }

// MediumPriorityKeywords returns a copy of the medium tier keyword list.
func MediumPriorityKeywords() []string { return cloneStrings(mediumPriorityKeywords) }

// LowPriorityKeywords returns a copy of the low tier keyword list.
func LowPriorityKeywords() []string { return cloneStrings(lowPriorityKeywords) }

// PriorityKeywords returns a copy of every weighted keyword, high tier first.
func PriorityKeywords() []Keyword {
	out := make([]Keyword, len(priorityKeywords))
	copy(out, priorityKeywords)
	return out
}

// Category slugs known to the suggestion heuristic.
const (
	CategoryAcademics     = "academics"
	CategoryEvents        = "events"
	CategoryAnnouncements = "announcements"
	CategoryOpportunities = "opportunities"
	CategoryHolidays      = "holidays"
)

// DefaultCategory is returned by SuggestCategory when no category keyword matches.
const DefaultCategory = CategoryAnnouncements

// categoryOrder is the enumeration order used to break ties in SuggestCategory.
var categoryOrder = []string{
	CategoryAcademics,
	CategoryEvents,
	CategoryAnnouncements,
	CategoryOpportunities,
	CategoryHolidays,
}

var categoryKeywords = map[string][]string{
	CategoryAcademics:     {"exam", "syllabus", "course", "class", "lecture", "assignment", "grade", "semester", "academic", "curriculum"},
	CategoryEvents:        {"event", "workshop", "seminar", "conference", "fest", "competition", "hackathon", "meetup"},
	CategoryAnnouncements: {"notice", "announcement", "update", "change", "policy", "rule", "guideline"},
	CategoryOpportunities: {"internship", "job", "placement", "scholarship", "career", "opportunity", "hiring", "recruitment"},
	CategoryHolidays:      {"holiday", "vacation", "break", "festival", "celebration", "closure"},
}

// CategoryOrder returns the category slugs in tie-break order.
func CategoryOrder() []string { return cloneStrings(categoryOrder) }

// CategoryKeywords returns a copy of the keyword list for a category slug.
// The second return value is false for an unknown slug.
func CategoryKeywords(slug string) ([]string, bool) {
	keywords, ok := categoryKeywords[slug]
	if !ok {
		return nil, false
	}
	return cloneStrings(keywords), true
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
