package ranking

import "strings"

// CategorySuggestion is the category chosen for a text and the number of
// distinct category keywords that matched it.
type CategorySuggestion struct {
	CategorySlug string `json:"category_slug"`
	MatchCount   int    `json:"match_count"`
}

// SuggestCategory returns the slug of the category whose keywords best match text.
func SuggestCategory(text string) string {
	return SuggestCategoryDetailed(text).CategorySlug
}

// SuggestCategoryDetailed counts, for each category, how many of its keywords
// occur in text (each keyword at most once). The category with the strictly
// highest count wins, the earliest one in CategoryOrder on ties. When nothing
// matches, DefaultCategory is returned with a count of zero.
func SuggestCategoryDetailed(text string) CategorySuggestion {
	lower := strings.ToLower(text)

	best := CategorySuggestion{CategorySlug: DefaultCategory}
	for _, slug := range categoryOrder {
		count := 0
		for _, keyword := range categoryKeywords[slug] {
			if strings.Contains(lower, keyword) {
				count++
			}
		}

		if count > best.MatchCount {
			best = CategorySuggestion{CategorySlug: slug, MatchCount: count}
		}
	}
	return best
}
