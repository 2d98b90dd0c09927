package ranking

import (
	"regexp"
	"strings"
	"unicode"
)

// Priority levels, lowest to highest urgency.
const (
	MinPriority = 1
	MaxPriority = 5
)

// Weights of the non-keyword signals.
const (
	dateSignalWeight          = 2
	moneySignalWeight         = 2
	deadlineSignalWeight      = 3
	titleEmphasisSignalWeight = 1
)

var (
	// DD/MM/YYYY-style numeric dates, or a day number followed by a month abbreviation ("15 mar").
	datePattern = regexp.MustCompile(`(?i)\d{1,2}[-/]\d{1,2}[-/]\d{2,4}|\d{1,2}\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)`)

	// A rupee sign, "rs"/"rs." or "$" followed by digits with optional comma grouping.
	moneyPattern = regexp.MustCompile(`(?i)₹\s*[\d,]+|rs\.?\s*[\d,]+|\$\s*[\d,]+`)
)

// Signal names a non-keyword rule that contributed to a score.
type Signal string

const (
	SignalDate          Signal = "date"
	SignalMoney         Signal = "money"
	SignalDeadline      Signal = "deadline"
	SignalTitleEmphasis Signal = "title_emphasis"
)

// ScoringInput holds the text fields of an article. Body may be empty.
type ScoringInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`
}

// ScoreResult is the outcome of scoring one input.
type ScoreResult struct {
	PriorityLevel   int       `json:"priority"`
	RawScore        int       `json:"raw_score"`
	MatchedKeywords []Keyword `json:"matched_keywords"`
	Signals         []Signal  `json:"signals"`
}

// Score analyzes the input and returns its priority level together with the
// raw score and the rules that fired.
//
// Keywords are matched as plain substrings of the lowercased text, so "exam"
// also matches inside "examination" and both keywords score.
func Score(in ScoringInput) ScoreResult {
	blob := strings.ToLower(in.Title + " " + in.Description + " " + in.Body)

	result := ScoreResult{
		MatchedKeywords: make([]Keyword, 0),
		Signals:         make([]Signal, 0),
	}

	for _, kw := range priorityKeywords {
		if strings.Contains(blob, kw.Term) {
			result.RawScore += kw.Tier.Weight()
			result.MatchedKeywords = append(result.MatchedKeywords, kw)
		}
	}

	if datePattern.MatchString(blob) {
		result.RawScore += dateSignalWeight
		result.Signals = append(result.Signals, SignalDate)
	}

	if moneyPattern.MatchString(blob) {
		result.RawScore += moneySignalWeight
		result.Signals = append(result.Signals, SignalMoney)
	}

	// Intentionally counted on top of the "deadline"/"last date" tier match.
	if strings.Contains(blob, "last date") || strings.Contains(blob, "deadline") {
		result.RawScore += deadlineSignalWeight
		result.Signals = append(result.Signals, SignalDeadline)
	}

	if hasTitleEmphasis(in.Title) {
		result.RawScore += titleEmphasisSignalWeight
		result.Signals = append(result.Signals, SignalTitleEmphasis)
	}

	result.PriorityLevel = LevelForScore(result.RawScore)
	return result
}

// ComputePriority returns the priority level (1-5) for an article's text.
func ComputePriority(title, description, body string) int {
	return Score(ScoringInput{Title: title, Description: description, Body: body}).PriorityLevel
}

// LevelForScore maps a raw score onto a priority level.
func LevelForScore(score int) int {
	switch {
	case score >= 10:
		return 5
	case score >= 7:
		return 4
	case score >= 4:
		return 3
	case score >= 2:
		return 2
	default:
		return 1
	}
}

// hasTitleEmphasis reports whether the title is shouted (letters present, none
// lowercase) or contains an exclamation mark.
func hasTitleEmphasis(title string) bool {
	if strings.Contains(title, "!") {
		return true
	}

	hasLetter := false
	for _, r := range title {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
