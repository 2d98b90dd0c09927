// Package tokenizer splits free text into lowercase tokens and builds URL slugs from them.
package tokenizer

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// nonAlphanumericRegex matches sequences of non-alphanumeric characters.
var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Tokenize lowercases the string and splits it by non-alphanumeric characters.
// Non-ASCII letters act as separators.
func Tokenize(text string) []string {
	lowerText := strings.ToLower(text)
	split := nonAlphanumericRegex.Split(lowerText, -1)

	tokens := make([]string, 0) // Initialize as empty slice, not nil
	for _, s := range split {
		if s != "" {
			tokens = append(tokens, s)
		}
	}
	return tokens
}

// Slugify joins the tokens of text with hyphens, e.g. "TechFest 2024 - Summit" -> "techfest-2024-summit".
func Slugify(text string) string {
	return strings.Join(Tokenize(text), "-")
}

// UniqueSlug appends a base36 millisecond timestamp to the slug of text so that
// articles with identical titles still get distinct slugs.
func UniqueSlug(text string, now time.Time) string {
	suffix := strconv.FormatInt(now.UnixMilli(), 36)
	slug := Slugify(text)
	if slug == "" {
		return suffix
	}
	return slug + "-" + suffix
}
