package extractor

import (
	"regexp"
	"strings"
	"time"
)

var (
	timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// validateTask repairs a task in place so that every field is present and
// valid. Feeding an already-valid task through is the identity.
func validateTask(t ExtractedTask, now time.Time) ExtractedTask {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		t.Title = DefaultTitle
	}
	if runes := []rune(t.Title); len(runes) > MaxTitleLen {
		t.Title = string(runes[:MaxTitleLen])
	}

	if strings.TrimSpace(t.Description) == "" {
		t.Description = t.Title
	}

	if !timePattern.MatchString(t.Time) {
		t.Time = inferTime(t.Title, now)
	}

	if !validDate(t.Date) {
		t.Date = now.Format("2006-01-02")
	}

	if !Priorities[t.Priority] {
		t.Priority = DefaultPriority
	}

	if !Categories[t.Category] {
		t.Category = inferCategory(t.Title)
	}

	return t
}

// validDate requires both the YYYY-MM-DD shape and a real calendar date.
func validDate(date string) bool {
	if !datePattern.MatchString(date) {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// inferTime guesses a clock time from words in the title, defaulting to one
// hour from now.
func inferTime(title string, now time.Time) string {
	lower := strings.ToLower(title)
	for _, band := range timeKeywords {
		for _, kw := range band.keywords {
			if strings.Contains(lower, kw) {
				return band.clock
			}
		}
	}
	return now.Add(time.Hour).Format("15:04")
}

// inferCategory guesses a category from words in the text using the
// canonical keyword rule set, defaulting to DefaultCategory.
func inferCategory(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range categoryKeywords {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return DefaultCategory
}
