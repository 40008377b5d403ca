package extractor

import (
	"regexp"
	"strings"
	"time"
)

// conjunctionPatterns match the fixed conjunction phrases,
// case-insensitively. Built once from the canonical list; phrases are
// applied in list order so " and then " claims its text before the
// shorter overlapping phrases get a turn.
var conjunctionPatterns = buildConjunctionPatterns()

func buildConjunctionPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(conjunctions))
	for i, c := range conjunctions {
		patterns[i] = regexp.MustCompile("(?i)" + regexp.QuoteMeta(c))
	}
	return patterns
}

// splitIntoTasks is the deterministic non-AI path: split the input on
// conjunction phrases and schedule one task per fragment, staggered half an
// hour apart starting one hour out. Fewer than two usable fragments yield a
// single task covering the whole input. The result is already validated.
func splitIntoTasks(input string, now time.Time) []ExtractedTask {
	pieces := []string{input}
	for _, pattern := range conjunctionPatterns {
		split := make([]string, 0, len(pieces))
		for _, piece := range pieces {
			split = append(split, pattern.Split(piece, -1)...)
		}
		pieces = split
	}

	fragments := make([]string, 0, len(pieces))
	for _, frag := range pieces {
		frag = strings.Trim(frag, " \t,;")
		if len(frag) < minFragmentLen {
			continue
		}
		fragments = append(fragments, frag)
	}

	if len(fragments) < 2 {
		whole := strings.TrimSpace(input)
		return []ExtractedTask{newFallbackTask(whole, now, 0)}
	}

	tasks := make([]ExtractedTask, 0, len(fragments))
	for i, frag := range fragments {
		tasks = append(tasks, newFallbackTask(frag, now, i))
	}
	return tasks
}

// newFallbackTask schedules the idx-th fragment and runs it through the
// shared validation so fallback output obeys the same invariants as parsed
// output.
func newFallbackTask(text string, now time.Time, idx int) ExtractedTask {
	at := now.Add(time.Duration(fallbackLeadMinutes+idx*fallbackStaggerMinutes) * time.Minute)

	return validateTask(ExtractedTask{
		Title:       text,
		Description: text,
		Date:        at.Format("2006-01-02"),
		Time:        at.Format("15:04"),
		Priority:    DefaultPriority,
		Category:    inferCategory(text),
	}, now)
}
