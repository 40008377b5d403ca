package extractor

import (
	"fmt"
	"strings"
	"time"

	"companion-core/internal/model"
)

// buildPersonalityContext produces the short per-user preamble for the
// extraction prompt. This is a coarse heuristic on the two axes, deliberately
// separate from the full persona prompt table used for chat.
func buildPersonalityContext(profile *model.UserProfile) string {
	if profile == nil {
		return ""
	}

	var sb strings.Builder
	if profile.Name != "" {
		fmt.Fprintf(&sb, "You are helping %s plan their day. ", profile.Name)
	}

	switch {
	case profile.Personality.IntensityLevel >= 7:
		sb.WriteString("They prefer tight schedules, so favor earlier times and shorter gaps. ")
	case profile.Personality.IntensityLevel <= 1:
		sb.WriteString("They prefer relaxed schedules, so leave generous gaps between tasks. ")
	}

	if profile.Personality.StyleType >= 5 {
		sb.WriteString("Keep task titles formal and precise.")
	} else {
		sb.WriteString("Keep task titles short and casual.")
	}

	return sb.String()
}

// buildExtractionPrompt assembles the full prompt: personality context,
// current calendar context, the raw input, extraction instructions, a strict
// output-format example, and relative-time interpretation rules with the
// actual dates already resolved.
func (e *Extractor) buildExtractionPrompt(input string, profile *model.UserProfile, now time.Time) string {
	tonight := e.dateMath.Tonight(now)
	morning := e.dateMath.TomorrowMorning(now)
	nextWeek := e.dateMath.NextWeek(now)
	weekend := e.dateMath.Weekend(now)

	var sb strings.Builder

	if ctxSentence := buildPersonalityContext(profile); ctxSentence != "" {
		sb.WriteString(ctxSentence)
		sb.WriteString("\n\n")
	}

	fmt.Fprintf(&sb, "Current date: %s (%s). Current time: %s.\n\n",
		now.Format("2006-01-02"), now.Weekday(), now.Format("15:04"))

	sb.WriteString("Extract every task from the following text:\n\"")
	sb.WriteString(input)
	sb.WriteString("\"\n\n")

	sb.WriteString(`RULES:
1. Return ONLY a valid JSON array of task objects. No markdown, no explanation.
2. Each object has exactly these fields:
   - title: short task description, at most 60 characters
   - description: extra details, may repeat the title
   - date: "YYYY-MM-DD"
   - time: "HH:MM" in 24-hour format
   - priority: one of "low", "medium", "high"
   - category: one of "work", "personal", "health", "shopping", "family", "household", "social", "education", "finance", "travel"
3. Resolve relative times using these rules:
`)

	fmt.Fprintf(&sb, "   - \"tonight\" means %s between %s and %s\n",
		tonight.Start.Format("2006-01-02"), tonight.Start.Format("15:04"), tonight.End.Format("15:04"))
	fmt.Fprintf(&sb, "   - \"tomorrow morning\" means %s between %s and %s\n",
		morning.Start.Format("2006-01-02"), morning.Start.Format("15:04"), morning.End.Format("15:04"))
	fmt.Fprintf(&sb, "   - \"next week\" means Monday %s\n", nextWeek.Format("2006-01-02"))
	fmt.Fprintf(&sb, "   - \"weekend\" means Saturday %s\n", weekend.Format("2006-01-02"))

	fmt.Fprintf(&sb, `
EXAMPLE OUTPUT:
[
  {
    "title": "Buy groceries",
    "description": "Buy groceries for the week",
    "date": "%s",
    "time": "15:00",
    "priority": "medium",
    "category": "shopping"
  }
]

Now return ONLY the JSON array:`, now.Format("2006-01-02"))

	return sb.String()
}
