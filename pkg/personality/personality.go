// Package personality maps a two-axis personality model (intensity 0-9,
// communication style 0-9) onto natural-language system prompts. It is the
// single source of truth for persona wording across chat and task extraction.
package personality

// Settings holds the two personality axes for one user.
// Values outside [0,9] are treated as 0 everywhere they are consumed.
type Settings struct {
	IntensityLevel int `json:"intensity_level"`
	StyleType      int `json:"style_type"`
}

// Normalized returns a copy with both axes clamped into [0,9];
// out-of-range values collapse to 0 rather than saturating.
func (s Settings) Normalized() Settings {
	if s.IntensityLevel < 0 || s.IntensityLevel > 9 {
		s.IntensityLevel = 0
	}
	if s.StyleType < 0 || s.StyleType > 9 {
		s.StyleType = 0
	}
	return s
}

// IntensityPrompt returns the tone instruction for the given intensity level.
func IntensityPrompt(level int) string {
	if p, ok := intensityPrompts[level]; ok {
		return p
	}
	return intensityPrompts[0]
}

// StylePrompt returns the rhetorical-flavor instruction for the given style.
func StylePrompt(style int) string {
	if p, ok := stylePrompts[style]; ok {
		return p
	}
	return stylePrompts[0]
}

// CombinedPrompt builds the full persona system prompt from both axes.
// Unknown keys fall back to entry 0, so the result is never empty.
func CombinedPrompt(intensityLevel, styleType int) string {
	return IntensityPrompt(intensityLevel) + ConnectivePhrase + StylePrompt(styleType)
}
