package responder

import (
	"math/rand"
	"strings"

	"companion-core/pkg/personality"
)

// RuleResponder is the terminal fallback: a deterministic pattern-matching
// responder that always produces a non-empty reply. Template choice is the
// only randomness and the source is injectable so tests can pin it.
type RuleResponder struct {
	intn func(n int) int
}

// NewRuleResponder creates a rule responder backed by math/rand.
func NewRuleResponder() *RuleResponder {
	return &RuleResponder{intn: rand.Intn}
}

// NewRuleResponderWithRand creates a rule responder with a pinned random
// source. Intended for tests.
func NewRuleResponderWithRand(intn func(n int) int) *RuleResponder {
	return &RuleResponder{intn: intn}
}

// patternCategory is one ordered bucket of canned replies. The match
// function sees the lower-cased, trimmed message.
type patternCategory struct {
	name      string
	match     func(msg string) bool
	templates []string
}

// categories are evaluated in order; the default bucket is last and matches
// everything, so classification always succeeds.
var categories = []patternCategory{
	{
		name: "greeting",
		match: func(msg string) bool {
			return hasAnyPrefix(msg, "hi", "hello", "hey", "yo ", "good morning", "good afternoon", "good evening")
		},
		templates: []string{
			"Hey! Great! to have you back. What's on your plate today?",
			"Hello! Ready when you are — what should we tackle first?",
			"Hi! Good to see you. Want to go over your tasks?",
		},
	},
	{
		name: "help",
		match: func(msg string) bool {
			return strings.Contains(msg, "help") ||
				strings.Contains(msg, "what can you do") ||
				strings.Contains(msg, "how do i")
		},
		templates: []string{
			"Great! I can turn plain sentences into scheduled tasks, keep you on track, and chat about your plans. Just tell me what you need to get done.",
			"I can help you plan! Describe your day in your own words and I'll break it into tasks with dates and times.",
		},
	},
	{
		name: "gratitude",
		match: func(msg string) bool {
			return strings.Contains(msg, "thank") || strings.Contains(msg, "thx")
		},
		templates: []string{
			"Anytime! That's what I'm here for.",
			"You're welcome! Keep the momentum going.",
		},
	},
	{
		name: "farewell",
		match: func(msg string) bool {
			return hasAnyPrefix(msg, "bye", "goodbye", "good night", "see you")
		},
		templates: []string{
			"Catch you later! Your tasks will be right here.",
			"Goodbye! Come back when something new needs planning.",
		},
	},
	{
		name:  "default",
		match: func(msg string) bool { return true },
		templates: []string{
			"Got it. Tell me more, or just describe what you need to do and I'll turn it into tasks.",
			"I hear you. Want me to add that to your plan?",
			"Noted! Anything you'd like me to schedule from that?",
		},
	},
}

// Intensity-band suffixes and substitutions.
const (
	softeningSuffix  = " 💙 Take your time."
	commandingSuffix = " No excuses."
)

// terseAffirmations replaces exclamatory affirmations at high intensity.
var terseAffirmations = strings.NewReplacer(
	"Great!", "Good.",
	"Awesome!", "Done.",
	"Nice!", "Fine.",
)

// SmartResponse classifies the message and returns a personalized canned
// reply. It cannot fail and never returns an empty string.
func (r *RuleResponder) SmartResponse(message string, settings personality.Settings) string {
	settings = settings.Normalized()
	msg := strings.ToLower(strings.TrimSpace(message))

	var template string
	for _, cat := range categories {
		if !cat.match(msg) {
			continue
		}
		template = cat.templates[0]
		if len(cat.templates) > 1 {
			template = cat.templates[r.intn(len(cat.templates))]
		}
		break
	}

	// Intensity before style: style substitutions may target text the
	// intensity band just introduced.
	reply := applyIntensity(template, settings.IntensityLevel)
	return applyStyle(reply, settings.StyleType)
}

// applyIntensity adjusts tone for the low and high intensity bands;
// intermediate levels pass through unchanged.
func applyIntensity(text string, level int) string {
	switch {
	case level <= 1:
		return text + softeningSuffix
	case level >= 7:
		return terseAffirmations.Replace(text) + commandingSuffix
	default:
		return text
	}
}

// applyStyle runs the light per-style substitutions over the reply.
func applyStyle(text string, style int) string {
	switch style {
	case 1:
		return strings.NewReplacer("Great!", "Niiice!", "Hello!", "Heyyy!").Replace(text)
	case 2:
		return strings.NewReplacer("Great!", "Let's go!", "Got it.", "On it!").Replace(text)
	case 3:
		return strings.NewReplacer("Great!", "Good. Breathe.", "!", ".").Replace(text)
	case 4:
		return strings.NewReplacer("Great!", "Well done.", "Noted!", "Understood.").Replace(text)
	case 5:
		return strings.NewReplacer("Great!", "Excellent.", "Hey!", "Hello.", "💙", "").Replace(text)
	case 6:
		return strings.NewReplacer("Great!", "Oh, fantastic.", "Anytime!", "Sure, anytime.").Replace(text)
	case 7:
		return strings.NewReplacer("Great!", "A fine step on the path.", "Got it.", "So it is written.").Replace(text)
	case 8:
		return strings.NewReplacer("Great!", "Fine.", " 💙", "", "!", ".").Replace(text)
	case 9:
		return strings.NewReplacer(
			"Great!", "Acknowledged.",
			"I'm", "This system is",
			"I ", "This system ",
			" me ", " this system ",
			" me.", " this system.",
		).Replace(text)
	default:
		return text
	}
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
