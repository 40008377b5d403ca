package extractor

// Validation defaults and bounds.
const (
	MaxTitleLen     = 60
	DefaultTitle    = "Untitled Task"
	DefaultPriority = "medium"
	DefaultCategory = "personal"

	// DegradedConfidence is used when the pipeline recovers from an
	// unexpected failure instead of computing the normal formula.
	DegradedConfidence = 0.3

	MinConfidence = 0.1
	MaxConfidence = 1.0
)

// Priorities is the closed priority set.
var Priorities = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
}

// Categories is the closed 10-value category set.
var Categories = map[string]bool{
	"work":      true,
	"personal":  true,
	"health":    true,
	"shopping":  true,
	"family":    true,
	"household": true,
	"social":    true,
	"education": true,
	"finance":   true,
	"travel":    true,
}

// categoryKeywords is the canonical keyword rule set shared by fallback
// categorization and validation repair. One list, applied in this order;
// the first category with a hit wins, otherwise DefaultCategory.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"work", []string{"work", "meeting", "email", "report", "deadline", "project", "presentation", "client", "office"}},
	{"shopping", []string{"buy", "shop", "grocery", "groceries", "store", "order", "purchase"}},
	{"health", []string{"doctor", "dentist", "gym", "workout", "exercise", "medicine", "appointment", "run", "yoga"}},
	{"family", []string{"mom", "dad", "mother", "father", "kids", "family", "parents", "sister", "brother"}},
	{"household", []string{"clean", "laundry", "dishes", "vacuum", "repair", "trash", "garden", "cook"}},
	{"social", []string{"party", "dinner with", "hang out", "birthday", "friends", "date night"}},
	{"education", []string{"study", "homework", "class", "course", "exam", "read", "learn", "lecture"}},
	{"finance", []string{"pay", "bill", "bank", "budget", "invoice", "tax", "rent"}},
	{"travel", []string{"flight", "hotel", "trip", "pack", "airport", "book ticket", "travel"}},
}

// timeKeywords resolves a missing time from words in the title; applied in
// order, first hit wins, otherwise one hour from now.
var timeKeywords = []struct {
	clock    string
	keywords []string
}{
	{"09:00", []string{"morning", "breakfast"}},
	{"12:30", []string{"lunch"}},
	{"18:00", []string{"dinner", "evening"}},
	{"21:00", []string{"night", "bedtime"}},
	{"14:00", []string{"meeting", "call"}},
	{"15:00", []string{"shopping", "grocery"}},
	{"17:00", []string{"workout", "gym"}},
	{"10:00", []string{"doctor", "appointment"}},
}

// conjunctions split multi-action input in the deterministic fallback.
var conjunctions = []string{
	" and then ",
	" then ",
	" also ",
	" after that ",
	" next ",
	", and ",
	"; ",
}

// Fallback scheduling: first task starts an hour out, successive tasks are
// staggered half an hour apart.
const (
	fallbackLeadMinutes    = 60
	fallbackStaggerMinutes = 30
	minFragmentLen         = 4
)

// Log prefixes.
const (
	LogPrefixExtract = "internal.extractor.Extract"
)
