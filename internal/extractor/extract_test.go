package extractor

import (
	"context"
	"strings"
	"testing"
	"time"

	"companion-core/internal/model"
	"companion-core/pkg/datemath"
	"companion-core/pkg/log"
	"companion-core/pkg/personality"
)

// stubResponder is a test implementation of the Responder interface.
type stubResponder struct {
	reply      string
	lastPrompt string
}

func (s *stubResponder) GenerateResponse(ctx context.Context, message string, settings personality.Settings) string {
	s.lastPrompt = message
	return s.reply
}

func newTestExtractor(t *testing.T, reply string) (*Extractor, *stubResponder) {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	stub := &stubResponder{reply: reply}
	return New(stub, dm, log.InitNop()), stub
}

// fixedNow is a Wednesday morning so staggered fallback times stay on the
// same calendar day.
var fixedNow = time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

func hintsAt(at time.Time) *Hints {
	return &Hints{CurrentTime: &at}
}

func TestExtract_FallbackSplitsConjoinedInput(t *testing.T) {
	e, _ := newTestExtractor(t, "Sorry, I can only chat! No JSON here.")

	result := e.Extract(context.Background(), "buy milk and then call mom", nil, hintsAt(fixedNow))

	if len(result.Tasks) != 2 {
		t.Fatalf("got %d tasks, want 2: %+v", len(result.Tasks), result.Tasks)
	}

	first, second := result.Tasks[0], result.Tasks[1]
	if first.Title != "buy milk" {
		t.Errorf("first title = %q, want %q", first.Title, "buy milk")
	}
	if second.Title != "call mom" {
		t.Errorf("second title = %q, want %q", second.Title, "call mom")
	}

	today := fixedNow.Format("2006-01-02")
	if first.Date != today || second.Date != today {
		t.Errorf("dates = %q/%q, want both %q", first.Date, second.Date, today)
	}

	if first.Time != "11:00" || second.Time != "11:30" {
		t.Errorf("times = %q/%q, want 11:00 and 11:30", first.Time, second.Time)
	}

	if first.Category != "shopping" {
		t.Errorf("first category = %q, want shopping", first.Category)
	}
	if second.Category != "family" {
		t.Errorf("second category = %q, want family", second.Category)
	}

	if result.Confidence < MinConfidence || result.Confidence > MaxConfidence {
		t.Errorf("confidence %v out of bounds", result.Confidence)
	}
	if result.OriginalInput != "buy milk and then call mom" {
		t.Errorf("original input = %q", result.OriginalInput)
	}
}

func TestSplitIntoTasks_LongerConjunctionsWinOverShorter(t *testing.T) {
	tasks := splitIntoTasks("buy milk, and then call mom", fixedNow)

	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2: %+v", len(tasks), tasks)
	}
	if tasks[0].Title != "buy milk" {
		t.Errorf("first title = %q, want %q", tasks[0].Title, "buy milk")
	}
	if tasks[1].Title != "call mom" {
		t.Errorf("second title = %q, want %q", tasks[1].Title, "call mom")
	}
}

func TestExtract_EmptyInputYieldsSingleTask(t *testing.T) {
	e, _ := newTestExtractor(t, "nothing structured here")

	result := e.Extract(context.Background(), "", nil, hintsAt(fixedNow))

	if len(result.Tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(result.Tasks))
	}
	if result.Tasks[0].Title != DefaultTitle {
		t.Errorf("title = %q, want %q", result.Tasks[0].Title, DefaultTitle)
	}
	if result.Confidence < MinConfidence || result.Confidence > MaxConfidence {
		t.Errorf("confidence %v out of bounds", result.Confidence)
	}
	if result.ProcessingTimeMs < 0 {
		t.Errorf("processing time %d is negative", result.ProcessingTimeMs)
	}
}

func TestExtract_ParsesModelJSON(t *testing.T) {
	reply := `Here are your tasks:
[
  {"title": "Finish quarterly report", "description": "", "date": "2026-08-28", "time": "14:00", "priority": "high", "category": "work"},
  {"title": "Gym workout", "description": "Leg day", "date": "2026-08-26", "time": "", "priority": "", "category": "fitness"}
]
Hope that helps!`
	e, _ := newTestExtractor(t, reply)

	result := e.Extract(context.Background(), "finish the report friday and hit the gym tonight", nil, hintsAt(fixedNow))

	if len(result.Tasks) != 2 {
		t.Fatalf("got %d tasks, want 2: %+v", len(result.Tasks), result.Tasks)
	}

	first := result.Tasks[0]
	if first.Title != "Finish quarterly report" || first.Priority != "high" || first.Category != "work" {
		t.Errorf("first task not preserved: %+v", first)
	}
	if first.Description != first.Title {
		t.Errorf("blank description should default to title, got %q", first.Description)
	}

	second := result.Tasks[1]
	if second.Time != "17:00" {
		t.Errorf("blank time should infer 17:00 from 'workout', got %q", second.Time)
	}
	if second.Priority != DefaultPriority {
		t.Errorf("blank priority should default, got %q", second.Priority)
	}
	if second.Category != "health" {
		t.Errorf("unknown category should be re-inferred, got %q", second.Category)
	}
}

func TestExtract_BlankTitlesDiscardedThenFallback(t *testing.T) {
	e, _ := newTestExtractor(t, `[{"title": "   "}, {"title": ""}]`)

	result := e.Extract(context.Background(), "water the plants", nil, hintsAt(fixedNow))

	if len(result.Tasks) != 1 {
		t.Fatalf("got %d tasks, want 1 fallback task", len(result.Tasks))
	}
	if result.Tasks[0].Title != "water the plants" {
		t.Errorf("title = %q, want the whole input", result.Tasks[0].Title)
	}
}

func TestExtract_PromptCarriesContext(t *testing.T) {
	e, stub := newTestExtractor(t, "no json")
	profile := &model.UserProfile{
		ID:          "u1",
		Name:        "Dana",
		Personality: personality.Settings{IntensityLevel: 8, StyleType: 5},
	}

	e.Extract(context.Background(), "plan my weekend", profile, hintsAt(fixedNow))

	prompt := stub.lastPrompt
	for _, want := range []string{
		"plan my weekend",
		"Dana",
		"2026-08-26",          // current date
		"Wednesday",           // weekday
		"Monday 2026-08-31",   // next week rule resolved
		"Saturday 2026-08-29", // weekend rule resolved
		`"tonight"`,           // relative rule listed
		`"tomorrow morning"`,  // relative rule listed
		"ONLY a valid JSON array",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestExtract_NilProfileUsesDefaultPersonality(t *testing.T) {
	dm, _ := datemath.NewParser("UTC")

	var gotSettings personality.Settings
	capture := responderFunc(func(ctx context.Context, message string, settings personality.Settings) string {
		gotSettings = settings
		return "no json"
	})

	e := New(capture, dm, log.InitNop())
	e.Extract(context.Background(), "anything", nil, hintsAt(fixedNow))

	if gotSettings != (personality.Settings{}) {
		t.Errorf("settings = %+v, want zero value", gotSettings)
	}
}

// responderFunc adapts a function to the Responder interface.
type responderFunc func(ctx context.Context, message string, settings personality.Settings) string

func (f responderFunc) GenerateResponse(ctx context.Context, message string, settings personality.Settings) string {
	return f(ctx, message, settings)
}
