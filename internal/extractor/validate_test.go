package extractor

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

var validateNow = time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

func TestValidateTask_Idempotent(t *testing.T) {
	tests := []struct {
		name string
		task ExtractedTask
	}{
		{
			name: "fully specified",
			task: ExtractedTask{
				Title:       "Submit expense report",
				Description: "Q3 receipts",
				Date:        "2026-09-01",
				Time:        "09:30",
				Priority:    "high",
				Category:    "work",
			},
		},
		{
			name: "boundary title length",
			task: ExtractedTask{
				Title:       strings.Repeat("x", MaxTitleLen),
				Description: "long",
				Date:        "2026-08-26",
				Time:        "23:59",
				Priority:    "low",
				Category:    "travel",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			once := validateTask(tc.task, validateNow)
			if once != tc.task {
				t.Errorf("valid task changed: %+v -> %+v", tc.task, once)
			}
			twice := validateTask(once, validateNow)
			if twice != once {
				t.Errorf("second pass changed output: %+v -> %+v", once, twice)
			}
		})
	}
}

func TestValidateTask_Repairs(t *testing.T) {
	tests := []struct {
		name string
		in   ExtractedTask
		want ExtractedTask
	}{
		{
			name: "all fields missing",
			in:   ExtractedTask{},
			want: ExtractedTask{
				Title:       DefaultTitle,
				Description: DefaultTitle,
				Date:        "2026-08-26",
				Time:        "11:00",
				Priority:    DefaultPriority,
				Category:    DefaultCategory,
			},
		},
		{
			name: "overlong title truncated",
			in:   ExtractedTask{Title: strings.Repeat("a", 80), Date: "2026-08-26", Time: "08:00", Priority: "low", Category: "work"},
			want: ExtractedTask{Title: strings.Repeat("a", MaxTitleLen), Description: strings.Repeat("a", MaxTitleLen), Date: "2026-08-26", Time: "08:00", Priority: "low", Category: "work"},
		},
		{
			name: "overlong multibyte title truncated between runes",
			in:   ExtractedTask{Title: "a" + strings.Repeat("日", 70), Date: "2026-08-26", Time: "08:00", Priority: "low", Category: "work"},
			want: ExtractedTask{Title: "a" + strings.Repeat("日", 59), Description: "a" + strings.Repeat("日", 59), Date: "2026-08-26", Time: "08:00", Priority: "low", Category: "work"},
		},
		{
			name: "impossible calendar date",
			in:   ExtractedTask{Title: "Dentist cleaning", Date: "2026-02-30", Time: "10:00", Priority: "medium", Category: "health"},
			want: ExtractedTask{Title: "Dentist cleaning", Description: "Dentist cleaning", Date: "2026-08-26", Time: "10:00", Priority: "medium", Category: "health"},
		},
		{
			name: "out-of-range clock",
			in:   ExtractedTask{Title: "Pay rent", Date: "2026-09-01", Time: "25:00", Priority: "high", Category: "finance"},
			want: ExtractedTask{Title: "Pay rent", Description: "Pay rent", Date: "2026-09-01", Time: "11:00", Priority: "high", Category: "finance"},
		},
		{
			name: "unknown priority and category",
			in:   ExtractedTask{Title: "Study for the exam", Date: "2026-08-27", Time: "19:00", Priority: "urgent", Category: "school"},
			want: ExtractedTask{Title: "Study for the exam", Description: "Study for the exam", Date: "2026-08-27", Time: "19:00", Priority: DefaultPriority, Category: "education"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := validateTask(tc.in, validateNow)
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
			if !utf8.ValidString(got.Title) {
				t.Errorf("repaired title is not valid UTF-8: %q", got.Title)
			}
		})
	}
}

func TestInferTime_KeywordBands(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"breakfast with Sam", "09:00"},
		{"Lunch break", "12:30"},
		{"dinner reservation", "18:00"},
		{"bedtime reading", "21:00"},
		{"standup meeting", "14:00"},
		{"grocery run", "15:00"},
		{"gym session", "17:00"},
		{"doctor visit", "10:00"},
		{"no keyword here", "11:00"}, // one hour from validateNow
	}

	for _, tc := range tests {
		t.Run(tc.title, func(t *testing.T) {
			if got := inferTime(tc.title, validateNow); got != tc.want {
				t.Errorf("inferTime(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}

func TestInferCategory_DefaultsToPersonal(t *testing.T) {
	if got := inferCategory("stare at the wall"); got != DefaultCategory {
		t.Errorf("got %q, want %q", got, DefaultCategory)
	}
	// "grocery" is listed under shopping before household's "cook" would
	// ever be reached.
	if got := inferCategory("cook after the grocery run"); got != "shopping" {
		t.Errorf("got %q, want shopping (rule order)", got)
	}
}
