package extractor

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestComputeConfidence(t *testing.T) {
	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	baseTask := ExtractedTask{
		Title:    "Walk the dog",
		Date:     "2026-08-26",
		Time:     "12:00",
		Priority: "medium",
		Category: "personal",
	}

	withTime := baseTask
	withTime.Time = "07:30"

	withDate := baseTask
	withDate.Date = "2026-08-27"

	shortTitle := baseTask
	shortTitle.Title = "Run"

	tests := []struct {
		name  string
		tasks []ExtractedTask
		input string
		want  float64
	}{
		{
			name:  "no tasks short input",
			tasks: nil,
			input: "hey",
			want:  0.3, // 0.5 - 0.2
		},
		{
			name:  "one plain task",
			tasks: []ExtractedTask{baseTask},
			input: "walk the dog at noon today",
			want:  0.8, // 0.5 + 0.2 + 0.1 titles
		},
		{
			name:  "distinct time adds signal",
			tasks: []ExtractedTask{withTime},
			input: "walk the dog at 7:30",
			want:  0.9,
		},
		{
			name:  "full signal clamps at one",
			tasks: []ExtractedTask{withTime, withDate},
			input: "walk the dog at 7:30 and again tomorrow",
			want:  1.0,
		},
		{
			name:  "short title drops the title bonus",
			tasks: []ExtractedTask{shortTitle},
			input: "go for a run later",
			want:  0.7,
		},
		{
			name:  "very long input penalized",
			tasks: []ExtractedTask{withTime, withDate},
			input: strings.Repeat("plan everything ", 40),
			want:  0.8, // 1.0 of signal - 0.2 penalty
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := computeConfidence(tc.tasks, tc.input, now)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

// Adding a bonus-bearing feature never lowers the score.
func TestComputeConfidence_MonotoneInSignal(t *testing.T) {
	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	input := "book the flight and pack the bags"

	steps := [][]ExtractedTask{
		nil,
		{{Title: "trip", Date: "2026-08-26", Time: "12:00"}},
		{{Title: "Book the flight", Date: "2026-08-26", Time: "12:00"}},
		{{Title: "Book the flight", Date: "2026-08-26", Time: "08:15"}},
		{{Title: "Book the flight", Date: "2026-09-02", Time: "08:15"}},
	}

	prev := 0.0
	for i, tasks := range steps {
		got := computeConfidence(tasks, input, now)
		if got < prev {
			t.Fatalf("step %d: confidence dropped from %v to %v", i, prev, got)
		}
		if got < MinConfidence || got > MaxConfidence {
			t.Fatalf("step %d: confidence %v out of bounds", i, got)
		}
		prev = got
	}
}
