package extractor

import (
	"context"
	"time"

	"companion-core/internal/model"
	"companion-core/pkg/personality"
)

// Extract turns free text into validated task records. It never fails:
// unusable model output falls back to deterministic splitting, and an
// unexpected panic anywhere in the pipeline degrades to fallback tasks with
// a fixed low confidence.
func (e *Extractor) Extract(ctx context.Context, input string, profile *model.UserProfile, hints *Hints) (result Result) {
	start := time.Now()

	now := e.now()
	if hints != nil && hints.CurrentTime != nil {
		now = *hints.CurrentTime
	}

	defer func() {
		if r := recover(); r != nil {
			e.l.Errorf(ctx, "%s: recovered from %v, degrading to fallback", LogPrefixExtract, r)
			result = Result{
				Tasks:            splitIntoTasks(input, now),
				OriginalInput:    input,
				Confidence:       DegradedConfidence,
				ProcessingTimeMs: time.Since(start).Milliseconds(),
			}
		}
	}()

	settings := personality.Settings{}
	if profile != nil {
		settings = profile.Personality
	}

	prompt := e.buildExtractionPrompt(input, profile, now)
	reply := e.responder.GenerateResponse(ctx, prompt, settings)

	tasks := parseTasks(reply)
	if tasks == nil {
		e.l.Infof(ctx, "%s: reply held no usable JSON tasks, using fallback splitter", LogPrefixExtract)
		tasks = splitIntoTasks(input, now)
	} else {
		for i := range tasks {
			tasks[i] = validateTask(tasks[i], now)
		}
	}

	return Result{
		Tasks:            tasks,
		OriginalInput:    input,
		Confidence:       computeConfidence(tasks, input, now),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
}
