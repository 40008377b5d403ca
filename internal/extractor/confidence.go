package extractor

import "time"

// computeConfidence scores the extraction deterministically from features of
// the task list and input length. More signal never lowers the score.
func computeConfidence(tasks []ExtractedTask, input string, now time.Time) float64 {
	confidence := 0.5
	today := now.Format("2006-01-02")

	if len(tasks) > 0 {
		confidence += 0.2

		allTitlesSubstantial := true
		anyNonDefaultTime := false
		anyNonTodayDate := false
		for _, t := range tasks {
			if len(t.Title) <= 5 {
				allTitlesSubstantial = false
			}
			if t.Time != "12:00" {
				anyNonDefaultTime = true
			}
			if t.Date != today {
				anyNonTodayDate = true
			}
		}

		if allTitlesSubstantial {
			confidence += 0.1
		}
		if anyNonDefaultTime {
			confidence += 0.1
		}
		if anyNonTodayDate {
			confidence += 0.1
		}
	}

	if len(input) < 10 || len(input) > 500 {
		confidence -= 0.2
	}

	if confidence < MinConfidence {
		return MinConfidence
	}
	if confidence > MaxConfidence {
		return MaxConfidence
	}
	return confidence
}
