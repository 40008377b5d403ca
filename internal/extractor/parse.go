package extractor

import (
	"encoding/json"
	"strings"

	"companion-core/pkg/jsonarray"
)

// parseTasks pulls the first JSON array out of the model's free-text reply
// and keeps the entries that carry a usable title. A nil result means the
// reply held nothing usable and the caller should fall back to splitting.
func parseTasks(reply string) []ExtractedTask {
	raw, ok := jsonarray.Extract(reply)
	if !ok {
		return nil
	}

	var parsed []ExtractedTask
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil
	}

	usable := make([]ExtractedTask, 0, len(parsed))
	for _, t := range parsed {
		if strings.TrimSpace(t.Title) == "" {
			continue
		}
		usable = append(usable, t)
	}

	if len(usable) == 0 {
		return nil
	}
	return usable
}
