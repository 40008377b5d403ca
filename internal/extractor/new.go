package extractor

import (
	"time"

	"companion-core/pkg/datemath"
	"companion-core/pkg/log"
)

// Extractor turns free text into validated task records, asking the
// responder first and falling back to deterministic splitting.
type Extractor struct {
	responder Responder
	dateMath  *datemath.Parser
	l         log.Logger
	now       func() time.Time
}

// New creates a new Extractor.
func New(responder Responder, dateMath *datemath.Parser, l log.Logger) *Extractor {
	return &Extractor{
		responder: responder,
		dateMath:  dateMath,
		l:         l,
		now:       time.Now,
	}
}
