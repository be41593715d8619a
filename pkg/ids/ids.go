// Package ids mints the human-visible identifiers printed on tickets and
// receipts (TX-123456, CMD-123456). Uniqueness is decoupled from wall-clock
// resolution: a monotonic guard bumps the body when two mints land on the
// same millisecond.
package ids

import (
	"fmt"
	"sync"
	"time"
)

// Generator mints a display identifier for the given prefix.
type Generator interface {
	Next(prefix string) string
}

type timeGenerator struct {
	mu    sync.Mutex
	now   func() time.Time
	last  int64
	bodyN int
}

// NewGenerator returns the default time-derived generator.
func NewGenerator() Generator {
	return &timeGenerator{now: time.Now}
}

// NewGeneratorAt uses the provided clock; tests inject a frozen one.
func NewGeneratorAt(now func() time.Time) Generator {
	if now == nil {
		now = time.Now
	}
	return &timeGenerator{now: now}
}

func (g *timeGenerator) Next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	millis := g.now().UnixMilli()
	if millis <= g.last {
		g.bodyN++
		millis = g.last
	} else {
		g.bodyN = 0
		g.last = millis
	}

	body := (millis + int64(g.bodyN)) % 1_000_000
	return fmt.Sprintf("%s%06d", prefix, body)
}
