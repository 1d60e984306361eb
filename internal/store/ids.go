package store

import (
	"sync"
	"time"
)

// IDGenerator issues timestamp-derived integer ids. Ids keep the original
// millisecond-timestamp format (page and character documents are named
// after them) but are guaranteed strictly increasing: when two ids are
// requested within one clock tick the second one is bumped forward instead
// of colliding.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
}

// NewIDGenerator returns a generator starting from the current time.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next unique id.
func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
