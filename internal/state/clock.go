package state

import (
	"github.com/google/uuid"
)

// StrokeClock hands out stroke IDs and counts the segments of the stroke
// in progress.
type StrokeClock struct {
	current  string
	segments int
}

// Begin starts a new stroke and returns its ID.
func (c *StrokeClock) Begin() string {
	c.current = uuid.NewString()
	c.segments = 0
	return c.current
}

// Tick records one more segment of the current stroke.
func (c *StrokeClock) Tick() int {
	c.segments++
	return c.segments
}

// End finishes the current stroke and returns its ID and segment count.
func (c *StrokeClock) End() (string, int) {
	id, n := c.current, c.segments
	c.current, c.segments = "", 0
	return id, n
}

func (c *StrokeClock) Current() string {
	return c.current
}
