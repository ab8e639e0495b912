package playlist

import "sync"

// Cursor is the shared counter every facet draws its next playlist index from.
// The counter only moves forward, so concurrent callers never observe the same value.
type Cursor struct {
	mu      sync.Mutex
	counter int
	length  int
}

// NewCursor returns a cursor over a playlist of the given length. The counter starts at -1,
// so the first call to Next yields index 0.
func NewCursor(length int) *Cursor {
	return &Cursor{counter: -1, length: length}
}

// Next advances the counter and returns it modulo the playlist length.
func (c *Cursor) Next() (int, error) {
	if c.length <= 0 {
		return 0, ErrEmpty
	}

	c.mu.Lock()
	c.counter++
	n := c.counter
	c.mu.Unlock()

	return n % c.length, nil
}

// Issued returns how many indices have been handed out so far.
func (c *Cursor) Issued() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counter + 1
}
