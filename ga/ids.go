package ga

import "sync/atomic"

// IDSequence hands out monotonically increasing tour ids. Ids are never
// reused. A Population owns one sequence; there is no process-wide counter.
type IDSequence struct {
	next atomic.Int64
}

// NewIDSequence returns a sequence whose first id is start.
func NewIDSequence(start int64) *IDSequence {
	s := &IDSequence{}
	s.next.Store(start)

	return s
}

// Next returns the next id.
func (s *IDSequence) Next() int64 {
	return s.next.Add(1) - 1
}

// Peek returns the id the next call to Next will return.
func (s *IDSequence) Peek() int64 {
	return s.next.Load()
}
