package geometry

import "sync/atomic"

// IDAllocator hands out unique, monotonically increasing shape identities.
// It is safe for concurrent use.
type IDAllocator struct {
	last atomic.Uint32
}

// NewIDAllocator creates an allocator whose first ID is 1
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// NextID returns the next identity
func (a *IDAllocator) NextID() uint32 {
	return a.last.Add(1)
}
