// Package pool wraps sync.Pool with a typed API for the short-lived
// buffers a parse allocates, chiefly the token run gathered for a
// multi-value argument.
package pool

import "sync"

// Pool is a typed sync.Pool with an optional reset hook run on Get.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// New creates a pool backed by factory.
func New[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{New: func() any { return factory() }},
	}
}

// NewWithReset creates a pool whose objects are passed to reset before
// being handed out again.
func NewWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := New(factory)
	p.reset = reset
	return p
}

// Get returns a pooled or freshly built object.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put hands obj back. Nil is ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// maxRetained caps the capacity of slices returned to a slice pool so one
// huge argument vector does not keep a huge buffer alive.
const maxRetained = 1024

// SlicePool pools slices of E, truncated to length zero on reuse.
type SlicePool[E any] struct {
	p *Pool[[]E]
}

// NewSlicePool creates a slice pool whose fresh slices have capacity defaultCap.
func NewSlicePool[E any](defaultCap int) *SlicePool[E] {
	return &SlicePool[E]{
		p: NewWithReset(
			func() *[]E {
				s := make([]E, 0, defaultCap)
				return &s
			},
			func(s *[]E) {
				clear(*s)
				*s = (*s)[:0]
			},
		),
	}
}

// Get returns an empty slice.
func (sp *SlicePool[E]) Get() *[]E { return sp.p.Get() }

// Put returns s unless it grew past the retention cap.
func (sp *SlicePool[E]) Put(s *[]E) {
	if s == nil || cap(*s) > maxRetained {
		return
	}
	sp.p.Put(s)
}

// Tokens pools raw argument runs.
var Tokens = NewSlicePool[string](8)

// GetTokens returns an empty token buffer.
func GetTokens() *[]string { return Tokens.Get() }

// PutTokens returns a token buffer.
func PutTokens(s *[]string) { Tokens.Put(s) }
