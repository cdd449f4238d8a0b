package lox

// Stream is any lazy sequence of T. Next returns the next element and true,
// or the zero value and false once the stream is exhausted.
type Stream[T any] interface {
	Next() (T, bool)
}

type slot[T any] struct {
	val T
	ok  bool
}

// Prefetched wraps a Stream with fixed-depth forward lookahead. A circular
// buffer of depth slots holds the next elements; Next performs one
// slot-replace and one modular increment.
type Prefetched[T any] struct {
	src  Stream[T]
	ring []slot[T]
	head int
}

// NewPrefetched primes the buffer by pulling depth elements from src.
// A missing tail is stored as absent slots. With depth 0, Peek and PeekNth
// always report absence and Next degenerates to the underlying stream.
func NewPrefetched[T any](src Stream[T], depth int) *Prefetched[T] {
	p := &Prefetched[T]{
		src:  src,
		ring: make([]slot[T], depth),
	}
	for i := 0; i < depth; i++ {
		p.Next()
	}
	return p
}

// Peek returns the next element without consuming it.
func (p *Prefetched[T]) Peek() (T, bool) {
	return p.PeekNth(0)
}

// PeekNth returns the element n positions ahead without consuming anything.
// Absence is reported when n is at or beyond the lookahead depth, or when
// the underlying stream ran out within n of the head.
func (p *Prefetched[T]) PeekNth(n int) (T, bool) {
	if n >= len(p.ring) {
		var zero T
		return zero, false
	}
	s := p.ring[(p.head+n)%len(p.ring)]
	return s.val, s.ok
}

// Next returns the buffered next element and slides one position forward,
// refilling the tail slot from the underlying stream.
func (p *Prefetched[T]) Next() (T, bool) {
	v, ok := p.src.Next()
	if len(p.ring) != 0 {
		v, p.ring[p.head].val = p.ring[p.head].val, v
		ok, p.ring[p.head].ok = p.ring[p.head].ok, ok
		p.head = (p.head + 1) % len(p.ring)
	}
	return v, ok
}
