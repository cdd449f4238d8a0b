package lox

import "testing"

type sliceStream struct {
	xs []int
	i  int
}

func (s *sliceStream) Next() (int, bool) {
	if s.i >= len(s.xs) {
		return 0, false
	}
	v := s.xs[s.i]
	s.i++
	return v, true
}

func wantPeek(t *testing.T, p *Prefetched[int], n, want int, wantOK bool) {
	t.Helper()
	got, ok := p.PeekNth(n)
	if ok != wantOK || (ok && got != want) {
		t.Fatalf("PeekNth(%d) = (%d, %v), want (%d, %v)", n, got, ok, want, wantOK)
	}
}

func wantNext(t *testing.T, p *Prefetched[int], want int, wantOK bool) {
	t.Helper()
	got, ok := p.Next()
	if ok != wantOK || (ok && got != want) {
		t.Fatalf("Next() = (%d, %v), want (%d, %v)", got, ok, want, wantOK)
	}
}

func Test_Prefetched_Simple(t *testing.T) {
	p := NewPrefetched[int](&sliceStream{xs: []int{1, 2, 3}}, 2)

	wantPeek(t, p, 0, 1, true)
	wantPeek(t, p, 1, 2, true)
	wantPeek(t, p, 2, 0, false)

	wantNext(t, p, 1, true)
	wantPeek(t, p, 0, 2, true)
	wantPeek(t, p, 1, 3, true)
	wantPeek(t, p, 2, 0, false)

	wantNext(t, p, 2, true)
	wantPeek(t, p, 0, 3, true)
	wantPeek(t, p, 1, 0, false)

	wantNext(t, p, 3, true)
	wantPeek(t, p, 0, 0, false)
	wantNext(t, p, 0, false)
}

func Test_Prefetched_ZeroDepth(t *testing.T) {
	p := NewPrefetched[int](&sliceStream{xs: []int{1, 2, 3}}, 0)

	wantPeek(t, p, 0, 0, false)
	wantNext(t, p, 1, true)
	wantNext(t, p, 2, true)
	wantNext(t, p, 3, true)
	wantNext(t, p, 0, false)
}

func Test_Prefetched_Overallocated(t *testing.T) {
	p := NewPrefetched[int](&sliceStream{xs: []int{1, 2, 3}}, 5)

	wantNext(t, p, 1, true)
	wantNext(t, p, 2, true)
	wantNext(t, p, 3, true)
	wantPeek(t, p, 0, 0, false)
	wantPeek(t, p, 1, 0, false)
	wantPeek(t, p, 2, 0, false)
	wantNext(t, p, 0, false)
}
