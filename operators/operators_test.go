package operators

import (
	"math/rand"
	"sync/atomic"
	"testing"
)

func Test_EdgeSequence(t *testing.T) {
	f := NewEdgeFrontier(10)
	if f.Size() != 10 {
		t.Error("size mismatch ", f.Size())
	}
	for i, e := range f.Ids() {
		if int32(i) != e {
			t.Error("sequence mismatch at ", i, ": ", e)
		}
	}
	if NewEdgeFrontier(0).Size() != 0 {
		t.Error("empty sequence not empty")
	}
}

func Test_FilterInPlace(t *testing.T) {
	for threads := uint32(1); threads <= 8; threads++ {
		ctx := NewContext(threads)
		f := NewEdgeFrontier(1000)
		ctx.Filter(f, func(e int32) bool { return e%2 == 0 })
		if f.Size() != 500 {
			t.Error("size mismatch ", f.Size())
		}
		// Compaction preserves relative order.
		for i, e := range f.Ids() {
			if e != int32(i*2) {
				t.Error("order mismatch at ", i, ": ", e)
			}
		}

		// Chained narrowing on the same frontier object.
		ctx.Filter(f, func(e int32) bool { return e%4 == 0 })
		ctx.Filter(f, func(e int32) bool { return e < 100 })
		if f.Size() != 25 {
			t.Error("chained size mismatch ", f.Size())
		}
	}
}

func Test_FilterIntoCallsOnce(t *testing.T) {
	for threads := uint32(1); threads <= 8; threads++ {
		ctx := NewContext(threads)
		in := NewEdgeFrontier(777)
		out := NewEdgeFrontier(0)
		calls := int64(0)
		ctx.FilterInto(in, out, func(e int32) bool {
			atomic.AddInt64(&calls, 1)
			return e >= 700
		})
		if calls != 777 {
			t.Error("predicate calls ", calls)
		}
		if out.Size() != 77 {
			t.Error("out size ", out.Size())
		}
		if in.Size() != 777 {
			t.Error("in mutated, size ", in.Size())
		}
	}
}

func Test_FilterEmpty(t *testing.T) {
	ctx := NewContext(4)
	f := NewEdgeFrontier(0)
	ctx.Filter(f, func(int32) bool { return true })
	if f.Size() != 0 {
		t.Error("empty filter grew ", f.Size())
	}

	f = NewEdgeFrontier(100)
	ctx.Filter(f, func(int32) bool { return false })
	if f.Size() != 0 {
		t.Error("drop-all left ", f.Size())
	}
	ctx.Filter(f, func(int32) bool { return true })
	if f.Size() != 0 {
		t.Error("filter resurrected edges ", f.Size())
	}
}

func Test_ForEachVertex(t *testing.T) {
	for tcount := 0; tcount < 10; tcount++ {
		ctx := NewContext(uint32(rand.Intn(8-1) + 1))
		const numVertices = 10007 // prime, to exercise ragged chunks
		visits := make([]int32, numVertices)
		ctx.ForEachVertex(numVertices, func(v uint32) {
			atomic.AddInt32(&visits[v], 1)
		})
		for v := uint32(0); v < numVertices; v++ {
			if visits[v] != 1 {
				t.Fatal("vertex ", v, " visited ", visits[v], " times")
			}
		}
		ctx.ForEachVertex(0, func(v uint32) { t.Error("visited vertex in empty domain") })
	}
}

// Writes from one bulk call must be visible to the next without further
// synchronization; this is the inter-phase barrier the phases rely on.
func Test_BarrierVisibility(t *testing.T) {
	ctx := NewContext(8)
	const numVertices = 4096
	values := make([]uint32, numVertices)
	ctx.ForEachVertex(numVertices, func(v uint32) { values[v] = v + 1 })
	ctx.ForEachVertex(numVertices, func(v uint32) {
		if values[v] != v+1 {
			t.Error("stale read at ", v)
		}
	})
}
