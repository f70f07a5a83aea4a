// Package operators provides the bulk execution primitives the algorithm
// phases run on: a keep/drop filter over an edge frontier, and a parallel
// for over the vertex domain. Each call chunks its domain across the
// context's threads and fully completes (all writes visible) before
// returning; phases are therefore separated by full barriers.
package operators

import (
	"runtime"
	"sync"
)

// Context selects how bulk operators execute. The analog of a device
// context: it is threaded through every bulk call.
type Context struct {
	NumThreads uint32
}

func NewContext(numThreads uint32) *Context {
	if numThreads == 0 {
		numThreads = uint32(runtime.NumCPU())
	}
	return &Context{NumThreads: numThreads}
}

// Frontier is a compact set of live edge ids.
type Frontier struct {
	ids   []int32
	parts [][]int32 // per-thread compaction scratch, reused across passes
}

// NewEdgeFrontier returns a frontier filled with the sequence [0, numEdges).
func NewEdgeFrontier(numEdges int32) *Frontier {
	f := &Frontier{ids: make([]int32, numEdges)}
	for e := int32(0); e < numEdges; e++ {
		f.ids[e] = e
	}
	return f
}

func (f *Frontier) Size() int {
	return len(f.ids)
}

// Ids exposes the live set; callers must not mutate it.
func (f *Frontier) Ids() []int32 {
	return f.ids
}

// Filter compacts the frontier in place, keeping edges where keep is true.
// The predicate may have side effects; it is called exactly once per live
// edge, in no particular order, concurrently across threads.
func (ctx *Context) Filter(f *Frontier, keep func(e int32) bool) {
	ctx.FilterInto(f, f, keep)
}

// FilterInto compacts in's live edges into out (out may be in). All
// predicate calls complete before out is rewritten.
func (ctx *Context) FilterInto(in *Frontier, out *Frontier, keep func(e int32) bool) {
	numThreads := int(ctx.NumThreads)
	if len(out.parts) < numThreads {
		out.parts = make([][]int32, numThreads)
	}
	n := len(in.ids)
	chunk := (n + numThreads - 1) / numThreads

	var wg sync.WaitGroup
	for t := 0; t < numThreads; t++ {
		start := t * chunk
		if start >= n {
			out.parts[t] = out.parts[t][:0]
			continue
		}
		end := min(start+chunk, n)
		wg.Add(1)
		go func(t, start, end int) {
			local := out.parts[t][:0]
			for i := start; i < end; i++ {
				if e := in.ids[i]; keep(e) {
					local = append(local, e)
				}
			}
			out.parts[t] = local
			wg.Done()
		}(t, start, end)
	}
	wg.Wait()

	out.ids = out.ids[:0]
	for t := 0; t < numThreads; t++ {
		out.ids = append(out.ids, out.parts[t]...)
	}
}

// ForEachVertex applies the function to every vertex in [0, numVertices),
// in no particular order, concurrently across threads.
func (ctx *Context) ForEachVertex(numVertices uint32, apply func(v uint32)) {
	numThreads := uint32(ctx.NumThreads)
	chunk := (numVertices + numThreads - 1) / numThreads

	var wg sync.WaitGroup
	for t := uint32(0); t < numThreads; t++ {
		start := t * chunk
		if start >= numVertices {
			break
		}
		end := min(start+chunk, numVertices)
		wg.Add(1)
		go func(start, end uint32) {
			for v := start; v < end; v++ {
				apply(v)
			}
			wg.Done()
		}(start, end)
	}
	wg.Wait()
}
