package mst

import (
	"math"
	"sync/atomic"

	"github.com/ScottSallinen/boruvka/operators"
)

// Sentinel for "no edge elected"; any real edge id compares greater.
const noNeighbor = int32(-1)

// Owns every per-vertex array and scalar cell the phases mutate.
// All per-vertex arrays are sized once to the vertex count; component ids
// are vertex ids, so the component scratch is indexed by (root) vertex.
type state struct {
	roots       []uint32  // current component representative per vertex
	newRoots    []uint32  // next generation, written during commit and contraction
	minWeight   []float64 // cheapest candidate weight seen this round, per component
	minNeighbor []int32   // edge id achieving (or tying) minWeight, per component

	// Scalar accumulator cells; mutated only via atomics during commit.
	mstWeight      float64
	mstEdges       int64
	liveComponents int64
}

func newState(numVertices uint32) *state {
	return &state{
		roots:       make([]uint32, numVertices),
		newRoots:    make([]uint32, numVertices),
		minWeight:   make([]float64, numVertices),
		minNeighbor: make([]int32, numVertices),
	}
}

// Every vertex starts as its own component.
func (s *state) initialize(ctx *operators.Context, numVertices uint32) {
	s.mstWeight = 0
	s.mstEdges = 0
	s.liveComponents = int64(numVertices)
	ctx.ForEachVertex(numVertices, func(v uint32) {
		s.roots[v] = v
		s.newRoots[v] = v
		s.minWeight[v] = math.Inf(1)
		s.minNeighbor[v] = noNeighbor
	})
}

// Per-round scratch reset; roots and the accumulators persist across rounds.
func (s *state) resetScratch(ctx *operators.Context, numVertices uint32) {
	ctx.ForEachVertex(numVertices, func(v uint32) {
		s.minWeight[v] = math.Inf(1)
		s.minNeighbor[v] = noNeighbor
	})
}

func (s *state) committedEdges() int64 {
	return atomic.LoadInt64(&s.mstEdges)
}
