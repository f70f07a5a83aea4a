// Package mst computes the minimum spanning tree of a connected, weighted,
// undirected graph with a bulk-parallel variant of Boruvka's algorithm.
//
// Each round, every component proposes its cheapest outgoing edge under
// atomic-min, elects exactly one winner among weight ties under atomic-max
// over edge ids (highest id wins), commits the elected edges, and contracts
// the merged components with pointer jumping. The round's phases run as bulk
// operators with a full barrier between them; within a phase the only
// mutation discipline is atomics on independently addressed cells.
package mst

import (
	"errors"
	"math"
	"math/bits"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/boruvka/graph"
	"github.com/ScottSallinen/boruvka/operators"
	"github.com/ScottSallinen/boruvka/utils"
)

var (
	// The convergence rule (one live component) can never be met on
	// disconnected input; detected via the round cap or an exhausted
	// candidate set rather than hanging.
	ErrNotConnected = errors.New("graph is not connected")

	// A round committed no edges while components and candidate edges
	// remain: the shared-destination commit race corrupted the forest,
	// or there is a logic defect. The whole run is the unit of retry.
	ErrNoProgress = errors.New("no progress: round committed no edges")
)

type Options struct {
	// Fail-safe bound on rounds; 0 derives 2*log2(V)+8 from the vertex
	// count (a connected graph converges in at most log2(V) rounds).
	MaxRounds int
}

type Result struct {
	Weight float64 // total weight of the committed edges
	Edges  int64   // number of committed edges; V-1 on success
	Rounds int
}

type enactor struct {
	ctx *operators.Context
	g   *graph.Graph
	st  *state

	// Candidate edges still eligible for the tree. Narrowed across rounds:
	// an edge leaves permanently only once both endpoints share a component.
	candidates *operators.Frontier
	// Per-round working set, rebuilt by the selection phase each round.
	work *operators.Frontier

	corrupted int32 // set when contraction finds a root cycle
	rounds    int
}

func newEnactor(ctx *operators.Context, g *graph.Graph) *enactor {
	e := &enactor{
		ctx:        ctx,
		g:          g,
		st:         newState(g.VertexCount()),
		candidates: operators.NewEdgeFrontier(g.EdgeCount()),
		work:       operators.NewEdgeFrontier(0),
	}
	e.st.initialize(ctx, g.VertexCount())
	return e
}

// Keep only edges whose endpoints are in different components. Edges that
// fail this can never re-enter consideration, so this prunes the
// cross-round candidate set.
func (e *enactor) crossComponent(eid int32) bool {
	return e.st.roots[e.g.SourceVertex(eid)] != e.st.roots[e.g.DestinationVertex(eid)]
}

// Propose each candidate as the cheapest outgoing edge of its source's
// component. Survives if it was an improvement at the instant of its own
// update; a later improvement by a racing thread is handled in selection.
func (e *enactor) relax(eid int32) bool {
	source := e.st.roots[e.g.SourceVertex(eid)]
	weight := e.g.EdgeWeight(eid)
	return weight < utils.AtomicMinFloat64(&e.st.minWeight[source], weight)
}

// Elect one edge id per component among the weight ties: highest id wins.
// Runs over the full candidate set, not just relax survivors, so ties that
// lost the relax race still contend; the winner is schedule independent.
func (e *enactor) selectNeighbor(eid int32) bool {
	source := e.st.roots[e.g.SourceVertex(eid)]
	if e.g.EdgeWeight(eid) != e.st.minWeight[source] {
		return false
	}
	return utils.AtomicMaxInt32(&e.st.minNeighbor[source], eid) < eid
}

// Keep only each component's elected edge.
func (e *enactor) elected(eid int32) bool {
	return eid == e.st.minNeighbor[e.st.roots[e.g.SourceVertex(eid)]]
}

// Reports whether the elected edge of dst's component points straight back
// at (dst, src), i.e. the two components reciprocally elected each other.
func (e *enactor) pointsBack(src uint32, dst uint32) bool {
	back := e.st.minNeighbor[e.st.roots[dst]]
	if back == noNeighbor {
		return false
	}
	return e.g.DestinationVertex(back) == src && e.g.SourceVertex(back) == dst
}

// Of a reciprocal pair, keep only the instance with the smaller source
// vertex id, so each merge is committed once.
func (e *enactor) dedup(eid int32) bool {
	src := e.g.SourceVertex(eid)
	dst := e.g.DestinationVertex(eid)
	return src < dst || !e.pointsBack(src, dst)
}

// Commit the elected edge of component v: accumulate its weight, count it,
// retire a component, and point v's next-generation root at the far side.
func (e *enactor) commit(v uint32) {
	if e.st.minWeight[v] == math.Inf(1) {
		return
	}
	elect := e.st.minNeighbor[v]
	src := e.g.SourceVertex(elect)
	dst := e.g.DestinationVertex(elect)
	// Same reciprocity guard as the dedup filter. Re-checked on purpose:
	// that filter iterated edges, this phase iterates vertices, and the two
	// race independently; the second guard prevents a double commit.
	if src < dst || !e.pointsBack(src, dst) {
		utils.AtomicAddFloat64(&e.st.mstWeight, e.st.minWeight[v])
		atomic.AddInt64(&e.st.mstEdges, 1)
		atomic.AddInt64(&e.st.liveComponents, -1)
		// Known race: two commits whose elected edges share a destination
		// vertex contend on newRoots[dst]. Either value yields a chain that
		// contraction collapses; a cycle would trip the hop cap below.
		atomic.StoreUint32(&e.st.newRoots[v], atomic.LoadUint32(&e.st.newRoots[dst]))
	}
}

// Pointer jumping: chase roots to a fixed point and record it in the next
// generation. Must run the full chain every round, since commit may have
// just rewritten arbitrary root pointers. The hop cap catches a cycle
// introduced by the commit race; forests are shallower than the vertex count.
func (e *enactor) jumpPointers(v uint32) {
	n := e.g.VertexCount()
	u := e.st.roots[v]
	for hops := uint32(0); e.st.roots[u] != u; hops++ {
		u = e.st.roots[u]
		if hops >= n {
			atomic.StoreInt32(&e.corrupted, 1)
			return
		}
	}
	e.st.newRoots[v] = u
}

func (e *enactor) syncRoots() {
	e.ctx.ForEachVertex(e.g.VertexCount(), func(v uint32) {
		e.st.roots[v] = e.st.newRoots[v]
	})
}

// One full round. Returns the number of edges committed.
func (e *enactor) round() (committed int64) {
	numVertices := e.g.VertexCount()
	e.st.resetScratch(e.ctx, numVertices)

	e.ctx.Filter(e.candidates, e.crossComponent)
	e.ctx.FilterInto(e.candidates, e.work, e.relax)
	improving := e.work.Size()
	e.ctx.FilterInto(e.candidates, e.work, e.selectNeighbor)
	e.ctx.Filter(e.work, e.elected)
	e.ctx.Filter(e.work, e.dedup)

	before := e.st.committedEdges()
	e.ctx.ForEachVertex(numVertices, e.commit)

	// Roots are synchronized on both sides of the contraction so the next
	// round observes a fully flattened forest.
	e.syncRoots()
	e.ctx.ForEachVertex(numVertices, e.jumpPointers)
	e.syncRoots()

	e.rounds++
	committed = e.st.committedEdges() - before
	log.Debug().Msg("Round " + utils.V(e.rounds) + " candidates " + utils.V(e.candidates.Size()) +
		" improving " + utils.V(improving) + " committed " + utils.V(committed) +
		" components " + utils.V(e.st.liveComponents))
	return committed
}

func (e *enactor) result() Result {
	return Result{Weight: e.st.mstWeight, Edges: e.st.mstEdges, Rounds: e.rounds}
}

// Run computes the MST weight of g. The graph must be connected; a
// disconnected graph returns ErrNotConnected along with the partial result
// accumulated so far (a minimum spanning forest weight, unfinished).
func Run(ctx *operators.Context, g *graph.Graph, opts Options) (Result, error) {
	numVertices := g.VertexCount()
	if numVertices == 0 {
		return Result{}, ErrNotConnected
	}
	maxRounds := opts.MaxRounds
	if maxRounds <= 0 {
		maxRounds = 2*bits.Len32(numVertices) + 8
	}

	e := newEnactor(ctx, g)
	watch := utils.Watch{}
	watch.Start()

	for e.st.liveComponents != 1 {
		if e.rounds >= maxRounds {
			return e.result(), ErrNotConnected
		}
		committed := e.round()
		if atomic.LoadInt32(&e.corrupted) != 0 {
			return e.result(), ErrNoProgress
		}
		if committed == 0 {
			if e.candidates.Size() == 0 {
				// No cross-component edges left: disconnected input.
				return e.result(), ErrNotConnected
			}
			return e.result(), ErrNoProgress
		}
	}

	log.Info().Msg("Termination(ms): " + utils.V(watch.Elapsed().Milliseconds()) +
		" Rounds: " + utils.V(e.rounds) + " Weight: " + utils.F("%.3f", e.st.mstWeight) +
		" Edges: " + utils.V(e.st.mstEdges))
	return e.result(), nil
}
