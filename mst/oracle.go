package mst

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/ScottSallinen/boruvka/graph"
)

// ReferenceWeight computes the MST weight sequentially with gonum's Kruskal,
// for oracle comparison against the parallel result. Parallel edges collapse
// to their cheapest instance, matching what the tree can ever use.
func ReferenceWeight(g *graph.Graph) float64 {
	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for e := int32(0); e < g.EdgeCount(); e += 2 { // one direction per input edge
		src := int64(g.SourceVertex(e))
		dst := int64(g.DestinationVertex(e))
		weight := g.EdgeWeight(e)
		if existing := wg.WeightedEdge(src, dst); existing != nil && existing.Weight() <= weight {
			continue
		}
		wg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(src), T: simple.Node(dst), W: weight})
	}
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	return path.Kruskal(dst, wg)
}
