package graph

import (
	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/boruvka/utils"
)

const DEFAULT_WEIGHT = 1.0

// A single undirected input edge, as parsed or constructed.
type WeightedEdge struct {
	Src    uint32
	Dst    uint32
	Weight float64
}

// Graph is a flat, immutable, undirected edge container.
// Each undirected input edge j is stored as two directed half-edges with
// consecutive edge ids: (2j) for Src->Dst and (2j+1) for Dst->Src.
// Edge ids are int32 so a frontier can use -1 as a sentinel, and so an
// atomic max over ids gives a total order for tie-breaking.
type Graph struct {
	numVertices uint32
	srcs        []uint32
	dsts        []uint32
	weights     []float64
}

// Builds the container from undirected input edges. Self loops are skipped;
// they can never enter a spanning tree. Vertices past numVertices panic.
func NewUndirected(numVertices uint32, edges []WeightedEdge) *Graph {
	g := &Graph{
		numVertices: numVertices,
		srcs:        make([]uint32, 0, len(edges)*2),
		dsts:        make([]uint32, 0, len(edges)*2),
		weights:     make([]float64, 0, len(edges)*2),
	}
	skipped := 0
	for i := range edges {
		e := &edges[i]
		if e.Src >= numVertices || e.Dst >= numVertices {
			log.Panic().Msg("Edge endpoint out of range: (" + utils.V(e.Src) + ", " + utils.V(e.Dst) + ") with " + utils.V(numVertices) + " vertices")
		}
		if e.Src == e.Dst {
			skipped++
			continue
		}
		g.srcs = append(g.srcs, e.Src, e.Dst)
		g.dsts = append(g.dsts, e.Dst, e.Src)
		g.weights = append(g.weights, e.Weight, e.Weight)
	}
	if skipped > 0 {
		log.Debug().Msg("Skipped " + utils.V(skipped) + " self loop(s)")
	}
	return g
}

func (g *Graph) VertexCount() uint32 {
	return g.numVertices
}

// Number of directed half-edges (twice the undirected input edge count).
func (g *Graph) EdgeCount() int32 {
	return int32(len(g.srcs))
}

func (g *Graph) SourceVertex(e int32) uint32 {
	return g.srcs[e]
}

func (g *Graph) DestinationVertex(e int32) uint32 {
	return g.dsts[e]
}

func (g *Graph) EdgeWeight(e int32) float64 {
	return g.weights[e]
}

// Degree/size summary at info level.
func (g *Graph) LogStats() {
	degrees := make([]int, g.numVertices)
	for i := range g.srcs {
		degrees[g.srcs[i]]++
	}
	maxDeg := 0
	isolated := 0
	for v := range degrees {
		maxDeg = utils.Max(maxDeg, degrees[v])
		if degrees[v] == 0 {
			isolated++
		}
	}
	log.Info().Msg("Vertices " + utils.V(g.numVertices) + " Edges " + utils.V(len(g.srcs)/2) +
		" MaxDeg " + utils.V(maxDeg) + " Isolated " + utils.V(isolated))
}
