package graph

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_NewUndirected(t *testing.T) {
	g := NewUndirected(4, []WeightedEdge{
		{Src: 0, Dst: 1, Weight: 1.5},
		{Src: 2, Dst: 2, Weight: 9}, // self loop, skipped
		{Src: 1, Dst: 3, Weight: 2.5},
	})

	if g.VertexCount() != 4 {
		t.Error("vertex count ", g.VertexCount())
	}
	if g.EdgeCount() != 4 { // two kept input edges, two directions each
		t.Error("edge count ", g.EdgeCount())
	}

	// Input edge j becomes half-edges 2j (forward) and 2j+1 (reverse); the
	// self loop was dropped before id assignment.
	if g.SourceVertex(0) != 0 || g.DestinationVertex(0) != 1 || g.EdgeWeight(0) != 1.5 {
		t.Error("edge 0 mismatch")
	}
	if g.SourceVertex(1) != 1 || g.DestinationVertex(1) != 0 || g.EdgeWeight(1) != 1.5 {
		t.Error("edge 1 mismatch")
	}
	if g.SourceVertex(2) != 1 || g.DestinationVertex(2) != 3 || g.EdgeWeight(2) != 2.5 {
		t.Error("edge 2 mismatch")
	}
	if g.SourceVertex(3) != 3 || g.DestinationVertex(3) != 1 || g.EdgeWeight(3) != 2.5 {
		t.Error("edge 3 mismatch")
	}
}

func Test_LoadEdgeList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.txt")
	content := "# comment line\n" +
		"0 1 2.5\n" +
		"\n" +
		"1\t2\n" +
		"% another comment\n" +
		"2 5 0.25\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	edges, numVertices := LoadEdgeList(path)
	if numVertices != 6 {
		t.Error("vertex count ", numVertices)
	}
	if len(edges) != 3 {
		t.Fatal("edge count ", len(edges))
	}
	if edges[0] != (WeightedEdge{Src: 0, Dst: 1, Weight: 2.5}) {
		t.Error("edge 0 ", edges[0])
	}
	if edges[1] != (WeightedEdge{Src: 1, Dst: 2, Weight: DEFAULT_WEIGHT}) {
		t.Error("edge 1 ", edges[1])
	}
	if edges[2] != (WeightedEdge{Src: 2, Dst: 5, Weight: 0.25}) {
		t.Error("edge 2 ", edges[2])
	}
}
