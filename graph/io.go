package graph

import (
	"bufio"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/boruvka/enforce"
	"github.com/ScottSallinen/boruvka/utils"
)

// LoadEdgeList reads a whitespace separated edge list: "src dst [weight]".
// Lines starting with '#' or '%' are comments. Missing weights default to
// DEFAULT_WEIGHT. Vertex count is one past the largest id seen.
func LoadEdgeList(path string) (edges []WeightedEdge, numVertices uint32) {
	file := utils.OpenFile(path)
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1<<16), 1<<20)
	fields := make([]string, 8)

	lines := 0
	for scanner.Scan() {
		lines++
		b := scanner.Bytes()
		if len(b) == 0 || b[0] == '#' || b[0] == '%' {
			continue
		}
		n := utils.FastFields(fields, b)
		if n < 2 {
			log.Panic().Msg("Bad line " + utils.V(lines) + " in " + path + ": expected \"src dst [weight]\"")
		}
		src := utils.ToIntStr(fields[0])
		dst := utils.ToIntStr(fields[1])
		weight := float64(DEFAULT_WEIGHT)
		if n >= 3 {
			var err error
			weight, err = strconv.ParseFloat(fields[2], 64)
			enforce.ENFORCE(err, "bad weight on line ", lines)
		}
		numVertices = utils.Max(numVertices, utils.Max(src, dst)+1)
		edges = append(edges, WeightedEdge{Src: src, Dst: dst, Weight: weight})
	}
	enforce.ENFORCE(scanner.Err())

	log.Debug().Msg("Loaded " + utils.V(len(edges)) + " edges, " + utils.V(numVertices) + " vertices from " + path)
	return edges, numVertices
}
