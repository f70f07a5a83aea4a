package main

import (
	"flag"
	"math"
	"os"
	"runtime"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/boruvka/graph"
	"github.com/ScottSallinen/boruvka/mst"
	"github.com/ScottSallinen/boruvka/operators"
	"github.com/ScottSallinen/boruvka/utils"
)

// Launch point. Parses command line arguments, loads the graph, and runs the algorithm.
func main() {
	graphPtr := flag.String("g", "", "Graph file (edge list: src dst [weight]).")
	threadPtr := flag.Int("t", runtime.NumCPU(), "Thread count for the bulk operators.")
	roundPtr := flag.Int("r", 0, "Maximum rounds before declaring the graph disconnected. 0 derives a bound from the vertex count.")
	oraclePtr := flag.Bool("o", false, "Compare the result to a sequential reference computation upon finishing.")
	statsPtr := flag.Bool("stats", false, "Print graph statistics before running.")
	debugPtr := flag.Int("debug", 0, "Adds extra debug output. Level 0 for info, 1 for debug, 2 for trace.")
	colourPtr := flag.Bool("nc", false, "Removes the colouring from the log output.")
	flag.Parse()

	if *colourPtr {
		utils.SetLoggerConsole(true)
	}
	utils.SetLevel(*debugPtr)

	if *graphPtr == "" {
		flag.Usage()
		os.Exit(1)
	}
	threadCount := *threadPtr
	if threadCount <= 0 {
		log.Panic().Msg("Invalid thread count.")
	} else if threadCount > runtime.NumCPU() {
		log.Warn().Msg("Thread count is greater than CPU count?")
	}

	edges, numVertices := graph.LoadEdgeList(*graphPtr)
	g := graph.NewUndirected(numVertices, edges)
	if *statsPtr {
		g.LogStats()
	}
	if *debugPtr >= 2 {
		utils.MemoryStats()
	}

	ctx := operators.NewContext(uint32(threadCount))
	result, err := mst.Run(ctx, g, mst.Options{MaxRounds: *roundPtr})
	if err != nil {
		log.Panic().Err(err).Msg("MST computation failed.")
	}
	log.Info().Msg("MST weight: " + utils.F("%.3f", result.Weight) +
		" edges: " + utils.V(result.Edges) + " rounds: " + utils.V(result.Rounds))

	if *oraclePtr {
		oracle := mst.ReferenceWeight(g)
		variance := 1e-6 * utils.Max(1.0, math.Abs(oracle))
		if !utils.FloatEquals(result.Weight, oracle, variance) {
			log.Panic().Msg("Oracle mismatch: got " + utils.F("%.6f", result.Weight) + " want " + utils.F("%.6f", oracle))
		}
		log.Info().Msg("Oracle agrees: " + utils.F("%.3f", oracle))
	}
}
