// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// constants.go - method tags and parameter minima shared by constructors.

package builder

// Method tags used as error context prefixes.
const (
	methodCycle             = "Cycle"
	methodPath              = "Path"
	methodStar              = "Star"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodRandomSparse      = "RandomSparse"
	methodPlantedPartition  = "PlantedPartition"
	methodScoped            = "Scoped"
	methodLink              = "Link"
	methodIsolated          = "Isolated"
)

// CenterVertexID is the hub label used by Star (scoped like any other ID).
const CenterVertexID = "Center"

// Parameter minima.
const (
	MinCycleNodes    = 3
	MinPathNodes     = 2
	MinStarNodes     = 2
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinPartitionSize = 1
)

// Probability bounds for stochastic constructors.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
