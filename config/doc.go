// SPDX-License-Identifier: MIT

// Package config resolves modsplit settings from defaults, an optional config
// file (YAML, TOML or JSON, by extension) and MODSPLIT_* environment
// variables, in increasing precedence. Command-line flags are applied last
// through Set.
//
// Keys:
//
//	algorithm.refine           bool    run FineTune after every eigen split
//	algorithm.solver           string  "gonum" or "jacobi"
//	algorithm.jacobi_tolerance float64 off-diagonal stop threshold
//	algorithm.jacobi_max_iter  int     rotation budget
//	algorithm.max_levels       int     driver sweeps, 0 = unlimited
//	algorithm.workers          int     concurrent divisions per sweep, 0 = GOMAXPROCS
//	input.format               string  auto | gml | edgelist
//	output.format              string  text | yaml | json
//	logging.level              string  zerolog level name
//
// The environment name of a key is MODSPLIT_ plus the key upper-cased with
// dots replaced by underscores, e.g. MODSPLIT_ALGORITHM_SOLVER.
package config
