// SPDX-License-Identifier: MIT

// Package graphio reads graphs into the node and edge lists that
// community.Partition consumes and writes partition results.
//
// Inputs:
//
//   - GML: node [ id X ... ] and edge [ source A target B ... ] blocks
//     inside an optional graph [ ... ] block. Only ids are used; labels,
//     graphics and any other keys are skipped, nested lists included.
//   - Edge list: one "from to [weight]" pair per line, '#' starts a comment,
//     nodes are numbered in first-seen order. The weight column is ignored.
//   - Either format may be snappy-framed; ReadFile decompresses paths that
//     end in ".sz" (github.com/golang/snappy).
//
// Outputs:
//
//   - Text: "Q=<q>" followed by one comma-joined group per line.
//   - YAML (gopkg.in/yaml.v3) and JSON for Result and Diagnostics values.
package graphio
