// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/modularity/community"
)

// ReadEdgeList reads "from to [weight]" lines. Blank lines and lines starting
// with '#' are skipped; a line with a single field declares an isolated node.
// Nodes are returned in first-seen order. Extra columns are ignored: every
// line is one unweighted edge, so repeat a line to express multiplicity.
//
// Errors: only I/O errors from r.
// Complexity: O(len(input)).
func ReadEdgeList(r io.Reader) ([]string, []community.Edge, error) {
	var (
		nodes []string
		edges []community.Edge
		seen  = make(map[string]struct{})
	)
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		nodes = append(nodes, id)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		add(parts[0])
		if len(parts) < 2 {
			continue
		}
		add(parts[1])
		edges = append(edges, community.Edge{From: parts[0], To: parts[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("ReadEdgeList: %w", err)
	}

	return nodes, edges, nil
}
