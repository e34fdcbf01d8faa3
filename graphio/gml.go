// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/modularity/community"
)

// gmlEntry is one "key value" pair; exactly one of scalar or list is used.
type gmlEntry struct {
	key    string
	scalar string
	list   []gmlEntry
	isList bool
}

// ReadGML scans a GML document and returns node ids in document order and
// edges as (source, target) pairs. Keys other than id/source/target are
// skipped, nested lists included. Node and edge blocks are taken from the
// first graph [ ... ] block, or from the top level when there is none.
//
// Errors: ErrSyntax for unbalanced brackets, a key without a value, a node
// without id, or an edge without source or target.
// Complexity: O(len(input)).
func ReadGML(r io.Reader) ([]string, []community.Edge, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(scanGMLTokens)

	p := &gmlParser{sc: sc}
	root, err := p.list(0)
	if err != nil {
		return nil, nil, fmt.Errorf("ReadGML: %w", err)
	}

	body := root
	for _, e := range root {
		if e.key == "graph" && e.isList {
			body = e.list
			break
		}
	}

	var (
		nodes []string
		edges []community.Edge
	)
	for _, e := range body {
		if !e.isList {
			continue
		}
		switch e.key {
		case "node":
			id, ok := lookup(e.list, "id")
			if !ok {
				return nil, nil, fmt.Errorf("ReadGML: node %d without id: %w", len(nodes), ErrSyntax)
			}
			nodes = append(nodes, id)
		case "edge":
			src, okS := lookup(e.list, "source")
			dst, okT := lookup(e.list, "target")
			if !okS || !okT {
				return nil, nil, fmt.Errorf("ReadGML: edge %d without source/target: %w", len(edges), ErrSyntax)
			}
			edges = append(edges, community.Edge{From: src, To: dst})
		}
	}

	return nodes, edges, nil
}

func lookup(list []gmlEntry, key string) (string, bool) {
	for _, e := range list {
		if e.key == key && !e.isList {
			return e.scalar, true
		}
	}

	return "", false
}

type gmlParser struct {
	sc *bufio.Scanner
}

// list reads entries until the matching ']' (depth > 0) or EOF (depth 0).
func (p *gmlParser) list(depth int) ([]gmlEntry, error) {
	var out []gmlEntry
	for p.sc.Scan() {
		key := p.sc.Text()
		if key == "]" {
			if depth == 0 {
				return nil, fmt.Errorf("unexpected ']': %w", ErrSyntax)
			}
			return out, nil
		}
		if key == "[" {
			return nil, fmt.Errorf("list without key: %w", ErrSyntax)
		}
		if !p.sc.Scan() {
			if err := p.sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("key %q without value: %w", key, ErrSyntax)
		}
		val := p.sc.Text()
		switch val {
		case "[":
			sub, err := p.list(depth + 1)
			if err != nil {
				return nil, err
			}
			out = append(out, gmlEntry{key: key, list: sub, isList: true})
		case "]":
			return nil, fmt.Errorf("key %q without value: %w", key, ErrSyntax)
		default:
			out = append(out, gmlEntry{key: key, scalar: unquote(val)})
		}
	}
	if err := p.sc.Err(); err != nil {
		return nil, err
	}
	if depth > 0 {
		return nil, fmt.Errorf("unterminated list: %w", ErrSyntax)
	}

	return out, nil
}

// scanGMLTokens splits on whitespace and yields "[", "]", quoted strings
// (quotes kept) and bare words. Lines starting with '#' are comments.
func scanGMLTokens(data []byte, atEOF bool) (int, []byte, error) {
	start := 0
	for start < len(data) {
		r, w := utf8.DecodeRune(data[start:])
		if r == '#' {
			nl := bytes.IndexByte(data[start:], '\n')
			if nl < 0 {
				if atEOF {
					return len(data), nil, nil
				}
				return start, nil, nil
			}
			start += nl + 1
			continue
		}
		if !unicode.IsSpace(r) {
			break
		}
		start += w
	}
	if start >= len(data) {
		if atEOF {
			return len(data), nil, nil
		}
		return start, nil, nil
	}

	switch data[start] {
	case '[', ']':
		return start + 1, data[start : start+1], nil
	case '"':
		end := bytes.IndexByte(data[start+1:], '"')
		if end < 0 {
			if atEOF {
				return 0, nil, fmt.Errorf("unterminated string: %w", ErrSyntax)
			}
			return start, nil, nil
		}
		stop := start + 1 + end + 1
		return stop, data[start:stop], nil
	}

	for i := start; i < len(data); {
		r, w := utf8.DecodeRune(data[i:])
		if unicode.IsSpace(r) || r == '[' || r == ']' {
			return i, data[start:i], nil
		}
		i += w
	}
	if atEOF {
		return len(data), data[start:], nil
	}

	return start, nil, nil
}

func unquote(tok string) string {
	if len(tok) >= 2 && tok[0] == '"' && tok[len(tok)-1] == '"' {
		return tok[1 : len(tok)-1]
	}

	return tok
}
