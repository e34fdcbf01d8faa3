// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"

	"github.com/katalvlaran/modularity/community"
)

// SnappyExt marks a file compressed with the snappy framing format; the
// extension before it still selects the graph format ("karate.gml.sz").
const SnappyExt = ".sz"

// Format names an input or output encoding.
type Format string

const (
	FormatAuto     Format = "auto" // pick by file extension
	FormatGML      Format = "gml"
	FormatEdgeList Format = "edgelist"
	FormatText     Format = "text"
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
)

// ParseFormat normalizes a user supplied name ("GML", " yaml ", "yml").
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatAuto, FormatGML, FormatEdgeList, FormatText, FormatYAML, FormatJSON:
		return f, nil
	case "", "default":
		return FormatAuto, nil
	case "yml":
		return FormatYAML, nil
	case "edges":
		return FormatEdgeList, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", name, ErrUnsupportedFormat)
	}
}

// FormatFromPath maps ".gml" to FormatGML and anything else to FormatEdgeList.
// A trailing SnappyExt is ignored.
func FormatFromPath(path string) Format {
	if isSnappy(path) {
		path = path[:len(path)-len(SnappyExt)]
	}
	if strings.EqualFold(filepath.Ext(path), ".gml") {
		return FormatGML
	}

	return FormatEdgeList
}

// ReadGraph decodes r as f (FormatGML or FormatEdgeList).
func ReadGraph(r io.Reader, f Format) ([]string, []community.Edge, error) {
	switch f {
	case FormatGML:
		return ReadGML(r)
	case FormatEdgeList:
		return ReadEdgeList(r)
	default:
		return nil, nil, fmt.Errorf("ReadGraph(%s): %w", f, ErrUnsupportedFormat)
	}
}

func isSnappy(path string) bool {
	return strings.EqualFold(filepath.Ext(path), SnappyExt)
}

// ReadFile opens path and decodes it; FormatAuto resolves by extension.
// Paths ending in SnappyExt are decompressed on the fly.
func ReadFile(path string, f Format) ([]string, []community.Edge, error) {
	if f == FormatAuto || f == "" {
		f = FormatFromPath(path)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer fh.Close()

	var r io.Reader = fh
	if isSnappy(path) {
		r = snappy.NewReader(fh)
	}
	nodes, edges, err := ReadGraph(r, f)
	if err != nil {
		return nil, nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}

	return nodes, edges, nil
}

// WriteResult encodes res as f (FormatText, FormatYAML or FormatJSON).
func WriteResult(w io.Writer, res *community.Result, f Format) error {
	switch f {
	case FormatText, FormatAuto:
		return WriteText(w, res)
	case FormatYAML:
		return WriteYAML(w, res)
	case FormatJSON:
		return WriteJSON(w, res)
	default:
		return fmt.Errorf("WriteResult(%s): %w", f, ErrUnsupportedFormat)
	}
}

// WriteDiagnostics encodes d as f (FormatText, FormatYAML or FormatJSON).
func WriteDiagnostics(w io.Writer, d *community.Diagnostics, f Format) error {
	switch f {
	case FormatText, FormatAuto:
		return WriteDiagnosticsText(w, d)
	case FormatYAML:
		return WriteYAML(w, d)
	case FormatJSON:
		return WriteJSON(w, d)
	default:
		return fmt.Errorf("WriteDiagnostics(%s): %w", f, ErrUnsupportedFormat)
	}
}
