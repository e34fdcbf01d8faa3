// SPDX-License-Identifier: MIT

package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/modularity/community"
)

// WriteText writes "Q=<q>" and then one comma-joined group per line.
func WriteText(w io.Writer, res *community.Result) error {
	if res == nil {
		return fmt.Errorf("WriteText: nil result: %w", ErrSyntax)
	}
	var b strings.Builder
	b.WriteString("Q=")
	b.WriteString(strconv.FormatFloat(res.Q, 'f', -1, 64))
	b.WriteByte('\n')
	for _, grp := range res.Groups {
		b.WriteString(strings.Join(grp, ","))
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("WriteText: %w", err)
	}

	return nil
}

// ReadText parses the WriteText layout back into Q and groups.
func ReadText(r io.Reader) (*community.Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ReadText: %w", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "Q=") {
		return nil, fmt.Errorf("ReadText: missing Q= header: %w", ErrSyntax)
	}
	q, err := strconv.ParseFloat(strings.TrimPrefix(lines[0], "Q="), 64)
	if err != nil {
		return nil, fmt.Errorf("ReadText: %v: %w", err, ErrSyntax)
	}
	res := &community.Result{Q: q}
	for _, l := range lines[1:] {
		if l == "" {
			continue
		}
		res.Groups = append(res.Groups, strings.Split(l, ","))
	}

	return res, nil
}

// WriteYAML encodes v (a Result or Diagnostics) as YAML with 2-space indent.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return nil
}

// WriteJSON encodes v (a Result or Diagnostics) as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}

	return nil
}

// WriteDiagnosticsText renders one aligned row per group and a summary line.
func WriteDiagnosticsText(w io.Writer, d *community.Diagnostics) error {
	if d == nil {
		return fmt.Errorf("WriteDiagnosticsText: nil diagnostics: %w", ErrSyntax)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "group\tsize\tinternal\tboundary\tcomponents\tdiameter\tcontribution")
	for _, g := range d.Groups {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%.6f\n",
			g.Index, g.Size, g.InternalEdges, g.BoundaryEdges, g.Components, g.Diameter, g.Contribution)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("WriteDiagnosticsText: %w", err)
	}
	if _, err := fmt.Fprintf(w, "Q=%.6f groups=%d graph_components=%d\n",
		d.Q, len(d.Groups), d.GraphComponents); err != nil {
		return fmt.Errorf("WriteDiagnosticsText: %w", err)
	}

	return nil
}
