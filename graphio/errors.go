// SPDX-License-Identifier: MIT

package graphio

import "errors"

var (
	// ErrSyntax indicates input that cannot be tokenized or lacks a required key.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrUnsupportedFormat indicates a format name that is not known for the
	// requested direction (read or write).
	ErrUnsupportedFormat = errors.New("graphio: unsupported format")
)
