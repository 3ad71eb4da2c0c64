// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// ANSI colour escapes accepted by Style.Color.
const (
	ColorNone   = ""
	ColorRed    = "\x1b[31m"
	ColorGreen  = "\x1b[32m"
	ColorPurple = "\x1b[35m"
	ColorCyan   = "\x1b[36m"
	colorReset  = "\x1b[0m"
)

const (
	renderHeader    = "Matrix "
	renderHeaderSep = '.'
)

// Style controls how Render decorates a matrix.
// The zero Style renders plain text.
type Style struct {
	Color string // one of the Color* escapes; empty disables colouring
}

// Paint wraps text in the style colour when one is set.
func (s Style) Paint(text string) string {
	if s.Color == ColorNone {
		return text
	}

	return s.Color + text + colorReset
}

// Render writes m under a "Matrix <label>" header underlined with dots,
// one bracketed, tab-separated line per row and a trailing blank line:
//
//	Matrix A
//	........
//	[	1	2	]
//	[	3	4	]
//
// Errors:
//   - ErrNilMatrix for a nil m; write errors from w are returned as-is.
//
// Complexity:
//   - Time O(r*c), one write per line.
func Render(w io.Writer, m *Dense, label string, style Style) error {
	if m == nil {
		return matrixErrorf("Render", ErrNilMatrix)
	}
	title := renderHeader + label
	if _, err := fmt.Fprintf(w, "%s\n%s\n", style.Paint(title),
		style.Paint(strings.Repeat(string(renderHeaderSep), len(title)))); err != nil {
		return err
	}

	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.Reset()
		sb.WriteString(style.Paint("[\t"))
		for j := 0; j < m.c; j++ {
			sb.WriteString(style.Paint(fmt.Sprintf("%d", m.data[i*m.c+j])))
			sb.WriteByte('\t')
		}
		sb.WriteString(style.Paint("]"))
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")

	return err
}
