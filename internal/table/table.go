// Package table prints records as a fixed-width text table.
package table

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const NotAvailable = "N/A"

// Column describes one column of a table. Value reports false when the
// record has no value for the column.
type Column[T any] struct {
	Header string
	Value  func(T) (string, bool)
}

func (c Column[T]) cell(x T) string {
	s, ok := c.Value(x)
	if !ok {
		return NotAvailable
	}
	return s
}

// Select keeps the named columns in the requested order. Unknown names are
// skipped; no names keeps every column.
func Select[T any](cols []Column[T], names ...string) []Column[T] {
	if len(names) == 0 {
		return cols
	}
	byHeader := make(map[string]Column[T], len(cols))
	for _, c := range cols {
		byHeader[c.Header] = c
	}
	var xs []Column[T]
	for _, name := range names {
		if c, ok := byHeader[name]; ok {
			xs = append(xs, c)
		}
	}
	return xs
}

// Widths returns the printed width of every column: the longest of the
// header and the cells, limited to maxWidth when it is positive but never
// narrower than the header.
func Widths[T any](rows []T, cols []Column[T], maxWidth int) []int {
	ws := make([]int, len(cols))
	for i, c := range cols {
		header := utf8.RuneCountInString(c.Header)
		w := header
		for _, x := range rows {
			if n := utf8.RuneCountInString(c.cell(x)); n > w {
				w = n
			}
		}
		if maxWidth > 0 && w > maxWidth {
			w = maxWidth
		}
		if w < header {
			w = header
		}
		ws[i] = w
	}
	return ws
}

// Render writes rows as a table framed by dividers. Nothing but the empty
// message is written when there are no rows.
func Render[T any](w io.Writer, rows []T, cols []Column[T], maxWidth int, empty string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, empty)
		return err
	}
	ws := Widths(rows, cols, maxWidth)

	var b strings.Builder
	divider := func() {
		b.WriteString("+")
		for _, n := range ws {
			b.WriteString(strings.Repeat("-", n+2))
			b.WriteString("+")
		}
		b.WriteString("\n")
	}
	line := func(cells []string) {
		b.WriteString("|")
		for i, s := range cells {
			s = clip(s, ws[i])
			b.WriteString(" ")
			b.WriteString(s)
			b.WriteString(strings.Repeat(" ", ws[i]-utf8.RuneCountInString(s)))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	divider()
	line(headers)
	divider()
	for _, x := range rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = c.cell(x)
		}
		line(cells)
	}
	divider()

	_, err := io.WriteString(w, b.String())
	return err
}

func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
