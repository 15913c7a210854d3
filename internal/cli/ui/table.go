package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Table renders simple aligned tabular data with a colored header row.
type Table struct {
	writer  io.Writer
	headers []string
	rows    [][]string
	noColor bool
}

// NewTable creates a table with the given headers.
func NewTable(w io.Writer, headers []string, noColor bool) *Table {
	return &Table{
		writer:  w,
		headers: headers,
		noColor: noColor,
	}
}

// AddRow appends a row. Rows shorter than the header are padded with empty
// cells.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Len returns the number of rows added.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table to the writer.
func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, header := range t.headers {
		widths[i] = utf8.RuneCountInString(header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	headerColor := color.New(color.Bold, color.FgCyan)
	separatorColor := color.New(color.FgHiBlack)
	if t.noColor {
		headerColor.DisableColor()
		separatorColor.DisableColor()
	}

	for i, header := range t.headers {
		headerColor.Fprint(t.writer, padRight(header, widths[i]))
		if i < len(t.headers)-1 {
			fmt.Fprint(t.writer, "  ")
		}
	}
	fmt.Fprintln(t.writer)

	for i, width := range widths {
		separatorColor.Fprint(t.writer, strings.Repeat("─", width))
		if i < len(widths)-1 {
			separatorColor.Fprint(t.writer, "  ")
		}
	}
	fmt.Fprintln(t.writer)

	for _, row := range t.rows {
		for i, cell := range row {
			fmt.Fprint(t.writer, padRight(cell, widths[i]))
			if i < len(row)-1 {
				fmt.Fprint(t.writer, "  ")
			}
		}
		fmt.Fprintln(t.writer)
	}
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
