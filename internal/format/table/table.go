package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const (
	tail    = "…"
	spacing = "  "
)

// Column describes one table column. Min is the narrowest the column may be
// squeezed to when the table does not fit; zero means the title width.
type Column struct {
	Title string
	Align Alignment
	Min   int
}

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := naturalWidths(rows, len(rows[0]))
	return render(rows, widths, alignments)
}

// Fit lays rows out under columns within width cells. Columns wider than
// their share are truncated with an ellipsis, widest first, until the table
// fits or every column is at its minimum. The header row is returned first.
func Fit(columns []Column, rows [][]string, width int) []string {
	lines, _ := Layout(columns, rows, width)
	return lines
}

// Layout is Fit that also returns the final column widths.
func Layout(columns []Column, rows [][]string, width int) ([]string, []int) {
	if len(columns) == 0 {
		return nil, nil
	}
	all := make([][]string, 0, len(rows)+1)
	header := make([]string, len(columns))
	alignments := make([]Alignment, len(columns))
	for i, c := range columns {
		header[i] = c.Title
		alignments[i] = c.Align
	}
	all = append(all, header)
	all = append(all, rows...)

	widths := naturalWidths(all, len(columns))
	if width > 0 {
		shrink(widths, columns, width-len(spacing)*(len(columns)-1))
	}
	return render(all, widths, alignments), widths
}

// Truncate shortens text to width cells, ending in an ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return tail
	}
	return truncate.StringWithTail(text, uint(width), tail)
}

func naturalWidths(rows [][]string, cols int) []int {
	widths := make([]int, cols)
	for _, row := range rows {
		for c := 0; c < cols && c < len(row); c++ {
			if w := ansi.StringWidth(row[c]); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

func shrink(widths []int, columns []Column, budget int) {
	total := 0
	for _, w := range widths {
		total += w
	}
	for total > budget {
		widest := -1
		for i, w := range widths {
			if w <= minWidth(columns[i]) {
				continue
			}
			if widest < 0 || w > widths[widest] {
				widest = i
			}
		}
		if widest < 0 {
			return
		}
		widths[widest]--
		total--
	}
}

func minWidth(c Column) int {
	if c.Min > 0 {
		return c.Min
	}
	return ansi.StringWidth(c.Title)
}

func render(rows [][]string, widths []int, alignments []Alignment) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, width := range widths {
			if c > 0 {
				b.WriteString(spacing)
			}
			cell := ""
			if c < len(row) {
				cell = Truncate(row[c], width)
			}
			pad := width - ansi.StringWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				writeSpaces(&b, pad)
			}
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
