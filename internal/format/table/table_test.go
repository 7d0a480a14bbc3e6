package table

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"Alien", "1979"},
		{"The Thing", "1982"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	assert.Equal(t, []string{
		"Alien      1979",
		"The Thing  1982",
	}, got)
}

func TestFormatEmpty(t *testing.T) {
	assert.Nil(t, Format(nil, nil))
}

func TestFitKeepsNaturalWidthsWhenRoomy(t *testing.T) {
	columns := []Column{{Title: "Title"}, {Title: "Size", Align: AlignRight}}
	got := Fit(columns, [][]string{{"Heat", "12 GB"}}, 80)
	assert.Equal(t, []string{
		"Title   Size",
		"Heat   12 GB",
	}, got)
}

func TestLayoutShrinksWidestColumnFirst(t *testing.T) {
	columns := []Column{{Title: "Title", Min: 6}, {Title: "Studio"}}
	rows := [][]string{{"Once Upon a Time in Hollywood", "Columbia"}}

	lines, widths := Layout(columns, rows, 20)
	require.Len(t, lines, 2)
	assert.Equal(t, []int{10, 8}, widths)
	assert.Equal(t, "Once Upon…  Columbia", lines[1])
	for _, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), 20)
	}
}

func TestLayoutStopsAtMinimums(t *testing.T) {
	columns := []Column{{Title: "Title", Min: 8}, {Title: "Year"}}
	rows := [][]string{{"Eternal Sunshine of the Spotless Mind", "2004"}}

	_, widths := Layout(columns, rows, 5)
	assert.Equal(t, []int{8, 4}, widths)
}

func TestLayoutNoColumns(t *testing.T) {
	lines, widths := Layout(nil, [][]string{{"x"}}, 10)
	assert.Nil(t, lines)
	assert.Nil(t, widths)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Alien", Truncate("Alien", 5))
	assert.Equal(t, "Ali…", Truncate("Alien", 4))
	assert.Equal(t, "…", Truncate("Alien", 1))
	assert.Equal(t, "Alien", Truncate("Alien", 0))
}
