package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarqueeRoundTrip(t *testing.T) {
	h := NewHorizontallyScrollableText("The Lord of the Rings")
	n := h.MarqueeLen()
	for i := 0; i < n; i++ {
		h.ScrollText()
		if i < n-1 {
			require.NotZero(t, h.Offset(), "offset wrapped early at step %d", i)
		}
	}
	assert.Zero(t, h.Offset())
}

func TestMarqueeView(t *testing.T) {
	h := NewHorizontallyScrollableText("abc")
	assert.Equal(t, "abc", h.MarqueeView())
	h.ScrollText()
	assert.Equal(t, "bc"+marqueePadding+"a", h.MarqueeView())
}

func TestScrollOrReset(t *testing.T) {
	h := NewHorizontallyScrollableText("a long movie title")
	h.ScrollOrReset(5, true)
	assert.Equal(t, 1, h.Offset())

	h.ScrollOrReset(5, false)
	assert.Zero(t, h.Offset())

	h.ScrollOrReset(100, true)
	assert.Zero(t, h.Offset(), "text that fits does not scroll")
}

func TestMarqueeThroughSharedPointer(t *testing.T) {
	rows := []HorizontallyScrollableText{NewHorizontallyScrollableText("x")}
	view := rows
	view[0].ScrollText()
	assert.Equal(t, 1, rows[0].Offset())
}

func TestEditCaretMovement(t *testing.T) {
	var h HorizontallyScrollableText
	h.PushString("test")
	assert.Equal(t, "test", h.Text())
	assert.Equal(t, 4, h.Caret())

	h.ScrollLeft()
	h.ScrollLeft()
	assert.Equal(t, 2, h.Offset())
	h.Push('x')
	assert.Equal(t, "texst", h.Text())

	h.ScrollHome()
	assert.Equal(t, 0, h.Caret())
	h.ScrollLeft()
	assert.Equal(t, 0, h.Caret(), "caret saturates at the start")
	h.Push('>')
	assert.Equal(t, ">texst", h.Text())

	h.ScrollEnd()
	h.ScrollRight()
	assert.Zero(t, h.Offset(), "caret saturates at the end")
	h.Pop()
	assert.Equal(t, ">texs", h.Text())
}

func TestEditPopAtCaret(t *testing.T) {
	h := NewHorizontallyScrollableText("abcd")
	h.ScrollLeft()
	h.Pop()
	assert.Equal(t, "abd", h.Text())

	h.ScrollHome()
	h.Pop()
	assert.Equal(t, "abd", h.Text(), "nothing before the caret")
}

func TestEditPopWord(t *testing.T) {
	h := NewHorizontallyScrollableText("movie title here")
	h.PopWord()
	assert.Equal(t, "movie title ", h.Text())
	h.PopWord()
	assert.Equal(t, "movie ", h.Text())
}

func TestDrain(t *testing.T) {
	h := NewHorizontallyScrollableText("query")
	h.ScrollLeft()
	assert.Equal(t, "query", h.Drain())
	assert.True(t, h.IsEmpty())
	assert.Zero(t, h.Offset())
}

func TestHorizontallyScrollableTextJSON(t *testing.T) {
	var payload struct {
		Title HorizontallyScrollableText `json:"title"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Heat"}`), &payload))
	assert.Equal(t, "Heat", payload.Title.Text())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Heat"}`, string(out))
}

func TestShiftClamps(t *testing.T) {
	h := NewHorizontallyScrollableText("abcd")
	h.Shift(-1)
	assert.Zero(t, h.Offset())
	h.Shift(2)
	assert.Equal(t, 2, h.Offset())
	assert.Equal(t, "cd"+marqueePadding+"ab", h.MarqueeView())
	h.Shift(10)
	assert.Equal(t, 3, h.Offset())

	var empty HorizontallyScrollableText
	empty.Shift(1)
	assert.Zero(t, empty.Offset())
}
