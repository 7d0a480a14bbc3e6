package state

import (
	"encoding/json"
	"sync/atomic"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// marqueePadding separates the end of a marquee from its restart.
const marqueePadding = "        "

// HorizontallyScrollableText is a single line of text with a mutable offset.
//
// The offset has two meanings depending on the caller. Marquee callers
// (ScrollText, ScrollOrReset, MarqueeView) treat it as the first visible rune
// of the padded text and may advance it through a shared pointer while
// rendering. Edit callers (ScrollLeft, ScrollRight, Push, Pop, Drain) treat it
// as the caret distance from the end of the text. A field uses one or the
// other for its whole life.
type HorizontallyScrollableText struct {
	text   string
	offset *atomic.Int64
}

// NewHorizontallyScrollableText wraps text with a zero offset.
func NewHorizontallyScrollableText(text string) HorizontallyScrollableText {
	return HorizontallyScrollableText{text: text, offset: new(atomic.Int64)}
}

func (h *HorizontallyScrollableText) cell() *atomic.Int64 {
	if h.offset == nil {
		h.offset = new(atomic.Int64)
	}
	return h.offset
}

// Text returns the raw text without marquee padding.
func (h *HorizontallyScrollableText) Text() string {
	return h.text
}

// String implements fmt.Stringer with the raw text.
func (h HorizontallyScrollableText) String() string {
	return h.text
}

// Offset returns the current offset.
func (h *HorizontallyScrollableText) Offset() int {
	if h.offset == nil {
		return 0
	}
	return int(h.offset.Load())
}

// IsEmpty reports whether the text is empty.
func (h *HorizontallyScrollableText) IsEmpty() bool {
	return h.text == ""
}

// Len is the rune length of the text.
func (h *HorizontallyScrollableText) Len() int {
	return len([]rune(h.text))
}

// MarqueeLen is the length of one full marquee cycle, padding included.
func (h *HorizontallyScrollableText) MarqueeLen() int {
	return h.Len() + len(marqueePadding)
}

// ScrollText advances the marquee by one rune, wrapping after a full cycle.
func (h *HorizontallyScrollableText) ScrollText() {
	n := int64(h.MarqueeLen())
	c := h.cell()
	c.Store((c.Load() + 1) % n)
}

// ResetOffset returns the offset to zero.
func (h *HorizontallyScrollableText) ResetOffset() {
	h.cell().Store(0)
}

// ScrollOrReset advances the marquee when the text is the active selection and
// does not fit in width cells, otherwise it resets the offset.
func (h *HorizontallyScrollableText) ScrollOrReset(width int, active bool) {
	if active && ansi.StringWidth(h.text) > width {
		h.ScrollText()
		return
	}
	if h.Offset() != 0 {
		h.ResetOffset()
	}
}

// Shift moves the marquee offset by delta, clamped between the start of the
// text and its last rune.
func (h *HorizontallyScrollableText) Shift(delta int) {
	off := h.Offset() + delta
	if last := h.Len() - 1; off > last {
		off = last
	}
	if off < 0 {
		off = 0
	}
	h.cell().Store(int64(off))
}

// MarqueeView returns the text rotated by the marquee offset.
func (h *HorizontallyScrollableText) MarqueeView() string {
	off := h.Offset()
	if off == 0 {
		return h.text
	}
	padded := []rune(h.text + marqueePadding)
	off %= len(padded)
	return string(padded[off:]) + string(padded[:off])
}

// ScrollLeft moves the caret one rune towards the start.
func (h *HorizontallyScrollableText) ScrollLeft() {
	c := h.cell()
	if int(c.Load()) < h.Len() {
		c.Add(1)
	}
}

// ScrollRight moves the caret one rune towards the end.
func (h *HorizontallyScrollableText) ScrollRight() {
	c := h.cell()
	if c.Load() > 0 {
		c.Add(-1)
	}
}

// ScrollHome moves the caret before the first rune.
func (h *HorizontallyScrollableText) ScrollHome() {
	h.cell().Store(int64(h.Len()))
}

// ScrollEnd moves the caret after the last rune.
func (h *HorizontallyScrollableText) ScrollEnd() {
	h.ResetOffset()
}

// Caret returns the caret position counted from the start.
func (h *HorizontallyScrollableText) Caret() int {
	pos := h.Len() - h.Offset()
	if pos < 0 {
		return 0
	}
	return pos
}

// Push inserts r at the caret.
func (h *HorizontallyScrollableText) Push(r rune) {
	runes := []rune(h.text)
	pos := h.Caret()
	updated := make([]rune, 0, len(runes)+1)
	updated = append(updated, runes[:pos]...)
	updated = append(updated, r)
	updated = append(updated, runes[pos:]...)
	h.text = string(updated)
}

// PushString inserts s at the caret.
func (h *HorizontallyScrollableText) PushString(s string) {
	for _, r := range s {
		h.Push(r)
	}
}

// Pop deletes the rune before the caret.
func (h *HorizontallyScrollableText) Pop() {
	runes := []rune(h.text)
	pos := h.Caret()
	if pos == 0 {
		return
	}
	h.text = string(append(runes[:pos-1], runes[pos:]...))
}

// PopWord deletes the word before the caret.
func (h *HorizontallyScrollableText) PopWord() {
	runes := []rune(h.text)
	pos := h.Caret()
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	if i == pos {
		return
	}
	h.text = string(append(runes[:i], runes[pos:]...))
}

// Drain clears the text and returns what it held.
func (h *HorizontallyScrollableText) Drain() string {
	text := h.text
	h.text = ""
	h.ResetOffset()
	return text
}

// Set replaces the text and resets the offset.
func (h *HorizontallyScrollableText) Set(text string) {
	h.text = text
	h.ResetOffset()
}

// MarshalJSON encodes the raw text.
func (h HorizontallyScrollableText) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.text)
}

// UnmarshalJSON decodes a plain string.
func (h *HorizontallyScrollableText) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	*h = NewHorizontallyScrollableText(text)
	return nil
}
