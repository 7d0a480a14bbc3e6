package state

import "strings"

// ScrollableText is a multi-line text pane with a clamped line offset.
type ScrollableText struct {
	lines  []string
	offset int
}

// NewScrollableText splits text into lines.
func NewScrollableText(text string) ScrollableText {
	if text == "" {
		return ScrollableText{}
	}
	return ScrollableText{lines: strings.Split(text, "\n")}
}

// Text joins the lines back together.
func (s *ScrollableText) Text() string {
	return strings.Join(s.lines, "\n")
}

// Lines returns the lines from the current offset onward.
func (s *ScrollableText) Lines() []string {
	if s.offset >= len(s.lines) {
		return nil
	}
	return s.lines[s.offset:]
}

// Offset returns the index of the first visible line.
func (s *ScrollableText) Offset() int {
	return s.offset
}

// IsEmpty reports whether there is no text.
func (s *ScrollableText) IsEmpty() bool {
	return len(s.lines) == 0
}

// ScrollDown advances one line, stopping at the last line.
func (s *ScrollableText) ScrollDown() {
	if s.offset < len(s.lines)-1 {
		s.offset++
	}
}

// ScrollUp goes back one line, stopping at the first line.
func (s *ScrollableText) ScrollUp() {
	if s.offset > 0 {
		s.offset--
	}
}

// ScrollToTop shows the first line.
func (s *ScrollableText) ScrollToTop() {
	s.offset = 0
}

// ScrollToBottom shows the last line.
func (s *ScrollableText) ScrollToBottom() {
	if len(s.lines) == 0 {
		s.offset = 0
		return
	}
	s.offset = len(s.lines) - 1
}
