package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollableTextClamps(t *testing.T) {
	s := NewScrollableText("one\ntwo\nthree")
	s.ScrollUp()
	assert.Equal(t, 0, s.Offset())

	for i := 0; i < 10; i++ {
		s.ScrollDown()
	}
	assert.Equal(t, 2, s.Offset())
	assert.Equal(t, []string{"three"}, s.Lines())

	s.ScrollToTop()
	assert.Equal(t, 0, s.Offset())
	s.ScrollToBottom()
	assert.Equal(t, 2, s.Offset())
	assert.Equal(t, "one\ntwo\nthree", s.Text())
}

func TestScrollableTextEmpty(t *testing.T) {
	var s ScrollableText
	s.ScrollDown()
	s.ScrollToBottom()
	assert.Equal(t, 0, s.Offset())
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Lines())
}
