package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderNilStyleReturnsText(t *testing.T) {
	assert.Equal(t, "plain", Render(nil, "plain"))
}

func TestCheckbox(t *testing.T) {
	s := Default()
	assert.Equal(t, "[x]", s.Checkbox(true))
	assert.Equal(t, "[ ]", s.Checkbox(false))
}

func TestDefaultStylesAreSet(t *testing.T) {
	s := Default()
	assert.NotNil(t, s.SelectedRow)
	assert.NotNil(t, s.Box)
	assert.NotNil(t, s.ActiveButton)
	assert.Positive(t, s.ColumnSpacing)
}
