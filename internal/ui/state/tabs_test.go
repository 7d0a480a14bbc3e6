package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTabs() TabState[testBlock] {
	return NewTabState(
		TabRoute[testBlock]{Title: "Home", Route: NewRoute(blockHome), Help: "home help", ContextualHelp: "<s> search"},
		TabRoute[testBlock]{Title: "Details", Route: NewRoute(blockDetails), Help: "details help"},
		TabRoute[testBlock]{Title: "Other", Route: NewRoute(blockOther)},
	)
}

func TestTabNextWraps(t *testing.T) {
	tabs := testTabs()
	tabs.Next()
	assert.Equal(t, NewRoute(blockDetails), tabs.ActiveRoute())
	tabs.Next()
	tabs.Next()
	assert.Equal(t, 0, tabs.Index())
}

func TestTabPreviousWraps(t *testing.T) {
	tabs := testTabs()
	tabs.Previous()
	assert.Equal(t, 2, tabs.Index())
	assert.Equal(t, NewRoute(blockOther), tabs.ActiveRoute())
}

func TestTabHelp(t *testing.T) {
	tabs := testTabs()
	assert.Equal(t, "home help", tabs.ActiveHelp())
	help, ok := tabs.ActiveContextualHelp()
	assert.True(t, ok)
	assert.Equal(t, "<s> search", help)

	tabs.SetIndex(1)
	_, ok = tabs.ActiveContextualHelp()
	assert.False(t, ok)
}

func TestTabSetIndexClamps(t *testing.T) {
	tabs := testTabs()
	tab := tabs.SetIndex(9)
	assert.Equal(t, "Other", tab.Title)
	assert.Equal(t, 2, tabs.Index())
	assert.Equal(t, 1, tabs.IndexOf(blockDetails))
	assert.Equal(t, -1, tabs.IndexOf(blockError))
}

func TestEmptyTabs(t *testing.T) {
	var tabs TabState[testBlock]
	tabs.Next()
	tabs.Previous()
	assert.Equal(t, 0, tabs.Index())
	assert.Equal(t, Route[testBlock]{}, tabs.ActiveRoute())
}
