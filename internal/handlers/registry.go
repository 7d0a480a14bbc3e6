package handlers

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/servarr-tui/internal/radarr"
	"github.com/atomicstack/servarr-tui/internal/state"
)

var (
	ErrUnownedBlock   = errors.New("block has no handler")
	ErrDuplicateOwner = errors.New("block has more than one handler")
)

// Handler reacts to keys while one of its blocks is active.
type Handler interface {
	Blocks() radarr.BlockSet
	Handle(c *Context)
}

// inputHandler is implemented by handlers owning text inputs. Input returns
// the text edited by the active block, or nil.
type inputHandler interface {
	Input(c *Context) *radarr.ScrollText
}

// Context is one key press delivered to a handler.
type Context struct {
	App   *state.App
	Data  *radarr.Data
	Key   tea.KeyMsg
	Route radarr.Route
	Block radarr.Block

	action action
}

// Registry maps every block to exactly one handler.
type Registry struct {
	handlers []Handler
	owners   map[radarr.Block]Handler
}

// NewRegistry builds a registry and verifies that every block has exactly
// one owner.
func NewRegistry(handlers ...Handler) (*Registry, error) {
	r := &Registry{handlers: handlers, owners: make(map[radarr.Block]Handler)}
	for _, h := range handlers {
		for _, b := range h.Blocks().Blocks() {
			if prev, ok := r.owners[b]; ok {
				return nil, fmt.Errorf("%w: %s owned by %s and %s",
					ErrDuplicateOwner, b, prev.Blocks().Name(), h.Blocks().Name())
			}
			r.owners[b] = h
		}
	}
	for _, b := range radarr.AllBlocks() {
		if _, ok := r.owners[b]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnownedBlock, b)
		}
	}
	return r, nil
}

// Default returns the registry over the movie library handlers.
func Default() *Registry {
	r, err := NewRegistry(
		libraryHandler{},
		collectionsHandler{},
		collectionDetailsHandler{},
		addMovieHandler{},
		editMovieHandler{},
		editCollectionHandler{},
		deleteMovieHandler{},
		movieDetailsHandler{},
		downloadsHandler{},
		blocklistHandler{},
		rootFoldersHandler{},
		indexersHandler{},
		editIndexerHandler{},
		indexerSettingsHandler{},
		testAllIndexersHandler{},
		systemHandler{},
		systemDetailsHandler{},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Owner returns the handler responsible for b.
func (r *Registry) Owner(b radarr.Block) (Handler, bool) {
	h, ok := r.owners[b]
	return h, ok
}

// ActiveInput returns the text edited by the active block, or nil when the
// active block does not capture text.
func (r *Registry) ActiveInput(app *state.App) *radarr.ScrollText {
	route := app.Route()
	if !radarr.InputBlocks.Contains(route.Block) {
		return nil
	}
	in, ok := r.owners[route.Block].(inputHandler)
	if !ok {
		return nil
	}
	return in.Input(&Context{App: app, Data: app.Data, Route: route, Block: route.Block})
}

// HandleKey applies the global keys, then hands msg to the owner of the
// active block. It reports whether the application should quit.
func (r *Registry) HandleKey(app *state.App, msg tea.KeyMsg) bool {
	route := app.Route()
	block := route.Block
	app.ShouldIgnoreQuitKey = radarr.InputBlocks.Contains(block)

	switch {
	case key.Matches(msg, Keys.ForceQuit):
		return true
	case key.Matches(msg, Keys.Quit) && !app.ShouldIgnoreQuitKey:
		return true
	case key.Matches(msg, Keys.Esc) && app.HasError():
		app.ClearError()
		return false
	case radarr.ErrorBlocks.Contains(block):
		app.Pop()
		return false
	}

	if !app.ShouldIgnoreQuitKey {
		switch {
		case key.Matches(msg, Keys.Refresh):
			app.ShouldRefresh = true
			return false
		case app.Depth() == 1 && key.Matches(msg, Keys.NextTab):
			app.SwitchTab(1)
			return false
		case app.Depth() == 1 && key.Matches(msg, Keys.PrevTab):
			app.SwitchTab(-1)
			return false
		}
	}

	h, ok := r.owners[block]
	if !ok {
		return false
	}
	c := &Context{
		App:    app,
		Data:   app.Data,
		Key:    msg,
		Route:  route,
		Block:  block,
		action: classify(msg),
	}
	if in, ok := h.(inputHandler); ok && app.ShouldIgnoreQuitKey {
		if text := in.Input(c); text != nil && editText(text, msg) {
			return false
		}
	}
	h.Handle(c)
	return false
}
