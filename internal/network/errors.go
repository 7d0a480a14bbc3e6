package network

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoSelection is returned when an event needs a selected row and the
	// relevant table is empty.
	ErrNoSelection = errors.New("nothing selected")
	// ErrNoModal is returned when an edit event fires without its form.
	ErrNoModal = errors.New("form is not open")
	// ErrUnknownEvent is returned for events with no endpoint.
	ErrUnknownEvent = errors.New("unknown event")
)

// StatusError is a non-success HTTP response.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("radarr returned status %d", e.Status)
	}
	return fmt.Sprintf("radarr returned status %d: %s", e.Status, e.Body)
}

func newStatusError(status int, body []byte) *StatusError {
	return &StatusError{Status: status, Body: collapseWhitespace(string(body))}
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
