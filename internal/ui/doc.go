// Package ui contains the Bubble Tea program for the Radarr client.
//
// Message flow:
//   - Bubble Tea invokes Model.Update, which routes each tea.Msg through a
//     typed handler table. Key presses go to the handlers.Registry, which
//     owns all navigation and editing on the active block.
//   - Handlers and the data dispatcher never perform I/O. They queue radarr
//     events on a command.Queue; at the end of every update the queue builds
//     a network.Request for each event from the current state and submits it
//     to the backend worker.
//   - The worker runs requests off the UI goroutine and streams results back
//     as backend events. The model applies them with network.Apply, the only
//     place responses are written into the state.
//   - A periodic tick advances the marquee of the selected title and lets the
//     dispatcher refresh the data behind the current route.
//
// Rendering draws the active main tab, then layers the popups of the current
// route over it: the popup of the route's context first and the active
// block's popup on top.
package ui
