// Package ui contains the Bubble Tea program that plays a deck.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, resizes, deck file events).
//   - Key presses in deck mode become nav.Intent values sent through the
//     command bus (internal/ui/command) to the navigation controller. The
//     controller pushes its derived view into a nav.Frame that View reads.
//   - The section picker (internal/ui/picker.go, input.go) keeps filter text
//     entry isolated from deck navigation; choosing an entry is a jump intent.
//
// Layout:
//   - Sections are stacked vertically, one screen each, and the frame's
//     vertical offset picks the rows on screen.
//   - A group body is a horizontal strip of slots cut at the frame's
//     horizontal offset for that group (strip.go). Widths reach the
//     navigation core in layout units of eight per column.
//
// Backend interactions:
//   - A backend.Watcher streams deck file changes; Update waits for those
//     events and hands them to applyBackendEvent, which decodes the deck via
//     the dispatcher and reloads the controller so positions are clamped.
package ui
