// Package ui contains the Bubble Tea program that renders the site in a
// terminal. The Model owns presentation only; every piece of page state
// (active section, scroll progress, popup, capability tab, form fields and
// submission outcome) lives in page.Controller and is read back through
// Controller.State on each render.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse wheel, resizes, controller timers,
//     submission results, spinner frames and clipboard results).
//   - Key presses go to the contact form when it is open, otherwise to the
//     popup, the section menu or the page, in that order.
//   - Every scroll of the viewport is reported to the controller as pixel
//     geometry (RowPixels per terminal row) so the controller's thresholds
//     apply unchanged.
//
// Rendering:
//   - renderDocument lays out all sections into one scrollable document and
//     records the row at which each section starts.
//   - The nav bar, progress bar, status line and help footer surround a
//     bubbles viewport; the popup, menu and form replace the viewport area
//     while they are shown.
//
// Side effects such as clipboard writes run through the internal/ui/command
// bus so they stay off the event loop and are traced.
package ui
