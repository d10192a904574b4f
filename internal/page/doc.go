// Package page owns the UI state of one page view and the transitions that
// mutate it.
//
// A Controller is created per page view. Event handlers in the ui package feed
// it scroll geometry, clicks, key presses and field edits; the Controller
// updates its State and hands back tea.Cmd values for anything deferred
// (timers, the contact submission). Nothing here renders or touches the
// terminal, so every transition can be driven directly from tests.
//
// Deferred work is tracked by Timers. Each timer kind carries a sequence
// number: scheduling again supersedes the previous tick, and a tick whose
// sequence is no longer current is dropped on arrival. Teardown stops every
// timer and cancels the context handed to the Submitter, after which late
// timer or submission messages are ignored.
package page
