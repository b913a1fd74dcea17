// Package window abstracts the host window behind a small interface so
// the toolkit can run against a real gogpu window or a test stub.
//
// The gogpu-backed implementation owns the event loop. It waits for
// events instead of polling: with continuous rendering disabled the
// process sleeps until the host delivers input, a resize, or a redraw
// request, and each wakeup drives exactly one frame.
//
// Events are delivered through a single Handler callback on the event
// loop goroutine. Handlers must not block.
package window
