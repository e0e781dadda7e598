// Package timing provides rate-control wrappers for plain functions.
//
// Debounce delays execution until calls stop arriving for a configured
// window, which suits collapsing bursts (keystrokes, file-change events)
// into a single action. Throttle guarantees at most one execution per
// interval with the first call passing through immediately, which suits
// capping the frequency of an expensive action without delaying it.
//
//	call, stop := timing.Debounce(reindex, 250*time.Millisecond)
//	defer stop()
//	for range events {
//	    call()
//	}
//
// The wrappers hold no resources beyond a single timer handle and are safe
// for concurrent use.
package timing
