package timing

import (
	"sync"
	"time"
)

// Debounce wraps fn so that it runs once, delay after the most recent call
// to the returned call function. Every call within the window resets the
// pending timer, so a steady stream of calls keeps pushing the invocation
// out until the stream pauses.
//
// The returned stop function cancels any pending invocation and releases
// the timer; it is safe to call multiple times. Both returned functions are
// safe for concurrent use. A non-positive delay degrades to calling fn
// synchronously on every call.
func Debounce(fn func(), delay time.Duration) (call func(), stop func()) {
	if delay <= 0 {
		return fn, func() {}
	}

	var mu sync.Mutex
	var timer *time.Timer

	call = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, fn)
	}

	stop = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
			timer = nil
		}
	}

	return call, stop
}

// Throttle wraps fn so that it runs immediately on the first call, then at
// most once per interval: calls landing inside a window are dropped, and
// the first call after the window elapses runs immediately and starts a
// new one.
//
// The returned function is safe for concurrent use. fn itself runs outside
// the internal lock, so a slow fn does not block concurrent callers from
// being evaluated against the window. A non-positive interval degrades to
// calling fn on every call.
func Throttle(fn func(), interval time.Duration) func() {
	if interval <= 0 {
		return fn
	}

	var mu sync.Mutex
	var last time.Time

	return func() {
		mu.Lock()
		now := time.Now()
		if !last.IsZero() && now.Sub(last) < interval {
			mu.Unlock()
			return
		}
		last = now
		mu.Unlock()

		fn()
	}
}
