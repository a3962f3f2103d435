// Package poll holds the timing state behind automatic refreshes.
//
// Countdown is advanced once per second by the UI loop and signals when a
// refresh is due. Visibility remembers when the terminal lost focus or the
// process was suspended, and on return says whether the absence exceeded the
// poll interval so the caller can refresh immediately instead of waiting for
// the countdown. Neither type owns a timer or goroutine.
package poll
