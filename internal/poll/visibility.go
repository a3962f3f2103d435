package poll

import "time"

// Visibility tracks how long the interface has been out of view.
type Visibility struct {
	threshold time.Duration
	hiddenAt  time.Time
	hidden    bool
}

// NewVisibility reports a long absence once the interface was hidden for
// more than threshold.
func NewVisibility(threshold time.Duration) Visibility {
	return Visibility{threshold: threshold}
}

// Hide records the moment the interface went out of view. Repeated calls keep
// the first timestamp.
func (v *Visibility) Hide(at time.Time) {
	if v.hidden {
		return
	}
	v.hidden = true
	v.hiddenAt = at
}

// Show marks the interface visible again and reports whether it was hidden for
// longer than the threshold, in which case an immediate refresh is due.
func (v *Visibility) Show(at time.Time) bool {
	if !v.hidden {
		return false
	}
	away := at.Sub(v.hiddenAt)
	v.hidden = false
	v.hiddenAt = time.Time{}
	return away > v.threshold
}

// Hidden reports whether the interface is currently out of view.
func (v Visibility) Hidden() bool { return v.hidden }
