package narration

// Track identifies the narration audio a page offers: the audio source URL
// and a human-readable title for the player widget.
type Track struct {
	Source string `json:"source"`
	Title  string `json:"title"`
}

// IsZero reports whether the track is unset.
func (t Track) IsZero() bool {
	return t == Track{}
}

// WatchFunc observes changes to the current narration. The bool mirrors
// Current: false means no narration is active.
type WatchFunc func(track Track, active bool)

// Context is the application-lifetime shared narration state. A page
// acquires the current narration while it is visible and releases it on
// navigation away; the floating player renders nothing when no track is set.
// Playback controls themselves are widget-local and out of scope here.
type Context interface {
	// Acquire sets the current narration and returns a release func. Release
	// clears the state only if this acquisition still owns it; a later
	// acquisition by another page makes the release a no-op.
	Acquire(track Track) (release func())

	// Current returns the active track, or the zero value and false.
	Current() (Track, bool)

	// Watch registers an observer invoked on every change, and immediately
	// with the current state. The returned func cancels the registration.
	Watch(fn WatchFunc) (cancel func())
}
