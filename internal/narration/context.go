package narration

import (
	"sync"

	"github.com/looprevenue/loop-cms/internal/logging"
	publicnarration "github.com/looprevenue/loop-cms/narration"
	"github.com/looprevenue/loop-cms/pkg/interfaces"
)

type (
	Track     = publicnarration.Track
	WatchFunc = publicnarration.WatchFunc
	Context   = publicnarration.Context
)

// SharedContext is the process-wide narration state. It lives for the whole
// application and is torn down only with it.
type SharedContext struct {
	mu       sync.Mutex
	track    Track
	active   bool
	owner    uint64
	sequence uint64

	watchers    map[uint64]WatchFunc
	nextWatcher uint64

	logger interfaces.Logger
}

// ContextOption customises the shared context.
type ContextOption func(*SharedContext)

// WithLogger wires the module logger.
func WithLogger(logger interfaces.Logger) ContextOption {
	return func(c *SharedContext) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewContext constructs an empty narration context.
func NewContext(opts ...ContextOption) *SharedContext {
	c := &SharedContext{
		watchers: make(map[uint64]WatchFunc),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Acquire sets the current narration for the caller's lifetime and returns
// the release func. The release clears the state only while this acquisition
// still owns it, so navigating to another narrated page before the old
// release runs does not drop the new track.
func (c *SharedContext) Acquire(track Track) func() {
	c.mu.Lock()
	c.sequence++
	token := c.sequence
	c.owner = token
	c.track = track
	c.active = !track.IsZero()
	watchers := c.snapshotWatchers()
	state, active := c.track, c.active
	c.mu.Unlock()

	c.logger.Debug("narration acquired", "title", track.Title, "source", track.Source)
	notify(watchers, state, active)

	var once sync.Once
	return func() {
		once.Do(func() {
			c.releaseOwned(token)
		})
	}
}

func (c *SharedContext) releaseOwned(token uint64) {
	c.mu.Lock()
	if c.owner != token {
		c.mu.Unlock()
		return
	}
	c.track = Track{}
	c.active = false
	c.owner = 0
	watchers := c.snapshotWatchers()
	c.mu.Unlock()

	c.logger.Debug("narration released")
	notify(watchers, Track{}, false)
}

// Current returns the active track, or the zero value and false.
func (c *SharedContext) Current() (Track, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active {
		return Track{}, false
	}
	return c.track, true
}

// Watch registers an observer. It fires immediately with the current state
// and then on every change until cancelled.
func (c *SharedContext) Watch(fn WatchFunc) func() {
	if fn == nil {
		return func() {}
	}

	c.mu.Lock()
	c.nextWatcher++
	id := c.nextWatcher
	c.watchers[id] = fn
	state, active := c.track, c.active
	c.mu.Unlock()

	fn(state, active)

	return func() {
		c.mu.Lock()
		delete(c.watchers, id)
		c.mu.Unlock()
	}
}

func (c *SharedContext) snapshotWatchers() []WatchFunc {
	out := make([]WatchFunc, 0, len(c.watchers))
	for _, fn := range c.watchers {
		out = append(out, fn)
	}
	return out
}

func notify(watchers []WatchFunc, track Track, active bool) {
	for _, fn := range watchers {
		fn(track, active)
	}
}

var _ Context = (*SharedContext)(nil)
