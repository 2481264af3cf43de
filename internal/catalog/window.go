package catalog

import "time"

// WindowState names the display-window lifecycle states.
type WindowState string

const (
	// WindowIdle: freshly reset, first page shown, more pages available.
	WindowIdle WindowState = "idle"
	// WindowActive: has more pages and is ready to advance.
	WindowActive WindowState = "active"
	// WindowLoading: a page append is in flight. Pagination slices an
	// in-memory array, so this state resolves synchronously; it exists for
	// UI feedback only.
	WindowLoading WindowState = "loading"
	// WindowExhausted: every filtered product is displayed.
	WindowExhausted WindowState = "exhausted"
)

// ScrollEvent is a viewport snapshot delivered by the render surface.
type ScrollEvent struct {
	Top            float64 `json:"top"`
	ViewportHeight float64 `json:"viewportHeight"`
	DocumentHeight float64 `json:"documentHeight"`
}

// throttleInterval coalesces scroll evaluations: while a window is open
// further events are dropped, guaranteeing at most one evaluation per
// interval.
const throttleInterval = 100 * time.Millisecond

// WindowController owns the monotonically growing display window over the
// filtered product list. It is not safe for concurrent use; the owning
// Session serializes every mutation behind its mutex.
type WindowController struct {
	pageSize int
	now      func() time.Time

	filtered  []Product
	displayed []Product
	seen      map[string]struct{}
	page      int
	hasMore   bool
	loading   bool
	state     WindowState

	nextEval      time.Time
	showScrollTop bool
}

// NewWindowController builds a controller with an empty window.
func NewWindowController(cfg Config) *WindowController {
	c := &WindowController{
		pageSize: cfg.withDefaults().PageSize,
		now:      time.Now,
		state:    WindowExhausted,
	}
	c.Reset(nil)
	return c
}

// Reset replaces the filtered list and rebuilds the window at page 1. Any
// previously accumulated pages are discarded, which is also how a filter
// narrowing below the current depth shrinks the window.
func (c *WindowController) Reset(filtered []Product) {
	c.filtered = filtered
	c.page = 1
	c.loading = false
	c.seen = make(map[string]struct{})
	c.displayed = c.displayed[:0]

	end := min(c.pageSize, len(filtered))
	for _, p := range filtered[:end] {
		c.appendUnique(p)
	}
	c.hasMore = len(filtered) > c.pageSize
	if c.hasMore {
		c.state = WindowIdle
	} else {
		c.state = WindowExhausted
	}
}

// HandleScroll evaluates a scroll event through the 100ms throttle. It
// returns true when the event advanced the window. The scroll-to-top
// affordance shares the same throttled evaluation but is independent of
// pagination.
func (c *WindowController) HandleScroll(ev ScrollEvent) bool {
	now := c.now()
	if now.Before(c.nextEval) {
		return false
	}
	c.nextEval = now.Add(throttleInterval)

	c.showScrollTop = ev.Top > ScrollTopAffordancePx

	nearBottom := ev.Top+ev.ViewportHeight >= ev.DocumentHeight-ScrollBottomProximityPx
	if !nearBottom || c.loading || !c.hasMore {
		return false
	}
	c.loadMore()
	return true
}

// loadMore appends the next page slice to the window. Requesting a page
// beyond the available data yields an empty increment and flips the window
// to exhausted rather than erroring.
func (c *WindowController) loadMore() {
	c.loading = true
	c.state = WindowLoading

	c.page++
	start := (c.page - 1) * c.pageSize
	end := min(start+c.pageSize, len(c.filtered))
	if start >= len(c.filtered) {
		c.hasMore = false
		c.loading = false
		c.state = WindowExhausted
		return
	}
	for _, p := range c.filtered[start:end] {
		c.appendUnique(p)
	}

	c.hasMore = c.page*c.pageSize < len(c.filtered)
	c.loading = false
	if c.hasMore {
		c.state = WindowActive
	} else {
		c.state = WindowExhausted
	}
}

// appendUnique guards the accumulation against duplicate identifiers.
func (c *WindowController) appendUnique(p Product) {
	if _, ok := c.seen[p.ID]; ok {
		return
	}
	c.seen[p.ID] = struct{}{}
	c.displayed = append(c.displayed, p)
}

// Displayed returns the currently rendered prefix of the filtered list.
func (c *WindowController) Displayed() []Product {
	out := make([]Product, len(c.displayed))
	copy(out, c.displayed)
	return out
}

// Page returns the 1-based page cursor.
func (c *WindowController) Page() int { return c.page }

// HasMore reports whether further pages remain.
func (c *WindowController) HasMore() bool { return c.hasMore }

// State returns the current window state.
func (c *WindowController) State() WindowState { return c.state }

// ShowScrollTop reports whether the scroll-to-top affordance is visible.
func (c *WindowController) ShowScrollTop() bool { return c.showScrollTop }
