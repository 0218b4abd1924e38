package selection

// Controller tracks which region, if any, is currently inspected. It
// holds only the region key, never a stats entry, so a rebuilt table
// cannot leave it dangling: a key that no longer exists simply misses
// on lookup and the consumer renders no detail.
//
// Two states, two transitions. Select moves to selected from any state
// (re-selecting the same key is allowed), Dismiss moves to unselected
// from any state. Nothing else mutates it.
type Controller struct {
	key      string
	selected bool
}

func New() *Controller {
	return &Controller{}
}

// Select marks key as the inspected region.
func (c *Controller) Select(key string) {
	c.key = key
	c.selected = true
}

// Dismiss clears the selection.
func (c *Controller) Dismiss() {
	c.key = ""
	c.selected = false
}

// Current returns the selected region key, or ok=false when nothing is
// selected.
func (c *Controller) Current() (key string, ok bool) {
	return c.key, c.selected
}
