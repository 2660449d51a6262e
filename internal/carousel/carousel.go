// Package carousel holds the image gallery state of a single property: which images
// are still displayable and which one is shown.
package carousel

// State is the persisted form of a Controller.
type State struct {
	Images []string `json:"images"`
	Index  int      `json:"index"`
}

// Controller presents one image at a time and drops images that fail to load.
//
// Invariant: len(images) >= 1 and 0 <= index < len(images). An empty or fully
// failed list is replaced by the single placeholder image.
type Controller struct {
	images      []string
	index       int
	placeholder string
}

// New builds a controller for one entity. The input is copied; an empty input yields
// a placeholder-only gallery.
func New(images []string, placeholder string) *Controller {
	c := &Controller{placeholder: placeholder}
	if len(images) == 0 {
		c.images = []string{placeholder}
		return c
	}
	c.images = append([]string(nil), images...)
	return c
}

// Restore rebuilds a controller from persisted state, repairing anything that would
// break the invariant.
func Restore(s State, placeholder string) *Controller {
	c := New(s.Images, placeholder)
	switch {
	case s.Index < 0:
		c.index = 0
	case s.Index >= len(c.images):
		c.index = len(c.images) - 1
	default:
		c.index = s.Index
	}
	return c
}

// State returns a copy of the controller's state for persistence.
func (c *Controller) State() State {
	return State{Images: c.Images(), Index: c.index}
}

// Advance moves forward (+1) or backward (-1), wrapping at both ends.
func (c *Controller) Advance(direction int) {
	n := len(c.images)
	if direction > 0 {
		direction = 1
	} else if direction < 0 {
		direction = -1
	}
	c.index = (c.index + direction + n) % n
}

// Next is Advance(+1).
func (c *Controller) Next() { c.Advance(1) }

// Prev is Advance(-1).
func (c *Controller) Prev() { c.Advance(-1) }

// JumpTo selects an image directly. Out-of-range indexes are ignored.
func (c *Controller) JumpTo(index int) bool {
	if index < 0 || index >= len(c.images) {
		return false
	}
	c.index = index
	return true
}

// OnImageLoadFailure evicts the image currently shown. Its successor slides into the
// same slot, so the index only moves when the last entry was removed. When nothing is
// left the gallery falls back to the placeholder.
func (c *Controller) OnImageLoadFailure() {
	remaining := make([]string, 0, len(c.images)-1)
	remaining = append(remaining, c.images[:c.index]...)
	remaining = append(remaining, c.images[c.index+1:]...)

	if len(remaining) == 0 {
		c.images = []string{c.placeholder}
		c.index = 0
		return
	}

	c.images = remaining
	if c.index >= len(remaining) {
		c.index = len(remaining) - 1
	}
}

// Current is the image reference to display.
func (c *Controller) Current() string { return c.images[c.index] }

// Index is the position of the displayed image.
func (c *Controller) Index() int { return c.index }

// Len is the number of displayable images.
func (c *Controller) Len() int { return len(c.images) }

// Images returns a copy of the working list.
func (c *Controller) Images() []string { return append([]string(nil), c.images...) }

// ShowNavigation reports whether arrows and position indicators should be rendered.
func (c *Controller) ShowNavigation() bool { return len(c.images) > 1 }

// IsPlaceholder reports whether only the fallback image is left.
func (c *Controller) IsPlaceholder() bool {
	return len(c.images) == 1 && c.images[0] == c.placeholder
}
