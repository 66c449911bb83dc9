// Package viewer implements the interaction state machine behind the
// product image lightbox: pointer-drag swiping between images, keyboard
// navigation and the settle animation lock. It has no rendering
// concerns; embedding clients feed it input events and read back the
// resulting index and drag offset.
package viewer

import (
	"math"
	"time"
)

// Swipe commit thresholds. A drag flips to the neighbouring image when
// it travels far enough or fast enough; everything else rebounds.
const (
	SwipeDistanceThreshold = 50.0  // px
	SwipeVelocityThreshold = 0.5   // px/ms
	SettleDuration         = 300 * time.Millisecond
)

// State is the controller's lifecycle phase
type State string

const (
	StateIdle          State = "idle"
	StateDragging      State = "dragging"
	StateTransitioning State = "transitioning"
)

// Key is a keyboard input understood while the viewer is open
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyEscape     Key = "Escape"
)

// Clock abstracts time so gesture timing is testable
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Controller drives a single image viewer session
type Controller struct {
	clock      Clock
	imageCount int

	open       bool
	state      State
	index      int
	dragOffset float64

	startX     float64
	startY     float64
	startedAt  time.Time
	horizontal bool
	settleEnd  time.Time
}

// NewController creates a controller for a gallery of imageCount images
func NewController(imageCount int) *Controller {
	return NewControllerWithClock(imageCount, systemClock{})
}

// NewControllerWithClock injects a clock for deterministic tests
func NewControllerWithClock(imageCount int, clock Clock) *Controller {
	if imageCount < 0 {
		imageCount = 0
	}
	return &Controller{clock: clock, imageCount: imageCount, state: StateIdle}
}

// Open shows the viewer at the given image, resetting any prior gesture
func (c *Controller) Open(initialIndex int) {
	c.open = true
	c.state = StateIdle
	c.index = clampIndex(initialIndex, c.imageCount)
	c.dragOffset = 0
	c.horizontal = false
	c.settleEnd = time.Time{}
}

// Close hides the viewer and discards gesture state
func (c *Controller) Close() {
	c.open = false
	c.state = StateIdle
	c.dragOffset = 0
}

// IsOpen reports whether the viewer is showing
func (c *Controller) IsOpen() bool { return c.open }

// Index returns the image currently in view
func (c *Controller) Index() int { return c.index }

// DragOffset returns the live horizontal displacement of an active drag
func (c *Controller) DragOffset() float64 { return c.dragOffset }

// CurrentState reports the lifecycle phase, settling the transition
// lock if its window has elapsed
func (c *Controller) CurrentState() State {
	c.settle()
	return c.state
}

// PointerDown begins a drag. Input is ignored while the viewer is
// closed or still settling from the previous swipe.
func (c *Controller) PointerDown(x, y float64) {
	c.settle()
	if !c.open || c.state != StateIdle {
		return
	}
	c.state = StateDragging
	c.startX = x
	c.startY = y
	c.startedAt = c.clock.Now()
	c.horizontal = false
	c.dragOffset = 0
}

// PointerMove updates the drag offset. The offset only follows the
// pointer once the gesture is horizontally dominant, so vertical
// scrolling over the viewer does not shift the image.
func (c *Controller) PointerMove(x, y float64) {
	if c.state != StateDragging {
		return
	}
	deltaX := x - c.startX
	deltaY := y - c.startY
	if math.Abs(deltaX) > math.Abs(deltaY) {
		c.horizontal = true
		c.dragOffset = deltaX
	}
}

// PointerUp ends the drag and either commits a swipe to a neighbouring
// image or rebounds. A swipe past either end of the gallery rebounds.
func (c *Controller) PointerUp(x, y float64) {
	if c.state != StateDragging {
		return
	}
	deltaX := x - c.startX
	elapsed := c.clock.Now().Sub(c.startedAt)
	velocity := 0.0
	if ms := float64(elapsed.Milliseconds()); ms > 0 {
		velocity = math.Abs(deltaX) / ms
	}

	// The commit is decided from distance and speed alone; horizontal
	// dominance only gates the live drag offset
	if math.Abs(deltaX) > SwipeDistanceThreshold || velocity > SwipeVelocityThreshold {
		if deltaX > 0 && c.index > 0 {
			c.index--
		} else if deltaX < 0 && c.index < c.imageCount-1 {
			c.index++
		}
	}

	c.dragOffset = 0
	c.horizontal = false
	// Commit or rebound, the image animates back into place and input
	// stays locked for the settle window
	c.beginSettle()
}

// Next advances to the following image, if any
func (c *Controller) Next() {
	c.settle()
	if !c.open || c.state != StateIdle {
		return
	}
	if c.index < c.imageCount-1 {
		c.index++
		c.beginSettle()
	}
}

// Previous steps back to the preceding image, if any
func (c *Controller) Previous() {
	c.settle()
	if !c.open || c.state != StateIdle {
		return
	}
	if c.index > 0 {
		c.index--
		c.beginSettle()
	}
}

// JumpTo selects an arbitrary image, as from a thumbnail strip
func (c *Controller) JumpTo(index int) {
	c.settle()
	if !c.open || c.state != StateIdle {
		return
	}
	index = clampIndex(index, c.imageCount)
	if index != c.index {
		c.index = index
		c.beginSettle()
	}
}

// HandleKey applies keyboard navigation while the viewer is open
func (c *Controller) HandleKey(key Key) {
	if !c.open {
		return
	}
	switch key {
	case KeyArrowLeft:
		c.Previous()
	case KeyArrowRight:
		c.Next()
	case KeyEscape:
		c.Close()
	}
}

func (c *Controller) beginSettle() {
	c.state = StateTransitioning
	c.settleEnd = c.clock.Now().Add(SettleDuration)
}

// settle releases the transition lock once its window has passed
func (c *Controller) settle() {
	if c.state == StateTransitioning && !c.clock.Now().Before(c.settleEnd) {
		c.state = StateIdle
	}
}

func clampIndex(index, count int) int {
	if index < 0 {
		return 0
	}
	if count > 0 && index >= count {
		return count - 1
	}
	return index
}
