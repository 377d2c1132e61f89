// ABOUTME: Image leaf widget adapter: one placement with show/hide/move mutators
// ABOUTME: Mutators write desired state only; effects appear at the next commit

package overlay

import "github.com/mauromedda/ueberlay/internal/log"

// Image is the leaf widget adapter for one overlay placement. The payload
// (image source path or handle) is fixed at creation; geometry and visibility
// are mutable. Mutators only write the registry's desired state through the
// owning Container — they never touch committed state and never perform
// renderer I/O themselves.
type Image struct {
	id      ID
	payload string
	z       int
	local   Rect
	visible bool

	container *Container
	chain     ChainFunc
}

// NewImage creates a detached Image widget for the given payload. The widget
// starts logically visible with an empty local rectangle; attach it to a
// Container and Move it to give it geometry.
func NewImage(payload string) *Image {
	return &Image{
		id:      NewID(),
		payload: payload,
		visible: true,
	}
}

// ID returns the placement's stable identifier.
func (i *Image) ID() ID {
	return i.id
}

// Payload returns the immutable image source reference.
func (i *Image) Payload() string {
	return i.payload
}

// Local returns the widget-local rectangle.
func (i *Image) Local() Rect {
	return i.local
}

// Show marks the placement logically visible.
func (i *Image) Show() {
	i.mutate(func() { i.visible = true })
}

// Hide marks the placement logically hidden.
func (i *Image) Hide() {
	i.mutate(func() { i.visible = false })
}

// Move sets the widget-local rectangle.
func (i *Image) Move(local Rect) {
	i.mutate(func() { i.local = local })
}

// SetZ sets the stacking hint. Ties keep insertion order.
func (i *Image) SetZ(z int) {
	i.mutate(func() { i.z = z })
}

// mutate applies a field change and pushes the widget's refreshed desired
// state through the container. Mutating a detached widget is a logged no-op,
// never an error: the field change is kept so a later Attach picks it up.
func (i *Image) mutate(apply func()) {
	apply()
	if i.container == nil {
		log.Debug("overlay: mutation on detached placement %s ignored", i.id)
		return
	}
	i.container.refresh(i)
	i.container.maybeCommit()
}
