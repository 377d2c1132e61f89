// ABOUTME: Container root adapter: owns the registry, redraw hook, commit gating
// ABOUTME: Rebuilds containment chains per pass and dispatches the resulting diff

package overlay

import (
	"fmt"

	"github.com/mauromedda/ueberlay/internal/log"
)

// ChainFunc reports the containment chain between the Container root and an
// attached widget, relative to the root's content box. It is called once per
// refresh and must derive geometry from the live layout; returning false
// means the widget is absent from the current tree.
type ChainFunc func() (Chain, bool)

// Container is the root widget adapter. It owns one Registry and one
// Dispatcher, tracks attached Image widgets in insertion order, and gates
// commits behind the lazy-drawing transaction depth.
//
// A Container belongs to the UI loop's goroutine; it is not safe for
// concurrent use. Only the Dispatcher boundary may block on I/O.
type Container struct {
	registry *Registry
	disp     Dispatcher

	root     Rect // root clip; zero until SetRootSize
	visible  bool
	widgets  []*Image
	depth    int
	pending  bool
	inRedraw bool
	closed   bool
}

// NewContainer creates a Container dispatching to d.
func NewContainer(d Dispatcher) *Container {
	return &Container{
		registry: NewRegistry(),
		disp:     d,
		visible:  true,
	}
}

// Registry exposes the container's placement registry.
func (c *Container) Registry() *Registry {
	return c.registry
}

// SetRootSize records the root content box, origin (0,0). Placements resolve
// against this clip; until it is set everything stays hidden. Takes effect on
// the next redraw pass.
func (c *Container) SetRootSize(width, height int) {
	c.root = Rect{Width: width, Height: height}
}

// Visible reports the container-level visibility toggle.
func (c *Container) Visible() bool {
	return c.visible
}

// SetVisible toggles visibility of every placement in this container.
// Hiding takes effect at the next commit; re-showing at the next redraw.
func (c *Container) SetVisible(v bool) {
	if c.closed || v == c.visible {
		return
	}
	c.visible = v
	for _, img := range c.widgets {
		c.refresh(img)
	}
	c.maybeCommit()
}

// HideAll hides every placement now, without flipping the per-widget or
// container visibility flags. Placements reappear on the next redraw pass.
// Inside an open transaction this only mutates desired state.
func (c *Container) HideAll() {
	if c.closed {
		return
	}
	for _, img := range c.widgets {
		c.registry.SetDesired(img.id, State{Z: img.z, Payload: img.payload})
	}
	c.maybeCommit()
}

// Attach registers an Image widget with this container. The chain func may be
// nil for widgets placed directly in the root content box. Attaching to a nil
// container is a root misconfiguration and fails immediately: an absolute
// position can never be computed for such a widget.
func (c *Container) Attach(img *Image, chain ChainFunc) error {
	if c == nil {
		return ErrRootMisconfigured
	}
	if c.closed {
		return ErrClosed
	}
	if img == nil {
		return fmt.Errorf("%w: nil image widget", ErrRootMisconfigured)
	}
	if img.container != nil {
		return fmt.Errorf("overlay: placement %s is already attached", img.id)
	}
	img.container = c
	img.chain = chain
	c.widgets = append(c.widgets, img)
	c.refresh(img)
	c.maybeCommit()
	return nil
}

// Detach removes an Image widget. The placement's desired state is dropped,
// so the next commit deletes it from the renderer.
func (c *Container) Detach(img *Image) {
	if img == nil || img.container != c {
		return
	}
	img.container = nil
	img.chain = nil
	for i, w := range c.widgets {
		if w == img {
			c.widgets = append(c.widgets[:i], c.widgets[i+1:]...)
			break
		}
	}
	if c.closed {
		return
	}
	c.registry.Remove(img.id)
	c.maybeCommit()
}

// Redraw is the per-pass hook invoked by the host UI loop after it laid out
// and painted the widget tree. It re-resolves every attached placement from a
// freshly built containment chain and commits the resulting diff, unless a
// transaction is open.
func (c *Container) Redraw() {
	if c.closed {
		return
	}
	c.inRedraw = true
	for _, img := range c.widgets {
		c.refresh(img)
	}
	c.inRedraw = false
	if c.depth > 0 {
		c.pending = true
		return
	}
	c.pending = false
	c.commit()
}

// Close tears the container down. An open transaction's pending commit is
// discarded; placements already committed to the renderer are deleted.
// Attached widgets become detached and further mutations on them are no-ops.
func (c *Container) Close() error {
	if c.closed {
		return ErrClosed
	}
	c.depth = 0
	c.pending = false
	c.registry.Clear()
	c.commit()
	c.closed = true
	for _, img := range c.widgets {
		img.container = nil
		img.chain = nil
	}
	c.widgets = nil
	return nil
}

// refresh recomputes one widget's desired state from the current layout.
func (c *Container) refresh(img *Image) {
	st := State{
		Visible: img.visible && c.visible,
		Z:       img.z,
		Payload: img.payload,
	}
	if st.Visible {
		if chain, ok := c.chainFor(img); ok {
			if abs, ok := Resolve(img.local, chain); ok {
				st.Geometry = abs
				st.Placed = true
			}
		}
	}
	c.registry.SetDesired(img.id, st)
}

// chainFor builds the full containment chain for img, root link included.
func (c *Container) chainFor(img *Image) (Chain, bool) {
	if c.root.Empty() {
		return nil, false
	}
	chain := Chain{{Clip: c.root}}
	if img.chain != nil {
		sub, ok := img.chain()
		if !ok {
			return nil, false
		}
		chain = append(chain, sub...)
	}
	return chain, true
}

// maybeCommit commits now, or defers to the enclosing transaction or the
// current redraw pass's natural commit point.
func (c *Container) maybeCommit() {
	if c.closed {
		return
	}
	if c.depth > 0 || c.inRedraw {
		c.pending = true
		return
	}
	c.commit()
}

// commit diffs the registry and dispatches the batch. Only the applied prefix
// is folded into committed state; a partial failure leaves the remainder
// pending for the next commit. Dispatch failures never propagate out of the
// redraw loop.
func (c *Container) commit() {
	ops := c.registry.Diff()
	if len(ops) == 0 {
		return
	}
	applied, err := c.disp.Dispatch(ops)
	if applied > len(ops) {
		applied = len(ops)
	}
	if applied > 0 {
		c.registry.MarkCommitted(ops[:applied])
	}
	if err != nil {
		log.Warn("overlay: dispatch applied %d/%d ops: %v", applied, len(ops), err)
	}
}
