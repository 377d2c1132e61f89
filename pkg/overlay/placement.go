// ABOUTME: Placement identity and per-version state (geometry, visibility, z)
// ABOUTME: State values are immutable snapshots; the registry stores them per ID

package overlay

import (
	"fmt"
	"sync/atomic"
)

// ID identifies one placement for its whole lifetime. IDs are assigned at
// widget creation and never reused while the process lives.
type ID string

var nextPlacementID atomic.Uint64

// NewID returns a fresh process-unique placement identifier.
func NewID() ID {
	return ID(fmt.Sprintf("ueberlay-%d", nextPlacementID.Add(1)))
}

// State is one version of a placement's desired geometry and visibility.
// A State with Placed == false has no onscreen rectangle; such a placement
// is treated as hidden regardless of the Visible flag.
type State struct {
	Geometry Rect // absolute terminal-cell rectangle; meaningless when !Placed
	Placed   bool // owning widget resolved to an onscreen rectangle
	Visible  bool // logical show/hide intent
	Z        int  // stacking hint; ties break by placement insertion order
	Payload  string
}

// Showable reports whether the state can actually be committed to the
// renderer: logically visible with a defined, non-empty geometry.
func (s State) Showable() bool {
	return s.Visible && s.Placed && !s.Geometry.Empty()
}

// equalShown compares the renderer-relevant parts of two showable states.
func (s State) equalShown(o State) bool {
	return s.Geometry == o.Geometry && s.Z == o.Z && s.Payload == o.Payload
}
