// ABOUTME: Containment-chain position resolution from widget-local to absolute cells
// ABOUTME: Folds ancestor offsets and clip rectangles; empty intersection means hidden

package overlay

// Link is one ancestor's contribution to a containment chain: the origin of
// its content box relative to its parent, and the clip rectangle it imposes
// in its own coordinate space.
type Link struct {
	Origin Point
	Clip   Rect
}

// Chain is the ordered ancestor list from the root down to the widget owning
// a placement. Chains carry geometry for exactly one redraw pass; they must
// be rebuilt from the live layout every pass, never cached across passes,
// because ancestor sizes and offsets change under resize and reflow.
type Chain []Link

// Resolve translates a widget-local rectangle through its containment chain
// into an absolute terminal rectangle. The accumulated offset is the sum of
// ancestor origins; the accumulated clip is the intersection of ancestor clip
// rectangles, each taken in absolute coordinates. Returns false when the
// chain is empty, any ancestor reports zero size, or the final rectangle is
// clipped away entirely. That outcome is a valid hidden state, not an error.
func Resolve(local Rect, chain Chain) (Rect, bool) {
	if len(chain) == 0 {
		return Rect{}, false
	}

	var off Point
	var clip Rect
	for i, link := range chain {
		if link.Clip.Empty() {
			return Rect{}, false
		}
		off = off.Add(link.Origin)
		abs := link.Clip.Translate(off)
		if i == 0 {
			clip = abs
			continue
		}
		clip = clip.Intersect(abs)
		if clip.Empty() {
			return Rect{}, false
		}
	}

	resolved := local.Translate(off).Intersect(clip)
	if resolved.Empty() {
		return Rect{}, false
	}
	return resolved, true
}
