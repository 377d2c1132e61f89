// ABOUTME: Dispatcher boundary to the external overlay renderer
// ABOUTME: Partial-batch contract: applied prefix counts, remainder is retried

package overlay

import "errors"

// ErrRootMisconfigured is returned when an Image widget is attached without
// a usable Container ancestor. Absolute positions can never be computed for
// such a widget, so this surfaces immediately instead of degrading.
var ErrRootMisconfigured = errors.New("overlay: image widget has no container ancestor")

// ErrClosed is returned by operations on a Container that was torn down.
var ErrClosed = errors.New("overlay: container closed")

// Dispatcher delivers one commit batch to the external overlay renderer.
//
// Dispatch sends ops strictly in order and returns how many the renderer
// accepted. applied < len(ops) with a non-nil error means the prefix
// ops[:applied] took effect; the caller folds only that prefix into
// committed state and retries the remainder on the next commit. Dispatch
// may block on renderer I/O but must not retain the slice.
type Dispatcher interface {
	Dispatch(ops []Op) (applied int, err error)
}
