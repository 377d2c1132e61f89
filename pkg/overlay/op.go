// ABOUTME: Renderer-facing operations produced by a registry diff
// ABOUTME: Create/Update/Delete, dispatched in order within one commit batch

package overlay

// OpKind classifies one placement operation.
type OpKind int

const (
	// OpCreate introduces a placement the renderer has never seen.
	OpCreate OpKind = iota
	// OpUpdate moves or restacks a placement the renderer already shows.
	OpUpdate
	// OpDelete removes a placement from the renderer.
	OpDelete
)

// String returns the operation name.
func (k OpKind) String() string {
	switch k {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Op is one ordered operation of a commit batch. State carries the target
// geometry for creates and updates; it is the zero State for deletes.
type Op struct {
	Kind  OpKind
	ID    ID
	State State
}
