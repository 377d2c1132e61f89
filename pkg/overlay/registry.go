// ABOUTME: Registry tracks desired vs committed placement state per ID
// ABOUTME: Diff computes the minimal create/update/delete batch between the two

package overlay

import "sort"

type entry struct {
	state State
	seq   uint64 // insertion order, tie-break for equal Z
}

// Registry owns the two placement maps of one Container: the desired state
// written by widget mutations and redraw passes, and the committed state
// reflecting what the renderer last confirmed. It is not safe for concurrent
// use; one UI loop owns it.
type Registry struct {
	desired   map[ID]entry
	committed map[ID]entry
	seq       uint64
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		desired:   make(map[ID]entry),
		committed: make(map[ID]entry),
	}
}

// SetDesired overwrites the desired state for id. It has no side effects
// beyond the map and is idempotent for identical values. The insertion
// sequence of an id survives geometry updates.
func (r *Registry) SetDesired(id ID, st State) {
	e, ok := r.desired[id]
	if !ok {
		r.seq++
		e.seq = r.seq
	}
	e.state = st
	r.desired[id] = e
}

// Remove drops the desired entry for id. The next diff emits a delete if the
// placement was committed.
func (r *Registry) Remove(id ID) {
	delete(r.desired, id)
}

// Clear drops every desired entry. Used on container teardown so the next
// diff deletes everything still committed.
func (r *Registry) Clear() {
	r.desired = make(map[ID]entry)
}

// Desired returns the desired state for id.
func (r *Registry) Desired(id ID) (State, bool) {
	e, ok := r.desired[id]
	return e.state, ok
}

// Committed returns the last confirmed state for id.
func (r *Registry) Committed(id ID) (State, bool) {
	e, ok := r.committed[id]
	return e.state, ok
}

// Diff compares desired against committed state and returns the operations
// that make the renderer match the desired state. Deletes come first, then
// creates and updates ordered by (Z, insertion sequence). Desired entries
// that are not showable count as absent, so they can only produce deletes.
func (r *Registry) Diff() []Op {
	var deletes, changes []Op

	for id, ce := range r.committed {
		de, ok := r.desired[id]
		if !ok || !de.state.Showable() {
			deletes = append(deletes, Op{Kind: OpDelete, ID: id, State: State{Z: ce.state.Z}})
		}
	}
	sortOps(deletes, func(id ID) entry { return r.committed[id] })

	for id, de := range r.desired {
		if !de.state.Showable() {
			continue
		}
		ce, ok := r.committed[id]
		switch {
		case !ok:
			changes = append(changes, Op{Kind: OpCreate, ID: id, State: de.state})
		case !ce.state.equalShown(de.state):
			changes = append(changes, Op{Kind: OpUpdate, ID: id, State: de.state})
		}
	}
	sortOps(changes, func(id ID) entry { return r.desired[id] })

	return append(deletes, changes...)
}

// MarkCommitted folds successfully dispatched operations into the committed
// map. Callers pass only the applied prefix of a batch; operations that
// failed to dispatch must not be folded, so the next diff re-emits them.
func (r *Registry) MarkCommitted(ops []Op) {
	for _, op := range ops {
		switch op.Kind {
		case OpDelete:
			delete(r.committed, op.ID)
		default:
			e := r.committed[op.ID]
			if de, ok := r.desired[op.ID]; ok {
				e.seq = de.seq
			}
			e.state = op.State
			r.committed[op.ID] = e
		}
	}
}

// InSync reports whether a diff would be empty.
func (r *Registry) InSync() bool {
	return len(r.Diff()) == 0
}

func sortOps(ops []Op, lookup func(ID) entry) {
	sort.SliceStable(ops, func(i, j int) bool {
		a, b := lookup(ops[i].ID), lookup(ops[j].ID)
		if a.state.Z != b.state.Z {
			return a.state.Z < b.state.Z
		}
		return a.seq < b.seq
	})
}
