// ABOUTME: Lazy-drawing transaction scope: depth counter owned by the Container
// ABOUTME: Nested scopes coalesce into exactly one commit at the outermost exit

package overlay

// Batch runs fn inside a lazy-drawing transaction scope. While the scope is
// open, placement mutations and redraw passes accumulate in desired state
// without dispatching; the outermost exit fires exactly one commit covering
// everything that accumulated. Scopes nest: only the outermost exit commits.
//
// The decrement fires on every exit path. An error returned by fn still
// commits, since the mutations already happened and errors are ordinary
// control flow; a panic abandons the scope and discards the pending commit
// (desired state keeps the mutations, so a later commit converges anyway).
func (c *Container) Batch(fn func() error) error {
	if c.closed {
		return ErrClosed
	}
	c.depth++
	panicked := true
	defer func() {
		// Close inside the scope resets depth to zero; don't underflow.
		if c.depth > 0 {
			c.depth--
		}
		if c.depth > 0 || c.closed {
			return
		}
		if panicked {
			c.pending = false
			return
		}
		if c.pending {
			c.pending = false
			c.commit()
		}
	}()
	err := fn()
	panicked = false
	return err
}

// InTransaction reports whether a lazy-drawing scope is currently open.
func (c *Container) InTransaction() bool {
	return c.depth > 0
}
