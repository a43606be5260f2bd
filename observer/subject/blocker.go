package subject

// Blocker is a scope guard that keeps a blockable subject suspended until
// released. Intended use:
//
//	blocker := subject.NewBlocker(s)
//	defer blocker.Release()
//
// A Blocker must not be copied; copies would release the same block twice.
type Blocker struct {
	s Blockable
}

// NewBlocker blocks the subject immediately.
func NewBlocker(s Blockable) *Blocker {
	s.Block()
	return &Blocker{s: s}
}

// Release unblocks the guarded subject. Calls after the first, and calls on
// a zero Blocker, are no-ops.
func (b *Blocker) Release() {
	if b.s == nil {
		return
	}
	b.s.Unblock()
	b.s = nil
}
