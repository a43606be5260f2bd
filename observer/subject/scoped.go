package subject

import (
	"github.com/google/uuid"
)

// ScopedConnection owns exactly one observer adapter, or none. It is the
// single-connection counterpart of Owner, for call sites where a connection's
// natural lifetime is one handle rather than a shared owner object.
//
// Ownership is exclusive: hold ScopedConnections by pointer and transfer
// between handles with Adopt. When the connected subject is disposed first,
// the handle empties itself and later Reset calls are no-ops.
type ScopedConnection struct {
	h handle
}

// ScopedConnect0, ScopedConnect and ScopedConnect2 attach a callable of
// matching arity and hand its lifetime to the returned handle. Lower-arity
// callables connect through the TakeNone/TakeFirst adapters, member
// functions through method values.
func ScopedConnect0(s Source0, fn func()) *ScopedConnection {
	c := &ScopedConnection{}
	a := &adapter0{holder: c, source: s, notify: fn, connID: uuid.New()}
	c.h = a
	s.Connect(a)
	return c
}

func ScopedConnect[A any](s Source[A], fn func(A)) *ScopedConnection {
	c := &ScopedConnection{}
	a := &adapter1[A]{holder: c, source: s, notify: fn, connID: uuid.New()}
	c.h = a
	s.Connect(a)
	return c
}

func ScopedConnect2[A, B any](s Source2[A, B], fn func(A, B)) *ScopedConnection {
	c := &ScopedConnection{}
	a := &adapter2[A, B]{holder: c, source: s, notify: fn, connID: uuid.New()}
	c.h = a
	s.Connect(a)
	return c
}

// Connected reports whether the handle currently owns an adapter.
func (c *ScopedConnection) Connected() bool {
	return c.h != nil
}

// Reset detaches and drops the held adapter, leaving the handle empty.
// Resetting an empty handle is a no-op.
func (c *ScopedConnection) Reset() {
	if c.h == nil {
		return
	}
	h := c.h
	c.h = nil
	h.removeFromSubject()
}

// Dispose is Reset under the name the rest of the library uses for teardown.
func (c *ScopedConnection) Dispose() {
	c.Reset()
}

// Adopt transfers ownership of src's adapter to c, the move-assignment of
// this handle type: any adapter c already held is dropped first and src is
// left empty. Self-adoption is a no-op.
func (c *ScopedConnection) Adopt(src *ScopedConnection) {
	if c == src {
		return
	}
	c.Reset()
	c.h = src.h
	src.h = nil
	if c.h != nil {
		c.h.rebind(c)
	}
}

// forget implements holder; the subject severed the adapter.
func (c *ScopedConnection) forget(h handle) {
	if c.h == h {
		c.h = nil
	}
}
