package subject

import (
	"github.com/google/uuid"
)

// holder is the side that owns an adapter's lifetime: an Owner registry or a
// ScopedConnection. forget is called exactly once when a subject severs the
// adapter during its own disposal; the holder must drop the adapter without
// touching the subject again.
type holder interface {
	forget(h handle)
}

// handle is the type-erased face an adapter presents to its holder.
type handle interface {
	id() uuid.UUID
	removeFromSubject()
	rebind(hld holder)
}

// adapter0, adapter1 and adapter2 wrap one callable and bind it to one
// subject. They implement the observer contract towards the subject and the
// handle contract towards their holder; both back-references are non-owning.
type adapter0 struct {
	holder holder
	source Source0
	notify func()
	connID uuid.UUID
}

func (a *adapter0) Notify() { a.notify() }
func (a *adapter0) Disconnect() { a.holder.forget(a) }
func (a *adapter0) id() uuid.UUID { return a.connID }
func (a *adapter0) removeFromSubject() { a.source.Disconnect(a) }
func (a *adapter0) rebind(hld holder) { a.holder = hld }

type adapter1[A any] struct {
	holder holder
	source Source[A]
	notify func(A)
	connID uuid.UUID
}

func (a *adapter1[A]) Notify(v A) { a.notify(v) }
func (a *adapter1[A]) Disconnect() { a.holder.forget(a) }
func (a *adapter1[A]) id() uuid.UUID { return a.connID }
func (a *adapter1[A]) removeFromSubject() { a.source.Disconnect(a) }
func (a *adapter1[A]) rebind(hld holder) { a.holder = hld }

type adapter2[A, B any] struct {
	holder holder
	source Source2[A, B]
	notify func(A, B)
	connID uuid.UUID
}

func (a *adapter2[A, B]) Notify(v A, w B) { a.notify(v, w) }
func (a *adapter2[A, B]) Disconnect() { a.holder.forget(a) }
func (a *adapter2[A, B]) id() uuid.UUID { return a.connID }
func (a *adapter2[A, B]) removeFromSubject() { a.source.Disconnect(a) }
func (a *adapter2[A, B]) rebind(hld holder) { a.holder = hld }

// Connection refers to one adapter inside one Owner. It is only good for
// requesting early disconnection; once the adapter is gone the handle is
// stale and ignored. The zero Connection is inert.
type Connection struct {
	owner *Owner
	conn  uuid.UUID
}

// Owner creates observer adapters, binds them to subjects and owns their
// lifetime. Disposing the owner tears every still-held connection down;
// subjects disposed earlier have already withdrawn their adapters from the
// registry, so either destruction order is safe.
type Owner struct {
	handles []handle
}

func NewOwner() *Owner {
	return &Owner{}
}

func (o *Owner) register(h handle) Connection {
	o.handles = append(o.handles, h)
	return Connection{owner: o, conn: h.id()}
}

// forget drops the adapter from the registry without detaching it from its
// subject. Called by an adapter whose subject is tearing down.
func (o *Owner) forget(h handle) {
	for i := len(o.handles) - 1; i >= 0; i-- {
		if o.handles[i] == h {
			o.handles = append(o.handles[:i], o.handles[i+1:]...)
			return
		}
	}
}

// Disconnect detaches and drops the adapter the handle refers to. Stale
// handles, zero handles and handles minted by another owner are ignored, so
// disconnecting twice is always safe.
func (o *Owner) Disconnect(c Connection) {
	if c.owner != o {
		return
	}
	for i := len(o.handles) - 1; i >= 0; i-- {
		if o.handles[i].id() == c.conn {
			h := o.handles[i]
			o.handles = append(o.handles[:i], o.handles[i+1:]...)
			h.removeFromSubject()
			return
		}
	}
}

// Dispose detaches and drops every owned adapter, most recently connected
// first, mirroring the reverse teardown order of the subjects themselves.
func (o *Owner) Dispose() {
	handles := o.handles
	o.handles = nil
	for i := len(handles) - 1; i >= 0; i-- {
		handles[i].removeFromSubject()
	}
}

// Connect0, Connect and Connect2 attach a callable of matching arity.
// The callable is captured by value. Connecting the same callable to the
// same subject twice yields two independent connections.
//
// These are free functions because Go methods cannot carry type parameters.
func Connect0(o *Owner, s Source0, fn func()) Connection {
	a := &adapter0{holder: o, source: s, notify: fn, connID: uuid.New()}
	c := o.register(a)
	s.Connect(a)
	return c
}

func Connect[A any](o *Owner, s Source[A], fn func(A)) Connection {
	a := &adapter1[A]{holder: o, source: s, notify: fn, connID: uuid.New()}
	c := o.register(a)
	s.Connect(a)
	return c
}

func Connect2[A, B any](o *Owner, s Source2[A, B], fn func(A, B)) Connection {
	a := &adapter2[A, B]{holder: o, source: s, notify: fn, connID: uuid.New()}
	c := o.register(a)
	s.Connect(a)
	return c
}

// ConnectMethod0, ConnectMethod and ConnectMethod2 attach a method on an
// instance, given as a method expression. The instance pointer is not owned;
// the caller must keep it alive for as long as the connection exists. Method
// values (for example Connect(o, s, obj.Add)) are the lighter alternative
// when no explicit receiver/method split is wanted.
func ConnectMethod0[T any](o *Owner, s Source0, instance *T, method func(*T)) Connection {
	return Connect0(o, s, func() {
		method(instance)
	})
}

func ConnectMethod[T, A any](o *Owner, s Source[A], instance *T, method func(*T, A)) Connection {
	return Connect(o, s, func(a A) {
		method(instance, a)
	})
}

func ConnectMethod2[T, A, B any](o *Owner, s Source2[A, B], instance *T, method func(*T, A, B)) Connection {
	return Connect2(o, s, func(a A, b B) {
		method(instance, a, b)
	})
}

// Relay0, Relay and Relay2 forward every broadcast of one subject into
// another subject's Notify, building event chains without extra mechanism.
// RelayFirst, RelayVoid and Relay2Void relay into a narrower subject,
// truncating the argument tuple like any other connected callable.
func Relay0(o *Owner, from Source0, to Notifier0) Connection {
	return Connect0(o, from, to.Notify)
}

func Relay[A any](o *Owner, from Source[A], to Notifier[A]) Connection {
	return Connect(o, from, to.Notify)
}

func Relay2[A, B any](o *Owner, from Source2[A, B], to Notifier2[A, B]) Connection {
	return Connect2(o, from, to.Notify)
}

func RelayFirst[A, B any](o *Owner, from Source2[A, B], to Notifier[A]) Connection {
	return Connect2(o, from, TakeFirst[A, B](to.Notify))
}

func RelayVoid[A any](o *Owner, from Source[A], to Notifier0) Connection {
	return Connect(o, from, TakeNone[A](to.Notify))
}

func Relay2Void[A, B any](o *Owner, from Source2[A, B], to Notifier0) Connection {
	return Connect2(o, from, TakeNone2[A, B](to.Notify))
}
