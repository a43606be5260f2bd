// Package hub routes events to subscribers by event type. It is a thin layer
// over the subject package: every event type gets one blockable subject, and
// subscriptions are connections held by an internal owner. Like the rest of
// the library it is single-threaded by contract.
package hub

import (
	"reflect"

	"github.com/krew-solutions/observer-go/observer/disposable"
	"github.com/krew-solutions/observer-go/observer/subject"
)

type Hub struct {
	owner    *subject.Owner
	subjects map[reflect.Type]any
	order    []disposable.Disposable
}

func NewHub() *Hub {
	return &Hub{
		owner:    subject.NewOwner(),
		subjects: make(map[reflect.Type]any),
	}
}

// Dispose drops every subscription and tears the per-type subjects down in
// reverse creation order. The hub is empty but still usable afterwards.
func (h *Hub) Dispose() {
	h.owner.Dispose()
	order := h.order
	h.order = nil
	h.subjects = make(map[reflect.Type]any)
	for i := len(order) - 1; i >= 0; i-- {
		order[i].Dispose()
	}
}

// SubjectOf returns the hub's subject for event type E, creating it on first
// use. Exposing the subject lets hub event types compose with the rest of
// the library: relays, scoped connections and blocking all apply.
//
// SubjectOf, Subscribe and Publish are free functions because Go methods
// cannot carry type parameters.
func SubjectOf[E any](h *Hub) *subject.BlockableSubject[E] {
	t := reflect.TypeOf((*E)(nil)).Elem()
	if s, ok := h.subjects[t]; ok {
		return s.(*subject.BlockableSubject[E])
	}
	s := subject.NewBlockableSubject[E]()
	h.subjects[t] = s
	h.order = append(h.order, s)
	return s
}

// Subscribe registers a handler for events of type E and returns a
// disposable that cancels the subscription.
func Subscribe[E any](h *Hub, handler func(E)) disposable.Disposable {
	conn := subject.Connect(h.owner, SubjectOf[E](h), handler)
	return disposable.NewDisposable(func() {
		h.owner.Disconnect(conn)
	})
}

// Publish delivers the event to every subscriber of its type, in
// subscription order. Publishing a type nobody subscribed to is a no-op.
func Publish[E any](h *Hub, event E) {
	SubjectOf[E](h).Notify(event)
}
