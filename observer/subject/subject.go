// Package subject implements typed broadcast subjects with explicit
// connection ownership.
//
// A subject fans a notification out to its observers in registration order.
// Observers are attached through an Owner (many connections, one owner) or
// through a ScopedConnection (one connection, handle-bound lifetime); either
// side of a connection can be disposed first and the other side is informed.
//
// The package is single-threaded by contract: subjects, owners and
// connections must not be mutated concurrently without external
// synchronization. Notify delivers to a snapshot of the registry taken when
// the call starts, so an observer detached while a broadcast is in flight
// still receives that broadcast, and one attached mid-broadcast does not.
package subject

// Subject0, Subject and Subject2 broadcast to observers of the matching
// arity. A subject holds non-owning references only and its identity is its
// address; always share a subject by pointer, never by copy.
type Subject0 struct {
	observers []Observer0
}

func NewSubject0() *Subject0 {
	return &Subject0{}
}

// Connect appends the observer to the registry. Duplicates are permitted:
// an observer connected twice is notified twice and severed twice.
func (s *Subject0) Connect(o Observer0) {
	s.observers = append(s.observers, o)
}

// Disconnect removes the most recently added matching entry. The registry is
// searched from the end because churn concentrates there. Removing an
// observer that is not registered is a no-op.
func (s *Subject0) Disconnect(o Observer0) {
	for i := len(s.observers) - 1; i >= 0; i-- {
		if s.observers[i] == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify delivers one broadcast to every registered observer in
// registration order.
func (s *Subject0) Notify() {
	for _, o := range snapshot(s.observers) {
		o.Notify()
	}
}

// Dispose severs every remaining observer, most recently registered first,
// and empties the registry. The subject is inert but still usable afterwards.
func (s *Subject0) Dispose() {
	observers := s.observers
	s.observers = nil
	for i := len(observers) - 1; i >= 0; i-- {
		observers[i].Disconnect()
	}
}

type Subject[A any] struct {
	observers []Observer[A]
}

func NewSubject[A any]() *Subject[A] {
	return &Subject[A]{}
}

func (s *Subject[A]) Connect(o Observer[A]) {
	s.observers = append(s.observers, o)
}

func (s *Subject[A]) Disconnect(o Observer[A]) {
	for i := len(s.observers) - 1; i >= 0; i-- {
		if s.observers[i] == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

func (s *Subject[A]) Notify(a A) {
	for _, o := range snapshot(s.observers) {
		o.Notify(a)
	}
}

func (s *Subject[A]) Dispose() {
	observers := s.observers
	s.observers = nil
	for i := len(observers) - 1; i >= 0; i-- {
		observers[i].Disconnect()
	}
}

type Subject2[A, B any] struct {
	observers []Observer2[A, B]
}

func NewSubject2[A, B any]() *Subject2[A, B] {
	return &Subject2[A, B]{}
}

func (s *Subject2[A, B]) Connect(o Observer2[A, B]) {
	s.observers = append(s.observers, o)
}

func (s *Subject2[A, B]) Disconnect(o Observer2[A, B]) {
	for i := len(s.observers) - 1; i >= 0; i-- {
		if s.observers[i] == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

func (s *Subject2[A, B]) Notify(a A, b B) {
	for _, o := range snapshot(s.observers) {
		o.Notify(a, b)
	}
}

func (s *Subject2[A, B]) Dispose() {
	observers := s.observers
	s.observers = nil
	for i := len(observers) - 1; i >= 0; i-- {
		observers[i].Disconnect()
	}
}

// snapshot copies the registry so that Disconnect calls made by observers
// during a broadcast cannot shift entries under the iteration.
func snapshot[O any](observers []O) []O {
	if len(observers) == 0 {
		return nil
	}
	copied := make([]O, len(observers))
	copy(copied, observers)
	return copied
}
