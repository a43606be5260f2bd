package subject

import (
	"github.com/krew-solutions/observer-go/observer/disposable"
)

// Observer0, Observer and Observer2 are the per-arity receiver contracts.
//
// Notify delivers one broadcast. Disconnect is called by a subject that is
// severing the link during its own disposal; implementations must not re-enter
// the subject from Disconnect.
type Observer0 interface {
	Notify()
	Disconnect()
}

type Observer[A any] interface {
	Notify(a A)
	Disconnect()
}

type Observer2[A, B any] interface {
	Notify(a A, b B)
	Disconnect()
}

// Source0, Source and Source2 are what observers can be attached to.
// Satisfied by the plain and the blockable subjects of the matching arity.
type Source0 interface {
	Connect(o Observer0)
	Disconnect(o Observer0)
}

type Source[A any] interface {
	Connect(o Observer[A])
	Disconnect(o Observer[A])
}

type Source2[A, B any] interface {
	Connect(o Observer2[A, B])
	Disconnect(o Observer2[A, B])
}

// Notifier0, Notifier and Notifier2 are broadcast entry points,
// used as relay targets.
type Notifier0 interface {
	Notify()
}

type Notifier[A any] interface {
	Notify(a A)
}

type Notifier2[A, B any] interface {
	Notify(a A, b B)
}

// Blockable is the suspension surface of the blockable subjects.
type Blockable interface {
	Block()
	Unblock()
}

var (
	_ disposable.Disposable = (*Subject0)(nil)
	_ disposable.Disposable = (*Subject[int])(nil)
	_ disposable.Disposable = (*Subject2[int, int])(nil)
	_ disposable.Disposable = (*Owner)(nil)
	_ disposable.Disposable = (*ScopedConnection)(nil)

	_ Blockable = (*BlockableSubject0)(nil)
	_ Blockable = (*BlockableSubject[int])(nil)
	_ Blockable = (*BlockableSubject2[int, int])(nil)
)
