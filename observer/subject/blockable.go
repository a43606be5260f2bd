package subject

// blockState is the reentrant suspension counter shared by the blockable
// subjects.
type blockState struct {
	count int
}

// Block suspends delivery until a matching Unblock. Calls nest.
func (b *blockState) Block() {
	b.count++
}

// Unblock undoes one Block. Extra calls below zero are no-ops.
func (b *blockState) Unblock() {
	if b.count > 0 {
		b.count--
	}
}

// SetBlockState forces the subject into the given state and reports the
// previous effective state. Forcing a state the subject is already in leaves
// the nesting counter untouched; otherwise the counter snaps to 0 or 1.
func (b *blockState) SetBlockState(block bool) bool {
	was := b.count > 0
	if was != block {
		if block {
			b.count = 1
		} else {
			b.count = 0
		}
	}
	return was
}

func (b *blockState) blocked() bool {
	return b.count > 0
}

// BlockableSubject0, BlockableSubject and BlockableSubject2 behave like the
// plain subjects but drop every broadcast while blocked. Dropped broadcasts
// are lost, not deferred.
type BlockableSubject0 struct {
	Subject0
	blockState
}

func NewBlockableSubject0() *BlockableSubject0 {
	return &BlockableSubject0{}
}

func (s *BlockableSubject0) Notify() {
	if s.blocked() {
		return
	}
	s.Subject0.Notify()
}

type BlockableSubject[A any] struct {
	Subject[A]
	blockState
}

func NewBlockableSubject[A any]() *BlockableSubject[A] {
	return &BlockableSubject[A]{}
}

func (s *BlockableSubject[A]) Notify(a A) {
	if s.blocked() {
		return
	}
	s.Subject.Notify(a)
}

type BlockableSubject2[A, B any] struct {
	Subject2[A, B]
	blockState
}

func NewBlockableSubject2[A, B any]() *BlockableSubject2[A, B] {
	return &BlockableSubject2[A, B]{}
}

func (s *BlockableSubject2[A, B]) Notify(a A, b B) {
	if s.blocked() {
		return
	}
	s.Subject2.Notify(a, b)
}
