package subject

// Invocation adapters. A callable that declares fewer parameters than a
// subject broadcasts can still be connected: the adapter forwards the leading
// arguments unchanged and discards the rest. The adapted arity is fixed at
// compile time; a callable that requires more parameters than the subject
// supplies does not type-check.

// TakeNone adapts a niladic callable to a one-argument broadcast.
func TakeNone[A any](fn func()) func(A) {
	return func(A) {
		fn()
	}
}

// TakeNone2 adapts a niladic callable to a two-argument broadcast.
func TakeNone2[A, B any](fn func()) func(A, B) {
	return func(A, B) {
		fn()
	}
}

// TakeFirst adapts a one-argument callable to a two-argument broadcast.
// The callable receives the first argument unchanged.
func TakeFirst[A, B any](fn func(A)) func(A, B) {
	return func(a A, _ B) {
		fn(a)
	}
}
