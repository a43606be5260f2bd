package disposable

// Disposable releases a resource or undoes a registration.
// Disposing more than once is a no-op.
type Disposable interface {
	Dispose()
}
