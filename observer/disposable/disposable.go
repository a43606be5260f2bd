package disposable

type DisposableImp struct {
	dispose func()
}

// NewDisposable wraps a cleanup callback. The callback runs at most once.
func NewDisposable(dispose func()) *DisposableImp {
	return &DisposableImp{dispose: dispose}
}

func (d *DisposableImp) Dispose() {
	if d.dispose == nil {
		return
	}
	dispose := d.dispose
	d.dispose = nil
	dispose()
}

type CompositeDisposableImp struct {
	disposables []Disposable
}

// NewCompositeDisposable bundles several disposables into one.
// Dispose runs them in the order they were added.
func NewCompositeDisposable(disposables ...Disposable) *CompositeDisposableImp {
	return &CompositeDisposableImp{disposables: disposables}
}

func (c *CompositeDisposableImp) Add(d Disposable) {
	c.disposables = append(c.disposables, d)
}

func (c *CompositeDisposableImp) Dispose() {
	disposables := c.disposables
	c.disposables = nil
	for _, d := range disposables {
		d.Dispose()
	}
}
