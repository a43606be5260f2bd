package subject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwner_ConnectDeliversNotifications(t *testing.T) {
	owner := NewOwner()
	s := NewSubject[int]()

	var got []int
	Connect(owner, s, func(v int) { got = append(got, v) })
	s.Notify(42)
	s.Notify(1003)
	assert.Equal(t, []int{42, 1003}, got)
}

func TestOwner_DisconnectStopsDelivery(t *testing.T) {
	owner := NewOwner()
	s := NewSubject[int]()

	count := 0
	conn := Connect(owner, s, func(int) { count++ })
	s.Notify(1)
	owner.Disconnect(conn)
	s.Notify(2)
	assert.Equal(t, 1, count)
}

func TestOwner_DoubleDisconnectIsNoop(t *testing.T) {
	owner := NewOwner()
	s := NewSubject[int]()

	count := 0
	conn := Connect(owner, s, func(int) { count++ })
	keep := Connect(owner, s, func(int) { count++ })

	owner.Disconnect(conn)
	owner.Disconnect(conn)
	s.Notify(1)
	assert.Equal(t, 1, count)

	owner.Disconnect(keep)
	s.Notify(2)
	assert.Equal(t, 1, count)
}

func TestOwner_ForeignHandleIsRejected(t *testing.T) {
	owner := NewOwner()
	other := NewOwner()
	s := NewSubject[int]()

	count := 0
	conn := Connect(owner, s, func(int) { count++ })
	other.Disconnect(conn)
	s.Notify(1)
	assert.Equal(t, 1, count)
}

func TestOwner_ZeroConnectionIsIgnored(t *testing.T) {
	owner := NewOwner()
	s := NewSubject[int]()

	count := 0
	Connect(owner, s, func(int) { count++ })
	owner.Disconnect(Connection{})
	s.Notify(1)
	assert.Equal(t, 1, count)
}

func TestOwner_SameCallableConnectsIndependently(t *testing.T) {
	owner := NewOwner()
	s := NewSubject[int]()

	count := 0
	fn := func(int) { count++ }
	first := Connect(owner, s, fn)
	Connect(owner, s, fn)

	s.Notify(1)
	assert.Equal(t, 2, count)

	owner.Disconnect(first)
	s.Notify(2)
	assert.Equal(t, 3, count)
}

func TestOwner_DisposeDetachesEverything(t *testing.T) {
	owner := NewOwner()
	s1 := NewSubject[int]()
	s2 := NewSubject0()

	count := 0
	Connect(owner, s1, func(int) { count++ })
	Connect0(owner, s2, func() { count++ })

	owner.Dispose()
	s1.Notify(1)
	s2.Notify()
	assert.Equal(t, 0, count)
}

func TestOwner_SubjectDisposedFirstThenOwner(t *testing.T) {
	owner := NewOwner()
	s := NewSubject[int]()

	count := 0
	Connect(owner, s, func(int) { count++ })
	s.Dispose()
	owner.Dispose() // adapter already withdrew from the registry; must not blow up

	s.Notify(1)
	assert.Equal(t, 0, count)
}

func TestOwner_SubjectDisposeStalesTheHandle(t *testing.T) {
	owner := NewOwner()
	s := NewSubject[int]()

	conn := Connect(owner, s, func(int) {})
	s.Dispose()
	owner.Disconnect(conn) // stale handle, silent no-op
}

func TestOwner_OwnerDisposedFirstLeavesSubjectClean(t *testing.T) {
	owner := NewOwner()
	s := NewSubject[int]()

	count := 0
	Connect(owner, s, func(int) { count++ })
	owner.Dispose()

	survivor := 0
	keep := NewOwner()
	Connect(keep, s, func(int) { survivor++ })
	s.Notify(1)
	assert.Equal(t, 0, count)
	assert.Equal(t, 1, survivor)
}

func TestOwner_ReusableAfterDispose(t *testing.T) {
	owner := NewOwner()
	s := NewSubject[int]()

	count := 0
	Connect(owner, s, func(int) { count++ })
	owner.Dispose()

	Connect(owner, s, func(int) { count += 10 })
	s.Notify(1)
	assert.Equal(t, 10, count)
}

type accumulator struct {
	sum int
}

func (a *accumulator) Add(v int) {
	a.sum += v
}

func TestOwner_MemberFunctionDropsTrailingArguments(t *testing.T) {
	owner := NewOwner()
	s := NewSubject2[int, rune]()

	acc := &accumulator{}
	Connect2(owner, s, TakeFirst[int, rune](acc.Add))
	s.Notify(5, 'z')
	assert.Equal(t, 5, acc.sum)
}

func TestConnectMethod_InvokesMethodOnInstance(t *testing.T) {
	owner := NewOwner()
	s := NewSubject[int]()

	acc := &accumulator{}
	conn := ConnectMethod(owner, s, acc, (*accumulator).Add)
	s.Notify(3)
	s.Notify(4)
	assert.Equal(t, 7, acc.sum)

	owner.Disconnect(conn)
	s.Notify(5)
	assert.Equal(t, 7, acc.sum)
}

type ticker struct {
	ticks int
}

func (c *ticker) Tick() {
	c.ticks++
}

func TestConnectMethod0(t *testing.T) {
	owner := NewOwner()
	s := NewSubject0()

	tk := &ticker{}
	ConnectMethod0(owner, s, tk, (*ticker).Tick)
	s.Notify()
	assert.Equal(t, 1, tk.ticks)
}

type labeller struct {
	seen []string
}

func (l *labeller) Mark(name string, v int) {
	l.seen = append(l.seen, name)
	_ = v
}

func TestConnectMethod2(t *testing.T) {
	owner := NewOwner()
	s := NewSubject2[string, int]()

	lb := &labeller{}
	ConnectMethod2(owner, s, lb, (*labeller).Mark)
	s.Notify("a", 1)
	assert.Equal(t, []string{"a"}, lb.seen)
}

func TestRelay_ChainsSubjectsWithTruncation(t *testing.T) {
	owner := NewOwner()
	wide := NewSubject2[int, rune]()
	narrow := NewSubject[int]()
	void := NewSubject0()

	var got []int
	fired := 0
	RelayFirst[int, rune](owner, wide, narrow)
	RelayVoid[int](owner, narrow, void)
	Connect(owner, narrow, func(v int) { got = append(got, v) })
	Connect0(owner, void, func() { fired++ })

	wide.Notify(33, 'R')
	assert.Equal(t, []int{33}, got)
	assert.Equal(t, 1, fired)
}

func TestRelay_SameArity(t *testing.T) {
	owner := NewOwner()
	from := NewSubject[int]()
	to := NewSubject[int]()

	var got []int
	Relay[int](owner, from, to)
	Connect(owner, to, func(v int) { got = append(got, v) })
	from.Notify(9)
	assert.Equal(t, []int{9}, got)
}

func TestRelay_DisconnectBreaksTheChain(t *testing.T) {
	owner := NewOwner()
	from := NewSubject0()
	to := NewSubject0()

	count := 0
	link := Relay0(owner, from, to)
	Connect0(owner, to, func() { count++ })

	from.Notify()
	owner.Disconnect(link)
	from.Notify()
	assert.Equal(t, 1, count)
}

func TestRelay2_AndRelay2Void(t *testing.T) {
	owner := NewOwner()
	from := NewSubject2[int, rune]()
	to := NewSubject2[int, rune]()
	void := NewSubject0()

	pairs := &pairObserver{}
	fired := 0
	Relay2[int, rune](owner, from, to)
	Relay2Void[int, rune](owner, from, void)
	to.Connect(pairs)
	Connect0(owner, void, func() { fired++ })

	from.Notify(1, 'a')
	assert.Equal(t, []string{"1a"}, pairs.pairs)
	assert.Equal(t, 1, fired)
}

func TestRelay_IntoBlockableSubjectRespectsBlock(t *testing.T) {
	owner := NewOwner()
	from := NewSubject[int]()
	to := NewBlockableSubject[int]()

	count := 0
	Relay[int](owner, from, to)
	Connect[int](owner, to, func(int) { count++ })

	to.Block()
	from.Notify(1)
	to.Unblock()
	from.Notify(2)
	assert.Equal(t, 1, count)
}
