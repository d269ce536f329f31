package delegate

// member pairs a method expression with the receiver it was subscribed
// against. Identity covers both: same method on a different receiver is a
// different subscriber.
type member[T comparable, A any] struct {
	fn   func(T, A)
	recv T
}

// valueMember is the accumulating counterpart of member.
type valueMember[T comparable, A any, R Addable] struct {
	fn   func(T, A) R
	recv T
}

// MemberDelegate is an ordered registry of method subscribers. Each slot
// holds a method expression func(T, A) together with the receiver captured
// at subscribe time. The registry never owns receivers; the caller keeps
// them alive for as long as deferred invocation may run. Construct with
// NewMember.
//
// T must be comparable because receiver identity is part of subscriber
// identity. Pointer receivers satisfy this naturally.
type MemberDelegate[T comparable, A any] struct {
	core core[member[T, A], A]
}

// NewMember returns an empty delegate for method subscribers of type
// func(T, A).
func NewMember[T comparable, A any]() *MemberDelegate[T, A] {
	return &MemberDelegate[T, A]{
		core: core[member[T, A], A]{
			same: func(a, b member[T, A]) bool {
				return funcPointer(a.fn) == funcPointer(b.fn) && a.recv == b.recv
			},
		},
	}
}

// Subscribe appends each method with the given receiver.
func (d *MemberDelegate[T, A]) Subscribe(recv T, fns ...func(T, A)) {
	for _, fn := range fns {
		d.core.add(member[T, A]{fn: fn, recv: recv})
	}
}

// SubscribeWith appends each method with the given receiver and caches args
// for every appended slot.
func (d *MemberDelegate[T, A]) SubscribeWith(recv T, args A, fns ...func(T, A)) {
	for _, fn := range fns {
		d.core.addWith(args, member[T, A]{fn: fn, recv: recv})
	}
}

// SubscribeSeries appends the method once per element of series, all bound
// to the same receiver.
func (d *MemberDelegate[T, A]) SubscribeSeries(recv T, fn func(T, A), series ...A) {
	d.core.addSeries(member[T, A]{fn: fn, recv: recv}, series...)
}

// InvokeAll calls every subscriber's method in subscription order against
// the caller-supplied receiver, ignoring the receivers captured at
// subscribe time.
func (d *MemberDelegate[T, A]) InvokeAll(recv T, args A) {
	for _, m := range d.core.subs {
		m.fn(recv, args)
	}
}

// InvokeDeferred replays the cached entries in recorded order, calling each
// entry's method against the receiver captured when it was subscribed.
func (d *MemberDelegate[T, A]) InvokeDeferred() error {
	return d.core.eachDeferred("InvokeDeferred", func(m member[T, A], args A) {
		m.fn(m.recv, args)
	})
}

// Unsubscribe removes every slot matching the receiver and any of the given
// methods, re-indexing the surviving deferred entries. It returns the
// number of slots removed.
func (d *MemberDelegate[T, A]) Unsubscribe(recv T, fns ...func(T, A)) int {
	return d.core.removeMatching(func(sub member[T, A]) bool {
		for _, fn := range fns {
			if d.core.same(sub, member[T, A]{fn: fn, recv: recv}) {
				return true
			}
		}
		return false
	})
}

// RemoveLast removes up to n slots from the end, with the same size clamp
// as Delegate.RemoveLast, and returns the number removed.
func (d *MemberDelegate[T, A]) RemoveLast(n int) int {
	return d.core.removeLast(n)
}

// RemoveFirst removes up to n slots from the front, shifting surviving
// deferred entries, and returns the number removed.
func (d *MemberDelegate[T, A]) RemoveFirst(n int) int {
	return d.core.removeFirst(n)
}

// Clear removes all subscribers and deferred entries.
func (d *MemberDelegate[T, A]) Clear() {
	d.core.clear()
}

// Combine appends a copy of other's subscribers and deferred entries.
func (d *MemberDelegate[T, A]) Combine(other *MemberDelegate[T, A]) {
	d.core.combine(&other.core)
}

// TransferFrom appends other's contents and empties other. Self-transfer is
// a no-op.
func (d *MemberDelegate[T, A]) TransferFrom(other *MemberDelegate[T, A]) {
	d.core.transferFrom(&other.core)
}

// TransferTo moves this delegate's contents onto other and empties this
// delegate. Self-transfer is a no-op.
func (d *MemberDelegate[T, A]) TransferTo(other *MemberDelegate[T, A]) {
	other.core.transferFrom(&d.core)
}

// DuplicateLast appends a copy of the last slot, cloning its deferred
// entries onto the copy. No-op on an empty delegate.
func (d *MemberDelegate[T, A]) DuplicateLast() {
	d.core.duplicateLast()
}

// UndoLast removes the last slot and every deferred entry referencing it.
func (d *MemberDelegate[T, A]) UndoLast() {
	d.core.undoLast()
}

// Len returns the number of subscriber slots.
func (d *MemberDelegate[T, A]) Len() int {
	return len(d.core.subs)
}

// DeferredLen returns the number of cached deferred entries.
func (d *MemberDelegate[T, A]) DeferredLen() int {
	return len(d.core.entries)
}

// Compare orders two delegates by subscriber count.
func (d *MemberDelegate[T, A]) Compare(other *MemberDelegate[T, A]) int {
	return d.core.compare(&other.core)
}

// Equal reports whether both delegates hold the same method/receiver pairs
// in the same order.
func (d *MemberDelegate[T, A]) Equal(other *MemberDelegate[T, A]) bool {
	return d.core.equal(&other.core)
}

// MemberValueDelegate is the accumulating counterpart of MemberDelegate:
// method subscribers of type func(T, A) R whose results are summed left to
// right. Construct with NewMemberValue.
type MemberValueDelegate[T comparable, A any, R Addable] struct {
	core core[valueMember[T, A, R], A]
}

// NewMemberValue returns an empty accumulating delegate for method
// subscribers of type func(T, A) R.
func NewMemberValue[T comparable, A any, R Addable]() *MemberValueDelegate[T, A, R] {
	return &MemberValueDelegate[T, A, R]{
		core: core[valueMember[T, A, R], A]{
			same: func(a, b valueMember[T, A, R]) bool {
				return funcPointer(a.fn) == funcPointer(b.fn) && a.recv == b.recv
			},
		},
	}
}

// Subscribe appends each method with the given receiver.
func (d *MemberValueDelegate[T, A, R]) Subscribe(recv T, fns ...func(T, A) R) {
	for _, fn := range fns {
		d.core.add(valueMember[T, A, R]{fn: fn, recv: recv})
	}
}

// SubscribeWith appends each method with the given receiver and caches args
// for every appended slot.
func (d *MemberValueDelegate[T, A, R]) SubscribeWith(recv T, args A, fns ...func(T, A) R) {
	for _, fn := range fns {
		d.core.addWith(args, valueMember[T, A, R]{fn: fn, recv: recv})
	}
}

// SubscribeSeries appends the method once per element of series, all bound
// to the same receiver.
func (d *MemberValueDelegate[T, A, R]) SubscribeSeries(recv T, fn func(T, A) R, series ...A) {
	d.core.addSeries(valueMember[T, A, R]{fn: fn, recv: recv}, series...)
}

// InvokeAll calls every subscriber's method in subscription order against
// the caller-supplied receiver and returns the sum of the results.
func (d *MemberValueDelegate[T, A, R]) InvokeAll(recv T, args A) R {
	var sum R
	for _, m := range d.core.subs {
		sum += m.fn(recv, args)
	}
	return sum
}

// InvokeDeferred replays the cached entries in recorded order against their
// captured receivers and returns the sum of the results.
func (d *MemberValueDelegate[T, A, R]) InvokeDeferred() (R, error) {
	var sum R
	err := d.core.eachDeferred("InvokeDeferred", func(m valueMember[T, A, R], args A) {
		sum += m.fn(m.recv, args)
	})
	if err != nil {
		var zero R
		return zero, err
	}
	return sum, nil
}

// Unsubscribe removes every slot matching the receiver and any of the given
// methods, re-indexing the surviving deferred entries. It returns the
// number of slots removed.
func (d *MemberValueDelegate[T, A, R]) Unsubscribe(recv T, fns ...func(T, A) R) int {
	return d.core.removeMatching(func(sub valueMember[T, A, R]) bool {
		for _, fn := range fns {
			if d.core.same(sub, valueMember[T, A, R]{fn: fn, recv: recv}) {
				return true
			}
		}
		return false
	})
}

// RemoveLast removes up to n slots from the end, with the same size clamp
// as Delegate.RemoveLast, and returns the number removed.
func (d *MemberValueDelegate[T, A, R]) RemoveLast(n int) int {
	return d.core.removeLast(n)
}

// RemoveFirst removes up to n slots from the front, shifting surviving
// deferred entries, and returns the number removed.
func (d *MemberValueDelegate[T, A, R]) RemoveFirst(n int) int {
	return d.core.removeFirst(n)
}

// Clear removes all subscribers and deferred entries.
func (d *MemberValueDelegate[T, A, R]) Clear() {
	d.core.clear()
}

// Combine appends a copy of other's subscribers and deferred entries.
func (d *MemberValueDelegate[T, A, R]) Combine(other *MemberValueDelegate[T, A, R]) {
	d.core.combine(&other.core)
}

// TransferFrom appends other's contents and empties other. Self-transfer is
// a no-op.
func (d *MemberValueDelegate[T, A, R]) TransferFrom(other *MemberValueDelegate[T, A, R]) {
	d.core.transferFrom(&other.core)
}

// TransferTo moves this delegate's contents onto other and empties this
// delegate. Self-transfer is a no-op.
func (d *MemberValueDelegate[T, A, R]) TransferTo(other *MemberValueDelegate[T, A, R]) {
	other.core.transferFrom(&d.core)
}

// DuplicateLast appends a copy of the last slot, cloning its deferred
// entries onto the copy. No-op on an empty delegate.
func (d *MemberValueDelegate[T, A, R]) DuplicateLast() {
	d.core.duplicateLast()
}

// UndoLast removes the last slot and every deferred entry referencing it.
func (d *MemberValueDelegate[T, A, R]) UndoLast() {
	d.core.undoLast()
}

// Len returns the number of subscriber slots.
func (d *MemberValueDelegate[T, A, R]) Len() int {
	return len(d.core.subs)
}

// DeferredLen returns the number of cached deferred entries.
func (d *MemberValueDelegate[T, A, R]) DeferredLen() int {
	return len(d.core.entries)
}

// Compare orders two delegates by subscriber count.
func (d *MemberValueDelegate[T, A, R]) Compare(other *MemberValueDelegate[T, A, R]) int {
	return d.core.compare(&other.core)
}

// Equal reports whether both delegates hold the same method/receiver pairs
// in the same order.
func (d *MemberValueDelegate[T, A, R]) Equal(other *MemberValueDelegate[T, A, R]) bool {
	return d.core.equal(&other.core)
}
