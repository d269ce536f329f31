package delegate

// Addable is the set of result types a value delegate can accumulate: the
// types Go's + operator accepts. Instantiating a value delegate with any
// other result type is a compile error, which is exactly the guard against
// declaring an accumulating delegate for a result that cannot accumulate.
type Addable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128 | ~string
}

// ValueDelegate is an ordered registry of func(A) R subscribers whose
// results are summed left to right into a zero-initialized accumulator.
// For non-commutative result types such as strings the invocation order is
// observable in the sum. Construct with NewValue.
type ValueDelegate[A any, R Addable] struct {
	core core[func(A) R, A]
}

// NewValue returns an empty accumulating delegate for subscribers of type
// func(A) R.
func NewValue[A any, R Addable]() *ValueDelegate[A, R] {
	return &ValueDelegate[A, R]{
		core: core[func(A) R, A]{
			same: func(a, b func(A) R) bool {
				return funcPointer(a) == funcPointer(b)
			},
		},
	}
}

// Subscribe appends each callable to the end of the registry. Duplicates are
// allowed and occupy independent slots.
func (d *ValueDelegate[A, R]) Subscribe(fns ...func(A) R) {
	d.core.add(fns...)
}

// SubscribeWith appends each callable and caches args for it, so deferred
// invocation will call every appended subscriber with the same value.
func (d *ValueDelegate[A, R]) SubscribeWith(args A, fns ...func(A) R) {
	d.core.addWith(args, fns...)
}

// SubscribeSeries appends fn once per element of series. Deferred invocation
// then calls fn once per element, in series order.
func (d *ValueDelegate[A, R]) SubscribeSeries(fn func(A) R, series ...A) {
	d.core.addSeries(fn, series...)
}

// InvokeAll calls every subscriber in subscription order with args and
// returns the sum of all results. An empty delegate returns the zero value.
func (d *ValueDelegate[A, R]) InvokeAll(args A) R {
	var sum R
	for _, fn := range d.core.subs {
		sum += fn(args)
	}
	return sum
}

// InvokeDeferred replays the cached entries in the order they were recorded
// and returns the sum of their results. On a stale entry index it reports
// the error without having called any subscriber past the stale entry.
func (d *ValueDelegate[A, R]) InvokeDeferred() (R, error) {
	var sum R
	err := d.core.eachDeferred("InvokeDeferred", func(fn func(A) R, args A) {
		sum += fn(args)
	})
	if err != nil {
		var zero R
		return zero, err
	}
	return sum, nil
}

// Unsubscribe removes every slot whose subscriber matches any of the given
// callables and drops or re-indexes the affected deferred entries. It
// returns the number of slots removed.
func (d *ValueDelegate[A, R]) Unsubscribe(fns ...func(A) R) int {
	return d.core.removeMatching(func(sub func(A) R) bool {
		for _, fn := range fns {
			if d.core.same(sub, fn) {
				return true
			}
		}
		return false
	})
}

// RemoveLast removes up to n slots from the end of the registry, together
// with their deferred entries, and returns the number removed. Asking for
// the full size or more removes all but the first slot; use Clear to empty.
func (d *ValueDelegate[A, R]) RemoveLast(n int) int {
	return d.core.removeLast(n)
}

// RemoveFirst removes up to n slots from the front of the registry and
// returns the number removed. Surviving deferred entries are shifted to
// follow their subscribers. The same size clamp as RemoveLast applies.
func (d *ValueDelegate[A, R]) RemoveFirst(n int) int {
	return d.core.removeFirst(n)
}

// Clear removes all subscribers and deferred entries.
func (d *ValueDelegate[A, R]) Clear() {
	d.core.clear()
}

// Combine appends a copy of other's subscribers and deferred entries. The
// source delegate is not modified.
func (d *ValueDelegate[A, R]) Combine(other *ValueDelegate[A, R]) {
	d.core.combine(&other.core)
}

// CombineWith appends other's subscribers, caching args for each appended
// slot instead of copying other's own entries.
func (d *ValueDelegate[A, R]) CombineWith(other *ValueDelegate[A, R], args A) {
	d.core.combineWith(&other.core, args)
}

// TransferFrom appends other's contents and empties other. Transferring a
// delegate onto itself is a no-op.
func (d *ValueDelegate[A, R]) TransferFrom(other *ValueDelegate[A, R]) {
	d.core.transferFrom(&other.core)
}

// TransferTo moves this delegate's contents onto the end of other and
// empties this delegate. Transferring onto itself is a no-op.
func (d *ValueDelegate[A, R]) TransferTo(other *ValueDelegate[A, R]) {
	other.core.transferFrom(&d.core)
}

// DuplicateLast appends a copy of the last slot, cloning its deferred
// entries onto the copy. No-op on an empty delegate.
func (d *ValueDelegate[A, R]) DuplicateLast() {
	d.core.duplicateLast()
}

// UndoLast removes the last slot and every deferred entry referencing it.
// No-op on an empty delegate.
func (d *ValueDelegate[A, R]) UndoLast() {
	d.core.undoLast()
}

// Len returns the number of subscriber slots.
func (d *ValueDelegate[A, R]) Len() int {
	return len(d.core.subs)
}

// DeferredLen returns the number of cached deferred entries.
func (d *ValueDelegate[A, R]) DeferredLen() int {
	return len(d.core.entries)
}

// Compare orders two delegates by subscriber count: -1 if d holds fewer
// subscribers than other, +1 if more, 0 on equal counts.
func (d *ValueDelegate[A, R]) Compare(other *ValueDelegate[A, R]) int {
	return d.core.compare(&other.core)
}

// Equal reports whether both delegates hold the same subscriber identities
// in the same order. Counts alone are not enough.
func (d *ValueDelegate[A, R]) Equal(other *ValueDelegate[A, R]) bool {
	return d.core.equal(&other.core)
}

// Subscribers returns a copy of the subscriber sequence in registry order.
func (d *ValueDelegate[A, R]) Subscribers() []func(A) R {
	return append([]func(A) R(nil), d.core.subs...)
}
