package delegate

// Delegate is an ordered registry of func(A) subscribers whose results, if
// any, are discarded. The zero value is not usable; construct with New.
//
// Subscribers are matched by code pointer, so methods bound to different
// receivers and closures built from the same literal count as the same
// subscriber. Use MemberDelegate when receiver identity matters.
type Delegate[A any] struct {
	core core[func(A), A]
}

// New returns an empty delegate for subscribers of type func(A).
func New[A any]() *Delegate[A] {
	return &Delegate[A]{
		core: core[func(A), A]{
			same: func(a, b func(A)) bool {
				return funcPointer(a) == funcPointer(b)
			},
		},
	}
}

// Subscribe appends each callable to the end of the registry. Duplicates are
// allowed and occupy independent slots.
func (d *Delegate[A]) Subscribe(fns ...func(A)) {
	d.core.add(fns...)
}

// SubscribeWith appends each callable and caches args for it, so deferred
// invocation will call every appended subscriber with the same value.
func (d *Delegate[A]) SubscribeWith(args A, fns ...func(A)) {
	d.core.addWith(args, fns...)
}

// SubscribeSeries appends fn once per element of series. Deferred invocation
// then calls fn once per element, in series order.
func (d *Delegate[A]) SubscribeSeries(fn func(A), series ...A) {
	d.core.addSeries(fn, series...)
}

// InvokeAll calls every subscriber in subscription order with args. Cached
// deferred arguments are ignored and left in place.
func (d *Delegate[A]) InvokeAll(args A) {
	for _, fn := range d.core.subs {
		fn(args)
	}
}

// InvokeDeferred replays the cached entries in the order they were recorded,
// calling each entry's subscriber with the entry's own arguments. Entries
// survive the call and can be replayed again.
func (d *Delegate[A]) InvokeDeferred() error {
	return d.core.eachDeferred("InvokeDeferred", func(fn func(A), args A) {
		fn(args)
	})
}

// Unsubscribe removes every slot whose subscriber matches any of the given
// callables and drops or re-indexes the affected deferred entries. It
// returns the number of slots removed.
func (d *Delegate[A]) Unsubscribe(fns ...func(A)) int {
	return d.core.removeMatching(func(sub func(A)) bool {
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
func (d *Delegate[A]) RemoveLast(n int) int {
	return d.core.removeLast(n)
}

// RemoveFirst removes up to n slots from the front of the registry and
// returns the number removed. Surviving deferred entries are shifted to
// follow their subscribers. The same size clamp as RemoveLast applies.
func (d *Delegate[A]) RemoveFirst(n int) int {
	return d.core.removeFirst(n)
}

// Clear removes all subscribers and deferred entries.
func (d *Delegate[A]) Clear() {
	d.core.clear()
}

// Combine appends a copy of other's subscribers and deferred entries. The
// source delegate is not modified.
func (d *Delegate[A]) Combine(other *Delegate[A]) {
	d.core.combine(&other.core)
}

// CombineWith appends other's subscribers, caching args for each appended
// slot instead of copying other's own entries.
func (d *Delegate[A]) CombineWith(other *Delegate[A], args A) {
	d.core.combineWith(&other.core, args)
}

// TransferFrom appends other's contents and empties other. Transferring a
// delegate onto itself is a no-op.
func (d *Delegate[A]) TransferFrom(other *Delegate[A]) {
	d.core.transferFrom(&other.core)
}

// TransferTo moves this delegate's contents onto the end of other and
// empties this delegate. Transferring onto itself is a no-op.
func (d *Delegate[A]) TransferTo(other *Delegate[A]) {
	other.core.transferFrom(&d.core)
}

// DuplicateLast appends a copy of the last slot, cloning its deferred
// entries onto the copy. No-op on an empty delegate.
func (d *Delegate[A]) DuplicateLast() {
	d.core.duplicateLast()
}

// UndoLast removes the last slot and every deferred entry referencing it.
// No-op on an empty delegate.
func (d *Delegate[A]) UndoLast() {
	d.core.undoLast()
}

// Len returns the number of subscriber slots.
func (d *Delegate[A]) Len() int {
	return len(d.core.subs)
}

// DeferredLen returns the number of cached deferred entries.
func (d *Delegate[A]) DeferredLen() int {
	return len(d.core.entries)
}

// Compare orders two delegates by subscriber count: -1 if d holds fewer
// subscribers than other, +1 if more, 0 on equal counts.
func (d *Delegate[A]) Compare(other *Delegate[A]) int {
	return d.core.compare(&other.core)
}

// Equal reports whether both delegates hold the same subscriber identities
// in the same order. Counts alone are not enough.
func (d *Delegate[A]) Equal(other *Delegate[A]) bool {
	return d.core.equal(&other.core)
}

// Subscribers returns a copy of the subscriber sequence in registry order.
func (d *Delegate[A]) Subscribers() []func(A) {
	return append([]func(A)(nil), d.core.subs...)
}
