package delegate

import "reflect"

// entry is one cached argument value for deferred invocation. The index
// points at the subscriber slot the arguments belong to.
type entry[A any] struct {
	index int
	args  A
}

// core holds the registry mechanics shared by every delegate flavor:
// the ordered subscriber slots, the deferred entries, and the identity
// predicate used for matching subscribers during removal and comparison.
type core[F any, A any] struct {
	subs    []F
	entries []entry[A]
	same    func(a, b F) bool
}

// funcPointer returns the code pointer identifying fn. Two closures produced
// by the same function literal share a code pointer, so closure identity is
// by origin, not by instance.
func funcPointer(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

func (c *core[F, A]) add(fns ...F) {
	c.subs = append(c.subs, fns...)
}

// addWith appends each callable and caches the same argument value once per
// new slot.
func (c *core[F, A]) addWith(args A, fns ...F) {
	for _, fn := range fns {
		c.subs = append(c.subs, fn)
		c.entries = append(c.entries, entry[A]{index: len(c.subs) - 1, args: args})
	}
}

// addSeries appends the same callable once per argument value, each
// occurrence with its own deferred entry.
func (c *core[F, A]) addSeries(fn F, series ...A) {
	for _, args := range series {
		c.subs = append(c.subs, fn)
		c.entries = append(c.entries, entry[A]{index: len(c.subs) - 1, args: args})
	}
}

// clampCount bounds a removal count so that count-based removal never drains
// the registry completely: asking for size or more removes size-1.
func (c *core[F, A]) clampCount(n int) int {
	if n < 0 {
		return 0
	}
	if n >= len(c.subs) {
		return len(c.subs) - 1
	}
	return n
}

func (c *core[F, A]) removeLast(n int) int {
	if len(c.subs) == 0 {
		return 0
	}
	n = c.clampCount(n)
	if n == 0 {
		return 0
	}
	keep := len(c.subs) - n
	clear(c.subs[keep:])
	c.subs = c.subs[:keep]

	kept := c.entries[:0]
	for _, e := range c.entries {
		if e.index < keep {
			kept = append(kept, e)
		}
	}
	clear(c.entries[len(kept):])
	c.entries = kept
	return n
}

func (c *core[F, A]) removeFirst(n int) int {
	if len(c.subs) == 0 {
		return 0
	}
	n = c.clampCount(n)
	if n == 0 {
		return 0
	}
	rest := copy(c.subs, c.subs[n:])
	clear(c.subs[rest:])
	c.subs = c.subs[:rest]

	kept := c.entries[:0]
	for _, e := range c.entries {
		if e.index < n {
			continue
		}
		e.index -= n
		kept = append(kept, e)
	}
	clear(c.entries[len(kept):])
	c.entries = kept
	return n
}

// removeMatching removes every slot the predicate accepts and re-indexes the
// surviving deferred entries so no entry is left pointing at a removed or
// shifted slot.
func (c *core[F, A]) removeMatching(match func(F) bool) int {
	remap := make([]int, len(c.subs))
	kept := c.subs[:0]
	removed := 0
	for i, fn := range c.subs {
		if match(fn) {
			remap[i] = -1
			removed++
			continue
		}
		remap[i] = len(kept)
		kept = append(kept, fn)
	}
	if removed == 0 {
		return 0
	}
	clear(c.subs[len(kept):])
	c.subs = kept

	keptEntries := c.entries[:0]
	for _, e := range c.entries {
		next := remap[e.index]
		if next < 0 {
			continue
		}
		e.index = next
		keptEntries = append(keptEntries, e)
	}
	clear(c.entries[len(keptEntries):])
	c.entries = keptEntries
	return removed
}

func (c *core[F, A]) clear() {
	c.subs = nil
	c.entries = nil
}

// combine appends other's slots and re-indexed copies of other's entries.
// The source is left untouched and shares no storage with the result.
func (c *core[F, A]) combine(other *core[F, A]) {
	base := len(c.subs)
	c.subs = append(c.subs, other.subs...)
	for _, e := range other.entries {
		c.entries = append(c.entries, entry[A]{index: base + e.index, args: e.args})
	}
}

// combineWith appends other's slots, attaching a fresh entry with the given
// arguments to each appended slot. Other's own entries are not copied.
func (c *core[F, A]) combineWith(other *core[F, A], args A) {
	for _, fn := range other.subs {
		c.subs = append(c.subs, fn)
		c.entries = append(c.entries, entry[A]{index: len(c.subs) - 1, args: args})
	}
}

// transferFrom moves other's contents onto the end of c and empties other.
// Transferring a delegate onto itself is a no-op.
func (c *core[F, A]) transferFrom(other *core[F, A]) {
	if c == other {
		return
	}
	c.combine(other)
	other.clear()
}

// duplicateLast appends a copy of the last slot and clones every deferred
// entry that references it onto the new slot, preserving entry order.
func (c *core[F, A]) duplicateLast() {
	if len(c.subs) == 0 {
		return
	}
	last := len(c.subs) - 1
	c.subs = append(c.subs, c.subs[last])
	dup := len(c.subs) - 1
	for _, e := range c.entries {
		if e.index == last {
			c.entries = append(c.entries, entry[A]{index: dup, args: e.args})
		}
	}
}

// undoLast removes the last slot together with every entry whose stored
// index references it. It is the inverse of duplicateLast.
func (c *core[F, A]) undoLast() {
	if len(c.subs) == 0 {
		return
	}
	last := len(c.subs) - 1
	clear(c.subs[last:])
	c.subs = c.subs[:last]

	kept := c.entries[:0]
	for _, e := range c.entries {
		if e.index != last {
			kept = append(kept, e)
		}
	}
	clear(c.entries[len(kept):])
	c.entries = kept
}

// compare orders two registries by subscriber count alone.
func (c *core[F, A]) compare(other *core[F, A]) int {
	switch {
	case len(c.subs) < len(other.subs):
		return -1
	case len(c.subs) > len(other.subs):
		return 1
	default:
		return 0
	}
}

// equal reports whether both registries hold the same subscriber identities
// in the same order. Deferred entries do not participate.
func (c *core[F, A]) equal(other *core[F, A]) bool {
	if len(c.subs) != len(other.subs) {
		return false
	}
	for i := range c.subs {
		if !c.same(c.subs[i], other.subs[i]) {
			return false
		}
	}
	return true
}

// eachDeferred walks the deferred entries in insertion order, resolving each
// entry through its own stored index. A stale index stops the walk with an
// InvalidIndexError before any slot access.
func (c *core[F, A]) eachDeferred(op string, visit func(fn F, args A)) error {
	for _, e := range c.entries {
		if e.index < 0 || e.index >= len(c.subs) {
			return &InvalidIndexError{Op: op, Index: e.index, Len: len(c.subs)}
		}
		visit(c.subs[e.index], e.args)
	}
	return nil
}
