// Package pq exposes a generic priority queue which keeps its items sorted by score, supporting best-first retrieval,
// score based admission control, pruning, indexed access and concatenation.
package pq

import (
	"fmt"

	"github.com/couchbase/tools-common/queue/errdefs"
	fslices "github.com/couchbase/tools-common/queue/functional/slices"
	"github.com/couchbase/tools-common/queue/iface"
	"github.com/couchbase/tools-common/queue/log"
	"golang.org/x/exp/slices"
)

// IterFunc is a function which will be executed for every item in the queue.
type IterFunc[T any] func(item T)

// PriorityQueue is a queue in which the best item is returned first, where "best" is either the item with the
// largest score (the default) or the item with the smallest score when 'Minimize' is set.
//
// Items with equal scores are returned in the order they were inserted when minimizing, and in the reverse order
// when maximizing.
//
// NOTE: PriorityQueue is not safe for concurrent use and needs to be wrapped in a lock to be shared between
// goroutines.
type PriorityQueue[T any, S Number] struct {
	// entries is always sorted in ascending order of score, regardless of 'Minimize'.
	entries []Entry[T, S]
	scoreFn ScoreFunc[T, S]
	opts    Options

	bestScore S
	hasBest   bool
}

var _ iface.Queue[int] = (*PriorityQueue[int, int])(nil)

// NewPriorityQueue creates a new priority queue using the given scoring function and options, the provided items are
// inserted in order and are subject to the same admission rules as 'Append'.
//
// NOTE: The scoring function must not be nil.
func NewPriorityQueue[T any, S Number](scoreFn ScoreFunc[T, S], opts Options, items ...T) *PriorityQueue[T, S] {
	p := newPriorityQueue(scoreFn, opts)
	p.Extend(items...)

	return p
}

func newPriorityQueue[T any, S Number](scoreFn ScoreFunc[T, S], opts Options) *PriorityQueue[T, S] {
	return &PriorityQueue[T, S]{entries: make([]Entry[T, S], 0, opts.Capacity), scoreFn: scoreFn, opts: opts}
}

// Options returns the options the queue was created with.
func (p *PriorityQueue[T, S]) Options() Options {
	return p.opts
}

// Len returns the number of items in the queue.
func (p *PriorityQueue[T, S]) Len() int {
	return len(p.entries)
}

// BestScore returns the best score of any item ever admitted to the queue, and false if no item has been admitted.
//
// NOTE: The best score is not affected by removing items, it may belong to an item which is no longer queued.
func (p *PriorityQueue[T, S]) BestScore() (S, bool) {
	return p.bestScore, p.hasBest
}

// Append scores the given item and inserts it into the queue, returning false if it was refused because of the
// 'BlockWorse' or 'BlockEqual' options.
func (p *PriorityQueue[T, S]) Append(item T) bool {
	return p.admit(Entry[T, S]{Score: p.scoreFn(item).Resolve(), Item: item})
}

// Extend appends each of the given items in order, returning the number of items which were admitted.
func (p *PriorityQueue[T, S]) Extend(items ...T) int {
	return iface.Extend[T](p, items...)
}

// admit inserts the entry after any existing entries with the same score unless the admission options refuse it.
func (p *PriorityQueue[T, S]) admit(entry Entry[T, S]) bool {
	if p.hasBest && p.opts.BlockWorse && p.better(p.bestScore, entry.Score) {
		log.Tracef("(PQ) Refusing item with score %v, it's worse than the best score %v", entry.Score, p.bestScore)
		return false
	}

	if p.hasBest && p.opts.BlockEqual && entry.Score == p.bestScore {
		log.Tracef("(PQ) Refusing item with score %v, it's equal to the best score", entry.Score)
		return false
	}

	if !p.hasBest || p.better(entry.Score, p.bestScore) {
		p.bestScore, p.hasBest = entry.Score, true
	}

	p.entries = slices.Insert(p.entries, p.upperBound(entry.Score), entry)

	return true
}

// Pop removes and returns the best item, returning 'errdefs.ErrEmptyQueue' if the queue is empty.
func (p *PriorityQueue[T, S]) Pop() (T, error) {
	if len(p.entries) == 0 {
		var zero T
		return zero, errdefs.ErrEmptyQueue
	}

	var (
		i     = p.physical(0)
		entry = p.entries[i]
	)

	// Clear the slot so the backing array doesn't keep the item alive
	p.entries[i] = Entry[T, S]{}

	if p.opts.Minimize {
		p.entries = p.entries[1:]
	} else {
		p.entries = p.entries[:i]
	}

	return entry.Item, nil
}

// Peek returns the best item without removing it, returning 'errdefs.ErrEmptyQueue' if the queue is empty.
func (p *PriorityQueue[T, S]) Peek() (T, error) {
	if len(p.entries) == 0 {
		var zero T
		return zero, errdefs.ErrEmptyQueue
	}

	return p.entries[p.physical(0)].Item, nil
}

// Get returns the i-th best item, where index zero is always the best item. Negative indexes count backwards from the
// worst item, such that -1 is the worst item.
func (p *PriorityQueue[T, S]) Get(i int) (T, error) {
	entry, err := p.entry(i)
	if err != nil {
		var zero T
		return zero, err
	}

	return entry.Item, nil
}

// Score returns the score of the i-th best item without removing it, indexes are interpreted the same way as 'Get'.
func (p *PriorityQueue[T, S]) Score(i int) (S, error) {
	entry, err := p.entry(i)
	if err != nil {
		return 0, err
	}

	return entry.Score, nil
}

func (p *PriorityQueue[T, S]) entry(i int) (Entry[T, S], error) {
	j := i
	if j < 0 {
		j += len(p.entries)
	}

	if j < 0 || j >= len(p.entries) {
		return Entry[T, S]{}, errdefs.NewIndexOutOfRangeError(i, len(p.entries))
	}

	return p.entries[p.physical(j)], nil
}

// Slice returns a new queue, with the same scoring function and options, containing the items from the start-th best
// up to but excluding the stop-th best. Negative bounds count backwards from the worst item and out of range bounds
// are clamped.
//
// The new queue tracks its own best score, which starts as the best score within the selected range.
func (p *PriorityQueue[T, S]) Slice(start, stop int) *PriorityQueue[T, S] {
	var (
		n = len(p.entries)
		i = clamp(start, n)
		j = clamp(stop, n)
	)

	if j < i {
		j = i
	}

	sub := newPriorityQueue(p.scoreFn, p.opts)

	if p.opts.Minimize {
		sub.entries = append(sub.entries, p.entries[i:j]...)
	} else {
		sub.entries = append(sub.entries, p.entries[n-j:n-i]...)
	}

	if len(sub.entries) > 0 {
		sub.bestScore, sub.hasBest = sub.entries[sub.physical(0)].Score, true
	}

	return sub
}

// Iter calls fn on each item, starting from the best item.
//
// NOTE: The queue must not be modified by fn.
func (p *PriorityQueue[T, S]) Iter(fn IterFunc[T]) {
	for i := range p.entries {
		fn(p.entries[p.physical(i)].Item)
	}
}

// Items returns the queued items ordered from best to worst.
func (p *PriorityQueue[T, S]) Items() []T {
	item := func(e Entry[T, S]) T { return e.Item }

	if p.opts.Minimize {
		return fslices.Map[[]Entry[T, S], []T](p.entries, item)
	}

	return fslices.MapReverse[[]Entry[T, S], []T](p.entries, item)
}

// Entries returns a copy of the queued entries ordered from best to worst.
func (p *PriorityQueue[T, S]) Entries() []Entry[T, S] {
	entries := slices.Clone(p.entries)

	if !p.opts.Minimize {
		fslices.Reverse(entries)
	}

	return entries
}

// Prune removes all but the n best items; pruning to zero, or fewer, items empties the queue.
//
// NOTE: Pruning does not affect the best score.
func (p *PriorityQueue[T, S]) Prune(n int) {
	if n >= len(p.entries) {
		return
	}

	if n < 0 {
		n = 0
	}

	log.Debugf("(PQ) Pruning %d items, retaining the best %d", len(p.entries)-n, n)

	if p.opts.Minimize {
		p.entries = slices.Clone(p.entries[:n])
	} else {
		p.entries = slices.Clone(p.entries[len(p.entries)-n:])
	}
}

// PruneByScore removes every item whose score is not better than the given threshold; items whose score equals the
// threshold are retained when retainEqual is true.
//
// NOTE: Where the threshold is known upfront, 'BlockWorse'/'BlockEqual' are more efficient since they prevent the
// items from being inserted at all. Pruning does not affect the best score.
func (p *PriorityQueue[T, S]) PruneByScore(threshold S, retainEqual bool) {
	var (
		before = len(p.entries)
		lower  = p.lowerBound(threshold)
		upper  = p.upperBound(threshold)
	)

	switch {
	case p.opts.Minimize && retainEqual:
		p.entries = slices.Clone(p.entries[:upper])
	case p.opts.Minimize:
		p.entries = slices.Clone(p.entries[:lower])
	case retainEqual:
		p.entries = slices.Clone(p.entries[lower:])
	default:
		p.entries = slices.Clone(p.entries[upper:])
	}

	log.Debugf("(PQ) Pruned %d items by score %v, retaining %d", before-len(p.entries), threshold, len(p.entries))
}

// EqualFunc returns a boolean indicating whether both queues hold the same entries, in the same order, and agree on
// whether they're minimizing. Items are compared using the given function.
//
// NOTE: The scoring functions and blocking options are not compared.
func (p *PriorityQueue[T, S]) EqualFunc(other *PriorityQueue[T, S], eq func(a, b T) bool) bool {
	if p.opts.Minimize != other.opts.Minimize {
		return false
	}

	return slices.EqualFunc(p.entries, other.entries, func(a, b Entry[T, S]) bool {
		return a.Score == b.Score && eq(a.Item, b.Item)
	})
}

// Equal returns a boolean indicating whether the given queues hold the same entries and agree on whether they're
// minimizing, see 'EqualFunc'.
func Equal[T comparable, S Number](a, b *PriorityQueue[T, S]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// Concat returns a new queue containing the entries of both queues, using the scoring function and options of the
// receiver. The entries of the receiver, followed by those of other, are admitted in ascending order of score using
// the scores they were originally given, meaning the blocking options of the receiver apply.
//
// An 'errdefs.IncompatibleQueueError' is returned if the queues disagree on whether they're minimizing.
func (p *PriorityQueue[T, S]) Concat(other *PriorityQueue[T, S]) (*PriorityQueue[T, S], error) {
	if p.opts.Minimize != other.opts.Minimize {
		return nil, errdefs.NewIncompatibleQueueError(p.opts.Minimize, other.opts.Minimize)
	}

	combined := newPriorityQueue(p.scoreFn, p.opts)

	for _, entries := range [][]Entry[T, S]{p.entries, other.entries} {
		for _, entry := range entries {
			combined.admit(entry)
		}
	}

	log.Debugf("(PQ) Concatenated queues of length %d and %d into a queue of length %d", p.Len(), other.Len(),
		combined.Len())

	return combined, nil
}

// String returns the entries in ascending order of score.
func (p *PriorityQueue[T, S]) String() string {
	return fmt.Sprint(p.entries)
}

// better returns a boolean indicating whether score a is strictly better than score b.
func (p *PriorityQueue[T, S]) better(a, b S) bool {
	if p.opts.Minimize {
		return a < b
	}

	return a > b
}

// physical converts an index where zero is the best item, into an index into the ascending entries.
func (p *PriorityQueue[T, S]) physical(i int) int {
	if p.opts.Minimize {
		return i
	}

	return len(p.entries) - 1 - i
}

// lowerBound returns the index of the first entry whose score is greater than or equal to s.
func (p *PriorityQueue[T, S]) lowerBound(s S) int {
	i, _ := slices.BinarySearchFunc(p.entries, s, func(e Entry[T, S], target S) int {
		switch {
		case e.Score < target:
			return -1
		case e.Score > target:
			return 1
		}

		return 0
	})

	return i
}

// upperBound returns the index of the first entry whose score is greater than s.
func (p *PriorityQueue[T, S]) upperBound(s S) int {
	i, _ := slices.BinarySearchFunc(p.entries, s, func(e Entry[T, S], target S) int {
		if e.Score <= target {
			return -1
		}

		return 1
	})

	return i
}

// clamp normalizes a possibly negative slice bound into the range '[0, n]'.
func clamp(i, n int) int {
	if i < 0 {
		i += n
	}

	if i < 0 {
		return 0
	}

	if i > n {
		return n
	}

	return i
}
