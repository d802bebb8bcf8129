// Package search provides generic search drivers built on the queues in this module, the order in which nodes are
// explored is determined entirely by the frontier queue.
package search

import (
	"errors"
	"fmt"

	"github.com/couchbase/tools-common/queue/fifo"
	"github.com/couchbase/tools-common/queue/functional/slices"
	"github.com/couchbase/tools-common/queue/iface"
	"github.com/couchbase/tools-common/queue/log"
	"github.com/couchbase/tools-common/queue/pq"
)

// ErrExpansionLimit is returned when a search expands 'Options.MaxExpansions' nodes without reaching a goal.
var ErrExpansionLimit = errors.New("expansion limit reached")

// Expander returns the successors of the given node.
type Expander[T any] func(node T) ([]T, error)

// Goal returns a boolean indicating whether the given node is a goal.
type Goal[T any] func(node T) bool

// Problem describes the space being searched.
type Problem[T any] struct {
	Start  T
	Expand Expander[T]
	Goal   Goal[T]

	// Key identifies equivalent nodes, when provided a node is only queued the first time its key is seen. When nil,
	// nodes are never deduplicated.
	Key func(node T) string
}

// Result is the outcome of a search.
type Result[T any] struct {
	// Goal is the goal node which was reached, it's only valid when Found is true.
	Goal  T
	Found bool

	// Expanded is the number of nodes which were expanded.
	Expanded int
}

// Search explores the problem using the given frontier, popping nodes until a goal is reached or the frontier is
// exhausted. Successors which the frontier refuses to accept are dropped.
//
// NOTE: Exhausting the frontier without finding a goal is not an error, the returned result will not be marked as
// found.
func Search[T any](frontier iface.Queue[T], problem Problem[T], opts Options) (Result[T], error) {
	return search(frontier, problem, opts, nil)
}

// BreadthFirst explores the problem in order of depth, using a FIFO frontier.
func BreadthFirst[T any](problem Problem[T], opts Options) (Result[T], error) {
	return search[T](fifo.NewQueue[T](), problem, opts, nil)
}

// BestFirst explores the best scoring node first. Setting 'BlockWorse' in the queue options gives a greedy search
// which never queues a node scoring worse than the best node seen so far.
func BestFirst[T any, S pq.Number](
	problem Problem[T], scoreFn pq.ScoreFunc[T, S], queueOpts pq.Options, opts Options,
) (Result[T], error) {
	return search[T](pq.NewPriorityQueue(scoreFn, queueOpts), problem, opts, nil)
}

// Beam explores the best scoring node first but only retains the best width nodes on the frontier after each
// expansion, trading completeness for bounded memory.
func Beam[T any, S pq.Number](
	problem Problem[T], scoreFn pq.ScoreFunc[T, S], queueOpts pq.Options, width int, opts Options,
) (Result[T], error) {
	if width <= 0 {
		return Result[T]{}, fmt.Errorf("beam width must be positive, got %d", width)
	}

	frontier := pq.NewPriorityQueue(scoreFn, queueOpts)

	return search[T](frontier, problem, opts, func() { frontier.Prune(width) })
}

func search[T any](frontier iface.Queue[T], problem Problem[T], opts Options, afterExpand func()) (Result[T], error) {
	opts.defaults()

	var (
		seen   = make(map[string]struct{})
		result Result[T]
	)

	unseen := func(node T) bool {
		if problem.Key == nil {
			return true
		}

		key := problem.Key(node)
		if _, ok := seen[key]; ok {
			return false
		}

		seen[key] = struct{}{}

		return true
	}

	unseen(problem.Start)
	frontier.Append(problem.Start)

	for frontier.Len() > 0 {
		node, err := frontier.Pop()
		if err != nil {
			return result, fmt.Errorf("failed to pop from frontier: %w", err)
		}

		if problem.Goal(node) {
			log.Debugf("%s Reached goal after expanding %d nodes", opts.LogPrefix, result.Expanded)

			result.Goal, result.Found = node, true

			return result, nil
		}

		if opts.MaxExpansions > 0 && result.Expanded >= opts.MaxExpansions {
			log.Warnf("%s Abandoning search after expanding %d nodes, %d nodes remain on the frontier", opts.LogPrefix,
				result.Expanded, frontier.Len())

			return result, ErrExpansionLimit
		}

		successors, err := problem.Expand(node)
		if err != nil {
			return result, fmt.Errorf("failed to expand node %d: %w", result.Expanded+1, err)
		}

		result.Expanded++

		iface.Extend[T](frontier, slices.Filter(successors, unseen)...)

		if afterExpand != nil {
			afterExpand()
		}
	}

	log.Debugf("%s Exhausted frontier after expanding %d nodes", opts.LogPrefix, result.Expanded)

	return result, nil
}
