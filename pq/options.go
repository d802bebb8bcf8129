package pq

// Options encapsulates the options which can be used when creating a priority queue.
type Options struct {
	// Minimize indicates that the item with the smallest score is the best item. By default the item with the
	// largest score is the best item.
	Minimize bool

	// BlockWorse refuses items whose score is worse than the best score admitted so far.
	BlockWorse bool

	// BlockEqual refuses items whose score is equal to the best score admitted so far.
	BlockEqual bool

	// Capacity is the initial capacity of the underlying buffer.
	//
	// NOTE: This has the same behavior as a slices capacity, the queue may grow beyond it.
	Capacity int
}
