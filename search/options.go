package search

// Options encapsulates the options which can be used when running a search.
type Options struct {
	// MaxExpansions is the maximum number of nodes which may be expanded before the search is abandoned with
	// 'ErrExpansionLimit'. Defaults to no limit.
	MaxExpansions int

	// LogPrefix is the prefix used when logging. Defaults to '(Search)'.
	LogPrefix string
}

func (o *Options) defaults() {
	if o.LogPrefix == "" {
		o.LogPrefix = "(Search)"
	}
}
