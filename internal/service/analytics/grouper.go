package analytics

// Grouped is a date-keyed partition of records. Keys keep the order in
// which dates were first seen; each bucket keeps the relative input order.
type Grouped[R any] struct {
	keys   []string
	groups map[string][]R
}

// GroupByDate partitions records into buckets keyed by the value of dateOf.
// No deduplication and no date validation happens here: a malformed date
// string simply becomes its own bucket key instead of losing the record.
func GroupByDate[R any](records []R, dateOf func(R) string) *Grouped[R] {
	g := &Grouped[R]{groups: make(map[string][]R)}
	for _, rec := range records {
		key := dateOf(rec)
		if _, seen := g.groups[key]; !seen {
			g.keys = append(g.keys, key)
		}
		g.groups[key] = append(g.groups[key], rec)
	}
	return g
}

// Keys returns the bucket keys in first-seen order.
func (g *Grouped[R]) Keys() []string {
	return g.keys
}

// Get returns the bucket for key, or nil when the key is absent.
func (g *Grouped[R]) Get(key string) []R {
	return g.groups[key]
}

// Has reports whether any record landed under key.
func (g *Grouped[R]) Has(key string) bool {
	_, ok := g.groups[key]
	return ok
}

// Len returns the number of distinct buckets.
func (g *Grouped[R]) Len() int {
	return len(g.groups)
}

// DayKey normalizes a record date to its yyyy-mm-dd calendar-day prefix.
// Backend timestamps occasionally carry a time suffix; anything shorter or
// malformed is returned unchanged.
func DayKey(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}
