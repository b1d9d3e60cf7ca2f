// Package bloom tracks visited archive pages with a Bloom filter.
// A precinct-level walk visits on the order of a hundred thousand pages,
// so the set is kept probabilistic rather than exact.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Default sizing for a walk of one election down to precinct level.
const (
	DefaultExpectedPages     = 200_000
	DefaultFalsePositiveRate = 1e-6
)

// Filter is a set of page URLs.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// NewVisitedSet creates a filter with the default walk sizing.
func NewVisitedSet() *Filter {
	return NewFilter(DefaultExpectedPages, DefaultFalsePositiveRate)
}

// Add marks url as visited.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test reports whether url might have been visited.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// Visit marks url as visited and reports whether it was (possibly)
// visited before.
func (f *Filter) Visit(url string) bool {
	return f.f.TestAndAddString(url)
}

// EstimatedCount returns the approximate number of visited URLs.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
