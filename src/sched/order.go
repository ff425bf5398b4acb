package sched

import (
	"slices"

	"github.com/tiendc/go-deepcopy"
)

// sortedCopy returns the requests in ascending cylinder order without touching
// the caller's slice.
func sortedCopy(requests []int) []int {
	var sorted []int
	if err := deepcopy.Copy(&sorted, &requests); err != nil {
		panic(err)
	}
	slices.Sort(sorted)
	return sorted
}

// splitUp returns the index of the first sorted request at or above head.
// Requests before it are serviced on the return pass of an upward sweep.
func splitUp(sorted []int, head int) int {
	i, _ := slices.BinarySearch(sorted, head)
	return i
}

// splitDown returns the index of the first sorted request strictly above head.
// Requests before it are serviced on the first pass of a downward sweep.
func splitDown(sorted []int, head int) int {
	i, found := slices.BinarySearch(sorted, head)
	for found && i < len(sorted) && sorted[i] == head {
		i++
	}
	return i
}
