// Package counter counts occurrences of items and reports the most
// frequent ones.
//
// A Table is built by a single pass over a finite sequence and never
// changes afterwards. It remembers the order in which items were first
// seen, which is how TopK breaks ties. Counting an infinite sequence never
// returns.
package counter
