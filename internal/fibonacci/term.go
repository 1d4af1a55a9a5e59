// Package fibonacci computes terms of the Fibonacci sequence with fixed-width
// integer arithmetic.
//
// The sequence is defined by F(0)=0, F(1)=1 and F(k)=F(k-1)+F(k-2). Both entry
// points iterate with two rolling accumulators, so a call costs O(n) time and
// O(1) extra space. Values beyond F(92) do not fit in an int64 and wrap with
// Go's two's-complement arithmetic; no overflow is reported.
package fibonacci

import (
	"math/bits"

	"github.com/agbru/fibmodes/internal/progress"
)

// Term returns F(n) computed iteratively.
func Term(n uint64) int64 {
	var previous, current int64 = 0, 1
	for step := uint64(0); step < n; step++ {
		previous, current = current, previous+current
	}
	return previous
}

// TermWithProgress runs the same loop as Term and, when n is at least
// ProgressMinTerms, calls report once for every percentage boundary crossed.
// Boundaries are floor(step*100/n) for step in [0, n), so the notifications
// are 0, 1, ..., 99 in order and all of them happen before the function
// returns. A nil report is allowed.
func TermWithProgress(n uint64, report progress.Callback) int64 {
	if report == nil || n < ProgressMinTerms {
		return Term(n)
	}

	var previous, current int64 = 0, 1
	lastPercent := -1
	for step := uint64(0); step < n; step++ {
		if p := percentAt(step, n); p != lastPercent {
			report(p)
			lastPercent = p
		}
		previous, current = current, previous+current
	}
	return previous
}

// percentAt returns floor(step*100/n) without overflowing for large n.
// step < n guarantees the high word of the product is below n.
func percentAt(step, n uint64) int {
	hi, lo := bits.Mul64(step, 100)
	q, _ := bits.Div64(hi, lo, n)
	return int(q)
}

// Fits reports whether Term(n) is exact, i.e. has not wrapped.
func Fits(n uint64) bool {
	return n <= MaxExactTerm
}
