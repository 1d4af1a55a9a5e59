package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Term Count Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultTermCount is the number of terms iterated when the user does not
	// supply one.
	DefaultTermCount uint64 = 100

	// MaxExactTerm is the largest n for which Term(n) fits in an int64.
	// F(92) = 7540113804746346429; F(93) overflows and wraps.
	MaxExactTerm uint64 = 92
)

// ─────────────────────────────────────────────────────────────────────────────
// Progress Reporting Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// ProgressMinTerms is the smallest term count for which TermWithProgress
	// emits notifications. Below it a percentage step would be shorter than
	// one loop iteration.
	ProgressMinTerms uint64 = 100

	// ProgressLastPercent is the final boundary reported by TermWithProgress:
	// the last loop step is n-1, and floor((n-1)*100/n) is 99 for every n.
	ProgressLastPercent = 99
)
