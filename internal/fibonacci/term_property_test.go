package fibonacci

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/fibmodes/internal/progress"
)

// TestTerm_MatchesOracle_PropertyBased checks Term against the arbitrary
// precision oracle, both below and above the int64 overflow point.
func TestTerm_MatchesOracle_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Term(n) equals F(n) mod 2^64", prop.ForAll(
		func(n uint64) bool {
			return Term(n) == bigOracle(n)
		},
		gen.UInt64Range(0, 2000),
	))

	properties.TestingRun(t)
}

// TestRecurrenceRelation_PropertyBased verifies F(n) = F(n-1) + F(n-2),
// which also holds under wrapping arithmetic.
func TestRecurrenceRelation_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("F(n) = F(n-1) + F(n-2)", prop.ForAll(
		func(n uint64) bool {
			return Term(n) == Term(n-1)+Term(n-2)
		},
		gen.UInt64Range(2, 5000),
	))

	properties.TestingRun(t)
}

// TestTermWithProgress_PropertyBased verifies that the progress variant
// returns the same value as Term and that its notifications are
// non-decreasing and end at 99 whenever any are sent.
func TestTermWithProgress_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("progress variant agrees with Term and reports in order", prop.ForAll(
		func(n uint64) bool {
			var rec progress.Recorder
			if TermWithProgress(n, rec.Update) != Term(n) {
				return false
			}
			values := rec.Values()
			if n < ProgressMinTerms {
				return len(values) == 0
			}
			return progress.IsNonDecreasing(values) && rec.Last() == ProgressLastPercent
		},
		gen.UInt64Range(0, 50_000),
	))

	properties.TestingRun(t)
}
