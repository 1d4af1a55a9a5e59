package fibonacci

import (
	"math"
	"math/big"
	"testing"

	"github.com/agbru/fibmodes/internal/progress"
)

// bigOracle computes F(n) with arbitrary precision and reduces it mod 2^64,
// reinterpreted as int64. This matches int64 wrapping addition for every n.
func bigOracle(n uint64) int64 {
	a, b := big.NewInt(0), big.NewInt(1)
	for i := uint64(0); i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	mask := new(big.Int).SetUint64(math.MaxUint64)
	return int64(new(big.Int).And(a, mask).Uint64())
}

func TestTerm_KnownValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    uint64
		want int64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{10, 55},
		{20, 6765},
		{50, 12586269025},
		{90, 2880067194370816120},
		{92, 7540113804746346429},
	}
	for _, tt := range tests {
		if got := Term(tt.n); got != tt.want {
			t.Errorf("Term(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestTerm_WrapsPastMaxExactTerm(t *testing.T) {
	t.Parallel()
	for _, n := range []uint64{93, 94, 100, 500, 1000} {
		if got, want := Term(n), bigOracle(n); got != want {
			t.Errorf("Term(%d) = %d, want wrapped value %d", n, got, want)
		}
	}
	// F(93) = 12200160415121876738 exceeds MaxInt64 and wraps negative.
	if Term(93) >= 0 {
		t.Errorf("Term(93) = %d, expected a wrapped negative value", Term(93))
	}
}

func TestFits(t *testing.T) {
	t.Parallel()
	if !Fits(MaxExactTerm) {
		t.Errorf("Fits(%d) = false, want true", MaxExactTerm)
	}
	if Fits(MaxExactTerm + 1) {
		t.Errorf("Fits(%d) = true, want false", MaxExactTerm+1)
	}
}

func TestTermWithProgress_MatchesTerm(t *testing.T) {
	t.Parallel()
	for _, n := range []uint64{0, 1, 10, 99, 100, 101, 150, 1000, 12345} {
		got := TermWithProgress(n, func(int) {})
		if want := Term(n); got != want {
			t.Errorf("TermWithProgress(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestTermWithProgress_NilCallback(t *testing.T) {
	t.Parallel()
	if got := TermWithProgress(200, nil); got != Term(200) {
		t.Errorf("TermWithProgress(200, nil) = %d, want %d", got, Term(200))
	}
}

func TestTermWithProgress_Notifications(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		n         uint64
		wantCount int
	}{
		{"below threshold", 99, 0},
		{"zero", 0, 0},
		{"exactly 100", 100, 100},
		{"not a multiple of 100", 150, 100},
		{"large", 1_000_003, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var rec progress.Recorder
			TermWithProgress(tt.n, rec.Update)
			values := rec.Values()

			if len(values) != tt.wantCount {
				t.Fatalf("got %d notifications, want %d", len(values), tt.wantCount)
			}
			if tt.wantCount == 0 {
				return
			}
			if values[0] != 0 {
				t.Errorf("first notification = %d, want 0", values[0])
			}
			if last := values[len(values)-1]; last != ProgressLastPercent {
				t.Errorf("last notification = %d, want %d", last, ProgressLastPercent)
			}
			for i := 1; i < len(values); i++ {
				if values[i] != values[i-1]+1 {
					t.Fatalf("notifications not strictly consecutive at %d: %v", i, values[i-1:i+1])
				}
			}
		})
	}
}

func TestPercentAt_NoOverflow(t *testing.T) {
	t.Parallel()
	n := uint64(math.MaxUint64)
	if got := percentAt(n-1, n); got != 99 {
		t.Errorf("percentAt(max-1, max) = %d, want 99", got)
	}
	if got := percentAt(n/2, n); got != 49 {
		t.Errorf("percentAt(max/2, max) = %d, want 49", got)
	}
}

func BenchmarkTerm(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Term(1_000_000)
	}
}

func BenchmarkTermWithProgress(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = TermWithProgress(1_000_000, func(int) {})
	}
}
