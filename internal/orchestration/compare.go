package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fibmodes/internal/errors"
	"github.com/agbru/fibmodes/internal/task"
)

// CompareModes dispatches the same term count in every requested mode
// concurrently and returns one Result per mode, in the order of modes.
//
// Each dispatch gets its own CaptureSink. surface is only handed to the
// background worker mode; the other modes have no progress to show.
func CompareModes(ctx context.Context, d *Dispatcher, n uint64, modes []Mode, surface ProgressSurface) []Result {
	if surface == nil {
		surface = NullProgressSurface{}
	}
	g, ctx := errgroup.WithContext(ctx)
	results := make([]Result, len(modes))

	for i, m := range modes {
		g.Go(func() error {
			s := ProgressSurface(NullProgressSurface{})
			if m == ModeBackgroundWorker {
				s = surface
			}
			results[i] = d.Dispatch(ctx, Request{TermCount: n, Mode: m}, &CaptureSink{}, s)
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// isKnownBroken reports whether err comes from a mode that is expected to fail.
func isKnownBroken(err error) bool {
	return errors.Is(err, task.ErrNotStarted)
}

// AnalyzeResults sorts the results (successes first, then by duration),
// presents the comparison table and checks that every successful mode
// produced the same value.
//
// It returns ExitErrorMismatch when two modes disagree. Failures of the
// known broken mode are listed but do not fail the comparison on their own.
func AnalyzeResults(results []Result, presenter ResultPresenter, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var (
		firstValid *Result
		firstError error
	)
	successCount := 0
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil || isKnownBroken(firstError) {
				firstError = results[i].Err
			}
			continue
		}
		successCount++
		if firstValid == nil {
			firstValid = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No mode produced a value.\n")
		return presenter.HandleError(firstError, 0, out)
	}

	for _, res := range results {
		if res.Err == nil && res.Value != firstValid.Value {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The modes disagree on the value.\n")
			return apperrors.ExitErrorMismatch
		}
	}

	if firstError != nil && !isKnownBroken(firstError) {
		fmt.Fprintf(out, "\nGlobal Status: Partial failure. Successful modes agree.\n")
		presenter.PresentResult(*firstValid, out)
		return presenter.HandleError(firstError, 0, out)
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All working modes agree.\n")
	presenter.PresentResult(*firstValid, out)
	return apperrors.ExitSuccess
}
