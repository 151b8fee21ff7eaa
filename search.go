package overlap

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// The pixel scanners are existential searches: does any sampled point in a
// w x h index grid satisfy the predicate? Both backends below answer that
// question with identical results; they differ only in wall-clock cost and
// in which satisfying point happens to be examined first. anyPoint (in the
// build-tagged files) picks the backend for the target platform.

// anyPointSeq is the plain nested-loop form, short-circuiting on the first
// satisfying sample. This is the reference semantics and the only form used
// on single-threaded targets.
func anyPointSeq(w, h, skip int, pred func(x, y int) bool) bool {
	for y := 0; y < h; y += skip {
		for x := 0; x < w; x += skip {
			if pred(x, y) {
				return true
			}
		}
	}
	return false
}

// errFound signals that a worker found a satisfying sample; the group's
// context cancellation stops the remaining workers early.
var errFound = errors.New("found")

// anyPointPar fans sampled rows out across a bounded worker group. Each
// row's samples are independent and read-only, so no synchronization beyond
// the group itself is needed. The predicate must be safe for concurrent
// calls.
func anyPointPar(w, h, skip int, pred func(x, y int) bool) bool {
	if w <= 0 || h <= 0 {
		return false
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))

	for y := 0; y < h; y += skip {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			for x := 0; x < w; x += skip {
				if pred(x, y) {
					return errFound
				}
			}
			return nil
		})
	}

	return errors.Is(g.Wait(), errFound)
}
