package transcode

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of converting one buffer in ConvertAll.
type Result struct {
	Output    Bytes
	Remainder int
	Err       error
}

// ConvertAll converts each buffer in srcs independently, running at most jobs
// conversions at a time (GOMAXPROCS when jobs <= 0). Results are in input
// order. A conversion failure is recorded in its Result and does not stop the
// others; the returned error is non-nil only if ctx is cancelled, in which
// case unstarted buffers are left with a zero Result.
func ConvertAll(ctx context.Context, srcs []Bytes, from, to Codec, jobs int) ([]Result, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(srcs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, src := range srcs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, rem, err := Convert(src, from, to)
			if err != nil {
				Logger().Debug("convert failed",
					zap.Int("index", i),
					zap.String("from", from.Name()),
					zap.String("to", to.Name()),
					zap.Int("remainder", rem),
					zap.Error(err))
			}
			results[i] = Result{Output: out, Remainder: rem, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
