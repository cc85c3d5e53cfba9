package classify

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Runner classifies batches of files. Files are independent, so the batch
// is embarrassingly parallel; each file's run owns its own result and no
// state is shared between concurrent runs.
type Runner struct {
	classifier *Classifier
	workers    int
}

// NewRunner creates a batch runner. workers <= 0 selects GOMAXPROCS.
func NewRunner(classifier *Classifier, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{classifier: classifier, workers: workers}
}

// Run classifies every path. Unreadable files are recorded as failures and
// do not abort the batch; results keep the input order so that shuffling
// inputs changes only batch ordering, never per-file findings.
func (r *Runner) Run(ctx context.Context, paths []string) (*BatchResult, error) {
	type slot struct {
		result  *FileResult
		failure *FileFailure
	}
	slots := make([]slot, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				slots[i] = slot{failure: &FileFailure{
					File: path,
					Err:  fmt.Errorf("input unreadable: %w", err),
				}}
				return nil
			}
			slots[i] = slot{result: r.classifier.ClassifyText(path, string(data))}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	batch := &BatchResult{
		RunID:            uuid.NewString(),
		RequiredStandard: r.classifier.Floor(),
	}
	for _, s := range slots {
		switch {
		case s.failure != nil:
			batch.Failures = append(batch.Failures, *s.failure)
		case s.result != nil:
			batch.Files = append(batch.Files, s.result)
			if s.result.RequiredStandard > batch.RequiredStandard {
				batch.RequiredStandard = s.result.RequiredStandard
			}
		}
	}
	return batch, nil
}
