package prisma

import (
	"context"

	"github.com/autom8ter/machine/v4"
)

// Executor runs independent actions concurrently on managed goroutines and
// waits for every one of them to settle.
type Executor struct{}

// NewExecutor creates an Executor
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs the given actions concurrently. Results are returned in input
// order once all actions have settled; the first failure fails the batch.
func (e *Executor) Execute(ctx context.Context, actions ...Action) ([]Result, error) {
	results := make([]Result, len(actions))
	m := machine.New()
	for i, a := range actions {
		i, a := i, a
		m.Go(ctx, func(ctx context.Context) error {
			result, err := a.Run(ctx)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := m.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
