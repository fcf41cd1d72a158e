package sim

import (
	"context"
	"sync"

	"github.com/san-kum/propsim/internal/motion"
)

// Ensemble runs one headless simulation per parameter set concurrently.
// Each run gets its own rig and its own metrics from the factory, which
// receives that run's parameters.
type Ensemble struct {
	params  []motion.Params
	metrics func(motion.Params) []Metric
}

func NewEnsemble(params []motion.Params, metrics func(motion.Params) []Metric) *Ensemble {
	return &Ensemble{params: params, metrics: metrics}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(e.params))
	errs := make([]error, len(e.params))

	var wg sync.WaitGroup
	for i, p := range e.params {
		wg.Add(1)
		go func(idx int, p motion.Params) {
			defer wg.Done()

			s := New(motion.NewRig(p), nil)
			if e.metrics != nil {
				for _, m := range e.metrics(p) {
					s.AddMetric(m)
				}
			}

			results[idx], errs[idx] = s.Run(ctx, cfg)
		}(i, p)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
