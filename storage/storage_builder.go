package storage

import "github.com/Carmen-Shannon/spaces/common"

// StoreBuilderOption is a function which modifies a store during
// construction.
type StoreBuilderOption func(*store)

// WithWorkers sets the number of parallel decode workers. Zero keeps the
// default; values below zero are ignored.
//
// Parameters:
//   - workers: the worker count
//
// Returns:
//   - StoreBuilderOption: the option to apply
func WithWorkers(workers int) StoreBuilderOption {
	return func(s *store) {
		if workers < 0 {
			return
		}
		s.workers = common.Coalesce(workers, s.workers)
	}
}
