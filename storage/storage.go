// Package storage reads and writes simulation body records on disk. One
// record per JSON file; directory loads decode files in parallel.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/spaces/simulation"
)

// Store loads and saves simulation body records.
type Store interface {
	// LoadBody reads and decodes a single record file.
	//
	// Parameters:
	//   - path: the record file path
	//
	// Returns:
	//   - simulation.Body: the decoded record
	//   - error: an error if reading or decoding fails
	LoadBody(path string) (simulation.Body, error)

	// LoadDir decodes every .json record in a directory, in parallel.
	// Results are ordered by file name so loads are deterministic.
	//
	// Parameters:
	//   - dir: the directory holding record files
	//
	// Returns:
	//   - []simulation.Body: the decoded records in file-name order
	//   - error: the first error encountered, if any file fails
	LoadDir(dir string) ([]simulation.Body, error)

	// SaveBody writes a record to disk in the stable on-disk format.
	//
	// Parameters:
	//   - path: the destination file path
	//   - body: the record to write
	//
	// Returns:
	//   - error: an error if encoding or writing fails
	SaveBody(path string, body simulation.Body) error
}

// store is the implementation of Store.
type store struct {
	// loadPool manages a bounded set of reusable goroutines for parallel
	// record decoding. Queue size of 256 covers typical record counts
	// with headroom.
	loadPool worker.DynamicWorkerPool
	workers  int
}

var _ Store = &store{}

// NewStore creates a record store with its decode worker pool.
//
// Parameters:
//   - options: functional options for the worker count
//
// Returns:
//   - Store: the configured store
func NewStore(options ...StoreBuilderOption) Store {
	s := &store{
		workers: runtime.NumCPU(),
	}
	for _, opt := range options {
		opt(s)
	}
	s.loadPool = worker.NewDynamicWorkerPool(s.workers, 256, 1*time.Second)
	return s
}

func (s *store) LoadBody(path string) (simulation.Body, error) {
	var body simulation.Body

	data, err := os.ReadFile(path)
	if err != nil {
		return body, fmt.Errorf("failed to read record %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return body, fmt.Errorf("failed to decode record %s: %w", path, err)
	}
	return body, nil
}

func (s *store) LoadDir(dir string) ([]simulation.Body, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read record directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	bodies := make([]simulation.Body, len(paths))
	errs := make([]error, len(paths))

	// A WaitGroup provides the barrier since the pool's workers are
	// reused across loads.
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		idx := i
		p := path
		s.loadPool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				bodies[idx], errs[idx] = s.LoadBody(p)
				return nil, errs[idx]
			},
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return bodies, nil
}

func (s *store) SaveBody(path string, body simulation.Body) error {
	data, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write record %s: %w", path, err)
	}
	return nil
}
