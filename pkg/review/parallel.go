package review

import (
	"runtime"

	"github.com/sourcegraph/conc/pool"
)

// ProgressFunc is called after each file is processed.
type ProgressFunc func()

// MapFiles runs fn over files in parallel and returns the results in
// input order. Files whose fn returns an error are dropped silently.
// If maxWorkers is <= 0, defaults to 2x NumCPU.
func MapFiles[T any](files []string, maxWorkers int, fn func(string) (T, error), onProgress ProgressFunc) []T {
	if len(files) == 0 {
		return nil
	}
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU() * 2
	}

	type slot struct {
		value T
		ok    bool
	}
	slots := make([]slot, len(files))

	p := pool.New().WithMaxGoroutines(maxWorkers)
	for i, path := range files {
		p.Go(func() {
			value, err := fn(path)

			if onProgress != nil {
				onProgress()
			}

			if err != nil {
				return
			}
			slots[i] = slot{value: value, ok: true}
		})
	}
	p.Wait()

	results := make([]T, 0, len(files))
	for _, s := range slots {
		if s.ok {
			results = append(results, s.value)
		}
	}
	return results
}
