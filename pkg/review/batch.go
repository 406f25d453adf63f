package review

import (
	"errors"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"gonum.org/v1/gonum/stat"
)

// FileReview is the per-file result of a batch run.
type FileReview struct {
	Path string `json:"path"`
	// DuplicateOf names the first file with identical contents; such
	// files reuse that file's review instead of being re-analyzed.
	DuplicateOf string  `json:"duplicate_of,omitempty"`
	Functions   int     `json:"functions"`
	Advisories  int     `json:"advisories"`
	Review      *Review `json:"review,omitempty"`
}

// BatchSummary aggregates a batch run.
type BatchSummary struct {
	TotalFiles      int     `json:"total_files"`
	AnalyzedFiles   int     `json:"analyzed_files"`
	DuplicateFiles  int     `json:"duplicate_files"`
	SkippedFiles    int     `json:"skipped_files"` // unreadable or empty
	TotalFunctions  int     `json:"total_functions"`
	MeanFunctions   float64 `json:"mean_functions"`
	StdDevFunctions float64 `json:"stddev_functions"`
}

// BatchAnalysis is the full result of reviewing a set of files.
type BatchAnalysis struct {
	Files      []FileReview `json:"files"`
	Summary    BatchSummary `json:"summary"`
	AnalyzedAt time.Time    `json:"analyzed_at"`
}

// Batch reviews a set of files with a worker pool. Identical file
// contents are detected up front by xxhash and analyzed only once;
// later occurrences reference the first. Results keep input order.
type Batch struct {
	reviewer   *Reviewer
	maxWorkers int
}

// BatchOption is a functional option for configuring Batch.
type BatchOption func(*Batch)

// WithWorkers sets the worker pool size (<= 0 means 2x NumCPU).
func WithWorkers(n int) BatchOption {
	return func(b *Batch) {
		b.maxWorkers = n
	}
}

// WithReviewer replaces the default reviewer.
func WithReviewer(r *Reviewer) BatchOption {
	return func(b *Batch) {
		if r != nil {
			b.reviewer = r
		}
	}
}

// NewBatch creates a batch runner.
func NewBatch(opts ...BatchOption) *Batch {
	b := &Batch{
		reviewer: New(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run reviews files and aggregates the results. Unreadable and empty
// files are skipped and counted, never fatal.
func (b *Batch) Run(files []string, onProgress ProgressFunc) *BatchAnalysis {
	analysis := &BatchAnalysis{
		Files:      make([]FileReview, 0, len(files)),
		AnalyzedAt: time.Now().UTC(),
	}
	analysis.Summary.TotalFiles = len(files)

	// Phase 1: read and hash sequentially so dedupe assignment follows
	// input order deterministically.
	type candidate struct {
		path        string
		content     string
		duplicateOf string
	}
	firstByHash := make(map[uint64]string)
	candidates := make([]candidate, 0, len(files))

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			analysis.Summary.SkippedFiles++
			if onProgress != nil {
				onProgress()
			}
			continue
		}
		c := candidate{path: path, content: string(data)}
		h := xxhash.Sum64(data)
		if first, seen := firstByHash[h]; seen {
			c.duplicateOf = first
		} else {
			firstByHash[h] = path
		}
		candidates = append(candidates, c)
	}

	// Phase 2: review unique contents in parallel.
	unique := make([]string, 0, len(candidates))
	contentByPath := make(map[string]string, len(candidates))
	for _, c := range candidates {
		contentByPath[c.path] = c.content
		if c.duplicateOf == "" {
			unique = append(unique, c.path)
		}
	}

	type reviewed struct {
		path   string
		review *Review
	}
	results := MapFiles(unique, b.maxWorkers, func(path string) (reviewed, error) {
		r, err := b.reviewer.Review(contentByPath[path])
		if err != nil {
			return reviewed{}, err
		}
		return reviewed{path: path, review: r}, nil
	}, onProgress)

	reviewByPath := make(map[string]*Review, len(results))
	for _, r := range results {
		reviewByPath[r.path] = r.review
	}

	// Phase 3: assemble per-file rows in input order.
	var functionCounts []float64
	for _, c := range candidates {
		source := c.path
		if c.duplicateOf != "" {
			source = c.duplicateOf
		}
		r, ok := reviewByPath[source]
		if !ok {
			// Empty input or duplicate of an empty file.
			analysis.Summary.SkippedFiles++
			if c.duplicateOf != "" && onProgress != nil {
				onProgress()
			}
			continue
		}

		fr := FileReview{
			Path:       c.path,
			Functions:  len(r.Signatures),
			Advisories: len(r.Advisories),
		}
		if c.duplicateOf != "" {
			fr.DuplicateOf = c.duplicateOf
			analysis.Summary.DuplicateFiles++
			if onProgress != nil {
				onProgress()
			}
		} else {
			fr.Review = r
			analysis.Summary.AnalyzedFiles++
			analysis.Summary.TotalFunctions += len(r.Signatures)
			functionCounts = append(functionCounts, float64(len(r.Signatures)))
		}
		analysis.Files = append(analysis.Files, fr)
	}

	if len(functionCounts) > 0 {
		analysis.Summary.MeanFunctions = stat.Mean(functionCounts, nil)
		if len(functionCounts) > 1 {
			analysis.Summary.StdDevFunctions = stat.StdDev(functionCounts, nil)
		}
	}

	return analysis
}

// IsEmptyInput reports whether err is the engine's empty-input error.
func IsEmptyInput(err error) bool {
	return errors.Is(err, ErrEmptyInput)
}
