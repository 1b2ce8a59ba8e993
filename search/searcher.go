package search

import (
	"context"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/tzofnat/elsgrep/core"
	"github.com/tzofnat/elsgrep/corpus"
)

// Searcher runs equidistant letter sequence searches over one corpus.
// The corpus is read-only for the lifetime of the searcher, so a single
// Searcher may serve any number of concurrent Find calls.
type Searcher struct {
	corpus *corpus.Corpus
	pool   *ants.Pool
	pad    int
	logger *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithWorkers sets the worker pool size used to scan skip values in
// parallel. A size below 2 keeps the scan sequential. Parallel scans produce
// exactly the same hits in exactly the same order as sequential ones.
func WithWorkers(size int) Option {
	return func(s *Searcher) error {
		if s.pool != nil {
			s.pool.Release()
			s.pool = nil
		}
		if size < 2 {
			return nil
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// WithContextPad sets how many context letters are rendered on each side of
// a hit. Default is DefaultContextPad.
func WithContextPad(pad int) Option {
	return func(s *Searcher) error {
		if pad < 0 {
			pad = 0
		}
		s.pad = pad
		return nil
	}
}

// NewSearcher creates a new searcher over the given corpus.
func NewSearcher(c *corpus.Corpus, opts ...Option) (*Searcher, error) {
	if c == nil {
		return nil, ErrCorpusRequired
	}

	s := &Searcher{
		corpus: c,
		pad:    DefaultContextPad,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.Release()
			return nil, err
		}
	}
	return s, nil
}

// Release frees the worker pool, if any. The searcher remains usable in
// sequential mode afterwards.
func (s *Searcher) Release() {
	if s.pool != nil {
		s.pool.Release()
		s.pool = nil
	}
}

// Find runs one search and returns hits in the deterministic order:
// skip ascending, forward before backward within a skip, start ascending.
func (s *Searcher) Find(ctx context.Context, req *core.Request) ([]*core.Hit, error) {
	return s.FindWithMonitor(ctx, req, nil)
}

// FindWithMonitor runs one search with monitoring.
// The monitor receives callbacks in deterministic hit order.
func (s *Searcher) FindWithMonitor(ctx context.Context, req *core.Request, monitor Monitor) ([]*core.Hit, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if err := core.ValidateRequest(req); err != nil {
		return nil, err
	}

	monitor.Start(req.Pattern)

	candidates := s.corpus.Positions(req.Pattern[0])
	monitor.Candidates(len(candidates))
	if len(candidates) == 0 {
		// First letter never occurs: bounds exhaustion, not an error.
		hits := []*core.Hit{}
		monitor.Finish(hits)
		return hits, nil
	}

	var perSkip [][]*core.Hit
	var err error
	if s.pool != nil {
		perSkip, err = s.scanParallel(ctx, req, candidates)
	} else {
		perSkip, err = s.scanSequential(ctx, req, candidates)
	}
	if err != nil {
		return nil, err
	}

	// Merge in skip order and truncate to the result cap. Sequential scans
	// are already capped; parallel scans over-collect per skip.
	hits := make([]*core.Hit, 0, req.MaxHits)
	for i, found := range perSkip {
		if len(hits)+len(found) > req.MaxHits {
			found = found[:req.MaxHits-len(hits)]
		}
		monitor.SkipScanned(req.SkipMin+i, len(found))
		for _, hit := range found {
			monitor.HitFound(hit)
		}
		hits = append(hits, found...)
		if len(hits) == req.MaxHits {
			break
		}
	}

	s.logger.Debug("search finished",
		"patternLength", len(req.Pattern),
		"skipMin", req.SkipMin,
		"skipMax", req.SkipMax,
		"hits", len(hits))
	monitor.Finish(hits)
	return hits, nil
}

// scanSequential walks the skip range in ascending order, stopping as soon
// as the result cap is reached.
func (s *Searcher) scanSequential(ctx context.Context, req *core.Request, candidates []int) ([][]*core.Hit, error) {
	perSkip := make([][]*core.Hit, 0, req.SkipMax-req.SkipMin+1)
	total := 0
	for skip := req.SkipMin; skip <= req.SkipMax; skip++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		found := s.scanSkip(req, candidates, skip, req.MaxHits-total)
		perSkip = append(perSkip, found)
		total += len(found)
		if total >= req.MaxHits {
			break
		}
	}
	return perSkip, nil
}

// scanParallel partitions the skip range across the worker pool. Every skip
// collects at most MaxHits hits, which is enough for the post-merge
// truncation to reproduce the sequential result exactly.
func (s *Searcher) scanParallel(ctx context.Context, req *core.Request, candidates []int) ([][]*core.Hit, error) {
	perSkip := make([][]*core.Hit, req.SkipMax-req.SkipMin+1)
	var wg sync.WaitGroup
	for i := range perSkip {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		skip := req.SkipMin + i
		wg.Add(1)
		task := func() {
			defer wg.Done()
			perSkip[i] = s.scanSkip(req, candidates, skip, req.MaxHits)
		}
		if err := s.pool.Submit(task); err != nil {
			// Pool exhausted or released: degrade to inline execution.
			task()
		}
	}
	wg.Wait()
	return perSkip, ctx.Err()
}

// scanSkip verifies every candidate start at one skip value, forward pass
// fully before backward pass, and returns at most limit hits.
func (s *Searcher) scanSkip(req *core.Request, candidates []int, skip, limit int) []*core.Hit {
	if limit <= 0 {
		return nil
	}
	m := len(req.Pattern)
	var hits []*core.Hit

	if req.Forward {
		for _, start := range candidates {
			if len(hits) >= limit {
				return hits
			}
			if start+(m-1)*skip >= s.corpus.Len() {
				continue // out of bounds, not a failure
			}
			if s.matchAt(req.Pattern, start, skip) {
				hits = append(hits, compose(s.corpus, start, skip, m, s.pad))
			}
		}
	}

	if req.Backward {
		for _, start := range candidates {
			if len(hits) >= limit {
				return hits
			}
			if start-(m-1)*skip < 0 {
				continue
			}
			if s.matchAt(req.Pattern, start, -skip) {
				hits = append(hits, compose(s.corpus, start, -skip, m, s.pad))
			}
		}
	}

	return hits
}

// matchAt verifies the pattern's interior letters at the given signed step.
// The first letter is already known to match via the position index.
func (s *Searcher) matchAt(pattern []rune, start, step int) bool {
	for j := 1; j < len(pattern); j++ {
		if s.corpus.Letter(start+j*step) != pattern[j] {
			return false
		}
	}
	return true
}
