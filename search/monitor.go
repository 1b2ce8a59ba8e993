package search

import "github.com/tzofnat/elsgrep/core"

// Monitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results.
// Callbacks always arrive in the deterministic hit order, regardless of
// whether the skip range is scanned sequentially or in parallel.
type Monitor interface {
	Start(pattern []rune)
	Candidates(count int)
	SkipScanned(skip int, hits int)
	HitFound(hit *core.Hit)
	Finish(hits []*core.Hit)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ []rune)          {}
func (n *noopMonitor) Candidates(_ int)        {}
func (n *noopMonitor) SkipScanned(_ int, _ int) {}
func (n *noopMonitor) HitFound(_ *core.Hit)    {}
func (n *noopMonitor) Finish(_ []*core.Hit)    {}
