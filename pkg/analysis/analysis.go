// Package analysis drives the compatibility pipeline for a whole manifest:
// it fans out one capability fetch per dependency, classifies every result,
// and aggregates the verdicts into a report.
package analysis

import (
	"context"
	"sync"

	"github.com/ygorazambuja/pubspec-platform/pkg/compat"
	"github.com/ygorazambuja/pubspec-platform/pkg/pubspec"
)

// Fetcher retrieves capability data for one package by name.
type Fetcher interface {
	FetchCapabilities(ctx context.Context, pkg string) (compat.Capabilities, error)
}

// Package is the complete per-dependency record: declared capabilities plus
// the compatibility verdict against the run's targets. Created once per
// dependency per run and immutable thereafter.
type Package struct {
	Name string `json:"name"`
	compat.Capabilities
	compat.Verdict
}

// Analysis is the final artifact of one run: per-dependency records in
// manifest order, partitioned into runtime and development buckets, plus the
// target configuration the verdicts were computed against.
type Analysis struct {
	Dependencies    []Package     `json:"dependencies"`
	DevDependencies []Package     `json:"dev_dependencies"`
	Config          compat.Config `json:"config"`
}

// All returns both buckets as one sequence, runtime dependencies first.
func (a *Analysis) All() []Package {
	all := make([]Package, 0, len(a.Dependencies)+len(a.DevDependencies))
	all = append(all, a.Dependencies...)
	return append(all, a.DevDependencies...)
}

// Counts tallies packages per status across both buckets.
func (a *Analysis) Counts() map[compat.Status]int {
	counts := make(map[compat.Status]int, 3)
	for _, pkg := range a.All() {
		counts[pkg.Status]++
	}
	return counts
}

// Analyzer runs the compatibility pipeline using the given Fetcher.
type Analyzer struct {
	fetcher Fetcher
	logger  func(string, ...any)
}

// New creates an Analyzer. logger receives diagnostics for absorbed
// per-dependency fetch failures and may be nil.
func New(fetcher Fetcher, logger func(string, ...any)) *Analyzer {
	if logger == nil {
		logger = func(string, ...any) {}
	}
	return &Analyzer{fetcher: fetcher, logger: logger}
}

// Run analyzes every dependency in the manifest against cfg. All fetches are
// launched at once and progress independently; results land in a slot array
// indexed by manifest position, so output order matches manifest order
// regardless of response order.
//
// A failed fetch never aborts the run: it degrades to a fallback record with
// empty capabilities and every target reported missing, and is logged. Run
// itself cannot fail.
func (a *Analyzer) Run(ctx context.Context, m *pubspec.Manifest, cfg compat.Config) *Analysis {
	names := make([]string, 0, len(m.Dependencies)+len(m.DevDependencies))
	names = append(names, m.Dependencies...)
	names = append(names, m.DevDependencies...)

	results := make([]Package, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = a.analyze(ctx, name, cfg)
		}()
	}
	wg.Wait()

	split := len(m.Dependencies)
	return &Analysis{
		Dependencies:    results[:split:split],
		DevDependencies: results[split:],
		Config:          cfg,
	}
}

func (a *Analyzer) analyze(ctx context.Context, name string, cfg compat.Config) Package {
	caps, err := a.fetcher.FetchCapabilities(ctx, name)
	if err != nil {
		a.logger("fetch failed: %s: %v", name, err)
		return Package{Name: name, Verdict: compat.Fallback(cfg)}
	}
	return Package{
		Name:         name,
		Capabilities: caps,
		Verdict:      compat.Check(caps, cfg),
	}
}
