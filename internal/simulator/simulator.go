// Package simulator fabricates inference results for catalog agents: it
// sleeps for a model-type-specific latency, runs a mock transformation over
// the input, and synthesizes cost and accuracy metrics.
package simulator

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/duke-git/lancet/v2/strutil"

	"ainexus/server/internal/catalog"
)

// latencyRange bounds the simulated processing delay in milliseconds,
// inclusive on both ends.
type latencyRange struct {
	Min int
	Max int
}

// latencyRanges maps model types to their simulated processing delays.
var latencyRanges = map[catalog.ModelType]latencyRange{
	catalog.ModelSummarization: {300, 600},
	catalog.ModelSentiment:     {100, 250},
	catalog.ModelImageCaption:  {600, 1200},
}

// defaultLatencyRange applies to model types without an explicit range.
var defaultLatencyRange = latencyRange{200, 400}

// Result is the outcome of one simulated inference call.
type Result struct {
	Output        string  `json:"output"`
	LatencyMS     int     `json:"latency_ms"`
	CostUSD       float64 `json:"cost_usd"`
	AccuracyScore int     `json:"accuracy_score"`
	Timestamp     string  `json:"timestamp"`
}

// Simulator runs mock inference against a fixed agent registry. It holds no
// mutable state; concurrent calls sleep independently.
type Simulator struct {
	registry *catalog.Registry
}

// New creates a simulator over the given registry.
func New(registry *catalog.Registry) *Simulator {
	return &Simulator{registry: registry}
}

// Registry returns the agent registry the simulator resolves ids against.
func (s *Simulator) Registry() *catalog.Registry {
	return s.registry
}

// Infer simulates one inference call. It fails with ErrEmptyInput for blank
// input and catalog.ErrAgentNotFound for unregistered ids; every other path
// succeeds, with only the numeric metrics randomized. The drawn latency is
// the single suspension point.
func (s *Simulator) Infer(ctx context.Context, agentID, input string) (*Result, error) {
	if strutil.IsBlank(input) {
		return nil, ErrEmptyInput
	}

	agent, err := s.registry.Lookup(agentID)
	if err != nil {
		return nil, err
	}

	bounds, ok := latencyRanges[agent.ModelType]
	if !ok {
		bounds = defaultLatencyRange
	}
	latency := bounds.Min + rand.IntN(bounds.Max-bounds.Min+1)

	select {
	case <-time.After(time.Duration(latency) * time.Millisecond):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return &Result{
		Output:        transform(agent.ModelType, input),
		LatencyMS:     latency,
		CostUSD:       round6(0.0001 + rand.Float64()*(0.005-0.0001)),
		AccuracyScore: 75 + rand.IntN(24),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round6 rounds to 6 decimal places.
func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
