package simulator

import (
	"context"
	"time"
)

// benchmarkInputs are the three canned test inputs, ordered short to long.
var benchmarkInputs = []string{
	"Short test input for basic functionality",
	"Medium length test input to evaluate performance with moderate complexity and processing requirements",
	"Very long test input designed to stress test the model with extensive content that requires significant processing power and memory usage to handle effectively while maintaining accuracy and performance standards throughout the entire inference process",
}

// CaseResult is one benchmark test case tagged with its ordinal position and
// input length.
type CaseResult struct {
	TestCase    int `json:"test_case"`
	InputLength int `json:"input_length"`
	Result
}

// Summary aggregates the per-case metrics of a benchmark run.
type Summary struct {
	AverageLatencyMS float64 `json:"average_latency_ms"`
	AverageCostUSD   float64 `json:"average_cost_usd"`
	AverageAccuracy  float64 `json:"average_accuracy"`
	TotalTests       int     `json:"total_tests"`
}

// BenchmarkReport holds the per-case results of a benchmark run plus the
// aggregate means.
type BenchmarkReport struct {
	AgentID   string       `json:"agent_id"`
	Summary   Summary      `json:"benchmark_summary"`
	Results   []CaseResult `json:"detailed_results"`
	Timestamp string       `json:"timestamp"`
}

// Benchmark drives the simulator sequentially over the canned inputs and
// aggregates the results. Any mid-sequence failure aborts the whole report;
// there are no partial results.
func (s *Simulator) Benchmark(ctx context.Context, agentID string) (*BenchmarkReport, error) {
	if _, err := s.registry.Lookup(agentID); err != nil {
		return nil, err
	}

	results := make([]CaseResult, 0, len(benchmarkInputs))
	for i, input := range benchmarkInputs {
		result, err := s.Infer(ctx, agentID, input)
		if err != nil {
			return nil, err
		}
		results = append(results, CaseResult{
			TestCase:    i + 1,
			InputLength: len(input),
			Result:      *result,
		})
	}

	var totalLatency, totalAccuracy int
	var totalCost float64
	for _, r := range results {
		totalLatency += r.LatencyMS
		totalCost += r.CostUSD
		totalAccuracy += r.AccuracyScore
	}
	n := float64(len(results))

	return &BenchmarkReport{
		AgentID: agentID,
		Summary: Summary{
			AverageLatencyMS: round2(float64(totalLatency) / n),
			AverageCostUSD:   round6(totalCost / n),
			AverageAccuracy:  round2(float64(totalAccuracy) / n),
			TotalTests:       len(results),
		},
		Results:   results,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
