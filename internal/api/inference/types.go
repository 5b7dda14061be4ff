// Package inference provides the HTTP API for the agent testing service.
package inference

import "ainexus/server/internal/catalog"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// BannerResponse is the service banner returned from the root path.
type BannerResponse struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// AgentListResponse lists all registered agents.
type AgentListResponse struct {
	Agents []catalog.Agent `json:"agents"`
}

// TestRequest is the body for POST /test.
type TestRequest struct {
	AgentID     string `json:"agent_id"`
	InputData   string `json:"input_data"`
	UserAddress string `json:"user_address,omitempty"`
}

// TestResponse is one simulated inference result plus call metadata.
type TestResponse struct {
	Output        string         `json:"output"`
	LatencyMS     int            `json:"latency_ms"`
	CostUSD       float64        `json:"cost_usd"`
	AccuracyScore int            `json:"accuracy_score"`
	Timestamp     string         `json:"timestamp"`
	Metadata      map[string]any `json:"metadata"`
}

// HealthMetrics carries the numeric part of the health payload.
type HealthMetrics struct {
	TotalAgents   int     `json:"total_agents"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// HealthResponse is the detailed health check payload.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Metrics   HealthMetrics     `json:"metrics"`
}
