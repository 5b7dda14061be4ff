package inference

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ainexus/server/internal/catalog"
	"ainexus/server/internal/simulator"
)

// banner handles GET /
func (s *Server) banner(c *fiber.Ctx) error {
	return c.JSON(BannerResponse{
		Message:   "AI Agent Marketplace API",
		Status:    "running",
		Version:   s.config.Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// listAgents handles GET /agents
func (s *Server) listAgents(c *fiber.Ctx) error {
	return c.JSON(AgentListResponse{
		Agents: s.sim.Registry().List(),
	})
}

// getAgent handles GET /agents/:id
func (s *Server) getAgent(c *fiber.Ctx) error {
	agent, err := s.sim.Registry().Lookup(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Agent not found",
		})
	}
	return c.JSON(agent)
}

// testAgent handles POST /test
func (s *Server) testAgent(c *fiber.Ctx) error {
	var req TestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
		})
	}

	result, err := s.sim.Infer(c.UserContext(), req.AgentID, req.InputData)
	if err != nil {
		if errors.Is(err, simulator.ErrEmptyInput) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_input",
				Message: "Input data cannot be empty",
			})
		}
		if errors.Is(err, catalog.ErrAgentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error:   "not_found",
				Message: "Agent not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "inference_failed",
			Message: "Model inference failed: " + err.Error(),
		})
	}

	agent, _ := s.sim.Registry().Lookup(req.AgentID)

	return c.JSON(TestResponse{
		Output:        result.Output,
		LatencyMS:     result.LatencyMS,
		CostUSD:       result.CostUSD,
		AccuracyScore: result.AccuracyScore,
		Timestamp:     result.Timestamp,
		Metadata: map[string]any{
			"agent_id":        req.AgentID,
			"agent_name":      agent.Name,
			"input_length":    len(req.InputData),
			"user_address":    req.UserAddress,
			"processing_node": "node-001",
			"model_version":   s.config.Version,
			"request_id":      uuid.NewString(),
		},
	})
}

// benchmarkAgent handles POST /agents/:id/benchmark
func (s *Server) benchmarkAgent(c *fiber.Ctx) error {
	report, err := s.sim.Benchmark(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrAgentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error:   "not_found",
				Message: "Agent not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "benchmark_failed",
			Message: "Benchmark failed: " + err.Error(),
		})
	}

	return c.JSON(report)
}

// healthCheck handles GET /health
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services: map[string]string{
			"api":      "running",
			"models":   "loaded",
			"database": "connected",
		},
		Metrics: HealthMetrics{
			TotalAgents:   s.sim.Registry().Len(),
			UptimeSeconds: time.Since(s.started).Seconds(),
		},
	})
}
