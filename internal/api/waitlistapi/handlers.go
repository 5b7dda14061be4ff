package waitlistapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/duke-git/lancet/v2/strutil"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ainexus/server/internal/logger"
	"ainexus/server/internal/utils"
	"ainexus/server/internal/waitlist"
)

// banner handles GET /
func (s *Server) banner(c *fiber.Ctx) error {
	return c.JSON(BannerResponse{
		Message:   "AI Nexus Waitlist Service",
		Status:    "running",
		Version:   s.config.Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// join handles POST /waitlist/join
func (s *Server) join(c *fiber.Ctx) error {
	var req JoinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
		})
	}

	if strutil.IsBlank(req.Email) || strutil.IsBlank(req.FirstName) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Email and first name are required",
		})
	}

	entry := &waitlist.Entry{
		Email:             req.Email,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Company:           optional(req.Company),
		Role:              optional(req.Role),
		UseCase:           optional(req.UseCase),
		ReferralSource:    optional(req.ReferralSource),
		NewsletterConsent: req.NewsletterConsent,
		IPAddress:         c.IP(),
		UserAgent:         c.Get(fiber.HeaderUserAgent),
	}
	if err := entry.SetInterests(req.Interests); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid interests list",
		})
	}

	position, total, err := s.store.Join(c.UserContext(), entry)
	if err != nil {
		if errors.Is(err, waitlist.ErrDuplicateEmail) {
			return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
				Error:   "conflict",
				Message: "Email already on waitlist",
			})
		}
		logger.Error("waitlist join failed", zap.String("email", req.Email), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "Internal server error",
		})
	}

	// Welcome email goes out after the response; failures stay invisible to
	// the caller.
	email, firstName := req.Email, req.FirstName
	utils.SafeGo("send-welcome-email", func() {
		s.notifier.SendWelcome(email, firstName, position)
	})

	return c.JSON(JoinResponse{
		Success:    true,
		Message:    "Successfully joined the waitlist!",
		Position:   position,
		TotalCount: total,
	})
}

// stats handles GET /waitlist/stats
func (s *Server) stats(c *fiber.Ctx) error {
	stats, err := s.store.Stats(c.UserContext())
	if err != nil {
		logger.Error("waitlist stats failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to fetch statistics",
		})
	}
	return c.JSON(stats)
}

// position handles GET /waitlist/position/:email
func (s *Server) position(c *fiber.Ctx) error {
	email := paramEmail(c)

	info, err := s.store.Position(c.UserContext(), email)
	if err != nil {
		if errors.Is(err, waitlist.ErrEmailNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error:   "not_found",
				Message: "Email not found in waitlist",
			})
		}
		logger.Error("waitlist position lookup failed", zap.String("email", email), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to lookup position",
		})
	}

	return c.JSON(PositionResponse{
		Email:    email,
		Position: info.Position,
		JoinedAt: info.JoinedAt.UTC().Format(time.RFC3339),
		Status:   "found",
	})
}

// invite handles POST /waitlist/invite/:email
func (s *Server) invite(c *fiber.Ctx) error {
	email := paramEmail(c)

	if err := s.store.Invite(c.UserContext(), email); err != nil {
		if errors.Is(err, waitlist.ErrEmailNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error:   "not_found",
				Message: "Email not found in waitlist",
			})
		}
		logger.Error("waitlist invite failed", zap.String("email", email), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to send invitation",
		})
	}

	utils.SafeGo("send-invitation-email", func() {
		firstName, err := s.store.FirstName(context.Background(), email)
		if err != nil {
			firstName = "there"
		}
		s.notifier.SendInvitation(email, firstName)
	})

	return c.JSON(InviteResponse{
		Success: true,
		Message: fmt.Sprintf("Invitation sent to %s", email),
		Email:   email,
	})
}

// healthCheck handles GET /health
func (s *Server) healthCheck(c *fiber.Ctx) error {
	emailStatus := "not_configured"
	if s.notifier.Enabled() {
		emailStatus = "configured"
	}

	return c.JSON(HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services: map[string]string{
			"api":      "running",
			"database": "connected",
			"email":    emailStatus,
		},
	})
}

// paramEmail returns the :email path parameter, undoing percent-encoding.
func paramEmail(c *fiber.Ctx) string {
	raw := c.Params("email")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// optional maps an empty string to a nil pointer.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
