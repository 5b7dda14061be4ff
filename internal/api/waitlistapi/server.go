package waitlistapi

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"

	"ainexus/server/internal/waitlist"
)

// Store is the waitlist store surface the handlers depend on. Implemented by
// *waitlist.Store; tests substitute a fake.
type Store interface {
	Join(ctx context.Context, entry *waitlist.Entry) (position, total int64, err error)
	Stats(ctx context.Context) (*waitlist.Stats, error)
	Position(ctx context.Context, email string) (*waitlist.PositionInfo, error)
	Invite(ctx context.Context, email string) error
	FirstName(ctx context.Context, email string) (string, error)
}

// Notifier sends waitlist notification emails. Implemented by *mailer.Mailer.
type Notifier interface {
	Enabled() bool
	SendWelcome(email, firstName string, position int64)
	SendInvitation(email, firstName string)
}

// Config holds the configuration for the waitlist API server.
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	EnableCORS   bool
	Version      string
}

// DefaultConfig returns a default server configuration.
func DefaultConfig() *Config {
	return &Config{
		Address:      ":8001",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		EnableCORS:   true,
		Version:      "1.0.0",
	}
}

// Server is the waitlist API server.
type Server struct {
	app      *fiber.App
	store    Store
	notifier Notifier
	config   *Config
}

// NewServer creates the waitlist API server around a store and a notifier.
func NewServer(store Store, notifier Notifier, config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	}

	app := fiber.New(fiber.Config{
		AppName:      "AI Nexus Waitlist Service",
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: errorHandler,
	})

	server := &Server{
		app:      app,
		store:    store,
		notifier: notifier,
		config:   config,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures middleware for the server.
func (s *Server) setupMiddleware() {
	s.app.Use(fiberrecover.New(fiberrecover.Config{
		EnableStackTrace: true,
	}))

	s.app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	if s.config.EnableCORS {
		s.app.Use(cors.New(cors.Config{
			AllowOrigins:     "*",
			AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
			AllowCredentials: false,
			MaxAge:           86400,
		}))
	}
}

// setupRoutes configures the API routes.
func (s *Server) setupRoutes() {
	s.app.Get("/", s.banner)
	s.app.Post("/waitlist/join", s.join)
	s.app.Get("/waitlist/stats", s.stats)
	s.app.Get("/waitlist/position/:email", s.position)
	s.app.Post("/waitlist/invite/:email", s.invite)
	s.app.Get("/health", s.healthCheck)
}

// Start starts the server.
func (s *Server) Start() error {
	return s.app.Listen(s.config.Address)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying Fiber app, used by tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// errorHandler handles errors returned by handlers.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "internal_error",
		Message: message,
	})
}
