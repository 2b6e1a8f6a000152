package server

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/oarkflow/edi"
	"github.com/oarkflow/edi/pkg/claims"
	"github.com/oarkflow/edi/pkg/config"
	"github.com/oarkflow/edi/pkg/parsers"
)

// Server exposes claim parsing and batch runs over HTTP.
type Server struct {
	app    *fiber.App
	cfg    *config.Config
	parser *parsers.X12Parser

	mu         sync.Mutex
	executions []*edi.Summary
	running    bool
}

// ParseResponse is the payload returned by POST /parse.
type ParseResponse struct {
	ControlNumber string                   `json:"control_number"`
	SegmentCount  int                      `json:"segment_count"`
	ClaimCount    int                      `json:"claim_count"`
	Claims        []*claims.CanonicalClaim `json:"claims"`
}

// New builds the HTTP surface around a batch configuration. cfg may be nil
// when only ad-hoc parsing is needed.
func New(cfg *config.Config) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})
	s := &Server{
		app:    app,
		cfg:    cfg,
		parser: parsers.NewX12Parser(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.app.Use(cors.New())
	s.app.Use(logger.New())

	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	s.app.Post("/parse", s.handleParse)
	s.app.Post("/runs", s.handleRun)
	s.app.Get("/runs", s.handleListRuns)
	s.app.Get("/metrics", s.handleMetrics)
}

// handleParse parses the request body as one 837 interchange and returns the
// canonical claims.
func (s *Server) handleParse(c *fiber.Ctx) error {
	body := string(c.Body())
	if strings.TrimSpace(body) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "empty request body")
	}
	doc, err := s.parser.Parse(body)
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	projected := claims.Project(doc)
	return c.JSON(ParseResponse{
		ControlNumber: doc.Interchange.ControlNumber,
		SegmentCount:  doc.SegmentCount,
		ClaimCount:    len(projected),
		Claims:        projected,
	})
}

// handleRun triggers one batch using the configured input and output. Only
// one batch runs at a time.
func (s *Server) handleRun(c *fiber.Ctx) error {
	if s.cfg == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "no batch configuration loaded")
	}
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fiber.NewError(fiber.StatusConflict, "a batch is already running")
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Minute)
	defer cancel()
	summary, err := edi.Run(ctx, s.cfg)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	s.mu.Lock()
	s.executions = append(s.executions, summary)
	s.mu.Unlock()
	return c.JSON(summary)
}

func (s *Server) handleListRuns(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(s.executions)
}

// handleMetrics reports the most recent batch counters.
func (s *Server) handleMetrics(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.executions) == 0 {
		return c.JSON(edi.Metrics{})
	}
	return c.JSON(s.executions[len(s.executions)-1].Metrics)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until the listener fails or Stop is called.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Stop gracefully shuts the server down.
func (s *Server) Stop() error {
	return s.app.Shutdown()
}
