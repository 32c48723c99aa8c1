// Package web provides a small dashboard and control API for the ornament
// stage: REST endpoints for mode changes and gesture toggling, plus a
// websocket stream of stage state.
package web

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/teslashibe/go-ornament/internal/log"
	"github.com/teslashibe/go-ornament/pkg/hub"
	"github.com/teslashibe/go-ornament/pkg/stage"
)

// Controls is the mutation surface the dashboard drives. The stage
// director satisfies it.
type Controls interface {
	SetMode(stage.Mode) error
	FocusLatest()
	Reset()
	SetGestureEnabled(bool)
	Snapshot() stage.State
}

// LogEntry is one line in the dashboard activity feed.
type LogEntry struct {
	Time    string `json:"time"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Server is the dashboard HTTP server.
type Server struct {
	app      *fiber.App
	port     string
	controls Controls

	stateHub *hub.Hub

	logsMu sync.RWMutex
	logs   []LogEntry
}

// NewServer creates the dashboard server around the given controls.
func NewServer(port string, controls Controls) *Server {
	s := &Server{
		port:     port,
		controls: controls,
		stateHub: hub.New("state"),
		logs:     make([]LogEntry, 0, 200),
	}

	app := fiber.New(fiber.Config{
		AppName:               "Ornament Dashboard",
		DisableStartupMessage: true,
	})
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/state", s.handleState)
	api.Get("/logs", s.handleLogs)
	api.Post("/mode/:mode", s.handleSetMode)
	api.Post("/gesture/:state", s.handleGesture)
	api.Post("/focus-latest", s.handleFocusLatest)
	api.Post("/reset", s.handleReset)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/state", websocket.New(s.handleStateWS))

	s.app = app
	return s
}

// Start starts the server. Blocks.
func (s *Server) Start() error {
	go s.stateHub.Run()
	log.Info("dashboard listening", "port", s.port)
	return s.app.Listen(":" + s.port)
}

// StartAsync starts the server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			log.Error("web server failed", "err", err)
		}
	}()
}

// Shutdown stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// PublishState broadcasts a stage snapshot to websocket clients. The main
// loop calls this a few times per second.
func (s *Server) PublishState(st stage.State) {
	s.stateHub.BroadcastJSON(st)
}

// AddLog appends an entry to the activity feed.
func (s *Server) AddLog(logType, message string) {
	entry := LogEntry{
		Time:    time.Now().Format("15:04:05"),
		Type:    logType,
		Message: message,
	}
	s.logsMu.Lock()
	s.logs = append(s.logs, entry)
	if len(s.logs) > 200 {
		s.logs = s.logs[1:]
	}
	s.logsMu.Unlock()
}

func (s *Server) handleState(c *fiber.Ctx) error {
	return c.JSON(s.controls.Snapshot())
}

func (s *Server) handleLogs(c *fiber.Ctx) error {
	s.logsMu.RLock()
	defer s.logsMu.RUnlock()
	return c.JSON(s.logs)
}

func (s *Server) handleSetMode(c *fiber.Ctx) error {
	mode, err := stage.ParseMode(c.Params("mode"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := s.controls.SetMode(mode); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	s.AddLog("mode", "mode set to "+mode.String())
	return c.JSON(s.controls.Snapshot())
}

func (s *Server) handleGesture(c *fiber.Ctx) error {
	enabled, err := strconv.ParseBool(c.Params("state"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "state must be true or false")
	}
	s.controls.SetGestureEnabled(enabled)
	s.AddLog("gesture", "gesture input enabled: "+strconv.FormatBool(enabled))
	return c.JSON(s.controls.Snapshot())
}

func (s *Server) handleFocusLatest(c *fiber.Ctx) error {
	s.controls.FocusLatest()
	return c.JSON(s.controls.Snapshot())
}

func (s *Server) handleReset(c *fiber.Ctx) error {
	s.controls.Reset()
	s.AddLog("mode", "stage reset")
	return c.JSON(s.controls.Snapshot())
}

func (s *Server) handleStateWS(conn *websocket.Conn) {
	client := hub.NewClient(s.stateHub, conn)
	client.Run()
}
