// Package web serves the breakout game to browsers. The page is a canvas
// client that talks to the server over a WebSocket: the server streams one
// frame of game state per tick and the client reports raw key transitions.
package web

import (
	"context"
	_ "embed"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/net/websocket"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
)

//go:embed client/index.html
var indexHTML []byte

// Config holds configuration for the web server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// FPS is the frame rate for each session.
	FPS int

	// Game is the geometry every session starts from.
	Game config.Breakout
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address: ":8080",
		FPS:     60,
		Game:    config.DefaultBreakout(),
	}
}

// Server hosts the canvas client and its WebSocket sessions. Each
// connection plays its own game instance.
type Server struct {
	config Config
	logger *log.Logger
	http   *http.Server
}

// NewServer creates a web server with the given configuration.
func NewServer(cfg Config) *Server {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout-web",
	})

	s := &Server{
		config: cfg,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.Handle("/ws", websocket.Handler(s.handleSession))

	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// handleIndex serves the embedded canvas client.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	//nolint:errcheck // Best-effort write, client may have gone away
	w.Write(indexHTML)
}

// handleSession runs one WebSocket session. The game loop runs in its own
// goroutine while this handler stays in the read loop.
func (s *Server) handleSession(ws *websocket.Conn) {
	remote := ws.RemoteAddr().String()
	s.logger.Info("session started", "remote", remote)
	defer s.logger.Info("session ended", "remote", remote)

	sess := newSession(breakout.New(s.config.Game), ws, s.config.FPS)
	go sess.run()
	defer sess.stop()

	for {
		var msg InputMessage
		if err := websocket.JSON.Receive(ws, &msg); err != nil {
			if !isClosedErr(err) {
				s.logger.Warn("read failed", "remote", remote, "error", err)
			}
			return
		}
		sess.sendInput(msg)
	}
}

// ListenAndServe starts the web server and blocks until shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting web server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.http.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}

// isClosedErr reports whether err is the normal noise of a client going
// away rather than a real failure.
func isClosedErr(err error) bool {
	if errors.Is(err, io.EOF) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "use of closed network connection") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "connection reset by peer")
}
