package web

import (
	"sync"
	"time"

	"golang.org/x/net/websocket"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
)

// session owns one connected client: a game instance, the frame loop, and
// the input queue feeding it. The game is only ever touched from the loop
// goroutine.
type session struct {
	game      *breakout.Game
	conn      *websocket.Conn
	fps       int
	inputChan chan InputMessage
	done      chan struct{}
	doneOnce  sync.Once
}

func newSession(game *breakout.Game, conn *websocket.Conn, fps int) *session {
	return &session{
		game:      game,
		conn:      conn,
		fps:       fps,
		inputChan: make(chan InputMessage, 64),
		done:      make(chan struct{}),
	}
}

// sendInput queues a key transition for the next tick.
// Non-blocking, uses a buffered channel.
func (s *session) sendInput(msg InputMessage) {
	select {
	case s.inputChan <- msg:
	default:
		// Channel full, drop input (rare under normal conditions)
	}
}

// run drives the game at the session's frame rate until the client goes
// away. Frame deltas come from the ticker's own clock, so the first frame
// runs with a zero delta.
func (s *session) run() {
	defer s.stop()

	interval := time.Second / time.Duration(s.fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last time.Time
	for {
		select {
		case now := <-ticker.C:
			var delta float64
			if !last.IsZero() {
				delta = float64(now.Sub(last)) / float64(time.Millisecond)
			}
			last = now

			s.drainInputs()
			s.game.Update(delta)

			frame := buildFrame(s.game)
			if err := websocket.JSON.Send(s.conn, &frame); err != nil {
				return
			}

		case <-s.done:
			return
		}
	}
}

// drainInputs applies every queued key transition to the game.
func (s *session) drainInputs() {
	for {
		select {
		case msg := <-s.inputChan:
			s.game.KeyEvent(msg.Key, msg.Pressed)
		default:
			return
		}
	}
}

// stop ends the session. Closing the connection unblocks the read loop in
// the handler goroutine.
func (s *session) stop() {
	s.doneOnce.Do(func() {
		close(s.done)
		//nolint:errcheck // Connection may already be closed
		s.conn.Close()
	})
}
