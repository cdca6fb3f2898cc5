package web

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestBuildFrame(t *testing.T) {
	g := breakout.New(config.DefaultBreakout())
	frame := buildFrame(g)

	if frame.World.W != 900 || frame.World.H != 780 {
		t.Errorf("world = %vx%v, want 900x780", frame.World.W, frame.World.H)
	}
	if frame.Ball.X != 450 || frame.Ball.Y != 500 {
		t.Errorf("ball at (%v, %v), want (450, 500)", frame.Ball.X, frame.Ball.Y)
	}
	if frame.Paddle.X != 450 {
		t.Errorf("paddle.X = %v, want 450", frame.Paddle.X)
	}
	if len(frame.Bricks) != 100 || frame.Alive != 100 {
		t.Errorf("got %d bricks with %d alive, want 100/100", len(frame.Bricks), frame.Alive)
	}
}

func TestBuildFrameReflectsKills(t *testing.T) {
	g := breakout.New(config.DefaultBreakout())
	g.Grid().Bricks[0].Alive = false

	frame := buildFrame(g)

	if frame.Alive != 99 {
		t.Errorf("alive = %d, want 99", frame.Alive)
	}
	if frame.Bricks[0].Alive {
		t.Error("dead brick reported alive")
	}
}

// The client script indexes these exact keys.
func TestFrameWireFormat(t *testing.T) {
	g := breakout.New(config.DefaultBreakout())
	data, err := json.Marshal(buildFrame(g))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	for _, key := range []string{`"world"`, `"ball"`, `"paddle"`, `"bricks"`, `"alive"`, `"vx"`, `"color"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("frame JSON missing %s", key)
		}
	}
}
