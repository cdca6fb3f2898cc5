package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestSnapshotCapturesState(t *testing.T) {
	g := New(config.DefaultBreakout())
	g.Ball().X = 123.456
	g.Grid().Bricks[5].Alive = false

	snap := g.Snapshot()

	if snap.BallX != 123456 {
		t.Errorf("BallX = %d, expected 123456 (scaled by 1000)", snap.BallX)
	}
	if snap.PaddleX != 450000 {
		t.Errorf("PaddleX = %d, expected 450000", snap.PaddleX)
	}
	if snap.BricksAlive != 99 {
		t.Errorf("BricksAlive = %d, expected 99", snap.BricksAlive)
	}
	if len(snap.BrickData) != 100 {
		t.Fatalf("BrickData length = %d, expected 100", len(snap.BrickData))
	}
	if snap.BrickData[5] != 0 {
		t.Error("killed brick should flatten to 0")
	}
	if snap.BrickData[6] != 1 {
		t.Error("live brick should flatten to 1")
	}
}

func TestSnapshotHashChangesWithState(t *testing.T) {
	g := New(config.DefaultBreakout())
	before := g.Snapshot()
	beforeHash := before.Hash()

	again := g.Snapshot()
	if againHash := again.Hash(); againHash != beforeHash {
		t.Error("snapshot hash should be stable for unchanged state")
	}

	g.Grid().Bricks[0].Alive = false
	after := g.Snapshot()
	if after.Hash() == beforeHash {
		t.Error("killing a brick should change the hash")
	}
}

// Two games fed the same deltas and key events must stay in lockstep.
func TestGameDeterminism(t *testing.T) {
	run := func() uint64 {
		g := New(config.DefaultBreakout())
		for frame := 0; frame < 300; frame++ {
			switch frame {
			case 20:
				g.KeyEvent("left", true)
			case 80:
				g.KeyEvent("left", false)
				g.KeyEvent("right", true)
			case 200:
				g.KeyEvent("right", false)
			}
			g.Update(16.7)
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	first := run()
	second := run()

	if first != second {
		t.Errorf("two identical runs diverged: %d vs %d", first, second)
	}
}
