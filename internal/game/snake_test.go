package game

import (
	"testing"

	"github.com/vovakirdan/advanced-snake/internal/core"
)

func testGrid() Grid {
	return Grid{Width: 30, Height: 20}
}

func TestSnakeStartsCentered(t *testing.T) {
	s := NewSnake(testGrid(), 4, 3)

	if s.Len() != 4 {
		t.Errorf("expected length 4, got %d", s.Len())
	}
	if s.Head() != (core.Position{X: 15, Y: 10}) {
		t.Errorf("expected head at center, got %v", s.Head())
	}
	if s.Direction() != core.DirRight {
		t.Errorf("expected initial direction right, got %v", s.Direction())
	}
	// Body extends left from the head, one contiguous row.
	body := s.Body()
	for i := 1; i < len(body); i++ {
		if body[i].X != body[i-1].X-1 || body[i].Y != body[i-1].Y {
			t.Errorf("body not contiguous at segment %d: %v", i, body)
		}
	}
}

func TestSnakeIgnoresReversal(t *testing.T) {
	s := NewSnake(testGrid(), 4, 3)

	s.QueueDirection(core.DirLeft) // exact reverse of current heading
	s.Tick()

	if s.Direction() != core.DirRight {
		t.Errorf("reversal should be ignored, direction is %v", s.Direction())
	}
}

func TestSnakeLatchesOneDirectionPerTick(t *testing.T) {
	s := NewSnake(testGrid(), 4, 3)

	s.QueueDirection(core.DirUp)
	s.QueueDirection(core.DirDown) // should be dropped, up already latched
	s.Tick()

	if s.Direction() != core.DirUp {
		t.Errorf("expected up after tick, got %v", s.Direction())
	}

	// The latch clears each tick, so a new change is accepted.
	s.QueueDirection(core.DirLeft)
	s.Tick()
	if s.Direction() != core.DirLeft {
		t.Errorf("expected left after second tick, got %v", s.Direction())
	}
}

func TestSnakeGrowthSpreadsOverTicks(t *testing.T) {
	s := NewSnake(testGrid(), 4, 3)

	s.Grow(2)
	s.Tick()
	if s.Len() != 5 {
		t.Errorf("expected length 5 after first growth tick, got %d", s.Len())
	}
	s.Tick()
	if s.Len() != 6 {
		t.Errorf("expected length 6 after second growth tick, got %d", s.Len())
	}
	s.Tick()
	if s.Len() != 6 {
		t.Errorf("length should stop growing at 6, got %d", s.Len())
	}
}

func TestSnakeShrinkRespectsMinimum(t *testing.T) {
	s := NewSnake(testGrid(), 5, 3)

	removed := s.Shrink(10)
	if removed != 2 {
		t.Errorf("expected 2 segments removed, got %d", removed)
	}
	if s.Len() != 3 {
		t.Errorf("expected length floor 3, got %d", s.Len())
	}

	if s.Shrink(1) != 0 {
		t.Error("shrink below minimum should remove nothing")
	}
}

func TestSnakeTailCellIsSafeAfterMove(t *testing.T) {
	s := NewSnake(testGrid(), 4, 3)

	tail := s.Body()[3]
	s.Tick()

	// The tail vacated its cell this tick, so landing there is legal.
	if s.WillCollideWithSelf(tail) {
		t.Error("just-vacated tail cell should not collide")
	}
}

func TestSnakeTailCellCollidesWhileGrowing(t *testing.T) {
	s := NewSnake(testGrid(), 4, 3)

	tail := s.Body()[3]
	s.Grow(1)
	s.Tick()

	// Growth kept the tail in place, so the cell is still occupied.
	if !s.WillCollideWithSelf(tail) {
		t.Error("tail cell should collide while growth holds it")
	}
}

func TestSnakeRollbackRestoresBody(t *testing.T) {
	s := NewSnake(testGrid(), 4, 3)

	before := s.Body()
	s.Grow(1)
	s.Tick()
	s.Rollback()

	after := s.Body()
	if len(after) != len(before) {
		t.Fatalf("rollback should undo same-tick growth: %d != %d", len(after), len(before))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("segment %d mismatch after rollback: %v != %v", i, after[i], before[i])
		}
	}
}

func TestSnakeRenderInterpolation(t *testing.T) {
	s := NewSnake(testGrid(), 4, 3)

	head := s.Head()
	s.Tick() // moves right one cell

	mid := s.RenderPositions(0.5)
	wantX := float64(head.X) + 0.5
	if mid[0].X != wantX || mid[0].Y != float64(head.Y) {
		t.Errorf("expected head at (%g, %d), got (%g, %g)", wantX, head.Y, mid[0].X, mid[0].Y)
	}

	done := s.RenderPositions(1.0)
	if done[0].X != float64(s.Head().X) {
		t.Errorf("alpha 1 should land on the new cell, got %g", done[0].X)
	}
}
