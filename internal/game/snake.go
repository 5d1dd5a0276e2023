package game

import "github.com/vovakirdan/advanced-snake/internal/core"

// Snake models the player body: an ordered segment list (head first), a
// latched direction change, a pending-growth counter, and the previous
// frame's body kept for render interpolation and shield rollback.
type Snake struct {
	body      []core.Position // head at index 0
	direction core.Direction
	minLength int

	pending   core.Direction
	hasQueued bool // at most one direction change latched per tick

	growBy int

	lastBody []core.Position // body as of the previous tick
}

// NewSnake creates a snake centered on the grid, heading right.
func NewSnake(grid Grid, length, minLength int) *Snake {
	c := grid.Center()
	body := make([]core.Position, length)
	for i := range body {
		body[i] = core.Position{X: c.X - i, Y: c.Y}
	}
	s := &Snake{
		body:      body,
		direction: core.DirRight,
		minLength: minLength,
	}
	s.ResetRenderState()
	return s
}

// QueueDirection latches a direction change for the next tick.
// Ignored if a change is already latched this tick, or if the new
// direction is the exact reverse of the current heading.
func (s *Snake) QueueDirection(d core.Direction) {
	if s.hasQueued {
		return
	}
	if d.Opposite(s.direction) {
		return
	}
	s.pending = d
	s.hasQueued = true
}

// Head returns the current head position.
func (s *Snake) Head() core.Position {
	return s.body[0]
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Len returns the current body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of all snake positions, head first.
func (s *Snake) Body() []core.Position {
	out := make([]core.Position, len(s.body))
	copy(out, s.body)
	return out
}

// Occupies returns true if any segment is at the given position.
func (s *Snake) Occupies(p core.Position) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Tick advances the snake by one grid step and returns the new head.
// The caller tests the returned head against bounds and hazards before
// treating the move as committed; Rollback undoes it.
func (s *Snake) Tick() core.Position {
	s.lastBody = append(s.lastBody[:0], s.body...)

	if s.hasQueued {
		s.direction = s.pending
		s.hasQueued = false
	}

	newHead := s.body[0].Add(s.direction)
	s.body = append([]core.Position{newHead}, s.body...)
	if s.growBy > 0 {
		s.growBy--
	} else {
		s.body = s.body[:len(s.body)-1]
	}

	return newHead
}

// Grow schedules n extra segments to be added over the next n ticks.
func (s *Snake) Grow(n int) {
	s.growBy += core.Max(0, n)
}

// Shrink removes up to n tail segments, never dropping below the minimum
// length. Returns the number actually removed.
func (s *Snake) Shrink(n int) int {
	removed := 0
	for removed < n && len(s.body) > s.minLength {
		s.body = s.body[:len(s.body)-1]
		removed++
	}
	s.ResetRenderState()
	return removed
}

// WillCollideWithSelf returns true if the position hits the body,
// excluding the head. Called with the new head right after Tick, this
// tests the segment set the head actually lands on: the tail cell just
// vacated is safe, but not while growth kept it in place.
func (s *Snake) WillCollideWithSelf(p core.Position) bool {
	for _, seg := range s.body[1:] {
		if seg == p {
			return true
		}
	}
	return false
}

// Rollback restores the body to its state before the last Tick. Used when
// a shield absorbs a collision; any same-tick growth is undone with it.
func (s *Snake) Rollback() {
	s.body = append(s.body[:0], s.lastBody...)
	s.ResetRenderState()
}

// ResetRenderState collapses the interpolation baseline onto the current
// body, so the next frame renders without motion.
func (s *Snake) ResetRenderState() {
	s.lastBody = append([]core.Position(nil), s.body...)
}

// RenderPosition is a fractional cell coordinate for smooth drawing.
type RenderPosition struct {
	X, Y float64
}

// RenderPositions interpolates each segment between the previous and
// current tick by alpha in [0,1]. If the snapshots differ in length
// (growth or shrink just happened) interpolation is skipped and the raw
// current positions are returned.
func (s *Snake) RenderPositions(alpha float64) []RenderPosition {
	out := make([]RenderPosition, len(s.body))
	if len(s.lastBody) != len(s.body) {
		for i, p := range s.body {
			out[i] = RenderPosition{X: float64(p.X), Y: float64(p.Y)}
		}
		return out
	}
	for i := range s.body {
		out[i] = RenderPosition{
			X: core.Lerp(float64(s.lastBody[i].X), float64(s.body[i].X), alpha),
			Y: core.Lerp(float64(s.lastBody[i].Y), float64(s.body[i].Y), alpha),
		}
	}
	return out
}
