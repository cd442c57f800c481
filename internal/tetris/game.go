package tetris

// LockCooldown is the number of ticks between a lock and the next spawn.
const LockCooldown = 5

// Rand is the random source the spawner draws from. *math/rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// Event describes what a tick did. Callers use it for logging and stats; the
// rules never read it back.
type Event int

const (
	EventNone Event = iota
	EventSpawn
	EventFall
	EventLock
	EventCooldown
)

func (e Event) String() string {
	switch e {
	case EventSpawn:
		return "spawn"
	case EventFall:
		return "fall"
	case EventLock:
		return "lock"
	case EventCooldown:
		return "cooldown"
	default:
		return "none"
	}
}

// TickResult reports the outcome of one Run call.
type TickResult struct {
	Event   Event
	Cleared int  // rows removed by this tick
	Ended   bool // true if this tick ended the game
}

// Tetris is the complete game state. It is not safe for concurrent use; the
// console package serialises access to it.
type Tetris struct {
	rng       Rand
	grid      Grid
	current   *Piece
	cooldown  int
	direction Direction
	score     uint32
	ended     bool

	ticks  uint64
	pieces int
}

// New returns a fresh game that draws pieces from rng.
func New(rng Rand) *Tetris {
	return &Tetris{
		rng:       rng,
		direction: DirLeft,
	}
}

// Run advances the game by one tick. Exactly one of lock, fall, cooldown or
// spawn happens. Once the game has ended Run does nothing.
func (t *Tetris) Run() TickResult {
	if t.ended {
		return TickResult{}
	}
	t.ticks++

	switch {
	case t.current != nil:
		if !ReachedBottom(*t.current, &t.grid) {
			next := Fall(*t.current)
			t.current = &next
			return TickResult{Event: EventFall}
		}
		return t.lock()
	case t.cooldown > 0:
		t.cooldown--
		return TickResult{Event: EventCooldown}
	default:
		t.spawn()
		return TickResult{Event: EventSpawn}
	}
}

// lock merges the current piece into the grid and clears rows. The end check
// looks at the piece before it is merged.
func (t *Tetris) lock() TickResult {
	res := TickResult{Event: EventLock}
	if clipsTop(*t.current) {
		t.ended = true
		res.Ended = true
	}

	t.grid.Merge(*t.current)
	t.current = nil
	t.cooldown = LockCooldown

	res.Cleared = ClearLines(&t.grid)
	t.score += uint32(res.Cleared)
	return res
}

// spawn places a random new piece. The spawn area is assumed to be clear.
func (t *Tetris) spawn() {
	p := NewPiece(Kind(t.rng.Intn(KindCount)))
	t.current = &p
	t.pieces++
}

// RotateBlock turns the falling piece if it fits. Without a piece it does
// nothing.
func (t *Tetris) RotateBlock() {
	if t.current == nil {
		return
	}
	rotated := Rotate(*t.current, &t.grid)
	t.current = &rotated
}

// MoveBlock advances the drift oscillation of the falling piece.
func (t *Tetris) MoveBlock() {
	if t.current == nil {
		return
	}
	moved, dir := Drift(*t.current, t.direction, &t.grid)
	t.current = &moved
	t.direction = dir
}

// Grid returns a copy of the settled field.
func (t *Tetris) Grid() Grid {
	return t.grid
}

// Block returns a copy of the falling piece, if there is one.
func (t *Tetris) Block() (Piece, bool) {
	if t.current == nil {
		return Piece{}, false
	}
	return *t.current, true
}

// Score returns the number of rows cleared so far.
func (t *Tetris) Score() uint32 {
	return t.score
}

// HasEnded reports whether the game is over.
func (t *Tetris) HasEnded() bool {
	return t.ended
}

// Direction returns the way the next drift step will try first.
func (t *Tetris) Direction() Direction {
	return t.direction
}

// Cooldown returns the ticks left before the next spawn.
func (t *Tetris) Cooldown() int {
	return t.cooldown
}
