// Package simon is the game state machine: it grows the pattern, replays it,
// checks the player's clicks against it and records the score when the
// player makes a mistake.
//
// The state machine never blocks. Pauses during the computer's turn are
// countdowns advanced by the dt passed to Tick, and everything the player
// should see or hear is sent as an Event on the EventBus.
package simon

import (
	"time"

	"simon/internal/logger"
	"simon/internal/scores"
)

const logTag = "simon"

type Phase int

const (
	PhaseComputerTurn Phase = iota
	PhasePlayerTurn
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseComputerTurn:
		return "computer turn"
	case PhasePlayerTurn:
		return "player turn"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// Click is the button clicked during a tick, or NoClick.
type Click int

const NoClick Click = -1

// Timing controls the pauses of the computer's turn. The zero value replays
// one step per tick with no pauses.
type Timing struct {
	// wait before the pattern is extended and replayed
	LeadIn time.Duration

	// how long each replayed flash lasts
	FlashDuration time.Duration

	// gap after each flash
	StepPause time.Duration
}

// DefaultTiming matches the pacing of the desktop game: a one second lead-in,
// flashes of 26 frames at 60Hz and a 200ms pause between them.
var DefaultTiming = Timing{
	LeadIn:        time.Second,
	FlashDuration: 26 * time.Second / 60,
	StepPause:     200 * time.Millisecond,
}

// ScoreStore is the persistence used by the game.
type ScoreStore interface {
	Load() (scores.Record, error)
	Save(score int) error
}

// replay is the sub-state of the computer's turn.
type replay struct {
	// false during the lead-in
	active bool

	// index of the step being shown
	step int

	// time left before the next step (or before extending the pattern,
	// during the lead-in)
	wait time.Duration
}

// Game is the state of a single round, from the first computer turn to game
// over. A new Game is created for every round.
type Game struct {
	buttons int
	timing  Timing
	rng     Source
	store   ScoreStore
	bus     *EventBus

	phase     Phase
	pattern   []int
	cursor    int
	score     int
	highScore int
	top       scores.Record

	replay replay
}

// New starts a round. The high score and top scores are read from store,
// which may be nil for a game that persists nothing.
func New(buttons int, timing Timing, rng Source, store ScoreStore, bus *EventBus) *Game {
	g := &Game{
		buttons: buttons,
		timing:  timing,
		rng:     rng,
		store:   store,
		bus:     bus,
		phase:   PhaseComputerTurn,
		replay:  replay{wait: timing.LeadIn},
	}
	g.top = g.loadTop()
	g.highScore = g.top.High()
	return g
}

func (g *Game) loadTop() scores.Record {
	if g.store == nil {
		return scores.Record{}
	}
	rec, err := g.store.Load()
	if err != nil {
		logger.Logf(logTag, "reading scores: %v", err)
	}
	return rec
}

func (g *Game) Phase() Phase {
	return g.phase
}

// Pattern returns a copy of the pattern.
func (g *Game) Pattern() []int {
	p := make([]int, len(g.pattern))
	copy(p, g.pattern)
	return p
}

// Cursor is the index of the next pattern entry the player must click.
func (g *Game) Cursor() int {
	return g.cursor
}

func (g *Game) Score() int {
	return g.score
}

// HighScore is the first entry of the store when the round began.
func (g *Game) HighScore() int {
	return g.highScore
}

// Top returns a copy of the most recently loaded top scores.
func (g *Game) Top() []int {
	t := make([]int, len(g.top))
	copy(t, g.top)
	return t
}

// Replaying returns the pattern step being shown during the computer's turn.
// The second value is false outside the replay, including the lead-in.
func (g *Game) Replaying() (int, bool) {
	if g.phase != PhaseComputerTurn || !g.replay.active {
		return 0, false
	}
	return g.replay.step, true
}

// Tick advances the game by dt. At most one phase transition happens per
// tick. Clicks are only considered during the player's turn.
func (g *Game) Tick(dt time.Duration, click Click) {
	switch g.phase {
	case PhaseComputerTurn:
		g.computerTurn(dt)
	case PhasePlayerTurn:
		if click >= 0 && int(click) < g.buttons {
			g.press(int(click))
		}
	case PhaseGameOver:
	}
}

func (g *Game) computerTurn(dt time.Duration) {
	g.replay.wait -= dt
	if g.replay.wait > 0 {
		return
	}

	if !g.replay.active {
		g.pattern = append(g.pattern, g.rng.Intn(g.buttons))
		g.replay = replay{active: true, step: 0, wait: g.replay.wait}
		g.showStep()
		return
	}

	g.replay.step++
	if g.replay.step < len(g.pattern) {
		g.showStep()
		return
	}

	g.replay = replay{}
	g.cursor = 0
	g.phase = PhasePlayerTurn
	g.bus.Emit(Event{Type: EventPlayerTurn, Score: g.score})
}

// showStep flashes the current step. Any overshoot of the previous wait is
// carried so the replay keeps to the tick-independent schedule.
func (g *Game) showStep() {
	g.replay.wait += g.timing.FlashDuration + g.timing.StepPause
	g.bus.Emit(Event{Type: EventFlash, Button: g.pattern[g.replay.step]})
}

func (g *Game) press(b int) {
	if b != g.pattern[g.cursor] {
		g.gameOver()
		return
	}

	g.bus.Emit(Event{Type: EventFlash, Button: b})
	g.cursor++
	if g.cursor < len(g.pattern) {
		return
	}

	g.score++
	g.cursor = 0
	g.phase = PhaseComputerTurn
	g.replay = replay{wait: g.timing.LeadIn}
	g.bus.Emit(Event{Type: EventRoundAdvance, Score: g.score})
	g.bus.Emit(Event{Type: EventShowScore, Score: g.score, Top: g.Top()})
}

// gameOver freezes the round and records the score. A failure to save is
// logged and otherwise ignored.
func (g *Game) gameOver() {
	g.phase = PhaseGameOver

	for i := 0; i < g.buttons; i++ {
		g.bus.Emit(Event{Type: EventFlash, Button: i})
	}
	g.bus.Emit(Event{Type: EventGameOver, Score: g.score})

	logger.Logf(logTag, "game over with score %d after %d steps", g.score, len(g.pattern))

	if g.store == nil {
		return
	}
	if err := g.store.Save(g.score); err != nil {
		logger.Logf(logTag, "saving score: %v", err)
	}
	g.top = g.loadTop()
	g.bus.Emit(Event{Type: EventShowScore, Score: g.score, Top: g.Top()})
}
