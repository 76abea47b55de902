package simon

import "time"

// Session is the core as seen by the presentation driver. It owns the current
// Game and replaces it with a fresh one on restart.
type Session struct {
	buttons int
	timing  Timing
	rng     Source
	store   ScoreStore
	bus     *EventBus

	game *Game
}

func NewSession(buttons int, timing Timing, rng Source, store ScoreStore, bus *EventBus) *Session {
	return &Session{
		buttons: buttons,
		timing:  timing,
		rng:     rng,
		store:   store,
		bus:     bus,
	}
}

// NewRound discards any current game and starts a new one, re-reading the
// score store.
func (s *Session) NewRound() {
	s.game = New(s.buttons, s.timing, s.rng, s.store, s.bus)
	s.bus.Emit(Event{Type: EventShowScore, Score: 0, Top: s.game.Top()})
}

// Tick advances the current game, starting one first if necessary.
func (s *Session) Tick(dt time.Duration, click Click) {
	if s.game == nil {
		s.NewRound()
	}
	s.game.Tick(dt, click)
}

// Restart begins a new round. It only has an effect once the current game is
// over and reports whether a new round was started.
func (s *Session) Restart() bool {
	if s.game == nil || s.game.Phase() != PhaseGameOver {
		return false
	}
	s.NewRound()
	return true
}

// Game returns the current game, or nil before the first round.
func (s *Session) Game() *Game {
	return s.game
}
