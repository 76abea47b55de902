package simon

type EventType int

const (
	// EventFlash asks the driver to flash Button and play its tone.
	EventFlash EventType = iota

	// EventPlayerTurn is sent when the replay has finished and the game is
	// waiting for input.
	EventPlayerTurn

	// EventRoundAdvance is sent when the player has repeated the whole
	// pattern. Score holds the new score.
	EventRoundAdvance

	// EventShowScore carries the current Score and the Top scores from the
	// store.
	EventShowScore

	// EventGameOver is sent once, on the first wrong click. Score is final.
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventFlash:
		return "flash"
	case EventPlayerTurn:
		return "player turn"
	case EventRoundAdvance:
		return "round advance"
	case EventShowScore:
		return "show score"
	case EventGameOver:
		return "game over"
	}
	return "unknown"
}

type Event struct {
	Type   EventType
	Button int
	Score  int
	Top    []int
}

type EventHandler func(Event)

// EventBus delivers events synchronously, in subscription order.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
