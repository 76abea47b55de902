package simon

import (
	"testing"

	"simon/internal/test"
)

func TestEventBus(t *testing.T) {
	bus := NewEventBus()

	var order []string
	bus.Subscribe(EventFlash, func(e Event) {
		order = append(order, "a")
		test.ExpectEquality(t, e.Button, 2)
	})
	bus.Subscribe(EventFlash, func(e Event) {
		order = append(order, "b")
	})
	bus.Subscribe(EventGameOver, func(e Event) {
		order = append(order, "over")
	})

	bus.Emit(Event{Type: EventFlash, Button: 2})
	test.ExpectSliceEquality(t, order, []string{"a", "b"})

	// no subscribers
	bus.Emit(Event{Type: EventPlayerTurn})
	test.ExpectSliceEquality(t, order, []string{"a", "b"})

	bus.Emit(Event{Type: EventGameOver})
	test.ExpectSliceEquality(t, order, []string{"a", "b", "over"})
}

func TestNilEventBus(t *testing.T) {
	var bus *EventBus
	bus.Emit(Event{Type: EventFlash})
}

func TestEventTypeString(t *testing.T) {
	test.ExpectEquality(t, EventFlash.String(), "flash")
	test.ExpectEquality(t, EventGameOver.String(), "game over")
	test.ExpectEquality(t, EventType(-1).String(), "unknown")
}
