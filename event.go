package boundtree

const (
	PAIR_ENTER EventType = iota
	PAIR_STAY
	PAIR_EXIT
)

type EventType uint8

// Event interface - all events implement this
type Event[V comparable] interface {
	Type() EventType
}

// PairEnterEvent fires the first frame a candidate pair overlaps
type PairEnterEvent[V comparable] struct {
	A V
	B V
}

func (e PairEnterEvent[V]) Type() EventType { return PAIR_ENTER }

// PairStayEvent fires on every subsequent frame the pair still overlaps
type PairStayEvent[V comparable] struct {
	A V
	B V
}

func (e PairStayEvent[V]) Type() EventType { return PAIR_STAY }

// PairExitEvent fires the frame a previously overlapping pair separates
type PairExitEvent[V comparable] struct {
	A V
	B V
}

func (e PairExitEvent[V]) Type() EventType { return PAIR_EXIT }

// EventListener - callback for events
type EventListener[V comparable] func(event Event[V])

// Events tracks the active candidate pairs of a broad-phase scan from one
// frame to the next and turns the difference into Enter/Stay/Exit events.
type Events[V comparable] struct {
	// Listeners by event type
	listeners map[EventType][]EventListener[V]

	// Event buffer to send at flush
	buffer []Event[V]

	// Pair tracking for Enter/Stay/Exit detection
	previousActivePairs map[Pair[V]]bool
	currentActivePairs  map[Pair[V]]bool

	// Orders the two values of a pair so that (A,B) and (B,A) key alike
	// even when scan order changes between frames
	less func(a, b V) bool
}

// NewEvents creates an event tracker. less supplies a stable total order on
// domain values, used only to normalize pair keys.
func NewEvents[V comparable](less func(a, b V) bool) Events[V] {
	return Events[V]{
		listeners:           make(map[EventType][]EventListener[V]),
		buffer:              make([]Event[V], 0, 256),
		previousActivePairs: make(map[Pair[V]]bool),
		currentActivePairs:  make(map[Pair[V]]bool),
		less:                less,
	}
}

// makePairKey creates a normalized pair key with consistent ordering
func (e *Events[V]) makePairKey(a, b V) Pair[V] {
	if e.less(b, a) {
		a, b = b, a
	}
	return Pair[V]{A: a, B: b}
}

// Subscribe adds a listener for an event type
func (e *Events[V]) Subscribe(eventType EventType, listener EventListener[V]) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// Record marks pairs as active for the current frame
func (e *Events[V]) Record(pairs []Pair[V]) {
	for _, pair := range pairs {
		e.currentActivePairs[e.makePairKey(pair.A, pair.B)] = true
	}
}

// RecordChan drains a channel of pairs, marking each active, and returns
// them so the caller can still hand them to narrow-phase testing.
func (e *Events[V]) RecordChan(pairsChan <-chan Pair[V]) []Pair[V] {
	pairs := make([]Pair[V], 0, len(e.previousActivePairs))
	for pair := range pairsChan {
		e.currentActivePairs[e.makePairKey(pair.A, pair.B)] = true
		pairs = append(pairs, pair)
	}
	return pairs
}

// processPairEvents compares current and previous pairs to detect Enter/Stay/Exit
func (e *Events[V]) processPairEvents() {
	// Detect Enter and Stay events
	for pair := range e.currentActivePairs {
		if e.previousActivePairs[pair] {
			// Pair was active before and still is, Stay
			e.buffer = append(e.buffer, PairStayEvent[V]{A: pair.A, B: pair.B})
		} else {
			// New pair, Enter
			e.buffer = append(e.buffer, PairEnterEvent[V]{A: pair.A, B: pair.B})
		}
	}

	// Detect Exit events
	for pair := range e.previousActivePairs {
		if !e.currentActivePairs[pair] {
			// Pair was active but is no longer, Exit
			e.buffer = append(e.buffer, PairExitEvent[V]{A: pair.A, B: pair.B})
		}
	}

	// Swap for next frame and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

// Forget drops all tracking state for v, so a removed value never emits a
// trailing Exit event.
func (e *Events[V]) Forget(v V) {
	for pair := range e.previousActivePairs {
		if pair.A == v || pair.B == v {
			delete(e.previousActivePairs, pair)
		}
	}
	for pair := range e.currentActivePairs {
		if pair.A == v || pair.B == v {
			delete(e.currentActivePairs, pair)
		}
	}
}

// Flush diffs the recorded frame against the previous one and sends all
// resulting events to their listeners, then clears the buffer.
func (e *Events[V]) Flush() {
	e.processPairEvents()

	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
