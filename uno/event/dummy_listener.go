package event

// DummyListener records every payload it receives, in order.
type DummyListener struct {
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

// Listen subscribes the listener to every emitter.
func (l *DummyListener) Listen() *DummyListener {
	FirstCardPlayed.AddListener(Record[FirstCardPlayedPayload](l))
	CardPlayed.AddListener(Record[CardPlayedPayload](l))
	CardsDrawn.AddListener(Record[CardsDrawnPayload](l))
	ColorPicked.AddListener(Record[ColorPickedPayload](l))
	PlayerPassed.AddListener(Record[PlayerPassedPayload](l))
	TurnOrderReversed.AddListener(Record[TurnOrderReversedPayload](l))
	TurnSkipped.AddListener(Record[TurnSkippedPayload](l))
	WinnerFound.AddListener(Record[WinnerFoundPayload](l))
	return l
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	return l.receivedPayloads
}

// Record returns a handler that appends payloads of type P to l.
func Record[P any](l *DummyListener) func(P) {
	return func(payload P) {
		l.receivedPayloads = append(l.receivedPayloads, payload)
	}
}
