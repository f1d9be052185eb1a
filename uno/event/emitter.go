package event

// Emitter fans a payload out to its handlers in subscription order.
type Emitter[P any] struct {
	handlers []func(P)
}

func (e *Emitter[P]) AddListener(handler func(P)) {
	e.handlers = append(e.handlers, handler)
}

func (e *Emitter[P]) Emit(payload P) {
	for _, handler := range e.handlers {
		handler(payload)
	}
}

var (
	FirstCardPlayed   = &Emitter[FirstCardPlayedPayload]{}
	CardPlayed        = &Emitter[CardPlayedPayload]{}
	CardsDrawn        = &Emitter[CardsDrawnPayload]{}
	ColorPicked       = &Emitter[ColorPickedPayload]{}
	PlayerPassed      = &Emitter[PlayerPassedPayload]{}
	TurnOrderReversed = &Emitter[TurnOrderReversedPayload]{}
	TurnSkipped       = &Emitter[TurnSkippedPayload]{}
	WinnerFound       = &Emitter[WinnerFoundPayload]{}
)
