package event

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// FirstCardPlayedPayload carries the card turned from the deck at setup.
type FirstCardPlayedPayload struct {
	Card card.Card
}

type CardPlayedPayload struct {
	PlayerName string
	Card       card.Card
}

// CardsDrawnPayload is emitted once per draw action, holding every card
// that actually left the deck.
type CardsDrawnPayload struct {
	PlayerName string
	Cards      []card.Card
}

type ColorPickedPayload struct {
	PlayerName string
	Color      color.Color
}

type PlayerPassedPayload struct {
	PlayerName string
}

// TurnOrderReversedPayload holds the direction after the reversal.
type TurnOrderReversedPayload struct {
	Direction int
}

type TurnSkippedPayload struct {
	PlayerName string
}

type WinnerFoundPayload struct {
	PlayerName string
	Turns      int
}
