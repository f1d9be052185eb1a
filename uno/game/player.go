package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Player decides what to do on its turn. Implementations only read the
// State they are given; the game owns the hand.
type Player interface {
	Name() string
	// DecideTurn returns Draw or a Play whose card can be played on
	// gameState.ActiveCard.
	DecideTurn(gameState State) (Decision, error)
	// ChooseColor picks the color of a wild card just played. It must be
	// one of color.Concrete.
	ChooseColor(gameState State) (color.Color, error)
	NotifyCardsDrawn(drawnCards []card.Card)
}

type Decision struct {
	draw  bool
	index int
}

func Draw() Decision {
	return Decision{draw: true, index: -1}
}

func Play(index int) Decision {
	return Decision{index: index}
}

func (d Decision) IsDraw() bool {
	return d.draw
}

// Index is the hand position of the card to play, -1 for a draw.
func (d Decision) Index() int {
	return d.index
}
