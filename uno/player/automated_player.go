package player

import (
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// automatedPlayer plays the first card in its hand that fits and drafts
// the color it holds most of.
type automatedPlayer struct {
	basicPlayer
}

func NewAutomatedPlayer(name string) game.Player {
	return automatedPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p automatedPlayer) DecideTurn(gameState game.State) (game.Decision, error) {
	for index, handCard := range gameState.CurrentPlayerHand {
		if handCard.CanPlayOn(gameState.ActiveCard) {
			return game.Play(index), nil
		}
	}
	return game.Draw(), nil
}

// ChooseColor returns the most frequent concrete color in hand. Ties go to
// the color listed first in color.Concrete.
func (p automatedPlayer) ChooseColor(gameState game.State) (color.Color, error) {
	colorCounts := game.CountColors(gameState.CurrentPlayerHand)

	mostFrequentColor := color.Concrete[0]
	mostFrequentColorAmount := colorCounts[mostFrequentColor]
	for _, availableColor := range color.Concrete[1:] {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}

	return mostFrequentColor, nil
}
