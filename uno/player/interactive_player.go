package player

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/ui"
)

// interactivePlayer asks a person at the console for every decision.
type interactivePlayer struct {
	basicPlayer
	console *ui.Console
}

func NewInteractivePlayer(name string, console *ui.Console) game.Player {
	return interactivePlayer{
		basicPlayer: basicPlayer{name: name},
		console:     console,
	}
}

func (p interactivePlayer) DecideTurn(gameState game.State) (game.Decision, error) {
	p.console.Print(msg.Message.HumanPlayerTurnStarted(p.name))
	p.console.Println(gameState)
	hand := gameState.CurrentPlayerHand
	for {
		p.console.Printlns(handLines(p.name, hand))
		choice, err := p.console.PromptIntegerInRange(0, len(hand), "Enter card number to play or 0 to draw:")
		if err != nil {
			return game.Decision{}, err
		}
		if choice == 0 {
			return game.Draw(), nil
		}
		if !hand[choice-1].CanPlayOn(gameState.ActiveCard) {
			p.console.Print(msg.Message.CardNotPlayable(hand[choice-1], gameState.ActiveCard))
			continue
		}
		return game.Play(choice - 1), nil
	}
}

func (p interactivePlayer) ChooseColor(gameState game.State) (color.Color, error) {
	return p.console.PromptColor()
}

func (p interactivePlayer) NotifyCardsDrawn(cards []card.Card) {
	p.console.Print(msg.Message.HumanPlayerDrewCards(cards))
}

func handLines(name string, hand []card.Card) []string {
	lines := make([]string, 0, len(hand)+1)
	lines = append(lines, fmt.Sprintf("%s's hand:", name))
	for index, handCard := range hand {
		lines = append(lines, fmt.Sprintf("%d. %s", index+1, handCard))
	}
	return lines
}
