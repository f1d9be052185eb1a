package msg

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return Sprintfln("You drew %s!", cards)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s has nothing to play and draws!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s changed color to %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed() string {
	return Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s%s",
		color.Red.Paint("U"),
		color.Pink.Paint("N"),
		color.Purple.Paint("O"),
		color.Yellow.Paint("!"),
	)
}

func (m MessageWriter) WinnerFound(playerName string, turns int) string {
	return Sprintfln("%s wins after %d turns!", playerName, turns)
}

func (m MessageWriter) InvalidInput() string {
	return Sprintln("Invalid input. Try again.")
}

func (m MessageWriter) InvalidCardNumber(minimum int, maximum int) string {
	return Sprintfln("Invalid card number (minimum: %d, maximum: %d). Try again.", minimum, maximum)
}

func (m MessageWriter) CardNotPlayable(candidate card.Card, activeCard card.Card) string {
	return Sprintfln("Cannot play %s on %s. Try again.", candidate, activeCard)
}

func (m MessageWriter) InvalidColor(input string) string {
	return Sprintfln("Unknown color '%s'. Try again.", input)
}
