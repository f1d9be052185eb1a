package ui

import (
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
)

// Listener narrates game events on a console. Draws by the player sitting
// at the console are left to that player, who sees the drawn faces.
type Listener struct {
	console   *Console
	localName string
}

func NewListener(console *Console, localName string) *Listener {
	return &Listener{console: console, localName: localName}
}

// Listen subscribes the listener to every game event.
func (l *Listener) Listen() {
	event.FirstCardPlayed.AddListener(l.OnFirstCardPlayed)
	event.CardPlayed.AddListener(l.OnCardPlayed)
	event.CardsDrawn.AddListener(l.OnCardsDrawn)
	event.ColorPicked.AddListener(l.OnColorPicked)
	event.PlayerPassed.AddListener(l.OnPlayerPassed)
	event.TurnOrderReversed.AddListener(l.OnTurnOrderReversed)
	event.TurnSkipped.AddListener(l.OnTurnSkipped)
	event.WinnerFound.AddListener(l.OnWinnerFound)
}

func (l *Listener) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	l.console.Print(msg.Message.FirstCardPlayed(payload.Card))
}

func (l *Listener) OnCardPlayed(payload event.CardPlayedPayload) {
	l.console.Print(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (l *Listener) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.PlayerName == l.localName {
		return
	}
	l.console.Print(msg.Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (l *Listener) OnColorPicked(payload event.ColorPickedPayload) {
	l.console.Print(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (l *Listener) OnPlayerPassed(payload event.PlayerPassedPayload) {
	l.console.Print(msg.Message.PlayerPassed(payload.PlayerName))
}

func (l *Listener) OnTurnOrderReversed(payload event.TurnOrderReversedPayload) {
	l.console.Print(msg.Message.TurnOrderReversed())
}

func (l *Listener) OnTurnSkipped(payload event.TurnSkippedPayload) {
	l.console.Print(msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (l *Listener) OnWinnerFound(payload event.WinnerFoundPayload) {
	l.console.Print(msg.Message.WinnerFound(payload.PlayerName, payload.Turns))
}
