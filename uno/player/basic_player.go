package player

import (
	"github.com/ratel-online/uno/uno/card"
)

type basicPlayer struct {
	name string
}

func (p basicPlayer) Name() string {
	return p.name
}

func (p basicPlayer) NotifyCardsDrawn(cards []card.Card) {
}
