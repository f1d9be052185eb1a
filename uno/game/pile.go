package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
)

// Pile records every card that became the active card, oldest first.
// Cards on the pile never return to the deck.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, consts.DeckSize)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

// ReplaceTop swaps the active card, used once a wild card gets its color.
func (p *Pile) ReplaceTop(card card.Card) {
	p.cards[len(p.cards)-1] = card
}

func (p *Pile) Top() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}
