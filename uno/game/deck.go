package game

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Deck is a draw stack. The last card in the slice is the top of the deck.
// It is never refilled.
type Deck struct {
	cards []card.Card
	rng   *rand.Rand
}

// NewRand returns a random source for shuffling. A zero seed picks a
// time-based one.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewDeck builds the full deck and shuffles it once.
func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{rng: rng}
	deck.Initialize()
	deck.Shuffle()
	return deck
}

// NewStackedDeck returns a deck holding exactly the given cards, the last
// one on top.
func NewStackedDeck(cards []card.Card) *Deck {
	stacked := make([]card.Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked}
}

func (d *Deck) Initialize() {
	cards := make([]card.Card, 0, consts.DeckSize)
	for _, cardColor := range color.Concrete {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createWildCards()...)
	d.cards = cards
}

func (d *Deck) Shuffle() {
	if d.rng == nil {
		d.rng = NewRand(0)
	}
	d.rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

func (d *Deck) Draw() (card.Card, error) {
	top, err := d.Top()
	if err != nil {
		return card.Card{}, err
	}
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

func (d *Deck) Top() (card.Card, error) {
	if d.Empty() {
		return card.Card{}, errors.WithStack(consts.ErrorsDeckEmpty)
	}
	return d.cards[len(d.cards)-1], nil
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := make([]card.Card, 0, len(card.Numbers)*consts.NumberCardCopies+len(card.Specials))
	for _, number := range card.Numbers {
		numberCard := card.New(cardColor, number)
		for i := 0; i < consts.NumberCardCopies; i++ {
			cards = append(cards, numberCard)
		}
	}
	for _, special := range card.Specials {
		cards = append(cards, card.New(cardColor, special))
	}
	return cards
}

func createWildCards() []card.Card {
	cards := make([]card.Card, 0, consts.DrawFourCardCount+consts.ColorChangeCount)
	for i := 0; i < consts.DrawFourCardCount; i++ {
		cards = append(cards, card.NewWild(card.DrawFour))
	}
	for i := 0; i < consts.ColorChangeCount; i++ {
		cards = append(cards, card.NewWild(card.ColorChange))
	}
	return cards
}
