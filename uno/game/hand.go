package game

import (
	"github.com/pkg/errors"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"golang.org/x/exp/slices"
)

// Hand keeps cards in the order they were received.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.StartingHandSize)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	return slices.Clone(h.cards)
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) PlayableIndexes(activeCard card.Card) []int {
	var indexes []int
	for index, candidateCard := range h.cards {
		if candidateCard.CanPlayOn(activeCard) {
			indexes = append(indexes, index)
		}
	}
	return indexes
}

// RemoveAt takes the card at index out of the hand, keeping the order of the rest.
func (h *Hand) RemoveAt(index int) (card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, errors.Wrapf(consts.ErrorsCardIndexInvalid, "index %d, hand size %d", index, len(h.cards))
	}
	removed := h.cards[index]
	h.cards = slices.Delete(h.cards, index, index+1)
	return removed, nil
}

func (h *Hand) Size() int {
	return len(h.cards)
}

// CountColors counts the concrete colors among cards. Wild cards are ignored.
func CountColors(cards []card.Card) map[color.Color]int {
	counts := make(map[color.Color]int, len(color.Concrete))
	for _, c := range cards {
		if c.Color().IsConcrete() {
			counts[c.Color()]++
		}
	}
	return counts
}
