package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestCards(t *testing.T) {
	pile := game.NewPile()
	pile.Add(card.New(color.Purple, card.Five))
	pile.Add(card.New(color.Pink, card.Five))
	pile.Add(card.New(color.Pink, card.Seven))
	require.Equal(t, []card.Card{
		card.New(color.Purple, card.Five),
		card.New(color.Pink, card.Five),
		card.New(color.Pink, card.Seven),
	}, pile.Cards())
}

func TestReplaceTop(t *testing.T) {
	pile := game.NewPile()
	pile.Add(card.New(color.Purple, card.Five))
	pile.Add(card.NewWild(card.ColorChange))
	pile.ReplaceTop(card.NewWild(card.ColorChange).Colored(color.Yellow))
	require.Equal(t, []card.Card{
		card.New(color.Purple, card.Five),
		card.New(color.Yellow, card.ColorChange),
	}, pile.Cards())
}

func TestTop(t *testing.T) {
	pile := game.NewPile()
	_, ok := pile.Top()
	require.False(t, ok)
	pile.Add(card.New(color.Purple, card.Five))
	pile.Add(card.New(color.Pink, card.Seven))
	top, ok := pile.Top()
	require.True(t, ok)
	require.Equal(t, card.New(color.Pink, card.Seven), top)
}
