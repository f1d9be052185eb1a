package player_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/stretchr/testify/require"
)

func TestAutomatedDecideTurn(t *testing.T) {
	scenarios := []struct {
		description string
		hand        []card.Card
		activeCard  card.Card
		expected    game.Decision
	}{
		{
			description: "plays_first_matching_color",
			hand: []card.Card{
				card.New(color.Pink, card.Two),
				card.New(color.Red, card.Five),
				card.New(color.Red, card.Six),
			},
			activeCard: card.New(color.Red, card.Nine),
			expected:   game.Play(1),
		},
		{
			description: "plays_first_matching_value",
			hand: []card.Card{
				card.New(color.Pink, card.Two),
				card.New(color.Yellow, card.Nine),
			},
			activeCard: card.New(color.Red, card.Nine),
			expected:   game.Play(1),
		},
		{
			description: "plays_wild_when_it_comes_first",
			hand: []card.Card{
				card.NewWild(card.ColorChange),
				card.New(color.Red, card.Five),
			},
			activeCard: card.New(color.Red, card.Nine),
			expected:   game.Play(0),
		},
		{
			description: "draws_without_playable_card",
			hand: []card.Card{
				card.New(color.Pink, card.Two),
				card.New(color.Yellow, card.Block),
			},
			activeCard: card.New(color.Red, card.Nine),
			expected:   game.Draw(),
		},
		{
			description: "draws_with_empty_hand",
			hand:        []card.Card{},
			activeCard:  card.New(color.Red, card.Nine),
			expected:    game.Draw(),
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			bot := player.NewAutomatedPlayer("AI-1")
			decision, err := bot.DecideTurn(game.State{
				ActiveCard:        scenario.activeCard,
				CurrentPlayerHand: scenario.hand,
			})
			require.NoError(t, err)
			require.Equal(t, scenario.expected, decision)
		})
	}
}

func TestAutomatedDecideTurnOnlyPicksPlayableCards(t *testing.T) {
	bot := player.NewAutomatedPlayer("AI-1")
	deck := game.NewDeck(game.NewRand(99))
	cards := deck.Cards()
	for start := 0; start+6 <= len(cards); start += 6 {
		hand := cards[start : start+5]
		activeCard := cards[start+5].Colored(color.Purple)
		decision, err := bot.DecideTurn(game.State{ActiveCard: activeCard, CurrentPlayerHand: hand})
		require.NoError(t, err)
		if decision.IsDraw() {
			for _, handCard := range hand {
				require.False(t, handCard.CanPlayOn(activeCard))
			}
			continue
		}
		require.True(t, hand[decision.Index()].CanPlayOn(activeCard))
	}
}

func TestAutomatedChooseColor(t *testing.T) {
	scenarios := []struct {
		description string
		hand        []card.Card
		expected    color.Color
	}{
		{
			description: "most_frequent_color",
			hand: []card.Card{
				card.New(color.Pink, card.Two),
				card.New(color.Yellow, card.Two),
				card.New(color.Yellow, card.Block),
			},
			expected: color.Yellow,
		},
		{
			description: "ignores_wild_cards",
			hand: []card.Card{
				card.NewWild(card.DrawFour),
				card.NewWild(card.DrawFour),
				card.New(color.Purple, card.Four),
			},
			expected: color.Purple,
		},
		{
			description: "tie_prefers_earlier_color",
			hand: []card.Card{
				card.New(color.Yellow, card.Two),
				card.New(color.Pink, card.Two),
			},
			expected: color.Pink,
		},
		{
			description: "empty_hand_picks_red",
			hand:        nil,
			expected:    color.Red,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			bot := player.NewAutomatedPlayer("AI-1")
			chosen, err := bot.ChooseColor(game.State{CurrentPlayerHand: scenario.hand})
			require.NoError(t, err)
			require.Equal(t, scenario.expected, chosen)
		})
	}
}
