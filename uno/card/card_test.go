package card_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestCanPlayOn(t *testing.T) {
	scenarios := []struct {
		description    string
		candidateCard  card.Card
		referenceCard  card.Card
		expectedResult bool
	}{
		{
			description:    "color_change_card_is_always_playable",
			candidateCard:  card.NewWild(card.ColorChange),
			referenceCard:  card.New(color.Pink, card.Seven),
			expectedResult: true,
		},
		{
			description:    "draw_four_card_is_always_playable",
			candidateCard:  card.NewWild(card.DrawFour),
			referenceCard:  card.New(color.Yellow, card.Block),
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_color",
			candidateCard:  card.New(color.Red, card.Five),
			referenceCard:  card.New(color.Red, card.Seven),
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_value",
			candidateCard:  card.New(color.Purple, card.Seven),
			referenceCard:  card.New(color.Red, card.Seven),
			expectedResult: true,
		},
		{
			description:    "number_cards_with_different_color_and_value",
			candidateCard:  card.New(color.Purple, card.Five),
			referenceCard:  card.New(color.Red, card.Seven),
			expectedResult: false,
		},
		{
			description:    "special_cards_with_same_value",
			candidateCard:  card.New(color.Pink, card.Reverse),
			referenceCard:  card.New(color.Yellow, card.Reverse),
			expectedResult: true,
		},
		{
			description:    "special_cards_with_different_value_and_color",
			candidateCard:  card.New(color.Pink, card.Block),
			referenceCard:  card.New(color.Yellow, card.DrawTwo),
			expectedResult: false,
		},
		{
			description:    "special_card_on_number_card_with_same_color",
			candidateCard:  card.New(color.Yellow, card.DrawTwo),
			referenceCard:  card.New(color.Yellow, card.Two),
			expectedResult: true,
		},
		{
			description:    "resolved_wild_then_card_with_same_color",
			candidateCard:  card.New(color.Purple, card.Three),
			referenceCard:  card.NewWild(card.ColorChange).Colored(color.Purple),
			expectedResult: true,
		},
		{
			description:    "resolved_wild_then_card_with_different_color",
			candidateCard:  card.New(color.Red, card.Three),
			referenceCard:  card.NewWild(card.DrawFour).Colored(color.Purple),
			expectedResult: false,
		},
		{
			description:    "resolved_wild_then_unresolved_wild_of_same_value",
			candidateCard:  card.NewWild(card.DrawFour),
			referenceCard:  card.NewWild(card.DrawFour).Colored(color.Pink),
			expectedResult: true,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expectedResult, scenario.candidateCard.CanPlayOn(scenario.referenceCard))
		})
	}
}

func TestCanPlayOnMatchesDefinition(t *testing.T) {
	values := append(append([]card.Value{}, card.Numbers...), card.Specials...)
	values = append(values, card.DrawFour, card.ColorChange)
	colors := append(append([]color.Color{}, color.Concrete...), color.None)

	for _, candidateColor := range colors {
		for _, candidateValue := range values {
			for _, referenceColor := range color.Concrete {
				for _, referenceValue := range values {
					candidate := card.New(candidateColor, candidateValue)
					reference := card.New(referenceColor, referenceValue)
					expected := candidateColor == referenceColor ||
						candidateValue == referenceValue ||
						candidateValue.IsWild()
					require.Equal(t, expected, candidate.CanPlayOn(reference), "%s on %s", candidate, reference)
				}
			}
		}
	}
}

func TestColored(t *testing.T) {
	t.Run("resolves_wild_card_color", func(t *testing.T) {
		resolved := card.NewWild(card.DrawFour).Colored(color.Yellow)
		require.Equal(t, color.Yellow, resolved.Color())
		require.Equal(t, card.DrawFour, resolved.Value())
	})

	t.Run("leaves_colored_card_untouched", func(t *testing.T) {
		original := card.New(color.Red, card.Nine)
		require.Equal(t, original, original.Colored(color.Pink))
	})

	t.Run("does_not_mutate_the_original", func(t *testing.T) {
		original := card.NewWild(card.ColorChange)
		_ = original.Colored(color.Pink)
		require.Equal(t, color.None, original.Color())
	})
}

func TestActions(t *testing.T) {
	require.Empty(t, card.New(color.Red, card.Four).Actions())
	require.Equal(t, []action.Action{action.NewReverseTurnsAction()}, card.New(color.Red, card.Reverse).Actions())
	require.Equal(t, []action.Action{action.NewSkipTurnAction()}, card.New(color.Red, card.Block).Actions())
	require.Equal(t, []action.Action{action.NewDrawCardsAction(2)}, card.New(color.Red, card.DrawTwo).Actions())
	require.Equal(t, []action.Action{action.NewPickColorAction()}, card.NewWild(card.ColorChange).Actions())
	require.Equal(t, []action.Action{
		action.NewPickColorAction(),
		action.NewDrawCardsAction(4),
	}, card.NewWild(card.DrawFour).Actions())
}

func TestValueString(t *testing.T) {
	require.Equal(t, "1", card.One.String())
	require.Equal(t, "9", card.Nine.String())
	require.Equal(t, "ColorChange", card.ColorChange.String())
}
