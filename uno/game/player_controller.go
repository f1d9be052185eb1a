package game

import (
	"github.com/pkg/errors"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"golang.org/x/exp/slices"
)

type playerController struct {
	player Player
	hand   *Hand
}

func newPlayerController(player Player) *playerController {
	return &playerController{
		player: player,
		hand:   NewHand(),
	}
}

func (c *playerController) AddCards(cards []card.Card) {
	c.hand.AddCards(cards)
	c.player.NotifyCardsDrawn(cards)
}

// DrawCards moves count cards from the deck into the hand. Cards drawn
// before the deck runs out stay in the hand.
func (c *playerController) DrawCards(deck *Deck, count int) error {
	drawn := make([]card.Card, 0, count)
	var err error
	for i := 0; i < count; i++ {
		var drawnCard card.Card
		drawnCard, err = deck.Draw()
		if err != nil {
			err = errors.Wrapf(err, "%s drawing card %d of %d", c.Name(), i+1, count)
			break
		}
		drawn = append(drawn, drawnCard)
	}
	if len(drawn) > 0 {
		c.AddCards(drawn)
		event.CardsDrawn.Emit(event.CardsDrawnPayload{
			PlayerName: c.Name(),
			Cards:      drawn,
		})
	}
	return err
}

func (c *playerController) Hand() []card.Card {
	return c.hand.Cards()
}

func (c *playerController) Name() string {
	return c.player.Name()
}

func (c *playerController) NoCards() bool {
	return c.hand.Empty()
}

func (c *playerController) Decide(gameState State) (Decision, error) {
	decision, err := c.player.DecideTurn(gameState)
	if err != nil {
		return Decision{}, errors.Wrapf(err, "%s deciding turn", c.Name())
	}
	if decision.IsDraw() {
		return decision, nil
	}
	index := decision.Index()
	if index < 0 || index >= c.hand.Size() {
		return Decision{}, errors.Wrapf(consts.ErrorsDecisionInvalid, "%s chose card %d of %d", c.Name(), index, c.hand.Size())
	}
	if !slices.Contains(c.hand.PlayableIndexes(gameState.ActiveCard), index) {
		return Decision{}, errors.Wrapf(consts.ErrorsDecisionInvalid, "%s cannot play %s on %s", c.Name(), c.hand.cards[index], gameState.ActiveCard)
	}
	return decision, nil
}

func (c *playerController) PickColor(gameState State) (color.Color, error) {
	chosen, err := c.player.ChooseColor(gameState)
	if err != nil {
		return color.None, errors.Wrapf(err, "%s choosing color", c.Name())
	}
	if !chosen.IsConcrete() {
		return color.None, errors.Wrapf(consts.ErrorsDecisionInvalid, "%s chose color %s", c.Name(), chosen.Name())
	}
	return chosen, nil
}
