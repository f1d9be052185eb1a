package game

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/event"
)

type Game struct {
	id      string
	players *PlayerIterator
	deck    *Deck
	pile    *Pile
	started bool
	turns   int
	winner  *playerController
}

func New(players []Player, deck *Deck) (*Game, error) {
	if len(players) < consts.MinPlayers {
		return nil, errors.Wrapf(consts.ErrorsGamePlayersInvalid, "need at least %d players, got %d", consts.MinPlayers, len(players))
	}
	if len(players) > consts.MaxPlayers {
		return nil, errors.Wrapf(consts.ErrorsGamePlayersInvalid, "at most %d players fit the deck, got %d", consts.MaxPlayers, len(players))
	}
	names := make(map[string]bool, len(players))
	for _, player := range players {
		if names[player.Name()] {
			return nil, errors.Wrapf(consts.ErrorsGamePlayersInvalid, "duplicate player name %q", player.Name())
		}
		names[player.Name()] = true
	}
	return &Game{
		id:      uuid.NewString(),
		players: newPlayerIterator(players),
		deck:    deck,
		pile:    NewPile(),
	}, nil
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Players() *PlayerIterator {
	return g.players
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) Pile() *Pile {
	return g.pile
}

func (g *Game) Current() *playerController {
	return g.players.Current()
}

func (g *Game) Direction() int {
	return g.players.Direction()
}

func (g *Game) Turns() int {
	return g.turns
}

func (g *Game) ActiveCard() card.Card {
	activeCard, _ := g.pile.Top()
	return activeCard
}

func (g *Game) Finished() bool {
	return g.winner != nil
}

func (g *Game) Winner() (string, bool) {
	if g.winner == nil {
		return "", false
	}
	return g.winner.Name(), true
}

func (g *Game) GetPlayerCards(name string) []card.Card {
	player := g.players.GetPlayerController(name)
	if player == nil {
		return nil
	}
	return player.Hand()
}

// Setup deals the starting hands and turns the first active card.
func (g *Game) Setup() error {
	if err := g.DealStartingCards(); err != nil {
		return err
	}
	return g.PlayFirstCard()
}

func (g *Game) DealStartingCards() error {
	for _, player := range g.players.players {
		if err := player.DrawCards(g.deck, consts.StartingHandSize); err != nil {
			return errors.Wrap(err, "dealing starting cards")
		}
	}
	return nil
}

// PlayFirstCard turns the top of the deck into the active card. A wild card
// gets its color from the first player; none of its other effects apply.
func (g *Game) PlayFirstCard() error {
	firstCard, err := g.deck.Draw()
	if err != nil {
		return errors.Wrap(err, "turning first card")
	}
	g.pile.Add(firstCard)
	event.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card: firstCard,
	})
	if firstCard.IsWild() {
		if err := g.pickColor(g.players.Current(), firstCard); err != nil {
			return err
		}
	}
	g.started = true
	return nil
}

// PlayTurn runs one turn of the current player.
func (g *Game) PlayTurn() error {
	if g.winner != nil {
		return errors.WithStack(consts.ErrorsGameOver)
	}
	if !g.started {
		return errors.WithStack(consts.ErrorsGameNotStarted)
	}

	player := g.players.Current()
	decision, err := player.Decide(g.ExtractState(player))
	if err != nil {
		return err
	}
	g.turns++

	if decision.IsDraw() {
		event.PlayerPassed.Emit(event.PlayerPassedPayload{
			PlayerName: player.Name(),
		})
		if err := player.DrawCards(g.deck, consts.DrawActionAmount); err != nil {
			return err
		}
		g.players.Next()
		return nil
	}

	playedCard, err := player.hand.RemoveAt(decision.Index())
	if err != nil {
		return err
	}
	g.pile.Add(playedCard)
	event.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Card:       playedCard,
	})

	// Wild card effects resolve before the win check, the others after it.
	if playedCard.IsWild() {
		if err := g.PerformCardActions(playedCard); err != nil {
			return err
		}
	}
	if player.NoCards() {
		g.winner = player
		event.WinnerFound.Emit(event.WinnerFoundPayload{
			PlayerName: player.Name(),
			Turns:      g.turns,
		})
		return nil
	}
	if !playedCard.IsWild() {
		if err := g.PerformCardActions(playedCard); err != nil {
			return err
		}
	}

	g.players.Next()
	return nil
}

// Run plays turns until somebody wins or a fatal error occurs.
func (g *Game) Run() (string, error) {
	for g.winner == nil {
		if err := g.PlayTurn(); err != nil {
			return "", err
		}
	}
	return g.winner.Name(), nil
}

// PerformCardActions applies the effects of a card the current player just played.
func (g *Game) PerformCardActions(playedCard card.Card) error {
	player := g.players.Current()
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			target := g.players.Following()
			if err := target.DrawCards(g.deck, cardAction.Amount()); err != nil {
				return err
			}
		case action.ReverseTurnsAction:
			g.players.Reverse()
			event.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{
				Direction: g.players.Direction(),
			})
		case action.SkipTurnAction:
			skipped := g.players.Skip()
			event.TurnSkipped.Emit(event.TurnSkippedPayload{
				PlayerName: skipped.Name(),
			})
		case action.PickColorAction:
			if err := g.pickColor(player, playedCard); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Game) pickColor(player *playerController, wildCard card.Card) error {
	chosen, err := player.PickColor(g.ExtractState(player))
	if err != nil {
		return err
	}
	g.pile.ReplaceTop(wildCard.Colored(chosen))
	event.ColorPicked.Emit(event.ColorPickedPayload{
		PlayerName: player.Name(),
		Color:      chosen,
	})
	return nil
}

func (g *Game) ExtractState(player *playerController) State {
	playerSequence := make([]string, 0, g.players.Len())
	playerHandCounts := make(map[string]int, g.players.Len())

	g.players.ForEach(func(player *playerController) {
		playerSequence = append(playerSequence, player.Name())
		playerHandCounts[player.Name()] = player.hand.Size()
	})

	return State{
		GameID:            g.id,
		ActiveCard:        g.ActiveCard(),
		PlayedCards:       g.pile.Cards(),
		CurrentPlayerHand: player.Hand(),
		PlayerSequence:    playerSequence,
		PlayerHandCounts:  playerHandCounts,
		Direction:         g.players.Direction(),
		DeckSize:          g.deck.Size(),
	}
}
