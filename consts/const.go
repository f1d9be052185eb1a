package consts

import (
	"github.com/pkg/errors"
)

const (
	MinPlayers       = 2
	StartingHandSize = 5
	// MaxPlayers is how many hands can be dealt with one card left to turn.
	MaxPlayers = (DeckSize - 1) / StartingHandSize

	// Deck composition.
	NumberCardCopies  = 2
	DrawFourCardCount = 4
	ColorChangeCount  = 2
	DeckSize          = 90

	DrawTwoAmount    = 2
	DrawFourAmount   = 4
	DrawActionAmount = 1
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsDeckEmpty          = NewErr(1, true, "Deck is empty. ")
	ErrorsInputClosed        = NewErr(1, true, "Input closed. ")
	ErrorsGamePlayersInvalid = NewErr(1, true, "Game players invalid. ")
	ErrorsDecisionInvalid    = NewErr(1, true, "Player decision invalid. ")
	ErrorsGameOver           = NewErr(1, true, "Game is over. ")
	ErrorsGameNotStarted     = NewErr(1, true, "Game not started. ")
	ErrorsInputInvalid       = NewErr(2, false, "Input invalid. ")
	ErrorsCardIndexInvalid   = NewErr(2, false, "Card number invalid. ")
	ErrorsColorInvalid       = NewErr(2, false, "Color invalid. ")
)

// IsFatal reports whether err carries an Error that terminates the game.
func IsFatal(err error) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Exit
	}
	return err != nil
}
