package action

import "fmt"

// Action is an effect a card applies once it becomes the active card.
type Action interface {
	fmt.Stringer
}

// DrawCardsAction makes the player following the current one draw.
type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

func (a DrawCardsAction) String() string {
	return fmt.Sprintf("draw %d", a.amount)
}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

func (a ReverseTurnsAction) String() string {
	return "reverse"
}

// SkipTurnAction skips the player following the current one.
type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

func (a SkipTurnAction) String() string {
	return "skip"
}

type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}

func (a PickColorAction) String() string {
	return "pick color"
}
