package card

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type Value int

const (
	One Value = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Reverse
	DrawTwo
	Block
	DrawFour
	ColorChange
)

// Numbers lists the numeric values in ascending order.
var Numbers = []Value{One, Two, Three, Four, Five, Six, Seven, Eight, Nine}

// Specials lists the colored special values.
var Specials = []Value{Reverse, DrawTwo, Block}

func (v Value) IsNumber() bool {
	return One <= v && v <= Nine
}

func (v Value) IsWild() bool {
	return v == DrawFour || v == ColorChange
}

func (v Value) String() string {
	if v.IsNumber() {
		return fmt.Sprintf("%d", int(v)+1)
	}
	switch v {
	case Reverse:
		return "Reverse"
	case DrawTwo:
		return "DrawTwo"
	case Block:
		return "Block"
	case DrawFour:
		return "DrawFour"
	case ColorChange:
		return "ColorChange"
	default:
		return fmt.Sprintf("Value(%d)", int(v))
	}
}

// Card is a value: two cards with the same color and value are the same card.
type Card struct {
	color color.Color
	value Value
}

func New(c color.Color, v Value) Card {
	return Card{color: c, value: v}
}

// NewWild returns an unresolved wild card.
func NewWild(v Value) Card {
	return Card{color: color.None, value: v}
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Value() Value {
	return c.value
}

func (c Card) IsWild() bool {
	return c.value.IsWild()
}

// CanPlayOn reports whether c may be played on top of reference.
// Wild cards are always playable.
func (c Card) CanPlayOn(reference Card) bool {
	return c.color == reference.color ||
		c.value == reference.value ||
		c.value == DrawFour ||
		c.value == ColorChange
}

// Colored returns the card resolved to the given color. Only wild cards change.
func (c Card) Colored(resolved color.Color) Card {
	if !c.IsWild() {
		return c
	}
	return Card{color: resolved, value: c.value}
}

// Actions lists the effects of the card in the order they resolve.
func (c Card) Actions() []action.Action {
	switch c.value {
	case Reverse:
		return []action.Action{action.NewReverseTurnsAction()}
	case Block:
		return []action.Action{action.NewSkipTurnAction()}
	case DrawTwo:
		return []action.Action{action.NewDrawCardsAction(consts.DrawTwoAmount)}
	case DrawFour:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewDrawCardsAction(consts.DrawFourAmount),
		}
	case ColorChange:
		return []action.Action{action.NewPickColorAction()}
	default:
		return []action.Action{}
	}
}

func (c Card) String() string {
	var face string
	switch c.value {
	case Reverse:
		face = "<=>"
	case DrawTwo:
		face = "+2!"
	case Block:
		face = "(/)"
	case DrawFour:
		face = "+4!"
	case ColorChange:
		face = "(*)"
	default:
		face = fmt.Sprintf("[%s]", c.value)
	}
	return c.color.Paint(face) + fmt.Sprintf("(%s)", c.color.Name())
}
