package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Color int

const (
	Red Color = iota
	Pink
	Purple
	Yellow
	None
)

// Concrete lists the colors a card can hold once played, in preference order.
var Concrete = []Color{Red, Pink, Purple, Yellow}

var names = map[Color]string{
	Red:    "Red",
	Pink:   "Pink",
	Purple: "Purple",
	Yellow: "Yellow",
	None:   "None",
}

var painters = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Pink:   color.New(color.FgHiMagenta).SprintfFunc(),
	Purple: color.New(color.FgMagenta).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	None:   color.New(color.FgHiWhite).SprintfFunc(),
}

var Stdout io.Writer = color.Output

func (c Color) Name() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

func (c Color) IsConcrete() bool {
	return Red <= c && c <= Yellow
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	paint, ok := painters[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return paint(format, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

// ByName resolves a concrete color from its case-insensitive name.
func ByName(name string) (Color, error) {
	for _, c := range Concrete {
		if strings.EqualFold(c.Name(), strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
