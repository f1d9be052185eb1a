package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/msg"
)

// Console writes narration and reads answers for one terminal.
type Console struct {
	out   io.Writer
	in    Input
	pause time.Duration
}

func NewConsole(out io.Writer, in Input, pause time.Duration) *Console {
	if out == nil {
		out = color.Stdout
	}
	return &Console{out: out, in: in, pause: pause}
}

func (c *Console) Printfln(format string, args ...interface{}) {
	c.Println(fmt.Sprintf(format, args...))
}

func (c *Console) Printlns(lines []string) {
	c.Print(msg.Sprintlns(lines))
}

func (c *Console) Println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
	if c.pause > 0 {
		time.Sleep(c.pause)
	}
}

// Print writes preformatted text, such as a msg line, as is.
func (c *Console) Print(text string) {
	fmt.Fprint(c.out, text)
	if c.pause > 0 {
		time.Sleep(c.pause)
	}
}
