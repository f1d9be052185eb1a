package ui

import (
	"io"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/ratel-online/uno/consts"
)

// Input yields one line of user input per call. It returns
// consts.ErrorsInputClosed once no more input will come.
type Input interface {
	ReadLine() (string, error)
}

type ReadlineInput struct {
	rl *readline.Instance
}

func NewReadlineInput(prompt string) (*ReadlineInput, error) {
	rl, err := readline.New(prompt)
	if err != nil {
		return nil, errors.Wrap(err, "opening readline")
	}
	return &ReadlineInput{rl: rl}, nil
}

func (i *ReadlineInput) ReadLine() (string, error) {
	line, err := i.rl.Readline()
	if err == io.EOF || err == readline.ErrInterrupt {
		return "", errors.WithStack(consts.ErrorsInputClosed)
	}
	if err != nil {
		return "", errors.Wrap(err, "reading line")
	}
	return line, nil
}

func (i *ReadlineInput) Close() error {
	return i.rl.Close()
}

// ScriptedInput replays fixed lines, for tests and scripted demos.
type ScriptedInput struct {
	lines []string
	read  int
}

func NewScriptedInput(lines ...string) *ScriptedInput {
	return &ScriptedInput{lines: lines}
}

func (i *ScriptedInput) ReadLine() (string, error) {
	if i.read >= len(i.lines) {
		return "", errors.WithStack(consts.ErrorsInputClosed)
	}
	line := i.lines[i.read]
	i.read++
	return line, nil
}

// Remaining reports how many scripted lines have not been read.
func (i *ScriptedInput) Remaining() int {
	return len(i.lines) - i.read
}
