package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/msg"
)

func (c *Console) PromptString(message string) (string, error) {
	for {
		c.Println(message)
		input, err := c.in.ReadLine()
		if err != nil {
			return "", err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			c.Print(msg.Message.InvalidInput())
			continue
		}
		return input, nil
	}
}

func (c *Console) PromptInteger(message string) (int, error) {
	for {
		input, err := c.PromptString(message)
		if err != nil {
			return 0, err
		}
		number, err := parseInteger(input)
		if err != nil {
			c.Print(msg.Message.InvalidInput())
			continue
		}
		return number, nil
	}
}

func (c *Console) PromptIntegerInRange(minimum int, maximum int, message string) (int, error) {
	for {
		input, err := c.PromptInteger(message)
		if err != nil {
			return 0, err
		}
		if input < minimum || input > maximum {
			c.Print(msg.Message.InvalidCardNumber(minimum, maximum))
			continue
		}
		return input, nil
	}
}

// PromptColor accepts a color number (0-3) or name and re-prompts on anything else.
func (c *Console) PromptColor() (color.Color, error) {
	options := make([]string, 0, len(color.Concrete))
	for index, option := range color.Concrete {
		options = append(options, fmt.Sprintf("%d=%s", index, option))
	}
	colorMessage := fmt.Sprintf("Choose a color (%s):", strings.Join(options, ", "))
	for {
		input, err := c.PromptString(colorMessage)
		if err != nil {
			return color.None, err
		}
		chosenColor, err := parseColor(input)
		if err != nil {
			c.Print(msg.Message.InvalidColor(input))
			continue
		}
		return chosenColor, nil
	}
}

func parseInteger(input string) (int, error) {
	number, err := strconv.Atoi(input)
	if err != nil {
		return 0, errors.Wrapf(consts.ErrorsInputInvalid, "%q is not a number", input)
	}
	return number, nil
}

func parseColor(input string) (color.Color, error) {
	if number, err := parseInteger(input); err == nil {
		if number < 0 || number >= len(color.Concrete) {
			return color.None, errors.Wrapf(consts.ErrorsColorInvalid, "no color numbered %d", number)
		}
		return color.Concrete[number], nil
	}
	chosenColor, err := color.ByName(input)
	if err != nil {
		return color.None, errors.Wrap(consts.ErrorsColorInvalid, err.Error())
	}
	return chosenColor, nil
}
