package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

type State struct {
	GameID            string
	ActiveCard        card.Card
	PlayedCards       []card.Card
	CurrentPlayerHand []card.Card
	PlayerSequence    []string
	PlayerHandCounts  map[string]int
	Direction         int
	DeckSize          int
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Active card: %s", s.ActiveCard))

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	order := "clockwise"
	if s.Direction < 0 {
		order = "counterclockwise"
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", order, strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Cards left in deck: %d", s.DeckSize))

	return strings.Join(lines, "\n")
}
