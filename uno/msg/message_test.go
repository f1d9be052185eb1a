package msg_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/stretchr/testify/require"
)

func TestPlayerDrewCards(t *testing.T) {
	require.Equal(t, "AI-1 drew a card!\n", msg.Message.PlayerDrewCards("AI-1", make([]card.Card, 1)))
	require.Equal(t, "AI-1 drew 4 cards!\n", msg.Message.PlayerDrewCards("AI-1", make([]card.Card, 4)))
}

func TestSprintlns(t *testing.T) {
	require.Equal(t, "a\nb\n", msg.Sprintlns([]string{"a", "b"}))
}
