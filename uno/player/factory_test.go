package player_test

import (
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/stretchr/testify/require"
)

func TestCreatePlayers(t *testing.T) {
	console := ui.NewConsole(nil, ui.NewScriptedInput(), 0)
	players := player.CreatePlayers(3, "You", console, game.NewRand(5))

	require.Len(t, players, 3)
	require.Equal(t, "You", players[0].Name())
	require.NotEqual(t, players[1].Name(), players[2].Name())
}

func TestCreateBots(t *testing.T) {
	t.Run("distinct_names", func(t *testing.T) {
		bots := player.CreateBots(player.MaxBots, game.NewRand(5))
		names := make(map[string]bool)
		for _, bot := range bots {
			names[bot.Name()] = true
		}
		require.Len(t, names, player.MaxBots)
	})

	t.Run("names_every_seat_of_the_largest_table", func(t *testing.T) {
		players := player.CreatePlayers(consts.MaxPlayers, "You", ui.NewConsole(nil, ui.NewScriptedInput(), 0), game.NewRand(5))
		require.Len(t, players, consts.MaxPlayers)
	})

	t.Run("caps_at_available_names", func(t *testing.T) {
		require.Len(t, player.CreateBots(player.MaxBots+3, game.NewRand(5)), player.MaxBots)
	})
}
