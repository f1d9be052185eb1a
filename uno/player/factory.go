package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/ui"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// MaxBots is how many distinct automated players CreateBots can name.
var MaxBots = len(botNames)

// CreatePlayers seats the interactive player first, followed by bots.
func CreatePlayers(numberOfPlayers int, humanPlayerName string, console *ui.Console, rng *rand.Rand) []game.Player {
	players := make([]game.Player, 0, numberOfPlayers)
	players = append(players, NewInteractivePlayer(humanPlayerName, console))
	for _, bot := range CreateBots(numberOfPlayers-1, rng) {
		if bot.Name() == humanPlayerName {
			bot = NewAutomatedPlayer(bot.Name() + " (bot)")
		}
		players = append(players, bot)
	}
	return players
}

func CreateBots(amount int, rng *rand.Rand) []game.Player {
	if amount > len(botNames) {
		amount = len(botNames)
	}
	names := make([]string, len(botNames))
	copy(names, botNames)
	rng.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })
	bots := make([]game.Player, 0, amount)
	for _, botName := range names[:amount] {
		bots = append(bots, NewAutomatedPlayer(botName))
	}
	return bots
}
