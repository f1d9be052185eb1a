package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
			os.Exit(2)
		}
	}()
	if err := run(); err != nil {
		os.Exit(report(err))
	}
}

// report logs err and returns the process exit code: 1 when the game was
// stopped by a terminating error, 3 when a recoverable one escaped it.
func report(err error) int {
	if consts.IsFatal(err) {
		log.Errorf("game aborted: %v\n", err)
		return 1
	}
	log.Errorf("unhandled recoverable error: %v\n", err)
	return 3
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	rng := game.NewRand(cfg.Seed)
	deck := game.NewDeck(rng)

	var players []game.Player
	if cfg.Autoplay {
		console := ui.NewConsole(color.Stdout, nil, cfg.Pause())
		ui.NewListener(console, "").Listen()
		players = player.CreateBots(cfg.Players, rng)
	} else {
		input, err := ui.NewReadlineInput("> ")
		if err != nil {
			return err
		}
		defer input.Close()
		console := ui.NewConsole(color.Stdout, input, cfg.Pause())
		ui.NewListener(console, cfg.PlayerName).Listen()
		players = player.CreatePlayers(cfg.Players, cfg.PlayerName, console, rng)
	}

	unoGame, err := game.New(players, deck)
	if err != nil {
		return err
	}
	log.Infof("game %s started, seed %d, %d players\n", unoGame.ID(), cfg.Seed, len(players))
	fmt.Fprint(color.Stdout, msg.Message.Welcome())

	if err := unoGame.Setup(); err != nil {
		return err
	}
	winner, err := unoGame.Run()
	if err != nil {
		return errors.Wrapf(err, "game %s stopped after %d turns", unoGame.ID(), unoGame.Turns())
	}
	log.Infof("game %s won by %s after %d turns\n", unoGame.ID(), winner, unoGame.Turns())
	return nil
}
