package game

// PlayerIterator walks the seats in turn order.
type PlayerIterator struct {
	players []*playerController
	cycler  *Cycler
}

func newPlayerIterator(players []Player) *PlayerIterator {
	controllers := make([]*playerController, 0, len(players))
	for _, player := range players {
		controllers = append(controllers, newPlayerController(player))
	}
	return &PlayerIterator{
		players: controllers,
		cycler:  NewCycler(len(controllers)),
	}
}

func (i *PlayerIterator) GetPlayerController(name string) *playerController {
	for _, player := range i.players {
		if player.Name() == name {
			return player
		}
	}
	return nil
}

func (i *PlayerIterator) Current() *playerController {
	return i.players[i.cycler.Current()]
}

func (i *PlayerIterator) CurrentIndex() int {
	return i.cycler.Current()
}

// Following returns the player after the current one in the current direction.
func (i *PlayerIterator) Following() *playerController {
	return i.players[i.cycler.Peek()]
}

func (i *PlayerIterator) Direction() int {
	return i.cycler.Direction()
}

// ForEach visits players in seat order.
func (i *PlayerIterator) ForEach(function func(player *playerController)) {
	for _, player := range i.players {
		function(player)
	}
}

func (i *PlayerIterator) Len() int {
	return len(i.players)
}

func (i *PlayerIterator) Next() *playerController {
	return i.players[i.cycler.Next()]
}

func (i *PlayerIterator) Reverse() {
	i.cycler.Reverse()
}

// Skip moves past the following player and returns them.
func (i *PlayerIterator) Skip() *playerController {
	return i.Next()
}
