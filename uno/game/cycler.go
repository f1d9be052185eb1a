package game

const (
	left  = -1
	right = 1
)

// Cycler tracks a seat index over a fixed number of seats and the direction
// turns travel in.
type Cycler struct {
	size      int
	current   int
	direction int
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		current:   0,
		direction: right,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() int {
	return c.direction
}

// Peek returns the seat after the current one without moving.
func (c *Cycler) Peek() int {
	return c.step(c.current)
}

func (c *Cycler) Next() int {
	c.current = c.step(c.current)
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}

func (c *Cycler) step(from int) int {
	return (from + c.direction + c.size) % c.size
}
