package tetris

import (
	"math/rand"

	"golang.org/x/exp/slices"
)

// Randomizer yields the shape sequence of a game
type Randomizer interface {
	Next() *Shape
}

// Bag deals every shape of a catalog once, in shuffled order, before any
// shape repeats. It has no peek: the board buffers the next shape itself.
type Bag struct {
	shapes []*Shape
	queue  []*Shape
	rng    *rand.Rand
}

// NewBag creates a bag over catalog
func NewBag(catalog *Catalog, rng *rand.Rand) *Bag {
	return &Bag{
		shapes: catalog.Shapes(),
		rng:    rng,
	}
}

// Next pops the next shape, refilling the bag when it is empty
func (bag *Bag) Next() *Shape {
	if len(bag.queue) == 0 {
		bag.refill()
	}
	shape := bag.queue[0]
	bag.queue = bag.queue[1:]
	return shape
}

// Remaining returns how many shapes are left before the next refill
func (bag *Bag) Remaining() int {
	return len(bag.queue)
}

func (bag *Bag) refill() {
	bag.queue = slices.Clone(bag.shapes)
	bag.rng.Shuffle(len(bag.queue), func(i, j int) {
		bag.queue[i], bag.queue[j] = bag.queue[j], bag.queue[i]
	})
}

// Sequence replays a fixed list of shapes, cycling when exhausted. It is
// used for scripted games and tests.
type Sequence struct {
	shapes []*Shape
	index  int
}

// NewSequence creates a cycling sequence of shapes
func NewSequence(shapes ...*Shape) *Sequence {
	return &Sequence{shapes: shapes}
}

// Next returns the next shape of the sequence
func (sequence *Sequence) Next() *Shape {
	shape := sequence.shapes[sequence.index]
	sequence.index = (sequence.index + 1) % len(sequence.shapes)
	return shape
}
