package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vheurtel/boundtree"
	"github.com/vheurtel/boundtree/bound"
)

// Object is a domain value the tree indexes but never owns
type Object struct {
	Name     string
	Bound    bound.AABB2
	Previous bound.AABB2
}

// Move updates the object's position, keeping the previous boundary so the
// tree can still find it at its old place.
func (o *Object) Move(delta mgl64.Vec2) {
	o.Previous = o.Bound
	o.Bound = o.Bound.Translate(delta)
}

func main() {
	tree := boundtree.New(
		func(o *Object) bound.AABB2 { return o.Bound },
		func(o *Object) bound.AABB2 { return o.Previous },
	)

	objects := []*Object{
		{Name: "player", Bound: bound.AABB2FromCenter(mgl64.Vec2{2, 2}, mgl64.Vec2{2, 2})},
		{Name: "crate", Bound: bound.AABB2FromCenter(mgl64.Vec2{10, 2}, mgl64.Vec2{2, 2})},
		{Name: "wall", Bound: bound.NewAABB2(mgl64.Vec2{14, 0}, mgl64.Vec2{15, 20})},
	}
	for _, o := range objects {
		o.Previous = o.Bound
		tree.Add(o)
	}

	events := boundtree.NewEvents(func(a, b *Object) bool { return a.Name < b.Name })
	events.Subscribe(boundtree.PAIR_ENTER, func(e boundtree.Event[*Object]) {
		enter := e.(boundtree.PairEnterEvent[*Object])
		fmt.Printf("enter: %s / %s\n", enter.A.Name, enter.B.Name)
	})
	events.Subscribe(boundtree.PAIR_EXIT, func(e boundtree.Event[*Object]) {
		exit := e.(boundtree.PairExitEvent[*Object])
		fmt.Printf("exit:  %s / %s\n", exit.A.Name, exit.B.Name)
	})

	// Push the player toward the wall, one unit per tick
	player := objects[0]
	for tick := 0; tick < 16; tick++ {
		player.Move(mgl64.Vec2{1, 0})
		tree.RemoveByPreviousBoundary(player)
		tree.Add(player)

		pairs := events.RecordChan(boundtree.FindPairsParallel(tree, 4))
		events.Flush()

		fmt.Printf("tick %2d: player at %v, %d candidate pair(s)\n",
			tick, player.Bound.Center(), len(pairs))
	}

	fmt.Println("indexed:", tree.Count(), "boundary:", tree.Boundary())

	if err := boundtree.DrawBMP(tree, "tree.bmp"); err != nil {
		fmt.Println(err)
	}
}
