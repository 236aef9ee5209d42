package boundtree

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/image/bmp"

	"github.com/vheurtel/boundtree/bound"
)

// DrawBMP renders a 2D tree to a BMP file for debugging: internal node
// boxes in red, leaf boxes in green, world coordinates mapped 1:1 to
// pixels. Returns an error if the tree is empty or the file cannot be
// written.
func DrawBMP[V comparable](tree *Tree[V, bound.AABB2], path string) error {
	if tree.IsEmpty() {
		return fmt.Errorf("draw %s: tree is empty", path)
	}

	root := tree.root.boundary
	frame := image.NewRGBA(image.Rect(
		int(root.Min.X()), int(root.Min.Y()),
		int(root.Max.X())+1, int(root.Max.Y())+1,
	))
	draw.Draw(frame, frame.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	internalCol := color.RGBA{255, 0, 0, 255}
	leafCol := color.RGBA{0, 255, 0, 255}

	hLine := func(x1, y, x2 int, col color.RGBA) {
		for ; x1 <= x2; x1++ {
			frame.Set(x1, y, col)
		}
	}
	vLine := func(x, y1, y2 int, col color.RGBA) {
		for ; y1 <= y2; y1++ {
			frame.Set(x, y1, col)
		}
	}
	rect := func(b bound.AABB2, col color.RGBA) {
		x1, y1 := int(b.Min.X()), int(b.Min.Y())
		x2, y2 := int(b.Max.X()), int(b.Max.Y())
		hLine(x1, y1, x2, col)
		hLine(x1, y2, x2, col)
		vLine(x1, y1, y2, col)
		vLine(x2, y1, y2, col)
	}

	nodes, leaves := 0, 0
	var visit func(n *node[V, bound.AABB2])
	visit = func(n *node[V, bound.AABB2]) {
		nodes++
		if n.isLeaf() {
			leaves++
			rect(n.boundary, leafCol)
			return
		}
		rect(n.boundary, internalCol)
		visit(n.left)
		visit(n.right)
	}
	visit(tree.root)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("draw %s: %w", path, err)
	}
	defer f.Close()

	if err := bmp.Encode(f, frame); err != nil {
		return fmt.Errorf("draw %s: %w", path, err)
	}

	log.WithFields(log.Fields{
		"path":   path,
		"nodes":  nodes,
		"leaves": leaves,
	}).Debug("tree image written")

	return nil
}
