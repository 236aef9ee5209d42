package bound

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB2 represents an axis-aligned bounding box in 2D
// It satisfies the tree's Boundary contract; zero-size (degenerate) boxes
// are valid.
type AABB2 struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// NewAABB2 creates an AABB from its two corners
func NewAABB2(min, max mgl64.Vec2) AABB2 {
	return AABB2{Min: min, Max: max}
}

// AABB2FromCenter creates an AABB from a center point and full size dimensions.
func AABB2FromCenter(center, size mgl64.Vec2) AABB2 {
	half := size.Mul(0.5)
	return AABB2{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// Union returns the smallest AABB containing both a and other
func (a AABB2) Union(other AABB2) AABB2 {
	return AABB2{
		Min: mgl64.Vec2{
			math.Min(a.Min.X(), other.Min.X()),
			math.Min(a.Min.Y(), other.Min.Y()),
		},
		Max: mgl64.Vec2{
			math.Max(a.Max.X(), other.Max.X()),
			math.Max(a.Max.Y(), other.Max.Y()),
		},
	}
}

// Intersects checks if two AABBs overlap
func (a AABB2) Intersects(other AABB2) bool {
	// AABBs overlap if they overlap on both axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y()
}

// Contains checks if a fully contains other
func (a AABB2) Contains(other AABB2) bool {
	return a.Min.X() <= other.Min.X() && a.Max.X() >= other.Max.X() &&
		a.Min.Y() <= other.Min.Y() && a.Max.Y() >= other.Max.Y()
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB2) ContainsPoint(point mgl64.Vec2) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y()
}

// Size returns the area of the AABB
func (a AABB2) Size() float64 {
	return (a.Max.X() - a.Min.X()) * (a.Max.Y() - a.Min.Y())
}

// Center returns the center point of the AABB
func (a AABB2) Center() mgl64.Vec2 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Translate returns the AABB shifted by delta
func (a AABB2) Translate(delta mgl64.Vec2) AABB2 {
	return AABB2{
		Min: a.Min.Add(delta),
		Max: a.Max.Add(delta),
	}
}
