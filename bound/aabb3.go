package bound

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB3 represents an axis-aligned bounding box in 3D
type AABB3 struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABB3 creates an AABB from its two corners
func NewAABB3(min, max mgl64.Vec3) AABB3 {
	return AABB3{Min: min, Max: max}
}

// AABB3FromCenter creates an AABB from a center point and full size dimensions.
func AABB3FromCenter(center, size mgl64.Vec3) AABB3 {
	half := size.Mul(0.5)
	return AABB3{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// Union returns the smallest AABB containing both a and other
func (a AABB3) Union(other AABB3) AABB3 {
	return AABB3{
		Min: mgl64.Vec3{
			math.Min(a.Min.X(), other.Min.X()),
			math.Min(a.Min.Y(), other.Min.Y()),
			math.Min(a.Min.Z(), other.Min.Z()),
		},
		Max: mgl64.Vec3{
			math.Max(a.Max.X(), other.Max.X()),
			math.Max(a.Max.Y(), other.Max.Y()),
			math.Max(a.Max.Z(), other.Max.Z()),
		},
	}
}

// Intersects checks if two AABBs overlap
func (a AABB3) Intersects(other AABB3) bool {
	// AABBs overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// Contains checks if a fully contains other
func (a AABB3) Contains(other AABB3) bool {
	return a.Min.X() <= other.Min.X() && a.Max.X() >= other.Max.X() &&
		a.Min.Y() <= other.Min.Y() && a.Max.Y() >= other.Max.Y() &&
		a.Min.Z() <= other.Min.Z() && a.Max.Z() >= other.Max.Z()
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB3) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Size returns the volume of the AABB
func (a AABB3) Size() float64 {
	extents := a.Max.Sub(a.Min)
	return extents.X() * extents.Y() * extents.Z()
}

// Center returns the center point of the AABB
func (a AABB3) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Translate returns the AABB shifted by delta
func (a AABB3) Translate(delta mgl64.Vec3) AABB3 {
	return AABB3{
		Min: a.Min.Add(delta),
		Max: a.Max.Add(delta),
	}
}
