package bound

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAABB3Intersects(t *testing.T) {
	tests := []struct {
		name     string
		aabb1    AABB3
		aabb2    AABB3
		expected bool
	}{
		{
			name:     "Separated on Z axis",
			aabb1:    AABB3{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			aabb2:    AABB3{Min: mgl64.Vec3{0, 0, 2}, Max: mgl64.Vec3{1, 1, 3}},
			expected: false,
		},
		{
			name:     "Overlap on all axes",
			aabb1:    AABB3{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 2, 2}},
			aabb2:    AABB3{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{3, 3, 3}},
			expected: true,
		},
		{
			name:     "Touching faces",
			aabb1:    AABB3{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			aabb2:    AABB3{Min: mgl64.Vec3{1, 0, 0}, Max: mgl64.Vec3{2, 1, 1}},
			expected: true,
		},
		{
			name:     "Overlap on two axes only",
			aabb1:    AABB3{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			aabb2:    AABB3{Min: mgl64.Vec3{0.5, 0.5, 5}, Max: mgl64.Vec3{1.5, 1.5, 6}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.aabb1.Intersects(tt.aabb2) != tt.expected {
				t.Errorf("Intersects = %v, want %v", !tt.expected, tt.expected)
			}
			if tt.aabb2.Intersects(tt.aabb1) != tt.expected {
				t.Errorf("Intersects should be symmetric")
			}
		})
	}
}

func TestAABB3Union(t *testing.T) {
	a := AABB3{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}
	b := AABB3{Min: mgl64.Vec3{-1, 2, 0.5}, Max: mgl64.Vec3{0, 3, 4}}

	union := a.Union(b)
	expected := AABB3{Min: mgl64.Vec3{-1, 0, 0}, Max: mgl64.Vec3{1, 3, 4}}
	if union != expected {
		t.Errorf("Union = %v, want %v", union, expected)
	}

	if !union.Contains(a) || !union.Contains(b) {
		t.Errorf("Union should contain both operands")
	}
}

func TestAABB3Contains(t *testing.T) {
	outer := AABB3{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{10, 10, 10}}
	inner := AABB3{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{2, 2, 2}}

	if !outer.Contains(inner) {
		t.Errorf("outer should contain inner")
	}
	if inner.Contains(outer) {
		t.Errorf("inner should not contain outer")
	}
	if !outer.Contains(outer) {
		t.Errorf("a box contains itself")
	}
}

func TestAABB3Size(t *testing.T) {
	tests := []struct {
		name     string
		aabb     AABB3
		expected float64
	}{
		{"Unit cube", AABB3{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}, 1.0},
		{"Cuboid", AABB3{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 3, 4}}, 24.0},
		{"Degenerate (point)", AABB3{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{1, 1, 1}}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.aabb.Size(); got != tt.expected {
				t.Errorf("Size() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAABB3FromCenterAndTranslate(t *testing.T) {
	aabb := AABB3FromCenter(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 2, 2})
	expected := AABB3{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 1, 1}}
	if aabb != expected {
		t.Errorf("AABB3FromCenter = %v, want %v", aabb, expected)
	}

	moved := aabb.Translate(mgl64.Vec3{5, 0, 0})
	if moved.Center() != (mgl64.Vec3{5, 0, 0}) {
		t.Errorf("translated center = %v, want {5 0 0}", moved.Center())
	}
}

func TestAABB3ContainsPoint(t *testing.T) {
	aabb := AABB3{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 2, 2}}

	if !aabb.ContainsPoint(mgl64.Vec3{1, 1, 1}) {
		t.Errorf("interior point should be contained")
	}
	if aabb.ContainsPoint(mgl64.Vec3{1, 1, 3}) {
		t.Errorf("exterior point should not be contained")
	}
}
