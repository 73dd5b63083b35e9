package phineas

import "github.com/phanxgames/phineas/collision"

// Circular is an entity with a circular hit area.
type Circular interface {
	HitCircle() Circle
}

// BoundsOverlap returns a strategy reporting whether two entities' bounding
// boxes intersect. Touching edges count as a collision.
func BoundsOverlap[A, B Boundable]() collision.Strategy[A, B] {
	return func(a A, b B) bool {
		return a.Bounds().Intersects(b.Bounds())
	}
}

// CirclesOverlap returns a strategy reporting whether two entities' hit
// circles touch or overlap.
func CirclesOverlap[A, B Circular]() collision.Strategy[A, B] {
	return func(a A, b B) bool {
		return a.HitCircle().Overlaps(b.HitCircle())
	}
}
