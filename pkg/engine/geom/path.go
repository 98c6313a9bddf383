package geom

import "math"

// ClipEdges shortens the segment a→b by radius at both ends so a line between two circle
// glyphs starts and stops on their rims. ok is false when the circles overlap or touch.
func ClipEdges(a, b Vec2, radius float32) (from, to Vec2, ok bool) {
	dir := b.Sub(a)
	if dir.Len() <= radius*2 {
		return Zero, Zero, false
	}
	n := dir.Normalize()
	return a.Add(n.Scale(radius)), b.Sub(n.Scale(radius)), true
}

// Circle returns segments+1 points around center, first and last equal.
// Fewer than three segments cannot describe a circle and yield nil.
func Circle(center Vec2, radius float32, segments int) []Vec2 {
	if segments < 3 {
		return nil
	}
	step := 2 * math.Pi / float64(segments)
	pts := make([]Vec2, 0, segments+1)
	pts = append(pts, center.Add(Vec2{radius, 0}))
	for i := 1; i <= segments; i++ {
		angle := float64(i) * step
		pts = append(pts, center.Add(Vec2{
			float32(float64(radius) * math.Cos(angle)),
			float32(float64(radius) * math.Sin(angle)),
		}))
	}
	return pts
}

// Arc returns a quadratic curve from a to b bent sideways by bend times the chord length,
// sampled into steps segments. A zero bend (or fewer than two steps) is the straight segment.
func Arc(a, b Vec2, bend float32, steps int) []Vec2 {
	if bend == 0 || steps < 2 {
		return []Vec2{a, b}
	}
	chord := b.Sub(a)
	mid := a.Add(chord.Scale(0.5))
	ctrl := mid.Add(chord.Perp().Normalize().Scale(chord.Len() * bend))

	pts := make([]Vec2, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		u := 1 - t
		pts = append(pts, Vec2{
			u*u*a.X + 2*u*t*ctrl.X + t*t*b.X,
			u*u*a.Y + 2*u*t*ctrl.Y + t*t*b.Y,
		})
	}
	return pts
}
