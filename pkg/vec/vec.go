// pkg/vec/vec.go
package vec

import "math"

// Dist returns the Euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Angle returns the angle in radians from (x1,y1) toward (x2,y2).
func Angle(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// Offset returns the point at distance r from (x,y) along angle a.
func Offset(x, y, a, r float64) (float64, float64) {
	return x + math.Cos(a)*r, y + math.Sin(a)*r
}

// Toward moves (x,y) up to step units toward (tx,ty), stopping exactly
// on the target when it is closer than one step.
func Toward(x, y, tx, ty, step float64) (float64, float64) {
	dx := tx - x
	dy := ty - y
	d := math.Hypot(dx, dy)
	if d <= step || d == 0 {
		return tx, ty
	}
	return x + dx/d*step, y + dy/d*step
}
