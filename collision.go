package main

// CheckCollision checks if two circles overlap
func CheckCollision(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	dist2 := dx*dx + dy*dy
	radSum := r1 + r2
	return dist2 <= radSum*radSum
}

// CircleIntersectsRect checks if a circle overlaps an axis-aligned rectangle.
// The circle center is clamped into the rect to find the nearest point, then
// squared distances are compared. No tolerance epsilon: movement blocking and
// projectile impact must agree exactly or slow projectiles tunnel at corners.
func CircleIntersectsRect(cx, cy, cr, rx, ry, rw, rh float64) bool {
	nx := Clamp(cx, rx, rx+rw)
	ny := Clamp(cy, ry, ry+rh)
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy <= cr*cr
}
