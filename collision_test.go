package main

import "testing"

func TestCheckCollision(t *testing.T) {
	if !CheckCollision(0, 0, 10, 15, 0, 10) {
		t.Error("circles 15 apart with radii 10+10 should collide")
	}
	if CheckCollision(0, 0, 10, 25, 0, 10) {
		t.Error("circles 25 apart with radii 10+10 should not collide")
	}
	// Exact touch counts as a collision
	if !CheckCollision(0, 0, 10, 20, 0, 10) {
		t.Error("circles exactly touching should collide")
	}
}

func TestCircleIntersectsRectInside(t *testing.T) {
	if !CircleIntersectsRect(50, 50, 5, 0, 0, 100, 100) {
		t.Error("circle fully inside rect should intersect")
	}
}

func TestCircleIntersectsRectEdge(t *testing.T) {
	// Circle center 10 left of the rect edge with radius 10: exact touch
	if !CircleIntersectsRect(-10, 50, 10, 0, 0, 100, 100) {
		t.Error("circle touching rect edge should intersect")
	}
	if CircleIntersectsRect(-11, 50, 10, 0, 0, 100, 100) {
		t.Error("circle 1 unit short of rect edge should not intersect")
	}
}

func TestCircleIntersectsRectCorner(t *testing.T) {
	// Diagonal from corner (0,0): distance sqrt(8) ~ 2.83
	if !CircleIntersectsRect(-2, -2, 3, 0, 0, 100, 100) {
		t.Error("circle overlapping corner should intersect")
	}
	if CircleIntersectsRect(-3, -3, 4, 0, 0, 100, 100) {
		t.Error("circle past corner diagonal should not intersect")
	}
}
