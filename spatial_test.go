package main

import "testing"

func TestSpatialGridInsertQuery(t *testing.T) {
	g := NewSpatialGrid(960, 640)
	g.Insert(100, 100, EntityRef{Kind: 'p', Idx: 0})
	g.Insert(500, 300, EntityRef{Kind: 'p', Idx: 1})

	refs := g.Query(100, 100, 30)
	found := false
	for _, r := range refs {
		if r.Kind == 'p' && r.Idx == 0 {
			found = true
		}
		if r.Idx == 1 {
			t.Error("distant entity should not appear in a small query")
		}
	}
	if !found {
		t.Error("nearby entity missing from query")
	}
}

func TestSpatialGridQuerySpansCells(t *testing.T) {
	g := NewSpatialGrid(960, 640)
	// Two entities in adjacent cells, both within query radius
	g.Insert(60, 60, EntityRef{Kind: 'p', Idx: 0})
	g.Insert(70, 70, EntityRef{Kind: 'p', Idx: 1})

	refs := g.Query(SpatialCellSize, SpatialCellSize, 20)
	if len(refs) != 2 {
		t.Errorf("expected 2 refs across the cell boundary, got %d", len(refs))
	}
}

func TestSpatialGridClear(t *testing.T) {
	g := NewSpatialGrid(960, 640)
	g.Insert(100, 100, EntityRef{Kind: 'k', Idx: 0})
	g.Clear()
	if refs := g.Query(100, 100, 50); len(refs) != 0 {
		t.Errorf("expected empty grid after Clear, got %d refs", len(refs))
	}
}

func TestSpatialGridOutOfBoundsClamped(t *testing.T) {
	g := NewSpatialGrid(960, 640)
	// Positions outside the world must not panic; they clamp to edge cells
	g.Insert(-50, -50, EntityRef{Kind: 'p', Idx: 0})
	g.Insert(5000, 5000, EntityRef{Kind: 'p', Idx: 1})

	if refs := g.Query(0, 0, 10); len(refs) != 1 {
		t.Errorf("expected clamped entity at origin corner, got %d refs", len(refs))
	}
	if refs := g.Query(960, 640, 10); len(refs) != 1 {
		t.Errorf("expected clamped entity at far corner, got %d refs", len(refs))
	}
}
