package sim

import "testing"

func TestGridCellClamping(t *testing.T) {
	g := newGrid(25, 4000)

	// Positions far outside the arena land in border cells, never panic.
	if c := g.cellOf(Vec2{-999999, -999999}); c != 0 {
		t.Errorf("Far min corner should clamp to cell 0, got %d", c)
	}
	if c := g.cellOf(Vec2{999999, 999999}); c != 25*25-1 {
		t.Errorf("Far max corner should clamp to cell %d, got %d", 25*25-1, c)
	}
	if c := g.cellOf(Vec2{999999, -999999}); c != 24 {
		t.Errorf("Far top-right should clamp to cell 24, got %d", c)
	}
	if c := g.cellOf(Vec2{0, 0}); c != 12*25+12 {
		t.Errorf("Center should map to the middle cell %d, got %d", 12*25+12, c)
	}
}

func TestGridUpdateMovesBetweenCells(t *testing.T) {
	g := newGrid(25, 4000)

	cell := noCell
	g.update(1, Vec2{0, 0}, &cell)
	if cell == noCell {
		t.Fatal("Update should link the entity into a cell")
	}
	first := cell

	// Same position is a no-op.
	g.update(1, Vec2{1, 1}, &cell)
	if cell != first {
		t.Errorf("Nearby position should keep cell %d, got %d", first, cell)
	}

	g.update(1, Vec2{3000, 3000}, &cell)
	if cell == first {
		t.Error("Distant position should move the entity to another cell")
	}

	// Exactly one instance across the whole grid after the moves.
	count := 0
	g.probeRange(Rect{Vec2{-4000, -4000}, Vec2{4000, 4000}}, 0, func(id EntityID) {
		if id == 1 {
			count++
		}
	})
	if count != 1 {
		t.Errorf("Entity should occupy exactly one cell, found %d", count)
	}
}

func TestGridRemove(t *testing.T) {
	g := newGrid(25, 4000)

	cell := noCell
	g.update(1, Vec2{0, 0}, &cell)
	g.remove(1, &cell)
	if cell != noCell {
		t.Errorf("Remove should reset the ref, got %d", cell)
	}

	found := false
	g.probeRange(Rect{Vec2{-4000, -4000}, Vec2{4000, 4000}}, 0, func(id EntityID) {
		found = true
	})
	if found {
		t.Error("Removed entity should not be visited")
	}

	// Removing again is a no-op.
	g.remove(1, &cell)
}

func TestGridProbeFullArenaVisitsAllOnce(t *testing.T) {
	g := newGrid(25, 4000)
	arena := Rect{Vec2{-4000, -4000}, Vec2{4000, 4000}}

	const n = 50
	cells := make([]int32, n)
	for i := range cells {
		cells[i] = noCell
		pos := randVec2(99, uint32(i), "pos", arena)
		g.update(EntityID(i), pos, &cells[i])
	}

	visits := make(map[EntityID]int)
	g.probeRange(arena, 0, func(id EntityID) {
		visits[id]++
	})

	if len(visits) != n {
		t.Fatalf("Expected %d entities visited, got %d", n, len(visits))
	}
	for id, c := range visits {
		if c != 1 {
			t.Errorf("Entity %d visited %d times, want 1", id, c)
		}
	}
}

func TestGridProbeWindow(t *testing.T) {
	g := newGrid(25, 4000)

	near, far := noCell, noCell
	g.update(1, Vec2{0, 0}, &near)
	g.update(2, Vec2{3500, 3500}, &far)

	var seen []EntityID
	g.probeRange(Rect{Vec2{-100, -100}, Vec2{100, 100}}, 0, func(id EntityID) {
		seen = append(seen, id)
	})
	if len(seen) != 1 || seen[0] != 1 {
		t.Errorf("Window around origin should see only entity 1, got %v", seen)
	}
}

func TestGridProbeOffArenaWindowClamps(t *testing.T) {
	g := newGrid(25, 4000)

	cell := noCell
	g.update(1, Vec2{3999, 3999}, &cell)

	// A window past the arena edge clamps to the border cells.
	found := false
	g.probeRange(Rect{Vec2{5000, 5000}, Vec2{6000, 6000}}, 0, func(id EntityID) {
		if id == 1 {
			found = true
		}
	})
	if !found {
		t.Error("Off-arena window should clamp to border cells and see the corner entity")
	}
}

// pairKey orders a visited pair for counting.
type pairKey struct {
	a, b EntityID
}

func collectPairs(t *testing.T, g *grid, maxRadius float64) map[pairKey]int {
	t.Helper()
	pairs := make(map[pairKey]int)
	g.forEachPair(maxRadius, func(a, b EntityID) {
		if a == b {
			t.Fatalf("Self pair for entity %d", a)
		}
		if pairs[pairKey{b, a}] > 0 {
			t.Fatalf("Pair (%d,%d) also visited as its reverse", a, b)
		}
		pairs[pairKey{a, b}]++
	})
	return pairs
}

func TestGridPairsExactlyOnce(t *testing.T) {
	g := newGrid(25, 4000)

	// Cell size is 320: A and B share the center cell, C sits two rows
	// below in the same column (the case a naive symmetric scan counts
	// twice), D is far beyond reach.
	positions := []Vec2{
		{0, 0},
		{10, 10},
		{0, 650},
		{3000, -3000},
	}
	cells := make([]int32, len(positions))
	for i, pos := range positions {
		cells[i] = noCell
		g.update(EntityID(i), pos, &cells[i])
	}

	// maxRadius 200 gives a reach of two cells.
	pairs := collectPairs(t, &g, 200)

	want := []pairKey{{0, 1}, {0, 2}, {1, 2}}
	total := 0
	for _, w := range want {
		n := pairs[w] + pairs[pairKey{w.b, w.a}]
		if n != 1 {
			t.Errorf("Pair %v visited %d times, want 1", w, n)
		}
		total += n
	}
	for p := range pairs {
		if p.a == 3 || p.b == 3 {
			t.Errorf("Entity 3 is beyond reach but appeared in pair %v", p)
		}
	}
	if len(pairs) != len(want) || total != len(want) {
		t.Errorf("Expected exactly %d pairs, got %v", len(want), pairs)
	}
}

func TestGridPairsRespectReach(t *testing.T) {
	g := newGrid(25, 4000)

	// Same column, two rows apart: out of reach when maxRadius is 0.
	a, b := noCell, noCell
	g.update(1, Vec2{0, 0}, &a)
	g.update(2, Vec2{0, 650}, &b)

	pairs := collectPairs(t, &g, 0)
	if len(pairs) != 0 {
		t.Errorf("No pairs expected at reach 1, got %v", pairs)
	}
}
