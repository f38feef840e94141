package sim

// noCell marks an entity not currently linked into the grid.
const noCell int32 = -1

// grid is a uniform spatial index over the square arena: dim x dim cells in
// row-major order, each holding the ids whose centers fall inside it. It
// turns "all pairs within reach" into a bounded neighborhood scan instead of
// a quadratic sweep.
type grid struct {
	dim      int
	cellSize float64
	min, max Vec2
	cells    [][]EntityID
}

// newGrid builds a grid of dim x dim cells covering [-extent, extent] on
// both axes.
func newGrid(dim int, extent float64) grid {
	return grid{
		dim:      dim,
		cellSize: 2 * extent / float64(dim),
		min:      Vec2{-extent, -extent},
		max:      Vec2{extent, extent},
		cells:    make([][]EntityID, dim*dim),
	}
}

// cellOf maps a position to its cell index. Positions outside the arena
// clamp to the border cells, so off-arena probes still resolve.
func (g *grid) cellOf(pos Vec2) int32 {
	x := g.clampAxis(pos.X, g.min.X, g.max.X)
	y := g.clampAxis(pos.Y, g.min.Y, g.max.Y)
	return int32(y*g.dim + x)
}

func (g *grid) clampAxis(v, lo, hi float64) int {
	switch {
	case v <= lo:
		return 0
	case v >= hi:
		return g.dim - 1
	default:
		return int((v - lo) / g.cellSize)
	}
}

// update moves an entity to the cell owning pos, recording it in *cell. It
// no-ops when the owning cell is unchanged. Must run after every position
// change that collision queries should observe.
func (g *grid) update(id EntityID, pos Vec2, cell *int32) {
	next := g.cellOf(pos)
	if next == *cell {
		return
	}
	g.remove(id, cell)
	g.cells[next] = append(g.cells[next], id)
	*cell = next
}

// remove unlinks an entity from its cell, if any. Order within a cell is
// not meaningful, so the id is swap-removed.
func (g *grid) remove(id EntityID, cell *int32) {
	if *cell == noCell {
		return
	}
	objs := g.cells[*cell]
	for i, o := range objs {
		if o == id {
			objs[i] = objs[len(objs)-1]
			g.cells[*cell] = objs[:len(objs)-1]
			break
		}
	}
	*cell = noCell
}

// probeRange visits every id in the cells covered by r expanded outward by
// maxRadius, catching bodies whose center lies outside r but whose extent
// reaches in. Each id is visited once per covering cell; since an id
// occupies exactly one cell, that is once overall.
func (g *grid) probeRange(r Rect, maxRadius float64, visit func(EntityID)) {
	minX := g.clampCell(int((r.Min.X - maxRadius - g.min.X) / g.cellSize))
	maxX := g.clampCell(int((r.Max.X + maxRadius - g.min.X) / g.cellSize))
	minY := g.clampCell(int((r.Min.Y - maxRadius - g.min.Y) / g.cellSize))
	maxY := g.clampCell(int((r.Max.Y + maxRadius - g.min.Y) / g.cellSize))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			for _, id := range g.cells[y*g.dim+x] {
				visit(id)
			}
		}
	}
}

func (g *grid) clampCell(i int) int {
	if i < 0 {
		return 0
	}
	if i >= g.dim {
		return g.dim - 1
	}
	return i
}

// forEachPair visits every unordered pair of ids whose cells lie within the
// neighborhood implied by maxRadius, exactly once per pair: same-cell pairs
// are ordered by slice position, and the cross-cell scan only looks forward
// (rightward on the same row, then every column of the rows below), so no
// pair is ever produced from both ends.
func (g *grid) forEachPair(maxRadius float64, visit func(a, b EntityID)) {
	reach := int(2*maxRadius/g.cellSize) + 1

	for y := 0; y < g.dim; y++ {
		for x := 0; x < g.dim; x++ {
			cell := g.cells[y*g.dim+x]
			if len(cell) == 0 {
				continue
			}

			for i := 0; i < len(cell); i++ {
				for j := i + 1; j < len(cell); j++ {
					visit(cell[i], cell[j])
				}
			}

			maxX := g.clampCell(x + reach)
			for x2 := x + 1; x2 <= maxX; x2++ {
				pairCells(cell, g.cells[y*g.dim+x2], visit)
			}

			maxY := g.clampCell(y + reach)
			minX := g.clampCell(x - reach)
			for y2 := y + 1; y2 <= maxY; y2++ {
				for x2 := minX; x2 <= maxX; x2++ {
					pairCells(cell, g.cells[y2*g.dim+x2], visit)
				}
			}
		}
	}
}

// pairCells visits the cross product of two distinct cells.
func pairCells(a, b []EntityID, visit func(a, b EntityID)) {
	if len(b) == 0 {
		return
	}
	for _, ia := range a {
		for _, ib := range b {
			visit(ia, ib)
		}
	}
}
