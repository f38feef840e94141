package sim

// Contact describes one detected overlap: either between two bodies, or
// between a body and an arena edge (Boundary set, B unused). Contacts are
// rebuilt every tick and consumed by the resolver.
type Contact struct {
	A        EntityID
	B        EntityID
	Boundary bool

	// Pos is the world contact point: the midpoint of the two surface
	// points for a pair, or the body center projected onto the edge.
	Pos Vec2
	// Normal is the unit collision normal, pointing from A toward B, or
	// from the body toward the violated edge.
	Normal Vec2
	// Depth is the penetration distance. The generator only emits
	// overlapping contacts, but the resolver still floors it at zero.
	Depth float64
}

// detectContacts appends this tick's contacts to dst and returns it: the
// broad phase feeds candidate pairs into the circle-circle test, then the
// four arena edges are probed for escaping bodies.
func (w *World) detectContacts(dst []Contact) []Contact {
	w.grid.forEachPair(w.maxRadius, func(a, b EntityID) {
		e1, e2 := w.entities.get(a), w.entities.get(b)

		delta := e2.Pos.Sub(e1.Pos)
		dist := delta.Length()
		minDist := e1.Radius + e2.Radius
		if dist >= minDist {
			return
		}

		// Coincident centers have no meaningful direction; push along +x.
		normal := Vec2{1, 0}
		if dist > 0 {
			normal = delta.Mul(1 / dist)
		}

		s1 := e1.Pos.Add(normal.Mul(e1.Radius))
		s2 := e2.Pos.Sub(normal.Mul(e2.Radius))
		dst = append(dst, Contact{
			A:      a,
			B:      b,
			Pos:    s1.Add(s2).Mul(0.5),
			Normal: normal,
			Depth:  minDist - dist,
		})
	})

	ul := w.grid.min
	lr := w.grid.max
	ur := Vec2{lr.X, ul.Y}
	ll := Vec2{ul.X, lr.Y}

	// Top edge: probe the strip along min Y.
	w.grid.probeRange(Rect{ul, ur}, w.maxRadius, func(id EntityID) {
		e := w.entities.get(id)
		if e.Pos.Y-e.Radius < ul.Y {
			dst = append(dst, Contact{
				A:        id,
				Boundary: true,
				Pos:      Vec2{e.Pos.X, ul.Y},
				Normal:   Vec2{0, -1},
				Depth:    ul.Y - (e.Pos.Y - e.Radius),
			})
		}
	})

	// Bottom edge.
	w.grid.probeRange(Rect{ll, lr}, w.maxRadius, func(id EntityID) {
		e := w.entities.get(id)
		if e.Pos.Y+e.Radius > ll.Y {
			dst = append(dst, Contact{
				A:        id,
				Boundary: true,
				Pos:      Vec2{e.Pos.X, ll.Y},
				Normal:   Vec2{0, 1},
				Depth:    (e.Pos.Y + e.Radius) - ll.Y,
			})
		}
	})

	// Left edge.
	w.grid.probeRange(Rect{ul, ll}, w.maxRadius, func(id EntityID) {
		e := w.entities.get(id)
		if e.Pos.X-e.Radius < ul.X {
			dst = append(dst, Contact{
				A:        id,
				Boundary: true,
				Pos:      Vec2{ul.X, e.Pos.Y},
				Normal:   Vec2{-1, 0},
				Depth:    ul.X - (e.Pos.X - e.Radius),
			})
		}
	})

	// Right edge.
	w.grid.probeRange(Rect{ur, lr}, w.maxRadius, func(id EntityID) {
		e := w.entities.get(id)
		if e.Pos.X+e.Radius > ur.X {
			dst = append(dst, Contact{
				A:        id,
				Boundary: true,
				Pos:      Vec2{ur.X, e.Pos.Y},
				Normal:   Vec2{1, 0},
				Depth:    (e.Pos.X + e.Radius) - ur.X,
			})
		}
	})

	return dst
}
