package sim

import "math"

const (
	// velocityIterations approximates simultaneous multi-contact resolution
	// by sweeping the contact list several times.
	velocityIterations = 5
	// frictionCoeff scales the tangential impulse applied to obstacles on
	// the first sweep.
	frictionCoeff = 0.25
	// correctionPercent is the share of remaining penetration removed by
	// the positional pass.
	correctionPercent = 0.5
	// collectBonus is the flat score award per pickup collected, on top of
	// the absorbed supply.
	collectBonus = 1000
	// supplyTravelScale sizes a relocated pickup's supply from the travel
	// time needed to reach it at full speed.
	supplyTravelScale = 4.0
)

// isCollectPair reports whether a contact joins the craft with a pickup,
// which is handled by the collection rule instead of the impulse path.
func isCollectPair(a, b *Entity) bool {
	return (a.Kind == KindCraft && b.Kind == KindPickup) ||
		(a.Kind == KindPickup && b.Kind == KindCraft)
}

// resolveContacts runs the velocity sweeps and the positional correction
// over this tick's contacts, then performs at most one pickup relocation.
//
// Boundary contacts have no second body: the missing side contributes zero
// inverse mass and inertia and restitution 1.0 (so a wall bounce is capped
// by the body's own restitution), and receives no impulse.
func (w *World) resolveContacts(contacts []Contact) {
	relocate := noEntity
	var collectedAt Vec2

	for iter := 0; iter < velocityIterations; iter++ {
		for i := range contacts {
			c := &contacts[i]

			e1 := w.entities.get(c.A)
			var e2 *Entity
			if !c.Boundary {
				e1, e2 = w.entities.pair(c.A, c.B)
			}

			if e2 != nil && isCollectPair(e1, e2) {
				// Collection happens once per tick, on the first sweep; the
				// same pair can surface twice, so later hits are ignored.
				if iter == 0 && relocate == noEntity && e1.HasAir && e2.HasAir {
					craft, pickup, pickupID := e1, e2, c.B
					if craft.Kind != KindCraft {
						craft, pickup, pickupID = e2, e1, c.A
					}
					craft.Air += pickup.Air
					craft.Score += pickup.Air + collectBonus
					relocate = pickupID
					collectedAt = craft.Pos
				}
				continue
			}

			offset1 := c.Pos.Sub(e1.Pos)
			v1 := e1.velocityAt(offset1)

			var (
				offset2  Vec2
				v2       Vec2
				invMass2 float64
				invAng2  float64
			)
			restitution2 := 1.0
			if e2 != nil {
				offset2 = c.Pos.Sub(e2.Pos)
				v2 = e2.velocityAt(offset2)
				invMass2 = e2.invMass
				invAng2 = e2.invAngInertiaSqrt
				restitution2 = e2.restitution
			}

			delta := v2.Sub(v1)
			closing := delta.Dot(c.Normal)
			tangent := delta.Sub(c.Normal.Mul(closing))

			cross1 := (offset1.X*c.Normal.Y - offset1.Y*c.Normal.X) * e1.invAngInertiaSqrt
			cross2 := (-offset2.X*c.Normal.Y + offset2.Y*c.Normal.X) * invAng2
			denom := e1.invMass + invMass2 + cross1*cross1 + cross2*cross2

			if closing >= 0 {
				// Already separating.
				continue
			}

			if iter == 0 && tangent.LengthSq() > 1e-4 {
				// Tangential friction applies to obstacles only; with
				// frictionless normal impulses on circles it is the sole
				// source of angular velocity change.
				tangentImpulse := tangent.Mul(frictionCoeff / denom)
				if e1.Kind == KindObstacle {
					e1.applyImpulse(tangentImpulse, offset1)
				}
				if e2 != nil && e2.Kind == KindObstacle {
					e2.applyImpulse(tangentImpulse.Neg(), offset2)
				}
			}

			restitution := math.Min(e1.restitution, restitution2)
			impulse := c.Normal.Mul((1 + restitution) * closing / denom)
			e1.applyImpulse(impulse, offset1)
			if e2 != nil {
				e2.applyImpulse(impulse.Neg(), offset2)
			}
		}
	}

	// Positional pass: push overlapping bodies apart along the normal in
	// proportion to inverse mass, countering integration drift.
	for i := range contacts {
		c := &contacts[i]

		e1 := w.entities.get(c.A)
		var e2 *Entity
		if !c.Boundary {
			e1, e2 = w.entities.pair(c.A, c.B)
			if isCollectPair(e1, e2) {
				continue
			}
		}

		invMass2 := 0.0
		if e2 != nil {
			invMass2 = e2.invMass
		}
		correction := c.Normal.Mul(correctionPercent * math.Max(c.Depth, 0) / (e1.invMass + invMass2))
		e1.Pos = e1.Pos.Sub(correction.Mul(e1.invMass))
		if e2 != nil {
			e2.Pos = e2.Pos.Add(correction.Mul(invMass2))
		}
	}

	if relocate != noEntity {
		w.relocatePickup(relocate, collectedAt)
	}
}

// relocatePickup moves a collected pickup to a fresh seeded position over
// the whole arena and sizes its new supply so the craft can always reach it
// in time at full speed. The grid cell catches up on the next integration.
func (w *World) relocatePickup(id EntityID, collectedAt Vec2) {
	seq := w.nextSeq()
	p := w.entities.get(id)
	p.pickPosition(w.seed, seq, Rect{w.grid.min, w.grid.max})

	travelTicks := p.Pos.Dist(collectedAt) / maxCraftSpeed
	p.Air = uint64(supplyTravelScale * travelTicks)
}
