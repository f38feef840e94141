package sim

import "math"

// EntityID is a stable handle into the entity store. Entities are never
// removed, so an id stays valid for the life of the world.
type EntityID int

// noEntity marks "no entity" in optional id slots.
const noEntity EntityID = -1

// Kind tags what an entity is. It decides body parameters, the speed clamp,
// friction eligibility and the pickup collection rule.
type Kind uint8

const (
	KindCraft Kind = iota
	KindObstacle
	KindPickup
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindCraft:
		return "craft"
	case KindObstacle:
		return "obstacle"
	case KindPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Transform is a position plus a rotation in radians, wrapped to [0, 2π).
type Transform struct {
	Pos Vec2
	Rot float64
}

// Entity aggregates every simulation component. All entities carry the full
// record; Air/Score are meaningful only on the kinds that use them (HasAir
// marks a live supply counter).
type Entity struct {
	Kind   Kind
	Radius float64

	// Current transform, advanced by integration.
	Pos Vec2
	Rot float64

	// Prev snapshots the transform at the start of each tick; Render is the
	// blend between Prev and current written by InterpolateTransforms.
	Prev   Transform
	Render Transform

	Vel    Vec2
	AngVel float64

	// Air is a remaining-life counter in ticks, decremented once per tick
	// while HasAir is set, saturating at zero.
	Air    uint64
	HasAir bool

	// Score accumulates on the craft only.
	Score uint64

	// Thrusting is set while the controlled craft holds thrust; presentation
	// uses it to draw the exhaust flame.
	Thrusting bool

	damp        float64
	angDamp     float64
	restitution float64
	invMass     float64
	// Square root of the inverse angular inertia; squared on use. Zero for
	// bodies that never spin from impulses.
	invAngInertiaSqrt float64

	// Grid cell currently holding this entity, noCell when unlinked.
	cell int32
}

// Tunable body parameters. Inverse mass and inertia derive from radius and
// density; densities at or below the threshold mean an immovable body.
const (
	densityThreshold = 0.01

	craftDensity     = 1.0
	craftAngDensity  = 0.0
	craftDamp        = 0.01
	craftAngDamp     = 1.0
	craftRestitution = 0.3

	obstacleDensity     = 1.5
	obstacleAngDensity  = 1.0
	obstacleDamp        = 0.0
	obstacleAngDamp     = 0.0
	obstacleRestitution = 1.01 // slightly over-elastic so the field picks up energy

	pickupDensity     = 1.0
	pickupAngDensity  = 0.0
	pickupDamp        = 0.01
	pickupAngDamp     = 0.99
	pickupRestitution = 0.3

	pickupRadius = 100.0
)

// craftRadius is the circumradius of the craft silhouette (30x50 box).
var craftRadius = math.Sqrt(850)

// obstacleRadii are the circumradii of the six obstacle variants: two
// small, two medium, two large.
var obstacleRadii = [...]float64{42.97, 37.81, 125.23, 126.02, 189.03, 212.99}

// setBody fills the rigid-body fields from radius and density parameters.
func (e *Entity) setBody(radius, density, angDensity, damp, angDamp, restitution float64) {
	e.Radius = radius
	e.damp = damp
	e.angDamp = angDamp
	e.restitution = restitution
	if density > densityThreshold {
		e.invMass = 1 / (density * math.Pi * radius * radius)
	}
	if angDensity > densityThreshold {
		e.invAngInertiaSqrt = math.Sqrt2 / (math.Sqrt(angDensity*math.Pi) * radius * radius)
	}
}

// newCraft builds the player body: dense, heavily damped spin, moderate
// bounce, facing π so "forward" starts pointing up the screen.
func newCraft(supply uint64) Entity {
	e := Entity{
		Kind:   KindCraft,
		Rot:    math.Pi,
		Air:    supply,
		HasAir: true,
		cell:   noCell,
	}
	e.Prev.Rot = math.Pi
	e.setBody(craftRadius, craftDensity, craftAngDensity, craftDamp, craftAngDamp, craftRestitution)
	return e
}

// newObstacle builds a drifting obstacle with its variant, speed, heading
// and spin all sampled from the world seed.
func newObstacle(seed uint64, seq uint32, speed, spin Span) Entity {
	sp := randFloat(seed, seq, "speed", speed.Lo, speed.Hi)
	heading := randFloat(seed, seq, "heading", 0, 2*math.Pi)
	variant := randUint32(seed, seq, "variant", 0, uint32(len(obstacleRadii)))

	e := Entity{
		Kind:   KindObstacle,
		Vel:    Vec2{sp * math.Cos(heading), sp * math.Sin(heading)},
		AngVel: randFloat(seed, seq, "spin", spin.Lo, spin.Hi),
		cell:   noCell,
	}
	e.setBody(obstacleRadii[variant], obstacleDensity, obstacleAngDensity, obstacleDamp, obstacleAngDamp, obstacleRestitution)
	return e
}

// newPickup builds a supply pickup. It drifts only when shoved and decays
// like the craft does.
func newPickup(supply uint64) Entity {
	e := Entity{
		Kind:   KindPickup,
		Air:    supply,
		HasAir: true,
		cell:   noCell,
	}
	e.setBody(pickupRadius, pickupDensity, pickupAngDensity, pickupDamp, pickupAngDamp, pickupRestitution)
	return e
}

// forward returns the unit vector the entity's nose points along.
func (e *Entity) forward() Vec2 {
	return Vec2{-math.Sin(e.Rot), math.Cos(e.Rot)}
}

// rotate turns the entity by dr radians, keeping the rotation normalized.
func (e *Entity) rotate(dr float64) {
	e.Rot = wrapAngle(e.Rot + dr)
}

// velocityAt returns the world-space velocity of the body point at the
// given offset from the center, combining linear and angular motion.
func (e *Entity) velocityAt(offset Vec2) Vec2 {
	return Vec2{
		X: e.Vel.X - e.AngVel*offset.Y,
		Y: e.Vel.Y + e.AngVel*offset.X,
	}
}

// applyImpulse applies an instantaneous impulse at an offset from the
// center, changing linear velocity by inverse mass and angular velocity by
// the offset-cross-impulse torque.
func (e *Entity) applyImpulse(impulse, offset Vec2) {
	e.Vel = e.Vel.Add(impulse.Mul(e.invMass))
	e.AngVel += (offset.X*impulse.Y - offset.Y*impulse.X) * e.invAngInertiaSqrt * e.invAngInertiaSqrt
}

// pickPosition places the entity at a seeded random point in r, also
// resetting the previous transform so interpolation does not sweep across
// the jump.
func (e *Entity) pickPosition(seed uint64, seq uint32, r Rect) {
	pos := randVec2(seed, seq, "pos", r)
	e.Pos = pos
	e.Prev.Pos = pos
}
