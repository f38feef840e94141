package sim

import (
	"math"
	"time"
)

const (
	// TickRate is the fixed simulation rate in ticks per second. Velocities
	// are measured in world units per tick.
	TickRate = 30

	// tickMicros is the virtual-time cost of one tick.
	tickMicros = 1_000_000 / TickRate

	// gridDim is the spatial index resolution per axis.
	gridDim = 25

	// maxCraftSpeed caps the craft's linear speed so pickups stay
	// reachable; obstacles and pickups are not clamped.
	maxCraftSpeed = 30.0

	// turnRate is the craft's fixed rotation per tick while turning.
	turnRate = 0.15

	// thrustDelta is the velocity gained per tick of held thrust, along
	// the craft's forward axis.
	thrustDelta = 1.0

	// placementRetries bounds the reposition attempts when a spawn point
	// overlaps an existing body.
	placementRetries = 10

	// Default life counters, in ticks.
	defaultCraftSupply  = TickRate * 60
	defaultPickupSupply = TickRate * 15
)

// World owns the whole simulation: the entity store, the spatial index,
// the input cache and virtual time. One goroutine drives it; nothing in
// here blocks or suspends, and a call to Update either completes every
// scheduled tick or panics on a defect.
type World struct {
	seed uint64
	// seq makes every random sample unique; bumped per construction call
	// and per pickup relocation.
	seq       uint32
	maxRadius float64

	entities store
	grid     grid
	input    inputCache

	controlled    EntityID
	exitRequested bool
	redrawNeeded  bool

	virtualMicros uint64
	lastTick      uint32

	craftSupply  uint64
	pickupSupply uint64

	// contacts is scratch space reused across ticks.
	contacts []Contact
}

// NewWorld creates an empty world over a square arena spanning
// [-halfExtent, halfExtent] on both axes. The seed fixes every random
// decision the world will ever make.
func NewWorld(seed uint64, halfExtent float64) *World {
	return &World{
		seed:         seed,
		grid:         newGrid(gridDim, halfExtent),
		controlled:   noEntity,
		redrawNeeded: true,
		craftSupply:  defaultCraftSupply,
		pickupSupply: defaultPickupSupply,
	}
}

// nextSeq returns a fresh sequence number for seeding a random decision.
func (w *World) nextSeq() uint32 {
	w.seq++
	return w.seq
}

// Seed returns the world seed.
func (w *World) Seed() uint64 {
	return w.seed
}

// Bounds returns the arena rectangle.
func (w *World) Bounds() Rect {
	return Rect{w.grid.min, w.grid.max}
}

// Ticks returns how many fixed ticks have run since creation.
func (w *World) Ticks() uint32 {
	return w.lastTick
}

// SetSupplyTicks overrides the initial supply granted to crafts and
// pickups created afterwards. Zero keeps the current value.
func (w *World) SetSupplyTicks(craft, pickup uint64) {
	if craft > 0 {
		w.craftSupply = craft
	}
	if pickup > 0 {
		w.pickupSupply = pickup
	}
}

// AddCraft creates the player body at a seeded position inside r. Craft
// placement always succeeds, falling back to an overlapping spot once the
// retry budget is exhausted.
func (w *World) AddCraft(r Rect) EntityID {
	id, _ := w.addEntity(newCraft(w.craftSupply), r, true)
	return id
}

// AddObstacle creates a drifting obstacle with speed and spin sampled from
// the given spans. Placement may fail when no free spot is found within the
// retry budget; ok is false and no entity is created.
func (w *World) AddObstacle(r Rect, speed, spin Span) (id EntityID, ok bool) {
	return w.addEntity(newObstacle(w.seed, w.nextSeq(), speed, spin), r, false)
}

// AddPickup creates a supply pickup at a seeded position inside r. Like the
// craft, placement always succeeds.
func (w *World) AddPickup(r Rect) EntityID {
	id, _ := w.addEntity(newPickup(w.pickupSupply), r, true)
	return id
}

// addEntity places e at a seeded position inside r, rejecting spots that
// overlap existing bodies for up to placementRetries repositions. When the
// budget runs out, anyway decides between forcing the last candidate in and
// reporting failure.
func (w *World) addEntity(e Entity, r Rect, anyway bool) (EntityID, bool) {
	// Shrink the spawn window so the body fits fully inside the arena.
	if r.Min.X < w.grid.min.X+e.Radius {
		r.Min.X = w.grid.min.X + e.Radius
	}
	if r.Min.Y < w.grid.min.Y+e.Radius {
		r.Min.Y = w.grid.min.Y + e.Radius
	}
	if r.Max.X > w.grid.max.X-e.Radius {
		r.Max.X = w.grid.max.X - e.Radius
	}
	if r.Max.Y > w.grid.max.Y-e.Radius {
		r.Max.Y = w.grid.max.Y - e.Radius
	}

	e.pickPosition(w.seed, w.nextSeq(), r)
	if e.Radius > w.maxRadius {
		w.maxRadius = e.Radius
	}

	for i := 1; i <= placementRetries; i++ {
		if !w.occupied(&e) {
			break
		}
		if i == placementRetries && !anyway {
			return noEntity, false
		}
		e.pickPosition(w.seed, w.nextSeq(), r)
	}

	id := w.entities.insert(e)
	ent := w.entities.get(id)
	w.grid.update(id, ent.Pos, &ent.cell)
	return id, true
}

// occupied reports whether e's current position overlaps any placed body.
func (w *World) occupied(e *Entity) bool {
	ext := Vec2{e.Radius, e.Radius}
	probe := Rect{e.Pos.Sub(ext), e.Pos.Add(ext)}

	hit := false
	w.grid.probeRange(probe, w.maxRadius, func(other EntityID) {
		o := w.entities.get(other)
		if e.Pos.Dist(o.Pos) < e.Radius+o.Radius {
			hit = true
		}
	})
	return hit
}

// SetControlledEntity hands control input to the given entity. The id must
// be valid.
func (w *World) SetControlledEntity(id EntityID) {
	w.entities.get(id)
	w.controlled = id
}

// ControlledEntity returns the controlled entity id, if one is set.
func (w *World) ControlledEntity() (EntityID, bool) {
	return w.controlled, w.controlled != noEntity
}

// ExitRequested reports whether the quit key was seen. The flag latches.
func (w *World) ExitRequested() bool {
	return w.exitRequested
}

// RedrawNeeded reports whether simulation state changed since the host
// last interpolated transforms for presentation.
func (w *World) RedrawNeeded() bool {
	return w.redrawNeeded
}

// Entity returns the entity for id, panicking on an invalid id.
func (w *World) Entity(id EntityID) *Entity {
	return w.entities.get(id)
}

// Each calls fn for every entity in id order.
func (w *World) Each(fn func(EntityID, *Entity)) {
	w.entities.each(fn)
}

// EntityCount returns how many entities exist.
func (w *World) EntityCount() int {
	return w.entities.len()
}

// HandleInput buffers one key edge for the coming ticks.
func (w *World) HandleInput(ev InputEvent) {
	w.input.handle(ev)
}

// Update advances virtual time by elapsed and runs every fixed tick that
// became due: zero on fast frames, several on catch-up frames. The edge
// queues are cleared after each executed tick, so a frame that runs no
// ticks keeps pending edges for the next one.
func (w *World) Update(elapsed time.Duration) int {
	if elapsed > 0 {
		w.virtualMicros += uint64(elapsed / time.Microsecond)
	}
	tick := uint32(w.virtualMicros / tickMicros)
	n := int(tick - w.lastTick)
	w.lastTick = tick

	if w.input.wasPressed(KeyQuit) || w.input.wasReleased(KeyQuit) {
		w.exitRequested = true
	}

	for i := 0; i < n; i++ {
		w.stepTick()
	}

	w.redrawNeeded = true
	return n
}

// stepTick runs the seven phases of one fixed tick, strictly ordered.
func (w *World) stepTick() {
	w.snapshotTransforms()
	w.applyControls()
	w.integrate()
	w.contacts = w.detectContacts(w.contacts[:0])
	w.resolveContacts(w.contacts)
	w.decaySupply()
	w.input.clearEvents()
}

// snapshotTransforms records every entity's transform before integration,
// the "previous" end of the render interpolation.
func (w *World) snapshotTransforms() {
	w.entities.each(func(_ EntityID, e *Entity) {
		e.Prev = Transform{Pos: e.Pos, Rot: e.Rot}
	})
}

// applyControls turns held keys into rotation and thrust on the controlled
// entity. A craft whose supply ran out no longer answers the helm.
func (w *World) applyControls() {
	if w.controlled == noEntity {
		return
	}
	e := w.entities.get(w.controlled)
	if !e.HasAir || e.Air == 0 {
		e.Thrusting = false
		return
	}

	left := w.input.isDown(KeyLeft)
	right := w.input.isDown(KeyRight)
	switch {
	case left && !right:
		e.rotate(-turnRate)
	case right && !left:
		e.rotate(turnRate)
	}

	if w.input.isDown(KeyThrust) {
		e.Vel = e.Vel.Add(e.forward().Mul(thrustDelta))
		e.Thrusting = true
	} else {
		e.Thrusting = false
	}
}

// integrate advances transforms by one tick of velocity, refreshes each
// entity's grid cell from the post-move position, then applies damping and
// the craft speed clamp.
func (w *World) integrate() {
	w.entities.each(func(id EntityID, e *Entity) {
		e.Pos = e.Pos.Add(e.Vel)
		e.Rot = wrapAngle(e.Rot + e.AngVel)
		w.grid.update(id, e.Pos, &e.cell)

		e.Vel = e.Vel.Mul(1 - e.damp)
		e.AngVel *= 1 - e.angDamp
		if e.Kind == KindCraft {
			if speed := e.Vel.Length(); speed > maxCraftSpeed {
				e.Vel = e.Vel.Mul(maxCraftSpeed / speed)
			}
		}
	})
}

// decaySupply burns one tick of life from every entity that has a supply
// counter, saturating at zero.
func (w *World) decaySupply() {
	w.entities.each(func(_ EntityID, e *Entity) {
		if e.HasAir && e.Air > 0 {
			e.Air--
		}
	})
}

// Alpha returns the fractional progress toward the next tick, in [0, 1).
func (w *World) Alpha() float64 {
	return float64(w.virtualMicros%tickMicros) / float64(tickMicros)
}

// InterpolateTransforms blends every entity's render transform between its
// previous and current tick states using the current interpolation factor.
// Rotation blends along the shortest angular path. Call after Update and
// before reading render transforms.
func (w *World) InterpolateTransforms() {
	alpha := w.Alpha()
	w.entities.each(func(_ EntityID, e *Entity) {
		e.Render.Pos = e.Prev.Pos.Add(e.Pos.Sub(e.Prev.Pos).Mul(alpha))

		delta := e.Rot - e.Prev.Rot
		if delta > math.Pi {
			delta -= 2 * math.Pi
		} else if delta < -math.Pi {
			delta += 2 * math.Pi
		}
		e.Render.Rot = e.Prev.Rot + alpha*delta
	})
	w.redrawNeeded = false
}
