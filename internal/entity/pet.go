// Package entity provides the simulated pet and its state-update rules.
package entity

import "math"

const (
	// MaxAttribute is the ceiling of every pet attribute and its starting value.
	MaxAttribute = 10
	// MinAttribute is the floor of every pet attribute.
	MinAttribute = 0

	// lowThreshold marks an attribute as low when it drops strictly below it.
	lowThreshold = 5
	// medicinePoison is taken from poisoning whenever the pet is healed.
	medicinePoison = 3
	// lowFlagsToDie is how many low flags at once are fatal.
	lowFlagsToDie = 2
)

// Status holds the conditions derived from the pet's attributes on each update.
type Status struct {
	Sick     bool // health is low
	Hungry   bool // hunger is low
	Poisoned bool // poisoning is low
	Dead     bool // sticky, never cleared once set
}

// lowCount returns how many of the three low flags are set.
func (s Status) lowCount() int {
	n := 0
	for _, set := range []bool{s.Sick, s.Hungry, s.Poisoned} {
		if set {
			n++
		}
	}
	return n
}

// Pet is the single simulated creature.
//
// A Pet is not safe for concurrent use. The owner must serialize calls to Update.
type Pet struct {
	hunger    int
	health    int
	poisoning int
	status    Status
	face      Face
}

// NewPet creates a pet with every attribute at maximum and its healthy face drawn.
func NewPet() *Pet {
	p := &Pet{
		hunger:    MaxAttribute,
		health:    MaxAttribute,
		poisoning: MaxAttribute,
	}
	p.face.draw(p.status)
	return p
}

// Update applies attribute deltas, recomputes the status flags and redraws the face.
// Once the pet is dead, Update does nothing.
func (p *Pet) Update(hungerDelta, healthDelta, poisonDelta int) {
	if p.status.Dead {
		return
	}

	p.hunger = saturatingAdd(p.hunger, hungerDelta)
	p.health = saturatingAdd(p.health, healthDelta)
	if healthDelta > 0 {
		// Medicine has a side effect.
		p.poisoning = saturatingAdd(p.poisoning, -medicinePoison)
	}
	p.poisoning = saturatingAdd(p.poisoning, poisonDelta)

	p.hunger = p.evaluate(p.hunger, &p.status.Hungry)
	p.health = p.evaluate(p.health, &p.status.Sick)
	p.poisoning = p.evaluate(p.poisoning, &p.status.Poisoned)

	if p.status.lowCount() >= lowFlagsToDie {
		p.status.Dead = true
	}

	p.face.draw(p.status)
}

// evaluate updates the low flag for a pre-clamp attribute value and returns the clamped value.
// A value at or below the floor kills the pet and leaves the low flag as it was.
func (p *Pet) evaluate(value int, low *bool) int {
	switch {
	case value <= MinAttribute:
		p.status.Dead = true
	case value < lowThreshold:
		*low = true
	default:
		*low = false
	}
	return clamp(value)
}

// IsDead reports whether the pet has died.
func (p *Pet) IsDead() bool {
	return p.status.Dead
}

// Status returns the current status flags.
func (p *Pet) Status() Status {
	return p.status
}

// Hunger returns the current hunger level.
func (p *Pet) Hunger() int { return p.hunger }

// Health returns the current health level.
func (p *Pet) Health() int { return p.health }

// Poisoning returns the current poisoning level. Higher means less poisoned.
func (p *Pet) Poisoning() int { return p.poisoning }

// Render returns a copy of everything a display needs. It does not mutate the pet.
func (p *Pet) Render() Frame {
	return Frame{
		Face:      p.face,
		Hunger:    p.hunger,
		Health:    p.health,
		Poisoning: p.poisoning,
		Status:    p.status,
	}
}

// Frame is a read-only copy of the pet for display.
type Frame struct {
	Face      Face
	Hunger    int
	Health    int
	Poisoning int
	Status    Status
}

// IsDead reports whether the frame shows a dead pet.
func (f Frame) IsDead() bool { return f.Status.Dead }

func saturatingAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}

func clamp(v int) int {
	if v < MinAttribute {
		return MinAttribute
	}
	if v > MaxAttribute {
		return MaxAttribute
	}
	return v
}
