package entity

// Mood is a one-word summary of the pet's status.
type Mood int

const (
	MoodHealthy Mood = iota
	MoodPoisoned
	MoodHungry
	MoodSick
	MoodDead
)

// String returns a human-readable mood name.
func (m Mood) String() string {
	switch m {
	case MoodHealthy:
		return "healthy"
	case MoodPoisoned:
		return "poisoned"
	case MoodHungry:
		return "hungry"
	case MoodSick:
		return "sick"
	case MoodDead:
		return "dead"
	default:
		return "unknown"
	}
}

// DetermineMood picks the most pressing condition.
// Priority: Dead > Sick > Hungry > Poisoned > Healthy
func DetermineMood(s Status) Mood {
	switch {
	case s.Dead:
		return MoodDead
	case s.Sick:
		return MoodSick
	case s.Hungry:
		return MoodHungry
	case s.Poisoned:
		return MoodPoisoned
	default:
		return MoodHealthy
	}
}

// Mood returns the frame's mood.
func (f Frame) Mood() Mood {
	return DetermineMood(f.Status)
}
