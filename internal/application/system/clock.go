package system

// ClockSystem advances the night clock and watches for sunrise.
type ClockSystem struct {
	level   *Level
	sunrise float64
	risen   bool
}

// NewClockSystem creates a clock. A non-positive sunrise never fires.
func NewClockSystem(level *Level, sunrise float64) *ClockSystem {
	return &ClockSystem{level: level, sunrise: sunrise}
}

// Update adds dt to the night and the level time. It returns true on the
// tick the night reaches sunrise.
func (s *ClockSystem) Update(dt float64) bool {
	s.level.State.Advance(dt)
	s.level.Elapsed += dt

	if s.risen || s.sunrise <= 0 || s.level.State.SurvivedSeconds < s.sunrise {
		return false
	}
	s.risen = true
	return true
}
