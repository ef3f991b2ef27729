package ranger

import (
	"fmt"
)

// SolidMotor is a solid rocket motor whose thrust follows a Profile.
// A SolidMotor must only be driven by a single caller.
type SolidMotor struct {
	profile     *Profile
	phase       Phase
	burningTime float64
	// Cursor into the profile knots: index of the next unconsumed knot.
	segmentIndex             int
	segmentStart, segmentEnd float64
	thrustStart, thrustEnd   float64
	currentThrust            float64
}

// NewSolidMotor returns an idle motor for the provided knots.
func NewSolidMotor(knots []Knot) (*SolidMotor, error) {
	p, err := NewProfile(knots)
	if err != nil {
		return nil, err
	}
	return NewSolidMotorFromProfile(p), nil
}

// NewSolidMotorFromProfile returns an idle motor for an already validated profile.
// Profiles are immutable, so several motors may share the same one.
func NewSolidMotorFromProfile(p *Profile) *SolidMotor {
	return &SolidMotor{profile: p}
}

// Profile returns the thrust curve of this motor.
func (m *SolidMotor) Profile() *Profile {
	return m.profile
}

// Reset implements the Thruster interface.
func (m *SolidMotor) Reset() {
	*m = SolidMotor{profile: m.profile}
}

// Ignite implements the Thruster interface.
func (m *SolidMotor) Ignite() error {
	if m.phase != Idle {
		return fmt.Errorf("%w: cannot ignite a motor which is %s", ErrInvalidTransition, m.phase)
	}
	m.phase = Burning
	// The first segment starts at the implicit (0, 0) knot, unless the profile starts at t=0.
	m.segmentIndex = 0
	m.segmentEnd, m.thrustEnd = 0, 0
	m.advance()
	if m.segmentStart == m.segmentEnd {
		m.advance()
	}
	m.currentThrust = m.thrustStart
	return nil
}

// advance moves the active segment to the next knot pair.
func (m *SolidMotor) advance() {
	k := m.profile.knot(m.segmentIndex)
	m.segmentIndex++
	m.segmentStart, m.thrustStart = m.segmentEnd, m.thrustEnd
	m.segmentEnd, m.thrustEnd = k.Time, k.Thrust
}

// Step implements the Thruster interface.
// Every knot crossed during the step is consumed in order. Landing exactly on the
// final knot keeps the motor burning; the following step exhausts it.
func (m *SolidMotor) Step(dt float64) error {
	if !validStep(dt) {
		return fmt.Errorf("%w: time step %f", ErrInvalidArgument, dt)
	}
	if m.phase != Burning {
		return nil
	}
	m.burningTime += dt
	for m.burningTime > m.segmentEnd {
		if m.segmentIndex == m.profile.Len() {
			m.phase = Exhausted
			m.currentThrust = 0
			return nil
		}
		m.advance()
	}
	if m.burningTime == m.segmentEnd {
		m.currentThrust = m.thrustEnd
		return nil
	}
	f := (m.burningTime - m.segmentStart) / (m.segmentEnd - m.segmentStart)
	m.currentThrust = clamp(lerp(m.thrustStart, m.thrustEnd, f), m.thrustStart, m.thrustEnd)
	return nil
}

// Thrust implements the Thruster interface.
func (m *SolidMotor) Thrust() float64 {
	return m.currentThrust
}

// Phase implements the Thruster interface.
func (m *SolidMotor) Phase() Phase {
	return m.phase
}

// BurningTime returns the cumulative burn time since ignition.
func (m *SolidMotor) BurningTime() float64 {
	return m.burningTime
}

func (m *SolidMotor) String() string {
	return fmt.Sprintf("solid motor %s t=%.3f s thrust=%.3f N", m.phase, m.burningTime, m.currentThrust)
}
