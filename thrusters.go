package ranger

import (
	"fmt"
)

// Phase defines the burn phase of a motor.
type Phase uint8

const (
	// Idle is the phase of a motor which has not been ignited since construction or the last reset.
	Idle Phase = iota
	// Burning is the phase of an ignited motor which still produces thrust.
	Burning
	// Exhausted is the terminal phase of a motor whose burn is over.
	Exhausted
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Burning:
		return "burning"
	case Exhausted:
		return "exhausted"
	}
	panic("cannot stringify unknown phase")
}

// Thruster defines a motor which can be stepped in time.
type Thruster interface {
	// Reset returns the motor to Idle and clears all burn progress.
	Reset()
	// Ignite starts the burn. Only valid from Idle.
	Ignite() error
	// Step advances the burn by dt seconds.
	Step(dt float64) error
	// Thrust returns the thrust in Newtons as of the last step.
	Thrust() float64
	// Phase returns the current phase of the motor.
	Phase() Phase
}

/* Available thrusters */

// ConstantMotor delivers a fixed thrust for a fixed duration.
type ConstantMotor struct {
	thrust, duration float64
	phase            Phase
	burningTime      float64
}

// NewConstantMotor returns a motor delivering thrust Newtons for duration seconds.
func NewConstantMotor(thrust, duration float64) (*ConstantMotor, error) {
	if !finite(thrust) || thrust < 0 {
		return nil, fmt.Errorf("%w: constant thrust %f", ErrInvalidProfile, thrust)
	}
	if !validStep(duration) {
		return nil, fmt.Errorf("%w: constant burn duration %f", ErrInvalidProfile, duration)
	}
	return &ConstantMotor{thrust: thrust, duration: duration}, nil
}

// Reset implements the Thruster interface.
func (m *ConstantMotor) Reset() {
	m.phase = Idle
	m.burningTime = 0
}

// Ignite implements the Thruster interface.
func (m *ConstantMotor) Ignite() error {
	if m.phase != Idle {
		return fmt.Errorf("%w: cannot ignite a motor which is %s", ErrInvalidTransition, m.phase)
	}
	m.phase = Burning
	return nil
}

// Step implements the Thruster interface.
func (m *ConstantMotor) Step(dt float64) error {
	if !validStep(dt) {
		return fmt.Errorf("%w: time step %f", ErrInvalidArgument, dt)
	}
	if m.phase != Burning {
		return nil
	}
	m.burningTime += dt
	if m.burningTime > m.duration {
		m.phase = Exhausted
	}
	return nil
}

// Thrust implements the Thruster interface.
func (m *ConstantMotor) Thrust() float64 {
	if m.phase == Burning {
		return m.thrust
	}
	return 0
}

// Phase implements the Thruster interface.
func (m *ConstantMotor) Phase() Phase {
	return m.phase
}

func (m *ConstantMotor) String() string {
	return fmt.Sprintf("constant %.3f N for %.3f s (%s)", m.thrust, m.duration, m.phase)
}
