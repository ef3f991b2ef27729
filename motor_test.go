package ranger

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func triangleMotor(t *testing.T) *SolidMotor {
	m, err := NewSolidMotor([]Knot{{0, 0}, {1, 10}, {2, 0}})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestMotorIdle(t *testing.T) {
	m := triangleMotor(t)
	if m.Phase() != Idle || m.Thrust() != 0 {
		t.Fatalf("fresh motor: %s", m)
	}
	// Stepping an idle motor does nothing.
	if err := m.Step(0.5); err != nil {
		t.Fatal(err)
	}
	if m.Phase() != Idle || m.Thrust() != 0 || m.BurningTime() != 0 {
		t.Fatalf("idle motor changed: %s", m)
	}
}

func TestMotorDoubleIgnite(t *testing.T) {
	m := triangleMotor(t)
	if err := m.Ignite(); err != nil {
		t.Fatal(err)
	}
	if err := m.Ignite(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	m.Reset()
	if err := m.Ignite(); err != nil {
		t.Fatalf("ignite after reset: %s", err)
	}
}

func TestMotorIgniteExhausted(t *testing.T) {
	m := triangleMotor(t)
	m.Ignite()
	m.Step(3)
	if m.Phase() != Exhausted {
		t.Fatalf("expected exhausted motor: %s", m)
	}
	if err := m.Ignite(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestMotorInvalidStep(t *testing.T) {
	m := triangleMotor(t)
	m.Ignite()
	for _, dt := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		if err := m.Step(dt); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("Step(%f): expected ErrInvalidArgument, got %v", dt, err)
		}
	}
	if m.BurningTime() != 0 {
		t.Fatal("invalid step changed the burn time")
	}
}

func TestMotorTriangle(t *testing.T) {
	m := triangleMotor(t)
	m.Ignite()
	if m.Thrust() != 0 {
		t.Fatal("no thrust expected before the first step")
	}
	exp := []float64{5, 10, 5, 0, 0}
	phases := []Phase{Burning, Burning, Burning, Burning, Exhausted}
	for i, e := range exp {
		if err := m.Step(0.5); err != nil {
			t.Fatal(err)
		}
		if m.Thrust() != e {
			t.Fatalf("step #%d: thrust = %f, expected %f", i, m.Thrust(), e)
		}
		if m.Phase() != phases[i] {
			t.Fatalf("step #%d: phase = %s, expected %s", i, m.Phase(), phases[i])
		}
	}
}

func TestMotorKnotExactness(t *testing.T) {
	// Every F15 knot is a multiple of 0.25 s, which is exactly representable.
	m := NewSolidMotorFromProfile(F15Profile())
	m.Ignite()
	knots := m.Profile().Knots()
	for m.Phase() == Burning {
		m.Step(0.25)
		for _, k := range knots {
			if k.Time == m.BurningTime() && m.Thrust() != k.Thrust {
				t.Fatalf("t=%f: thrust = %f, expected %f", k.Time, m.Thrust(), k.Thrust)
			}
		}
	}
}

func TestMotorExhaustionIdempotent(t *testing.T) {
	m := triangleMotor(t)
	m.Ignite()
	m.Step(2)
	if m.Phase() != Burning || m.Thrust() != 0 {
		t.Fatalf("landing on the final knot should still be burning: %s", m)
	}
	for i := 0; i < 100; i++ {
		m.Step(0.7)
		if m.Phase() != Exhausted || m.Thrust() != 0 {
			t.Fatalf("step #%d: %s", i, m)
		}
	}
}

func TestMotorLargeStep(t *testing.T) {
	for _, target := range []float64{0.3, 0.8, 1.1, 1.75, 2.6, 3.3} {
		small := NewSolidMotorFromProfile(F15Profile())
		small.Ignite()
		n := 1000
		for i := 0; i < n; i++ {
			small.Step(target / float64(n))
		}
		large := NewSolidMotorFromProfile(F15Profile())
		large.Ignite()
		large.Step(target)
		if !scalar.EqualWithinAbs(small.Thrust(), large.Thrust(), 1e-9) {
			t.Fatalf("t=%f: small steps %f != large step %f", target, small.Thrust(), large.Thrust())
		}
		if !scalar.EqualWithinAbs(large.Thrust(), large.Profile().ThrustAt(target), 1e-12) {
			t.Fatalf("t=%f: large step %f != profile %f", target, large.Thrust(), large.Profile().ThrustAt(target))
		}
	}
}

func TestMotorImplicitStart(t *testing.T) {
	m, err := NewSolidMotor([]Knot{{1, 10}, {2, 0}})
	if err != nil {
		t.Fatal(err)
	}
	m.Ignite()
	m.Step(0.5)
	if m.Thrust() != 5 {
		t.Fatalf("expected ramp from the implicit zero knot, got %f", m.Thrust())
	}
}

func TestMotorIgniteThrust(t *testing.T) {
	// Thrust at ignition is the thrust of the knot at t=0.
	m, err := NewSolidMotor([]Knot{{0, 5}, {1, 10}, {2, 0}})
	if err != nil {
		t.Fatal(err)
	}
	if m.Thrust() != 0 {
		t.Fatalf("idle motor should not thrust: %s", m)
	}
	m.Ignite()
	if m.Phase() != Burning || m.Thrust() != 5 {
		t.Fatalf("ignited motor: %s", m)
	}
	m.Step(0.5)
	if m.Thrust() != 7.5 {
		t.Fatalf("expected 7.5 N after half a second, got %f", m.Thrust())
	}
	m.Reset()
	if m.Thrust() != 0 {
		t.Fatalf("reset motor should not thrust: %s", m)
	}
}

func TestMotorThrustBounds(t *testing.T) {
	m, err := NewSolidMotor([]Knot{{0, 5}, {0.25, 12.5}, {0.5, 25}, {1, 15}, {3.5, 0}})
	if err != nil {
		t.Fatal(err)
	}
	m.Ignite()
	checkBounds := func() {
		if m.segmentStart >= m.segmentEnd {
			t.Fatalf("empty segment [%f, %f]", m.segmentStart, m.segmentEnd)
		}
		lo, hi := math.Min(m.thrustStart, m.thrustEnd), math.Max(m.thrustStart, m.thrustEnd)
		if m.Thrust() < lo || m.Thrust() > hi {
			t.Fatalf("t=%f: thrust %f outside [%f, %f]", m.BurningTime(), m.Thrust(), lo, hi)
		}
	}
	checkBounds()
	for m.Phase() == Burning {
		m.Step(0.01)
		if m.Phase() != Burning {
			break
		}
		checkBounds()
	}
}

func TestMotorReset(t *testing.T) {
	m := triangleMotor(t)
	m.Ignite()
	m.Step(0.5)
	m.Reset()
	if m.Phase() != Idle || m.Thrust() != 0 || m.BurningTime() != 0 {
		t.Fatalf("reset motor: %s", m)
	}
	if m.Profile() == nil {
		t.Fatal("reset dropped the profile")
	}
}
