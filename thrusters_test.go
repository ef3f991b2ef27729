package ranger

import (
	"errors"
	"math"
	"testing"
)

func TestPhaseString(t *testing.T) {
	if Idle.String() != "idle" || Burning.String() != "burning" || Exhausted.String() != "exhausted" {
		t.Fatal("invalid phase names")
	}
	assertPanic(t, func() {
		_ = Phase(42).String()
	})
}

func TestConstantMotorInvalid(t *testing.T) {
	for _, c := range []struct{ thrust, duration float64 }{{-1, 1}, {math.NaN(), 1}, {10, 0}, {10, -1}, {10, math.Inf(1)}} {
		if _, err := NewConstantMotor(c.thrust, c.duration); !errors.Is(err, ErrInvalidProfile) {
			t.Fatalf("NewConstantMotor(%f, %f): expected ErrInvalidProfile, got %v", c.thrust, c.duration, err)
		}
	}
}

func TestConstantMotor(t *testing.T) {
	m, err := NewConstantMotor(20, 1)
	if err != nil {
		t.Fatal(err)
	}
	if m.Thrust() != 0 {
		t.Fatal("idle constant motor should not thrust")
	}
	if err := m.Step(0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	m.Ignite()
	if err := m.Ignite(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	for i := 0; i < 4; i++ {
		m.Step(0.25)
		if m.Phase() != Burning || m.Thrust() != 20 {
			t.Fatalf("step #%d: %s", i, m)
		}
	}
	m.Step(0.25)
	if m.Phase() != Exhausted || m.Thrust() != 0 {
		t.Fatalf("expected exhaustion after the burn duration: %s", m)
	}
	m.Reset()
	if m.Phase() != Idle || m.Thrust() != 0 {
		t.Fatalf("reset: %s", m)
	}
}

func TestThrusterInterface(t *testing.T) {
	var _ Thruster = (*SolidMotor)(nil)
	var _ Thruster = (*ConstantMotor)(nil)
}

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("code did not panic")
		}
	}()
	f()
}
