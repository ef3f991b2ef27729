package ranger

import (
	"fmt"
	"strings"
)

// Knot is a point of a thrust curve: a time in seconds since ignition and a thrust in Newtons.
type Knot struct {
	Time   float64 `json:"t" yaml:"t"`
	Thrust float64 `json:"th" yaml:"th"`
}

func (k Knot) String() string {
	return fmt.Sprintf("(%.3f s, %.3f N)", k.Time, k.Thrust)
}

// Profile is an immutable piecewise-linear thrust curve.
// Consecutive knots bound a segment within which the thrust is linearly interpolated.
// If the first knot is after t=0, the burn starts from an implicit (0, 0) knot.
type Profile struct {
	knots []Knot
}

// NewProfile validates the provided knots and returns a new Profile.
// The knots are copied, so later changes to the slice do not affect the profile.
func NewProfile(knots []Knot) (*Profile, error) {
	if len(knots) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 knots, got %d", ErrInvalidProfile, len(knots))
	}
	for i, k := range knots {
		if !finite(k.Time) || !finite(k.Thrust) {
			return nil, fmt.Errorf("%w: knot #%d %s is not finite", ErrInvalidProfile, i, k)
		}
		if k.Time < 0 || k.Thrust < 0 {
			return nil, fmt.Errorf("%w: knot #%d %s is negative", ErrInvalidProfile, i, k)
		}
		if i > 0 && k.Time <= knots[i-1].Time {
			return nil, fmt.Errorf("%w: knot #%d at %f s is not after %f s", ErrInvalidProfile, i, k.Time, knots[i-1].Time)
		}
	}
	if last := knots[len(knots)-1]; last.Thrust != 0 {
		return nil, fmt.Errorf("%w: burn must end at zero thrust, last knot is %s", ErrInvalidProfile, last)
	}
	p := &Profile{knots: make([]Knot, len(knots))}
	copy(p.knots, knots)
	return p, nil
}

// Knots returns a copy of the knots of this profile.
func (p *Profile) Knots() []Knot {
	k := make([]Knot, len(p.knots))
	copy(k, p.knots)
	return k
}

// Len returns the number of knots.
func (p *Profile) Len() int {
	return len(p.knots)
}

// knot returns the i-th knot without copying.
func (p *Profile) knot(i int) Knot {
	return p.knots[i]
}

// BurnTime returns the time of the final (zero thrust) knot.
func (p *Profile) BurnTime() float64 {
	return p.knots[len(p.knots)-1].Time
}

// ThrustAt returns the interpolated thrust at burn time t. It returns zero before ignition and after burn out.
func (p *Profile) ThrustAt(t float64) float64 {
	if t < 0 || t > p.BurnTime() {
		return 0
	}
	prev := Knot{}
	for _, k := range p.knots {
		if t > k.Time {
			prev = k
			continue
		}
		if t == k.Time {
			return k.Thrust
		}
		return clamp(lerp(prev.Thrust, k.Thrust, (t-prev.Time)/(k.Time-prev.Time)), prev.Thrust, k.Thrust)
	}
	return 0
}

// TotalImpulse returns the exact integral of the thrust curve in N*s.
func (p *Profile) TotalImpulse() (impulse float64) {
	prev := Knot{}
	for _, k := range p.knots {
		impulse += 0.5 * (prev.Thrust + k.Thrust) * (k.Time - prev.Time)
		prev = k
	}
	return
}

// PeakThrust returns the maximum thrust of the curve.
func (p *Profile) PeakThrust() (peak float64) {
	for _, k := range p.knots {
		if k.Thrust > peak {
			peak = k.Thrust
		}
	}
	return
}

func (p *Profile) String() string {
	parts := make([]string, len(p.knots))
	for i, k := range p.knots {
		parts[i] = k.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// F15Profile returns the thrust curve of an F15 class hobby motor.
func F15Profile() *Profile {
	p, err := NewProfile([]Knot{
		{0.0, 0.0},
		{0.25, 12.5},
		{0.5, 25},
		{0.75, 16.5},
		{1, 15.25},
		{1.25, 15},
		{2.5, 14},
		{3, 13},
		{3.25, 13},
		{3.5, 0.0},
	})
	if err != nil {
		panic(err)
	}
	return p
}
