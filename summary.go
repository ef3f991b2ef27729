package ranger

import (
	"fmt"
	"math"
)

// Summary gathers the performance figures of a thrust curve.
type Summary struct {
	Name          string  `json:"name"`
	TotalImpulse  float64 `json:"totalImpulse"`  // N*s
	AverageThrust float64 `json:"averageThrust"` // N
	PeakThrust    float64 `json:"peakThrust"`    // N
	BurnTime      float64 `json:"burnTime"`      // s
	Class         string  `json:"class"`
	Designation   string  `json:"designation"`
}

func (s Summary) String() string {
	return fmt.Sprintf("%s %s: %.3f N*s over %.3f s (avg %.3f N, peak %.3f N)", s.Name, s.Designation, s.TotalImpulse, s.BurnTime, s.AverageThrust, s.PeakThrust)
}

// Summarize computes the summary of the provided profile.
func Summarize(name string, p *Profile) Summary {
	impulse := p.TotalImpulse()
	avg := impulse / p.BurnTime()
	class := ImpulseClass(impulse)
	return Summary{
		Name:          name,
		TotalImpulse:  impulse,
		AverageThrust: avg,
		PeakThrust:    p.PeakThrust(),
		BurnTime:      p.BurnTime(),
		Class:         class,
		Designation:   fmt.Sprintf("%s%d", class, int(math.Round(avg))),
	}
}

// ImpulseClass returns the NAR motor class letter for a total impulse in N*s.
// Class A spans (1.25, 2.5] N*s and every following letter doubles the upper bound.
func ImpulseClass(impulse float64) string {
	switch {
	case impulse <= 0.3125:
		return "1/8A"
	case impulse <= 0.625:
		return "1/4A"
	case impulse <= 1.25:
		return "1/2A"
	}
	upper := 2.5
	for letter := 'A'; letter < 'Z'; letter++ {
		if impulse <= upper {
			return string(letter)
		}
		upper *= 2
	}
	return "Z"
}
