package ranger

import (
	"fmt"
	"sync"

	kitlog "github.com/go-kit/kit/log"
	"gonum.org/v1/gonum/floats"
)

// Sample is the thrust of a motor at a given simulation time.
type Sample struct {
	Time   float64 // seconds
	Thrust float64 // Newtons
}

// Series is an ordered sequence of samples.
type Series []Sample

// Times returns the sample times.
func (s Series) Times() []float64 {
	t := make([]float64, len(s))
	for i, sample := range s {
		t[i] = sample.Time
	}
	return t
}

// Thrusts returns the sampled thrust values.
func (s Series) Thrusts() []float64 {
	th := make([]float64, len(s))
	for i, sample := range s {
		th[i] = sample.Thrust
	}
	return th
}

// Peak returns the maximum sampled thrust, or zero for an empty series.
func (s Series) Peak() float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Max(s.Thrusts())
}

// Impulse returns the trapezoidal integral of the sampled thrust in N*s.
func (s Series) Impulse() float64 {
	if len(s) < 2 {
		return 0
	}
	slices := make([]float64, len(s)-1)
	for i := 1; i < len(s); i++ {
		slices[i-1] = 0.5 * (s[i-1].Thrust + s[i].Thrust) * (s[i].Time - s[i-1].Time)
	}
	return floats.Sum(slices)
}

// Simulate resets and ignites the motor, then steps it by dt over [0, totalTime).
// The returned series starts with the pre-ignition sample at t=0, followed by one
// sample per step, stamped with the burn time reached by that step.
func Simulate(m Thruster, dt, totalTime float64) (Series, error) {
	return NewSimulation(m, dt, totalTime, kitlog.NewNopLogger(), ExportConfig{}).Run()
}

// Simulation drives a single motor and optionally exports the samples.
type Simulation struct {
	Motor    Thruster
	step     float64
	duration float64
	logger   kitlog.Logger
	conf     ExportConfig
}

// NewSimulation returns a new Simulation. Use a nil logger to log nothing.
func NewSimulation(m Thruster, dt, totalTime float64, logger kitlog.Logger, conf ExportConfig) *Simulation {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &Simulation{Motor: m, step: dt, duration: totalTime, logger: kitlog.With(logger, "subsys", "motor"), conf: conf}
}

// Run performs the simulation. Any motor error aborts the run and is returned.
// When exporting, Run only returns once all samples have been written.
func (s *Simulation) Run() (Series, error) {
	if !validStep(s.step) {
		return nil, fmt.Errorf("%w: time step %f", ErrInvalidArgument, s.step)
	}
	if !finite(s.duration) || s.duration < 0 {
		return nil, fmt.Errorf("%w: simulation duration %f", ErrInvalidArgument, s.duration)
	}
	n, ok := stepCount(s.step, s.duration)
	if !ok {
		return nil, fmt.Errorf("%w: %g s at %g s steps exceeds %d steps", ErrInvalidArgument, s.duration, s.step, maxSteps)
	}
	var (
		wg        sync.WaitGroup
		histChan  chan Sample
		exportErr error
	)
	if !s.conf.IsUseless() {
		histChan = make(chan Sample, 1000) // a 1k entry buffer
		wg.Add(1)
		go func() {
			defer wg.Done()
			exportErr = StreamSamples(s.conf, histChan)
		}()
	}

	series, err := s.run(n, histChan)
	if histChan != nil {
		close(histChan)
		wg.Wait() // Don't return until we're done writing the file.
	}
	if err != nil {
		return nil, err
	}
	if exportErr != nil {
		return series, exportErr
	}
	if s.conf.Summary {
		if sm, ok := s.Motor.(*SolidMotor); ok {
			if err := WriteSummary(s.conf, Summarize(s.conf.Filename, sm.Profile())); err != nil {
				return series, err
			}
		} else {
			s.logger.Log("level", "warning", "message", "summary only available for solid motors")
		}
	}
	return series, nil
}

func (s *Simulation) run(n int, histChan chan<- Sample) (Series, error) {
	series := make(Series, 0, n+1)
	record := func(sample Sample) {
		series = append(series, sample)
		if histChan != nil {
			histChan <- sample
		}
	}

	s.Motor.Reset()
	record(Sample{0, s.Motor.Thrust()})
	if err := s.Motor.Ignite(); err != nil {
		return nil, err
	}
	s.logger.Log("level", "info", "status", "ignited", "step(s)", s.step, "steps", n)

	prevPhase := s.Motor.Phase()
	for k := 1; k <= n; k++ {
		if err := s.Motor.Step(s.step); err != nil {
			s.logger.Log("level", "error", "step", k, "err", err)
			return nil, err
		}
		t := float64(k) * s.step
		record(Sample{t, s.Motor.Thrust()})
		if phase := s.Motor.Phase(); phase != prevPhase {
			s.logger.Log("level", "notice", "status", phase, "t(s)", t)
			prevPhase = phase
		}
	}
	s.logger.Log("level", "info", "status", "finished", "samples", len(series), "impulse(Ns)", series.Impulse(), "peak(N)", series.Peak())
	return series, nil
}
