package ranger

import "errors"

var (
	// ErrInvalidProfile is returned when a thrust curve (or a constant motor) is malformed.
	ErrInvalidProfile = errors.New("ranger: invalid thrust profile")
	// ErrInvalidTransition is returned when a motor is ignited outside of the Idle phase.
	ErrInvalidTransition = errors.New("ranger: invalid phase transition")
	// ErrInvalidArgument is returned for non positive time steps and durations.
	ErrInvalidArgument = errors.New("ranger: invalid argument")
)
