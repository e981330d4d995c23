package composer

import "errors"

// EnvError wraps errors produced by the composition environment
// together with the operation that produced them.
type EnvError struct {
	Op  string
	Err error
}

// Error satisfies the error interface
func (e *EnvError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the wrapped error
func (e *EnvError) Unwrap() error {
	return e.Err
}

// Configuration errors reported by New
var (
	ErrNonPositiveLength = errors.New("maximum trajectory length must be " +
		"positive")
	ErrNonPositiveVoices = errors.New("number of pitches must be positive")
	ErrNilScorer         = errors.New("scorer must be non-nil")
)

var (
	// ErrOutOfBoundsStep is reported by Step once the trajectory is
	// full and the episode has terminated
	ErrOutOfBoundsStep = errors.New("trajectory already full")

	// ErrBadActionShape is reported by Step when an action does not
	// have one value per pitch
	ErrBadActionShape = errors.New("action has wrong number of values")

	// ErrUnsupportedMode is reported by Render for render modes the
	// environment does not implement
	ErrUnsupportedMode = errors.New("unsupported render mode")

	// ErrFileWrite is reported by Render and SaveMidi when a MIDI file
	// cannot be written
	ErrFileWrite = errors.New("could not write MIDI file")
)

// IsConfigurationError returns whether or not an error reports an
// invalid environment configuration
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrNonPositiveLength) ||
		errors.Is(err, ErrNonPositiveVoices) ||
		errors.Is(err, ErrNilScorer)
}

// IsOutOfBoundsStep returns whether or not an error reports a step
// taken after the episode already terminated
func IsOutOfBoundsStep(err error) bool {
	return errors.Is(err, ErrOutOfBoundsStep)
}

// IsUnsupportedMode returns whether or not an error reports an
// unsupported render mode
func IsUnsupportedMode(err error) bool {
	return errors.Is(err, ErrUnsupportedMode)
}

// IsFileWriteError returns whether or not an error reports a failed
// MIDI file write
func IsFileWriteError(err error) bool {
	return errors.Is(err, ErrFileWrite)
}
