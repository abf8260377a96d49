package stockwell

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/sonido-stockwell/algorithms/filterbank"
)

var (
	// ErrConfig matches every *ConfigError
	ErrConfig = errors.New("stockwell: invalid configuration")
	// ErrInput matches every *InputError
	ErrInput = errors.New("stockwell: invalid input")
	// ErrDetDisabled is returned by TransformDet before EnableDet(true)
	ErrDetDisabled = errors.New("stockwell: det transform not enabled")
)

// ConfigError reports an invalid construction or rebuild parameter.
// Nothing is allocated or replaced when it is returned.
type ConfigError struct {
	Param  string
	Value  any
	Reason string
	Cause  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("stockwell: invalid %s=%v: %s", e.Param, e.Value, e.Reason)
}

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

func (e *ConfigError) Unwrap() error { return e.Cause }

// InputError reports a call-time input of the wrong shape
type InputError struct {
	Param string
	Got   int
	Want  int
}

func (e *InputError) Error() string {
	return fmt.Sprintf("stockwell: %s has length %d, want %d", e.Param, e.Got, e.Want)
}

func (e *InputError) Is(target error) bool { return target == ErrInput }

func configErr(param string, value any, format string, args ...any) *ConfigError {
	return &ConfigError{Param: param, Value: value, Reason: fmt.Sprintf(format, args...)}
}

// fromParamError lifts filter-bank validation failures into ConfigError
func fromParamError(err error) error {
	var pe *filterbank.ParamError
	if errors.As(err, &pe) {
		return &ConfigError{Param: pe.Param, Value: pe.Value, Reason: pe.Reason, Cause: err}
	}
	return &ConfigError{Param: "config", Value: nil, Reason: err.Error(), Cause: err}
}

func checkSignal(signal []float64, n int) error {
	if len(signal) != n {
		return &InputError{Param: "signal", Got: len(signal), Want: n}
	}
	return nil
}
