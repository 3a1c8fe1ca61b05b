package domain

// The analysis engine distinguishes failure modes with typed errors so the
// boundary layer can map each one to the right response, and so tests can
// assert on the exact mode instead of string matching.

// InsufficientDataError means too few aligned observations survived to run a
// regression.
type InsufficientDataError struct {
	Err error
}

func (e InsufficientDataError) Error() string {
	return e.Err.Error()
}

func (e InsufficientDataError) Unwrap() error {
	return e.Err
}

// ValidationError means the request itself was malformed (bad portfolio spec,
// unknown period token).
type ValidationError struct {
	Err error
}

func (e ValidationError) Error() string {
	return e.Err.Error()
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// RegressionError means the fitting step failed, e.g. a singular design
// matrix or a degenerate regressor column.
type RegressionError struct {
	Err error
}

func (e RegressionError) Error() string {
	return e.Err.Error()
}

func (e RegressionError) Unwrap() error {
	return e.Err
}

// FactorDataUnavailableError means the factor dataset could not be fetched or
// synthesized.
type FactorDataUnavailableError struct {
	Err error
}

func (e FactorDataUnavailableError) Error() string {
	return e.Err.Error()
}

func (e FactorDataUnavailableError) Unwrap() error {
	return e.Err
}

// DataUnavailableError means an upstream price or rate source failed.
type DataUnavailableError struct {
	Err error
}

func (e DataUnavailableError) Error() string {
	return e.Err.Error()
}

func (e DataUnavailableError) Unwrap() error {
	return e.Err
}
