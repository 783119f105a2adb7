package vybiummultistark

import "fmt"

// ErrorCode represents a proving system error code
type ErrorCode int

const (
	// ErrUnknown represents an unknown error
	ErrUnknown ErrorCode = iota

	// ErrInvalidConfig represents an invalid configuration error
	ErrInvalidConfig

	// ErrInvalidInput represents an invalid input error
	ErrInvalidInput

	// ErrProofGeneration represents a proof generation error
	ErrProofGeneration

	// ErrProofVerification represents a proof verification error
	ErrProofVerification

	// ErrInvalidProof represents an invalid proof error
	ErrInvalidProof
)

// StarkError represents a proving system error
type StarkError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error returns the error message
func (e *StarkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vybium-multistark error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("vybium-multistark error [%d]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *StarkError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *StarkError) Is(target error) bool {
	t, ok := target.(*StarkError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
