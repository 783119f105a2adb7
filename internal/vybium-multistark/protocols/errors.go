package protocols

import "fmt"

// VerificationErrorKind classifies the ways a proof can be rejected.
type VerificationErrorKind int

const (
	// ErrInvalidProofStructure indicates the proof's shape does not match
	// the AIR: auxiliary data present or missing unexpectedly, wrong
	// opened-value widths, wrong chunk count.
	ErrInvalidProofStructure VerificationErrorKind = iota

	// ErrPcsVerificationFailed indicates the commitment scheme rejected
	// the opening proof.
	ErrPcsVerificationFailed

	// ErrConstraintVerificationFailed indicates the folded constraint
	// identity does not hold at the out-of-domain point.
	ErrConstraintVerificationFailed
)

func (k VerificationErrorKind) String() string {
	switch k {
	case ErrInvalidProofStructure:
		return "invalid proof structure"
	case ErrPcsVerificationFailed:
		return "commitment opening verification failed"
	case ErrConstraintVerificationFailed:
		return "constraint verification failed"
	default:
		return "unknown verification error"
	}
}

// VerificationError is a proof rejection. Malformed or dishonest proofs
// surface as one of these; programming errors on the proving side panic
// instead.
type VerificationError struct {
	Kind   VerificationErrorKind
	Reason string
	Cause  error
}

// Error returns the error message.
func (e *VerificationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// Unwrap returns the cause of the error.
func (e *VerificationError) Unwrap() error {
	return e.Cause
}

// Is matches any VerificationError of the same kind.
func (e *VerificationError) Is(target error) bool {
	t, ok := target.(*VerificationError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newVerificationError(kind VerificationErrorKind, format string, args ...interface{}) *VerificationError {
	return &VerificationError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
