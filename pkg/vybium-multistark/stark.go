package vybiummultistark

import (
	"errors"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/pcs"
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/protocols"
)

// DefaultConfig returns a configuration using the bundled Merkle commitment
// scheme and the Tip5 transcript.
func DefaultConfig() *StarkConfig {
	return protocols.NewStarkConfig(pcs.NewMerklePCS())
}

// Prove generates a proof that the trace satisfies the AIR.
//
// The trace height must be a power of two and the trace width must match
// the AIR; violations panic, since they indicate a bug on the proving side
// rather than untrusted input. Infrastructure failures are wrapped in a
// *StarkError with code ErrProofGeneration.
func Prove(config *StarkConfig, air MultiTraceAir, trace *Matrix, publicValues []field.Element) (*Proof, error) {
	if trace == nil || trace.Height() == 0 {
		return nil, &StarkError{Code: ErrInvalidInput, Message: "trace must not be empty"}
	}
	proof, err := protocols.Prove(config, air, trace, publicValues)
	if err != nil {
		return nil, &StarkError{Code: ErrProofGeneration, Message: "proof generation failed", Cause: err}
	}
	return proof, nil
}

// Verify checks a proof against the AIR and public values. Rejections are
// wrapped in a *StarkError: ErrInvalidProof for structural mismatches and
// ErrProofVerification for cryptographic failures. The underlying
// *protocols.VerificationError remains reachable through errors.Is.
func Verify(config *StarkConfig, air MultiTraceAir, proof *Proof, publicValues []field.Element) error {
	if proof == nil {
		return &StarkError{Code: ErrInvalidInput, Message: "proof must not be nil"}
	}
	err := protocols.Verify(config, air, proof, publicValues)
	if err == nil {
		return nil
	}

	code := ErrProofVerification
	var verr *protocols.VerificationError
	if errors.As(err, &verr) && verr.Kind == protocols.ErrInvalidProofStructure {
		code = ErrInvalidProof
	}
	return &StarkError{Code: code, Message: "proof verification failed", Cause: err}
}
