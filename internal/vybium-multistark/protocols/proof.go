package protocols

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/core"
)

// Proof is a complete multi-trace STARK proof. It is assembled once by the
// prover and consumed read-only by the verifier.
type Proof struct {
	// MainCommit is the commitment to the main trace.
	MainCommit hash.Digest

	// AuxCommit is the commitment to the auxiliary trace, nil when the
	// AIR has no auxiliary columns.
	AuxCommit *hash.Digest

	// QuotientCommit covers all quotient chunks in one commitment.
	QuotientCommit hash.Digest

	// MainLocal and MainNext are the main trace columns opened at the
	// out-of-domain point ζ and at ζ·g.
	MainLocal []core.XFieldElement
	MainNext  []core.XFieldElement

	// AuxLocal and AuxNext are the auxiliary trace openings, empty when
	// there is no auxiliary trace.
	AuxLocal []core.XFieldElement
	AuxNext  []core.XFieldElement

	// QuotientChunks[i] holds the columns of chunk i opened at ζ.
	QuotientChunks [][]core.XFieldElement

	// OpeningProof is the commitment scheme's opening proof covering all
	// openings above.
	OpeningProof OpeningProof

	// Log2Height is log2 of the trace height.
	Log2Height uint8
}
