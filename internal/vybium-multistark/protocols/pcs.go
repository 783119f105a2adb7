package protocols

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/core"
)

// ProverData is the opaque per-commitment state a Pcs returns from Commit
// and consumes in GetEvaluationsOnDomain and Open. Its concrete type is
// private to the scheme.
type ProverData interface{}

// OpeningProof is the opaque proof a Pcs produces in Open and checks in
// Verify. It travels inside the STARK proof.
type OpeningProof interface{}

// CommitRound is one matrix of evaluations over its domain, committed as
// part of a batch.
type CommitRound struct {
	Domain *core.Domain
	Matrix *core.Matrix
}

// OpenRound requests openings of one committed batch: Points[i] lists the
// out-of-domain points at which matrix i of the batch is opened.
type OpenRound struct {
	Data   ProverData
	Points [][]core.XFieldElement
}

// PointClaim is a claimed evaluation of every column of a committed matrix
// at one out-of-domain point.
type PointClaim struct {
	Point  core.XFieldElement
	Values []core.XFieldElement
}

// MatrixClaim groups the point claims of one matrix within a batch.
type MatrixClaim struct {
	Domain *core.Domain
	Points []PointClaim
}

// CommitmentClaim binds a batch commitment to the claimed openings of its
// matrices, in commit order.
type CommitmentClaim struct {
	Commitment hash.Digest
	Matrices   []MatrixClaim
}

// Pcs is a polynomial commitment scheme over matrices of evaluations. The
// proving pipeline commits traces through it, opens them at out-of-domain
// points, and the verifier checks all claims in one call. Implementations
// must observe opened values into the challenger identically on the Open
// and Verify paths, since later transcript samples depend on them.
type Pcs interface {
	// NaturalDomainForDegree returns the domain a trace of the given
	// height is committed on.
	NaturalDomainForDegree(degree int) (*core.Domain, error)

	// Commit commits to a batch of matrices, each over its own domain,
	// under a single commitment.
	Commit(rounds []CommitRound) (hash.Digest, ProverData, error)

	// GetEvaluationsOnDomain returns the evaluations of batch matrix
	// index extended onto the given domain.
	GetEvaluationsOnDomain(data ProverData, index int, domain *core.Domain) (*core.Matrix, error)

	// Open opens committed batches at out-of-domain points. The result
	// is indexed [round][matrix][point][column]. Every opened value is
	// observed into the challenger.
	Open(rounds []OpenRound, challenger *Challenger) ([][][][]core.XFieldElement, OpeningProof, error)

	// Verify checks the opening proof against the claims, observing the
	// claimed values into the challenger in the same order Open did.
	Verify(claims []CommitmentClaim, proof OpeningProof, challenger *Challenger) error

	// IsZK reports whether commitments hide the committed values.
	IsZK() bool
}
