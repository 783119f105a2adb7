package protocols

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/core"
)

// RecomposeQuotientFromChunks reconstructs quotient(ζ) from the opened
// chunk values.
//
// Chunk i holds the quotient's evaluations on sub-domain i. Because each
// other sub-domain's vanishing polynomial is constant across sub-domain i,
// the Lagrange combination collapses to one coefficient per chunk:
// zps[i] = Π_{j≠i} Z_j(ζ) / Z_j(firstPoint_i). The opened values are base
// coefficient columns of the flattened quotient, recombined with the
// extension basis before weighting.
func RecomposeQuotientFromChunks(
	chunkDomains []*core.Domain,
	chunks [][]core.XFieldElement,
	zeta core.XFieldElement,
) core.XFieldElement {
	zps := make([]core.XFieldElement, len(chunkDomains))
	for i, domain := range chunkDomains {
		zp := core.XOne
		for j, other := range chunkDomains {
			if j == i {
				continue
			}
			atZeta := other.VanishingAtX(zeta)
			atFirst := other.VanishingAtX(core.XFromBase(domain.FirstPoint()))
			zp = zp.Mul(atZeta.Mul(atFirst.Inverse()))
		}
		zps[i] = zp
	}

	total := core.XZero
	for i, chunk := range chunks {
		recombined := core.XZero
		for e, c := range chunk {
			recombined = recombined.Add(core.IthBasisElement(e).Mul(c))
		}
		total = total.Add(zps[i].Mul(recombined))
	}
	return total
}

// Verify checks a proof against the AIR and public values. It returns nil
// for a valid proof and a *VerificationError classifying the failure
// otherwise. Adversarial proofs must never cause a panic, so all opened
// value shapes are validated before use.
func Verify(config *StarkConfig, air MultiTraceAir, proof *Proof, publicValues []field.Element) error {
	if air.AuxWidth() > 0 && proof.AuxCommit == nil {
		return newVerificationError(ErrInvalidProofStructure,
			"AIR requires an auxiliary trace but the proof has none")
	}
	if air.AuxWidth() == 0 && proof.AuxCommit != nil {
		return newVerificationError(ErrInvalidProofStructure,
			"AIR has no auxiliary trace but the proof includes one")
	}
	if len(proof.MainLocal) != air.Width() || len(proof.MainNext) != air.Width() {
		return newVerificationError(ErrInvalidProofStructure,
			"main trace openings have width %d/%d, AIR expects %d",
			len(proof.MainLocal), len(proof.MainNext), air.Width())
	}
	auxFlatWidth := air.AuxWidth() * core.ExtensionDegree
	if len(proof.AuxLocal) != auxFlatWidth || len(proof.AuxNext) != auxFlatWidth {
		return newVerificationError(ErrInvalidProofStructure,
			"auxiliary openings have width %d/%d, AIR expects %d",
			len(proof.AuxLocal), len(proof.AuxNext), auxFlatWidth)
	}
	if len(proof.QuotientChunks) != QuotientDegree {
		return newVerificationError(ErrInvalidProofStructure,
			"expected %d quotient chunks, got %d", QuotientDegree, len(proof.QuotientChunks))
	}
	for i, chunk := range proof.QuotientChunks {
		if len(chunk) != core.ExtensionDegree {
			return newVerificationError(ErrInvalidProofStructure,
				"quotient chunk %d has width %d, expected %d", i, len(chunk), core.ExtensionDegree)
		}
	}
	if proof.Log2Height > 32 {
		return newVerificationError(ErrInvalidProofStructure,
			"log2 height %d out of range", proof.Log2Height)
	}

	logger := config.Logger()
	pcs := config.PCS()
	challenger := config.InitialiseChallenger()

	height := 1 << proof.Log2Height
	traceDomain, err := pcs.NaturalDomainForDegree(height)
	if err != nil {
		return &VerificationError{Kind: ErrInvalidProofStructure, Reason: "failed to derive trace domain", Cause: err}
	}

	// Replay the prover's transcript. The sampled auxiliary challenges are
	// discarded; only their effect on the transcript state matters here.
	challenger.ObserveDigest(proof.MainCommit)
	challenger.Observe(publicValues...)

	if proof.AuxCommit != nil {
		for i := 0; i < air.NumChallenges(); i++ {
			challenger.SampleX()
		}
		challenger.ObserveDigest(*proof.AuxCommit)
	}

	alpha := challenger.SampleX()
	challenger.ObserveDigest(proof.QuotientCommit)
	zeta := challenger.SampleX()
	zetaNext := traceDomain.NextPointX(zeta)

	quotientDomain, err := traceDomain.CreateDisjointDomain(height * QuotientDegree)
	if err != nil {
		return &VerificationError{Kind: ErrInvalidProofStructure, Reason: "failed to derive quotient domain", Cause: err}
	}
	chunkDomains, err := quotientDomain.SplitDomains(QuotientDegree)
	if err != nil {
		return &VerificationError{Kind: ErrInvalidProofStructure, Reason: "failed to split quotient domain", Cause: err}
	}

	claims := []CommitmentClaim{{
		Commitment: proof.MainCommit,
		Matrices: []MatrixClaim{{
			Domain: traceDomain,
			Points: []PointClaim{
				{Point: zeta, Values: proof.MainLocal},
				{Point: zetaNext, Values: proof.MainNext},
			},
		}},
	}}
	if proof.AuxCommit != nil {
		claims = append(claims, CommitmentClaim{
			Commitment: *proof.AuxCommit,
			Matrices: []MatrixClaim{{
				Domain: traceDomain,
				Points: []PointClaim{
					{Point: zeta, Values: proof.AuxLocal},
					{Point: zetaNext, Values: proof.AuxNext},
				},
			}},
		})
	}
	quotientMatrices := make([]MatrixClaim, QuotientDegree)
	for i := range quotientMatrices {
		quotientMatrices[i] = MatrixClaim{
			Domain: chunkDomains[i],
			Points: []PointClaim{{Point: zeta, Values: proof.QuotientChunks[i]}},
		}
	}
	claims = append(claims, CommitmentClaim{
		Commitment: proof.QuotientCommit,
		Matrices:   quotientMatrices,
	})

	if err := pcs.Verify(claims, proof.OpeningProof, challenger); err != nil {
		return &VerificationError{
			Kind:   ErrPcsVerificationFailed,
			Reason: "commitment openings rejected",
			Cause:  err,
		}
	}

	// Evaluate the folded constraints at ζ over the opened values.
	selectors := traceDomain.SelectorsAtPointX(zeta)

	folder := &VerifierFolder{
		MainWindow: Window{Local: proof.MainLocal, Next: proof.MainNext},
		AuxWindow: Window{
			Local: recombineExtension(proof.AuxLocal),
			Next:  recombineExtension(proof.AuxNext),
		},
		FirstRowSelector:   selectors.IsFirstRow,
		LastRowSelector:    selectors.IsLastRow,
		TransitionSelector: selectors.IsTransition,
		Alpha:              alpha,
		Accumulator:        core.XZero,
	}
	air.Eval(folder)
	constraintsAtZeta := folder.Accumulator

	quotientAtZeta := RecomposeQuotientFromChunks(chunkDomains, proof.QuotientChunks, zeta)

	if !constraintsAtZeta.Mul(selectors.InvVanishing).Equal(quotientAtZeta) {
		logger.Debug().Msg("constraint identity does not hold at out-of-domain point")
		return newVerificationError(ErrConstraintVerificationFailed,
			"folded constraints do not match the quotient at the out-of-domain point")
	}
	return nil
}

// recombineExtension folds flattened coefficient openings back into
// extension elements: out[j] = Σ_e basis_e · flat[j·D + e].
func recombineExtension(flat []core.XFieldElement) []core.XFieldElement {
	d := core.ExtensionDegree
	out := make([]core.XFieldElement, len(flat)/d)
	for j := range out {
		acc := core.XZero
		for e := 0; e < d; e++ {
			acc = acc.Add(core.IthBasisElement(e).Mul(flat[j*d+e]))
		}
		out[j] = acc
	}
	return out
}
