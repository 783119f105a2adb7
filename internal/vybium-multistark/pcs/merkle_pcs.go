// Package pcs provides the bundled Merkle commitment scheme used by the
// proving pipeline.
//
// MerklePCS is a transparent (non-hiding, non-succinct) scheme: commitments
// are Merkle roots over Tip5 row hashes and an opening proof reveals the
// committed evaluation matrices outright. Verification recomputes the roots
// to check binding and replays the opened values into the transcript;
// consistency of the claimed out-of-domain values with the committed
// polynomials is left to the caller's constraint identity. A production
// deployment would swap in a succinct scheme behind the same interface.
package pcs

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/merkle"
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/core"
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/protocols"
)

// MerklePCS implements protocols.Pcs with Tip5 Merkle trees.
type MerklePCS struct{}

// NewMerklePCS creates the scheme. It is stateless; all per-commitment
// state lives in the returned prover data.
func NewMerklePCS() *MerklePCS {
	return &MerklePCS{}
}

type committedMatrix struct {
	domain *core.Domain
	matrix *core.Matrix
	root   hash.Digest
}

type proverData struct {
	matrices []committedMatrix
}

// OpeningProof reveals the committed evaluation matrices of every opened
// batch, in claim order.
type OpeningProof struct {
	Rounds [][]*core.Matrix
}

// NaturalDomainForDegree returns the plain subgroup domain a trace of the
// given height is committed on.
func (p *MerklePCS) NaturalDomainForDegree(degree int) (*core.Domain, error) {
	return core.NewDomain(degree)
}

// Commit builds one Merkle tree per matrix, hashing each row into a leaf,
// and combines the roots into a single batch commitment.
func (p *MerklePCS) Commit(rounds []protocols.CommitRound) (hash.Digest, protocols.ProverData, error) {
	if len(rounds) == 0 {
		return hash.Digest{}, nil, fmt.Errorf("cannot commit to an empty batch")
	}

	data := &proverData{matrices: make([]committedMatrix, len(rounds))}
	roots := make([]hash.Digest, len(rounds))
	for i, round := range rounds {
		if round.Matrix.Height() != round.Domain.Length {
			return hash.Digest{}, nil, fmt.Errorf(
				"matrix %d height %d does not match domain length %d",
				i, round.Matrix.Height(), round.Domain.Length)
		}
		tree, err := buildRowTree(round.Matrix)
		if err != nil {
			return hash.Digest{}, nil, fmt.Errorf("failed to build tree for matrix %d: %w", i, err)
		}
		roots[i] = tree.Root()
		data.matrices[i] = committedMatrix{
			domain: round.Domain,
			matrix: round.Matrix,
			root:   roots[i],
		}
	}

	return combineRoots(roots), data, nil
}

// GetEvaluationsOnDomain extends batch matrix index onto the target domain
// by barycentric evaluation of every column at every target point.
func (p *MerklePCS) GetEvaluationsOnDomain(data protocols.ProverData, index int, domain *core.Domain) (*core.Matrix, error) {
	pd, ok := data.(*proverData)
	if !ok {
		return nil, fmt.Errorf("prover data is not a MerklePCS commitment")
	}
	if index < 0 || index >= len(pd.matrices) {
		return nil, fmt.Errorf("matrix index %d out of range for batch of %d", index, len(pd.matrices))
	}
	committed := pd.matrices[index]

	width := committed.matrix.Width()
	result, err := core.NewZeroMatrix(domain.Length, width)
	if err != nil {
		return nil, err
	}
	points := domain.Elements()
	for j := 0; j < width; j++ {
		column := committed.matrix.Column(j)
		for i, x := range points {
			v, err := core.InterpolateAt(committed.domain, column, x)
			if err != nil {
				return nil, err
			}
			result.Set(i, j, v)
		}
	}
	return result, nil
}

// Open evaluates every requested matrix at its out-of-domain points and
// observes all opened values into the challenger. The proof reveals the
// committed matrices so the verifier can recompute every root.
func (p *MerklePCS) Open(rounds []protocols.OpenRound, challenger *protocols.Challenger) ([][][][]core.XFieldElement, protocols.OpeningProof, error) {
	values := make([][][][]core.XFieldElement, len(rounds))
	proof := &OpeningProof{Rounds: make([][]*core.Matrix, len(rounds))}

	for r, round := range rounds {
		pd, ok := round.Data.(*proverData)
		if !ok {
			return nil, nil, fmt.Errorf("round %d prover data is not a MerklePCS commitment", r)
		}
		if len(round.Points) != len(pd.matrices) {
			return nil, nil, fmt.Errorf(
				"round %d requests points for %d matrices, batch has %d",
				r, len(round.Points), len(pd.matrices))
		}

		values[r] = make([][][]core.XFieldElement, len(pd.matrices))
		proof.Rounds[r] = make([]*core.Matrix, len(pd.matrices))
		for m, committed := range pd.matrices {
			proof.Rounds[r][m] = committed.matrix
			values[r][m] = make([][]core.XFieldElement, len(round.Points[m]))
			for pt, point := range round.Points[m] {
				opened, err := core.InterpolateRowAtX(committed.domain, committed.matrix, point)
				if err != nil {
					return nil, nil, fmt.Errorf("failed to open matrix %d of round %d: %w", m, r, err)
				}
				challenger.ObserveXSlice(opened)
				values[r][m][pt] = opened
			}
		}
	}
	return values, proof, nil
}

// Verify checks that the revealed matrices reproduce every claimed
// commitment and replays the claimed opened values into the challenger in
// the order Open observed them.
func (p *MerklePCS) Verify(claims []protocols.CommitmentClaim, proof protocols.OpeningProof, challenger *protocols.Challenger) error {
	op, ok := proof.(*OpeningProof)
	if !ok {
		return fmt.Errorf("opening proof is not a MerklePCS proof")
	}
	if len(op.Rounds) != len(claims) {
		return fmt.Errorf("proof covers %d batches, claims list %d", len(op.Rounds), len(claims))
	}

	for c, claim := range claims {
		matrices := op.Rounds[c]
		if len(matrices) != len(claim.Matrices) {
			return fmt.Errorf("batch %d reveals %d matrices, claims list %d", c, len(matrices), len(claim.Matrices))
		}

		roots := make([]hash.Digest, len(matrices))
		for m, matrix := range matrices {
			mc := claim.Matrices[m]
			if matrix == nil || matrix.Height() != mc.Domain.Length {
				return fmt.Errorf("batch %d matrix %d does not match its claimed domain", c, m)
			}
			tree, err := buildRowTree(matrix)
			if err != nil {
				return fmt.Errorf("failed to rebuild tree for batch %d matrix %d: %w", c, m, err)
			}
			roots[m] = tree.Root()

			for _, pc := range mc.Points {
				if len(pc.Values) != matrix.Width() {
					return fmt.Errorf("batch %d matrix %d claims %d values, matrix has %d columns",
						c, m, len(pc.Values), matrix.Width())
				}
				challenger.ObserveXSlice(pc.Values)
			}
		}

		if !digestsEqual(combineRoots(roots), claim.Commitment) {
			return fmt.Errorf("batch %d commitment does not match revealed matrices", c)
		}
	}
	return nil
}

// IsZK reports false: revealed matrices hide nothing.
func (p *MerklePCS) IsZK() bool {
	return false
}

func buildRowTree(matrix *core.Matrix) (*merkle.MerkleTree, error) {
	height := matrix.Height()
	leaves := make([]hash.Digest, height)
	for i := 0; i < height; i++ {
		leaves[i] = hash.HashVarlen(matrix.Row(i))
	}
	return merkle.New(leaves)
}

func combineRoots(roots []hash.Digest) hash.Digest {
	input := make([]field.Element, 0, len(roots)*hash.DigestLen)
	for _, root := range roots {
		input = append(input, root[:]...)
	}
	return hash.HashVarlen(input)
}

func digestsEqual(a, b hash.Digest) bool {
	for i := 0; i < hash.DigestLen; i++ {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
