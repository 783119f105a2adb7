package protocols

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/core"
)

// constraintDegreeBound is the assumed maximum constraint degree. The
// quotient domain is blown up by 2^constraintDegreeBound, which accommodates
// constraints up to degree 4 with room for the selector factors.
const constraintDegreeBound = 2

// QuotientDegree is the quotient domain blowup factor and the number of
// quotient chunks.
const QuotientDegree = 1 << constraintDegreeBound

// Prove generates a proof that the main trace satisfies the AIR.
//
// The transcript follows a strict phase order: main commitment, public
// values, auxiliary challenges and commitment (when the AIR has auxiliary
// columns), the folding challenge α, the quotient commitment, and finally
// the out-of-domain point ζ. The verifier replays the same order, so any
// deviation breaks verification.
//
// Dimension mismatches between the trace and the AIR panic; infrastructure
// failures inside the commitment scheme are returned as errors.
func Prove(config *StarkConfig, air MultiTraceAir, mainTrace *core.Matrix, publicValues []field.Element) (*Proof, error) {
	if mainTrace.Width() != air.Width() {
		panic(fmt.Sprintf("main trace width %d does not match AIR width %d", mainTrace.Width(), air.Width()))
	}
	height := mainTrace.Height()
	if !isPowerOfTwoInt(height) {
		panic(fmt.Sprintf("trace height must be a power of 2, got %d", height))
	}

	logger := config.Logger()
	pcs := config.PCS()
	challenger := config.InitialiseChallenger()

	log2Height := core.Log2(height)
	traceDomain, err := pcs.NaturalDomainForDegree(height)
	if err != nil {
		return nil, fmt.Errorf("failed to derive trace domain: %w", err)
	}

	// Phase 1: commit the main trace.
	logger.Debug().Int("height", height).Int("width", mainTrace.Width()).Msg("committing main trace")

	mainCommit, mainData, err := pcs.Commit([]CommitRound{{Domain: traceDomain, Matrix: mainTrace}})
	if err != nil {
		return nil, fmt.Errorf("failed to commit main trace: %w", err)
	}
	challenger.ObserveDigest(mainCommit)
	challenger.Observe(publicValues...)

	// Phase 2: sample challenges and commit the auxiliary trace.
	var auxCommit *hash.Digest
	var auxData ProverData
	if air.AuxWidth() > 0 {
		challenges := challenger.SampleXSlice(air.NumChallenges())
		logger.Debug().Int("challenges", len(challenges)).Msg("building auxiliary trace")

		auxTrace := air.BuildAuxTrace(mainTrace, challenges)
		if auxTrace.Width() != air.AuxWidth() {
			panic(fmt.Sprintf("auxiliary trace width %d does not match declared width %d", auxTrace.Width(), air.AuxWidth()))
		}
		if auxTrace.Height() != height {
			panic(fmt.Sprintf("auxiliary trace height %d does not match main trace height %d", auxTrace.Height(), height))
		}

		commit, data, err := pcs.Commit([]CommitRound{{Domain: traceDomain, Matrix: auxTrace.FlattenToBase()}})
		if err != nil {
			return nil, fmt.Errorf("failed to commit auxiliary trace: %w", err)
		}
		challenger.ObserveDigest(commit)
		auxCommit = &commit
		auxData = data
	}

	// Phase 3: evaluate the quotient polynomial and commit its chunks.
	// α must be sampled after the auxiliary commitment and before the
	// quotient commitment.
	alpha := challenger.SampleX()

	quotientDomain, err := traceDomain.CreateDisjointDomain(height * QuotientDegree)
	if err != nil {
		return nil, fmt.Errorf("failed to derive quotient domain: %w", err)
	}

	mainOnQuotient, err := pcs.GetEvaluationsOnDomain(mainData, 0, quotientDomain)
	if err != nil {
		return nil, fmt.Errorf("failed to extend main trace to quotient domain: %w", err)
	}
	var auxOnQuotient *core.Matrix
	if auxData != nil {
		auxOnQuotient, err = pcs.GetEvaluationsOnDomain(auxData, 0, quotientDomain)
		if err != nil {
			return nil, fmt.Errorf("failed to extend auxiliary trace to quotient domain: %w", err)
		}
	}

	logger.Debug().Int("quotient_size", quotientDomain.Length).Msg("computing quotient values")

	quotientValues, err := computeQuotientValues(air, traceDomain, quotientDomain, mainOnQuotient, auxOnQuotient, alpha)
	if err != nil {
		return nil, fmt.Errorf("failed to compute quotient values: %w", err)
	}

	quotientFlat := core.NewXMatrixFromColumn(quotientValues).FlattenToBase()
	quotientChunks, err := quotientDomain.SplitEvals(QuotientDegree, quotientFlat)
	if err != nil {
		return nil, fmt.Errorf("failed to split quotient evaluations: %w", err)
	}
	chunkDomains, err := quotientDomain.SplitDomains(QuotientDegree)
	if err != nil {
		return nil, fmt.Errorf("failed to split quotient domain: %w", err)
	}

	quotientRounds := make([]CommitRound, QuotientDegree)
	for i := range quotientRounds {
		quotientRounds[i] = CommitRound{Domain: chunkDomains[i], Matrix: quotientChunks[i]}
	}
	quotientCommit, quotientData, err := pcs.Commit(quotientRounds)
	if err != nil {
		return nil, fmt.Errorf("failed to commit quotient chunks: %w", err)
	}
	challenger.ObserveDigest(quotientCommit)

	// Phase 4: open everything at the out-of-domain point.
	zeta := challenger.SampleX()
	zetaNext := traceDomain.NextPointX(zeta)

	openRounds := []OpenRound{{Data: mainData, Points: [][]core.XFieldElement{{zeta, zetaNext}}}}
	if auxData != nil {
		openRounds = append(openRounds, OpenRound{Data: auxData, Points: [][]core.XFieldElement{{zeta, zetaNext}}})
	}
	quotientPoints := make([][]core.XFieldElement, QuotientDegree)
	for i := range quotientPoints {
		quotientPoints[i] = []core.XFieldElement{zeta}
	}
	openRounds = append(openRounds, OpenRound{Data: quotientData, Points: quotientPoints})

	logger.Debug().Msg("opening commitments")

	openedValues, openingProof, err := pcs.Open(openRounds, challenger)
	if err != nil {
		return nil, fmt.Errorf("failed to open commitments: %w", err)
	}

	round := 0
	mainOpenings := openedValues[round]
	round++
	var auxLocal, auxNext []core.XFieldElement
	if auxData != nil {
		auxOpenings := openedValues[round]
		round++
		auxLocal = auxOpenings[0][0]
		auxNext = auxOpenings[0][1]
	}
	quotientOpenings := openedValues[round]
	openedChunks := make([][]core.XFieldElement, QuotientDegree)
	for i := range openedChunks {
		openedChunks[i] = quotientOpenings[i][0]
	}

	return &Proof{
		MainCommit:     mainCommit,
		AuxCommit:      auxCommit,
		QuotientCommit: quotientCommit,
		MainLocal:      mainOpenings[0][0],
		MainNext:       mainOpenings[0][1],
		AuxLocal:       auxLocal,
		AuxNext:        auxNext,
		QuotientChunks: openedChunks,
		OpeningProof:   openingProof,
		Log2Height:     uint8(log2Height),
	}, nil
}

// computeQuotientValues evaluates the folded constraint polynomial divided
// by the trace domain's vanishing polynomial at every quotient domain point.
//
// The trace rows within the quotient domain LDE are interleaved with blowup
// points, so the "next" row of point i sits nextStep positions ahead, where
// nextStep is the blowup factor.
func computeQuotientValues(
	air MultiTraceAir,
	traceDomain, quotientDomain *core.Domain,
	mainOnQuotient, auxOnQuotient *core.Matrix,
	alpha core.XFieldElement,
) ([]core.XFieldElement, error) {
	quotientSize := quotientDomain.Length
	nextStep := quotientSize / traceDomain.Length

	selectors, err := traceDomain.SelectorsOnCoset(quotientDomain)
	if err != nil {
		return nil, err
	}

	constraintCount := CountConstraints(air, air.Width(), air.AuxWidth())
	alphaPowers := make([]core.XFieldElement, constraintCount)
	power := core.XOne
	for i := 0; i < constraintCount; i++ {
		alphaPowers[i] = power
		power = power.Mul(alpha)
	}
	for i, j := 0, len(alphaPowers)-1; i < j; i, j = i+1, j-1 {
		alphaPowers[i], alphaPowers[j] = alphaPowers[j], alphaPowers[i]
	}

	quotientValues := make([]core.XFieldElement, quotientSize)

	var group errgroup.Group
	workers := runtime.GOMAXPROCS(0)
	if workers > quotientSize {
		workers = quotientSize
	}
	chunkSize := (quotientSize + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > quotientSize {
			end = quotientSize
		}
		group.Go(func() error {
			for i := start; i < end; i++ {
				nextIdx := (i + nextStep) % quotientSize

				folder := &ProverFolder{
					MainWindow: Window{
						Local: core.LiftRow(mainOnQuotient.Row(i)),
						Next:  core.LiftRow(mainOnQuotient.Row(nextIdx)),
					},
					FirstRowSelector:   core.XFromBase(selectors.IsFirstRow[i]),
					LastRowSelector:    core.XFromBase(selectors.IsLastRow[i]),
					TransitionSelector: core.XFromBase(selectors.IsTransition[i]),
					AlphaPowers:        alphaPowers,
					Accumulator:        core.XZero,
				}
				if auxOnQuotient != nil {
					folder.AuxWindow = Window{
						Local: core.RowToX(auxOnQuotient.Row(i)),
						Next:  core.RowToX(auxOnQuotient.Row(nextIdx)),
					}
				}

				air.Eval(folder)
				if folder.ConstraintIndex != len(alphaPowers) {
					return fmt.Errorf("constraint count changed between evaluations: %d != %d",
						folder.ConstraintIndex, len(alphaPowers))
				}

				quotientValues[i] = folder.Accumulator.MulBase(selectors.InvVanishing[i])
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return quotientValues, nil
}

func isPowerOfTwoInt(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
