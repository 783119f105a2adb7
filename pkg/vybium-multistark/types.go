package vybiummultistark

import (
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/core"
	"github.com/vybium/vybium-multistark/internal/vybium-multistark/protocols"
)

// XFieldElement is an element of the quadratic extension field in which
// challenges and out-of-domain evaluations live.
type XFieldElement = core.XFieldElement

// Matrix is a dense row-major matrix of base field elements; execution
// traces are matrices with one step per row.
type Matrix = core.Matrix

// XMatrix is a dense row-major matrix of extension field elements, used for
// auxiliary traces.
type XMatrix = core.XMatrix

// Domain is a multiplicative coset over which traces are committed.
type Domain = core.Domain

// Proof is a complete multi-trace STARK proof.
type Proof = protocols.Proof

// StarkConfig binds the commitment scheme and transcript hash of a proving
// system instance.
type StarkConfig = protocols.StarkConfig

// Builder is the constraint evaluation surface an AIR writes against.
type Builder = protocols.Builder

// Window exposes two adjacent trace rows to constraint evaluation.
type Window = protocols.Window

// Air is an algebraic intermediate representation over the main trace.
type Air = protocols.Air

// AuxTraceBuilder is the capability to derive an auxiliary trace from
// post-commitment challenges.
type AuxTraceBuilder = protocols.AuxTraceBuilder

// MultiTraceAir is an AIR with the auxiliary trace capability.
type MultiTraceAir = protocols.MultiTraceAir

// NoAuxTrace is the embeddable default for single-phase AIRs.
type NoAuxTrace = protocols.NoAuxTrace

// Pcs is the polynomial commitment scheme interface.
type Pcs = protocols.Pcs

// VerificationError classifies why a proof was rejected.
type VerificationError = protocols.VerificationError

// NewMatrix wraps a row-major value slice as a trace matrix.
var NewMatrix = core.NewMatrix

// NewXFieldElement creates an extension element from two base coefficients.
var NewXFieldElement = core.NewXFieldElement
