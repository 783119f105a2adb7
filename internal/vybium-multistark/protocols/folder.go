package protocols

import (
	"fmt"

	"github.com/vybium/vybium-multistark/internal/vybium-multistark/core"
)

// Window exposes two adjacent trace rows to constraint evaluation.
type Window struct {
	Local []core.XFieldElement
	Next  []core.XFieldElement
}

// GetLocal returns column col of the local row.
func (w Window) GetLocal(col int) core.XFieldElement {
	return w.Local[col]
}

// GetNext returns column col of the next row.
func (w Window) GetNext(col int) core.XFieldElement {
	return w.Next[col]
}

// Builder is the surface an AIR evaluates its constraints against. Both the
// prover and the verifier implement it; an AIR must behave identically on
// either, asserting the same constraints in the same order.
type Builder interface {
	// Main returns the main trace window.
	Main() Window

	// Aux returns the auxiliary trace window; empty for single-phase AIRs.
	Aux() Window

	// IsFirstRow returns a selector that vanishes everywhere except the
	// first trace row.
	IsFirstRow() core.XFieldElement

	// IsLastRow returns a selector that vanishes everywhere except the
	// last trace row.
	IsLastRow() core.XFieldElement

	// IsTransition returns a selector that vanishes only on the last row.
	IsTransition() core.XFieldElement

	// IsTransitionWindow is IsTransition for a given window size. Only
	// size 2 is supported; other sizes panic.
	IsTransitionWindow(size int) core.XFieldElement

	// AssertZero folds the constraint x into the accumulator.
	AssertZero(x core.XFieldElement)

	// AssertZeroExt folds an extension-valued constraint. With a concrete
	// extension field both assert paths fold identically; the split is
	// kept so AIRs can mark which constraints involve challenges.
	AssertZeroExt(x core.XFieldElement)
}

// ProverFolder folds constraints during quotient evaluation. It consumes a
// precomputed table of α powers in decreasing-exponent order, so that
// constraint i is weighted by α^(n-1-i); combined with the verifier's
// Horner rule this yields the same folded value on both sides.
type ProverFolder struct {
	MainWindow Window
	AuxWindow  Window

	FirstRowSelector   core.XFieldElement
	LastRowSelector    core.XFieldElement
	TransitionSelector core.XFieldElement

	// AlphaPowers[i] is α^(n-1-i) for n total constraints.
	AlphaPowers []core.XFieldElement

	Accumulator     core.XFieldElement
	ConstraintIndex int
}

// Main returns the main trace window.
func (f *ProverFolder) Main() Window { return f.MainWindow }

// Aux returns the auxiliary trace window.
func (f *ProverFolder) Aux() Window { return f.AuxWindow }

// IsFirstRow returns the first-row selector at the current point.
func (f *ProverFolder) IsFirstRow() core.XFieldElement { return f.FirstRowSelector }

// IsLastRow returns the last-row selector at the current point.
func (f *ProverFolder) IsLastRow() core.XFieldElement { return f.LastRowSelector }

// IsTransition returns the transition selector at the current point.
func (f *ProverFolder) IsTransition() core.XFieldElement { return f.TransitionSelector }

// IsTransitionWindow returns the transition selector for window size 2.
func (f *ProverFolder) IsTransitionWindow(size int) core.XFieldElement {
	if size != 2 {
		panic(fmt.Sprintf("only transition windows of size 2 are supported, got %d", size))
	}
	return f.TransitionSelector
}

// AssertZero folds x weighted by the next α power.
func (f *ProverFolder) AssertZero(x core.XFieldElement) {
	alpha := f.AlphaPowers[f.ConstraintIndex]
	f.Accumulator = f.Accumulator.Add(alpha.Mul(x))
	f.ConstraintIndex++
}

// AssertZeroExt folds an extension-valued constraint.
func (f *ProverFolder) AssertZeroExt(x core.XFieldElement) {
	f.AssertZero(x)
}

// VerifierFolder folds constraints at the out-of-domain point using Horner's
// rule: acc = acc*α + x. After n asserts the accumulator equals
// Σ_i α^(n-1-i)·x_i, matching the prover's power table.
type VerifierFolder struct {
	MainWindow Window
	AuxWindow  Window

	FirstRowSelector   core.XFieldElement
	LastRowSelector    core.XFieldElement
	TransitionSelector core.XFieldElement

	Alpha       core.XFieldElement
	Accumulator core.XFieldElement
}

// Main returns the opened main trace window.
func (f *VerifierFolder) Main() Window { return f.MainWindow }

// Aux returns the opened auxiliary trace window.
func (f *VerifierFolder) Aux() Window { return f.AuxWindow }

// IsFirstRow returns the first-row selector at the opened point.
func (f *VerifierFolder) IsFirstRow() core.XFieldElement { return f.FirstRowSelector }

// IsLastRow returns the last-row selector at the opened point.
func (f *VerifierFolder) IsLastRow() core.XFieldElement { return f.LastRowSelector }

// IsTransition returns the transition selector at the opened point.
func (f *VerifierFolder) IsTransition() core.XFieldElement { return f.TransitionSelector }

// IsTransitionWindow returns the transition selector for window size 2.
func (f *VerifierFolder) IsTransitionWindow(size int) core.XFieldElement {
	if size != 2 {
		panic(fmt.Sprintf("only transition windows of size 2 are supported, got %d", size))
	}
	return f.TransitionSelector
}

// AssertZero folds x into the accumulator by Horner's rule.
func (f *VerifierFolder) AssertZero(x core.XFieldElement) {
	f.Accumulator = f.Accumulator.Mul(f.Alpha).Add(x)
}

// AssertZeroExt folds an extension-valued constraint.
func (f *VerifierFolder) AssertZeroExt(x core.XFieldElement) {
	f.AssertZero(x)
}

// countingFolder counts asserts without folding. The prover runs the AIR
// once against it to learn the constraint count before building the α power
// table.
type countingFolder struct {
	mainWindow Window
	auxWindow  Window
	count      int
}

func (f *countingFolder) Main() Window                     { return f.mainWindow }
func (f *countingFolder) Aux() Window                      { return f.auxWindow }
func (f *countingFolder) IsFirstRow() core.XFieldElement   { return core.XZero }
func (f *countingFolder) IsLastRow() core.XFieldElement    { return core.XZero }
func (f *countingFolder) IsTransition() core.XFieldElement { return core.XZero }

func (f *countingFolder) IsTransitionWindow(size int) core.XFieldElement {
	if size != 2 {
		panic(fmt.Sprintf("only transition windows of size 2 are supported, got %d", size))
	}
	return core.XZero
}

func (f *countingFolder) AssertZero(core.XFieldElement)    { f.count++ }
func (f *countingFolder) AssertZeroExt(core.XFieldElement) { f.count++ }

// CountConstraints evaluates the AIR against a counting builder to learn how
// many constraints it asserts. The windows carry zeros of the right widths;
// constraint values are discarded.
func CountConstraints(air Air, mainWidth, auxWidth int) int {
	folder := &countingFolder{
		mainWindow: Window{
			Local: make([]core.XFieldElement, mainWidth),
			Next:  make([]core.XFieldElement, mainWidth),
		},
		auxWindow: Window{
			Local: make([]core.XFieldElement, auxWidth),
			Next:  make([]core.XFieldElement, auxWidth),
		},
	}
	air.Eval(folder)
	return folder.count
}
