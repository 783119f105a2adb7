package core

import (
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

func TestNewDomain(t *testing.T) {
	t.Run("PowerOfTwoLengths", func(t *testing.T) {
		for _, length := range []int{1, 2, 8, 64} {
			d, err := NewDomain(length)
			if err != nil {
				t.Fatalf("NewDomain(%d) failed: %v", length, err)
			}
			if d.Length != length {
				t.Errorf("expected length %d, got %d", length, d.Length)
			}
			// Generator must have order exactly length.
			if !d.Generator.ModPow(uint64(length)).IsOne() {
				t.Errorf("generator^%d != 1", length)
			}
			if length > 1 && d.Generator.ModPow(uint64(length/2)).IsOne() {
				t.Errorf("generator of length-%d domain has order below %d", length, length)
			}
		}
	})

	t.Run("GeneratorEnumeratesWholeSubgroup", func(t *testing.T) {
		// A generator of the wrong order (or in the wrong encoding) would
		// produce repeated points here.
		d, err := NewDomain(8)
		if err != nil {
			t.Fatal(err)
		}
		seen := make(map[uint64]bool)
		for _, x := range d.Elements() {
			if seen[x.Value()] {
				t.Fatalf("domain point %d repeats", x.Value())
			}
			seen[x.Value()] = true
		}
	})

	t.Run("RejectsNonPowerOfTwo", func(t *testing.T) {
		for _, length := range []int{0, 3, 12, -4} {
			if _, err := NewDomain(length); err == nil {
				t.Errorf("NewDomain(%d) should fail", length)
			}
		}
	})
}

func TestDomainElements(t *testing.T) {
	d, err := NewDomain(8)
	if err != nil {
		t.Fatal(err)
	}
	shifted := d.WithOffset(field.New(3))

	elements := shifted.Elements()
	if len(elements) != 8 {
		t.Fatalf("expected 8 elements, got %d", len(elements))
	}
	if !elements[0].Equal(shifted.FirstPoint()) {
		t.Error("first element must be the offset")
	}
	for i := 1; i < 8; i++ {
		if !elements[i].Equal(elements[i-1].Mul(d.Generator)) {
			t.Errorf("element %d is not the previous times the generator", i)
		}
	}
}

func TestCreateDisjointDomain(t *testing.T) {
	trace, err := NewDomain(8)
	if err != nil {
		t.Fatal(err)
	}
	quotient, err := trace.CreateDisjointDomain(32)
	if err != nil {
		t.Fatal(err)
	}
	if quotient.Length != 32 {
		t.Fatalf("expected length 32, got %d", quotient.Length)
	}

	// No quotient point may lie on the trace domain.
	traceOffsetInv := trace.Offset.Inverse()
	for i, x := range quotient.Elements() {
		if x.Mul(traceOffsetInv).ModPow(uint64(trace.Length)).IsOne() {
			t.Errorf("quotient point %d lies on the trace domain", i)
		}
	}
}

func TestSplitDomains(t *testing.T) {
	base, err := NewDomain(16)
	if err != nil {
		t.Fatal(err)
	}
	parent := base.WithOffset(field.New(W))

	const k = 4
	subs, err := parent.SplitDomains(k)
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != k {
		t.Fatalf("expected %d sub-domains, got %d", k, len(subs))
	}

	parentElements := parent.Elements()
	for i, sub := range subs {
		for m, x := range sub.Elements() {
			expected := parentElements[i+m*k]
			if !x.Equal(expected) {
				t.Errorf("sub-domain %d point %d: got %d, expected %d", i, m, x.Value(), expected.Value())
			}
		}
	}
}

func TestSplitEvals(t *testing.T) {
	base, err := NewDomain(8)
	if err != nil {
		t.Fatal(err)
	}
	values := make([]field.Element, 16)
	for i := range values {
		values[i] = field.New(uint64(i))
	}
	matrix, err := NewMatrix(values, 2)
	if err != nil {
		t.Fatal(err)
	}

	chunks, err := base.SplitEvals(4, matrix)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if chunk.Height() != 2 || chunk.Width() != 2 {
			t.Fatalf("chunk %d has shape %dx%d", i, chunk.Height(), chunk.Width())
		}
		for m := 0; m < 2; m++ {
			for j := 0; j < 2; j++ {
				if !chunk.Get(m, j).Equal(matrix.Get(i+m*4, j)) {
					t.Errorf("chunk %d row %d does not match parent row %d", i, m, i+m*4)
				}
			}
		}
	}
}

func TestSelectorsOnCoset(t *testing.T) {
	trace, err := NewDomain(8)
	if err != nil {
		t.Fatal(err)
	}
	quotient, err := trace.CreateDisjointDomain(32)
	if err != nil {
		t.Fatal(err)
	}

	sel, err := trace.SelectorsOnCoset(quotient)
	if err != nil {
		t.Fatal(err)
	}

	offsetInv := trace.Offset.Inverse()
	genInv := trace.Generator.Inverse()
	for i, x := range quotient.Elements() {
		shifted := x.Mul(offsetInv)
		zH := shifted.ModPow(uint64(trace.Length)).Sub(field.One)

		// isFirst * (y - 1) == zH and isLast * (y - g^-1) == zH
		if !sel.IsFirstRow[i].Mul(shifted.Sub(field.One)).Equal(zH) {
			t.Errorf("point %d: first-row selector identity violated", i)
		}
		if !sel.IsLastRow[i].Mul(shifted.Sub(genInv)).Equal(zH) {
			t.Errorf("point %d: last-row selector identity violated", i)
		}
		if !sel.InvVanishing[i].Mul(zH).IsOne() {
			t.Errorf("point %d: inverse vanishing identity violated", i)
		}
	}
}

func TestSelectorsOnTraceDomainRejected(t *testing.T) {
	trace, err := NewDomain(8)
	if err != nil {
		t.Fatal(err)
	}
	larger, err := NewDomain(16)
	if err != nil {
		t.Fatal(err)
	}
	// The plain subgroup of size 16 contains the size-8 subgroup.
	if _, err := trace.SelectorsOnCoset(larger); err == nil {
		t.Error("expected error for overlapping target domain")
	}
}

func TestSelectorsAtPointX(t *testing.T) {
	trace, err := NewDomain(8)
	if err != nil {
		t.Fatal(err)
	}
	zeta := NewXFieldElement(field.New(0xdeadbeef), field.New(0xcafe))
	sel := trace.SelectorsAtPointX(zeta)

	shifted := zeta.MulBase(trace.Offset.Inverse())
	zH := shifted.ExpU64(uint64(trace.Length)).Sub(XOne)

	if !sel.IsFirstRow.Mul(shifted.Sub(XOne)).Equal(zH) {
		t.Error("first-row selector identity violated at extension point")
	}
	if !sel.InvVanishing.Mul(zH).IsOne() {
		t.Error("inverse vanishing identity violated at extension point")
	}
	if !sel.InvVanishing.Mul(trace.VanishingAtX(zeta)).IsOne() {
		t.Error("VanishingAtX disagrees with the selector")
	}
}

func TestNextPointX(t *testing.T) {
	trace, err := NewDomain(4)
	if err != nil {
		t.Fatal(err)
	}
	// Stepping a domain point must give the next domain point.
	elements := trace.Elements()
	stepped := trace.NextPointX(XFromBase(elements[1]))
	if !stepped.Equal(XFromBase(elements[2])) {
		t.Error("NextPointX of a domain point is not the following point")
	}
}

func TestHeightOneDomain(t *testing.T) {
	trace, err := NewDomain(1)
	if err != nil {
		t.Fatal(err)
	}
	if !trace.Generator.IsOne() {
		t.Error("generator of a size-1 domain must be 1")
	}

	// Selectors must still be well defined off the domain.
	zeta := NewXFieldElement(field.New(12345), field.New(678))
	sel := trace.SelectorsAtPointX(zeta)
	zH := trace.VanishingAtX(zeta)
	if !sel.InvVanishing.Mul(zH).IsOne() {
		t.Error("inverse vanishing identity violated for height-1 domain")
	}
	// With g = 1, isFirst and isLast coincide.
	if !sel.IsFirstRow.Equal(sel.IsLastRow) {
		t.Error("first and last row selectors must coincide for height 1")
	}
}
