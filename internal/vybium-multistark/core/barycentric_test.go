package core

import (
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// evalPoly evaluates a coefficient-form polynomial at a base point.
func evalPoly(coeffs []field.Element, x field.Element) field.Element {
	result := field.Zero
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(coeffs[i])
	}
	return result
}

// evalPolyX evaluates a coefficient-form polynomial at an extension point.
func evalPolyX(coeffs []field.Element, x XFieldElement) XFieldElement {
	result := XZero
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = result.Mul(x).AddBase(coeffs[i])
	}
	return result
}

func polyValuesOnDomain(coeffs []field.Element, d *Domain) []field.Element {
	values := make([]field.Element, d.Length)
	for i, x := range d.Elements() {
		values[i] = evalPoly(coeffs, x)
	}
	return values
}

func TestInterpolateAt(t *testing.T) {
	domain, err := NewDomain(8)
	if err != nil {
		t.Fatal(err)
	}
	coset := domain.WithOffset(field.New(W))

	coeffs := []field.Element{
		field.New(5), field.New(3), field.New(0), field.New(7),
		field.New(11), field.New(2), field.New(9), field.New(1),
	}
	values := polyValuesOnDomain(coeffs, coset)

	t.Run("OffDomainPoint", func(t *testing.T) {
		x := field.New(123456)
		got, err := InterpolateAt(coset, values, x)
		if err != nil {
			t.Fatal(err)
		}
		expected := evalPoly(coeffs, x)
		if !got.Equal(expected) {
			t.Errorf("got %d, expected %d", got.Value(), expected.Value())
		}
	})

	t.Run("OnDomainShortCircuit", func(t *testing.T) {
		x := coset.Elements()[3]
		got, err := InterpolateAt(coset, values, x)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(values[3]) {
			t.Error("on-domain evaluation must return the stored value")
		}
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		if _, err := InterpolateAt(coset, values[:4], field.New(1)); err == nil {
			t.Error("expected error for mismatched column length")
		}
	})
}

func TestInterpolateAtX(t *testing.T) {
	domain, err := NewDomain(4)
	if err != nil {
		t.Fatal(err)
	}

	coeffs := []field.Element{field.New(2), field.New(8), field.New(5), field.New(13)}
	values := polyValuesOnDomain(coeffs, domain)

	t.Run("ExtensionPoint", func(t *testing.T) {
		zeta := NewXFieldElement(field.New(99), field.New(101))
		got, err := InterpolateAtX(domain, values, zeta)
		if err != nil {
			t.Fatal(err)
		}
		expected := evalPolyX(coeffs, zeta)
		if !got.Equal(expected) {
			t.Errorf("got %v, expected %v", got, expected)
		}
	})

	t.Run("AgreesWithBaseEvaluation", func(t *testing.T) {
		x := field.New(424242)
		gotX, err := InterpolateAtX(domain, values, XFromBase(x))
		if err != nil {
			t.Fatal(err)
		}
		gotBase, err := InterpolateAt(domain, values, x)
		if err != nil {
			t.Fatal(err)
		}
		if !gotX.Equal(XFromBase(gotBase)) {
			t.Error("extension evaluation at a base point disagrees with base evaluation")
		}
	})

	t.Run("OnDomainShortCircuit", func(t *testing.T) {
		x := domain.Elements()[2]
		got, err := InterpolateAtX(domain, values, XFromBase(x))
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(XFromBase(values[2])) {
			t.Error("on-domain evaluation must return the stored value")
		}
	})
}

func TestInterpolateHeightOne(t *testing.T) {
	domain, err := NewDomain(1)
	if err != nil {
		t.Fatal(err)
	}
	values := []field.Element{field.New(42)}

	// A single evaluation pins a constant polynomial.
	got, err := InterpolateAtX(domain, values, NewXFieldElement(field.New(7), field.New(9)))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(XFromUint64(42)) {
		t.Errorf("constant polynomial evaluation gave %v", got)
	}
}

func TestInterpolateRowAtX(t *testing.T) {
	domain, err := NewDomain(4)
	if err != nil {
		t.Fatal(err)
	}
	coeffsA := []field.Element{field.New(1), field.New(2), field.New(3), field.New(4)}
	coeffsB := []field.Element{field.New(9), field.New(8), field.New(7), field.New(6)}

	values := make([]field.Element, 8)
	for i, x := range domain.Elements() {
		values[i*2] = evalPoly(coeffsA, x)
		values[i*2+1] = evalPoly(coeffsB, x)
	}
	matrix, err := NewMatrix(values, 2)
	if err != nil {
		t.Fatal(err)
	}

	zeta := NewXFieldElement(field.New(31337), field.New(555))
	row, err := InterpolateRowAtX(domain, matrix, zeta)
	if err != nil {
		t.Fatal(err)
	}
	if len(row) != 2 {
		t.Fatalf("expected 2 values, got %d", len(row))
	}
	if !row[0].Equal(evalPolyX(coeffsA, zeta)) || !row[1].Equal(evalPolyX(coeffsB, zeta)) {
		t.Error("per-column evaluation does not match direct evaluation")
	}
}
