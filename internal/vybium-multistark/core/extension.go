package core

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// W is the non-residue defining the quadratic extension: u^2 = W.
// 7 is a quadratic non-residue of the Goldilocks field, and doubles as the
// field's multiplicative generator.
const W uint64 = 7

// XFieldElement is an element of the degree-2 extension F_p[u]/(u^2 - 7)
// of the Goldilocks base field, represented as C0 + C1*u.
//
// Challenges and out-of-domain evaluations live in this field so that the
// soundness error scales with p^2 rather than p.
type XFieldElement struct {
	C0 field.Element
	C1 field.Element
}

// ExtensionDegree is the number of base-field coefficients per extension
// element. Flattened representations interleave this many base columns per
// extension column.
const ExtensionDegree = 2

var (
	// XZero is the additive identity of the extension field.
	XZero = XFieldElement{C0: field.Zero, C1: field.Zero}

	// XOne is the multiplicative identity of the extension field.
	XOne = XFieldElement{C0: field.One, C1: field.Zero}

	wElement = field.New(W)
)

// NewXFieldElement creates an extension element from two base coefficients.
func NewXFieldElement(c0, c1 field.Element) XFieldElement {
	return XFieldElement{C0: c0, C1: c1}
}

// XFromBase lifts a base field element into the extension field.
func XFromBase(e field.Element) XFieldElement {
	return XFieldElement{C0: e, C1: field.Zero}
}

// XFromUint64 creates an extension element from a uint64 constant.
func XFromUint64(v uint64) XFieldElement {
	return XFieldElement{C0: field.New(v), C1: field.Zero}
}

// IthBasisElement returns the i-th element of the basis {1, u}.
func IthBasisElement(i int) XFieldElement {
	switch i {
	case 0:
		return XOne
	case 1:
		return XFieldElement{C0: field.Zero, C1: field.One}
	default:
		panic(fmt.Sprintf("basis index out of range: %d", i))
	}
}

// Add returns x + y.
func (x XFieldElement) Add(y XFieldElement) XFieldElement {
	return XFieldElement{
		C0: x.C0.Add(y.C0),
		C1: x.C1.Add(y.C1),
	}
}

// Sub returns x - y.
func (x XFieldElement) Sub(y XFieldElement) XFieldElement {
	return XFieldElement{
		C0: x.C0.Sub(y.C0),
		C1: x.C1.Sub(y.C1),
	}
}

// Neg returns -x.
func (x XFieldElement) Neg() XFieldElement {
	return XFieldElement{
		C0: x.C0.Neg(),
		C1: x.C1.Neg(),
	}
}

// Mul returns x * y using the schoolbook product reduced by u^2 = 7:
// (a + bu)(c + du) = (ac + 7bd) + (ad + bc)u.
func (x XFieldElement) Mul(y XFieldElement) XFieldElement {
	ac := x.C0.Mul(y.C0)
	bd := x.C1.Mul(y.C1)
	ad := x.C0.Mul(y.C1)
	bc := x.C1.Mul(y.C0)
	return XFieldElement{
		C0: ac.Add(wElement.Mul(bd)),
		C1: ad.Add(bc),
	}
}

// Square returns x * x.
func (x XFieldElement) Square() XFieldElement {
	return x.Mul(x)
}

// MulBase returns x scaled by a base field element.
func (x XFieldElement) MulBase(b field.Element) XFieldElement {
	return XFieldElement{
		C0: x.C0.Mul(b),
		C1: x.C1.Mul(b),
	}
}

// AddBase returns x + b for a base field element b.
func (x XFieldElement) AddBase(b field.Element) XFieldElement {
	return XFieldElement{C0: x.C0.Add(b), C1: x.C1}
}

// SubBase returns x - b for a base field element b.
func (x XFieldElement) SubBase(b field.Element) XFieldElement {
	return XFieldElement{C0: x.C0.Sub(b), C1: x.C1}
}

// Inverse returns x^-1. Panics if x is zero.
//
// For x = a + bu the inverse is (a - bu) / (a^2 - 7b^2); the denominator is
// the norm of x and is zero only for x = 0 because 7 is a non-residue.
func (x XFieldElement) Inverse() XFieldElement {
	if x.IsZero() {
		panic("inverse of zero extension field element")
	}
	norm := x.C0.Mul(x.C0).Sub(wElement.Mul(x.C1.Mul(x.C1)))
	normInv := norm.Inverse()
	return XFieldElement{
		C0: x.C0.Mul(normInv),
		C1: x.C1.Neg().Mul(normInv),
	}
}

// ExpU64 returns x^exp by square-and-multiply.
func (x XFieldElement) ExpU64(exp uint64) XFieldElement {
	result := XOne
	base := x
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Square()
		exp >>= 1
	}
	return result
}

// IsZero reports whether x is the additive identity.
func (x XFieldElement) IsZero() bool {
	return x.C0.IsZero() && x.C1.IsZero()
}

// IsOne reports whether x is the multiplicative identity.
func (x XFieldElement) IsOne() bool {
	return x.C0.IsOne() && x.C1.IsZero()
}

// Equal reports whether x == y.
func (x XFieldElement) Equal(y XFieldElement) bool {
	return x.C0.Equal(y.C0) && x.C1.Equal(y.C1)
}

// Coefficients returns the base-field coefficients of x in basis order.
func (x XFieldElement) Coefficients() []field.Element {
	return []field.Element{x.C0, x.C1}
}

// String returns a human-readable representation.
func (x XFieldElement) String() string {
	if x.C1.IsZero() {
		return fmt.Sprintf("%d", x.C0.Value())
	}
	return fmt.Sprintf("%d + %d*u", x.C0.Value(), x.C1.Value())
}
