package core

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// Barycentric evaluation of a polynomial given by its values on a coset.
//
// For the coset {x_i = s*g^i} of size N the vanishing polynomial is
// Z(x) = x^N - s^N and the barycentric weights collapse to the closed form
// w_i = 1/Z'(x_i) = x_i / (N * s^N), giving
//
//	f(x) = (x^N - s^N) / (N * s^N) * sum_i y_i * x_i / (x - x_i)
//
// This evaluates a committed column at any point in O(N) without ever
// materialising coefficients.

// InterpolateAt evaluates the polynomial interpolating (domain, column) at a
// base field point. Points on the domain short-circuit to the stored value.
func InterpolateAt(domain *Domain, column []field.Element, x field.Element) (field.Element, error) {
	n := domain.Length
	if len(column) != n {
		return field.Zero, fmt.Errorf("column length %d does not match domain length %d", len(column), n)
	}

	points := domain.Elements()
	for i, xi := range points {
		if x.Equal(xi) {
			return column[i], nil
		}
	}

	// (x^N - s^N) / (N * s^N)
	sPowN := domain.Offset.ModPow(uint64(n))
	scale := x.ModPow(uint64(n)).Sub(sPowN).Mul(field.New(uint64(n)).Mul(sPowN).Inverse())

	acc := field.Zero
	for i, xi := range points {
		term := column[i].Mul(xi).Mul(x.Sub(xi).Inverse())
		acc = acc.Add(term)
	}
	return scale.Mul(acc), nil
}

// InterpolateAtX evaluates the polynomial interpolating (domain, column) at
// an extension field point. The column holds base field values, as produced
// by commitments; the result lives in the extension field.
func InterpolateAtX(domain *Domain, column []field.Element, x XFieldElement) (XFieldElement, error) {
	n := domain.Length
	if len(column) != n {
		return XZero, fmt.Errorf("column length %d does not match domain length %d", len(column), n)
	}

	points := domain.Elements()
	if x.C1.IsZero() {
		for i, xi := range points {
			if x.C0.Equal(xi) {
				return XFromBase(column[i]), nil
			}
		}
	}

	sPowN := domain.Offset.ModPow(uint64(n))
	scaleBase := field.New(uint64(n)).Mul(sPowN).Inverse()
	scale := x.ExpU64(uint64(n)).SubBase(sPowN).MulBase(scaleBase)

	acc := XZero
	for i, xi := range points {
		term := x.SubBase(xi).Inverse().MulBase(column[i].Mul(xi))
		acc = acc.Add(term)
	}
	return scale.Mul(acc), nil
}

// InterpolateRowAtX evaluates every column of a matrix at the same extension
// point, returning one value per column.
func InterpolateRowAtX(domain *Domain, matrix *Matrix, x XFieldElement) ([]XFieldElement, error) {
	width := matrix.Width()
	out := make([]XFieldElement, width)
	for j := 0; j < width; j++ {
		v, err := InterpolateAtX(domain, matrix.Column(j), x)
		if err != nil {
			return nil, err
		}
		out[j] = v
	}
	return out, nil
}
