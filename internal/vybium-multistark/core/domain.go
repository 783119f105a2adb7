package core

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

func isPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

// Log2 returns log2(n) for a power-of-two n.
func Log2(n int) int {
	log := 0
	for n > 1 {
		n >>= 1
		log++
	}
	return log
}

// Domain is a multiplicative coset {offset * generator^i : i = 0..length-1}.
//
// Trace domains are plain subgroups (offset 1); quotient evaluation happens
// on a disjoint coset so that the vanishing polynomial of the trace domain
// is invertible at every evaluation point.
type Domain struct {
	// Offset shifts the subgroup (field.One for no offset)
	Offset field.Element

	// Generator is a primitive length-th root of unity
	Generator field.Element

	// Length is the number of elements (power of 2)
	Length int
}

// NewDomain creates the subgroup domain of the given power-of-two length.
// The generator is derived from the field's multiplicative generator, so it
// is a primitive length-th root of unity by construction.
func NewDomain(length int) (*Domain, error) {
	if !isPowerOfTwo(length) {
		return nil, fmt.Errorf("domain length must be a power of 2, got %d", length)
	}
	return &Domain{
		Offset:    field.One,
		Generator: field.New(W).ModPow((field.P - 1) / uint64(length)),
		Length:    length,
	}, nil
}

// WithOffset returns a copy of the domain shifted by the given offset.
func (d *Domain) WithOffset(offset field.Element) *Domain {
	return &Domain{
		Offset:    offset,
		Generator: d.Generator,
		Length:    d.Length,
	}
}

// Elements returns all domain points in order.
func (d *Domain) Elements() []field.Element {
	elements := make([]field.Element, d.Length)
	current := d.Offset
	for i := 0; i < d.Length; i++ {
		elements[i] = current
		current = current.Mul(d.Generator)
	}
	return elements
}

// FirstPoint returns the first domain point, offset * generator^0.
func (d *Domain) FirstPoint() field.Element {
	return d.Offset
}

// CreateDisjointDomain returns a domain of the given size whose points are
// disjoint from this domain. The offset is multiplied by the field's
// multiplicative generator, which lies outside every proper subgroup coset.
func (d *Domain) CreateDisjointDomain(size int) (*Domain, error) {
	larger, err := NewDomain(size)
	if err != nil {
		return nil, err
	}
	return larger.WithOffset(d.Offset.Mul(field.New(W))), nil
}

// SplitDomains decomposes the domain into k interleaved sub-cosets. Point m
// of sub-domain i is the (i + m*k)-th point of this domain, so sub-domain i
// has offset offset*generator^i and generator generator^k.
func (d *Domain) SplitDomains(k int) ([]*Domain, error) {
	if k <= 0 || d.Length%k != 0 {
		return nil, fmt.Errorf("cannot split domain of length %d into %d parts", d.Length, k)
	}
	subGenerator := d.Generator
	for i := 1; i < k; i++ {
		subGenerator = subGenerator.Mul(d.Generator)
	}
	domains := make([]*Domain, k)
	offset := d.Offset
	for i := 0; i < k; i++ {
		domains[i] = &Domain{
			Offset:    offset,
			Generator: subGenerator,
			Length:    d.Length / k,
		}
		offset = offset.Mul(d.Generator)
	}
	return domains, nil
}

// SplitEvals distributes the rows of evaluations over k chunks matching
// SplitDomains: chunk i receives rows i, i+k, i+2k, ...
func (d *Domain) SplitEvals(k int, evaluations *Matrix) ([]*Matrix, error) {
	height := evaluations.Height()
	if height != d.Length {
		return nil, fmt.Errorf("evaluation height %d does not match domain length %d", height, d.Length)
	}
	if k <= 0 || height%k != 0 {
		return nil, fmt.Errorf("cannot split %d rows into %d chunks", height, k)
	}
	width := evaluations.Width()
	chunkHeight := height / k
	chunks := make([]*Matrix, k)
	for i := 0; i < k; i++ {
		chunk, err := NewZeroMatrix(chunkHeight, width)
		if err != nil {
			return nil, err
		}
		for m := 0; m < chunkHeight; m++ {
			copy(chunk.Row(m), evaluations.Row(i+m*k))
		}
		chunks[i] = chunk
	}
	return chunks, nil
}

// NextPointX returns x * generator, the point one trace step after x.
func (d *Domain) NextPointX(x XFieldElement) XFieldElement {
	return x.MulBase(d.Generator)
}

// VanishingAtX evaluates the domain's vanishing polynomial
// Z(x) = (x/offset)^length - 1 at an extension point.
func (d *Domain) VanishingAtX(x XFieldElement) XFieldElement {
	shifted := x.MulBase(d.Offset.Inverse())
	return shifted.ExpU64(uint64(d.Length)).Sub(XOne)
}

// LagrangeSelectors are the unnormalized row selectors of a trace domain
// evaluated at one point. IsFirstRow vanishes everywhere except the first
// domain point (where it is nonzero but not necessarily 1), and similarly
// for the others. The same unnormalized scaling is used at proving and
// verification time, so the quotient identity is unaffected.
type LagrangeSelectors struct {
	IsFirstRow   XFieldElement
	IsLastRow    XFieldElement
	IsTransition XFieldElement
	InvVanishing XFieldElement
}

// SelectorsAtPointX evaluates the selectors at a single out-of-domain
// extension point. Panics if the point lies on the domain itself, since
// the vanishing polynomial is then not invertible.
func (d *Domain) SelectorsAtPointX(x XFieldElement) LagrangeSelectors {
	shifted := x.MulBase(d.Offset.Inverse())
	zH := shifted.ExpU64(uint64(d.Length)).Sub(XOne)
	genInv := d.Generator.Inverse()
	return LagrangeSelectors{
		IsFirstRow:   zH.Mul(shifted.Sub(XOne).Inverse()),
		IsLastRow:    zH.Mul(shifted.SubBase(genInv).Inverse()),
		IsTransition: shifted.SubBase(genInv),
		InvVanishing: zH.Inverse(),
	}
}

// CosetSelectors hold the selector evaluations of a trace domain at every
// point of a larger disjoint coset, as parallel base field columns.
type CosetSelectors struct {
	IsFirstRow   []field.Element
	IsLastRow    []field.Element
	IsTransition []field.Element
	InvVanishing []field.Element
}

// SelectorsOnCoset evaluates the trace domain's selectors at every point of
// the target coset. The target must be disjoint from this domain.
func (d *Domain) SelectorsOnCoset(target *Domain) (*CosetSelectors, error) {
	n := target.Length
	sel := &CosetSelectors{
		IsFirstRow:   make([]field.Element, n),
		IsLastRow:    make([]field.Element, n),
		IsTransition: make([]field.Element, n),
		InvVanishing: make([]field.Element, n),
	}
	offsetInv := d.Offset.Inverse()
	genInv := d.Generator.Inverse()
	for i, x := range target.Elements() {
		shifted := x.Mul(offsetInv)
		zH := shifted.ModPow(uint64(d.Length)).Sub(field.One)
		if zH.IsZero() {
			return nil, fmt.Errorf("target point %d lies on the trace domain", i)
		}
		sel.IsFirstRow[i] = zH.Mul(shifted.Sub(field.One).Inverse())
		sel.IsLastRow[i] = zH.Mul(shifted.Sub(genInv).Inverse())
		sel.IsTransition[i] = shifted.Sub(genInv)
		sel.InvVanishing[i] = zH.Inverse()
	}
	return sel, nil
}

// String returns a human-readable representation.
func (d *Domain) String() string {
	return fmt.Sprintf("Domain{length: %d, offset: %d}", d.Length, d.Offset.Value())
}
