package core

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// Matrix is a dense row-major matrix of base field elements.
// Trace matrices store one execution step per row, one register per column.
type Matrix struct {
	values []field.Element
	width  int
}

// NewMatrix wraps a row-major value slice as a matrix of the given width.
func NewMatrix(values []field.Element, width int) (*Matrix, error) {
	if width <= 0 {
		return nil, fmt.Errorf("matrix width must be positive, got %d", width)
	}
	if len(values)%width != 0 {
		return nil, fmt.Errorf("value count %d is not a multiple of width %d", len(values), width)
	}
	return &Matrix{values: values, width: width}, nil
}

// NewZeroMatrix allocates a height x width matrix of zeros.
func NewZeroMatrix(height, width int) (*Matrix, error) {
	if height < 0 || width <= 0 {
		return nil, fmt.Errorf("invalid matrix dimensions %dx%d", height, width)
	}
	return &Matrix{values: make([]field.Element, height*width), width: width}, nil
}

// Width returns the number of columns.
func (m *Matrix) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Matrix) Height() int {
	return len(m.values) / m.width
}

// Row returns row i as a subslice of the backing storage. Callers must not
// modify the returned slice unless they own the matrix.
func (m *Matrix) Row(i int) []field.Element {
	return m.values[i*m.width : (i+1)*m.width]
}

// Get returns the element at (row, col).
func (m *Matrix) Get(row, col int) field.Element {
	return m.values[row*m.width+col]
}

// Set writes the element at (row, col).
func (m *Matrix) Set(row, col int, v field.Element) {
	m.values[row*m.width+col] = v
}

// Column returns a copy of column j.
func (m *Matrix) Column(j int) []field.Element {
	height := m.Height()
	col := make([]field.Element, height)
	for i := 0; i < height; i++ {
		col[i] = m.values[i*m.width+j]
	}
	return col
}

// XMatrix is a dense row-major matrix of extension field elements.
// Auxiliary traces and quotient evaluations are extension-valued.
type XMatrix struct {
	values []XFieldElement
	width  int
}

// NewXMatrix wraps a row-major extension value slice as a matrix.
func NewXMatrix(values []XFieldElement, width int) (*XMatrix, error) {
	if width <= 0 {
		return nil, fmt.Errorf("matrix width must be positive, got %d", width)
	}
	if len(values)%width != 0 {
		return nil, fmt.Errorf("value count %d is not a multiple of width %d", len(values), width)
	}
	return &XMatrix{values: values, width: width}, nil
}

// NewXMatrixFromColumn builds a single-column matrix from a value slice.
func NewXMatrixFromColumn(column []XFieldElement) *XMatrix {
	values := make([]XFieldElement, len(column))
	copy(values, column)
	return &XMatrix{values: values, width: 1}
}

// Width returns the number of columns.
func (m *XMatrix) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *XMatrix) Height() int {
	return len(m.values) / m.width
}

// Row returns row i as a subslice of the backing storage.
func (m *XMatrix) Row(i int) []XFieldElement {
	return m.values[i*m.width : (i+1)*m.width]
}

// Get returns the element at (row, col).
func (m *XMatrix) Get(row, col int) XFieldElement {
	return m.values[row*m.width+col]
}

// Set writes the element at (row, col).
func (m *XMatrix) Set(row, col int, v XFieldElement) {
	m.values[row*m.width+col] = v
}

// FlattenToBase expands each extension column into ExtensionDegree adjacent
// base columns, coefficient order (C0, C1). Commitment schemes operate on
// base field matrices, so extension traces are flattened before committing.
func (m *XMatrix) FlattenToBase() *Matrix {
	height := m.Height()
	baseWidth := m.width * ExtensionDegree
	values := make([]field.Element, height*baseWidth)
	for i := 0; i < height; i++ {
		row := m.Row(i)
		for j, x := range row {
			values[i*baseWidth+j*ExtensionDegree] = x.C0
			values[i*baseWidth+j*ExtensionDegree+1] = x.C1
		}
	}
	return &Matrix{values: values, width: baseWidth}
}

// RowToX reassembles a flattened base row into extension elements. The row
// width must be a multiple of ExtensionDegree.
func RowToX(row []field.Element) []XFieldElement {
	if len(row)%ExtensionDegree != 0 {
		panic(fmt.Sprintf("flattened row width %d is not a multiple of %d", len(row), ExtensionDegree))
	}
	out := make([]XFieldElement, len(row)/ExtensionDegree)
	for i := range out {
		out[i] = XFieldElement{
			C0: row[i*ExtensionDegree],
			C1: row[i*ExtensionDegree+1],
		}
	}
	return out
}

// LiftRow lifts a base row into the extension field element-wise.
func LiftRow(row []field.Element) []XFieldElement {
	out := make([]XFieldElement, len(row))
	for i, e := range row {
		out[i] = XFromBase(e)
	}
	return out
}
