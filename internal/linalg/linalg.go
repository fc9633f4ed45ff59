// Package linalg provides the little dense linear algebra the fitters need:
// products, inverses, square solves and real eigenpairs of small matrices.
// It is a thin layer over gonum's mat package so that the fitting code reads
// as its derivation and does not depend on gonum's API directly.
package linalg

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrSingular is returned when a matrix cannot be inverted or a system
	// cannot be solved because the matrix is singular to working precision.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrNoEigen is returned when an eigendecomposition does not converge.
	ErrNoEigen = errors.New("linalg: eigendecomposition failed")
)

// Matrix is a dense, row-major matrix of float64. The zero value is not
// usable; create matrices with [New] or [FromRows].
type Matrix struct {
	d *mat.Dense
}

// New returns an r×c matrix of zeros.
func New(r, c int) Matrix {
	return Matrix{mat.NewDense(r, c, nil)}
}

// FromRows returns a matrix with the given rows. All rows must have the same
// length.
func FromRows(rows ...[]float64) Matrix {
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for _, row := range rows {
		if len(row) != c {
			panic(fmt.Sprintf("linalg: ragged rows, %d and %d columns", c, len(row)))
		}
		data = append(data, row...)
	}
	return Matrix{mat.NewDense(len(rows), c, data)}
}

// Dims returns the number of rows and columns.
func (a Matrix) Dims() (r, c int) { return a.d.Dims() }

func (a Matrix) At(i, j int) float64 { return a.d.At(i, j) }

func (a Matrix) Set(i, j int, v float64) { a.d.Set(i, j, v) }

// Col returns a copy of column j.
func (a Matrix) Col(j int) []float64 {
	return mat.Col(nil, j, a.d)
}

// T returns the transpose of a as a new matrix.
func (a Matrix) T() Matrix {
	var t mat.Dense
	t.CloneFrom(a.d.T())
	return Matrix{&t}
}

// Mul returns the product a·b.
func (a Matrix) Mul(b Matrix) Matrix {
	var p mat.Dense
	p.Mul(a.d, b.d)
	return Matrix{&p}
}

// TMul returns the product aᵀ·b, the scatter matrix of two design matrices.
func (a Matrix) TMul(b Matrix) Matrix {
	var p mat.Dense
	p.Mul(a.d.T(), b.d)
	return Matrix{&p}
}

// Add returns a+b.
func (a Matrix) Add(b Matrix) Matrix {
	var s mat.Dense
	s.Add(a.d, b.d)
	return Matrix{&s}
}

// Scale returns f·a.
func (a Matrix) Scale(f float64) Matrix {
	var s mat.Dense
	s.Scale(f, a.d)
	return Matrix{&s}
}

// Inverse returns the inverse of the square matrix a.
func (a Matrix) Inverse() (Matrix, error) {
	var inv mat.Dense
	if err := inv.Inverse(a.d); err != nil {
		return Matrix{}, singular(err)
	}
	return Matrix{&inv}, nil
}

// Solve returns x such that a·x = b, for square a.
func (a Matrix) Solve(b Matrix) (Matrix, error) {
	var x mat.Dense
	if err := x.Solve(a.d, b.d); err != nil {
		return Matrix{}, singular(err)
	}
	return Matrix{&x}, nil
}

func singular(err error) error {
	var cond mat.Condition
	if errors.As(err, &cond) {
		return fmt.Errorf("%w (condition number %.4g)", ErrSingular, float64(cond))
	}
	return fmt.Errorf("%w: %v", ErrSingular, err)
}

// EigenPair is a real eigenvalue with its unit right eigenvector.
type EigenPair struct {
	Value  float64
	Vector []float64
}

// realTolerance bounds the imaginary part, relative to the modulus, of an
// eigenvalue that is reported as real.
const realTolerance = 1e-9

// Eigen returns the real eigenpairs of the square, not necessarily symmetric,
// matrix a, sorted by increasing eigenvalue. Complex conjugate pairs are
// omitted.
func (a Matrix) Eigen() ([]EigenPair, error) {
	var eig mat.Eigen
	if ok := eig.Factorize(a.d, mat.EigenRight); !ok {
		return nil, ErrNoEigen
	}
	values := eig.Values(nil)
	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	n, _ := a.Dims()
	var pairs []EigenPair
	for j, v := range values {
		if math.Abs(imag(v)) > realTolerance*(1+math.Abs(real(v))) {
			continue
		}
		vec := make([]float64, n)
		for i := range vec {
			vec[i] = real(vectors.At(i, j))
		}
		pairs = append(pairs, EigenPair{Value: real(v), Vector: vec})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Value < pairs[j].Value })
	return pairs, nil
}
