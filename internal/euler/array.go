// Package euler implements the hydrodynamic kernels, grid, integrator and
// worker orchestration for the 2D compressible Euler solver.
package euler

import "fmt"

// MaxRank is the largest rank an Array supports.
const MaxRank = 5

// Array is a contiguous, row-major N-dimensional array of float64, rank 1
// through MaxRank. It is the single numerical container used throughout
// the solver: state fields, face fields and scratch buffers are all
// Arrays.
//
// Array intentionally does not wrap github.com/ctessum/sparse.DenseArray:
// DenseArray's Get/Set take a variadic index and allocate on every call,
// and it has no notion of a non-owning view, both disqualifying it from
// the per-tile aliasing this solver depends on (see Attach below). The
// Shape/Elements field names are kept to match that package's spirit.
type Array struct {
	Shape   [MaxRank]int
	Rank    int
	Elements []float64

	// owned is false for an Array produced by Attach: such an Array
	// aliases another Array's backing slice and must not outlive it.
	owned bool
}

// NewArray allocates an owning Array with the given shape (1..MaxRank
// dimensions).
func NewArray(shape ...int) *Array {
	if len(shape) < 1 || len(shape) > MaxRank {
		panic(fmt.Sprintf("euler: array rank must be in [1,%d], got %d", MaxRank, len(shape)))
	}
	a := &Array{Rank: len(shape), owned: true}
	n := 1
	for i, s := range shape {
		a.Shape[i] = s
		n *= s
	}
	for i := len(shape); i < MaxRank; i++ {
		a.Shape[i] = 1
	}
	a.Elements = make([]float64, n)
	return a
}

// Clone deep-copies the array; the copy always owns its storage, even
// when a is an attached view.
func (a *Array) Clone() *Array {
	b := &Array{Shape: a.Shape, Rank: a.Rank, owned: true}
	b.Elements = make([]float64, len(a.Elements))
	copy(b.Elements, a.Elements)
	return b
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.Elements) }

// Bytes returns the backing storage size in bytes.
func (a *Array) Bytes() int64 { return int64(len(a.Elements)) * 8 }

// Fill sets every element to value.
func (a *Array) Fill(value float64) {
	for i := range a.Elements {
		a.Elements[i] = value
	}
}

// FillRange sets every quantity at every cell in [iLo,iHi) x [jLo,jHi)
// of a rank-3 [Q,n0,n1] array to value.
func (a *Array) FillRange(value float64, iLo, iHi, jLo, jHi int) {
	nq := a.Shape[0]
	for m := 0; m < nq; m++ {
		for i := iLo; i < iHi; i++ {
			for j := jLo; j < jHi; j++ {
				a.Set3(m, i, j, value)
			}
		}
	}
}

// CopyDataFrom copies other's backing data into a. Both arrays must have
// the same linear length; shape is part of identity so mismatched shapes
// that happen to have equal length are still rejected to catch
// accidental aliasing bugs early.
func (a *Array) CopyDataFrom(other *Array) {
	if a.Rank != other.Rank || a.Shape != other.Shape {
		panic(fmt.Sprintf("euler: CopyDataFrom shape mismatch: %v vs %v", a.Shape, other.Shape))
	}
	copy(a.Elements, other.Elements)
}

// Attach makes a alias other's backing storage, shape and rank.
// After Attach, a is non-owning: it must never be used after other is
// garbage collected or its Elements slice is replaced, and releasing it
// (letting it go out of scope) never frees other's storage. This is the
// mechanism tile.View uses to let each worker address the same backing
// arrays as the global Grid without copying: the tile ranges
// partitioning writers never overlap, so concurrent aliasing is safe as
// long as only the documented leader-only fields are written outside a
// tile's own [il,iu) range.
func (a *Array) Attach(other *Array) {
	a.Shape = other.Shape
	a.Rank = other.Rank
	a.Elements = other.Elements
	a.owned = false
}

// stride returns the row-major stride of axis given the shape.
func (a *Array) stride(axis int) int {
	s := 1
	for i := axis + 1; i < a.Rank; i++ {
		s *= a.Shape[i]
	}
	return s
}

func (a *Array) idx1(i0 int) int { return i0 }

func (a *Array) idx2(i0, i1 int) int { return i0*a.Shape[1] + i1 }

func (a *Array) idx3(i0, i1, i2 int) int {
	return (i0*a.Shape[1]+i1)*a.Shape[2] + i2
}

func (a *Array) idx4(i0, i1, i2, i3 int) int {
	return ((i0*a.Shape[1]+i1)*a.Shape[2]+i2)*a.Shape[3] + i3
}

func (a *Array) idx5(i0, i1, i2, i3, i4 int) int {
	return (((i0*a.Shape[1]+i1)*a.Shape[2]+i2)*a.Shape[3]+i3)*a.Shape[4] + i4
}

// At1/At2/At3 provide fixed-arity indexed access for ranks 1-3, which is
// all this solver's state arrays ever use (cons/prim are rank 3:
// [quantity, i, j], face speed arrays are rank 2: [i, j]).

func (a *Array) At1(i0 int) float64      { return a.Elements[a.idx1(i0)] }
func (a *Array) Set1(i0 int, v float64)  { a.Elements[a.idx1(i0)] = v }

func (a *Array) At2(i0, i1 int) float64     { return a.Elements[a.idx2(i0, i1)] }
func (a *Array) Set2(i0, i1 int, v float64) { a.Elements[a.idx2(i0, i1)] = v }

func (a *Array) At3(i0, i1, i2 int) float64     { return a.Elements[a.idx3(i0, i1, i2)] }
func (a *Array) Set3(i0, i1, i2 int, v float64) { a.Elements[a.idx3(i0, i1, i2)] = v }

func (a *Array) Add3(i0, i1, i2 int, v float64) { a.Elements[a.idx3(i0, i1, i2)] += v }
