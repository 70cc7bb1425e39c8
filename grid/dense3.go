package grid

import "fmt"

// dense3Errorf wraps an underlying error with method context and coordinates.
func dense3Errorf(method string, i, j, k int, err error) error {
	return fmt.Errorf("Dense3.%s(%d,%d,%d): %w", method, i, j, k, err)
}

// Dense3 is a row-major tensor of float64 values with dimensions nx×ny×nz.
// data holds nx*ny*nz elements with offset formula (i*ny+j)*nz + k, so the
// last axis is contiguous.
type Dense3 struct {
	nx, ny, nz int
	data       []float64
}

// NewDense3 creates an nx×ny×nz Dense3 tensor initialized to zeros.
// Returns ErrBadShape when any dimension is non-positive.
// Complexity: O(nx*ny*nz) time and memory — for feature sequences of a few
// thousand frames each this is gigabytes; pre-crop or downsample first.
func NewDense3(nx, ny, nz int) (*Dense3, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, ErrBadShape
	}

	return &Dense3{nx: nx, ny: ny, nz: nz, data: make([]float64, nx*ny*nz)}, nil
}

// Dims returns the three dimensions. Complexity: O(1).
func (t *Dense3) Dims() (nx, ny, nz int) { return t.nx, t.ny, t.nz }

// Data exposes the flat backing slice for hot loops.
// The caller must respect the (i*ny+j)*nz + k layout; use Offset.
func (t *Dense3) Data() []float64 { return t.data }

// Offset computes the flat index of (i, j, k) without bounds checking.
// Complexity: O(1).
func (t *Dense3) Offset(i, j, k int) int { return (i*t.ny+j)*t.nz + k }

// indexOf computes the flat index for (i, j, k) or returns ErrOutOfRange.
func (t *Dense3) indexOf(i, j, k int) (int, error) {
	if i < 0 || i >= t.nx || j < 0 || j >= t.ny || k < 0 || k >= t.nz {
		return 0, ErrOutOfRange
	}

	return (i*t.ny+j)*t.nz + k, nil
}

// At retrieves the element at (i, j, k) or returns ErrOutOfRange.
// Complexity: O(1).
func (t *Dense3) At(i, j, k int) (float64, error) {
	idx, err := t.indexOf(i, j, k)
	if err != nil {
		return 0, dense3Errorf("At", i, j, k, err)
	}

	return t.data[idx], nil
}

// Set assigns value v at (i, j, k) or returns ErrOutOfRange.
// Complexity: O(1).
func (t *Dense3) Set(i, j, k int, v float64) error {
	idx, err := t.indexOf(i, j, k)
	if err != nil {
		return dense3Errorf("Set", i, j, k, err)
	}
	t.data[idx] = v

	return nil
}

// Fill assigns v to every element. Complexity: O(nx*ny*nz).
func (t *Dense3) Fill(v float64) {
	for i := range t.data {
		t.data[i] = v
	}
}

// Trace3 is an int8 tensor of the same shape as a Dense3, recording which
// step-pattern transition achieved the minimum at each DP cell.
// The value -1 means "no predecessor recorded".
type Trace3 struct {
	nx, ny, nz int
	data       []int8
}

// NewTrace3 creates an nx×ny×nz Trace3 with every cell set to -1.
// Returns ErrBadShape when any dimension is non-positive.
func NewTrace3(nx, ny, nz int) (*Trace3, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, ErrBadShape
	}
	t := &Trace3{nx: nx, ny: ny, nz: nz, data: make([]int8, nx*ny*nz)}
	for i := range t.data {
		t.data[i] = -1
	}

	return t, nil
}

// Dims returns the three dimensions. Complexity: O(1).
func (t *Trace3) Dims() (nx, ny, nz int) { return t.nx, t.ny, t.nz }

// Data exposes the flat backing slice for hot loops.
func (t *Trace3) Data() []int8 { return t.data }

// Offset computes the flat index of (i, j, k) without bounds checking.
func (t *Trace3) Offset(i, j, k int) int { return (i*t.ny+j)*t.nz + k }
