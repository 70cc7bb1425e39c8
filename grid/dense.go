package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by all grid types. Callers match via errors.Is;
// methods wrap them with coordinates for diagnostics.
var (
	// ErrBadShape is returned when a requested shape has a non-positive
	// dimension. Constructors validate before allocation.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("grid: index out of range")
)

// denseErrorf wraps an underlying error with method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrBadShape when rows or cols is non-positive.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Data exposes the flat row-major backing slice for hot loops.
// The caller must respect the i*Cols()+j layout; use Offset for index math.
func (m *Dense) Data() []float64 { return m.data }

// Offset computes the flat index of (row, col) without bounds checking.
// Intended for hot loops that have already validated their ranges.
// Complexity: O(1).
func (m *Dense) Offset(row, col int) int { return row*m.c + col }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Fill assigns v to every element. Used to initialize accumulated-cost
// grids to the +Inf "unreachable" sentinel. Complexity: O(r*c).
func (m *Dense) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for debugging; not for hot paths.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString("[")
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// Trace is a row-major int8 plane of the same shape as a Dense, recording
// which step-pattern transition achieved the minimum at each DP cell.
// The value -1 means "no predecessor recorded" (path start or unreachable).
type Trace struct {
	r, c int
	data []int8
}

// NewTrace creates an r×c Trace with every cell set to -1.
// Returns ErrBadShape when rows or cols is non-positive.
func NewTrace(rows, cols int) (*Trace, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	t := &Trace{r: rows, c: cols, data: make([]int8, rows*cols)}
	for i := range t.data {
		t.data[i] = -1
	}

	return t, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (t *Trace) Rows() int { return t.r }

// Cols returns the number of columns. Complexity: O(1).
func (t *Trace) Cols() int { return t.c }

// Data exposes the flat backing slice for hot loops.
func (t *Trace) Data() []int8 { return t.data }

// Offset computes the flat index of (row, col) without bounds checking.
func (t *Trace) Offset(row, col int) int { return row*t.c + col }
