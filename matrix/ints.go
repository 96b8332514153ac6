package matrix

import "fmt"

// intsErrorf wraps an underlying error with Ints method context.
func intsErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Ints.%s(%d,%d): %w", method, row, col, err)
}

// Ints is a row-major matrix of int values, used for per-pair counts
// (e.g. how many measurement files contributed to a BPM pair).
type Ints struct {
	r, c int
	data []int // flat backing storage, length == r*c
}

// NewInts creates an r×c Ints matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewInts(rows, cols int) (*Ints, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Ints{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Ints) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Ints) Cols() int { return m.c }

func (m *Ints) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, intsErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.c {
		return 0, intsErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col). Complexity: O(1).
func (m *Ints) At(row, col int) (int, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns value v at (row, col). Complexity: O(1).
func (m *Ints) Set(row, col int, v int) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Fill sets every element to v. Complexity: O(r*c).
func (m *Ints) Fill(v int) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Row returns the backing slice of row i; same aliasing contract and
// panic policy as Dense.Row. Complexity: O(1).
func (m *Ints) Row(i int) []int {
	if i < 0 || i >= m.r {
		panic(intsErrorf("Row", i, 0, ErrIndexOutOfBounds))
	}
	return m.data[i*m.c : (i+1)*m.c]
}

// Clone returns a deep copy of the Ints matrix. Complexity: O(r*c).
func (m *Ints) Clone() *Ints {
	cp := make([]int, len(m.data))
	copy(cp, m.data)
	return &Ints{r: m.r, c: m.c, data: cp}
}
