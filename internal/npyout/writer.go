// Package npyout writes trajectory arrays in NumPy's .npy format so they can
// be consumed by downstream Python tooling.
package npyout

import (
	"errors"
	"fmt"
	"os"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// ErrEmpty indicates an attempt to write a matrix with no rows or columns.
var ErrEmpty = errors.New("empty array")

const filePerm = 0o644

// WriteVector writes v as a 1-D float64 array.
func WriteVector(path string, v []float64) error {
	return writeFile(path, v)
}

// WriteMatrix writes a rows x cols float64 array from row-major data.
func WriteMatrix(path string, rows, cols int, data []float64) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %s has shape (%d, %d)", ErrEmpty, path, rows, cols)
	}
	if len(data) != rows*cols {
		return fmt.Errorf("%s: %d values do not fill shape (%d, %d)", path, len(data), rows, cols)
	}
	return writeFile(path, mat.NewDense(rows, cols, data))
}

// WriteMatrices writes a sequence of 4x4 matrices as an N x 4 x 4 array.
func WriteMatrices(path string, ms [][4][4]float64) error {
	if len(ms) == 0 {
		return fmt.Errorf("%w: %s has no matrices", ErrEmpty, path)
	}
	return writeFile(path, ms)
}

// WritePoints writes a sequence of 3-D points as an N x 3 array.
func WritePoints(path string, points [][3]float64) error {
	data := make([]float64, 0, len(points)*3)
	for _, p := range points {
		data = append(data, p[:]...)
	}
	return WriteMatrix(path, len(points), 3, data)
}

func writeFile(path string, val any) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if err := npyio.Write(f, val); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadVector reads a 1-D float64 array.
func ReadVector(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	var v []float64
	if err := npyio.Read(f, &v); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return v, nil
}

// ReadArray reads a float64 array of any rank and returns its shape with
// the elements in row-major order.
func ReadArray(path string) ([]int, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s header: %w", path, err)
	}
	var data []float64
	if err := r.Read(&data); err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return r.Header.Descr.Shape, data, nil
}

// ReadMatrix reads a 2-D float64 array.
func ReadMatrix(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	var m mat.Dense
	if err := npyio.Read(f, &m); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return &m, nil
}
