package npyout

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteVector_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "times.npy")
	want := []float64{0, 0.25, 0.5, 1}

	require.NoError(t, WriteVector(path, want))

	got, err := ReadVector(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWritePoints_Shape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bunny.npy")
	pts := [][3]float64{{1, 2, 3}, {4, 5, 6}}

	require.NoError(t, WritePoints(path, pts))

	m, err := ReadMatrix(path)
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, m.At(1, 2))
}

func TestWriteMatrix_Errors(t *testing.T) {
	dir := t.TempDir()

	err := WriteMatrix(filepath.Join(dir, "empty.npy"), 0, 3, nil)
	assert.ErrorIs(t, err, ErrEmpty)

	err = WriteMatrix(filepath.Join(dir, "short.npy"), 2, 2, []float64{1, 2, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not fill shape")

	err = WriteVector("/nonexistent/dir/x.npy", []float64{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestWriteMatrices_Shape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.npy")
	ms := [][4][4]float64{
		{{1, 0, 0, 5}, {0, 1, 0, 6}, {0, 0, 1, 7}, {0, 0, 0, 1}},
		{{2, 0, 0, 0}, {0, 2, 0, 0}, {0, 0, 2, 0}, {0, 0, 0, 1}},
	}

	require.NoError(t, WriteMatrices(path, ms))

	shape, data, err := ReadArray(path)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 4}, shape)
	require.Len(t, data, 32)
	assert.Equal(t, []float64{1, 0, 0, 5}, data[0:4])
	assert.Equal(t, 2.0, data[16])

	assert.ErrorIs(t, WriteMatrices(path, nil), ErrEmpty)
}
