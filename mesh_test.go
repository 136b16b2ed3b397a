package pcurve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMesh(t *testing.T) {
	got, err := Mesh(0, 6, 7)
	require.NoError(t, err)
	diff(t, []float64{0, 1, 2, 3, 4, 5, 6}, got)

	got, err = Mesh(0, 1, 2)
	require.NoError(t, err)
	diff(t, []float64{0, 1}, got)
}

func TestMeshSinglePoint(t *testing.T) {
	got, err := Mesh(3.5, 10, 1)
	require.NoError(t, err)
	diff(t, []float64{3.5}, got)
}

func TestMeshDegenerateBounds(t *testing.T) {
	got, err := Mesh(5, 5, 3)
	require.NoError(t, err)
	diff(t, []float64{5, 5, 5}, got)
}

func TestMeshErrors(t *testing.T) {
	_, err := Mesh(0, 1, 0)
	require.ErrorIs(t, err, ErrInvalidMesh)

	_, err = Mesh(0, 1, -3)
	require.ErrorIs(t, err, ErrInvalidMesh)

	_, err = Mesh(2, 1, 5)
	require.ErrorIs(t, err, ErrInvalidMesh)
}
